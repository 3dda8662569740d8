package service

import (
    "context"
    "testing"

    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"

    "github.com/d60-Lab/cinegraph/internal/repository"
)

func newRelationshipFixture(t *testing.T) (RelationshipService, func(string) (string, string)) {
    db := setupTestDB(t)
    svc := NewRelationshipService(repository.NewFollowRepository(db), repository.NewProfileRepository(db))
    mk := func(name string) (string, string) {
        u, p := seedUser(t, db, name)
        return u.ID, p.ID
    }
    return svc, mk
}

func TestFollowSelf(t *testing.T) {
    svc, mk := newRelationshipFixture(t)
    _, alice := mk("alice")

    err := svc.Follow(context.Background(), alice, alice)
    assert.ErrorIs(t, err, ErrFollowSelf)
}

func TestFollowTwiceRejected(t *testing.T) {
    svc, mk := newRelationshipFixture(t)
    _, alice := mk("alice")
    _, bob := mk("bob")
    ctx := context.Background()

    require.NoError(t, svc.Follow(ctx, alice, bob))
    assert.ErrorIs(t, svc.Follow(ctx, alice, bob), ErrAlreadyFollowing)
}

func TestFollowUnknownProfile(t *testing.T) {
    svc, mk := newRelationshipFixture(t)
    _, alice := mk("alice")

    err := svc.Follow(context.Background(), alice, "missing")
    assert.ErrorIs(t, err, ErrProfileNotFound)
}

func TestUnfollowWithoutEdge(t *testing.T) {
    svc, mk := newRelationshipFixture(t)
    _, alice := mk("alice")
    _, bob := mk("bob")

    err := svc.Unfollow(context.Background(), alice, bob)
    assert.ErrorIs(t, err, ErrNotFollowing)
}

func TestFollowUnfollowRoundTrip(t *testing.T) {
    svc, mk := newRelationshipFixture(t)
    _, alice := mk("alice")
    _, bob := mk("bob")
    ctx := context.Background()

    require.NoError(t, svc.Follow(ctx, alice, bob))
    following, err := svc.ListFollowing(ctx, alice)
    require.NoError(t, err)
    require.Len(t, following, 1)
    assert.Equal(t, "bob", following[0].Username)

    followers, err := svc.ListFollowers(ctx, bob)
    require.NoError(t, err)
    require.Len(t, followers, 1)
    assert.Equal(t, "alice", followers[0].Username)

    require.NoError(t, svc.Unfollow(ctx, alice, bob))
    following, err = svc.ListFollowing(ctx, alice)
    require.NoError(t, err)
    assert.Empty(t, following)
}

// 好友 = 双向关注的交集，单向关注不算
func TestFriendsAreMutualOnly(t *testing.T) {
    svc, mk := newRelationshipFixture(t)
    _, alice := mk("alice")
    _, bob := mk("bob")
    _, carol := mk("carol")
    ctx := context.Background()

    require.NoError(t, svc.Follow(ctx, alice, bob))
    require.NoError(t, svc.Follow(ctx, bob, alice))
    require.NoError(t, svc.Follow(ctx, alice, carol)) // 单向

    friends, err := svc.ListFriends(ctx, alice)
    require.NoError(t, err)
    require.Len(t, friends, 1)
    assert.Equal(t, "bob", friends[0].Username)

    friends, err = svc.ListFriends(ctx, carol)
    require.NoError(t, err)
    assert.Empty(t, friends)
}

func TestFriendsAfterUnfollow(t *testing.T) {
    svc, mk := newRelationshipFixture(t)
    _, alice := mk("alice")
    _, bob := mk("bob")
    ctx := context.Background()

    require.NoError(t, svc.Follow(ctx, alice, bob))
    require.NoError(t, svc.Follow(ctx, bob, alice))
    require.NoError(t, svc.Unfollow(ctx, bob, alice))

    friends, err := svc.ListFriends(ctx, alice)
    require.NoError(t, err)
    assert.Empty(t, friends)
}
