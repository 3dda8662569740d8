package service

import (
    "context"
    "testing"

    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"
    "gorm.io/gorm"

    "github.com/d60-Lab/cinegraph/config"
    "github.com/d60-Lab/cinegraph/internal/repository"
)

func newNewsFixture(t *testing.T) (NewsService, *gorm.DB) {
    db := setupTestDB(t)
    perm := NewPermissionService(repository.NewUserRepository(db), repository.NewChatRepository(db))
    svc := NewNewsService(repository.NewNewsRepository(db), perm, config.UploadConfig{Dir: t.TempDir(), MaxBytes: 1 << 20})
    return svc, db
}

func TestNewsLifecycle(t *testing.T) {
    svc, db := newNewsFixture(t)
    author, _ := seedUser(t, db, "alice")
    ctx := context.Background()

    n, err := svc.Create(ctx, author.ID, "Title", "Body", true)
    require.NoError(t, err)
    assert.Equal(t, "alice", n.Author.Username)
    assert.True(t, n.IsPublished)

    n, err = svc.Update(ctx, author.ID, n.ID, "Title", "Body", false)
    require.NoError(t, err)
    assert.False(t, n.IsPublished)

    require.NoError(t, svc.Delete(ctx, author.ID, n.ID))
    _, err = svc.Get(ctx, n.ID)
    assert.ErrorIs(t, err, ErrNotFound)
}

func TestNewsPermissions(t *testing.T) {
    svc, db := newNewsFixture(t)
    author, _ := seedUser(t, db, "alice")
    stranger, _ := seedUser(t, db, "bob")
    admin, _ := seedAdmin(t, db, "root")
    ctx := context.Background()

    n, err := svc.Create(ctx, author.ID, "Title", "Body", true)
    require.NoError(t, err)

    _, err = svc.Update(ctx, stranger.ID, n.ID, "x", "y", true)
    assert.ErrorIs(t, err, ErrForbidden)
    assert.ErrorIs(t, svc.Delete(ctx, stranger.ID, n.ID), ErrForbidden)

    // 管理员可以代删
    require.NoError(t, svc.Delete(ctx, admin.ID, n.ID))
}

func TestNewsListNewestFirst(t *testing.T) {
    svc, db := newNewsFixture(t)
    author, _ := seedUser(t, db, "alice")
    ctx := context.Background()

    first, err := svc.Create(ctx, author.ID, "first", "x", true)
    require.NoError(t, err)
    second, err := svc.Create(ctx, author.ID, "second", "y", true)
    require.NoError(t, err)

    list, err := svc.List(ctx, 0, 10)
    require.NoError(t, err)
    require.Len(t, list, 2)
    assert.Equal(t, second.ID, list[0].ID)
    assert.Equal(t, first.ID, list[1].ID)
}
