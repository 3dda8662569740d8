package service

import (
    "context"
    "testing"

    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"
    "gorm.io/gorm"

    "github.com/d60-Lab/cinegraph/internal/model"
    "github.com/d60-Lab/cinegraph/internal/repository"
)

func newChatFixture(t *testing.T, readOnFetch bool) (ChatService, *gorm.DB) {
    db := setupTestDB(t)
    userRepo := repository.NewUserRepository(db)
    chatRepo := repository.NewChatRepository(db)
    perm := NewPermissionService(userRepo, chatRepo)
    return NewChatService(chatRepo, userRepo, perm, readOnFetch), db
}

func TestCreateChatExactlyTwo(t *testing.T) {
    svc, db := newChatFixture(t, false)
    alice, _ := seedUser(t, db, "alice")
    bob, _ := seedUser(t, db, "bob")
    carol, _ := seedUser(t, db, "carol")
    ctx := context.Background()

    // 创建者 ∪ others 必须恰为两人
    _, err := svc.Create(ctx, alice.ID, nil)
    assert.ErrorIs(t, err, ErrInvalidParticipants)
    _, err = svc.Create(ctx, alice.ID, []string{alice.ID})
    assert.ErrorIs(t, err, ErrInvalidParticipants)
    _, err = svc.Create(ctx, alice.ID, []string{bob.ID, carol.ID})
    assert.ErrorIs(t, err, ErrInvalidParticipants)

    chat, err := svc.Create(ctx, alice.ID, []string{bob.ID})
    require.NoError(t, err)
    assert.Len(t, chat.Participants, 2)
}

func TestCreateChatUnknownUser(t *testing.T) {
    svc, db := newChatFixture(t, false)
    alice, _ := seedUser(t, db, "alice")

    _, err := svc.Create(context.Background(), alice.ID, []string{"missing"})
    assert.ErrorIs(t, err, ErrInvalidParticipants)
}

// 重复创建同一对参与者的会话得到两个独立会话
func TestCreateChatDuplicatePair(t *testing.T) {
    svc, db := newChatFixture(t, false)
    alice, _ := seedUser(t, db, "alice")
    bob, _ := seedUser(t, db, "bob")
    ctx := context.Background()

    c1, err := svc.Create(ctx, alice.ID, []string{bob.ID})
    require.NoError(t, err)
    c2, err := svc.Create(ctx, alice.ID, []string{bob.ID})
    require.NoError(t, err)
    assert.NotEqual(t, c1.ID, c2.ID)

    chats, err := svc.ListForUser(ctx, alice.ID)
    require.NoError(t, err)
    assert.Len(t, chats, 2)
}

// 非参与者访问会话与会话不存在不可区分
func TestChatMaskedFromOutsiders(t *testing.T) {
    svc, db := newChatFixture(t, false)
    alice, _ := seedUser(t, db, "alice")
    bob, _ := seedUser(t, db, "bob")
    eve, _ := seedUser(t, db, "eve")
    ctx := context.Background()

    chat, err := svc.Create(ctx, alice.ID, []string{bob.ID})
    require.NoError(t, err)

    _, err = svc.Get(ctx, eve.ID, chat.ID)
    assert.ErrorIs(t, err, ErrChatNotFound)
    _, err = svc.ListMessages(ctx, eve.ID, chat.ID)
    assert.ErrorIs(t, err, ErrChatNotFound)

    chats, err := svc.ListForUser(ctx, eve.ID)
    require.NoError(t, err)
    assert.Empty(t, chats)
}

func TestSendMessageOutsiderLeavesNoRow(t *testing.T) {
    svc, db := newChatFixture(t, false)
    alice, _ := seedUser(t, db, "alice")
    bob, _ := seedUser(t, db, "bob")
    eve, _ := seedUser(t, db, "eve")
    ctx := context.Background()

    chat, err := svc.Create(ctx, alice.ID, []string{bob.ID})
    require.NoError(t, err)

    _, err = svc.SendMessage(ctx, eve.ID, chat.ID, "hi")
    assert.ErrorIs(t, err, ErrNotParticipant)

    var cnt int64
    require.NoError(t, db.Model(&model.DirectMessage{}).Count(&cnt).Error)
    assert.EqualValues(t, 0, cnt)
}

func TestSendMessageUnknownChat(t *testing.T) {
    svc, db := newChatFixture(t, false)
    alice, _ := seedUser(t, db, "alice")

    _, err := svc.SendMessage(context.Background(), alice.ID, "missing", "hi")
    assert.ErrorIs(t, err, ErrChatNotFound)
}

func TestMessagesOrderedAndLastMessage(t *testing.T) {
    svc, db := newChatFixture(t, false)
    alice, _ := seedUser(t, db, "alice")
    bob, _ := seedUser(t, db, "bob")
    ctx := context.Background()

    chat, err := svc.Create(ctx, alice.ID, []string{bob.ID})
    require.NoError(t, err)
    assert.Nil(t, chat.LastMessage)

    for _, text := range []string{"one", "two", "three"} {
        _, err := svc.SendMessage(ctx, alice.ID, chat.ID, text)
        require.NoError(t, err)
    }

    msgs, err := svc.ListMessages(ctx, bob.ID, chat.ID)
    require.NoError(t, err)
    require.Len(t, msgs, 3)
    assert.Equal(t, "one", msgs[0].Content)
    assert.Equal(t, "three", msgs[2].Content)

    got, err := svc.Get(ctx, bob.ID, chat.ID)
    require.NoError(t, err)
    require.NotNil(t, got.LastMessage)
    assert.Equal(t, "three", got.LastMessage.Content)
}

func TestReadOnFetch(t *testing.T) {
    ctx := context.Background()

    t.Run("enabled", func(t *testing.T) {
        svc, db := newChatFixture(t, true)
        alice, _ := seedUser(t, db, "alice")
        bob, _ := seedUser(t, db, "bob")

        chat, err := svc.Create(ctx, alice.ID, []string{bob.ID})
        require.NoError(t, err)
        _, err = svc.SendMessage(ctx, alice.ID, chat.ID, "hi")
        require.NoError(t, err)

        // 接收方拉取后，消息变为已读；发送方拉取不影响自己的消息
        msgs, err := svc.ListMessages(ctx, bob.ID, chat.ID)
        require.NoError(t, err)
        require.Len(t, msgs, 1)
        assert.True(t, msgs[0].IsRead)
    })

    t.Run("disabled", func(t *testing.T) {
        svc, db := newChatFixture(t, false)
        alice, _ := seedUser(t, db, "alice")
        bob, _ := seedUser(t, db, "bob")

        chat, err := svc.Create(ctx, alice.ID, []string{bob.ID})
        require.NoError(t, err)
        _, err = svc.SendMessage(ctx, alice.ID, chat.ID, "hi")
        require.NoError(t, err)

        msgs, err := svc.ListMessages(ctx, bob.ID, chat.ID)
        require.NoError(t, err)
        require.Len(t, msgs, 1)
        assert.False(t, msgs[0].IsRead)
    })
}

func TestSetMessageRead(t *testing.T) {
    svc, db := newChatFixture(t, false)
    alice, _ := seedUser(t, db, "alice")
    bob, _ := seedUser(t, db, "bob")
    eve, _ := seedUser(t, db, "eve")
    ctx := context.Background()

    chat, err := svc.Create(ctx, alice.ID, []string{bob.ID})
    require.NoError(t, err)
    m, err := svc.SendMessage(ctx, alice.ID, chat.ID, "hi")
    require.NoError(t, err)

    // 发送方不能改自己消息的已读标记
    _, err = svc.SetMessageRead(ctx, alice.ID, m.ID, true)
    assert.ErrorIs(t, err, ErrForbidden)

    // 外人看不到该消息
    _, err = svc.SetMessageRead(ctx, eve.ID, m.ID, true)
    assert.ErrorIs(t, err, ErrMessageNotFound)

    got, err := svc.SetMessageRead(ctx, bob.ID, m.ID, true)
    require.NoError(t, err)
    assert.True(t, got.IsRead)
}
