package service

import (
    "context"
    "errors"

    "github.com/google/uuid"
    "gorm.io/gorm"

    "github.com/d60-Lab/cinegraph/internal/model"
    "github.com/d60-Lab/cinegraph/internal/repository"
)

var (
    ErrInvalidParticipants = errors.New("chat requires exactly two distinct existing participants")
    ErrChatNotFound        = errors.New("chat not found")
    ErrNotParticipant      = errors.New("not a participant of this chat")
    ErrMessageNotFound     = errors.New("message not found")
)

// ChatWithLastMessage 会话投影，last_message 读时取最新一条
type ChatWithLastMessage struct {
    *model.Chat
    LastMessage *model.DirectMessage
}

type ChatService interface {
    // Create 参与者集合 = {创建者} ∪ others，必须恰为两个不同的已存在用户
    Create(ctx context.Context, creatorID string, otherIDs []string) (*ChatWithLastMessage, error)
    Get(ctx context.Context, actorID, chatID string) (*ChatWithLastMessage, error)
    ListForUser(ctx context.Context, actorID string) ([]*ChatWithLastMessage, error)
    SendMessage(ctx context.Context, senderID, chatID, content string) (*model.DirectMessage, error)
    ListMessages(ctx context.Context, actorID, chatID string) ([]*model.DirectMessage, error)
    // SetMessageRead 只有消息的接收方可以改已读标记
    SetMessageRead(ctx context.Context, actorID, messageID string, read bool) (*model.DirectMessage, error)
}

type chatService struct {
    chatRepo    repository.ChatRepository
    userRepo    repository.UserRepository
    perm        PermissionService
    readOnFetch bool
}

func NewChatService(chatRepo repository.ChatRepository, userRepo repository.UserRepository, perm PermissionService, readOnFetch bool) ChatService {
    return &chatService{chatRepo: chatRepo, userRepo: userRepo, perm: perm, readOnFetch: readOnFetch}
}

func (s *chatService) Create(ctx context.Context, creatorID string, otherIDs []string) (*ChatWithLastMessage, error) {
    ids := map[string]struct{}{creatorID: {}}
    for _, id := range otherIDs {
        ids[id] = struct{}{}
    }
    if len(ids) != 2 {
        return nil, ErrInvalidParticipants
    }
    participants := make([]model.User, 0, 2)
    for id := range ids {
        u, err := s.userRepo.GetByID(ctx, id)
        if err != nil {
            if errors.Is(err, gorm.ErrRecordNotFound) {
                return nil, ErrInvalidParticipants
            }
            return nil, err
        }
        participants = append(participants, *u)
    }
    chat := &model.Chat{ID: uuid.New().String()}
    if err := s.chatRepo.CreateWithParticipants(ctx, chat, participants); err != nil {
        return nil, err
    }
    return s.Get(ctx, creatorID, chat.ID)
}

// Get 非参与者得到与不存在一致的结果
func (s *chatService) Get(ctx context.Context, actorID, chatID string) (*ChatWithLastMessage, error) {
    chat, err := s.chatRepo.GetByID(ctx, chatID)
    if err != nil {
        if errors.Is(err, gorm.ErrRecordNotFound) {
            return nil, ErrChatNotFound
        }
        return nil, err
    }
    ok, err := s.perm.CanAccessChat(ctx, actorID, chatID)
    if err != nil {
        return nil, err
    }
    if !ok {
        return nil, ErrChatNotFound
    }
    return s.withLastMessage(ctx, chat)
}

func (s *chatService) ListForUser(ctx context.Context, actorID string) ([]*ChatWithLastMessage, error) {
    chats, err := s.chatRepo.ListByUser(ctx, actorID)
    if err != nil {
        return nil, err
    }
    res := make([]*ChatWithLastMessage, 0, len(chats))
    for _, c := range chats {
        cwm, err := s.withLastMessage(ctx, c)
        if err != nil {
            return nil, err
        }
        res = append(res, cwm)
    }
    return res, nil
}

func (s *chatService) SendMessage(ctx context.Context, senderID, chatID, content string) (*model.DirectMessage, error) {
    if _, err := s.chatRepo.GetByID(ctx, chatID); err != nil {
        if errors.Is(err, gorm.ErrRecordNotFound) {
            return nil, ErrChatNotFound
        }
        return nil, err
    }
    ok, err := s.perm.CanAccessChat(ctx, senderID, chatID)
    if err != nil {
        return nil, err
    }
    if !ok {
        return nil, ErrNotParticipant
    }
    m := &model.DirectMessage{
        ID:       uuid.New().String(),
        ChatID:   chatID,
        SenderID: senderID,
        Content:  content,
    }
    if err := s.chatRepo.CreateMessage(ctx, m); err != nil {
        return nil, err
    }
    return s.chatRepo.GetMessage(ctx, m.ID)
}

func (s *chatService) ListMessages(ctx context.Context, actorID, chatID string) ([]*model.DirectMessage, error) {
    if _, err := s.chatRepo.GetByID(ctx, chatID); err != nil {
        if errors.Is(err, gorm.ErrRecordNotFound) {
            return nil, ErrChatNotFound
        }
        return nil, err
    }
    ok, err := s.perm.CanAccessChat(ctx, actorID, chatID)
    if err != nil {
        return nil, err
    }
    if !ok {
        return nil, ErrChatNotFound
    }
    markReadFor := ""
    if s.readOnFetch {
        markReadFor = actorID
    }
    return s.chatRepo.ListMessages(ctx, chatID, markReadFor)
}

func (s *chatService) SetMessageRead(ctx context.Context, actorID, messageID string, read bool) (*model.DirectMessage, error) {
    m, err := s.chatRepo.GetMessage(ctx, messageID)
    if err != nil {
        if errors.Is(err, gorm.ErrRecordNotFound) {
            return nil, ErrMessageNotFound
        }
        return nil, err
    }
    ok, err := s.perm.CanAccessChat(ctx, actorID, m.ChatID)
    if err != nil {
        return nil, err
    }
    if !ok {
        return nil, ErrMessageNotFound
    }
    if m.SenderID == actorID {
        return nil, ErrForbidden
    }
    if err := s.chatRepo.SetMessageRead(ctx, messageID, read); err != nil {
        return nil, err
    }
    m.IsRead = read
    return m, nil
}

func (s *chatService) withLastMessage(ctx context.Context, chat *model.Chat) (*ChatWithLastMessage, error) {
    last, err := s.chatRepo.LastMessage(ctx, chat.ID)
    if err != nil {
        if errors.Is(err, gorm.ErrRecordNotFound) {
            return &ChatWithLastMessage{Chat: chat}, nil
        }
        return nil, err
    }
    return &ChatWithLastMessage{Chat: chat, LastMessage: last}, nil
}
