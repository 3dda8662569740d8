package repository

import (
    "context"

    "gorm.io/gorm"

    "github.com/d60-Lab/cinegraph/internal/model"
)

type ChatRepository interface {
    // CreateWithParticipants 会话行与参与者写入同一事务，任一步失败整体回滚
    CreateWithParticipants(ctx context.Context, chat *model.Chat, participants []model.User) error
    GetByID(ctx context.Context, id string) (*model.Chat, error)
    ListByUser(ctx context.Context, userID string) ([]*model.Chat, error)
    IsParticipant(ctx context.Context, chatID, userID string) (bool, error)

    CreateMessage(ctx context.Context, m *model.DirectMessage) error
    GetMessage(ctx context.Context, id string) (*model.DirectMessage, error)
    // ListMessages 按 created_at 升序（id 兜底），markReadFor 非空时在同一事务内
    // 把对方发来的未读消息置为已读
    ListMessages(ctx context.Context, chatID, markReadFor string) ([]*model.DirectMessage, error)
    LastMessage(ctx context.Context, chatID string) (*model.DirectMessage, error)
    SetMessageRead(ctx context.Context, id string, read bool) error
}

type chatRepository struct{ db *gorm.DB }

func NewChatRepository(db *gorm.DB) ChatRepository { return &chatRepository{db: db} }

func (r *chatRepository) CreateWithParticipants(ctx context.Context, chat *model.Chat, participants []model.User) error {
    return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
        if err := tx.Omit("Participants").Create(chat).Error; err != nil {
            return err
        }
        if err := tx.Model(chat).Association("Participants").Append(participants); err != nil {
            return err
        }
        return nil
    })
}

func (r *chatRepository) GetByID(ctx context.Context, id string) (*model.Chat, error) {
    var c model.Chat
    if err := r.db.WithContext(ctx).Preload("Participants").First(&c, "id = ?", id).Error; err != nil {
        return nil, err
    }
    return &c, nil
}

func (r *chatRepository) ListByUser(ctx context.Context, userID string) ([]*model.Chat, error) {
    var res []*model.Chat
    err := r.db.WithContext(ctx).
        Preload("Participants").
        Joins("JOIN chat_participants cp ON cp.chat_id = chats.id").
        Where("cp.user_id = ?", userID).
        Order("chats.created_at DESC").
        Find(&res).Error
    return res, err
}

func (r *chatRepository) IsParticipant(ctx context.Context, chatID, userID string) (bool, error) {
    var cnt int64
    err := r.db.WithContext(ctx).Table("chat_participants").
        Where("chat_id = ? AND user_id = ?", chatID, userID).
        Count(&cnt).Error
    if err != nil {
        return false, err
    }
    return cnt > 0, nil
}

func (r *chatRepository) CreateMessage(ctx context.Context, m *model.DirectMessage) error {
    return r.db.WithContext(ctx).Create(m).Error
}

func (r *chatRepository) GetMessage(ctx context.Context, id string) (*model.DirectMessage, error) {
    var m model.DirectMessage
    if err := r.db.WithContext(ctx).Preload("Sender").First(&m, "id = ?", id).Error; err != nil {
        return nil, err
    }
    return &m, nil
}

func (r *chatRepository) ListMessages(ctx context.Context, chatID, markReadFor string) ([]*model.DirectMessage, error) {
    var res []*model.DirectMessage
    err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
        if markReadFor != "" {
            if err := tx.Model(&model.DirectMessage{}).
                Where("chat_id = ? AND sender_id <> ? AND is_read = ?", chatID, markReadFor, false).
                Update("is_read", true).Error; err != nil {
                return err
            }
        }
        return tx.Preload("Sender").
            Where("chat_id = ?", chatID).
            Order("created_at, id").
            Find(&res).Error
    })
    return res, err
}

func (r *chatRepository) LastMessage(ctx context.Context, chatID string) (*model.DirectMessage, error) {
    var m model.DirectMessage
    err := r.db.WithContext(ctx).Preload("Sender").
        Where("chat_id = ?", chatID).
        Order("created_at DESC, id DESC").
        First(&m).Error
    if err != nil {
        return nil, err
    }
    return &m, nil
}

func (r *chatRepository) SetMessageRead(ctx context.Context, id string, read bool) error {
    return r.db.WithContext(ctx).Model(&model.DirectMessage{}).
        Where("id = ?", id).Update("is_read", read).Error
}
