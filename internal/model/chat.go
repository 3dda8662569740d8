package model

import "time"

// Chat 两人会话，参与者恒为 2，创建时与参与者写入同一事务
type Chat struct {
    ID           string    `gorm:"primaryKey;type:varchar(36)" json:"id"`
    CreatedAt    time.Time `json:"created_at"`
    Participants []User    `gorm:"many2many:chat_participants" json:"participants"`
}

func (Chat) TableName() string { return "chats" }

type DirectMessage struct {
    ID        string    `gorm:"primaryKey;type:varchar(36)" json:"id"`
    ChatID    string    `gorm:"type:varchar(36);index:idx_message_chat;not null" json:"chat_id"`
    SenderID  string    `gorm:"type:varchar(36);not null" json:"sender_id"`
    Sender    User      `gorm:"foreignKey:SenderID;constraint:OnDelete:CASCADE" json:"sender"`
    Content   string    `gorm:"type:text;not null" json:"content"`
    CreatedAt time.Time `gorm:"index:idx_message_chat_time" json:"created_at"`
    IsRead    bool      `gorm:"default:false" json:"is_read"`
}

func (DirectMessage) TableName() string { return "direct_messages" }
