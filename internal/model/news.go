package model

import "time"

// News 作者所有的新闻帖
type News struct {
    ID          string    `gorm:"primaryKey;type:varchar(36)" json:"id"`
    AuthorID    string    `gorm:"type:varchar(36);index:idx_news_author;not null" json:"author_id"`
    Author      User      `gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE" json:"author"`
    Title       string    `gorm:"type:varchar(255);not null" json:"title"`
    Content     string    `gorm:"type:text;not null" json:"content"`
    Image       string    `gorm:"type:varchar(255)" json:"image"`
    CreatedAt   time.Time `json:"created_at"`
    UpdatedAt   time.Time `json:"updated_at"`
    IsPublished bool      `gorm:"default:true" json:"is_published"`
}

func (News) TableName() string { return "news" }
