package model

import "time"

// Review 影评，rating 取值 [1,5]
type Review struct {
    ID        string    `gorm:"primaryKey;type:varchar(36)" json:"id"`
    MovieID   string    `gorm:"type:varchar(36);index:idx_review_movie;not null" json:"movie_id"`
    AuthorID  string    `gorm:"type:varchar(36);index:idx_review_author;not null" json:"author_id"`
    Author    User      `gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE" json:"author"`
    Title     string    `gorm:"type:varchar(200);not null" json:"title"`
    Content   string    `gorm:"type:text" json:"content"`
    Rating    int       `gorm:"not null" json:"rating"`
    CreatedAt time.Time `json:"created_at"`

    Comments []Comment `gorm:"constraint:OnDelete:CASCADE" json:"comments"`
}

func (Review) TableName() string { return "reviews" }

type Comment struct {
    ID        string    `gorm:"primaryKey;type:varchar(36)" json:"id"`
    ReviewID  string    `gorm:"type:varchar(36);index:idx_comment_review;not null" json:"review_id"`
    AuthorID  string    `gorm:"type:varchar(36);not null" json:"author_id"`
    Author    User      `gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE" json:"author"`
    Content   string    `gorm:"type:text;not null" json:"content"`
    CreatedAt time.Time `json:"created_at"`
}

func (Comment) TableName() string { return "comments" }

// ReviewLike 点赞
type ReviewLike struct {
    ID       string `gorm:"primaryKey;type:varchar(36)" json:"id"`
    ReviewID string `gorm:"type:varchar(36);index:idx_like_pair,unique;not null" json:"review_id"`
    UserID   string `gorm:"type:varchar(36);index:idx_like_pair,unique;not null" json:"user_id"`
    // 复合唯一键，同一用户对同一影评只能点一次赞
    // idx_like_pair = (review_id, user_id)
    CreatedAt time.Time `json:"created_at"`
}

func (ReviewLike) TableName() string { return "review_likes" }
