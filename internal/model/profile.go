package model

import "time"

// Profile 与 User 一对一，注册时在同一事务内创建
type Profile struct {
    ID        string     `gorm:"primaryKey;type:varchar(36)" json:"id"`
    UserID    string     `gorm:"type:varchar(36);uniqueIndex;not null" json:"user_id"`
    User      User       `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"user"`
    Avatar    string     `gorm:"type:varchar(255)" json:"avatar"`
    Bio       string     `gorm:"type:varchar(500)" json:"bio"`
    Gender    string     `gorm:"type:varchar(10)" json:"gender"` // M / F
    BirthDate *time.Time `json:"birth_date"`
    CreatedAt time.Time  `json:"created_at"`

    FavoriteGenres []Genre  `gorm:"many2many:profile_favorite_genres" json:"favorite_genres"`
    FavoriteMovies []Movie  `gorm:"many2many:profile_favorite_movies" json:"favorite_movies"`
    FavoriteSeries []Series `gorm:"many2many:profile_favorite_series" json:"favorite_series"`
}

func (Profile) TableName() string { return "profiles" }

// Follow 关注关系（A 关注 B），两端都是 profile id
type Follow struct {
    ID         string `gorm:"primaryKey;type:varchar(36)"`
    FollowerID string `gorm:"type:varchar(36);index:idx_follow_follower;index:idx_follow_pair,unique;not null"`
    FolloweeID string `gorm:"type:varchar(36);index:idx_follow_followee;index:idx_follow_pair,unique;not null"`
    // 复合唯一键，避免重复关注
    // idx_follow_pair = (follower_id, followee_id)
    CreatedAt time.Time
}

func (Follow) TableName() string { return "follows" }
