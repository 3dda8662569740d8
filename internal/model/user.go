package model

import "time"

// User 账号主体，email 为登录标识
type User struct {
    ID          string    `gorm:"primaryKey;type:varchar(36)" json:"id"`
    Email       string    `gorm:"type:varchar(254);uniqueIndex;not null" json:"email"`
    Username    string    `gorm:"type:varchar(50);uniqueIndex;not null" json:"username"`
    Password    string    `gorm:"type:varchar(128);not null" json:"-"`
    JoinedDate  time.Time `gorm:"autoCreateTime" json:"joined_date"`
    IsActive    bool      `gorm:"default:true" json:"is_active"`
    IsStaff     bool      `gorm:"default:false" json:"-"`
    IsSuperuser bool      `gorm:"default:false" json:"-"`
}

func (User) TableName() string { return "users" }

// IsAdmin staff 或 superuser 均可执行管理操作
func (u *User) IsAdmin() bool { return u.IsStaff || u.IsSuperuser }
