package service

import (
    "testing"

    "github.com/google/uuid"
    "gorm.io/driver/sqlite"
    "gorm.io/gorm"

    "github.com/d60-Lab/cinegraph/internal/model"
)

// TranslateError 必须打开，重复关注/点赞的检测依赖 gorm.ErrDuplicatedKey
func setupTestDB(t *testing.T) *gorm.DB {
    t.Helper()
    db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
    if err != nil {
        t.Fatalf("open db: %v", err)
    }
    if err := db.AutoMigrate(model.All()...); err != nil {
        t.Fatalf("migrate: %v", err)
    }
    return db
}

// seedUser 建号 + 建 profile，返回两者
func seedUser(t *testing.T, db *gorm.DB, username string) (*model.User, *model.Profile) {
    t.Helper()
    u := &model.User{
        ID:       uuid.New().String(),
        Email:    username + "@example.com",
        Username: username,
        Password: "hash",
        IsActive: true,
    }
    if err := db.Create(u).Error; err != nil {
        t.Fatalf("seed user %s: %v", username, err)
    }
    p := &model.Profile{ID: uuid.New().String(), UserID: u.ID}
    if err := db.Create(p).Error; err != nil {
        t.Fatalf("seed profile %s: %v", username, err)
    }
    return u, p
}

func seedAdmin(t *testing.T, db *gorm.DB, username string) (*model.User, *model.Profile) {
    t.Helper()
    u, p := seedUser(t, db, username)
    if err := db.Model(u).Update("is_staff", true).Error; err != nil {
        t.Fatalf("promote %s: %v", username, err)
    }
    u.IsStaff = true
    return u, p
}

func seedMovie(t *testing.T, db *gorm.DB, title string) *model.Movie {
    t.Helper()
    m := &model.Movie{ID: uuid.New().String(), Title: title}
    if err := db.Create(m).Error; err != nil {
        t.Fatalf("seed movie %s: %v", title, err)
    }
    return m
}

func seedGenre(t *testing.T, db *gorm.DB, name string) *model.Genre {
    t.Helper()
    g := &model.Genre{ID: uuid.New().String(), Name: name}
    if err := db.Create(g).Error; err != nil {
        t.Fatalf("seed genre %s: %v", name, err)
    }
    return g
}
