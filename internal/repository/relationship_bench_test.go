package repository

import (
    "context"
    "fmt"
    "math/rand"
    "testing"

    "gorm.io/driver/sqlite"
    "gorm.io/gorm"

    "github.com/d60-Lab/cinegraph/internal/model"
)

func setupRelBenchDB(b *testing.B) *gorm.DB {
    db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
    if err != nil {
        b.Fatalf("open db: %v", err)
    }
    if err := db.AutoMigrate(&model.User{}, &model.Profile{}, &model.Follow{}); err != nil {
        b.Fatalf("migrate: %v", err)
    }
    return db
}

func seedBenchProfiles(b *testing.B, db *gorm.DB, n int) []string {
    users := make([]model.User, n)
    profiles := make([]model.Profile, n)
    ids := make([]string, n)
    for i := 0; i < n; i++ {
        uid := fmt.Sprintf("u%05d", i)
        pid := fmt.Sprintf("p%05d", i)
        users[i] = model.User{ID: uid, Username: uid, Email: uid + "@example.com", Password: "p"}
        profiles[i] = model.Profile{ID: pid, UserID: uid}
        ids[i] = pid
    }
    if err := db.CreateInBatches(&users, 500).Error; err != nil {
        b.Fatalf("seed users: %v", err)
    }
    if err := db.CreateInBatches(&profiles, 500).Error; err != nil {
        b.Fatalf("seed profiles: %v", err)
    }
    return ids
}

func BenchmarkFollowWrite(b *testing.B) {
    db := setupRelBenchDB(b)
    repo := NewFollowRepository(db)
    ctx := context.Background()
    ids := seedBenchProfiles(b, db, 1000)

    b.ResetTimer()
    for i := 0; i < b.N; i++ {
        from := ids[rand.Intn(len(ids))]
        to := ids[rand.Intn(len(ids))]
        if from == to {
            continue
        }
        _ = repo.Create(ctx, from, to)
    }
}

func BenchmarkListFollowersAndFriends(b *testing.B) {
    db := setupRelBenchDB(b)
    repo := NewFollowRepository(db)
    ctx := context.Background()

    // 构造：p0 有 N 个粉丝，其中一半互关（即好友）
    const N = 5000
    ids := seedBenchProfiles(b, db, N+1)
    p0 := ids[0]
    for i := 1; i <= N; i++ {
        _ = repo.Create(ctx, ids[i], p0)
        if i%2 == 0 {
            _ = repo.Create(ctx, p0, ids[i])
        }
    }

    b.ResetTimer()
    b.Run("ListFollowers", func(b *testing.B) {
        for i := 0; i < b.N; i++ {
            _, _ = repo.ListFollowers(ctx, p0)
        }
    })

    b.Run("ListFriends", func(b *testing.B) {
        for i := 0; i < b.N; i++ {
            _, _ = repo.ListFriends(ctx, p0)
        }
    })
}
