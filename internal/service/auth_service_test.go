package service

import (
    "context"
    "testing"
    "time"

    "github.com/alicebob/miniredis/v2"
    "github.com/redis/go-redis/v9"
    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"
    "gorm.io/gorm"

    "github.com/d60-Lab/cinegraph/config"
    "github.com/d60-Lab/cinegraph/internal/model"
)

func newAuthFixture(t *testing.T) (AuthService, *gorm.DB) {
    db := setupTestDB(t)
    mr := miniredis.RunT(t)
    cache := redis.NewClient(&redis.Options{Addr: mr.Addr()})
    cfg := config.JWTConfig{
        Secret:     "test-secret",
        Issuer:     "cinegraph",
        AccessTTL:  15 * time.Minute,
        RefreshTTL: 24 * time.Hour,
    }
    return NewAuthService(db, cache, cfg), db
}

func TestRegisterCreatesProfileAndDefaults(t *testing.T) {
    svc, db := newAuthFixture(t)
    seedGenre(t, db, "Drama")
    seedGenre(t, db, "Comedy")
    seedGenre(t, db, "Horror")
    ctx := context.Background()

    u, err := svc.Register(ctx, "alice@example.com", "alice", "password1")
    require.NoError(t, err)
    assert.True(t, u.IsActive)
    assert.NotEqual(t, "password1", u.Password) // 必须是 bcrypt 哈希

    var p model.Profile
    require.NoError(t, db.Preload("FavoriteGenres").First(&p, "user_id = ?", u.ID).Error)
    names := make([]string, 0, len(p.FavoriteGenres))
    for _, g := range p.FavoriteGenres {
        names = append(names, g.Name)
    }
    assert.ElementsMatch(t, []string{"Drama", "Comedy"}, names)
}

// 默认收藏的类型库里没有也能注册成功
func TestRegisterWithoutSeededGenres(t *testing.T) {
    svc, db := newAuthFixture(t)
    ctx := context.Background()

    u, err := svc.Register(ctx, "alice@example.com", "alice", "password1")
    require.NoError(t, err)

    var p model.Profile
    require.NoError(t, db.Preload("FavoriteGenres").First(&p, "user_id = ?", u.ID).Error)
    assert.Empty(t, p.FavoriteGenres)
}

func TestRegisterValidation(t *testing.T) {
    svc, _ := newAuthFixture(t)
    ctx := context.Background()

    _, err := svc.Register(ctx, "not-an-email", "alice", "password1")
    assert.ErrorIs(t, err, ErrInvalidEmail)
    _, err = svc.Register(ctx, "a@example.com", "", "password1")
    assert.ErrorIs(t, err, ErrInvalidUsername)
    _, err = svc.Register(ctx, "a@example.com", "alice", "short")
    assert.ErrorIs(t, err, ErrWeakPassword)
}

func TestRegisterDuplicates(t *testing.T) {
    svc, _ := newAuthFixture(t)
    ctx := context.Background()

    _, err := svc.Register(ctx, "alice@example.com", "alice", "password1")
    require.NoError(t, err)

    _, err = svc.Register(ctx, "alice@example.com", "alice2", "password1")
    assert.ErrorIs(t, err, ErrEmailTaken)
    _, err = svc.Register(ctx, "other@example.com", "alice", "password1")
    assert.ErrorIs(t, err, ErrUsernameTaken)
}

func TestLogin(t *testing.T) {
    svc, db := newAuthFixture(t)
    ctx := context.Background()

    u, err := svc.Register(ctx, "alice@example.com", "alice", "password1")
    require.NoError(t, err)

    pair, got, err := svc.Login(ctx, "alice@example.com", "password1")
    require.NoError(t, err)
    assert.Equal(t, u.ID, got.ID)
    assert.NotEmpty(t, pair.Access)
    assert.NotEmpty(t, pair.Refresh)

    uid, err := svc.ParseAccess(pair.Access)
    require.NoError(t, err)
    assert.Equal(t, u.ID, uid)

    _, _, err = svc.Login(ctx, "alice@example.com", "wrong-pass")
    assert.ErrorIs(t, err, ErrInvalidCredentials)
    _, _, err = svc.Login(ctx, "nobody@example.com", "password1")
    assert.ErrorIs(t, err, ErrInvalidCredentials)

    // 停用的账号与密码错误不可区分
    require.NoError(t, db.Model(&model.User{}).Where("id = ?", u.ID).Update("is_active", false).Error)
    _, _, err = svc.Login(ctx, "alice@example.com", "password1")
    assert.ErrorIs(t, err, ErrInvalidCredentials)
}

// refresh 是轮换式的：旧 token 用过一次即作废
func TestRefreshRotation(t *testing.T) {
    svc, _ := newAuthFixture(t)
    ctx := context.Background()

    _, err := svc.Register(ctx, "alice@example.com", "alice", "password1")
    require.NoError(t, err)
    pair, _, err := svc.Login(ctx, "alice@example.com", "password1")
    require.NoError(t, err)

    next, err := svc.Refresh(ctx, pair.Refresh)
    require.NoError(t, err)
    assert.NotEqual(t, pair.Refresh, next.Refresh)

    _, err = svc.Refresh(ctx, pair.Refresh)
    assert.ErrorIs(t, err, ErrInvalidToken)

    _, err = svc.Refresh(ctx, next.Refresh)
    assert.NoError(t, err)
}

func TestLogoutDenylistsRefresh(t *testing.T) {
    svc, _ := newAuthFixture(t)
    ctx := context.Background()

    _, err := svc.Register(ctx, "alice@example.com", "alice", "password1")
    require.NoError(t, err)
    pair, _, err := svc.Login(ctx, "alice@example.com", "password1")
    require.NoError(t, err)

    require.NoError(t, svc.Logout(ctx, pair.Refresh))
    _, err = svc.Refresh(ctx, pair.Refresh)
    assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenTypeConfusion(t *testing.T) {
    svc, _ := newAuthFixture(t)
    ctx := context.Background()

    _, err := svc.Register(ctx, "alice@example.com", "alice", "password1")
    require.NoError(t, err)
    pair, _, err := svc.Login(ctx, "alice@example.com", "password1")
    require.NoError(t, err)

    // access 不能当 refresh 用，反之亦然
    _, err = svc.Refresh(ctx, pair.Access)
    assert.ErrorIs(t, err, ErrInvalidToken)
    _, err = svc.ParseAccess(pair.Refresh)
    assert.ErrorIs(t, err, ErrInvalidToken)

    _, err = svc.ParseAccess("garbage")
    assert.ErrorIs(t, err, ErrInvalidToken)
}
