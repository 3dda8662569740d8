package service

import (
    "context"
    "errors"
    "net/mail"
    "time"

    "github.com/golang-jwt/jwt/v5"
    "github.com/google/uuid"
    "github.com/redis/go-redis/v9"
    "golang.org/x/crypto/bcrypt"
    "gorm.io/gorm"

    "github.com/d60-Lab/cinegraph/config"
    "github.com/d60-Lab/cinegraph/internal/model"
)

var (
    ErrInvalidEmail       = errors.New("invalid email address")
    ErrInvalidUsername    = errors.New("username must be 1-50 characters")
    ErrWeakPassword       = errors.New("password must be at least 8 characters")
    ErrEmailTaken         = errors.New("email already registered")
    ErrUsernameTaken      = errors.New("username already taken")
    ErrInvalidCredentials = errors.New("invalid credentials")
    ErrInvalidToken       = errors.New("invalid or expired token")
)

// 注册时附带的默认收藏类型（库里存在才挂）
var defaultFavoriteGenres = []string{"Drama", "Comedy"}

const (
    tokenTypeAccess  = "access"
    tokenTypeRefresh = "refresh"
)

// Claims 自定义 JWT 载荷
type Claims struct {
    UserID    string `json:"uid"`
    TokenType string `json:"typ"`
    jwt.RegisteredClaims
}

type TokenPair struct {
    Access  string `json:"access"`
    Refresh string `json:"refresh"`
}

type AuthService interface {
    Register(ctx context.Context, email, username, password string) (*model.User, error)
    Login(ctx context.Context, email, password string) (*TokenPair, *model.User, error)
    Refresh(ctx context.Context, refreshToken string) (*TokenPair, error)
    Logout(ctx context.Context, refreshToken string) error
    // ParseAccess 供认证中间件使用，返回 user id
    ParseAccess(tokenString string) (string, error)
}

type authService struct {
    db    *gorm.DB
    cache *redis.Client
    cfg   config.JWTConfig
}

func NewAuthService(db *gorm.DB, cache *redis.Client, cfg config.JWTConfig) AuthService {
    return &authService{db: db, cache: cache, cfg: cfg}
}

// Register 用户与 profile 在同一事务内创建，保证「每个 User 恰有一个 Profile」
func (s *authService) Register(ctx context.Context, email, username, password string) (*model.User, error) {
    if _, err := mail.ParseAddress(email); err != nil {
        return nil, ErrInvalidEmail
    }
    if username == "" || len(username) > 50 {
        return nil, ErrInvalidUsername
    }
    if len(password) < 8 {
        return nil, ErrWeakPassword
    }

    var cnt int64
    if err := s.db.WithContext(ctx).Model(&model.User{}).Where("email = ?", email).Count(&cnt).Error; err != nil {
        return nil, err
    }
    if cnt > 0 {
        return nil, ErrEmailTaken
    }
    if err := s.db.WithContext(ctx).Model(&model.User{}).Where("username = ?", username).Count(&cnt).Error; err != nil {
        return nil, err
    }
    if cnt > 0 {
        return nil, ErrUsernameTaken
    }

    hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
    if err != nil {
        return nil, err
    }

    user := &model.User{
        ID:       uuid.New().String(),
        Email:    email,
        Username: username,
        Password: string(hash),
        IsActive: true,
    }
    err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
        if err := tx.Create(user).Error; err != nil {
            return err
        }
        profile := &model.Profile{ID: uuid.New().String(), UserID: user.ID}
        if err := tx.Create(profile).Error; err != nil {
            return err
        }
        var genres []model.Genre
        if err := tx.Where("name IN ?", defaultFavoriteGenres).Find(&genres).Error; err != nil {
            return err
        }
        if len(genres) > 0 {
            if err := tx.Model(profile).Association("FavoriteGenres").Append(genres); err != nil {
                return err
            }
        }
        return nil
    })
    if err != nil {
        // 并发注册下预检可能漏掉，唯一键冲突兜底
        if errors.Is(err, gorm.ErrDuplicatedKey) {
            return nil, ErrEmailTaken
        }
        return nil, err
    }
    return user, nil
}

func (s *authService) Login(ctx context.Context, email, password string) (*TokenPair, *model.User, error) {
    var user model.User
    if err := s.db.WithContext(ctx).First(&user, "email = ?", email).Error; err != nil {
        if errors.Is(err, gorm.ErrRecordNotFound) {
            return nil, nil, ErrInvalidCredentials
        }
        return nil, nil, err
    }
    if !user.IsActive {
        return nil, nil, ErrInvalidCredentials
    }
    if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
        return nil, nil, ErrInvalidCredentials
    }
    pair, err := s.issuePair(user.ID)
    if err != nil {
        return nil, nil, err
    }
    return pair, &user, nil
}

// Refresh 轮换：旧 refresh 进入黑名单，签发新的一对
func (s *authService) Refresh(ctx context.Context, refreshToken string) (*TokenPair, error) {
    claims, err := s.parse(ctx, refreshToken, tokenTypeRefresh)
    if err != nil {
        return nil, err
    }
    if err := s.denylist(ctx, claims); err != nil {
        return nil, err
    }
    return s.issuePair(claims.UserID)
}

// Logout 将 refresh token 的 jti 写入黑名单直到其自然过期
func (s *authService) Logout(ctx context.Context, refreshToken string) error {
    claims, err := s.parse(ctx, refreshToken, tokenTypeRefresh)
    if err != nil {
        return err
    }
    return s.denylist(ctx, claims)
}

func (s *authService) ParseAccess(tokenString string) (string, error) {
    claims, err := s.parseNoDenylist(tokenString, tokenTypeAccess)
    if err != nil {
        return "", err
    }
    return claims.UserID, nil
}

func (s *authService) issuePair(userID string) (*TokenPair, error) {
    access, err := s.sign(userID, tokenTypeAccess, s.cfg.AccessTTL)
    if err != nil {
        return nil, err
    }
    refresh, err := s.sign(userID, tokenTypeRefresh, s.cfg.RefreshTTL)
    if err != nil {
        return nil, err
    }
    return &TokenPair{Access: access, Refresh: refresh}, nil
}

func (s *authService) sign(userID, typ string, ttl time.Duration) (string, error) {
    now := time.Now()
    claims := &Claims{
        UserID:    userID,
        TokenType: typ,
        RegisteredClaims: jwt.RegisteredClaims{
            ID:        uuid.New().String(),
            Issuer:    s.cfg.Issuer,
            IssuedAt:  jwt.NewNumericDate(now),
            ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
        },
    }
    return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.cfg.Secret))
}

func (s *authService) parseNoDenylist(tokenString, wantType string) (*Claims, error) {
    var claims Claims
    token, err := jwt.ParseWithClaims(tokenString, &claims, func(t *jwt.Token) (interface{}, error) {
        if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
            return nil, ErrInvalidToken
        }
        return []byte(s.cfg.Secret), nil
    })
    if err != nil || !token.Valid || claims.TokenType != wantType {
        return nil, ErrInvalidToken
    }
    return &claims, nil
}

func (s *authService) parse(ctx context.Context, tokenString, wantType string) (*Claims, error) {
    claims, err := s.parseNoDenylist(tokenString, wantType)
    if err != nil {
        return nil, err
    }
    n, err := s.cache.Exists(ctx, denyKey(claims.ID)).Result()
    if err != nil {
        return nil, err
    }
    if n > 0 {
        return nil, ErrInvalidToken
    }
    return claims, nil
}

func (s *authService) denylist(ctx context.Context, claims *Claims) error {
    ttl := time.Until(claims.ExpiresAt.Time)
    if ttl <= 0 {
        return nil
    }
    return s.cache.Set(ctx, denyKey(claims.ID), "1", ttl).Err()
}

func denyKey(jti string) string { return "auth:deny:" + jti }
