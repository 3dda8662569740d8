package handler_test

import (
    "bytes"
    "encoding/json"
    "fmt"
    "net/http"
    "net/http/httptest"
    "testing"
    "time"

    "github.com/alicebob/miniredis/v2"
    "github.com/gin-gonic/gin"
    "github.com/redis/go-redis/v9"
    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"
    "gorm.io/driver/sqlite"
    "gorm.io/gorm"

    "github.com/d60-Lab/cinegraph/config"
    "github.com/d60-Lab/cinegraph/internal/api/handler"
    "github.com/d60-Lab/cinegraph/internal/api/router"
    "github.com/d60-Lab/cinegraph/internal/model"
    "github.com/d60-Lab/cinegraph/internal/repository"
    "github.com/d60-Lab/cinegraph/internal/service"
)

// 起一个完整的路由栈，走真实 sqlite + miniredis
func newTestServer(t *testing.T) (*gin.Engine, *gorm.DB) {
    t.Helper()
    db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
    require.NoError(t, err)
    require.NoError(t, db.AutoMigrate(model.All()...))

    mr := miniredis.RunT(t)
    cache := redis.NewClient(&redis.Options{Addr: mr.Addr()})

    cfg := &config.Config{
        Server:    config.ServerConfig{Mode: "release"},
        JWT:       config.JWTConfig{Secret: "test-secret", Issuer: "cinegraph", AccessTTL: 15 * time.Minute, RefreshTTL: 24 * time.Hour},
        Upload:    config.UploadConfig{Dir: t.TempDir(), MaxBytes: 1 << 20},
        RateLimit: config.RateLimitConfig{RPS: 1000, Burst: 1000},
    }

    userRepo := repository.NewUserRepository(db)
    profileRepo := repository.NewProfileRepository(db)
    followRepo := repository.NewFollowRepository(db)
    catalogRepo := repository.NewCatalogRepository(db)
    reviewRepo := repository.NewReviewRepository(db)
    chatRepo := repository.NewChatRepository(db)
    newsRepo := repository.NewNewsRepository(db)

    perm := service.NewPermissionService(userRepo, chatRepo)
    authService := service.NewAuthService(db, cache, cfg.JWT)
    profileService := service.NewProfileService(profileRepo, followRepo, catalogRepo, perm, cfg.Upload)
    relService := service.NewRelationshipService(followRepo, profileRepo)
    catalogService := service.NewCatalogService(catalogRepo, cfg.Upload)
    reviewService := service.NewReviewService(reviewRepo, catalogRepo, perm)
    chatService := service.NewChatService(chatRepo, userRepo, perm, false)
    newsService := service.NewNewsService(newsRepo, perm, cfg.Upload)

    h := handler.New(authService, profileService, relService, catalogService, reviewService, chatService, newsService)
    uh := handler.NewUserHandler(userRepo)
    return router.New(cfg, h, uh, authService, perm), db
}

func doJSON(t *testing.T, engine *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
    t.Helper()
    var buf bytes.Buffer
    if body != nil {
        require.NoError(t, json.NewEncoder(&buf).Encode(body))
    }
    req := httptest.NewRequest(method, path, &buf)
    req.Header.Set("Content-Type", "application/json")
    req.Header.Set("Accept-Encoding", "identity")
    if token != "" {
        req.Header.Set("Authorization", "Bearer "+token)
    }
    w := httptest.NewRecorder()
    engine.ServeHTTP(w, req)
    return w
}

// registerAndLogin 返回 (access token, profile id)
func registerAndLogin(t *testing.T, engine *gin.Engine, db *gorm.DB, username string) (string, string) {
    t.Helper()
    w := doJSON(t, engine, http.MethodPost, "/api/v1/auth/register", "", gin.H{
        "email":    username + "@example.com",
        "username": username,
        "password": "password1",
    })
    require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

    w = doJSON(t, engine, http.MethodPost, "/api/v1/auth/login", "", gin.H{
        "email":    username + "@example.com",
        "password": "password1",
    })
    require.Equal(t, http.StatusOK, w.Code, w.Body.String())

    var resp struct {
        Data struct {
            Access string `json:"access"`
            User   struct {
                ID string `json:"id"`
            } `json:"user"`
        } `json:"data"`
    }
    require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

    var p model.Profile
    require.NoError(t, db.First(&p, "user_id = ?", resp.Data.User.ID).Error)
    return resp.Data.Access, p.ID
}

func TestFollowEndpoints(t *testing.T) {
    engine, db := newTestServer(t)
    aliceToken, _ := registerAndLogin(t, engine, db, "alice")
    _, bobProfile := registerAndLogin(t, engine, db, "bob")

    // 未认证
    w := doJSON(t, engine, http.MethodPost, "/api/v1/profiles/"+bobProfile+"/follow", "", nil)
    assert.Equal(t, http.StatusUnauthorized, w.Code)

    w = doJSON(t, engine, http.MethodPost, "/api/v1/profiles/"+bobProfile+"/follow", aliceToken, nil)
    assert.Equal(t, http.StatusOK, w.Code, w.Body.String())

    // 重复关注 -> 400
    w = doJSON(t, engine, http.MethodPost, "/api/v1/profiles/"+bobProfile+"/follow", aliceToken, nil)
    assert.Equal(t, http.StatusBadRequest, w.Code)

    // 粉丝列表公开可读
    w = doJSON(t, engine, http.MethodGet, "/api/v1/profiles/"+bobProfile+"/followers", "", nil)
    require.Equal(t, http.StatusOK, w.Code)
    var resp struct {
        Data []struct {
            Username string `json:"username"`
        } `json:"data"`
    }
    require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
    require.Len(t, resp.Data, 1)
    assert.Equal(t, "alice", resp.Data[0].Username)

    w = doJSON(t, engine, http.MethodPost, "/api/v1/profiles/"+bobProfile+"/unfollow", aliceToken, nil)
    assert.Equal(t, http.StatusOK, w.Code)
    w = doJSON(t, engine, http.MethodPost, "/api/v1/profiles/"+bobProfile+"/unfollow", aliceToken, nil)
    assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCatalogAdminGate(t *testing.T) {
    engine, db := newTestServer(t)
    token, _ := registerAndLogin(t, engine, db, "alice")

    body := gin.H{"name": "Drama"}
    w := doJSON(t, engine, http.MethodPost, "/api/v1/genres", "", body)
    assert.Equal(t, http.StatusUnauthorized, w.Code)

    // 普通用户 -> 403
    w = doJSON(t, engine, http.MethodPost, "/api/v1/genres", token, body)
    assert.Equal(t, http.StatusForbidden, w.Code)

    require.NoError(t, db.Model(&model.User{}).Where("username = ?", "alice").Update("is_staff", true).Error)
    w = doJSON(t, engine, http.MethodPost, "/api/v1/genres", token, body)
    assert.Equal(t, http.StatusCreated, w.Code, w.Body.String())

    // 读接口无需认证
    w = doJSON(t, engine, http.MethodGet, "/api/v1/genres", "", nil)
    assert.Equal(t, http.StatusOK, w.Code)
}

func TestChatEndpointsMask(t *testing.T) {
    engine, db := newTestServer(t)
    aliceToken, _ := registerAndLogin(t, engine, db, "alice")
    eveToken, _ := registerAndLogin(t, engine, db, "eve")

    var bob model.User
    registerAndLogin(t, engine, db, "bob")
    require.NoError(t, db.First(&bob, "username = ?", "bob").Error)

    w := doJSON(t, engine, http.MethodPost, "/api/v1/chats", aliceToken, gin.H{"participants": []string{bob.ID}})
    require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
    var created struct {
        Data struct {
            ID string `json:"id"`
        } `json:"data"`
    }
    require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

    // 非参与者读会话 -> 404（与不存在不可区分）
    w = doJSON(t, engine, http.MethodGet, "/api/v1/chats/"+created.Data.ID, eveToken, nil)
    assert.Equal(t, http.StatusNotFound, w.Code)

    // 非参与者发消息 -> 403
    w = doJSON(t, engine, http.MethodPost, "/api/v1/messages", eveToken, gin.H{
        "chat":    created.Data.ID,
        "content": "hi",
    })
    assert.Equal(t, http.StatusForbidden, w.Code)

    w = doJSON(t, engine, http.MethodPost, "/api/v1/messages", aliceToken, gin.H{
        "chat":    created.Data.ID,
        "content": "hi",
    })
    assert.Equal(t, http.StatusCreated, w.Code, w.Body.String())
}

func TestLogoutReturns205(t *testing.T) {
    engine, db := newTestServer(t)
    registerAndLogin(t, engine, db, "alice")

    w := doJSON(t, engine, http.MethodPost, "/api/v1/auth/login", "", gin.H{
        "email":    "alice@example.com",
        "password": "password1",
    })
    require.Equal(t, http.StatusOK, w.Code)
    var resp struct {
        Data struct {
            Refresh string `json:"refresh"`
        } `json:"data"`
    }
    require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

    w = doJSON(t, engine, http.MethodPost, "/api/v1/auth/logout", "", gin.H{"refresh": resp.Data.Refresh})
    assert.Equal(t, http.StatusResetContent, w.Code)

    // 已登出的 refresh 不能再刷新
    w = doJSON(t, engine, http.MethodPost, "/api/v1/auth/refresh", "", gin.H{"refresh": resp.Data.Refresh})
    assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPaginationParams(t *testing.T) {
    engine, db := newTestServer(t)
    for i := 0; i < 3; i++ {
        registerAndLogin(t, engine, db, fmt.Sprintf("user%d", i))
    }

    w := doJSON(t, engine, http.MethodGet, "/api/v1/profiles?page=1&page_size=2", "", nil)
    require.Equal(t, http.StatusOK, w.Code)
    var resp struct {
        Data []json.RawMessage `json:"data"`
    }
    require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
    assert.Len(t, resp.Data, 2)
}
