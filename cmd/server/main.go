package main

import (
    "context"
    "errors"
    "fmt"
    "net/http"
    "os"
    "os/signal"
    "syscall"
    "time"

    "github.com/getsentry/sentry-go"
    "github.com/redis/go-redis/v9"
    "go.uber.org/zap"

    "github.com/d60-Lab/cinegraph/config"
    _ "github.com/d60-Lab/cinegraph/docs"
    "github.com/d60-Lab/cinegraph/internal/api/handler"
    "github.com/d60-Lab/cinegraph/internal/api/router"
    "github.com/d60-Lab/cinegraph/internal/repository"
    "github.com/d60-Lab/cinegraph/internal/service"
    "github.com/d60-Lab/cinegraph/pkg/database"
    "github.com/d60-Lab/cinegraph/pkg/logger"
    "github.com/d60-Lab/cinegraph/pkg/tracing"
)

func main() {
    cfg, err := config.Load()
    if err != nil {
        fmt.Fprintf(os.Stderr, "load config: %v\n", err)
        os.Exit(1)
    }

    if err := logger.Init(cfg.Server.Mode); err != nil {
        fmt.Fprintf(os.Stderr, "init logger: %v\n", err)
        os.Exit(1)
    }
    defer logger.Sync()

    if cfg.Sentry.DSN != "" {
        if err := sentry.Init(sentry.ClientOptions{Dsn: cfg.Sentry.DSN}); err != nil {
            logger.Fatal("init sentry", zap.Error(err))
        }
        defer sentry.Flush(2 * time.Second)
    }

    ctx := context.Background()
    if cfg.Tracing.Enabled {
        shutdown, err := tracing.Init(ctx, cfg)
        if err != nil {
            logger.Fatal("init tracing", zap.Error(err))
        }
        defer shutdown(context.Background())
    }

    db, err := database.InitDB(cfg)
    if err != nil {
        logger.Fatal("init database", zap.Error(err))
    }

    cache := redis.NewClient(&redis.Options{
        Addr:     cfg.Redis.Addr,
        Password: cfg.Redis.Password,
        DB:       cfg.Redis.DB,
    })
    if err := cache.Ping(ctx).Err(); err != nil {
        logger.Warn("redis unreachable, token revocation disabled until it recovers", zap.Error(err))
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
    chatService := service.NewChatService(chatRepo, userRepo, perm, cfg.Chat.ReadOnFetch)
    newsService := service.NewNewsService(newsRepo, perm, cfg.Upload)

    h := handler.New(authService, profileService, relService, catalogService, reviewService, chatService, newsService)
    uh := handler.NewUserHandler(userRepo)

    engine := router.New(cfg, h, uh, authService, perm)
    srv := &http.Server{
        Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
        Handler: engine,
    }

    go func() {
        logger.Info("server starting", zap.Int("port", cfg.Server.Port))
        if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
            logger.Fatal("listen", zap.Error(err))
        }
    }()

    quit := make(chan os.Signal, 1)
    signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
    <-quit

    logger.Info("server shutting down")
    shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
    defer cancel()
    if err := srv.Shutdown(shutdownCtx); err != nil {
        logger.Error("shutdown", zap.Error(err))
    }
}
