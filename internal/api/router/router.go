package router

import (
    "github.com/gin-contrib/gzip"
    "github.com/gin-gonic/gin"
    swaggerFiles "github.com/swaggo/files"
    ginSwagger "github.com/swaggo/gin-swagger"
    "go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

    "github.com/d60-Lab/cinegraph/config"
    "github.com/d60-Lab/cinegraph/internal/api/handler"
    "github.com/d60-Lab/cinegraph/internal/api/middleware"
    "github.com/d60-Lab/cinegraph/internal/service"
)

// New 组装 gin 引擎：中间件 + 全部路由
func New(cfg *config.Config, h *handler.Handler, uh *handler.UserHandler,
    authService service.AuthService, perm service.PermissionService) *gin.Engine {

    gin.SetMode(ginMode(cfg.Server.Mode))
    r := gin.New()
    r.Use(middleware.AccessLog())
    r.Use(middleware.Recovery())
    r.Use(gzip.Gzip(gzip.DefaultCompression))
    if cfg.Tracing.Enabled {
        r.Use(otelgin.Middleware("cinegraph"))
    }

    r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
    r.Static("/media", cfg.Upload.Dir)

    api := r.Group("/api/v1")
    api.Use(middleware.RateLimit(cfg.RateLimit.RPS, cfg.RateLimit.Burst))

    authRequired := middleware.JWTAuth(authService)
    authOptional := middleware.OptionalJWTAuth(authService)
    adminOnly := middleware.AdminRequired(perm)

    auth := api.Group("/auth")
    {
        auth.POST("/register", h.Register)
        auth.POST("/login", h.Login)
        auth.POST("/refresh", h.Refresh)
        auth.POST("/logout", h.Logout)
    }

    users := api.Group("/users", authOptional)
    {
        users.GET("", uh.ListUsers)
        users.GET("/:id", uh.GetUser)
    }

    profiles := api.Group("/profiles")
    {
        profiles.GET("", authOptional, h.ListProfiles)
        profiles.GET("/:id", authOptional, h.GetProfile)
        profiles.PATCH("/:id", authRequired, h.UpdateProfile)
        profiles.PUT("/:id/avatar", authRequired, h.SetAvatar)

        profiles.POST("/:id/follow", authRequired, h.Follow)
        profiles.POST("/:id/unfollow", authRequired, h.Unfollow)
        profiles.GET("/:id/followers", authOptional, h.ListFollowers)
        profiles.GET("/:id/following", authOptional, h.ListFollowing)
        profiles.GET("/:id/friends", authOptional, h.ListFriends)

        profiles.POST("/:id/favorites/:kind/:targetID", authRequired, h.AddFavorite)
        profiles.DELETE("/:id/favorites/:kind/:targetID", authRequired, h.RemoveFavorite)
    }

    genres := api.Group("/genres")
    {
        genres.GET("", h.ListGenres)
        genres.GET("/:id", h.GetGenre)
        genres.POST("", authRequired, adminOnly, h.CreateGenre)
        genres.PUT("/:id", authRequired, adminOnly, h.UpdateGenre)
        genres.DELETE("/:id", authRequired, adminOnly, h.DeleteGenre)
    }

    people := api.Group("/people")
    {
        people.GET("", h.ListPeople)
        people.GET("/:id", h.GetPerson)
        people.POST("", authRequired, adminOnly, h.CreatePerson)
        people.PUT("/:id", authRequired, adminOnly, h.UpdatePerson)
        people.DELETE("/:id", authRequired, adminOnly, h.DeletePerson)
        people.PUT("/:id/photo", authRequired, adminOnly, h.SetPersonPhoto)
    }

    movies := api.Group("/movies")
    {
        movies.GET("", h.ListMovies)
        movies.GET("/:id", h.GetMovie)
        movies.POST("", authRequired, adminOnly, h.CreateMovie)
        movies.PUT("/:id", authRequired, adminOnly, h.UpdateMovie)
        movies.DELETE("/:id", authRequired, adminOnly, h.DeleteMovie)
        movies.PUT("/:id/poster", authRequired, adminOnly, h.SetMoviePoster)
    }

    series := api.Group("/series")
    {
        series.GET("", h.ListSeries)
        series.GET("/:id", h.GetSeries)
        series.POST("", authRequired, adminOnly, h.CreateSeries)
        series.PUT("/:id", authRequired, adminOnly, h.UpdateSeries)
        series.DELETE("/:id", authRequired, adminOnly, h.DeleteSeries)
    }

    reviews := api.Group("/reviews")
    {
        reviews.GET("", h.ListReviews)
        reviews.GET("/:id", h.GetReview)
        reviews.POST("", authRequired, h.CreateReview)
        reviews.PUT("/:id", authRequired, h.UpdateReview)
        reviews.DELETE("/:id", authRequired, h.DeleteReview)
        reviews.GET("/:id/comments", h.ListComments)
        reviews.POST("/:id/comments", authRequired, h.CreateComment)
    }

    comments := api.Group("/comments", authRequired)
    {
        comments.PATCH("/:id", h.UpdateComment)
        comments.DELETE("/:id", h.DeleteComment)
    }

    likes := api.Group("/review-likes", authRequired)
    {
        likes.POST("", h.LikeReview)
        likes.DELETE("/:id", h.UnlikeReview)
    }

    chats := api.Group("/chats", authRequired)
    {
        chats.POST("", h.CreateChat)
        chats.GET("", h.ListChats)
        chats.GET("/:id", h.GetChat)
        chats.GET("/:id/messages", h.ListChatMessages)
    }

    messages := api.Group("/messages", authRequired)
    {
        messages.POST("", h.SendMessage)
        messages.PATCH("/:id", h.UpdateMessage)
    }

    news := api.Group("/news")
    {
        news.GET("", h.ListNews)
        news.GET("/:id", h.GetNews)
        news.POST("", authRequired, h.CreateNews)
        news.PUT("/:id", authRequired, h.UpdateNews)
        news.DELETE("/:id", authRequired, h.DeleteNews)
        news.PUT("/:id/image", authRequired, h.SetNewsImage)
    }

    return r
}

func ginMode(mode string) string {
    if mode == "release" {
        return gin.ReleaseMode
    }
    return gin.DebugMode
}
