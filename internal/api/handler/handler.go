package handler

import (
    "errors"
    "strconv"

    "github.com/gin-gonic/gin"

    "github.com/d60-Lab/cinegraph/internal/service"
    "github.com/d60-Lab/cinegraph/pkg/response"
    "github.com/d60-Lab/cinegraph/pkg/upload"
)

type Handler struct {
    authService    service.AuthService
    profileService service.ProfileService
    relService     service.RelationshipService
    catalogService service.CatalogService
    reviewService  service.ReviewService
    chatService    service.ChatService
    newsService    service.NewsService
}

func New(
    authService service.AuthService,
    profileService service.ProfileService,
    relService service.RelationshipService,
    catalogService service.CatalogService,
    reviewService service.ReviewService,
    chatService service.ChatService,
    newsService service.NewsService,
) *Handler {
    return &Handler{
        authService:    authService,
        profileService: profileService,
        relService:     relService,
        catalogService: catalogService,
        reviewService:  reviewService,
        chatService:    chatService,
        newsService:    newsService,
    }
}

// pagination 解析 page / page_size 查询参数，返回 offset 与 limit
func pagination(c *gin.Context) (int, int) {
    page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
    pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
    if page < 1 {
        page = 1
    }
    if pageSize < 1 || pageSize > 100 {
        pageSize = 20
    }
    return (page - 1) * pageSize, pageSize
}

// writeServiceError 把 service 层的哨兵错误翻译成 HTTP 状态：
// 校验/冲突类 -> 400，越权 -> 403，缺失 -> 404，其余 -> 500
func writeServiceError(c *gin.Context, err error) {
    switch {
    case errors.Is(err, service.ErrForbidden):
        response.Forbidden(c, err.Error())
    case errors.Is(err, service.ErrNotFound),
        errors.Is(err, service.ErrProfileNotFound),
        errors.Is(err, service.ErrChatNotFound),
        errors.Is(err, service.ErrMessageNotFound):
        response.NotFound(c, err.Error())
    case errors.Is(err, service.ErrFollowSelf),
        errors.Is(err, service.ErrAlreadyFollowing),
        errors.Is(err, service.ErrNotFollowing),
        errors.Is(err, service.ErrRatingRange),
        errors.Is(err, service.ErrDuplicateLike),
        errors.Is(err, service.ErrDuplicateFavorite),
        errors.Is(err, service.ErrNotFavorite),
        errors.Is(err, service.ErrInvalidEmail),
        errors.Is(err, service.ErrInvalidUsername),
        errors.Is(err, service.ErrWeakPassword),
        errors.Is(err, service.ErrEmailTaken),
        errors.Is(err, service.ErrUsernameTaken),
        errors.Is(err, service.ErrInvalidCredentials),
        errors.Is(err, service.ErrInvalidToken),
        errors.Is(err, upload.ErrImageTooLarge),
        errors.Is(err, upload.ErrImageFormat):
        response.BadRequest(c, err.Error())
    default:
        response.InternalError(c, err)
    }
}
