package handler

import (
    "time"

    "github.com/gin-gonic/gin"

    "github.com/d60-Lab/cinegraph/internal/api/middleware"
    "github.com/d60-Lab/cinegraph/internal/model"
    "github.com/d60-Lab/cinegraph/internal/service"
    "github.com/d60-Lab/cinegraph/pkg/response"
)

type profileUpdateRequest struct {
    Bio       *string `json:"bio" binding:"omitempty,max=500"`
    Gender    *string `json:"gender" binding:"omitempty,oneof=M F"`
    BirthDate *string `json:"birth_date" binding:"omitempty,datetime=2006-01-02"`
}

func (h *Handler) profileResponse(c *gin.Context, p *model.Profile) (ProfileResponse, bool) {
    following, followers, err := h.profileService.Counts(c.Request.Context(), p.ID)
    if err != nil {
        response.InternalError(c, err)
        return ProfileResponse{}, false
    }
    return toProfileResponse(p, following, followers), true
}

// ListProfiles profile 列表
// @Summary profile 列表
// @Tags 个人主页
// @Param page query int false "页码" default(1)
// @Param page_size query int false "每页数量" default(20)
// @Success 200 {object} response.Response{data=[]ProfileResponse}
// @Router /api/v1/profiles [get]
func (h *Handler) ListProfiles(c *gin.Context) {
    offset, limit := pagination(c)
    profiles, err := h.profileService.List(c.Request.Context(), offset, limit)
    if err != nil {
        response.InternalError(c, err)
        return
    }
    res := make([]ProfileResponse, 0, len(profiles))
    for _, p := range profiles {
        pr, ok := h.profileResponse(c, p)
        if !ok {
            return
        }
        res = append(res, pr)
    }
    response.Success(c, res)
}

// GetProfile profile 详情
// @Summary profile 详情（含关注数/粉丝数/收藏）
// @Tags 个人主页
// @Param id path string true "profile ID"
// @Success 200 {object} response.Response{data=ProfileResponse}
// @Failure 404 {object} response.Response
// @Router /api/v1/profiles/{id} [get]
func (h *Handler) GetProfile(c *gin.Context) {
    p, err := h.profileService.Get(c.Request.Context(), c.Param("id"))
    if err != nil {
        writeServiceError(c, err)
        return
    }
    pr, ok := h.profileResponse(c, p)
    if !ok {
        return
    }
    response.Success(c, pr)
}

// UpdateProfile 更新本人 profile
// @Summary 更新 profile，仅本人可改
// @Tags 个人主页
// @Accept json
// @Produce json
// @Param id path string true "profile ID"
// @Param request body profileUpdateRequest true "更新内容"
// @Success 200 {object} response.Response{data=ProfileResponse}
// @Failure 403 {object} response.Response
// @Router /api/v1/profiles/{id} [patch]
func (h *Handler) UpdateProfile(c *gin.Context) {
    var req profileUpdateRequest
    if err := c.ShouldBindJSON(&req); err != nil {
        response.BadRequest(c, err.Error())
        return
    }
    p, err := h.profileService.Get(c.Request.Context(), c.Param("id"))
    if err != nil {
        writeServiceError(c, err)
        return
    }
    actor, err := h.currentUser(c)
    if err != nil {
        response.InternalError(c, err)
        return
    }
    if req.Bio != nil {
        p.Bio = *req.Bio
    }
    if req.Gender != nil {
        p.Gender = *req.Gender
    }
    if req.BirthDate != nil {
        bd, _ := time.Parse("2006-01-02", *req.BirthDate)
        p.BirthDate = &bd
    }
    if err := h.profileService.Update(c.Request.Context(), actor, p); err != nil {
        writeServiceError(c, err)
        return
    }
    pr, ok := h.profileResponse(c, p)
    if !ok {
        return
    }
    response.Success(c, pr)
}

// SetAvatar 上传头像
// @Summary 上传头像（≤2MB，JPEG/PNG/GIF）
// @Tags 个人主页
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "profile ID"
// @Param avatar formData file true "头像文件"
// @Success 200 {object} response.Response{data=ProfileResponse}
// @Failure 400 {object} response.Response
// @Failure 403 {object} response.Response
// @Router /api/v1/profiles/{id}/avatar [put]
func (h *Handler) SetAvatar(c *gin.Context) {
    fh, err := c.FormFile("avatar")
    if err != nil {
        response.BadRequest(c, "avatar file is required")
        return
    }
    actor, err := h.currentUser(c)
    if err != nil {
        response.InternalError(c, err)
        return
    }
    p, err := h.profileService.SetAvatar(c.Request.Context(), actor, c.Param("id"), fh)
    if err != nil {
        writeServiceError(c, err)
        return
    }
    pr, ok := h.profileResponse(c, p)
    if !ok {
        return
    }
    response.Success(c, pr)
}

// AddFavorite 添加收藏
// @Summary 收藏类型/电影/剧集
// @Tags 个人主页
// @Param id path string true "profile ID"
// @Param kind path string true "genres | movies | series"
// @Param targetID path string true "目标 ID"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 403 {object} response.Response
// @Router /api/v1/profiles/{id}/favorites/{kind}/{targetID} [post]
func (h *Handler) AddFavorite(c *gin.Context) {
    h.favorite(c, true)
}

// RemoveFavorite 移除收藏
// @Summary 取消收藏类型/电影/剧集
// @Tags 个人主页
// @Param id path string true "profile ID"
// @Param kind path string true "genres | movies | series"
// @Param targetID path string true "目标 ID"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 403 {object} response.Response
// @Router /api/v1/profiles/{id}/favorites/{kind}/{targetID} [delete]
func (h *Handler) RemoveFavorite(c *gin.Context) {
    h.favorite(c, false)
}

func (h *Handler) favorite(c *gin.Context, add bool) {
    var kind service.FavoriteKind
    switch c.Param("kind") {
    case "genres":
        kind = service.FavoriteGenre
    case "movies":
        kind = service.FavoriteMovie
    case "series":
        kind = service.FavoriteSeries
    default:
        response.NotFound(c, "unknown favorite kind")
        return
    }
    actor, err := h.currentUser(c)
    if err != nil {
        response.InternalError(c, err)
        return
    }
    if add {
        err = h.profileService.AddFavorite(c.Request.Context(), actor, c.Param("id"), kind, c.Param("targetID"))
    } else {
        err = h.profileService.RemoveFavorite(c.Request.Context(), actor, c.Param("id"), kind, c.Param("targetID"))
    }
    if err != nil {
        writeServiceError(c, err)
        return
    }
    response.Success(c, nil)
}

// currentUser 加载当前认证用户
func (h *Handler) currentUser(c *gin.Context) (*model.User, error) {
    p, err := h.profileService.GetByUserID(c.Request.Context(), middleware.UserID(c))
    if err != nil {
        return nil, err
    }
    return &p.User, nil
}
