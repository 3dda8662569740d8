package handler

import (
    "github.com/gin-gonic/gin"

    "github.com/d60-Lab/cinegraph/internal/api/middleware"
    "github.com/d60-Lab/cinegraph/pkg/response"
)

// actorProfileID 把认证用户解析成其 profile id
func (h *Handler) actorProfileID(c *gin.Context) (string, bool) {
    p, err := h.profileService.GetByUserID(c.Request.Context(), middleware.UserID(c))
    if err != nil {
        writeServiceError(c, err)
        return "", false
    }
    return p.ID, true
}

// Follow 关注
// @Summary 关注指定 profile
// @Tags 关系链
// @Produce json
// @Param id path string true "目标 profile ID"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /api/v1/profiles/{id}/follow [post]
func (h *Handler) Follow(c *gin.Context) {
    actorID, ok := h.actorProfileID(c)
    if !ok {
        return
    }
    if err := h.relService.Follow(c.Request.Context(), actorID, c.Param("id")); err != nil {
        writeServiceError(c, err)
        return
    }
    response.Success(c, gin.H{"message": "following"})
}

// Unfollow 取消关注
// @Summary 取消关注指定 profile
// @Tags 关系链
// @Produce json
// @Param id path string true "目标 profile ID"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /api/v1/profiles/{id}/unfollow [post]
func (h *Handler) Unfollow(c *gin.Context) {
    actorID, ok := h.actorProfileID(c)
    if !ok {
        return
    }
    if err := h.relService.Unfollow(c.Request.Context(), actorID, c.Param("id")); err != nil {
        writeServiceError(c, err)
        return
    }
    response.Success(c, gin.H{"message": "unfollowed"})
}

// ListFollowing 查询关注列表
// @Summary 查询某 profile 关注的人
// @Tags 关系链
// @Param id path string true "profile ID"
// @Success 200 {object} response.Response{data=[]UserResponse}
// @Router /api/v1/profiles/{id}/following [get]
func (h *Handler) ListFollowing(c *gin.Context) {
    users, err := h.relService.ListFollowing(c.Request.Context(), c.Param("id"))
    if err != nil {
        writeServiceError(c, err)
        return
    }
    response.Success(c, toUserResponses(users))
}

// ListFollowers 查询粉丝列表
// @Summary 查询某 profile 的粉丝
// @Tags 关系链
// @Param id path string true "profile ID"
// @Success 200 {object} response.Response{data=[]UserResponse}
// @Router /api/v1/profiles/{id}/followers [get]
func (h *Handler) ListFollowers(c *gin.Context) {
    users, err := h.relService.ListFollowers(c.Request.Context(), c.Param("id"))
    if err != nil {
        writeServiceError(c, err)
        return
    }
    response.Success(c, toUserResponses(users))
}

// ListFriends 查询好友（互相关注）
// @Summary 查询某 profile 的好友，读时求交集
// @Tags 关系链
// @Param id path string true "profile ID"
// @Success 200 {object} response.Response{data=[]UserResponse}
// @Router /api/v1/profiles/{id}/friends [get]
func (h *Handler) ListFriends(c *gin.Context) {
    users, err := h.relService.ListFriends(c.Request.Context(), c.Param("id"))
    if err != nil {
        writeServiceError(c, err)
        return
    }
    response.Success(c, toUserResponses(users))
}
