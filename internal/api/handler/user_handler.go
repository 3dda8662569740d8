package handler

import (
    "errors"

    "github.com/gin-gonic/gin"
    "gorm.io/gorm"

    "github.com/d60-Lab/cinegraph/internal/repository"
    "github.com/d60-Lab/cinegraph/pkg/response"
)

// UserHandler 用户只读资源
type UserHandler struct {
    userRepo repository.UserRepository
}

func NewUserHandler(userRepo repository.UserRepository) *UserHandler {
    return &UserHandler{userRepo: userRepo}
}

// ListUsers 用户列表
// @Summary 用户列表
// @Tags 用户
// @Param page query int false "页码" default(1)
// @Param page_size query int false "每页数量" default(20)
// @Success 200 {object} response.Response{data=[]UserResponse}
// @Router /api/v1/users [get]
func (h *UserHandler) ListUsers(c *gin.Context) {
    offset, limit := pagination(c)
    users, err := h.userRepo.List(c.Request.Context(), offset, limit)
    if err != nil {
        response.InternalError(c, err)
        return
    }
    response.Success(c, toUserResponses(users))
}

// GetUser 用户详情
// @Summary 用户详情
// @Tags 用户
// @Param id path string true "用户ID"
// @Success 200 {object} response.Response{data=UserResponse}
// @Failure 404 {object} response.Response
// @Router /api/v1/users/{id} [get]
func (h *UserHandler) GetUser(c *gin.Context) {
    user, err := h.userRepo.GetByID(c.Request.Context(), c.Param("id"))
    if err != nil {
        if errors.Is(err, gorm.ErrRecordNotFound) {
            response.NotFound(c, "user not found")
            return
        }
        response.InternalError(c, err)
        return
    }
    response.Success(c, toUserResponse(user))
}
