package handler

import (
    "github.com/gin-gonic/gin"

    "github.com/d60-Lab/cinegraph/pkg/response"
)

type registerRequest struct {
    Email    string `json:"email" binding:"required,email"`
    Username string `json:"username" binding:"required,max=50"`
    Password string `json:"password" binding:"required"`
}

type loginRequest struct {
    Email    string `json:"email" binding:"required,email"`
    Password string `json:"password" binding:"required"`
}

type refreshRequest struct {
    Refresh string `json:"refresh" binding:"required"`
}

// Register 注册
// @Summary 注册新用户（同事务创建 profile）
// @Tags 认证
// @Accept json
// @Produce json
// @Param request body registerRequest true "注册信息"
// @Success 201 {object} response.Response{data=UserResponse}
// @Failure 400 {object} response.Response
// @Router /api/v1/auth/register [post]
func (h *Handler) Register(c *gin.Context) {
    var req registerRequest
    if err := c.ShouldBindJSON(&req); err != nil {
        response.BadRequest(c, err.Error())
        return
    }
    user, err := h.authService.Register(c.Request.Context(), req.Email, req.Username, req.Password)
    if err != nil {
        writeServiceError(c, err)
        return
    }
    response.Created(c, toUserResponse(user))
}

// Login 登录
// @Summary 邮箱密码登录，返回 access/refresh 与用户投影
// @Tags 认证
// @Accept json
// @Produce json
// @Param request body loginRequest true "登录信息"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /api/v1/auth/login [post]
func (h *Handler) Login(c *gin.Context) {
    var req loginRequest
    if err := c.ShouldBindJSON(&req); err != nil {
        response.BadRequest(c, err.Error())
        return
    }
    pair, user, err := h.authService.Login(c.Request.Context(), req.Email, req.Password)
    if err != nil {
        writeServiceError(c, err)
        return
    }
    response.Success(c, gin.H{
        "access":  pair.Access,
        "refresh": pair.Refresh,
        "user":    toUserResponse(user),
    })
}

// Refresh 刷新令牌
// @Summary 用 refresh 换新的一对令牌（旧 refresh 作废）
// @Tags 认证
// @Accept json
// @Produce json
// @Param request body refreshRequest true "refresh token"
// @Success 200 {object} response.Response{data=service.TokenPair}
// @Failure 400 {object} response.Response
// @Router /api/v1/auth/refresh [post]
func (h *Handler) Refresh(c *gin.Context) {
    var req refreshRequest
    if err := c.ShouldBindJSON(&req); err != nil {
        response.BadRequest(c, err.Error())
        return
    }
    pair, err := h.authService.Refresh(c.Request.Context(), req.Refresh)
    if err != nil {
        writeServiceError(c, err)
        return
    }
    response.Success(c, pair)
}

// Logout 登出
// @Summary 作废 refresh token
// @Tags 认证
// @Accept json
// @Produce json
// @Param request body refreshRequest true "refresh token"
// @Success 205 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /api/v1/auth/logout [post]
func (h *Handler) Logout(c *gin.Context) {
    var req refreshRequest
    if err := c.ShouldBindJSON(&req); err != nil {
        response.BadRequest(c, err.Error())
        return
    }
    if err := h.authService.Logout(c.Request.Context(), req.Refresh); err != nil {
        writeServiceError(c, err)
        return
    }
    response.ResetContent(c)
}
