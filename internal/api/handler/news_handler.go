package handler

import (
    "github.com/gin-gonic/gin"

    "github.com/d60-Lab/cinegraph/internal/api/middleware"
    "github.com/d60-Lab/cinegraph/pkg/response"
)

type newsRequest struct {
    Title       string `json:"title" binding:"required,max=255"`
    Content     string `json:"content" binding:"required"`
    IsPublished *bool  `json:"is_published"`
}

// CreateNews 发新闻
// @Summary 发新闻，作者服务端指定
// @Tags 新闻
// @Accept json
// @Produce json
// @Param request body newsRequest true "新闻"
// @Success 201 {object} response.Response{data=NewsResponse}
// @Failure 400 {object} response.Response
// @Router /api/v1/news [post]
func (h *Handler) CreateNews(c *gin.Context) {
    var req newsRequest
    if err := c.ShouldBindJSON(&req); err != nil {
        response.BadRequest(c, err.Error())
        return
    }
    published := true
    if req.IsPublished != nil {
        published = *req.IsPublished
    }
    n, err := h.newsService.Create(c.Request.Context(), middleware.UserID(c), req.Title, req.Content, published)
    if err != nil {
        writeServiceError(c, err)
        return
    }
    response.Created(c, toNewsResponse(n))
}

// ListNews 新闻列表
// @Summary 新闻列表，时间倒序
// @Tags 新闻
// @Param page query int false "页码" default(1)
// @Param page_size query int false "每页数量" default(20)
// @Success 200 {object} response.Response{data=[]NewsResponse}
// @Router /api/v1/news [get]
func (h *Handler) ListNews(c *gin.Context) {
    offset, limit := pagination(c)
    items, err := h.newsService.List(c.Request.Context(), offset, limit)
    if err != nil {
        response.InternalError(c, err)
        return
    }
    res := make([]NewsResponse, 0, len(items))
    for _, n := range items {
        res = append(res, toNewsResponse(n))
    }
    response.Success(c, res)
}

// GetNews 新闻详情
// @Summary 新闻详情
// @Tags 新闻
// @Param id path string true "新闻 ID"
// @Success 200 {object} response.Response{data=NewsResponse}
// @Failure 404 {object} response.Response
// @Router /api/v1/news/{id} [get]
func (h *Handler) GetNews(c *gin.Context) {
    n, err := h.newsService.Get(c.Request.Context(), c.Param("id"))
    if err != nil {
        writeServiceError(c, err)
        return
    }
    response.Success(c, toNewsResponse(n))
}

// UpdateNews 改新闻
// @Summary 改新闻，作者或管理员
// @Tags 新闻
// @Accept json
// @Produce json
// @Param id path string true "新闻 ID"
// @Param request body newsRequest true "新闻"
// @Success 200 {object} response.Response{data=NewsResponse}
// @Failure 403 {object} response.Response
// @Router /api/v1/news/{id} [put]
func (h *Handler) UpdateNews(c *gin.Context) {
    var req newsRequest
    if err := c.ShouldBindJSON(&req); err != nil {
        response.BadRequest(c, err.Error())
        return
    }
    published := true
    if req.IsPublished != nil {
        published = *req.IsPublished
    }
    n, err := h.newsService.Update(c.Request.Context(), middleware.UserID(c), c.Param("id"), req.Title, req.Content, published)
    if err != nil {
        writeServiceError(c, err)
        return
    }
    response.Success(c, toNewsResponse(n))
}

// DeleteNews 删新闻
// @Summary 删新闻，作者或管理员
// @Tags 新闻
// @Param id path string true "新闻 ID"
// @Success 200 {object} response.Response
// @Failure 403 {object} response.Response
// @Router /api/v1/news/{id} [delete]
func (h *Handler) DeleteNews(c *gin.Context) {
    if err := h.newsService.Delete(c.Request.Context(), middleware.UserID(c), c.Param("id")); err != nil {
        writeServiceError(c, err)
        return
    }
    response.Success(c, nil)
}

// SetNewsImage 上传新闻配图
// @Summary 上传新闻配图（≤2MB，JPEG/PNG/GIF）
// @Tags 新闻
// @Accept multipart/form-data
// @Param id path string true "新闻 ID"
// @Param image formData file true "图片"
// @Success 200 {object} response.Response{data=NewsResponse}
// @Failure 400 {object} response.Response
// @Failure 403 {object} response.Response
// @Router /api/v1/news/{id}/image [put]
func (h *Handler) SetNewsImage(c *gin.Context) {
    fh, err := c.FormFile("image")
    if err != nil {
        response.BadRequest(c, "image file is required")
        return
    }
    n, err := h.newsService.SetImage(c.Request.Context(), middleware.UserID(c), c.Param("id"), fh)
    if err != nil {
        writeServiceError(c, err)
        return
    }
    response.Success(c, toNewsResponse(n))
}
