package handler

import (
    "github.com/gin-gonic/gin"

    "github.com/d60-Lab/cinegraph/internal/api/middleware"
    "github.com/d60-Lab/cinegraph/pkg/response"
)

// author/user 字段一律服务端指定，请求体里不收
type reviewRequest struct {
    MovieID string `json:"movie" binding:"required"`
    Title   string `json:"title" binding:"required,max=200"`
    Content string `json:"content" binding:"required"`
    Rating  int    `json:"rating" binding:"required"`
}

type reviewUpdateRequest struct {
    Title   string `json:"title" binding:"required,max=200"`
    Content string `json:"content" binding:"required"`
    Rating  int    `json:"rating" binding:"required"`
}

type commentRequest struct {
    Content string `json:"content" binding:"required"`
}

type likeRequest struct {
    ReviewID string `json:"review" binding:"required"`
}

// CreateReview 发影评
// @Summary 发影评，rating 限 [1,5]
// @Tags 影评
// @Accept json
// @Produce json
// @Param request body reviewRequest true "影评"
// @Success 201 {object} response.Response{data=ReviewResponse}
// @Failure 400 {object} response.Response
// @Router /api/v1/reviews [post]
func (h *Handler) CreateReview(c *gin.Context) {
    var req reviewRequest
    if err := c.ShouldBindJSON(&req); err != nil {
        response.BadRequest(c, err.Error())
        return
    }
    rv, err := h.reviewService.Create(c.Request.Context(), middleware.UserID(c), req.MovieID, req.Title, req.Content, req.Rating)
    if err != nil {
        writeServiceError(c, err)
        return
    }
    response.Created(c, toReviewResponse(rv))
}

// ListReviews 影评列表
// @Summary 影评列表，可按电影过滤
// @Tags 影评
// @Param movie query string false "电影 ID"
// @Param page query int false "页码" default(1)
// @Param page_size query int false "每页数量" default(20)
// @Success 200 {object} response.Response{data=[]ReviewResponse}
// @Router /api/v1/reviews [get]
func (h *Handler) ListReviews(c *gin.Context) {
    offset, limit := pagination(c)
    reviews, err := h.reviewService.List(c.Request.Context(), c.Query("movie"), offset, limit)
    if err != nil {
        response.InternalError(c, err)
        return
    }
    res := make([]ReviewResponse, 0, len(reviews))
    for _, rv := range reviews {
        res = append(res, toReviewResponse(rv))
    }
    response.Success(c, res)
}

// GetReview 影评详情
// @Summary 影评详情（含评论与点赞数）
// @Tags 影评
// @Param id path string true "影评 ID"
// @Success 200 {object} response.Response{data=ReviewResponse}
// @Failure 404 {object} response.Response
// @Router /api/v1/reviews/{id} [get]
func (h *Handler) GetReview(c *gin.Context) {
    rv, err := h.reviewService.Get(c.Request.Context(), c.Param("id"))
    if err != nil {
        writeServiceError(c, err)
        return
    }
    response.Success(c, toReviewResponse(rv))
}

// UpdateReview 改影评
// @Summary 改影评，作者或管理员
// @Tags 影评
// @Accept json
// @Produce json
// @Param id path string true "影评 ID"
// @Param request body reviewUpdateRequest true "影评"
// @Success 200 {object} response.Response{data=ReviewResponse}
// @Failure 403 {object} response.Response
// @Router /api/v1/reviews/{id} [put]
func (h *Handler) UpdateReview(c *gin.Context) {
    var req reviewUpdateRequest
    if err := c.ShouldBindJSON(&req); err != nil {
        response.BadRequest(c, err.Error())
        return
    }
    rv, err := h.reviewService.Update(c.Request.Context(), middleware.UserID(c), c.Param("id"), req.Title, req.Content, req.Rating)
    if err != nil {
        writeServiceError(c, err)
        return
    }
    response.Success(c, toReviewResponse(rv))
}

// DeleteReview 删影评
// @Summary 删影评，作者或管理员
// @Tags 影评
// @Param id path string true "影评 ID"
// @Success 200 {object} response.Response
// @Failure 403 {object} response.Response
// @Router /api/v1/reviews/{id} [delete]
func (h *Handler) DeleteReview(c *gin.Context) {
    if err := h.reviewService.Delete(c.Request.Context(), middleware.UserID(c), c.Param("id")); err != nil {
        writeServiceError(c, err)
        return
    }
    response.Success(c, nil)
}

// CreateComment 评论影评
// @Summary 评论影评
// @Tags 影评
// @Accept json
// @Produce json
// @Param id path string true "影评 ID"
// @Param request body commentRequest true "评论"
// @Success 201 {object} response.Response{data=CommentResponse}
// @Failure 404 {object} response.Response
// @Router /api/v1/reviews/{id}/comments [post]
func (h *Handler) CreateComment(c *gin.Context) {
    var req commentRequest
    if err := c.ShouldBindJSON(&req); err != nil {
        response.BadRequest(c, err.Error())
        return
    }
    comment, err := h.reviewService.CreateComment(c.Request.Context(), middleware.UserID(c), c.Param("id"), req.Content)
    if err != nil {
        writeServiceError(c, err)
        return
    }
    response.Created(c, toCommentResponse(comment))
}

// ListComments 影评的评论列表
// @Summary 影评的评论列表，时间升序
// @Tags 影评
// @Param id path string true "影评 ID"
// @Success 200 {object} response.Response{data=[]CommentResponse}
// @Failure 404 {object} response.Response
// @Router /api/v1/reviews/{id}/comments [get]
func (h *Handler) ListComments(c *gin.Context) {
    comments, err := h.reviewService.ListComments(c.Request.Context(), c.Param("id"))
    if err != nil {
        writeServiceError(c, err)
        return
    }
    res := make([]CommentResponse, 0, len(comments))
    for _, cm := range comments {
        res = append(res, toCommentResponse(cm))
    }
    response.Success(c, res)
}

// UpdateComment 改评论
// @Summary 改评论，仅作者
// @Tags 影评
// @Accept json
// @Produce json
// @Param id path string true "评论 ID"
// @Param request body commentRequest true "评论"
// @Success 200 {object} response.Response{data=CommentResponse}
// @Failure 403 {object} response.Response
// @Router /api/v1/comments/{id} [patch]
func (h *Handler) UpdateComment(c *gin.Context) {
    var req commentRequest
    if err := c.ShouldBindJSON(&req); err != nil {
        response.BadRequest(c, err.Error())
        return
    }
    comment, err := h.reviewService.UpdateComment(c.Request.Context(), middleware.UserID(c), c.Param("id"), req.Content)
    if err != nil {
        writeServiceError(c, err)
        return
    }
    response.Success(c, toCommentResponse(comment))
}

// DeleteComment 删评论
// @Summary 删评论，作者或管理员
// @Tags 影评
// @Param id path string true "评论 ID"
// @Success 200 {object} response.Response
// @Failure 403 {object} response.Response
// @Router /api/v1/comments/{id} [delete]
func (h *Handler) DeleteComment(c *gin.Context) {
    if err := h.reviewService.DeleteComment(c.Request.Context(), middleware.UserID(c), c.Param("id")); err != nil {
        writeServiceError(c, err)
        return
    }
    response.Success(c, nil)
}

// LikeReview 点赞
// @Summary 点赞影评，同一影评每人一次
// @Tags 影评
// @Accept json
// @Produce json
// @Param request body likeRequest true "点赞目标"
// @Success 201 {object} response.Response{data=model.ReviewLike}
// @Failure 400 {object} response.Response
// @Router /api/v1/review-likes [post]
func (h *Handler) LikeReview(c *gin.Context) {
    var req likeRequest
    if err := c.ShouldBindJSON(&req); err != nil {
        response.BadRequest(c, err.Error())
        return
    }
    like, err := h.reviewService.Like(c.Request.Context(), middleware.UserID(c), req.ReviewID)
    if err != nil {
        writeServiceError(c, err)
        return
    }
    response.Created(c, like)
}

// UnlikeReview 取消点赞
// @Summary 取消点赞，仅点赞者本人
// @Tags 影评
// @Param id path string true "点赞 ID"
// @Success 200 {object} response.Response
// @Failure 403 {object} response.Response
// @Router /api/v1/review-likes/{id} [delete]
func (h *Handler) UnlikeReview(c *gin.Context) {
    if err := h.reviewService.Unlike(c.Request.Context(), middleware.UserID(c), c.Param("id")); err != nil {
        writeServiceError(c, err)
        return
    }
    response.Success(c, nil)
}
