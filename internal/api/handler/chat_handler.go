package handler

import (
    "errors"

    "github.com/gin-gonic/gin"

    "github.com/d60-Lab/cinegraph/internal/api/middleware"
    "github.com/d60-Lab/cinegraph/internal/service"
    "github.com/d60-Lab/cinegraph/pkg/response"
)

type chatCreateRequest struct {
    Participants []string `json:"participants" binding:"required,min=1"`
}

type messageCreateRequest struct {
    ChatID  string `json:"chat" binding:"required"`
    Content string `json:"content" binding:"required"`
}

type messageUpdateRequest struct {
    IsRead *bool `json:"is_read" binding:"required"`
}

// CreateChat 发起会话
// @Summary 发起两人会话，创建者自动加入
// @Tags 私信
// @Accept json
// @Produce json
// @Param request body chatCreateRequest true "对方用户 ID 列表"
// @Success 201 {object} response.Response{data=ChatResponse}
// @Failure 403 {object} response.Response
// @Router /api/v1/chats [post]
func (h *Handler) CreateChat(c *gin.Context) {
    var req chatCreateRequest
    if err := c.ShouldBindJSON(&req); err != nil {
        response.BadRequest(c, err.Error())
        return
    }
    chat, err := h.chatService.Create(c.Request.Context(), middleware.UserID(c), req.Participants)
    if err != nil {
        if errors.Is(err, service.ErrInvalidParticipants) {
            response.Forbidden(c, err.Error())
            return
        }
        writeServiceError(c, err)
        return
    }
    response.Created(c, toChatResponse(chat))
}

// ListChats 我的会话
// @Summary 当前用户参与的会话列表
// @Tags 私信
// @Success 200 {object} response.Response{data=[]ChatResponse}
// @Router /api/v1/chats [get]
func (h *Handler) ListChats(c *gin.Context) {
    chats, err := h.chatService.ListForUser(c.Request.Context(), middleware.UserID(c))
    if err != nil {
        response.InternalError(c, err)
        return
    }
    res := make([]ChatResponse, 0, len(chats))
    for _, chat := range chats {
        res = append(res, toChatResponse(chat))
    }
    response.Success(c, res)
}

// GetChat 会话详情
// @Summary 会话详情，非参与者表现为不存在
// @Tags 私信
// @Param id path string true "会话 ID"
// @Success 200 {object} response.Response{data=ChatResponse}
// @Failure 404 {object} response.Response
// @Router /api/v1/chats/{id} [get]
func (h *Handler) GetChat(c *gin.Context) {
    chat, err := h.chatService.Get(c.Request.Context(), middleware.UserID(c), c.Param("id"))
    if err != nil {
        writeServiceError(c, err)
        return
    }
    response.Success(c, toChatResponse(chat))
}

// ListChatMessages 消息列表
// @Summary 会话消息，时间升序
// @Tags 私信
// @Param id path string true "会话 ID"
// @Success 200 {object} response.Response{data=[]MessageResponse}
// @Failure 404 {object} response.Response
// @Router /api/v1/chats/{id}/messages [get]
func (h *Handler) ListChatMessages(c *gin.Context) {
    messages, err := h.chatService.ListMessages(c.Request.Context(), middleware.UserID(c), c.Param("id"))
    if err != nil {
        writeServiceError(c, err)
        return
    }
    res := make([]MessageResponse, 0, len(messages))
    for _, m := range messages {
        res = append(res, toMessageResponse(m))
    }
    response.Success(c, res)
}

// SendMessage 发消息
// @Summary 发私信，sender 与时间戳服务端指定
// @Tags 私信
// @Accept json
// @Produce json
// @Param request body messageCreateRequest true "消息"
// @Success 201 {object} response.Response{data=MessageResponse}
// @Failure 403 {object} response.Response
// @Router /api/v1/messages [post]
func (h *Handler) SendMessage(c *gin.Context) {
    var req messageCreateRequest
    if err := c.ShouldBindJSON(&req); err != nil {
        response.BadRequest(c, err.Error())
        return
    }
    m, err := h.chatService.SendMessage(c.Request.Context(), middleware.UserID(c), req.ChatID, req.Content)
    if err != nil {
        // 会话缺失与非参与者同样给 403，不向外泄露会话是否存在
        if errors.Is(err, service.ErrChatNotFound) || errors.Is(err, service.ErrNotParticipant) {
            response.Forbidden(c, err.Error())
            return
        }
        writeServiceError(c, err)
        return
    }
    response.Created(c, toMessageResponse(m))
}

// UpdateMessage 改已读标记
// @Summary 设置消息已读标记，仅接收方
// @Tags 私信
// @Accept json
// @Produce json
// @Param id path string true "消息 ID"
// @Param request body messageUpdateRequest true "is_read"
// @Success 200 {object} response.Response{data=MessageResponse}
// @Failure 403 {object} response.Response
// @Router /api/v1/messages/{id} [patch]
func (h *Handler) UpdateMessage(c *gin.Context) {
    var req messageUpdateRequest
    if err := c.ShouldBindJSON(&req); err != nil {
        response.BadRequest(c, err.Error())
        return
    }
    m, err := h.chatService.SetMessageRead(c.Request.Context(), middleware.UserID(c), c.Param("id"), *req.IsRead)
    if err != nil {
        writeServiceError(c, err)
        return
    }
    response.Success(c, toMessageResponse(m))
}
