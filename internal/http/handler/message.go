package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/SL-IT-AMAZING/founder-sprint-workspace-sub001/common/logger"
	"github.com/SL-IT-AMAZING/founder-sprint-workspace-sub001/internal/http/dto"
	"github.com/SL-IT-AMAZING/founder-sprint-workspace-sub001/internal/model"
	"github.com/SL-IT-AMAZING/founder-sprint-workspace-sub001/internal/service"
)

type MessageHandler struct {
	messageService service.MessageService
}

func NewMessageHandler(messageService service.MessageService) *MessageHandler {
	return &MessageHandler{messageService: messageService}
}

func (h *MessageHandler) ListConversations(c *gin.Context) {
	conversations, err := h.messageService.ListConversations(c.Request.Context(), currentUser(c))
	if err != nil {
		respondError(c, err, "list conversations")
		return
	}
	c.JSON(http.StatusOK, dto.ConversationsResponse{Conversations: nonNil(conversations)})
}

func (h *MessageHandler) StartConversation(c *gin.Context) {
	var req dto.StartConversationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "participant_ids is required")
		return
	}
	ids, err := req.IDs()
	if err != nil {
		badRequest(c, err.Error())
		return
	}

	conv, err := h.messageService.StartConversation(c.Request.Context(), currentUser(c), ids, req.Title)
	if err != nil {
		respondError(c, err, "start conversation")
		return
	}
	c.JSON(http.StatusCreated, conv)
}

// ListMessages serves both polling (after=<id>, ascending) and history (before=<id>) reads.
func (h *MessageHandler) ListMessages(c *gin.Context) {
	id, ok := h.conversationID(c)
	if !ok {
		return
	}

	var query model.MessageQuery
	if query.After, ok = queryID(c, "after"); !ok {
		return
	}
	if query.Before, ok = queryID(c, "before"); !ok {
		return
	}
	if query.Limit, ok = queryInt32(c, "limit"); !ok {
		return
	}

	messages, err := h.messageService.ListMessages(c.Request.Context(), currentUser(c), id, query)
	if err != nil {
		respondError(c, err, "list messages")
		return
	}
	c.JSON(http.StatusOK, dto.MessagesResponse{Messages: nonNil(messages)})
}

func (h *MessageHandler) Send(c *gin.Context) {
	id, ok := h.conversationID(c)
	if !ok {
		return
	}

	var req dto.SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "body is required")
		return
	}

	msg, err := h.messageService.Send(c.Request.Context(), currentUser(c), id, req.Body)
	if err != nil {
		respondError(c, err, "send message")
		return
	}
	c.JSON(http.StatusCreated, msg)
}

func (h *MessageHandler) MarkRead(c *gin.Context) {
	id, ok := h.conversationID(c)
	if !ok {
		return
	}

	var req dto.MarkReadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "message_id is required")
		return
	}

	lastRead, err := h.messageService.MarkRead(c.Request.Context(), currentUser(c), id, req.MessageID)
	if err != nil {
		respondError(c, err, "mark conversation read")
		return
	}
	c.JSON(http.StatusOK, dto.MarkReadResponse{LastReadMessageID: lastRead})
}

func (h *MessageHandler) Unread(c *gin.Context) {
	total, err := h.messageService.UnreadTotal(c.Request.Context(), currentUser(c))
	if err != nil {
		respondError(c, err, "count unread messages")
		return
	}
	c.JSON(http.StatusOK, dto.UnreadResponse{Unread: total})
}

func (h *MessageHandler) conversationID(c *gin.Context) (int64, bool) {
	id, ok := pathID(c, "id")
	if ok {
		c.Request = c.Request.WithContext(logger.WithLogFields(c.Request.Context(), logger.LogFields{ConversationID: &id}))
	}
	return id, ok
}
