package router

import (
	"github.com/gin-gonic/gin"

	"github.com/SL-IT-AMAZING/founder-sprint-workspace-sub001/internal/http/handler"
)

func MessageRouter(rg *gin.RouterGroup, h *handler.MessageHandler) {
	rg.GET("/conversations", h.ListConversations)
	rg.POST("/conversations", h.StartConversation)
	rg.GET("/conversations/:id/messages", h.ListMessages)
	rg.POST("/conversations/:id/messages", h.Send)
	rg.POST("/conversations/:id/read", h.MarkRead)
	rg.GET("/messages/unread", h.Unread)
}
