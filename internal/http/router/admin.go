package router

import (
	"github.com/gin-gonic/gin"

	"github.com/SL-IT-AMAZING/founder-sprint-workspace-sub001/internal/http/handler"
)

func AdminRouter(adminRg *gin.RouterGroup, h *handler.AdminHandler) {
	adminRg.GET("/stats", h.Stats)
}
