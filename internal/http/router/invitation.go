package router

import (
	"github.com/gin-gonic/gin"

	"github.com/SL-IT-AMAZING/founder-sprint-workspace-sub001/internal/http/handler"
)

// InvitationRouter sets up invitation routes
// - /invites/validate is public (the dashboard validates tokens before sign in)
// - /admin/invites/* inherit the admin guard of adminRg
func InvitationRouter(rg *gin.RouterGroup, adminRg *gin.RouterGroup, h *handler.InvitationHandler) {
	rg.GET("/validate", h.Validate)

	adminRg.POST("", h.Create)
	adminRg.GET("", h.List)
	adminRg.GET("/pending", h.ListPending)
	adminRg.POST("/revoke", h.Revoke)
}
