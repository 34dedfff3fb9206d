package router

import (
	"github.com/gin-gonic/gin"

	"github.com/SL-IT-AMAZING/founder-sprint-workspace-sub001/internal/http/handler"
)

func UserRouter(rg *gin.RouterGroup, adminRg *gin.RouterGroup, h *handler.UserHandler) {
	rg.GET("/me", h.Me)
	rg.PATCH("/me", h.UpdateMe)
	rg.GET("/members", h.ListMembers)
	rg.GET("/members/:id", h.GetMember)

	adminRg.GET("/users", h.AdminList)
	adminRg.PATCH("/users/:id", h.UpdateMembership)
	adminRg.POST("/users/:id/deactivate", h.Deactivate)
	adminRg.POST("/users/:id/reactivate", h.Reactivate)
}
