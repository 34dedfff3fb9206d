package router

import (
	"github.com/gin-gonic/gin"

	"github.com/SL-IT-AMAZING/founder-sprint-workspace-sub001/internal/http/handler"
)

func BatchRouter(rg *gin.RouterGroup, adminRg *gin.RouterGroup, h *handler.BatchHandler) {
	rg.GET("", h.List)
	rg.GET("/:id", h.Get)
	rg.GET("/:id/members", h.ListMembers)

	adminRg.POST("", h.Create)
	adminRg.PATCH("/:id", h.Update)
	adminRg.POST("/:id/archive", h.Archive)
	adminRg.GET("/:id/roster.xlsx", h.ExportRoster)
}

func CompanyRouter(rg *gin.RouterGroup, adminRg *gin.RouterGroup, h *handler.CompanyHandler) {
	rg.GET("", h.List)
	rg.GET("/:id", h.Get)
	rg.PATCH("/:id", h.Update)

	adminRg.POST("", h.Create)
	adminRg.DELETE("/:id", h.Delete)
}
