package router

import (
	"github.com/gin-gonic/gin"

	"github.com/SL-IT-AMAZING/founder-sprint-workspace-sub001/internal/http/handler"
)

func PostRouter(rg *gin.RouterGroup, h *handler.PostHandler) {
	rg.GET("", h.Feed)
	rg.POST("", h.Create)
	rg.GET("/:id", h.Get)
	rg.PATCH("/:id", h.Update)
	rg.DELETE("/:id", h.Delete)
	rg.POST("/:id/pin", h.Pin)
	rg.POST("/:id/unpin", h.Unpin)
	rg.POST("/:id/like", h.Like)
	rg.DELETE("/:id/like", h.Unlike)
	rg.GET("/:id/comments", h.ListComments)
	rg.POST("/:id/comments", h.AddComment)
	rg.DELETE("/:id/comments/:comment_id", h.DeleteComment)
}
