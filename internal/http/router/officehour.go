package router

import (
	"github.com/gin-gonic/gin"

	"github.com/SL-IT-AMAZING/founder-sprint-workspace-sub001/internal/http/handler"
)

func OfficeHourRouter(rg *gin.RouterGroup, h *handler.OfficeHourHandler) {
	slots := rg.Group("/slots")
	slots.GET("", h.ListSlots)
	slots.POST("", h.CreateSlot)
	slots.PATCH("/:id", h.UpdateSlot)
	slots.DELETE("/:id", h.DeleteSlot)
	slots.POST("/:id/request", h.RequestSlot)
	slots.POST("/:id/cancel", h.CancelSlot)
	slots.POST("/:id/complete", h.CompleteSlot)

	requests := rg.Group("/requests")
	requests.GET("", h.ListRequests)
	requests.POST("/:id/confirm", h.ConfirmRequest)
	requests.POST("/:id/decline", h.DeclineRequest)
	requests.POST("/:id/cancel", h.CancelRequest)
}
