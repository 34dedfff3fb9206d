package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/SL-IT-AMAZING/founder-sprint-workspace-sub001/common/logger"
	"github.com/SL-IT-AMAZING/founder-sprint-workspace-sub001/internal/http/dto"
	"github.com/SL-IT-AMAZING/founder-sprint-workspace-sub001/internal/model"
	"github.com/SL-IT-AMAZING/founder-sprint-workspace-sub001/internal/service"
)

type OfficeHourHandler struct {
	officeHourService service.OfficeHourService
}

func NewOfficeHourHandler(officeHourService service.OfficeHourService) *OfficeHourHandler {
	return &OfficeHourHandler{officeHourService: officeHourService}
}

// ListSlots lists upcoming available slots, or the caller's hosted slots with mine=true.
func (h *OfficeHourHandler) ListSlots(c *gin.Context) {
	var filter model.SlotFilter
	var ok bool

	if filter.HostID, ok = queryID(c, "host_id"); !ok {
		return
	}
	if filter.From, ok = queryTime(c, "from"); !ok {
		return
	}
	if filter.To, ok = queryTime(c, "to"); !ok {
		return
	}
	if filter.Limit, ok = queryInt32(c, "limit"); !ok {
		return
	}

	slots, err := h.officeHourService.ListSlots(c.Request.Context(), currentUser(c), filter, queryBool(c, "mine"))
	if err != nil {
		respondError(c, err, "list office hour slots")
		return
	}
	c.JSON(http.StatusOK, dto.SlotsResponse{Slots: nonNil(slots)})
}

func (h *OfficeHourHandler) CreateSlot(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.SlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid slot: starts_at and ends_at (RFC3339) are required")
		return
	}

	slot, err := h.officeHourService.CreateSlot(ctx, currentUser(c), req.ToInput())
	if err != nil {
		respondError(c, err, "create office hour slot")
		return
	}

	slog.InfoContext(ctx, "office hour slot created", "slot_id", slot.ID, "host_id", slot.HostID)
	c.JSON(http.StatusCreated, slot)
}

func (h *OfficeHourHandler) UpdateSlot(c *gin.Context) {
	id, ok := h.slotID(c)
	if !ok {
		return
	}

	var req dto.SlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid slot: starts_at and ends_at (RFC3339) are required")
		return
	}

	slot, err := h.officeHourService.UpdateSlot(c.Request.Context(), currentUser(c), id, req.ToInput())
	if err != nil {
		respondError(c, err, "update office hour slot")
		return
	}
	c.JSON(http.StatusOK, slot)
}

func (h *OfficeHourHandler) DeleteSlot(c *gin.Context) {
	id, ok := h.slotID(c)
	if !ok {
		return
	}

	if err := h.officeHourService.DeleteSlot(c.Request.Context(), currentUser(c), id); err != nil {
		respondError(c, err, "delete office hour slot")
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *OfficeHourHandler) RequestSlot(c *gin.Context) {
	id, ok := h.slotID(c)
	if !ok {
		return
	}
	ctx := c.Request.Context()

	var req dto.SlotRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "topic is required")
		return
	}

	request, err := h.officeHourService.RequestSlot(ctx, currentUser(c), id, req.Topic)
	if err != nil {
		respondError(c, err, "request office hour slot")
		return
	}

	slog.InfoContext(ctx, "office hour slot requested", "request_id", request.ID)
	c.JSON(http.StatusCreated, request)
}

func (h *OfficeHourHandler) CancelSlot(c *gin.Context) {
	id, ok := h.slotID(c)
	if !ok {
		return
	}

	slot, err := h.officeHourService.CancelSlot(c.Request.Context(), currentUser(c), id)
	if err != nil {
		respondError(c, err, "cancel office hour slot")
		return
	}
	c.JSON(http.StatusOK, slot)
}

func (h *OfficeHourHandler) CompleteSlot(c *gin.Context) {
	id, ok := h.slotID(c)
	if !ok {
		return
	}

	slot, err := h.officeHourService.CompleteSlot(c.Request.Context(), currentUser(c), id)
	if err != nil {
		respondError(c, err, "complete office hour slot")
		return
	}
	c.JSON(http.StatusOK, slot)
}

// ListRequests returns the caller's own requests, or requests on slots they host with role=host.
func (h *OfficeHourHandler) ListRequests(c *gin.Context) {
	ctx := c.Request.Context()
	actor := currentUser(c)

	var (
		requests []model.OfficeHourRequest
		err      error
	)
	switch c.DefaultQuery("role", "requester") {
	case "requester":
		requests, err = h.officeHourService.ListMyRequests(ctx, actor)
	case "host":
		requests, err = h.officeHourService.ListHostRequests(ctx, actor)
	default:
		badRequest(c, "role must be requester or host")
		return
	}
	if err != nil {
		respondError(c, err, "list office hour requests")
		return
	}
	c.JSON(http.StatusOK, dto.RequestsResponse{Requests: nonNil(requests)})
}

func (h *OfficeHourHandler) ConfirmRequest(c *gin.Context) {
	id, note, ok := h.respondParams(c)
	if !ok {
		return
	}

	request, err := h.officeHourService.ConfirmRequest(c.Request.Context(), currentUser(c), id, note)
	if err != nil {
		respondError(c, err, "confirm office hour request")
		return
	}
	c.JSON(http.StatusOK, request)
}

func (h *OfficeHourHandler) DeclineRequest(c *gin.Context) {
	id, note, ok := h.respondParams(c)
	if !ok {
		return
	}

	request, err := h.officeHourService.DeclineRequest(c.Request.Context(), currentUser(c), id, note)
	if err != nil {
		respondError(c, err, "decline office hour request")
		return
	}
	c.JSON(http.StatusOK, request)
}

func (h *OfficeHourHandler) CancelRequest(c *gin.Context) {
	id, ok := h.requestID(c)
	if !ok {
		return
	}

	request, err := h.officeHourService.CancelRequest(c.Request.Context(), currentUser(c), id)
	if err != nil {
		respondError(c, err, "cancel office hour request")
		return
	}
	c.JSON(http.StatusOK, request)
}

func (h *OfficeHourHandler) respondParams(c *gin.Context) (int64, *string, bool) {
	id, ok := h.requestID(c)
	if !ok {
		return 0, nil, false
	}

	var req dto.RespondRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, "invalid note")
			return 0, nil, false
		}
	}
	return id, req.Note, true
}

func (h *OfficeHourHandler) slotID(c *gin.Context) (int64, bool) {
	id, ok := pathID(c, "id")
	if ok {
		c.Request = c.Request.WithContext(logger.WithLogFields(c.Request.Context(), logger.LogFields{SlotID: &id}))
	}
	return id, ok
}

func (h *OfficeHourHandler) requestID(c *gin.Context) (int64, bool) {
	id, ok := pathID(c, "id")
	if ok {
		c.Request = c.Request.WithContext(logger.WithLogFields(c.Request.Context(), logger.LogFields{RequestID: &id}))
	}
	return id, ok
}
