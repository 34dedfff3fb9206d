package handler

import (
	"bytes"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/SL-IT-AMAZING/founder-sprint-workspace-sub001/internal/export"
	"github.com/SL-IT-AMAZING/founder-sprint-workspace-sub001/internal/http/dto"
	"github.com/SL-IT-AMAZING/founder-sprint-workspace-sub001/internal/service"
)

type BatchHandler struct {
	batchService service.BatchService
}

func NewBatchHandler(batchService service.BatchService) *BatchHandler {
	return &BatchHandler{batchService: batchService}
}

// List returns batches; archived ones only for staff with include_archived=true.
func (h *BatchHandler) List(c *gin.Context) {
	includeArchived := queryBool(c, "include_archived") && currentUser(c).IsStaff()

	batches, err := h.batchService.List(c.Request.Context(), includeArchived)
	if err != nil {
		respondError(c, err, "list batches")
		return
	}
	c.JSON(http.StatusOK, gin.H{"batches": nonNil(batches)})
}

func (h *BatchHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	batch, err := h.batchService.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "get batch")
		return
	}
	c.JSON(http.StatusOK, batch)
}

func (h *BatchHandler) ListMembers(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	members, err := h.batchService.ListMembers(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "list batch members")
		return
	}
	c.JSON(http.StatusOK, gin.H{"members": nonNil(members)})
}

func (h *BatchHandler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.BatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid batch: name, starts_on and ends_on (YYYY-MM-DD) are required")
		return
	}
	input, err := req.ToInput()
	if err != nil {
		badRequest(c, err.Error())
		return
	}

	batch, err := h.batchService.Create(ctx, input)
	if err != nil {
		respondError(c, err, "create batch")
		return
	}

	slog.InfoContext(ctx, "batch created", "batch_id", batch.ID, "slug", batch.Slug)
	c.JSON(http.StatusCreated, batch)
}

func (h *BatchHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req dto.BatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid batch: name, starts_on and ends_on (YYYY-MM-DD) are required")
		return
	}
	input, err := req.ToInput()
	if err != nil {
		badRequest(c, err.Error())
		return
	}

	batch, err := h.batchService.Update(c.Request.Context(), id, input)
	if err != nil {
		respondError(c, err, "update batch")
		return
	}
	c.JSON(http.StatusOK, batch)
}

func (h *BatchHandler) Archive(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	batch, err := h.batchService.Archive(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "archive batch")
		return
	}
	c.JSON(http.StatusOK, batch)
}

// ExportRoster streams the batch roster as an .xlsx download.
func (h *BatchHandler) ExportRoster(c *gin.Context) {
	ctx := c.Request.Context()

	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	roster, err := h.batchService.Roster(ctx, id)
	if err != nil {
		respondError(c, err, "load roster")
		return
	}

	var buf bytes.Buffer
	if err := export.WriteRoster(&buf, *roster); err != nil {
		respondError(c, err, "export roster")
		return
	}

	slog.InfoContext(ctx, "roster exported", "batch_id", id, "members", len(roster.Members))

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", export.RosterFilename(roster.Batch)))
	c.Data(http.StatusOK, export.ContentTypeXLSX, buf.Bytes())
}
