package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/SL-IT-AMAZING/founder-sprint-workspace-sub001/internal/http/dto"
	"github.com/SL-IT-AMAZING/founder-sprint-workspace-sub001/internal/model"
	"github.com/SL-IT-AMAZING/founder-sprint-workspace-sub001/internal/service"
)

type InvitationHandler struct {
	invService service.InvitationService
}

func NewInvitationHandler(invService service.InvitationService) *InvitationHandler {
	return &InvitationHandler{invService: invService}
}

// Create creates a new invitation (admin only)
func (h *InvitationHandler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.CreateInvitationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request: a valid email is required")
		return
	}

	input := service.InvitationInput{
		Email:   req.Email,
		Role:    model.Role(req.Role),
		BatchID: req.BatchID,
	}
	if input.Role == "" {
		input.Role = model.RoleFounder
	}

	inv, inviteURL, err := h.invService.Create(ctx, userOrSystem(c), input)
	if err != nil {
		respondError(c, err, "create invitation")
		return
	}

	slog.InfoContext(ctx, "invitation created via admin API",
		"invitation_id", inv.ID,
		"email", inv.Email,
		"role", inv.Role,
	)

	c.JSON(http.StatusCreated, dto.CreateInvitationResponse{
		ID:        inv.ID,
		Email:     inv.Email,
		Role:      inv.Role,
		InviteURL: inviteURL,
		ExpiresAt: inv.ExpiresAt,
	})
}

// List lists all invitations (admin only)
func (h *InvitationHandler) List(c *gin.Context) {
	limit, ok := queryInt32(c, "limit")
	if !ok {
		return
	}
	offset, ok := queryInt32(c, "offset")
	if !ok {
		return
	}
	if limit == 0 || limit > 100 {
		limit = 100
	}

	invitations, err := h.invService.List(c.Request.Context(), limit, offset)
	if err != nil {
		respondError(c, err, "list invitations")
		return
	}

	c.JSON(http.StatusOK, dto.InvitationsResponse{Invitations: nonNil(invitations)})
}

func (h *InvitationHandler) ListPending(c *gin.Context) {
	invitations, err := h.invService.ListPending(c.Request.Context())
	if err != nil {
		respondError(c, err, "list invitations")
		return
	}

	c.JSON(http.StatusOK, dto.InvitationsResponse{Invitations: nonNil(invitations)})
}

func (h *InvitationHandler) Revoke(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.RevokeInvitationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request: id is required")
		return
	}

	inv, err := h.invService.Revoke(ctx, req.ID)
	if err != nil {
		respondError(c, err, "revoke invitation")
		return
	}

	slog.InfoContext(ctx, "invitation revoked via admin API",
		"invitation_id", inv.ID,
		"email", inv.Email,
	)

	c.JSON(http.StatusOK, inv)
}

// Validate validates an invitation token (public endpoint)
func (h *InvitationHandler) Validate(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		badRequest(c, "token is required")
		return
	}

	inv, err := h.invService.ValidateToken(c.Request.Context(), token)
	if err != nil {
		respondError(c, err, "validate invitation")
		return
	}

	c.JSON(http.StatusOK, dto.ValidateTokenResponse{
		Email:     inv.Email,
		Role:      inv.Role,
		ExpiresAt: inv.ExpiresAt,
		Valid:     true,
	})
}

// nonNil keeps empty lists encoded as [] instead of null.
func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
