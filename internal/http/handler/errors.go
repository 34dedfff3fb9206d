package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/SL-IT-AMAZING/founder-sprint-workspace-sub001/internal/service"
)

type errorMapping struct {
	err    error
	status int
	code   string
}

// errorMappings is checked in order; the first errors.Is match wins.
var errorMappings = []errorMapping{
	{service.ErrInvalidInput, http.StatusBadRequest, "invalid_input"},
	{service.ErrForbidden, http.StatusForbidden, "forbidden"},
	{service.ErrNotHost, http.StatusForbidden, "not_host"},
	{service.ErrUserDeactivated, http.StatusForbidden, "deactivated"},
	{service.ErrNotGroupMember, http.StatusForbidden, "not_group_member"},
	{service.ErrCannotDeactivateSelf, http.StatusForbidden, "cannot_deactivate_self"},
	{service.ErrCannotRequestOwnSlot, http.StatusForbidden, "own_slot"},

	{service.ErrUserNotFound, http.StatusNotFound, "user_not_found"},
	{service.ErrMemberNotActive, http.StatusNotFound, "member_not_found"},
	{service.ErrBatchNotFound, http.StatusNotFound, "batch_not_found"},
	{service.ErrCompanyNotFound, http.StatusNotFound, "company_not_found"},
	{service.ErrGroupNotFound, http.StatusNotFound, "group_not_found"},
	{service.ErrPostNotFound, http.StatusNotFound, "post_not_found"},
	{service.ErrCommentNotFound, http.StatusNotFound, "comment_not_found"},
	{service.ErrConversationNotFound, http.StatusNotFound, "conversation_not_found"},
	{service.ErrSlotNotFound, http.StatusNotFound, "slot_not_found"},
	{service.ErrRequestNotFound, http.StatusNotFound, "request_not_found"},
	{service.ErrInviteNotFound, http.StatusNotFound, "not_found"},

	{service.ErrInviteExpired, http.StatusGone, "expired"},
	{service.ErrInviteAlreadyUsed, http.StatusGone, "already_used"},
	{service.ErrInviteRevoked, http.StatusGone, "revoked"},

	{service.ErrInvalidTransition, http.StatusConflict, "invalid_transition"},
	{service.ErrSlotNotAvailable, http.StatusConflict, "slot_not_available"},
	{service.ErrSlotInPast, http.StatusConflict, "slot_in_past"},
	{service.ErrSlotNotStarted, http.StatusConflict, "slot_not_started"},
	{service.ErrSlotOverlap, http.StatusConflict, "slot_overlap"},
	{service.ErrSlotNotEditable, http.StatusConflict, "slot_not_editable"},
	{service.ErrGroupPrivate, http.StatusForbidden, "group_private"},
	{service.ErrAlreadyMember, http.StatusConflict, "already_member"},
	{service.ErrLastOwner, http.StatusConflict, "last_owner"},
	{service.ErrInvitePendingExists, http.StatusConflict, "invite_pending"},
	{service.ErrUserAlreadyMember, http.StatusConflict, "already_registered"},
}

// respondError writes the mapped status for domain errors and logs anything unmapped as a 500.
func respondError(c *gin.Context, err error, action string) {
	for _, m := range errorMappings {
		if errors.Is(err, m.err) {
			c.JSON(m.status, gin.H{"error": publicMessage(err, m.err), "code": m.code})
			return
		}
	}

	slog.ErrorContext(c.Request.Context(), "failed to "+action, "error", err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to " + action})
}

// publicMessage returns the sentinel text. Invalid input errors keep their detail,
// e.g. "invalid input: body is required".
func publicMessage(err, sentinel error) string {
	if errors.Is(sentinel, service.ErrInvalidInput) {
		if msg := err.Error(); strings.HasPrefix(msg, sentinel.Error()) {
			return msg
		}
	}
	return sentinel.Error()
}

func badRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, gin.H{"error": msg, "code": "invalid_input"})
}
