package dto

import (
	"time"

	"github.com/SL-IT-AMAZING/founder-sprint-workspace-sub001/internal/model"
)

type CreateInvitationRequest struct {
	Email   string `json:"email" binding:"required,email"`
	Role    string `json:"role" binding:"omitempty,oneof=admin staff mentor founder"`
	BatchID *int64 `json:"batch_id,omitempty,string"`
}

type CreateInvitationResponse struct {
	ID        int64      `json:"id,string"`
	Email     string     `json:"email"`
	Role      model.Role `json:"role"`
	InviteURL string     `json:"invite_url"`
	ExpiresAt time.Time  `json:"expires_at"`
}

type RevokeInvitationRequest struct {
	ID int64 `json:"id,string" binding:"required"`
}

type InvitationsResponse struct {
	Invitations []model.Invitation `json:"invitations"`
}

type ValidateTokenResponse struct {
	Email     string     `json:"email"`
	Role      model.Role `json:"role"`
	ExpiresAt time.Time  `json:"expires_at"`
	Valid     bool       `json:"valid"`
}
