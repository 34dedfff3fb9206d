package dto

import "github.com/SL-IT-AMAZING/founder-sprint-workspace-sub001/internal/model"

type AuthURLResponse struct {
	AuthorizationURL string `json:"authorization_url"`
	State            string `json:"state"`
}

type ExchangeRequest struct {
	Code        string  `json:"code" binding:"required"`
	InviteToken *string `json:"invite_token,omitempty"`
}

type ExchangeResponse struct {
	User      *model.User `json:"user"`
	SessionID string      `json:"session_id"`
	ExpiresIn int         `json:"expires_in"`
}

type SessionResponse struct {
	User  *model.User  `json:"user"`
	Role  model.Role   `json:"role"`
	Batch *model.Batch `json:"batch,omitempty"`
}

type LogoutRequest struct {
	SessionID string  `json:"session_id"`
	ReturnTo  *string `json:"return_to,omitempty" binding:"omitempty,url"`
}

type LogoutResponse struct {
	Message   string  `json:"message"`
	LogoutURL *string `json:"logout_url,omitempty"`
}
