package model

import "time"

type InvitationStatus string

const (
	InvitationStatusPending  InvitationStatus = "pending"
	InvitationStatusAccepted InvitationStatus = "accepted"
	InvitationStatusExpired  InvitationStatus = "expired"
	InvitationStatusRevoked  InvitationStatus = "revoked"
)

type Invitation struct {
	ID         int64            `json:"id,string"`
	Email      string           `json:"email"`
	Token      string           `json:"-"`
	Status     InvitationStatus `json:"status"`
	Role       Role             `json:"role"`
	BatchID    *int64           `json:"batch_id,omitempty,string"`
	InvitedBy  *int64           `json:"invited_by,omitempty,string"`
	AcceptedBy *int64           `json:"accepted_by,omitempty,string"`
	ExpiresAt  time.Time        `json:"expires_at"`
	CreatedAt  time.Time        `json:"created_at"`
	AcceptedAt *time.Time       `json:"accepted_at,omitempty"`
}

func (i *Invitation) IsValid() bool {
	return i.Status == InvitationStatusPending && time.Now().Before(i.ExpiresAt)
}
