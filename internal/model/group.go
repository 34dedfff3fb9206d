package model

import "time"

type GroupRole string

const (
	GroupRoleOwner  GroupRole = "owner"
	GroupRoleMember GroupRole = "member"
)

type Group struct {
	ID          int64     `json:"id,string"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Description *string   `json:"description,omitempty"`
	BatchID     *int64    `json:"batch_id,omitempty,string"`
	IsPrivate   bool      `json:"is_private"`
	CreatedBy   int64     `json:"created_by,string"`
	MemberCount int64     `json:"member_count"`
	IsMember    bool      `json:"is_member"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type GroupMember struct {
	GroupID   int64     `json:"group_id,string"`
	UserID    int64     `json:"user_id,string"`
	Role      GroupRole `json:"role"`
	Name      string    `json:"name,omitempty"`
	AvatarURL *string   `json:"avatar_url,omitempty"`
	Title     *string   `json:"title,omitempty"`
	JoinedAt  time.Time `json:"joined_at"`
}

type GroupInput struct {
	Name        string
	Description *string
	BatchID     *int64
	IsPrivate   bool
}
