package model

import (
	"fmt"
	"time"
)

type Role string

const (
	RoleAdmin   Role = "admin"
	RoleStaff   Role = "staff"
	RoleMentor  Role = "mentor"
	RoleFounder Role = "founder"
)

var validRoles = map[Role]bool{
	RoleAdmin:   true,
	RoleStaff:   true,
	RoleMentor:  true,
	RoleFounder: true,
}

func ParseRole(s string) (Role, error) {
	r := Role(s)
	if !validRoles[r] {
		return "", fmt.Errorf("invalid role %q", s)
	}
	return r, nil
}

func (r Role) IsValid() bool {
	return validRoles[r]
}

type User struct {
	ID          int64     `json:"id,string"`
	WorkOSID    *string   `json:"-"`
	Email       string    `json:"email"`
	Name        string    `json:"name"`
	AvatarURL   *string   `json:"avatar_url,omitempty"`
	Role        Role      `json:"role"`
	BatchID     *int64    `json:"batch_id,omitempty,string"`
	CompanyID   *int64    `json:"company_id,omitempty,string"`
	Title       *string   `json:"title,omitempty"`
	Bio         *string   `json:"bio,omitempty"`
	Location    *string   `json:"location,omitempty"`
	LinkedInURL *string   `json:"linkedin_url,omitempty"`
	TwitterURL  *string   `json:"twitter_url,omitempty"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// IsStaff reports whether the user moderates the community (admins included).
func (u *User) IsStaff() bool {
	return u.Role == RoleAdmin || u.Role == RoleStaff
}

// CanHostOfficeHours reports whether the user may publish office hour slots.
func (u *User) CanHostOfficeHours() bool {
	return u.Role == RoleAdmin || u.Role == RoleStaff || u.Role == RoleMentor
}

func (u *User) HasRole(roles ...Role) bool {
	for _, r := range roles {
		if u.Role == r {
			return true
		}
	}
	return false
}

func (u *User) InBatch(batchID int64) bool {
	return u.BatchID != nil && *u.BatchID == batchID
}

// Member is a directory entry: a user plus display names of their company and batch.
type Member struct {
	User
	CompanyName *string `json:"company_name,omitempty"`
	BatchName   *string `json:"batch_name,omitempty"`
}

type MemberFilter struct {
	BatchID         *int64
	CompanyID       *int64
	Role            *Role
	Query           *string
	IncludeInactive bool
	Limit           int32
	Offset          int32
}

// ProfileUpdate carries the self-editable profile fields. Nil means unchanged.
type ProfileUpdate struct {
	Name        *string
	Title       *string
	Bio         *string
	Location    *string
	LinkedInURL *string
	TwitterURL  *string
	AvatarURL   *string
}

// MembershipUpdate carries admin-editable fields. Nil means unchanged.
type MembershipUpdate struct {
	Role         *Role
	BatchID      *int64
	CompanyID    *int64
	ClearBatch   bool
	ClearCompany bool
}

// MemberProfile is a user with the company and batch they belong to.
type MemberProfile struct {
	User
	Company *Company `json:"company,omitempty"`
	Batch   *Batch   `json:"batch,omitempty"`
}

type MemberPage struct {
	Members []Member `json:"members"`
	Total   int64    `json:"total"`
	Limit   int32    `json:"limit"`
	Offset  int32    `json:"offset"`
}

// SystemActor stands in for operator tooling and admin API key callers.
// Its zero ID is never persisted as an author or inviter.
func SystemActor() *User {
	return &User{Name: "system", Role: RoleAdmin, IsActive: true}
}

func (u *User) IsSystem() bool {
	return u.ID == 0 && u.Role == RoleAdmin
}
