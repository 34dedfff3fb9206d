package dto

import (
	"strings"

	"github.com/SL-IT-AMAZING/founder-sprint-workspace-sub001/internal/model"
)

type UpdateProfileRequest struct {
	Name        *string `json:"name,omitempty" binding:"omitempty,min=1,max=255"`
	Title       *string `json:"title,omitempty" binding:"omitempty,max=255"`
	Bio         *string `json:"bio,omitempty" binding:"omitempty,max=4000"`
	Location    *string `json:"location,omitempty" binding:"omitempty,max=255"`
	LinkedInURL *string `json:"linkedin_url,omitempty" binding:"omitempty,max=2048"`
	TwitterURL  *string `json:"twitter_url,omitempty" binding:"omitempty,max=2048"`
	AvatarURL   *string `json:"avatar_url,omitempty" binding:"omitempty,max=2048"`
}

func (r UpdateProfileRequest) ToUpdate() model.ProfileUpdate {
	return model.ProfileUpdate{
		Name:        r.Name,
		Title:       r.Title,
		Bio:         r.Bio,
		Location:    r.Location,
		LinkedInURL: r.LinkedInURL,
		TwitterURL:  r.TwitterURL,
		AvatarURL:   r.AvatarURL,
	}
}

// UpdateMembershipRequest is the admin edit of a user. Empty strings clear batch and company.
type UpdateMembershipRequest struct {
	Role      *string `json:"role,omitempty" binding:"omitempty,oneof=admin staff mentor founder"`
	BatchID   *string `json:"batch_id,omitempty"`
	CompanyID *string `json:"company_id,omitempty"`
}

func (r UpdateMembershipRequest) ToUpdate() (model.MembershipUpdate, error) {
	var update model.MembershipUpdate
	if r.Role != nil {
		role := model.Role(*r.Role)
		update.Role = &role
	}
	if r.BatchID != nil {
		if strings.TrimSpace(*r.BatchID) == "" {
			update.ClearBatch = true
		} else {
			id, err := ParseID(*r.BatchID)
			if err != nil {
				return update, err
			}
			update.BatchID = &id
		}
	}
	if r.CompanyID != nil {
		if strings.TrimSpace(*r.CompanyID) == "" {
			update.ClearCompany = true
		} else {
			id, err := ParseID(*r.CompanyID)
			if err != nil {
				return update, err
			}
			update.CompanyID = &id
		}
	}
	return update, nil
}
