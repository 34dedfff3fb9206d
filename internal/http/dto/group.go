package dto

import "github.com/SL-IT-AMAZING/founder-sprint-workspace-sub001/internal/model"

type GroupRequest struct {
	Name        string  `json:"name" binding:"required,min=1,max=255"`
	Description *string `json:"description,omitempty" binding:"omitempty,max=4000"`
	BatchID     *int64  `json:"batch_id,omitempty,string"`
	IsPrivate   bool    `json:"is_private"`
}

func (r GroupRequest) ToInput() model.GroupInput {
	return model.GroupInput{
		Name:        r.Name,
		Description: r.Description,
		BatchID:     r.BatchID,
		IsPrivate:   r.IsPrivate,
	}
}

type AddGroupMemberRequest struct {
	UserID int64 `json:"user_id,string" binding:"required"`
}
