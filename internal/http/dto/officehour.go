package dto

import (
	"time"

	"github.com/SL-IT-AMAZING/founder-sprint-workspace-sub001/internal/model"
)

type SlotRequest struct {
	HostID     *int64    `json:"host_id,omitempty,string"`
	StartsAt   time.Time `json:"starts_at" binding:"required"`
	EndsAt     time.Time `json:"ends_at" binding:"required"`
	Location   *string   `json:"location,omitempty" binding:"omitempty,max=255"`
	MeetingURL *string   `json:"meeting_url,omitempty" binding:"omitempty,url,max=2048"`
	Notes      *string   `json:"notes,omitempty" binding:"omitempty,max=4000"`
}

func (r SlotRequest) ToInput() model.SlotInput {
	return model.SlotInput{
		HostID:     r.HostID,
		StartsAt:   r.StartsAt,
		EndsAt:     r.EndsAt,
		Location:   r.Location,
		MeetingURL: r.MeetingURL,
		Notes:      r.Notes,
	}
}

type SlotRequestRequest struct {
	Topic string `json:"topic" binding:"required,max=2000"`
}

type RespondRequest struct {
	Note *string `json:"note,omitempty" binding:"omitempty,max=2000"`
}

type SlotsResponse struct {
	Slots []model.OfficeHourSlot `json:"slots"`
}

type RequestsResponse struct {
	Requests []model.OfficeHourRequest `json:"requests"`
}
