package model

import "time"

type SlotStatus string

const (
	SlotStatusAvailable SlotStatus = "available"
	SlotStatusRequested SlotStatus = "requested"
	SlotStatusConfirmed SlotStatus = "confirmed"
	SlotStatusCancelled SlotStatus = "cancelled"
	SlotStatusCompleted SlotStatus = "completed"
)

var slotTransitions = map[SlotStatus][]SlotStatus{
	SlotStatusAvailable: {SlotStatusRequested, SlotStatusCancelled},
	SlotStatusRequested: {SlotStatusConfirmed, SlotStatusAvailable, SlotStatusCancelled},
	SlotStatusConfirmed: {SlotStatusCompleted, SlotStatusAvailable, SlotStatusCancelled},
}

func (s SlotStatus) CanTransitionTo(next SlotStatus) bool {
	for _, allowed := range slotTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// IsTerminal reports whether no further transitions are possible.
func (s SlotStatus) IsTerminal() bool {
	return s == SlotStatusCancelled || s == SlotStatusCompleted
}

type RequestStatus string

const (
	RequestStatusPending   RequestStatus = "pending"
	RequestStatusConfirmed RequestStatus = "confirmed"
	RequestStatusDeclined  RequestStatus = "declined"
	RequestStatusCancelled RequestStatus = "cancelled"
	RequestStatusCompleted RequestStatus = "completed"
)

var requestTransitions = map[RequestStatus][]RequestStatus{
	RequestStatusPending:   {RequestStatusConfirmed, RequestStatusDeclined, RequestStatusCancelled},
	RequestStatusConfirmed: {RequestStatusCancelled, RequestStatusCompleted},
}

func (s RequestStatus) CanTransitionTo(next RequestStatus) bool {
	for _, allowed := range requestTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

func (s RequestStatus) IsActive() bool {
	return s == RequestStatusPending || s == RequestStatusConfirmed
}

type OfficeHourSlot struct {
	ID              int64      `json:"id,string"`
	HostID          int64      `json:"host_id,string"`
	HostName        string     `json:"host_name,omitempty"`
	HostAvatarURL   *string    `json:"host_avatar_url,omitempty"`
	HostTitle       *string    `json:"host_title,omitempty"`
	StartsAt        time.Time  `json:"starts_at"`
	EndsAt          time.Time  `json:"ends_at"`
	Location        *string    `json:"location,omitempty"`
	MeetingURL      *string    `json:"meeting_url,omitempty"`
	Notes           *string    `json:"notes,omitempty"`
	Status          SlotStatus `json:"status"`
	CalendarEventID *string    `json:"calendar_event_id,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

func (s *OfficeHourSlot) Duration() time.Duration {
	return s.EndsAt.Sub(s.StartsAt)
}

type OfficeHourRequest struct {
	ID          int64         `json:"id,string"`
	SlotID      int64         `json:"slot_id,string"`
	RequesterID int64         `json:"requester_id,string"`
	Topic       string        `json:"topic"`
	Status      RequestStatus `json:"status"`
	HostNote    *string       `json:"host_note,omitempty"`
	RespondedAt *time.Time    `json:"responded_at,omitempty"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`

	// Populated by listing queries.
	Slot             *OfficeHourSlot `json:"slot,omitempty"`
	CounterpartName  string          `json:"counterpart_name,omitempty"`
	CounterpartEmail string          `json:"counterpart_email,omitempty"`
}

// SlotInput is the host-editable part of a slot.
type SlotInput struct {
	HostID     *int64
	StartsAt   time.Time
	EndsAt     time.Time
	Location   *string
	MeetingURL *string
	Notes      *string
}

type SlotFilter struct {
	HostID *int64
	From   *time.Time
	To     *time.Time
	Limit  int32
}

// SlotMaintenanceResult summarizes one sweep over past slots.
type SlotMaintenanceResult struct {
	Completed int
	Cancelled int
	Declined  int
}
