package queue

import (
	"encoding/json"
	"fmt"
	"time"
)

type TaskType string

const (
	TaskTypeSendEmail      TaskType = "send_email"
	TaskTypeCalendarCreate TaskType = "calendar_create"
	TaskTypeCalendarCancel TaskType = "calendar_cancel"
)

func (t TaskType) IsValid() bool {
	switch t {
	case TaskTypeSendEmail, TaskTypeCalendarCreate, TaskTypeCalendarCancel:
		return true
	}
	return false
}

// Task is a unit of side-effect work. Payload is the JSON encoding of one of the
// payload types below, matching TaskType.
type Task struct {
	TaskType TaskType
	Payload  json.RawMessage
	TraceID  *string
	Attempt  int
	// IdempotencyKey is generated on first enqueue and kept across retries.
	IdempotencyKey string
}

type EmailPayload struct {
	To       []string          `json:"to"`
	Subject  string            `json:"subject"`
	Template string            `json:"template"`
	Text     string            `json:"text"`
	Data     map[string]string `json:"data,omitempty"`
}

type CalendarCreatePayload struct {
	SlotID      int64     `json:"slot_id,string"`
	RequestID   int64     `json:"request_id,string"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	StartsAt    time.Time `json:"starts_at"`
	EndsAt      time.Time `json:"ends_at"`
	Location    string    `json:"location,omitempty"`
	MeetingURL  string    `json:"meeting_url,omitempty"`
	Attendees   []string  `json:"attendees"`
}

type CalendarCancelPayload struct {
	SlotID  int64  `json:"slot_id,string"`
	EventID string `json:"event_id"`
}

func NewTask(taskType TaskType, payload any) (Task, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return Task{}, fmt.Errorf("encoding %s payload: %w", taskType, err)
	}
	return Task{TaskType: taskType, Payload: raw}, nil
}

// Decode unmarshals the message payload into dest.
func (m Message) Decode(dest any) error {
	if err := json.Unmarshal(m.Payload, dest); err != nil {
		return fmt.Errorf("decoding %s payload: %w", m.TaskType, err)
	}
	return nil
}
