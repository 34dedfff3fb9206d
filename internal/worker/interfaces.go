package worker

import (
	"context"

	"github.com/SL-IT-AMAZING/founder-sprint-workspace-sub001/internal/model"
	"github.com/SL-IT-AMAZING/founder-sprint-workspace-sub001/internal/queue"
)

// Consumer abstracts the message queue for testability.
type Consumer interface {
	Read(ctx context.Context) ([]queue.Message, error)
	Ack(ctx context.Context, msg queue.Message) error
	Requeue(ctx context.Context, msg queue.Message, errMsg string) error
	SendDLQ(ctx context.Context, msg queue.Message, errMsg string) error
}

// TaskProcessor performs the side effect a queue message describes.
type TaskProcessor interface {
	Process(ctx context.Context, msg queue.Message) error
}

// SlotStore is the part of the office hour store the calendar tasks need.
type SlotStore interface {
	GetSlot(ctx context.Context, id int64) (*model.OfficeHourSlot, error)
	GetRequest(ctx context.Context, id int64) (*model.OfficeHourRequest, error)
	SetSlotCalendarEvent(ctx context.Context, id int64, eventID *string) error
}

// Maintainer runs one periodic maintenance pass.
type Maintainer interface {
	RunMaintenance(ctx context.Context) (*model.MaintenanceReport, error)
}
