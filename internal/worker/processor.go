package worker

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/SL-IT-AMAZING/founder-sprint-workspace-sub001/internal/model"
	"github.com/SL-IT-AMAZING/founder-sprint-workspace-sub001/internal/notify"
	"github.com/SL-IT-AMAZING/founder-sprint-workspace-sub001/internal/queue"
	"github.com/SL-IT-AMAZING/founder-sprint-workspace-sub001/internal/store"
)

// NotificationProcessor delivers emails and keeps office hour calendar events
// in sync with slot state.
type NotificationProcessor struct {
	email    notify.EmailSender
	calendar notify.Calendar
	slots    SlotStore
}

func NewNotificationProcessor(email notify.EmailSender, calendar notify.Calendar, slots SlotStore) *NotificationProcessor {
	return &NotificationProcessor{
		email:    email,
		calendar: calendar,
		slots:    slots,
	}
}

func (p *NotificationProcessor) Process(ctx context.Context, msg queue.Message) error {
	switch msg.TaskType {
	case queue.TaskTypeSendEmail:
		return p.sendEmail(ctx, msg)
	case queue.TaskTypeCalendarCreate:
		return p.createEvent(ctx, msg)
	case queue.TaskTypeCalendarCancel:
		return p.cancelEvent(ctx, msg)
	default:
		return permanent(fmt.Errorf("unknown task type %q", msg.TaskType))
	}
}

func (p *NotificationProcessor) sendEmail(ctx context.Context, msg queue.Message) error {
	var payload queue.EmailPayload
	if err := msg.Decode(&payload); err != nil {
		return permanent(err)
	}
	if len(payload.To) == 0 {
		return permanent(errors.New("email has no recipients"))
	}

	return classify(p.email.Send(ctx, idempotencyKey(msg), notify.Email{
		To:       payload.To,
		Subject:  payload.Subject,
		Text:     payload.Text,
		Template: payload.Template,
		Data:     payload.Data,
	}))
}

func (p *NotificationProcessor) createEvent(ctx context.Context, msg queue.Message) error {
	var payload queue.CalendarCreatePayload
	if err := msg.Decode(&payload); err != nil {
		return permanent(err)
	}

	slot, err := p.slots.GetSlot(ctx, payload.SlotID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			slog.InfoContext(ctx, "slot deleted before calendar event was created", "slot_id", payload.SlotID)
			return nil
		}
		return fmt.Errorf("getting slot: %w", err)
	}
	if slot.Status != model.SlotStatusConfirmed {
		slog.InfoContext(ctx, "slot no longer confirmed, skipping calendar event",
			"slot_id", slot.ID,
			"status", slot.Status)
		return nil
	}
	req, err := p.slots.GetRequest(ctx, payload.RequestID)
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		return fmt.Errorf("getting request: %w", err)
	}
	if req == nil || req.SlotID != slot.ID || req.Status != model.RequestStatusConfirmed {
		slog.InfoContext(ctx, "booking no longer confirmed, skipping calendar event",
			"slot_id", slot.ID,
			"request_id", payload.RequestID)
		return nil
	}
	if slot.CalendarEventID != nil && *slot.CalendarEventID != "" {
		slog.InfoContext(ctx, "calendar event already exists", "slot_id", slot.ID)
		return nil
	}

	key := idempotencyKey(msg)
	eventID, err := p.calendar.CreateEvent(ctx, key, notify.CalendarEvent{
		Title:       payload.Title,
		Description: payload.Description,
		StartsAt:    payload.StartsAt,
		EndsAt:      payload.EndsAt,
		Location:    payload.Location,
		MeetingURL:  payload.MeetingURL,
		Attendees:   payload.Attendees,
	})
	if err != nil {
		return classify(err)
	}
	if eventID == "" {
		return nil
	}
	if err := p.slots.SetSlotCalendarEvent(ctx, slot.ID, &eventID); err != nil {
		return fmt.Errorf("saving calendar event id: %w", err)
	}

	// A cancellation that raced the event creation found no event id to cancel.
	current, err := p.slots.GetSlot(ctx, slot.ID)
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		return fmt.Errorf("rechecking slot: %w", err)
	}
	if current == nil || current.Status != model.SlotStatusConfirmed {
		slog.InfoContext(ctx, "slot changed while creating calendar event, cancelling it", "slot_id", slot.ID)
		if err := p.calendar.CancelEvent(ctx, key+":cancel", eventID); err != nil {
			return classify(err)
		}
		if current != nil {
			return p.slots.SetSlotCalendarEvent(ctx, slot.ID, nil)
		}
	}
	return nil
}

func (p *NotificationProcessor) cancelEvent(ctx context.Context, msg queue.Message) error {
	var payload queue.CalendarCancelPayload
	if err := msg.Decode(&payload); err != nil {
		return permanent(err)
	}
	if payload.EventID == "" {
		return nil
	}

	if err := p.calendar.CancelEvent(ctx, idempotencyKey(msg), payload.EventID); err != nil {
		return classify(err)
	}

	slot, err := p.slots.GetSlot(ctx, payload.SlotID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil
		}
		return fmt.Errorf("getting slot: %w", err)
	}
	if slot.CalendarEventID != nil && *slot.CalendarEventID == payload.EventID {
		if err := p.slots.SetSlotCalendarEvent(ctx, slot.ID, nil); err != nil {
			return fmt.Errorf("clearing calendar event id: %w", err)
		}
	}
	return nil
}

// classify marks vendor rejections that will not change on retry as permanent.
func classify(err error) error {
	if err == nil {
		return nil
	}
	var apiErr *notify.APIError
	if errors.As(err, &apiErr) && !apiErr.Retryable() {
		return permanent(err)
	}
	return err
}

func idempotencyKey(msg queue.Message) string {
	if msg.IdempotencyKey != "" {
		return msg.IdempotencyKey
	}
	return msg.ID
}
