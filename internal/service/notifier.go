package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/SL-IT-AMAZING/founder-sprint-workspace-sub001/common/logger"
	"github.com/SL-IT-AMAZING/founder-sprint-workspace-sub001/internal/model"
	"github.com/SL-IT-AMAZING/founder-sprint-workspace-sub001/internal/queue"
)

// Email templates rendered by the email API.
const (
	TemplateInvitation       = "invitation"
	TemplateNewMessage       = "new_message"
	TemplateRequestReceived  = "office_hour_requested"
	TemplateRequestConfirmed = "office_hour_confirmed"
	TemplateRequestDeclined  = "office_hour_declined"
	TemplateRequestCancelled = "office_hour_request_cancelled"
	TemplateSlotCancelled    = "office_hour_cancelled"
)

const slotTimeLayout = "Mon Jan 2, 15:04 MST"

// notifier turns domain events into queue tasks. Failures are logged and never returned.
type notifier struct {
	producer queue.Producer
}

func newNotifier(producer queue.Producer) *notifier {
	return &notifier{producer: producer}
}

func (n *notifier) enqueue(ctx context.Context, taskType queue.TaskType, payload any) {
	if n == nil || n.producer == nil {
		return
	}
	task, err := queue.NewTask(taskType, payload)
	if err != nil {
		slog.ErrorContext(ctx, "failed to build task", "error", err, "task_type", taskType)
		return
	}
	if traceID := logger.TraceIDFromContext(ctx); traceID != "" {
		task.TraceID = &traceID
	}
	if err := n.producer.Enqueue(ctx, task); err != nil {
		slog.WarnContext(ctx, "failed to enqueue task", "error", err, "task_type", taskType)
	}
}

func (n *notifier) email(ctx context.Context, to string, subject, template, text string, data map[string]string) {
	if to == "" {
		return
	}
	n.enqueue(ctx, queue.TaskTypeSendEmail, queue.EmailPayload{
		To:       []string{to},
		Subject:  subject,
		Template: template,
		Text:     text,
		Data:     data,
	})
}

func (n *notifier) invitation(ctx context.Context, inv *model.Invitation, inviteURL string) {
	n.email(ctx, inv.Email,
		"You're invited to Founder Sprint",
		TemplateInvitation,
		fmt.Sprintf("You have been invited to join Founder Sprint as %s. Accept your invitation: %s", inv.Role, inviteURL),
		map[string]string{
			"invite_url": inviteURL,
			"role":       string(inv.Role),
			"expires_at": inv.ExpiresAt.Format(slotTimeLayout),
		})
}

func (n *notifier) newMessage(ctx context.Context, sender *model.User, recipient model.Participant, conv *model.Conversation, msg *model.Message) {
	n.email(ctx, recipient.Email,
		fmt.Sprintf("New message from %s", sender.Name),
		TemplateNewMessage,
		fmt.Sprintf("%s wrote: %s", sender.Name, preview(msg.Body)),
		map[string]string{
			"sender_name":     sender.Name,
			"conversation_id": fmt.Sprint(conv.ID),
			"preview":         preview(msg.Body),
		})
}

func (n *notifier) slotEmail(ctx context.Context, to *model.User, slot *model.OfficeHourSlot, subject, template, text string) {
	if to == nil {
		return
	}
	n.email(ctx, to.Email, subject, template, text, map[string]string{
		"recipient_name": to.Name,
		"slot_id":        fmt.Sprint(slot.ID),
		"starts_at":      slot.StartsAt.Format(slotTimeLayout),
		"ends_at":        slot.EndsAt.Format(slotTimeLayout),
	})
}

func (n *notifier) calendarCreate(ctx context.Context, slot *model.OfficeHourSlot, req *model.OfficeHourRequest, host, requester *model.User) {
	payload := queue.CalendarCreatePayload{
		SlotID:      slot.ID,
		RequestID:   req.ID,
		Title:       fmt.Sprintf("Office hours: %s / %s", host.Name, requester.Name),
		Description: req.Topic,
		StartsAt:    slot.StartsAt,
		EndsAt:      slot.EndsAt,
		Attendees:   []string{host.Email, requester.Email},
	}
	if slot.Location != nil {
		payload.Location = *slot.Location
	}
	if slot.MeetingURL != nil {
		payload.MeetingURL = *slot.MeetingURL
	}
	n.enqueue(ctx, queue.TaskTypeCalendarCreate, payload)
}

// calendarCancel takes the event id read before the slot left confirmed; the
// status change clears it from the row.
func (n *notifier) calendarCancel(ctx context.Context, slotID int64, eventID *string) {
	if eventID == nil || *eventID == "" {
		return
	}
	n.enqueue(ctx, queue.TaskTypeCalendarCancel, queue.CalendarCancelPayload{
		SlotID:  slotID,
		EventID: *eventID,
	})
}

func preview(body string) string {
	body = strings.Join(strings.Fields(body), " ")
	return logger.Truncate(body, 140)
}
