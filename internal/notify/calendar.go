package notify

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/SL-IT-AMAZING/founder-sprint-workspace-sub001/core/config"
)

type CalendarEvent struct {
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	StartsAt    time.Time `json:"starts_at"`
	EndsAt      time.Time `json:"ends_at"`
	Location    string    `json:"location,omitempty"`
	MeetingURL  string    `json:"meeting_url,omitempty"`
	Attendees   []string  `json:"attendees"`
}

type Calendar interface {
	// CreateEvent returns the vendor event id. An empty id means no event was created.
	CreateEvent(ctx context.Context, idempotencyKey string, event CalendarEvent) (string, error)
	CancelEvent(ctx context.Context, idempotencyKey string, eventID string) error
}

type calendarClient struct {
	http       *resty.Client
	calendarID string
}

type createEventResponse struct {
	ID string `json:"id"`
}

func NewCalendar(cfg config.CalendarConfig) Calendar {
	if !cfg.Enabled() {
		return disabledCalendar{}
	}
	return &calendarClient{
		http:       newRestyClient(cfg.APIURL, cfg.APIKey, cfg.Timeout),
		calendarID: cfg.CalendarID,
	}
}

func (c *calendarClient) CreateEvent(ctx context.Context, idempotencyKey string, event CalendarEvent) (string, error) {
	var result createEventResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader(IdempotencyHeader, idempotencyKey).
		SetPathParam("calendarID", c.calendarID).
		SetBody(event).
		SetResult(&result).
		Post("/calendars/{calendarID}/events")
	if err != nil {
		return "", fmt.Errorf("creating calendar event: %w", err)
	}
	if err := checkResponse("calendar", resp); err != nil {
		return "", err
	}
	if result.ID == "" {
		return "", fmt.Errorf("creating calendar event: response has no id")
	}

	slog.InfoContext(ctx, "calendar event created", "event_id", result.ID, "attendees", len(event.Attendees))
	return result.ID, nil
}

func (c *calendarClient) CancelEvent(ctx context.Context, idempotencyKey string, eventID string) error {
	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader(IdempotencyHeader, idempotencyKey).
		SetPathParams(map[string]string{
			"calendarID": c.calendarID,
			"eventID":    eventID,
		}).
		Delete("/calendars/{calendarID}/events/{eventID}")
	if err != nil {
		return fmt.Errorf("cancelling calendar event: %w", err)
	}
	// Already gone counts as cancelled.
	if resp.StatusCode() == http.StatusNotFound || resp.StatusCode() == http.StatusGone {
		slog.InfoContext(ctx, "calendar event already removed", "event_id", eventID)
		return nil
	}
	if err := checkResponse("calendar", resp); err != nil {
		return err
	}

	slog.InfoContext(ctx, "calendar event cancelled", "event_id", eventID)
	return nil
}

type disabledCalendar struct{}

func (disabledCalendar) CreateEvent(ctx context.Context, idempotencyKey string, event CalendarEvent) (string, error) {
	slog.InfoContext(ctx, "calendar disabled, skipping event creation", "title", event.Title, "idempotency_key", idempotencyKey)
	return "", nil
}

func (disabledCalendar) CancelEvent(ctx context.Context, idempotencyKey string, eventID string) error {
	slog.InfoContext(ctx, "calendar disabled, skipping event cancellation", "event_id", eventID)
	return nil
}
