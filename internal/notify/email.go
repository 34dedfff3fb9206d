package notify

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/go-resty/resty/v2"

	"github.com/SL-IT-AMAZING/founder-sprint-workspace-sub001/core/config"
)

type Email struct {
	To       []string          `json:"to"`
	Subject  string            `json:"subject"`
	Text     string            `json:"text"`
	Template string            `json:"template,omitempty"`
	Data     map[string]string `json:"data,omitempty"`
}

type EmailSender interface {
	Send(ctx context.Context, idempotencyKey string, email Email) error
}

type emailClient struct {
	http *resty.Client
	from string
}

type sendEmailRequest struct {
	From string `json:"from"`
	Email
}

// NewEmailSender returns a sender for the configured email API, or one that
// only logs when no API is configured.
func NewEmailSender(cfg config.EmailConfig) EmailSender {
	if !cfg.Enabled() {
		return disabledEmail{}
	}
	return &emailClient{
		http: newRestyClient(cfg.APIURL, cfg.APIKey, cfg.Timeout),
		from: cfg.From,
	}
}

func (c *emailClient) Send(ctx context.Context, idempotencyKey string, email Email) error {
	if len(email.To) == 0 {
		return fmt.Errorf("sending email: no recipients")
	}

	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader(IdempotencyHeader, idempotencyKey).
		SetBody(sendEmailRequest{From: c.from, Email: email}).
		Post("/emails")
	if err != nil {
		return fmt.Errorf("sending email: %w", err)
	}
	if err := checkResponse("email", resp); err != nil {
		return err
	}

	slog.InfoContext(ctx, "email sent",
		"recipients", len(email.To),
		"template", email.Template,
		"idempotency_key", idempotencyKey)
	return nil
}

type disabledEmail struct{}

func (disabledEmail) Send(ctx context.Context, idempotencyKey string, email Email) error {
	slog.InfoContext(ctx, "email disabled, skipping send",
		"recipients", len(email.To),
		"subject", email.Subject,
		"idempotency_key", idempotencyKey)
	return nil
}
