package notify

import (
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
)

const (
	defaultTimeout = 10 * time.Second
	retryCount     = 3

	// IdempotencyHeader carries the task key so vendors drop duplicate deliveries.
	IdempotencyHeader = "Idempotency-Key"
)

// APIError is a non-2xx response from a vendor API.
type APIError struct {
	Service    string
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s api returned %d: %s", e.Service, e.StatusCode, e.Body)
}

// Retryable reports whether redelivering the task may succeed.
func (e *APIError) Retryable() bool {
	return e.StatusCode == http.StatusTooManyRequests || e.StatusCode >= 500
}

func newRestyClient(baseURL, apiKey string, timeout time.Duration) *resty.Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetRetryCount(retryCount).
		SetRetryWaitTime(200 * time.Millisecond).
		SetRetryMaxWaitTime(2 * time.Second).
		AddRetryCondition(func(r *resty.Response, err error) bool {
			if err != nil {
				return true
			}
			return r.StatusCode() == http.StatusTooManyRequests || r.StatusCode() >= 500
		}).
		SetAuthToken(apiKey).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")
}

func checkResponse(service string, resp *resty.Response) error {
	if resp.IsSuccess() {
		return nil
	}
	return &APIError{
		Service:    service,
		StatusCode: resp.StatusCode(),
		Body:       truncateBody(resp.String()),
	}
}

func truncateBody(s string) string {
	const maxBody = 512
	if len(s) <= maxBody {
		return s
	}
	return s[:maxBody] + "..."
}
