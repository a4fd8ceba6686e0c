package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

// ErrNotConfigured is returned when no webhook URL was provided
var ErrNotConfigured = errors.New("webhook: url not configured")

// StatusError is returned for non-2xx webhook responses
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("webhook: unexpected status %d: %s", e.StatusCode, e.Body)
}

// Client posts JSON payloads to a single fixed endpoint
type Client interface {
	PostJSON(ctx context.Context, payload interface{}) error
	IsConfigured() bool
}

type clientImpl struct {
	url        string
	httpClient *http.Client
}

// NewClient creates a webhook client for the given endpoint
func NewClient(url string, timeout time.Duration) Client {
	return &clientImpl{
		url:        url,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// PostJSON sends the payload once. Any 2xx response counts as success.
func (c *clientImpl) PostJSON(ctx context.Context, payload interface{}) error {
	if !c.IsConfigured() {
		return ErrNotConfigured
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("webhook: error creating payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("webhook: error creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("webhook: error sending request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return &StatusError{StatusCode: resp.StatusCode, Body: string(snippet)}
	}

	// drain so the connection can be reused
	_, _ = io.Copy(io.Discard, resp.Body)
	return nil
}

// IsConfigured reports whether the client has an endpoint
func (c *clientImpl) IsConfigured() bool {
	return c.url != ""
}
