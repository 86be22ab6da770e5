// Package sync reports completed sessions to a remote server. Every call is
// best-effort: the timer never blocks on, or fails because of, the network.
package sync

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

const defaultTimeout = 10 * time.Second

// CompletedSession is the payload for reporting a finished work session.
type CompletedSession struct {
	Duration    int    `json:"duration"` // minutes
	SessionType string `json:"session_type"`
	Completed   bool   `json:"completed"`
}

// Stats mirrors the server's session statistics response.
type Stats struct {
	TodaySessions int `json:"today_sessions"`
	TotalSessions int `json:"total_sessions"`
}

// Client talks to the session server. A nil Client is valid and turns every
// method into a no-op, which is how sync is disabled.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// NewClient returns a client for the given server URL, or nil when the URL
// is empty.
func NewClient(serverURL string) *Client {
	if serverURL == "" {
		return nil
	}

	return &Client{
		httpClient: &http.Client{Timeout: defaultTimeout},
		baseURL:    strings.TrimSuffix(serverURL, "/"),
	}
}

// ReportCompleted records a completed work session on the server.
func (c *Client) ReportCompleted(ctx context.Context, workMinutes int) error {
	if c == nil {
		return nil
	}

	payload := CompletedSession{
		Duration:    workMinutes,
		SessionType: "work",
		Completed:   true,
	}

	b, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encoding session payload: %w", err)
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		c.baseURL+"/api/session/complete",
		bytes.NewReader(b),
	)
	if err != nil {
		return err
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}

	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("session report rejected: %s", resp.Status)
	}

	return nil
}

// Stats fetches the completed-session counters from the server.
func (c *Client) Stats(ctx context.Context) (Stats, error) {
	var stats Stats

	if c == nil {
		return stats, nil
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodGet,
		c.baseURL+"/api/stats",
		nil,
	)
	if err != nil {
		return stats, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return stats, err
	}

	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return stats, fmt.Errorf("stats request failed: %s", resp.Status)
	}

	if err := json.NewDecoder(resp.Body).Decode(&stats); err != nil {
		return stats, fmt.Errorf("decoding stats response: %w", err)
	}

	return stats, nil
}
