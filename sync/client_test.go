package sync

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestReportCompleted(t *testing.T) {
	var got CompletedSession

	srv := httptest.NewServer(http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodPost {
				t.Errorf("method = %s, want POST", r.Method)
			}

			if r.URL.Path != "/api/session/complete" {
				t.Errorf("path = %s, want /api/session/complete", r.URL.Path)
			}

			if ct := r.Header.Get("Content-Type"); ct != "application/json" {
				t.Errorf("content type = %s, want application/json", ct)
			}

			if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
				t.Errorf("decoding request body: %v", err)
			}

			_ = json.NewEncoder(w).Encode(map[string]any{"success": true})
		},
	))
	defer srv.Close()

	c := NewClient(srv.URL)

	if err := c.ReportCompleted(context.Background(), 25); err != nil {
		t.Fatal(err)
	}

	want := CompletedSession{
		Duration:    25,
		SessionType: "work",
		Completed:   true,
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("unexpected payload (-want +got):\n%s", diff)
	}
}

func TestReportCompletedServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "nope", http.StatusInternalServerError)
		},
	))
	defer srv.Close()

	c := NewClient(srv.URL)

	if err := c.ReportCompleted(context.Background(), 25); err == nil {
		t.Fatal("expected an error for a 500 response")
	}
}

func TestStats(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/api/stats" {
				t.Errorf("path = %s, want /api/stats", r.URL.Path)
			}

			_ = json.NewEncoder(w).Encode(Stats{
				TodaySessions: 3,
				TotalSessions: 42,
			})
		},
	))
	defer srv.Close()

	c := NewClient(srv.URL)

	stats, err := c.Stats(context.Background())
	if err != nil {
		t.Fatal(err)
	}

	want := Stats{TodaySessions: 3, TotalSessions: 42}
	if diff := cmp.Diff(want, stats); diff != "" {
		t.Errorf("unexpected stats (-want +got):\n%s", diff)
	}
}

func TestNilClientIsNoOp(t *testing.T) {
	c := NewClient("")

	if c != nil {
		t.Fatal("empty URL should produce a nil client")
	}

	if err := c.ReportCompleted(context.Background(), 25); err != nil {
		t.Errorf("nil client ReportCompleted returned %v", err)
	}

	if _, err := c.Stats(context.Background()); err != nil {
		t.Errorf("nil client Stats returned %v", err)
	}
}
