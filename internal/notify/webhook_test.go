package notify

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"teamlens-backend/internal/analysis"
	"teamlens-backend/internal/attendance"
	"teamlens-backend/internal/shared/config"
)

func TestNewWebhookClientDisabledWithoutURL(t *testing.T) {
	if client := NewWebhookClient(&config.Config{}); client != nil {
		t.Fatalf("expected nil client when no URL is configured")
	}
}

func TestNilClientIsSafe(t *testing.T) {
	var client *WebhookClient
	client.AnalysisCompleted(context.Background(), "Dana", &analysis.Result{})
	client.AttendanceReportCompleted(context.Background(), "file.csv", &attendance.Report{})
}

func TestAnalysisCompletedPostsMessage(t *testing.T) {
	received := make(chan string, 1)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		received <- string(body)
		w.WriteHeader(http.StatusOK)
	}))
	t.Cleanup(server.Close)

	client := NewWebhookClient(&config.Config{
		ChatWebhookURL:     server.URL,
		ChatWebhookTimeout: 2 * time.Second,
	})
	if client == nil {
		t.Fatalf("expected an enabled client")
	}

	client.AnalysisCompleted(context.Background(), "Dana", &analysis.Result{
		Mode:            analysis.ModeFull,
		PrimaryRole:     "Strategic Thinking Expert",
		TeamFitScore:    58,
		LeadershipScore: 82,
	})

	select {
	case body := <-received:
		var msg struct {
			Text string `json:"text"`
		}
		if err := json.Unmarshal([]byte(body), &msg); err != nil {
			t.Fatalf("decode webhook body: %v", err)
		}
		if !strings.Contains(msg.Text, "Dana") || !strings.Contains(msg.Text, "Strategic Thinking Expert") {
			t.Fatalf("unexpected message %q", msg.Text)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("webhook was never called")
	}
}

func TestRejectedWebhookDoesNotPanic(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	t.Cleanup(server.Close)

	client := NewWebhookClient(&config.Config{ChatWebhookURL: server.URL})
	client.AttendanceReportCompleted(context.Background(), "file.csv", &attendance.Report{
		TotalRows:         4,
		TotalViolations:   1,
		CompliancePercent: 75,
	})
}
