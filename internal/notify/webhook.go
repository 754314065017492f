package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"teamlens-backend/internal/analysis"
	"teamlens-backend/internal/attendance"
	"teamlens-backend/internal/shared/config"
	"teamlens-backend/internal/shared/telemetry"
)

const defaultTimeout = 10 * time.Second

// WebhookClient posts short event messages to a chat webhook. A nil client
// (no webhook URL configured) is safe to call and does nothing; callers never
// need to branch on whether notifications are enabled.
type WebhookClient struct {
	url        string
	httpClient *http.Client
}

// NewWebhookClient returns nil when no URL is configured.
func NewWebhookClient(cfg *config.Config) *WebhookClient {
	url := strings.TrimSpace(cfg.ChatWebhookURL)
	if url == "" {
		return nil
	}
	timeout := cfg.ChatWebhookTimeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &WebhookClient{
		url: url,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

type webhookMessage struct {
	Text string `json:"text"`
}

// AnalysisCompleted satisfies the people package's Notifier interface.
func (c *WebhookClient) AnalysisCompleted(ctx context.Context, personName string, result *analysis.Result) {
	if c == nil || result == nil {
		return
	}
	text := fmt.Sprintf("Analysis ready for %s: %s (mode %s, team fit %d, leadership %d)",
		personName, result.PrimaryRole, result.Mode, result.TeamFitScore, result.LeadershipScore)
	c.post(ctx, "analysis_completed", text)
}

// AttendanceReportCompleted satisfies the attendance package's Notifier
// interface.
func (c *WebhookClient) AttendanceReportCompleted(ctx context.Context, fileName string, report *attendance.Report) {
	if c == nil || report == nil {
		return
	}
	text := fmt.Sprintf("Attendance report for %s: %d rows, %d violations, %.1f%% compliant",
		fileName, report.TotalRows, report.TotalViolations, report.CompliancePercent)
	c.post(ctx, "attendance_report_completed", text)
}

// post is fire-and-forget: failures are logged, never returned, so a flaky
// chat integration cannot fail a request.
func (c *WebhookClient) post(ctx context.Context, event, text string) {
	payload, err := json.Marshal(webhookMessage{Text: text})
	if err != nil {
		telemetry.Error("notify.encode_failed", map[string]any{"event": event, "error": err.Error()})
		return
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(payload))
	if err != nil {
		telemetry.Error("notify.request_failed", map[string]any{"event": event, "error": err.Error()})
		return
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		telemetry.Error("notify.send_failed", map[string]any{"event": event, "error": err.Error()})
		return
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		telemetry.Error("notify.rejected", map[string]any{"event": event, "status": resp.StatusCode})
		return
	}
	telemetry.Info("notify.sent", map[string]any{"event": event})
}
