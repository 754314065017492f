package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"teamlens-backend/internal/shared/config"
)

func doRequest(t *testing.T, router http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestRouterHealth(t *testing.T) {
	router := NewRouter(config.Config{})
	rec := doRequest(t, router, http.MethodGet, "/api/v1/health", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestRouterCatalogEndpoints(t *testing.T) {
	router := NewRouter(config.Config{})

	rec := doRequest(t, router, http.MethodGet, "/api/v1/talents", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("talents: expected 200, got %d", rec.Code)
	}
	var talentsBody struct {
		Count int `json:"count"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &talentsBody); err != nil {
		t.Fatalf("decode talents: %v", err)
	}
	if talentsBody.Count != 34 {
		t.Fatalf("expected 34 talents, got %d", talentsBody.Count)
	}

	rec = doRequest(t, router, http.MethodGet, "/api/v1/mbti/types", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("types: expected 200, got %d", rec.Code)
	}
	var typesBody struct {
		Count int `json:"count"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &typesBody); err != nil {
		t.Fatalf("decode types: %v", err)
	}
	if typesBody.Count != 16 {
		t.Fatalf("expected 16 types, got %d", typesBody.Count)
	}

	rec = doRequest(t, router, http.MethodGet, "/api/v1/mbti/types/intj", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("type detail: expected 200, got %d", rec.Code)
	}
	rec = doRequest(t, router, http.MethodGet, "/api/v1/mbti/types/zzzz", "")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("bad code: expected 400, got %d", rec.Code)
	}
}

func TestRouterEndToEndAnalysis(t *testing.T) {
	router := NewRouter(config.Config{})

	rec := doRequest(t, router, http.MethodPost, "/api/v1/analysis",
		`{"personalityType":"INTJ","rankedTalents":[{"id":33,"rank":1},{"id":4,"rank":2}]}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var result struct {
		Mode         string `json:"mode"`
		SynergyScore int    `json:"synergyScore"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if result.Mode != "full" || result.SynergyScore == 0 {
		t.Fatalf("unexpected result %+v", result)
	}
}

func TestRouterProfitability(t *testing.T) {
	router := NewRouter(config.Config{})

	rec := doRequest(t, router, http.MethodPost, "/api/v1/profitability",
		`{"roles":[{"role":"Engineer","headcount":1,"billRate":150,"costRate":80,"hours":100,"utilization":1}]}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestRouterMetricsEndpoint(t *testing.T) {
	router := NewRouter(config.Config{})

	rec := doRequest(t, router, http.MethodGet, "/metrics", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "analysis_runs_total") {
		t.Fatalf("expected analysis counter in metrics output, got %q", rec.Body.String())
	}
}

func TestAddr(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"", ":8080"},
		{"9000", ":9000"},
		{":7000", ":7000"},
	}
	for _, tc := range cases {
		if got := Addr(tc.in); got != tc.want {
			t.Fatalf("Addr(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
