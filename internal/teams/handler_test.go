package teams

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func postTeamAnalysis(t *testing.T, router *gin.Engine, input Input) *httptest.ResponseRecorder {
	t.Helper()
	data, err := json.Marshal(input)
	if err != nil {
		t.Fatalf("marshal input: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, "/api/v1/teams/analysis", bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestTeamAnalysisEndpoint(t *testing.T) {
	gin.SetMode(gin.TestMode)
	svc, _ := newTestService()
	router := gin.New()
	NewHandler(svc).RegisterRoutes(router.Group("/api/v1"))

	rec := postTeamAnalysis(t, router, Input{
		Name: "Platform",
		Members: []Member{
			{Name: "A", PersonalityType: "INTJ"},
			{Name: "B", PersonalityType: "ENFP"},
		},
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var result Analysis
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if result.AnalyzedCount != 2 || len(result.Pairs) != 1 {
		t.Fatalf("unexpected analysis %+v", result)
	}
}

func TestTeamAnalysisUnknownMember(t *testing.T) {
	gin.SetMode(gin.TestMode)
	svc, _ := newTestService()
	router := gin.New()
	NewHandler(svc).RegisterRoutes(router.Group("/api/v1"))

	rec := postTeamAnalysis(t, router, Input{Name: "T", MemberIDs: []string{"missing"}})
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}
