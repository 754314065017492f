package people

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"teamlens-backend/internal/analysis"
	"teamlens-backend/internal/talents"
)

func newTestRouter() (*gin.Engine, *Service) {
	gin.SetMode(gin.TestMode)
	svc := newTestService()
	router := gin.New()
	NewHandler(svc).RegisterRoutes(router.Group("/api/v1"))
	return router, svc
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestCreateAndAnalyzePerson(t *testing.T) {
	router, _ := newTestRouter()

	rec := doJSON(t, router, http.MethodPost, "/api/v1/people", PersonInput{
		Name:            "Dana Reyes",
		PersonalityType: "INTJ",
		RankedTalents:   []talents.Ranked{{ID: 33, Rank: 1}, {ID: 4, Rank: 2}},
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("create: expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	var created Person
	if err := json.Unmarshal(rec.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode create response: %v", err)
	}

	rec = doJSON(t, router, http.MethodPost, "/api/v1/people/"+created.ID+"/analysis", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("analyze: expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var result analysis.Result
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("decode analysis: %v", err)
	}
	if result.Mode != analysis.ModeFull || result.SchemaVersion != analysis.SchemaVersion {
		t.Fatalf("unexpected analysis %+v", result)
	}
}

func TestAnalyzeUnknownPersonReturns404(t *testing.T) {
	router, _ := newTestRouter()

	rec := doJSON(t, router, http.MethodPost, "/api/v1/people/does-not-exist/analysis", nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestAdHocAnalysisWithoutInputsReturns422(t *testing.T) {
	router, _ := newTestRouter()

	rec := doJSON(t, router, http.MethodPost, "/api/v1/analysis", analysis.Person{})
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestAdHocAnalysisPersonalityOnly(t *testing.T) {
	router, _ := newTestRouter()

	rec := doJSON(t, router, http.MethodPost, "/api/v1/analysis", analysis.Person{PersonalityType: "ENFP"})
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var result analysis.Result
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if result.Mode != analysis.ModePersonalityOnly {
		t.Fatalf("expected personality-only mode, got %q", result.Mode)
	}
}

func TestCreateRejectsInvalidBody(t *testing.T) {
	router, _ := newTestRouter()

	rec := doJSON(t, router, http.MethodPost, "/api/v1/people", PersonInput{
		Name:          "Bad Talents",
		RankedTalents: []talents.Ranked{{ID: 99, Rank: 1}},
	})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestImportCSVEndpoint(t *testing.T) {
	router, _ := newTestRouter()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("file", "people.csv")
	if err != nil {
		t.Fatalf("CreateFormFile: %v", err)
	}
	_, _ = part.Write([]byte("name,personality_type,talents\nDana,INTJ,33;4\n,ENFP,1\n"))
	_ = writer.Close()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/import/people/csv", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var body struct {
		Imported int        `json:"imported"`
		Errors   []RowError `json:"errors"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Imported != 1 || len(body.Errors) != 1 {
		t.Fatalf("expected 1 imported and 1 error, got %+v", body)
	}
}

func TestExportCSVEndpoint(t *testing.T) {
	router, svc := newTestRouter()
	if _, err := svc.Create(context.Background(), PersonInput{
		Name:            "Dana",
		PersonalityType: "INTJ",
		RankedTalents:   []talents.Ranked{{ID: 33, Rank: 1}},
	}); err != nil {
		t.Fatalf("Create: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/export/people.csv", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if got := rec.Header().Get("Content-Type"); !strings.HasPrefix(got, "text/csv") {
		t.Fatalf("expected text/csv content type, got %q", got)
	}
	if !strings.Contains(rec.Body.String(), "Dana,INTJ,33") {
		t.Fatalf("expected exported row, got %q", rec.Body.String())
	}
}
