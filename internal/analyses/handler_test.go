package analyses

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"detectia-backend/internal/documents"
	"detectia-backend/internal/shared/server/middleware"
)

const guestUserID = "guest:test-guest"

func setupAnalysisRouter(t *testing.T) (*gin.Engine, *MemoryRepo, *documents.MemoryRepo) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	analysisRepo := NewMemoryRepo()
	docRepo := documents.NewMemoryRepo()
	svc := &Service{Repo: analysisRepo}
	handler := NewHandler(svc, docRepo)

	router := gin.New()
	router.Use(middleware.RequestID(), middleware.Auth("dev"))
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)
	return router, analysisRepo, docRepo
}

func addGuestHeader(req *http.Request) {
	req.Header.Set("X-Guest-Id", "test-guest")
}

func postJSON(t *testing.T, router *gin.Engine, path string, payload any) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("marshal payload: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	addGuestHeader(req)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}

func TestCreateAnalysisReturnsResult(t *testing.T) {
	router, analysisRepo, _ := setupAnalysisRouter(t)

	resp := postJSON(t, router, "/api/v1/analyses", map[string]string{
		"text": sampleText,
	})
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", resp.Code, resp.Body.String())
	}

	var created Result
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if created.ID == "" {
		t.Fatalf("expected id in response")
	}
	if created.AnalysisType != TypeQuick {
		t.Fatalf("expected quick type, got %q", created.AnalysisType)
	}

	if _, err := analysisRepo.GetByID(context.Background(), guestUserID, created.ID); err != nil {
		t.Fatalf("analysis not persisted for guest user: %v", err)
	}
}

func TestCreateAnalysisRejectsShortText(t *testing.T) {
	router, _, _ := setupAnalysisRouter(t)

	resp := postJSON(t, router, "/api/v1/analyses", map[string]string{"text": "court"})
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.Code)
	}
}

func TestGetAnalysisNotFound(t *testing.T) {
	router, _, _ := setupAnalysisRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/analyses/missing", nil)
	addGuestHeader(req)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.Code)
	}
}

func TestGetAnalysisHidesOtherUsers(t *testing.T) {
	router, analysisRepo, _ := setupAnalysisRouter(t)

	other := Result{ID: "analysis-1", UserID: "guest:someone-else", Text: sampleText, CreatedAt: time.Now().UTC()}
	if err := analysisRepo.Create(context.Background(), other); err != nil {
		t.Fatalf("seed analysis: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/analyses/analysis-1", nil)
	addGuestHeader(req)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for foreign analysis, got %d", resp.Code)
	}
}

func TestAnalyzeDocumentUsesExtractedText(t *testing.T) {
	router, _, docRepo := setupAnalysisRouter(t)

	doc := documents.Document{
		ID:            "doc-1",
		UserID:        guestUserID,
		Filename:      "dissertation.txt",
		ExtractedText: sampleText,
		CreatedAt:     time.Now().UTC(),
	}
	if err := docRepo.Create(context.Background(), doc); err != nil {
		t.Fatalf("seed document: %v", err)
	}

	resp := postJSON(t, router, "/api/v1/documents/doc-1/analyze?type=advanced", nil)
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", resp.Code, resp.Body.String())
	}

	var created Result
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if created.DocumentID != "doc-1" {
		t.Fatalf("expected documentId doc-1, got %q", created.DocumentID)
	}
	if created.Filename != "dissertation.txt" {
		t.Fatalf("expected filename from document, got %q", created.Filename)
	}
	if created.AnalysisType != TypeAdvanced {
		t.Fatalf("expected advanced type, got %q", created.AnalysisType)
	}
}

func TestAnalyzeDocumentNotFound(t *testing.T) {
	router, _, _ := setupAnalysisRouter(t)

	resp := postJSON(t, router, "/api/v1/documents/missing/analyze", nil)
	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.Code)
	}
}

func TestListAnalysesValidatesLimit(t *testing.T) {
	router, _, _ := setupAnalysisRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/analyses?limit=0", nil)
	addGuestHeader(req)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.Code)
	}
}

func TestListAnalysesOffsetPaginates(t *testing.T) {
	router, analysisRepo, _ := setupAnalysisRouter(t)

	base := time.Now().UTC()
	for i := 0; i < 3; i++ {
		seed := Result{
			ID:        "analysis-" + string(rune('a'+i)),
			UserID:    guestUserID,
			Text:      sampleText,
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}
		if err := analysisRepo.Create(context.Background(), seed); err != nil {
			t.Fatalf("seed analysis: %v", err)
		}
	}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/analyses?limit=2&offset=2", nil)
	addGuestHeader(req)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}

	var page struct {
		Analyses []Result `json:"analyses"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&page); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(page.Analyses) != 1 {
		t.Fatalf("expected 1 result after offset, got %d", len(page.Analyses))
	}
	if page.Analyses[0].ID != "analysis-a" {
		t.Fatalf("expected oldest result on last page, got %q", page.Analyses[0].ID)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/v1/analyses?offset=-1", nil)
	addGuestHeader(req)
	resp = httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for negative offset, got %d", resp.Code)
	}
}
