package server

import (
	"bytes"
	"context"
	"encoding/json"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"ideaforge/internal/auth"
	"ideaforge/internal/config"
	"ideaforge/internal/core"
	"ideaforge/internal/ideas"
	"ideaforge/internal/llm"
	"ideaforge/internal/logger"
	"ideaforge/internal/persistence"
	"ideaforge/internal/synth"
	"ideaforge/internal/trends"
)

type failingGenerator struct{}

func (failingGenerator) GenerateIdeas(ctx context.Context, profile core.Profile) ([]core.Idea, error) {
	return nil, &llm.UpstreamError{Status: 500, Message: "internal"}
}

func (failingGenerator) GenerateInsight(ctx context.Context, idea core.Idea, insightType core.InsightType) (*llm.Insight, error) {
	return nil, &llm.UpstreamError{Status: 500, Message: "internal"}
}

// memoryRepo backs the gateway in tests.
type memoryRepo struct {
	rows map[string]core.SavedIdea
}

func (m *memoryRepo) Save(ctx context.Context, idea *core.SavedIdea) error {
	m.rows[idea.UserID+"/"+idea.ID] = *idea
	return nil
}

func (m *memoryRepo) ListByUser(ctx context.Context, userID string) ([]core.SavedIdea, error) {
	out := []core.SavedIdea{}
	for _, row := range m.rows {
		if row.UserID == userID {
			out = append(out, row)
		}
	}
	return out, nil
}

func (m *memoryRepo) Delete(ctx context.Context, userID, ideaID string) error {
	delete(m.rows, userID+"/"+ideaID)
	return nil
}

func newTestServer(gen ideas.Generator) *Server {
	logger.Init()
	svc := ideas.NewService(gen, synth.New(rand.NewSource(1)), trends.New(rand.NewSource(1)))
	repo := &memoryRepo{rows: make(map[string]core.SavedIdea)}
	return New(Deps{
		Ideas:    svc,
		Gateway:  persistence.NewGateway(repo),
		Verifier: auth.NewVerifier("client-123"),
		Sessions: auth.NewSessions(),
	}, config.Server{Host: "127.0.0.1", Port: 0})
}

func postJSON(t *testing.T, s *Server, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	if err != nil {
		t.Fatal(err)
	}
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, req)
	return rec
}

func TestHealthWithoutDatabase(t *testing.T) {
	s := newTestServer(nil)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var resp HealthResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.Status != "ok" {
		t.Errorf("status = %q", resp.Status)
	}
	if resp.Checks["database"] != "not configured" {
		t.Errorf("database check = %q", resp.Checks["database"])
	}
}

func TestStatusReportsFallbackGenerator(t *testing.T) {
	s := newTestServer(nil)

	req := httptest.NewRequest(http.MethodGet, "/api/status", nil)
	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, req)

	var resp StatusResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.Generator != "fallback" {
		t.Errorf("generator = %q, want fallback", resp.Generator)
	}
}

func TestGenerateFallsBackOnUpstreamError(t *testing.T) {
	s := newTestServer(failingGenerator{})

	rec := postJSON(t, s, "/api/ideas/generate", map[string]any{
		"profile": core.Profile{
			Skills:    []string{"Backend Development"},
			Interests: []string{"Healthcare"},
		},
	})

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (fallback must not surface as fatal)", rec.Code)
	}
	var result ideas.GenerationResult
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatal(err)
	}
	if !result.Fallback || len(result.Ideas) == 0 {
		t.Errorf("expected a non-empty fallback batch, got %+v", result)
	}
}

func TestValidateReturnsFullBundle(t *testing.T) {
	s := newTestServer(nil)

	rec := postJSON(t, s, "/api/ideas/validate", map[string]any{
		"idea": core.Idea{
			ID:                 "i1",
			Title:              "Clinic Scheduler",
			Tags:               []string{"Healthcare"},
			ValidationKeywords: []string{"clinic scheduling"},
		},
	})

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	var result ideas.ValidationResult
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatal(err)
	}
	if len(result.Keywords) == 0 {
		t.Error("expected keyword trends")
	}
	if result.TargetAudience == nil || result.Monetization == nil {
		t.Error("expected audience and monetization insights (fallback path)")
	}
	if !result.AudienceFallback || !result.MonetizationFallback {
		t.Errorf("synthesized insights must be tagged as fallback: %+v", result)
	}
}

func TestValidateRequiresIdea(t *testing.T) {
	s := newTestServer(nil)
	rec := postJSON(t, s, "/api/ideas/validate", map[string]any{})
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestInsightRoadmapFallsBack(t *testing.T) {
	s := newTestServer(failingGenerator{})

	rec := postJSON(t, s, "/api/insights", map[string]any{
		"idea":        core.Idea{Title: "Clinic Scheduler"},
		"insightType": core.InsightRoadmap,
	})

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	var result ideas.InsightResult
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatal(err)
	}
	if !result.Fallback || result.Insight == nil || result.Insight.Roadmap == nil {
		t.Errorf("expected a synthesized roadmap, got %+v", result)
	}
}

func TestInsightCompetitorAnalysisSurfacesFailure(t *testing.T) {
	s := newTestServer(failingGenerator{})

	rec := postJSON(t, s, "/api/insights", map[string]any{
		"idea":        core.Idea{Title: "Clinic Scheduler"},
		"insightType": core.InsightCompetitorAnalysis,
	})

	if rec.Code != http.StatusBadGateway {
		t.Errorf("status = %d, want 502", rec.Code)
	}
}

func TestSaveListDeleteRoundTrip(t *testing.T) {
	s := newTestServer(nil)
	idea := core.Idea{ID: "i1", Title: "Clinic Scheduler"}

	rec := postJSON(t, s, "/api/ideas", map[string]any{"idea": idea, "userId": "u1"})
	if rec.Code != http.StatusOK {
		t.Fatalf("save status = %d, body %s", rec.Code, rec.Body.String())
	}

	req := httptest.NewRequest(http.MethodGet, "/api/ideas?userId=u1", nil)
	list := httptest.NewRecorder()
	s.Router().ServeHTTP(list, req)
	var listed []core.SavedIdea
	if err := json.Unmarshal(list.Body.Bytes(), &listed); err != nil {
		t.Fatal(err)
	}
	if len(listed) != 1 || listed[0].ID != "i1" {
		t.Fatalf("unexpected list: %v", listed)
	}

	req = httptest.NewRequest(http.MethodDelete, "/api/ideas/i1?userId=u1", nil)
	del := httptest.NewRecorder()
	s.Router().ServeHTTP(del, req)
	if del.Code != http.StatusOK {
		t.Fatalf("delete status = %d", del.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/ideas?userId=u1", nil)
	list = httptest.NewRecorder()
	s.Router().ServeHTTP(list, req)
	listed = nil
	if err := json.Unmarshal(list.Body.Bytes(), &listed); err != nil {
		t.Fatal(err)
	}
	if len(listed) != 0 {
		t.Errorf("expected empty list after delete, got %v", listed)
	}
}

func TestSaveRejectsOversizedBody(t *testing.T) {
	s := newTestServer(nil)

	idea := core.Idea{ID: "i1", Title: "T", Description: strings.Repeat("x", 2<<20)}
	rec := postJSON(t, s, "/api/ideas", map[string]any{"idea": idea, "userId": "u1"})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400 for a body over the request size cap", rec.Code)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/ideas?userId=u1", nil)
	list := httptest.NewRecorder()
	s.Router().ServeHTTP(list, req)
	var listed []core.SavedIdea
	if err := json.Unmarshal(list.Body.Bytes(), &listed); err != nil {
		t.Fatal(err)
	}
	if len(listed) != 0 {
		t.Errorf("oversized save must not persist anything, got %v", listed)
	}
}

func TestSaveRejectsMissingUser(t *testing.T) {
	s := newTestServer(nil)
	rec := postJSON(t, s, "/api/ideas", map[string]any{
		"idea": core.Idea{ID: "i1", Title: "T"},
	})
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestGoogleSignInRejectsGarbage(t *testing.T) {
	s := newTestServer(nil)
	rec := postJSON(t, s, "/api/auth/google", map[string]any{"credential": "not-a-jwt"})
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
}

func TestGoogleSignInRequiresCredential(t *testing.T) {
	s := newTestServer(nil)
	rec := postJSON(t, s, "/api/auth/google", map[string]any{})
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}
