package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"ideaforge/internal/auth"
	"ideaforge/internal/core"
	"ideaforge/internal/llm"
	"ideaforge/internal/persistence"
)

// HealthResponse is the /health payload.
type HealthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}

// StatusResponse is the /api/status payload.
type StatusResponse struct {
	Version   string `json:"version"`
	Uptime    string `json:"uptime"`
	Generator string `json:"generator"` // "gemini" or "fallback"
	Database  bool   `json:"database"`
}

var serverStartTime = time.Now()

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	checks := make(map[string]string)

	if s.db != nil {
		if err := s.db.Ping(r.Context()); err != nil {
			checks["database"] = "error"
			s.respondJSON(w, http.StatusServiceUnavailable, HealthResponse{
				Status: "unhealthy",
				Checks: checks,
			})
			return
		}
		checks["database"] = "ok"
	} else {
		checks["database"] = "not configured"
	}

	s.respondJSON(w, http.StatusOK, HealthResponse{Status: "ok", Checks: checks})
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	generator := "fallback"
	if s.ideas != nil && s.ideas.HasGenerator() {
		generator = "gemini"
	}

	s.respondJSON(w, http.StatusOK, StatusResponse{
		Version:   "v1.0.0",
		Uptime:    time.Since(serverStartTime).String(),
		Generator: generator,
		Database:  s.db != nil,
	})
}

// handleGenerateIdeas handles POST /api/ideas/generate.
func (s *Server) handleGenerateIdeas(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Profile core.Profile `json:"profile"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result := s.ideas.Generate(r.Context(), req.Profile)
	s.respondJSON(w, http.StatusOK, result)
}

// handleValidateIdea handles POST /api/ideas/validate.
func (s *Server) handleValidateIdea(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Idea core.Idea `json:"idea"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Idea.Title == "" {
		s.respondError(w, http.StatusBadRequest, "idea is required")
		return
	}

	data := s.ideas.Validate(r.Context(), req.Idea)
	s.respondJSON(w, http.StatusOK, data)
}

// handleInsight handles POST /api/insights.
func (s *Server) handleInsight(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Idea        core.Idea        `json:"idea"`
		InsightType core.InsightType `json:"insightType"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Idea.Title == "" || req.InsightType == "" {
		s.respondError(w, http.StatusBadRequest, "idea and insight type are required")
		return
	}

	result, err := s.ideas.Insight(r.Context(), req.Idea, req.InsightType)
	if err != nil {
		status := http.StatusBadGateway
		var upstream *llm.UpstreamError
		switch {
		case errors.As(err, &upstream), errors.Is(err, llm.ErrTimeout),
			errors.Is(err, llm.ErrEmptyGeneration), errors.Is(err, llm.ErrMalformedResponse),
			errors.Is(err, llm.ErrMissingAPIKey):
			// model-side failure with no synthesized equivalent
		default:
			status = http.StatusBadRequest
		}
		s.respondError(w, status, err.Error())
		return
	}
	s.respondJSON(w, http.StatusOK, result)
}

// handleSaveIdea handles POST /api/ideas.
func (s *Server) handleSaveIdea(w http.ResponseWriter, r *http.Request) {
	if s.gateway == nil {
		s.respondError(w, http.StatusServiceUnavailable, "saved-idea store is not configured")
		return
	}

	var req struct {
		Idea           core.Idea            `json:"idea"`
		UserID         string               `json:"userId"`
		ValidationData *core.ValidationData `json:"validationData,omitempty"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	saved, err := s.gateway.Save(r.Context(), req.Idea, req.UserID, req.ValidationData)
	if err != nil {
		s.respondStoreError(w, err)
		return
	}
	s.respondJSON(w, http.StatusOK, map[string]any{"savedIdea": saved})
}

// handleListSavedIdeas handles GET /api/ideas?userId=.
func (s *Server) handleListSavedIdeas(w http.ResponseWriter, r *http.Request) {
	if s.gateway == nil {
		s.respondError(w, http.StatusServiceUnavailable, "saved-idea store is not configured")
		return
	}

	listed, err := s.gateway.List(r.Context(), r.URL.Query().Get("userId"))
	if err != nil {
		s.respondStoreError(w, err)
		return
	}
	s.respondJSON(w, http.StatusOK, listed)
}

// handleDeleteSavedIdea handles DELETE /api/ideas/{ideaID}?userId=.
func (s *Server) handleDeleteSavedIdea(w http.ResponseWriter, r *http.Request) {
	if s.gateway == nil {
		s.respondError(w, http.StatusServiceUnavailable, "saved-idea store is not configured")
		return
	}

	ideaID := chi.URLParam(r, "ideaID")
	userID := r.URL.Query().Get("userId")
	if err := s.gateway.Delete(r.Context(), userID, ideaID); err != nil {
		s.respondStoreError(w, err)
		return
	}
	s.respondJSON(w, http.StatusOK, map[string]any{"deleted": ideaID})
}

// handleGoogleSignIn handles POST /api/auth/google.
func (s *Server) handleGoogleSignIn(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Credential string `json:"credential"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Credential == "" {
		s.respondError(w, http.StatusBadRequest, "credential is required")
		return
	}

	user, err := s.verifier.Verify(r.Context(), req.Credential)
	if err != nil {
		if errors.Is(err, auth.ErrNoClientID) {
			s.respondError(w, http.StatusServiceUnavailable, err.Error())
			return
		}
		s.respondError(w, http.StatusUnauthorized, "sign-in failed")
		return
	}

	token := s.sessions.SignIn(user)
	s.respondJSON(w, http.StatusOK, map[string]any{
		"user":         user,
		"sessionToken": token,
	})
}

// handleSignOut handles POST /api/auth/signout.
func (s *Server) handleSignOut(w http.ResponseWriter, r *http.Request) {
	var req struct {
		SessionToken string `json:"sessionToken"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	s.sessions.SignOut(req.SessionToken)
	s.respondJSON(w, http.StatusOK, map[string]any{"signedOut": true})
}

// respondStoreError maps persistence failures onto HTTP statuses: bad input
// is the caller's fault, anything else is the store's.
func (s *Server) respondStoreError(w http.ResponseWriter, err error) {
	var verr *persistence.ValidationError
	if errors.As(err, &verr) {
		s.respondError(w, http.StatusBadRequest, verr.Error())
		return
	}
	s.log.Error("store operation failed", "error", err)
	s.respondError(w, http.StatusInternalServerError, err.Error())
}

// respondJSON writes a JSON response.
func (s *Server) respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.log.Error("Failed to encode JSON response", "error", err)
	}
}

// respondError writes a JSON error payload.
func (s *Server) respondError(w http.ResponseWriter, status int, message string) {
	s.respondJSON(w, status, map[string]string{"error": message})
}
