// Package server exposes the generation, validation, persistence, and auth
// operations over HTTP.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"ideaforge/internal/auth"
	"ideaforge/internal/config"
	"ideaforge/internal/ideas"
	"ideaforge/internal/logger"
	"ideaforge/internal/persistence"
)

// maxRequestBody caps JSON request bodies. The largest legitimate payload is
// a save request carrying a full validation snapshot, well under a megabyte.
const maxRequestBody = 1 << 20

// Server represents the HTTP server.
type Server struct {
	router     *chi.Mux
	httpServer *http.Server
	ideas      *ideas.Service
	gateway    *persistence.Gateway
	db         persistence.Database
	verifier   *auth.Verifier
	sessions   *auth.Sessions
	config     config.Server
	log        *slog.Logger
}

// Deps bundles the collaborators the server routes to. Gateway and DB may be
// nil when no database is configured; saved-idea routes then report the store
// as unavailable.
type Deps struct {
	Ideas    *ideas.Service
	Gateway  *persistence.Gateway
	DB       persistence.Database
	Verifier *auth.Verifier
	Sessions *auth.Sessions
}

// New creates a new HTTP server instance.
func New(deps Deps, cfg config.Server) *Server {
	s := &Server{
		router:   chi.NewRouter(),
		ideas:    deps.Ideas,
		gateway:  deps.Gateway,
		db:       deps.DB,
		verifier: deps.Verifier,
		sessions: deps.Sessions,
		config:   cfg,
		log:      logger.Get(),
	}

	s.setupMiddleware()
	s.setupRoutes()

	addr := fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)
	s.httpServer = &http.Server{
		Addr:         addr,
		Handler:      s.router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	return s
}

func (s *Server) setupMiddleware() {
	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.RealIP)
	s.router.Use(middleware.Logger)
	s.router.Use(middleware.Recoverer)
	s.router.Use(middleware.Timeout(60 * time.Second))
	s.router.Use(middleware.RequestSize(maxRequestBody))

	if s.config.CORS.Enabled {
		s.router.Use(cors.Handler(cors.Options{
			AllowedOrigins:   s.config.CORS.AllowedOrigins,
			AllowedMethods:   []string{"GET", "POST", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
			AllowCredentials: false,
			MaxAge:           300,
		}))
	}

	if s.config.RateLimit.Enabled {
		limit := s.config.RateLimit.Limit
		if limit <= 0 {
			limit = 100
		}
		s.router.Use(middleware.Throttle(limit))
	}
}

func (s *Server) setupRoutes() {
	s.router.Get("/health", s.handleHealth)
	s.router.Get("/api/status", s.handleStatus)

	s.router.Route("/api", func(r chi.Router) {
		r.Route("/ideas", func(r chi.Router) {
			r.Post("/generate", s.handleGenerateIdeas)
			r.Post("/validate", s.handleValidateIdea)
			r.Post("/", s.handleSaveIdea)
			r.Get("/", s.handleListSavedIdeas)
			r.Delete("/{ideaID}", s.handleDeleteSavedIdea)
		})

		r.Post("/insights", s.handleInsight)

		r.Route("/auth", func(r chi.Router) {
			r.Post("/google", s.handleGoogleSignIn)
			r.Post("/signout", s.handleSignOut)
		})
	})
}

// Start starts the HTTP server.
func (s *Server) Start() error {
	s.log.Info("Starting HTTP server",
		"addr", s.httpServer.Addr,
		"read_timeout", s.config.ReadTimeout,
		"write_timeout", s.config.WriteTimeout,
	)

	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("server failed to start: %w", err)
	}
	return nil
}

// Shutdown gracefully shuts down the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.log.Info("Shutting down HTTP server gracefully...")

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	s.log.Info("HTTP server stopped")
	return nil
}

// Router returns the chi router instance (useful for testing).
func (s *Server) Router() *chi.Mux {
	return s.router
}
