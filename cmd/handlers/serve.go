package handlers

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"ideaforge/internal/auth"
	"ideaforge/internal/config"
	"ideaforge/internal/logger"
	"ideaforge/internal/persistence"
	"ideaforge/internal/server"
)

// NewServeCmd creates the serve command for starting the HTTP server.
func NewServeCmd() *cobra.Command {
	var (
		port int
		host string
		noDB bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API server",
		Long: `Start the ideaforge API server.

The server provides:
  • Idea generation and validation endpoints
  • Saved-idea persistence (requires PostgreSQL)
  • Google sign-in verification
  • Health check and status endpoints

Examples:
  # Start server on default port 8080
  ideaforge serve

  # Start on custom port
  ideaforge serve --port 3000

  # Start without a database (generation and validation only)
  ideaforge serve --no-db`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), port, host, noDB)
		},
	}

	cmd.Flags().IntVar(&port, "port", 0, "HTTP server port (default from config: 8080)")
	cmd.Flags().StringVar(&host, "host", "", "HTTP server host (default from config: 0.0.0.0)")
	cmd.Flags().BoolVar(&noDB, "no-db", false, "Run without a database; saved-idea routes are disabled")

	return cmd
}

func runServe(ctx context.Context, port int, host string, noDB bool) error {
	log := logger.Get()
	log.Info("Starting HTTP server")

	cfg, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	serverCfg := cfg.Server
	if port != 0 {
		serverCfg.Port = port
	}
	if host != "" {
		serverCfg.Host = host
	}

	ideaSvc, cleanup := newIdeaService(ctx)
	defer cleanup()

	deps := server.Deps{
		Ideas:    ideaSvc,
		Verifier: auth.NewVerifier(cfg.Auth.GoogleClientID),
		Sessions: auth.NewSessions(),
	}

	if !noDB && config.GetDatabaseURL() != "" {
		log.Info("Connecting to database")
		db, err := getDatabase()
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		defer db.Close()

		if err := db.Ping(ctx); err != nil {
			return fmt.Errorf("database ping failed: %w\n\n"+
				"Make sure PostgreSQL is running and the connection string is correct.\n"+
				"Run 'ideaforge migrate up' to initialize the database schema.", err)
		}
		log.Info("Database connection successful")

		deps.DB = db
		deps.Gateway = persistence.NewGateway(db.SavedIdeas())
	} else {
		log.Warn("running without a database, saved-idea routes disabled")
	}

	srv := server.New(deps, serverCfg)

	serverErrors := make(chan error, 1)
	go func() {
		log.Info(fmt.Sprintf("Server listening on http://%s:%d", serverCfg.Host, serverCfg.Port))
		log.Info("Press Ctrl+C to stop")
		serverErrors <- srv.Start()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)

	case sig := <-shutdown:
		log.Info("Server shutdown initiated", "signal", sig.String())

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error("Server shutdown failed, forcing close", "error", err)
			return fmt.Errorf("server shutdown failed: %w", err)
		}

		log.Info("Server stopped successfully")
	}

	return nil
}
