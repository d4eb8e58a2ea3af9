// Package server defines the core Server struct that composes the app's main dependencies.
//
// It owns the lifecycle of:
//   - configuration
//   - logger + optional New Relic service wrapper
//   - database pool
//   - http.Server
//
// It provides constructors and start/shutdown logic to run the application cleanly.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/manar-nas/trivia-api/internal/config"
	"github.com/manar-nas/trivia-api/internal/database"
	loggerPkg "github.com/manar-nas/trivia-api/internal/logger"
	"github.com/rs/zerolog"
)

// Server is the application container that holds shared resources.
//
// It is not the HTTP server itself; the internal *http.Server is configured
// by SetupHTTPServer and run by Start.
type Server struct {
	Config *config.Config

	Logger *zerolog.Logger

	// LoggerService optionally holds the New Relic application instance.
	LoggerService *loggerPkg.LoggerService

	DB *database.Database

	httpServer *http.Server
}

// New constructs a Server and connects to PostgreSQL.
//
// It does NOT start the HTTP server. That is done in SetupHTTPServer + Start.
func New(cfg *config.Config, logger *zerolog.Logger, loggerService *loggerPkg.LoggerService) (*Server, error) {
	db, err := database.New(cfg, logger, loggerService)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	return NewWithDatabase(cfg, logger, loggerService, db), nil
}

// NewWithDatabase builds a Server around an already opened database.
// db may be nil in tests that never reach persistence.
func NewWithDatabase(cfg *config.Config, logger *zerolog.Logger, loggerService *loggerPkg.LoggerService, db *database.Database) *Server {
	return &Server{
		Config:        cfg,
		Logger:        logger,
		LoggerService: loggerService,
		DB:            db,
	}
}

// SetupHTTPServer configures the internal net/http server around handler.
func (s *Server) SetupHTTPServer(handler http.Handler) {
	s.httpServer = &http.Server{
		Addr:    ":" + s.Config.Server.Port,
		Handler: handler,

		// Config stores whole seconds.
		ReadTimeout:  time.Duration(s.Config.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(s.Config.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(s.Config.Server.IdleTimeout) * time.Second,
	}
}

// Start runs the HTTP server and blocks until it stops.
//
// http.ErrServerClosed is returned after a Shutdown; callers treat it as a
// clean exit.
func (s *Server) Start() error {
	if s.httpServer == nil {
		return errors.New("HTTP server not initialized")
	}

	s.Logger.Info().
		Str("port", s.Config.Server.Port).
		Str("env", s.Config.Primary.Env).
		Msg("starting server")

	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully shuts down the server and its dependencies.
//
// In-flight requests are allowed to finish until ctx expires, then the
// database pool is closed and New Relic is flushed.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer != nil {
		if err := s.httpServer.Shutdown(ctx); err != nil {
			return fmt.Errorf("failed to shutdown HTTP server: %w", err)
		}
	}

	if s.DB != nil {
		if err := s.DB.Close(); err != nil {
			return fmt.Errorf("failed to close database connection: %w", err)
		}
	}

	s.LoggerService.Shutdown()

	return nil
}
