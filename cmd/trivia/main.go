package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/manar-nas/trivia-api/internal/config"
	"github.com/manar-nas/trivia-api/internal/handler"
	"github.com/manar-nas/trivia-api/internal/logger"
	"github.com/manar-nas/trivia-api/internal/repository"
	"github.com/manar-nas/trivia-api/internal/router"
	"github.com/manar-nas/trivia-api/internal/server"
	"github.com/manar-nas/trivia-api/internal/service"
)

const shutdownTimeout = 30 * time.Second

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	// Server.Shutdown stops the New Relic agent.
	loggerService, nrErr := logger.NewLoggerService(cfg.Observability)

	log := logger.NewLoggerWithService(cfg.Observability, loggerService)
	if nrErr != nil {
		log.Warn().Err(nrErr).Msg("continuing without New Relic")
	}

	srv, err := server.New(cfg, &log, loggerService)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize server")
	}

	repos, err := repository.NewRepositories(srv)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize repositories")
	}

	services := service.NewServices(repos)
	handlers := handler.NewHandlers(srv, services)

	srv.SetupHTTPServer(router.NewRouter(srv, handlers))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	serverErr := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case err := <-serverErr:
		if err != nil {
			log.Error().Err(err).Msg("server stopped")
		}
	case <-ctx.Done():
		log.Info().Msg("shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server forced to shutdown")
		return
	}

	log.Info().Msg("server exited properly")
}
