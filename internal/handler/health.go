package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/manar-nas/trivia-api/internal/middleware"
)

var errNoDatabase = errors.New("database not configured")

// HealthHandler lets load balancers and uptime monitors check that the
// process is up and PostgreSQL is reachable.
type HealthHandler struct {
	Handler
}

type healthCheck struct {
	Status       string `json:"status"`
	ResponseTime string `json:"response_time"`
	Error        string `json:"error,omitempty"`
}

type healthResponse struct {
	Status      string                 `json:"status"`
	Timestamp   time.Time              `json:"timestamp"`
	Environment string                 `json:"environment"`
	Checks      map[string]healthCheck `json:"checks"`
}

// CheckHealth returns 200 when every check passes and 503 otherwise.
func (h *HealthHandler) CheckHealth(c echo.Context) error {
	start := time.Now()

	logger := middleware.GetLogger(c).With().
		Str("operation", "health_check").
		Logger()

	response := healthResponse{
		Status:      "healthy",
		Timestamp:   time.Now().UTC(),
		Environment: h.server.Config.Primary.Env,
		Checks:      make(map[string]healthCheck),
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.server.Config.Observability.HealthChecks.Timeout)
	defer cancel()

	dbStart := time.Now()

	err := errNoDatabase
	if h.server.DB != nil {
		err = h.server.DB.Ping(ctx)
	}

	if err != nil {
		response.Checks["database"] = healthCheck{
			Status:       "unhealthy",
			ResponseTime: time.Since(dbStart).String(),
			Error:        err.Error(),
		}

		logger.Error().
			Err(err).
			Dur("response_time", time.Since(dbStart)).
			Msg("database health check failed")

		h.recordHealthEvent(map[string]interface{}{
			"check_type":       "database",
			"operation":        "health_check",
			"error_type":       "database_unhealthy",
			"response_time_ms": time.Since(dbStart).Milliseconds(),
			"error_message":    err.Error(),
		})

		response.Status = "unhealthy"

		logger.Warn().
			Dur("total_duration", time.Since(start)).
			Msg("health check failed")

		return c.JSON(http.StatusServiceUnavailable, response)
	}

	response.Checks["database"] = healthCheck{
		Status:       "healthy",
		ResponseTime: time.Since(dbStart).String(),
	}

	logger.Debug().
		Dur("total_duration", time.Since(start)).
		Msg("health check passed")

	if err := c.JSON(http.StatusOK, response); err != nil {
		return fmt.Errorf("failed to write JSON response: %w", err)
	}

	return nil
}

// recordHealthEvent sends a HealthCheckError custom event when New Relic is
// enabled.
func (h *HealthHandler) recordHealthEvent(params map[string]interface{}) {
	if app := h.server.LoggerService.GetApplication(); app != nil {
		app.RecordCustomEvent("HealthCheckError", params)
	}
}
