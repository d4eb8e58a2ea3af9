package router

import (
	"github.com/labstack/echo/v4"
	"github.com/manar-nas/trivia-api/internal/handler"
	"github.com/manar-nas/trivia-api/internal/server"
	"github.com/manar-nas/trivia-api/static"
)

// registerSystemRoutes registers the endpoints that are not part of the
// trivia API: health status and the OpenAPI docs.
func registerSystemRoutes(r *echo.Echo, s *server.Server, h *handler.Handlers) {
	if s.Config.Observability.HealthChecks.Enabled {
		r.GET("/status", h.Health.CheckHealth)
	}

	r.StaticFS("/static", static.FS)
	r.GET("/docs", h.OpenAPI.ServeOpenAPIUI)
}
