package middleware

import (
	"github.com/manar-nas/trivia-api/internal/server"
)

// Middlewares groups every middleware component used by the HTTP server so
// they are built once and reused during router setup.
type Middlewares struct {
	// Global holds CORS, request logging, recovery, secure headers and the
	// global error handler.
	Global *GlobalMiddlewares

	// ContextEnhancer attaches a request-scoped logger to every request.
	ContextEnhancer *ContextEnhancer

	// Tracing wires New Relic transactions and custom attributes. Without a
	// New Relic application it degrades to no-ops.
	Tracing *TracingMiddleware
}

func NewMiddlewares(s *server.Server) *Middlewares {
	return &Middlewares{
		Global:          NewGlobalMiddlewares(s),
		ContextEnhancer: NewContextEnhancer(s),
		Tracing:         NewTracingMiddleware(s, s.LoggerService.GetApplication()),
	}
}
