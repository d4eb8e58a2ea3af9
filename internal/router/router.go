// Package router initializes the HTTP router (using Echo).
//
// It registers the middlewares and maps the API paths to their handlers.
package router

import (
	"github.com/labstack/echo/v4"
	"github.com/manar-nas/trivia-api/internal/handler"
	"github.com/manar-nas/trivia-api/internal/middleware"
	"github.com/manar-nas/trivia-api/internal/server"
)

// NewRouter builds the echo instance with the global middleware stack, the
// error handler, the trivia routes and the system routes.
func NewRouter(s *server.Server, h *handler.Handlers) *echo.Echo {
	middlewares := middleware.NewMiddlewares(s)

	router := echo.New()
	router.HideBanner = true
	router.HidePort = true

	router.HTTPErrorHandler = middlewares.Global.GlobalErrorHandler

	// Order matters: the request logger reads the logger set by the context
	// enhancer, which reads the request id and the New Relic transaction.
	router.Use(
		middlewares.Global.CORS(),
		middlewares.Global.Secure(),
		middleware.RequestID(),
		middlewares.Tracing.NewRelicMiddleware(),
		middlewares.Tracing.EnhanceTracing(),
		middlewares.ContextEnhancer.EnhanceContext(),
		middlewares.Global.RequestLogger(),
		middlewares.Global.Recover(),
	)

	registerSystemRoutes(router, s, h)
	registerTriviaRoutes(router, h)

	return router
}

func registerTriviaRoutes(r *echo.Echo, h *handler.Handlers) {
	r.GET("/categories", h.Category.ListCategories())
	r.GET("/categories/:id/questions", h.Category.ListQuestions())

	questions := r.Group("/questions")
	questions.GET("", h.Question.ListQuestions())
	questions.POST("", h.Question.CreateOrSearch())
	questions.DELETE("/:id", h.Question.DeleteQuestion())

	r.POST("/quizzes", h.Quiz.NextQuestion())
}
