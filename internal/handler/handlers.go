package handler

import (
	"github.com/manar-nas/trivia-api/internal/server"
	"github.com/manar-nas/trivia-api/internal/service"
)

// Handlers groups all HTTP handlers so the router receives one value.
type Handlers struct {
	Category *CategoryHandler
	Question *QuestionHandler
	Quiz     *QuizHandler
	Health   *HealthHandler
	OpenAPI  *OpenAPIHandler
}

func NewHandlers(s *server.Server, services *service.Services) *Handlers {
	base := NewHandler(s, services)

	return &Handlers{
		Category: &CategoryHandler{Handler: base},
		Question: &QuestionHandler{Handler: base},
		Quiz:     &QuizHandler{Handler: base},
		Health:   &HealthHandler{Handler: base},
		OpenAPI:  &OpenAPIHandler{Handler: base},
	}
}
