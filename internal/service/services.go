package service

import (
	"math/rand/v2"

	"github.com/manar-nas/trivia-api/internal/repository"
)

// Services groups every service so handlers receive a single value.
type Services struct {
	Category *CategoryService
	Question *QuestionService
	Quiz     *QuizService
}

// NewServices wires the services to the PostgreSQL repositories.
func NewServices(repos *repository.Repositories) *Services {
	return NewServicesWithStores(repos.Question, repos.Category, rand.IntN)
}

// NewServicesWithStores wires the services to arbitrary stores and a
// random picker.
func NewServicesWithStores(questions QuestionStore, categories CategoryStore, pick Picker) *Services {
	return &Services{
		Category: NewCategoryService(categories),
		Question: NewQuestionService(questions, categories),
		Quiz:     NewQuizService(questions, pick),
	}
}
