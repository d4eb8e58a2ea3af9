package repository

import (
	"github.com/manar-nas/trivia-api/internal/model"
	"github.com/manar-nas/trivia-api/internal/server"
)

// Repositories groups every repository so wiring passes one value around.
type Repositories struct {
	Question *QuestionRepository
	Category *CategoryRepository
}

// NewRepositories registers the models and builds repositories over the
// server's database.
func NewRepositories(s *server.Server) (*Repositories, error) {
	if err := model.RegisterAll(); err != nil {
		return nil, err
	}

	return &Repositories{
		Question: NewQuestionRepository(s.DB.ORM),
		Category: NewCategoryRepository(s.DB.ORM),
	}, nil
}
