// Package service holds the trivia operations behind the HTTP handlers.
//
// Services talk to persistence through the QuestionStore and
// CategoryStore interfaces and return *errs.HTTPError for every failure,
// carrying the underlying error as the cause for logging.
package service

import (
	"context"

	"github.com/manar-nas/trivia-api/internal/model"
)

// QuestionStore is the persistence contract for questions.
type QuestionStore interface {
	// Find returns up to limit matching questions in ascending id order
	// after skipping offset matches.
	Find(ctx context.Context, filter model.QuestionFilter, offset, limit int) ([]model.Question, error)
	Count(ctx context.Context, filter model.QuestionFilter) (int64, error)
	// GetByID returns repository.ErrNotFound for a missing id.
	GetByID(ctx context.Context, id int) (*model.Question, error)
	Create(ctx context.Context, q model.Question) (*model.Question, error)
	Delete(ctx context.Context, id int) error
}

// CategoryStore is the persistence contract for categories.
type CategoryStore interface {
	// All returns every category in ascending id order.
	All(ctx context.Context) ([]model.Category, error)
	GetByID(ctx context.Context, id int) (*model.Category, error)
}
