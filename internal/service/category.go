package service

import (
	"context"

	"github.com/manar-nas/trivia-api/internal/errs"
	"github.com/manar-nas/trivia-api/internal/model"
)

type CategoryService struct {
	categories CategoryStore
}

func NewCategoryService(categories CategoryStore) *CategoryService {
	return &CategoryService{categories: categories}
}

// Map returns category labels keyed by 1-based position in id order.
func (s *CategoryService) Map(ctx context.Context) (map[string]string, error) {
	categories, err := s.categories.All(ctx)
	if err != nil {
		return nil, errs.NewInternalServerError(err)
	}
	return model.CategoryMap(categories), nil
}
