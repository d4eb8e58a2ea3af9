package repository

import (
	"context"

	"github.com/manar-nas/trivia-api/internal/model"
	"github.com/marshallshelly/pebble-orm/pkg/builder"
)

type CategoryRepository struct {
	db *builder.DB
}

func NewCategoryRepository(db *builder.DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

func (r *CategoryRepository) allQuery() *builder.SelectQuery[model.Category] {
	return builder.Select[model.Category](r.db).
		OrderByAsc(builder.Col[model.Category]("ID"))
}

// All returns every category in ascending id order.
func (r *CategoryRepository) All(ctx context.Context) ([]model.Category, error) {
	categories, err := r.allQuery().All(ctx)
	if err != nil {
		return nil, wrap(err, "list categories")
	}
	return categories, nil
}

// GetByID returns the category with id, or ErrNotFound.
func (r *CategoryRepository) GetByID(ctx context.Context, id int) (*model.Category, error) {
	categories, err := builder.Select[model.Category](r.db).
		Where(builder.Eq(builder.Col[model.Category]("ID"), id)).
		Limit(1).
		All(ctx)
	if err != nil {
		return nil, wrap(err, "get category")
	}
	if len(categories) == 0 {
		return nil, ErrNotFound
	}
	return &categories[0], nil
}
