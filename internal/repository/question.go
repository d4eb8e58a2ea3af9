package repository

import (
	"context"
	"strings"

	"github.com/manar-nas/trivia-api/internal/model"
	"github.com/marshallshelly/pebble-orm/pkg/builder"
)

type QuestionRepository struct {
	db *builder.DB
}

func NewQuestionRepository(db *builder.DB) *QuestionRepository {
	return &QuestionRepository{db: db}
}

// likeEscaper makes LIKE metacharacters in user input match literally.
// PostgreSQL's default LIKE escape character is the backslash.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// ContainsPattern returns the ILIKE pattern matching term as a substring.
func ContainsPattern(term string) string {
	return "%" + likeEscaper.Replace(term) + "%"
}

func questionConditions(filter model.QuestionFilter) []builder.Condition {
	var conds []builder.Condition

	if filter.SearchTerm != "" {
		conds = append(conds, builder.ILike(builder.Col[model.Question]("Question"), ContainsPattern(filter.SearchTerm)))
	}

	if filter.CategoryID != 0 {
		conds = append(conds, builder.Eq(builder.Col[model.Question]("Category"), filter.CategoryID))
	}

	// NOT IN () is invalid SQL, so the condition is only added for a non-empty list.
	if len(filter.ExcludeIDs) > 0 {
		ids := make([]any, len(filter.ExcludeIDs))
		for i, id := range filter.ExcludeIDs {
			ids[i] = id
		}
		conds = append(conds, builder.NotIn(builder.Col[model.Question]("ID"), ids...))
	}

	return conds
}

func (r *QuestionRepository) filtered(filter model.QuestionFilter) *builder.SelectQuery[model.Question] {
	q := builder.Select[model.Question](r.db)
	for _, cond := range questionConditions(filter) {
		q = q.Where(cond)
	}
	return q
}

func (r *QuestionRepository) findQuery(filter model.QuestionFilter, offset, limit int) *builder.SelectQuery[model.Question] {
	return r.filtered(filter).
		OrderByAsc(builder.Col[model.Question]("ID")).
		Limit(limit).
		Offset(offset)
}

// Find returns up to limit questions matching filter in ascending id order,
// skipping the first offset matches.
func (r *QuestionRepository) Find(ctx context.Context, filter model.QuestionFilter, offset, limit int) ([]model.Question, error) {
	questions, err := r.findQuery(filter, offset, limit).All(ctx)
	if err != nil {
		return nil, wrap(err, "find questions")
	}
	return questions, nil
}

// Count returns the number of questions matching filter.
func (r *QuestionRepository) Count(ctx context.Context, filter model.QuestionFilter) (int64, error) {
	count, err := r.filtered(filter).Count(ctx)
	if err != nil {
		return 0, wrap(err, "count questions")
	}
	return count, nil
}

func (r *QuestionRepository) getByIDQuery(id int) *builder.SelectQuery[model.Question] {
	return builder.Select[model.Question](r.db).
		Where(builder.Eq(builder.Col[model.Question]("ID"), id)).
		Limit(1)
}

// GetByID returns the question with id, or ErrNotFound.
func (r *QuestionRepository) GetByID(ctx context.Context, id int) (*model.Question, error) {
	questions, err := r.getByIDQuery(id).All(ctx)
	if err != nil {
		return nil, wrap(err, "get question")
	}
	if len(questions) == 0 {
		return nil, ErrNotFound
	}
	return &questions[0], nil
}

// Create inserts q and returns the stored row with its assigned id.
func (r *QuestionRepository) Create(ctx context.Context, q model.Question) (*model.Question, error) {
	rows, err := builder.Insert[model.Question](r.db).Values(q).ExecReturning(ctx)
	if err != nil {
		return nil, wrap(err, "insert question")
	}
	if len(rows) == 0 {
		return nil, wrap(ErrNotFound, "insert question returned no row")
	}
	return &rows[0], nil
}

func (r *QuestionRepository) deleteQuery(id int) *builder.DeleteQuery[model.Question] {
	return builder.Delete[model.Question](r.db).
		Where(builder.Eq(builder.Col[model.Question]("ID"), id))
}

// Delete removes the question with id. Deleting a missing id returns ErrNotFound.
func (r *QuestionRepository) Delete(ctx context.Context, id int) error {
	affected, err := r.deleteQuery(id).Exec(ctx)
	if err != nil {
		return wrap(err, "delete question")
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}
