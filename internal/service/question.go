package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/manar-nas/trivia-api/internal/errs"
	"github.com/manar-nas/trivia-api/internal/model"
	"github.com/manar-nas/trivia-api/internal/repository"
)

// QuestionPage is one page of formatted questions and the total the page
// was taken from.
type QuestionPage struct {
	Questions []model.FormattedQuestion
	Total     int64
}

// DeleteResult describes a deletion and the first page afterwards.
type DeleteResult struct {
	Deleted int
	QuestionPage
}

// CreateResult describes an insert and the first page afterwards.
type CreateResult struct {
	Created int
	QuestionPage
}

// CategoryPage is a page of one category's questions.
type CategoryPage struct {
	QuestionPage
	CurrentCategory string
}

type QuestionService struct {
	questions  QuestionStore
	categories CategoryStore
}

func NewQuestionService(questions QuestionStore, categories CategoryStore) *QuestionService {
	return &QuestionService{questions: questions, categories: categories}
}

// List returns a page of all questions. An empty page is NotFound.
func (s *QuestionService) List(ctx context.Context, page int) (*QuestionPage, error) {
	offset, ok := pageOffset(page)
	if !ok {
		return nil, errs.NewNotFoundError().WithCause(fmt.Errorf("page %d out of range", page))
	}

	questions, err := s.questions.Find(ctx, model.QuestionFilter{}, offset, model.QuestionsPerPage)
	if err != nil {
		return nil, errs.NewInternalServerError(err)
	}
	if len(questions) == 0 {
		return nil, errs.NewNotFoundError().WithCause(fmt.Errorf("page %d is empty", page))
	}

	total, err := s.questions.Count(ctx, model.QuestionFilter{})
	if err != nil {
		return nil, errs.NewInternalServerError(err)
	}

	return &QuestionPage{Questions: model.FormatQuestions(questions), Total: total}, nil
}

// firstPage re-reads page 1 of all questions after a write.
func (s *QuestionService) firstPage(ctx context.Context) (QuestionPage, error) {
	questions, err := s.questions.Find(ctx, model.QuestionFilter{}, 0, model.QuestionsPerPage)
	if err != nil {
		return QuestionPage{}, err
	}

	total, err := s.questions.Count(ctx, model.QuestionFilter{})
	if err != nil {
		return QuestionPage{}, err
	}

	return QuestionPage{Questions: model.FormatQuestions(questions), Total: total}, nil
}

// Delete removes a question. A missing id is NotFound; any other
// persistence failure is Unprocessable.
func (s *QuestionService) Delete(ctx context.Context, id int) (*DeleteResult, error) {
	if _, err := s.questions.GetByID(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, errs.NewNotFoundError().WithCause(fmt.Errorf("question %d: %w", id, err))
		}
		return nil, errs.NewUnprocessableError(err)
	}

	if err := s.questions.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, errs.NewNotFoundError().WithCause(fmt.Errorf("question %d: %w", id, err))
		}
		return nil, errs.NewUnprocessableError(err)
	}

	page, err := s.firstPage(ctx)
	if err != nil {
		return nil, errs.NewUnprocessableError(err)
	}

	return &DeleteResult{Deleted: id, QuestionPage: page}, nil
}

// Create inserts a question. Any failure is Unprocessable.
func (s *QuestionService) Create(ctx context.Context, q model.Question) (*CreateResult, error) {
	created, err := s.questions.Create(ctx, q)
	if err != nil {
		return nil, errs.NewUnprocessableError(err)
	}

	page, err := s.firstPage(ctx)
	if err != nil {
		return nil, errs.NewUnprocessableError(err)
	}

	return &CreateResult{Created: created.ID, QuestionPage: page}, nil
}

// Search returns a page of questions whose text contains term, ignoring
// case. Total is the number of matches. No matches, or a page past the
// end, is an empty page rather than an error.
func (s *QuestionService) Search(ctx context.Context, term string, page int) (*QuestionPage, error) {
	filter := model.QuestionFilter{SearchTerm: term}

	total, err := s.questions.Count(ctx, filter)
	if err != nil {
		return nil, errs.NewUnprocessableError(err)
	}

	result := &QuestionPage{Questions: []model.FormattedQuestion{}, Total: total}

	offset, ok := pageOffset(page)
	if !ok || int64(offset) >= total {
		return result, nil
	}

	questions, err := s.questions.Find(ctx, filter, offset, model.QuestionsPerPage)
	if err != nil {
		return nil, errs.NewUnprocessableError(err)
	}
	result.Questions = model.FormatQuestions(questions)

	return result, nil
}

// ByCategory returns a page of the questions in one category along with
// the category label. Total counts the whole table. An empty page or an
// unknown category is NotFound.
func (s *QuestionService) ByCategory(ctx context.Context, categoryID, page int) (*CategoryPage, error) {
	offset, ok := pageOffset(page)
	if !ok {
		return nil, errs.NewNotFoundError().WithCause(fmt.Errorf("page %d out of range", page))
	}

	questions, err := s.questions.Find(ctx, model.QuestionFilter{CategoryID: categoryID}, offset, model.QuestionsPerPage)
	if err != nil {
		return nil, errs.NewInternalServerError(err)
	}
	if len(questions) == 0 {
		return nil, errs.NewNotFoundError().WithCause(fmt.Errorf("category %d page %d is empty", categoryID, page))
	}

	category, err := s.categories.GetByID(ctx, categoryID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, errs.NewNotFoundError().WithCause(fmt.Errorf("category %d: %w", categoryID, err))
		}
		return nil, errs.NewInternalServerError(err)
	}

	total, err := s.questions.Count(ctx, model.QuestionFilter{})
	if err != nil {
		return nil, errs.NewInternalServerError(err)
	}

	return &CategoryPage{
		QuestionPage:    QuestionPage{Questions: model.FormatQuestions(questions), Total: total},
		CurrentCategory: category.Type,
	}, nil
}
