package model

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/manar-nas/trivia-api/internal/errs"
)

var validate = validator.New()

// ListCategoriesRequest carries no input.
type ListCategoriesRequest struct{}

func (r *ListCategoriesRequest) Validate() error { return nil }

// ListQuestionsRequest carries no bound input; the page is read leniently
// from the query string by the handler.
type ListQuestionsRequest struct{}

func (r *ListQuestionsRequest) Validate() error { return nil }

// QuestionIDRequest identifies a question by path parameter.
type QuestionIDRequest struct {
	ID int `param:"id"`
}

func (r *QuestionIDRequest) Validate() error { return nil }

// A question id that is not an integer names no question.
func (r *QuestionIDRequest) Reject(cause error) *errs.HTTPError {
	return errs.NewNotFoundError().WithCause(cause)
}

// CategoryIDRequest identifies a category by path parameter.
type CategoryIDRequest struct {
	ID int `param:"id"`
}

func (r *CategoryIDRequest) Validate() error { return nil }

func (r *CategoryIDRequest) Reject(cause error) *errs.HTTPError {
	return errs.NewNotFoundError().WithCause(cause)
}

// QuestionRequest is the body of POST /questions. A non-empty SearchTerm
// makes it a search; otherwise it describes a new question.
type QuestionRequest struct {
	SearchTerm string  `json:"searchTerm"`
	Question   string  `json:"question"`
	Answer     string  `json:"answer"`
	Category   FlexInt `json:"category"`
	Difficulty FlexInt `json:"difficulty"`
}

// newQuestion mirrors the NOT NULL columns of the questions table.
type newQuestion struct {
	Question   string `validate:"required"`
	Answer     string `validate:"required"`
	Category   int    `validate:"required"`
	Difficulty int    `validate:"required"`
}

// IsSearch reports whether the request is a search. Any non-empty term
// counts, whitespace included.
func (r *QuestionRequest) IsSearch() bool {
	return r.SearchTerm != ""
}

func (r *QuestionRequest) Validate() error {
	if r.IsSearch() {
		return nil
	}

	return validate.Struct(newQuestion{
		Question:   strings.TrimSpace(r.Question),
		Answer:     strings.TrimSpace(r.Answer),
		Category:   r.Category.Int(),
		Difficulty: r.Difficulty.Int(),
	})
}

func (r *QuestionRequest) Reject(cause error) *errs.HTTPError {
	return errs.NewUnprocessableError(cause)
}

// ToQuestion converts a validated create request into a storage model. Text
// is stored as sent; trimming only applies to validation.
func (r *QuestionRequest) ToQuestion() Question {
	return Question{
		Question:   r.Question,
		Answer:     r.Answer,
		Category:   r.Category.Int(),
		Difficulty: r.Difficulty.Int(),
	}
}

// QuizCategory selects the category a quiz draws from. ID 0 means any.
// The frontend also sends a "type" label; it is not read.
type QuizCategory struct {
	ID FlexInt `json:"id"`
}

// QuizRequest is the body of POST /quizzes.
type QuizRequest struct {
	QuizCategory      *QuizCategory `json:"quiz_category" validate:"required"`
	PreviousQuestions []int         `json:"previous_questions" validate:"required"`
}

var errNegativeCategory = errors.New("quiz_category.id must not be negative")

func (r *QuizRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return err
	}
	if r.QuizCategory.ID < 0 {
		return errNegativeCategory
	}
	return nil
}

func (r *QuizRequest) Reject(cause error) *errs.HTTPError {
	return errs.NewBadRequestError().WithCause(cause)
}
