package service

import (
	"context"
	"errors"

	"github.com/manar-nas/trivia-api/internal/errs"
	"github.com/manar-nas/trivia-api/internal/model"
)

// Picker returns a uniformly random integer in [0, n). It must be safe for
// concurrent use; rand.IntN from math/rand/v2 is.
type Picker func(n int) int

// AllCategories selects questions from every category.
const AllCategories = 0

var errNoCandidates = errors.New("no questions left to ask")

type QuizService struct {
	questions QuestionStore
	pick      Picker
}

func NewQuizService(questions QuestionStore, pick Picker) *QuizService {
	return &QuizService{questions: questions, pick: pick}
}

// Next picks a random question from categoryID that is not in previous.
//
// It returns nil without error when a specific category is exhausted, that
// is when len(previous) equals the number of questions in it. Running out
// of candidates in any other way is an internal error.
func (s *QuizService) Next(ctx context.Context, categoryID int, previous []int) (*model.FormattedQuestion, error) {
	if categoryID != AllCategories {
		inCategory, err := s.questions.Count(ctx, model.QuestionFilter{CategoryID: categoryID})
		if err != nil {
			return nil, errs.NewInternalServerError(err)
		}
		if int64(len(previous)) == inCategory {
			return nil, nil
		}
	}

	filter := model.QuestionFilter{CategoryID: categoryID, ExcludeIDs: previous}

	candidates, err := s.questions.Count(ctx, filter)
	if err != nil {
		return nil, errs.NewInternalServerError(err)
	}
	if candidates == 0 {
		return nil, errs.NewInternalServerError(errNoCandidates)
	}

	picked, err := s.questions.Find(ctx, filter, s.pick(int(candidates)), 1)
	if err != nil {
		return nil, errs.NewInternalServerError(err)
	}
	if len(picked) == 0 {
		// The candidate set shrank between the count and the read.
		return nil, errs.NewInternalServerError(errNoCandidates)
	}

	q := picked[0].Format()
	return &q, nil
}
