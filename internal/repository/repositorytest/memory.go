// Package repositorytest provides in-memory question and category stores
// for tests that exercise services and handlers without PostgreSQL.
package repositorytest

import (
	"context"
	"slices"
	"strings"
	"sync"

	"github.com/manar-nas/trivia-api/internal/model"
	"github.com/manar-nas/trivia-api/internal/repository"
)

// Store is an in-memory implementation of both the question and the
// category store. It is safe for concurrent use.
type Store struct {
	mu         sync.Mutex
	questions  []model.Question
	categories []model.Category
	nextID     int

	// err, when set, is returned by every call.
	err error
}

// NewStore returns a store seeded with categories and questions. Ids of
// seeded questions are kept; new questions get ids above the highest one.
func NewStore(categories []model.Category, questions []model.Question) *Store {
	s := &Store{
		categories: slices.Clone(categories),
		questions:  slices.Clone(questions),
	}
	slices.SortFunc(s.categories, func(a, b model.Category) int { return a.ID - b.ID })
	slices.SortFunc(s.questions, func(a, b model.Question) int { return a.ID - b.ID })
	for _, q := range s.questions {
		s.nextID = max(s.nextID, q.ID)
	}
	return s
}

func matches(q model.Question, filter model.QuestionFilter) bool {
	if filter.SearchTerm != "" && !strings.Contains(strings.ToLower(q.Question), strings.ToLower(filter.SearchTerm)) {
		return false
	}
	if filter.CategoryID != 0 && q.Category != filter.CategoryID {
		return false
	}
	return !slices.Contains(filter.ExcludeIDs, q.ID)
}

func (s *Store) Find(_ context.Context, filter model.QuestionFilter, offset, limit int) ([]model.Question, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}

	var out []model.Question
	skipped := 0
	for _, q := range s.questions {
		if !matches(q, filter) {
			continue
		}
		if skipped < offset {
			skipped++
			continue
		}
		if len(out) == limit {
			break
		}
		out = append(out, q)
	}
	return out, nil
}

func (s *Store) Count(_ context.Context, filter model.QuestionFilter) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return 0, s.err
	}

	var n int64
	for _, q := range s.questions {
		if matches(q, filter) {
			n++
		}
	}
	return n, nil
}

func (s *Store) GetByID(_ context.Context, id int) (*model.Question, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}

	for _, q := range s.questions {
		if q.ID == id {
			return &q, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (s *Store) Create(_ context.Context, q model.Question) (*model.Question, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}

	s.nextID++
	q.ID = s.nextID
	s.questions = append(s.questions, q)
	return &q, nil
}

func (s *Store) Delete(_ context.Context, id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}

	i := slices.IndexFunc(s.questions, func(q model.Question) bool { return q.ID == id })
	if i < 0 {
		return repository.ErrNotFound
	}
	s.questions = slices.Delete(s.questions, i, i+1)
	return nil
}

// Categories adapts the store to the category store interface.
func (s *Store) Categories() *CategoryStore {
	return &CategoryStore{s: s}
}

// CategoryStore exposes the categories of a Store.
type CategoryStore struct {
	s *Store
}

func (c *CategoryStore) All(_ context.Context) ([]model.Category, error) {
	c.s.mu.Lock()
	defer c.s.mu.Unlock()
	if c.s.err != nil {
		return nil, c.s.err
	}
	return slices.Clone(c.s.categories), nil
}

func (c *CategoryStore) GetByID(_ context.Context, id int) (*model.Category, error) {
	c.s.mu.Lock()
	defer c.s.mu.Unlock()
	if c.s.err != nil {
		return nil, c.s.err
	}

	for _, cat := range c.s.categories {
		if cat.ID == id {
			return &cat, nil
		}
	}
	return nil, repository.ErrNotFound
}

// SetErr makes every later call fail with err. Passing nil clears it.
func (s *Store) SetErr(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.err = err
}

// Seed returns the fixture used across service and handler tests: three
// categories and fifteen questions, six of them in Science.
func Seed() *Store {
	categories := []model.Category{
		{ID: 1, Type: "Science"},
		{ID: 2, Type: "Art"},
		{ID: 3, Type: "Geography"},
	}

	questions := []model.Question{
		{ID: 1, Question: "What is the heaviest organ in the human body?", Answer: "The Liver", Category: 1, Difficulty: 4},
		{ID: 2, Question: "Who discovered penicillin?", Answer: "Alexander Fleming", Category: 1, Difficulty: 3},
		{ID: 3, Question: "Hematology is a branch of medicine involving the study of what?", Answer: "Blood", Category: 1, Difficulty: 4},
		{ID: 4, Question: "What is the chemical symbol for gold?", Answer: "Au", Category: 1, Difficulty: 1},
		{ID: 5, Question: "How many bones are in the adult human body?", Answer: "206", Category: 1, Difficulty: 2},
		{ID: 6, Question: "What planet is known as the Red Planet?", Answer: "Mars", Category: 1, Difficulty: 1},
		{ID: 7, Question: "Which Dutch graphic artist created mathematically inspired prints?", Answer: "Escher", Category: 2, Difficulty: 1},
		{ID: 8, Question: "La Giaconda is better known as what?", Answer: "Mona Lisa", Category: 2, Difficulty: 3},
		{ID: 9, Question: "How many paintings did Van Gogh sell in his lifetime?", Answer: "One", Category: 2, Difficulty: 4},
		{ID: 10, Question: "Whose autobiography is entitled 'I Know Why the Caged Bird Sings'?", Answer: "Maya Angelou", Category: 2, Difficulty: 2},
		{ID: 11, Question: "What is the largest lake in Africa?", Answer: "Lake Victoria", Category: 3, Difficulty: 2},
		{ID: 12, Question: "In which royal palace would you find the Hall of Mirrors?", Answer: "The Palace of Versailles", Category: 3, Difficulty: 3},
		{ID: 13, Question: "The Taj Mahal is located in which Indian city?", Answer: "Agra", Category: 3, Difficulty: 2},
		{ID: 14, Question: "What is the capital of Australia?", Answer: "Canberra", Category: 3, Difficulty: 2},
		{ID: 15, Question: "Which river flows through 100% of Egypt's length?", Answer: "The Nile", Category: 3, Difficulty: 3},
	}

	return NewStore(categories, questions)
}
