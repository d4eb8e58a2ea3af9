package model

// table_name: questions
type Question struct {
	ID         int    `po:"id,primaryKey,serial"`
	Question   string `po:"question,text,notNull"`
	Answer     string `po:"answer,text,notNull"`
	Category   int    `po:"category,integer,notNull"`
	Difficulty int    `po:"difficulty,integer,notNull"`
}

// FormattedQuestion is the JSON representation of a question.
type FormattedQuestion struct {
	ID         int    `json:"id"`
	Question   string `json:"question"`
	Answer     string `json:"answer"`
	Difficulty int    `json:"difficulty"`
	Category   int    `json:"category"`
}

// Format returns the JSON representation of q.
func (q Question) Format() FormattedQuestion {
	return FormattedQuestion{
		ID:         q.ID,
		Question:   q.Question,
		Answer:     q.Answer,
		Difficulty: q.Difficulty,
		Category:   q.Category,
	}
}

// FormatQuestions formats every question, always returning a non-nil slice
// so empty pages encode as [] instead of null.
func FormatQuestions(questions []Question) []FormattedQuestion {
	formatted := make([]FormattedQuestion, 0, len(questions))
	for _, q := range questions {
		formatted = append(formatted, q.Format())
	}
	return formatted
}

// QuestionFilter narrows a question query. Zero values disable a criterion.
type QuestionFilter struct {
	// SearchTerm matches question text as a case-insensitive literal substring.
	SearchTerm string

	// CategoryID restricts results to one category. 0 means any category.
	CategoryID int

	// ExcludeIDs drops questions with these ids.
	ExcludeIDs []int
}
