package service

import (
	"math"
	"strconv"

	"github.com/manar-nas/trivia-api/internal/model"
)

// ParsePage reads a page query value. A missing or non-integer value means
// page 1; other integers, including zero and negatives, are kept so the
// caller can reject them.
func ParsePage(raw string) int {
	page, err := strconv.Atoi(raw)
	if err != nil {
		return 1
	}
	return page
}

// pageOffset returns the row offset of page. ok is false for pages that
// can never hold rows: below 1, or so large the offset would overflow.
func pageOffset(page int) (offset int, ok bool) {
	if page < 1 || page > math.MaxInt32/model.QuestionsPerPage {
		return 0, false
	}
	return (page - 1) * model.QuestionsPerPage, true
}
