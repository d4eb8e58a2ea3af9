package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/manar-nas/trivia-api/internal/model"
)

type QuizHandler struct {
	Handler
}

// quizResponse omits question once the chosen category is exhausted.
type quizResponse struct {
	Success  bool                     `json:"success"`
	Question *model.FormattedQuestion `json:"question,omitempty"`
}

// NextQuestion serves POST /quizzes.
func (h *QuizHandler) NextQuestion() echo.HandlerFunc {
	return Handle(h.Handler, h.nextQuestion, http.StatusOK, newOf[model.QuizRequest]())
}

func (h *QuizHandler) nextQuestion(c echo.Context, req *model.QuizRequest) (*quizResponse, error) {
	q, err := h.services.Quiz.Next(c.Request().Context(), req.QuizCategory.ID.Int(), req.PreviousQuestions)
	if err != nil {
		return nil, err
	}

	return &quizResponse{Success: true, Question: q}, nil
}
