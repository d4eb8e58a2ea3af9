package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/manar-nas/trivia-api/internal/model"
	"github.com/manar-nas/trivia-api/internal/service"
)

type QuestionHandler struct {
	Handler
}

// current_category is always present in list and search bodies, and always
// null there.
type questionListResponse struct {
	Success         bool                      `json:"success"`
	Questions       []model.FormattedQuestion `json:"questions"`
	TotalQuestions  int64                     `json:"total_questions"`
	Categories      map[string]string         `json:"categories"`
	CurrentCategory *string                   `json:"current_category"`
}

type searchResponse struct {
	Success         bool                      `json:"success"`
	Questions       []model.FormattedQuestion `json:"questions"`
	TotalQuestions  int64                     `json:"total_questions"`
	CurrentCategory *string                   `json:"current_category"`
}

type deleteResponse struct {
	Success        bool                      `json:"success"`
	Deleted        int                       `json:"deleted"`
	Questions      []model.FormattedQuestion `json:"questions"`
	TotalQuestions int64                     `json:"total_questions"`
}

type createResponse struct {
	Success        bool                      `json:"success"`
	Created        int                       `json:"created"`
	Questions      []model.FormattedQuestion `json:"questions"`
	TotalQuestions int64                     `json:"total_questions"`
}

// ListQuestions serves GET /questions.
func (h *QuestionHandler) ListQuestions() echo.HandlerFunc {
	return Handle(h.Handler, h.listQuestions, http.StatusOK, newOf[model.ListQuestionsRequest]())
}

func (h *QuestionHandler) listQuestions(c echo.Context, _ *model.ListQuestionsRequest) (*questionListResponse, error) {
	ctx := c.Request().Context()

	page, err := h.services.Question.List(ctx, service.ParsePage(c.QueryParam("page")))
	if err != nil {
		return nil, err
	}

	categories, err := h.services.Category.Map(ctx)
	if err != nil {
		return nil, err
	}

	return &questionListResponse{
		Success:        true,
		Questions:      page.Questions,
		TotalQuestions: page.Total,
		Categories:     categories,
	}, nil
}

// DeleteQuestion serves DELETE /questions/:id.
func (h *QuestionHandler) DeleteQuestion() echo.HandlerFunc {
	return Handle(h.Handler, h.deleteQuestion, http.StatusOK, newOf[model.QuestionIDRequest]())
}

func (h *QuestionHandler) deleteQuestion(c echo.Context, req *model.QuestionIDRequest) (*deleteResponse, error) {
	result, err := h.services.Question.Delete(c.Request().Context(), req.ID)
	if err != nil {
		return nil, err
	}

	return &deleteResponse{
		Success:        true,
		Deleted:        result.Deleted,
		Questions:      result.Questions,
		TotalQuestions: result.Total,
	}, nil
}

// CreateOrSearch serves POST /questions. A body with a non-empty searchTerm
// is a search, anything else creates a question.
func (h *QuestionHandler) CreateOrSearch() echo.HandlerFunc {
	return Handle(h.Handler, h.createOrSearch, http.StatusOK, newOf[model.QuestionRequest]())
}

func (h *QuestionHandler) createOrSearch(c echo.Context, req *model.QuestionRequest) (any, error) {
	ctx := c.Request().Context()

	if req.IsSearch() {
		page := service.ParsePage(c.QueryParam("page"))

		result, err := h.services.Question.Search(ctx, req.SearchTerm, page)
		if err != nil {
			return nil, err
		}

		return &searchResponse{
			Success:        true,
			Questions:      result.Questions,
			TotalQuestions: result.Total,
		}, nil
	}

	result, err := h.services.Question.Create(ctx, req.ToQuestion())
	if err != nil {
		return nil, err
	}

	return &createResponse{
		Success:        true,
		Created:        result.Created,
		Questions:      result.Questions,
		TotalQuestions: result.Total,
	}, nil
}
