package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/manar-nas/trivia-api/internal/model"
	"github.com/manar-nas/trivia-api/internal/service"
)

type CategoryHandler struct {
	Handler
}

type categoriesResponse struct {
	Success    bool              `json:"success"`
	Categories map[string]string `json:"categories"`
}

type categoryQuestionsResponse struct {
	Success         bool                      `json:"success"`
	Questions       []model.FormattedQuestion `json:"questions"`
	TotalQuestions  int64                     `json:"total_questions"`
	CurrentCategory string                    `json:"current_category"`
}

// ListCategories serves GET /categories.
func (h *CategoryHandler) ListCategories() echo.HandlerFunc {
	return Handle(h.Handler, h.listCategories, http.StatusOK, newOf[model.ListCategoriesRequest]())
}

func (h *CategoryHandler) listCategories(c echo.Context, _ *model.ListCategoriesRequest) (*categoriesResponse, error) {
	categories, err := h.services.Category.Map(c.Request().Context())
	if err != nil {
		return nil, err
	}

	return &categoriesResponse{Success: true, Categories: categories}, nil
}

// ListQuestions serves GET /categories/:id/questions.
func (h *CategoryHandler) ListQuestions() echo.HandlerFunc {
	return Handle(h.Handler, h.listQuestions, http.StatusOK, newOf[model.CategoryIDRequest]())
}

func (h *CategoryHandler) listQuestions(c echo.Context, req *model.CategoryIDRequest) (*categoryQuestionsResponse, error) {
	page := service.ParsePage(c.QueryParam("page"))

	result, err := h.services.Question.ByCategory(c.Request().Context(), req.ID, page)
	if err != nil {
		return nil, err
	}

	return &categoryQuestionsResponse{
		Success:         true,
		Questions:       result.Questions,
		TotalQuestions:  result.Total,
		CurrentCategory: result.CurrentCategory,
	}, nil
}
