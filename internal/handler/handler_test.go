package handler_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/manar-nas/trivia-api/internal/config"
	"github.com/manar-nas/trivia-api/internal/handler"
	"github.com/manar-nas/trivia-api/internal/repository/repositorytest"
	"github.com/manar-nas/trivia-api/internal/router"
	"github.com/manar-nas/trivia-api/internal/server"
	"github.com/manar-nas/trivia-api/internal/service"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T) (*echo.Echo, *repositorytest.Store) {
	t.Helper()

	store := repositorytest.Seed()
	logger := zerolog.Nop()
	srv := server.NewWithDatabase(config.DefaultConfig(), &logger, nil, nil)

	// Always pick the first candidate.
	services := service.NewServicesWithStores(store, store.Categories(), func(int) int { return 0 })

	return router.NewRouter(srv, handler.NewHandlers(srv, services)), store
}

func do(t *testing.T, e *echo.Echo, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body), rec.Body.String())
	return body
}

func questionIDs(t *testing.T, body map[string]any) []int {
	t.Helper()

	raw, ok := body["questions"].([]any)
	require.True(t, ok, "questions is not a list: %v", body["questions"])

	ids := make([]int, 0, len(raw))
	for _, q := range raw {
		ids = append(ids, int(q.(map[string]any)["id"].(float64)))
	}
	return ids
}

func assertError(t *testing.T, rec *httptest.ResponseRecorder, status int, message string) {
	t.Helper()

	assert.Equal(t, status, rec.Code)
	assert.Equal(t, map[string]any{
		"success": false,
		"error":   float64(status),
		"message": message,
	}, decode(t, rec))
}

func TestListCategories(t *testing.T) {
	e, store := newTestRouter(t)

	rec := do(t, e, http.MethodGet, "/categories", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, map[string]any{
		"success": true,
		"categories": map[string]any{
			"1": "Science",
			"2": "Art",
			"3": "Geography",
		},
	}, decode(t, rec))

	store.SetErr(errors.New("connection refused"))
	rec = do(t, e, http.MethodGet, "/categories", "")
	assertError(t, rec, http.StatusInternalServerError, "Internal Server Error")
}

func TestListQuestions(t *testing.T) {
	e, _ := newTestRouter(t)

	rec := do(t, e, http.MethodGet, "/questions", "")
	require.Equal(t, http.StatusOK, rec.Code)

	body := decode(t, rec)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}, questionIDs(t, body))
	assert.Equal(t, float64(15), body["total_questions"])
	assert.Len(t, body["categories"], 3)
	assert.Contains(t, body, "current_category")
	assert.Nil(t, body["current_category"])

	first := body["questions"].([]any)[0].(map[string]any)
	assert.Equal(t, map[string]any{
		"id":         float64(1),
		"question":   "What is the heaviest organ in the human body?",
		"answer":     "The Liver",
		"difficulty": float64(4),
		"category":   float64(1),
	}, first)
}

func TestListQuestions_Pages(t *testing.T) {
	e, _ := newTestRouter(t)

	rec := do(t, e, http.MethodGet, "/questions?page=2", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []int{11, 12, 13, 14, 15}, questionIDs(t, decode(t, rec)))

	rec = do(t, e, http.MethodGet, "/questions?page=abc", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, questionIDs(t, decode(t, rec))[0])

	for _, page := range []string{"3", "0", "-1", "99999999999"} {
		rec = do(t, e, http.MethodGet, "/questions?page="+page, "")
		assertError(t, rec, http.StatusNotFound, "Not Found")
	}
}

func TestDeleteQuestion(t *testing.T) {
	e, _ := newTestRouter(t)

	rec := do(t, e, http.MethodDelete, "/questions/3", "")
	require.Equal(t, http.StatusOK, rec.Code)

	body := decode(t, rec)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, float64(3), body["deleted"])
	assert.Equal(t, float64(14), body["total_questions"])
	assert.NotContains(t, questionIDs(t, body), 3)

	rec = do(t, e, http.MethodDelete, "/questions/3", "")
	assertError(t, rec, http.StatusNotFound, "Not Found")

	rec = do(t, e, http.MethodDelete, "/questions/abc", "")
	assertError(t, rec, http.StatusNotFound, "Not Found")
}

func TestDeleteQuestion_PersistenceFailure(t *testing.T) {
	e, store := newTestRouter(t)
	store.SetErr(errors.New("connection reset"))

	rec := do(t, e, http.MethodDelete, "/questions/1", "")
	assertError(t, rec, http.StatusUnprocessableEntity, "Unprocrssable")
}

func TestCreateQuestion(t *testing.T) {
	e, store := newTestRouter(t)

	rec := do(t, e, http.MethodPost, "/questions",
		`{"question":"Who painted the Sistine Chapel ceiling?","answer":"Michelangelo","category":"2","difficulty":3}`)
	require.Equal(t, http.StatusOK, rec.Code)

	body := decode(t, rec)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, float64(16), body["created"])
	assert.Equal(t, float64(16), body["total_questions"])
	assert.Len(t, questionIDs(t, body), 10)

	created, err := store.GetByID(t.Context(), 16)
	require.NoError(t, err)
	assert.Equal(t, 2, created.Category)
	assert.Equal(t, 3, created.Difficulty)
}

func TestCreateQuestion_Invalid(t *testing.T) {
	tests := map[string]string{
		"missing answer":     `{"question":"Q","category":1,"difficulty":1}`,
		"blank question":     `{"question":"   ","answer":"A","category":1,"difficulty":1}`,
		"non-numeric":        `{"question":"Q","answer":"A","category":"art","difficulty":1}`,
		"malformed json":     `{"question":`,
		"empty object":       `{}`,
		"difficulty as text": `{"question":"Q","answer":"A","category":1,"difficulty":"hard"}`,
	}

	for name, payload := range tests {
		t.Run(name, func(t *testing.T) {
			e, _ := newTestRouter(t)

			rec := do(t, e, http.MethodPost, "/questions", payload)
			assertError(t, rec, http.StatusUnprocessableEntity, "Unprocrssable")
		})
	}
}

func TestCreateQuestion_PersistenceFailure(t *testing.T) {
	e, store := newTestRouter(t)
	store.SetErr(errors.New("insert failed"))

	rec := do(t, e, http.MethodPost, "/questions", `{"question":"Q","answer":"A","category":1,"difficulty":1}`)
	assertError(t, rec, http.StatusUnprocessableEntity, "Unprocrssable")
}

func TestSearchQuestions(t *testing.T) {
	e, _ := newTestRouter(t)

	rec := do(t, e, http.MethodPost, "/questions", `{"searchTerm":"TITLE"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	body := decode(t, rec)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, []int{10}, questionIDs(t, body))
	assert.Equal(t, float64(1), body["total_questions"])
	assert.Contains(t, body, "current_category")
	assert.Nil(t, body["current_category"])
	assert.NotContains(t, body, "created")

	rec = do(t, e, http.MethodPost, "/questions", `{"searchTerm":"zebra"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	body = decode(t, rec)
	assert.Equal(t, []any{}, body["questions"])
	assert.Equal(t, float64(0), body["total_questions"])

	rec = do(t, e, http.MethodPost, "/questions?page=2", `{"searchTerm":"title"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	body = decode(t, rec)
	assert.Equal(t, []any{}, body["questions"])
	assert.Equal(t, float64(1), body["total_questions"])
}

func TestSearchQuestions_WhitespaceTerm(t *testing.T) {
	e, store := newTestRouter(t)

	rec := do(t, e, http.MethodPost, "/questions", `{"searchTerm":" "}`)
	require.Equal(t, http.StatusOK, rec.Code)

	body := decode(t, rec)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}, questionIDs(t, body))
	assert.Equal(t, float64(15), body["total_questions"])
	assert.NotContains(t, body, "created")

	_, err := store.GetByID(t.Context(), 16)
	assert.Error(t, err)
}

func TestCreateQuestion_StoresTextAsSent(t *testing.T) {
	e, store := newTestRouter(t)

	rec := do(t, e, http.MethodPost, "/questions", `{"question":" Why? ","answer":"Because ","category":1,"difficulty":2}`)
	require.Equal(t, http.StatusOK, rec.Code)

	created, err := store.GetByID(t.Context(), 16)
	require.NoError(t, err)
	assert.Equal(t, " Why? ", created.Question)
	assert.Equal(t, "Because ", created.Answer)
}

func TestSearchQuestions_PersistenceFailure(t *testing.T) {
	e, store := newTestRouter(t)
	store.SetErr(errors.New("timeout"))

	rec := do(t, e, http.MethodPost, "/questions", `{"searchTerm":"title"}`)
	assertError(t, rec, http.StatusUnprocessableEntity, "Unprocrssable")
}

func TestListCategoryQuestions(t *testing.T) {
	e, _ := newTestRouter(t)

	rec := do(t, e, http.MethodGet, "/categories/3/questions", "")
	require.Equal(t, http.StatusOK, rec.Code)

	body := decode(t, rec)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, []int{11, 12, 13, 14, 15}, questionIDs(t, body))
	assert.Equal(t, float64(15), body["total_questions"])
	assert.Equal(t, "Geography", body["current_category"])

	for _, target := range []string{
		"/categories/99/questions",
		"/categories/abc/questions",
		"/categories/3/questions?page=2",
	} {
		rec = do(t, e, http.MethodGet, target, "")
		assertError(t, rec, http.StatusNotFound, "Not Found")
	}
}

func TestNextQuizQuestion(t *testing.T) {
	e, _ := newTestRouter(t)

	rec := do(t, e, http.MethodPost, "/quizzes",
		`{"quiz_category":{"id":1,"type":"Science"},"previous_questions":[1]}`)
	require.Equal(t, http.StatusOK, rec.Code)

	body := decode(t, rec)
	assert.Equal(t, true, body["success"])
	question := body["question"].(map[string]any)
	assert.Equal(t, float64(2), question["id"])
	assert.Equal(t, float64(1), question["category"])

	rec = do(t, e, http.MethodPost, "/quizzes",
		`{"quiz_category":{"id":"2","type":"Art"},"previous_questions":[]}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, float64(7), decode(t, rec)["question"].(map[string]any)["id"])

	rec = do(t, e, http.MethodPost, "/quizzes",
		`{"quiz_category":{"id":0,"type":"click"},"previous_questions":[1,2,3]}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, float64(4), decode(t, rec)["question"].(map[string]any)["id"])

	rec = do(t, e, http.MethodPost, "/quizzes",
		`{"quiz_category":{"id":1,"type":5},"previous_questions":[1]}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, float64(2), decode(t, rec)["question"].(map[string]any)["id"])
}

func TestNextQuizQuestion_CategoryExhausted(t *testing.T) {
	e, _ := newTestRouter(t)

	rec := do(t, e, http.MethodPost, "/quizzes",
		`{"quiz_category":{"id":2,"type":"Art"},"previous_questions":[7,8,9,10]}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, map[string]any{"success": true}, decode(t, rec))
}

func TestNextQuizQuestion_AllAsked(t *testing.T) {
	e, _ := newTestRouter(t)

	rec := do(t, e, http.MethodPost, "/quizzes",
		`{"quiz_category":{"id":0},"previous_questions":[1,2,3,4,5,6,7,8,9,10,11,12,13,14,15]}`)
	assertError(t, rec, http.StatusInternalServerError, "Internal Server Error")
}

func TestNextQuizQuestion_BadRequest(t *testing.T) {
	tests := map[string]string{
		"missing category":  `{"previous_questions":[]}`,
		"null category":     `{"quiz_category":null,"previous_questions":[]}`,
		"missing previous":  `{"quiz_category":{"id":1}}`,
		"null previous":     `{"quiz_category":{"id":1},"previous_questions":null}`,
		"malformed json":    `{"quiz_category":`,
		"negative category": `{"quiz_category":{"id":-1},"previous_questions":[]}`,
	}

	for name, payload := range tests {
		t.Run(name, func(t *testing.T) {
			e, _ := newTestRouter(t)

			rec := do(t, e, http.MethodPost, "/quizzes", payload)
			assertError(t, rec, http.StatusBadRequest, "Bad Request")
		})
	}

	e, _ := newTestRouter(t)
	rec := do(t, e, http.MethodPost, "/quizzes", "")
	assertError(t, rec, http.StatusBadRequest, "Bad Request")
}

func TestRouterErrors(t *testing.T) {
	e, _ := newTestRouter(t)

	rec := do(t, e, http.MethodGet, "/nope", "")
	assertError(t, rec, http.StatusNotFound, "Not Found")

	rec = do(t, e, http.MethodPut, "/questions", "")
	assertError(t, rec, http.StatusMethodNotAllowed, "METHOD NOT ALLOWED")
}

func TestRequestID(t *testing.T) {
	e, _ := newTestRouter(t)

	rec := do(t, e, http.MethodGet, "/categories", "")
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))

	req := httptest.NewRequest(http.MethodGet, "/categories", nil)
	req.Header.Set("X-Request-ID", "abc-123")
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, "abc-123", rec.Header().Get("X-Request-ID"))
}

func TestCORSPreflight(t *testing.T) {
	e, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodOptions, "/questions", nil)
	req.Header.Set(echo.HeaderOrigin, "http://localhost:3000")
	req.Header.Set(echo.HeaderAccessControlRequestMethod, http.MethodPost)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "*", rec.Header().Get(echo.HeaderAccessControlAllowOrigin))
	assert.Contains(t, rec.Header().Get(echo.HeaderAccessControlAllowMethods), http.MethodPatch)
	assert.Contains(t, rec.Header().Get(echo.HeaderAccessControlAllowHeaders), echo.HeaderAuthorization)
}

func TestHealth_WithoutDatabase(t *testing.T) {
	e, _ := newTestRouter(t)

	rec := do(t, e, http.MethodGet, "/status", "")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	body := decode(t, rec)
	assert.Equal(t, "unhealthy", body["status"])
	assert.Equal(t, "development", body["environment"])
	assert.Equal(t, "unhealthy", body["checks"].(map[string]any)["database"].(map[string]any)["status"])
}

func TestDocs(t *testing.T) {
	e, _ := newTestRouter(t)

	rec := do(t, e, http.MethodGet, "/docs", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get(echo.HeaderContentType), echo.MIMETextHTML)
	assert.Contains(t, rec.Body.String(), "/static/openapi.json")

	rec = do(t, e, http.MethodGet, "/static/openapi.json", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &doc))
	assert.Contains(t, doc["paths"], "/quizzes")
}
