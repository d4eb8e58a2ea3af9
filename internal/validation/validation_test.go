package validation

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/manar-nas/trivia-api/internal/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type answerPayload struct {
	Answer string `json:"answer" validate:"required"`
	Points int    `json:"points" validate:"min=1"`
}

func (p *answerPayload) Validate() error {
	return validator.New().Struct(p)
}

type rejectingPayload struct {
	answerPayload
}

func (p *rejectingPayload) Reject(cause error) *errs.HTTPError {
	return errs.NewUnprocessableError(cause)
}

type idPayload struct {
	ID int `param:"id"`
}

func (p *idPayload) Validate() error { return nil }

func (p *idPayload) Reject(cause error) *errs.HTTPError {
	return errs.NewNotFoundError().WithCause(cause)
}

func newContext(method, body string) echo.Context {
	req := httptest.NewRequest(method, "/", strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	return echo.New().NewContext(req, httptest.NewRecorder())
}

func statusOf(t *testing.T, err error) int {
	t.Helper()
	var httpErr *errs.HTTPError
	require.ErrorAs(t, err, &httpErr)
	return httpErr.Status
}

func TestBindAndValidate_Success(t *testing.T) {
	var p answerPayload
	err := BindAndValidate(newContext(http.MethodPost, `{"answer":"Paris","points":2}`), &p)

	require.NoError(t, err)
	assert.Equal(t, "Paris", p.Answer)
	assert.Equal(t, 2, p.Points)
}

func TestBindAndValidate_DefaultsToBadRequest(t *testing.T) {
	err := BindAndValidate(newContext(http.MethodPost, `{"points":0}`), &answerPayload{})
	assert.Equal(t, http.StatusBadRequest, statusOf(t, err))

	var fieldErrors FieldErrors
	require.ErrorAs(t, err, &fieldErrors)
	assert.Equal(t, FieldErrors{
		{Field: "answer", Error: "is required"},
		{Field: "points", Error: "must be at least 1"},
	}, fieldErrors)
}

func TestBindAndValidate_MalformedBodyUsesRejecter(t *testing.T) {
	err := BindAndValidate(newContext(http.MethodPost, `{"answer":`), &rejectingPayload{})
	assert.Equal(t, http.StatusUnprocessableEntity, statusOf(t, err))
}

func TestBindAndValidate_ValidationUsesRejecter(t *testing.T) {
	err := BindAndValidate(newContext(http.MethodPost, `{"points":3}`), &rejectingPayload{})
	assert.Equal(t, http.StatusUnprocessableEntity, statusOf(t, err))
}

func TestBindAndValidate_PathParam(t *testing.T) {
	tests := []struct {
		name   string
		value  string
		wantID int
		status int
	}{
		{"integer", "12", 12, 0},
		{"word", "abc", 0, http.StatusNotFound},
		{"fraction", "1.5", 0, http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newContext(http.MethodDelete, "")
			c.SetParamNames("id")
			c.SetParamValues(tt.value)

			var p idPayload
			err := BindAndValidate(c, &p)
			if tt.status == 0 {
				require.NoError(t, err)
				assert.Equal(t, tt.wantID, p.ID)
				return
			}
			assert.Equal(t, tt.status, statusOf(t, err))
		})
	}
}

func TestExtractValidationError_PassesThroughOtherErrors(t *testing.T) {
	plain := errors.New("negative id")
	assert.Same(t, plain, extractValidationError(plain))
}
