package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/manar-nas/trivia-api/internal/errs"
)

// Validatable is implemented by request payload types that know how to validate themselves.
type Validatable interface {
	Validate() error
}

// Rejecter is implemented by payloads whose bind or validation failures map
// to a status other than 400 Bad Request.
type Rejecter interface {
	Reject(cause error) *errs.HTTPError
}

// FieldError is a single field-level validation message.
type FieldError struct {
	Field string
	Error string
}

// FieldErrors collects the field messages of one failed validation.
type FieldErrors []FieldError

func (f FieldErrors) Error() string {
	parts := make([]string, 0, len(f))
	for _, fe := range f {
		parts = append(parts, fe.Field+" "+fe.Error)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// BindAndValidate binds request data into payload and validates it.
//
// payload must be a pointer so c.Bind can populate it. Failures are returned
// as *errs.HTTPError; the status comes from Rejecter when payload implements
// it and is 400 otherwise.
func BindAndValidate(c echo.Context, payload Validatable) error {
	if err := c.Bind(payload); err != nil {
		return reject(payload, fmt.Errorf("bind: %w", err))
	}

	if err := payload.Validate(); err != nil {
		return reject(payload, extractValidationError(err))
	}

	return nil
}

func reject(payload Validatable, cause error) *errs.HTTPError {
	if r, ok := payload.(Rejecter); ok {
		return r.Reject(cause)
	}
	return errs.NewBadRequestError().WithCause(cause)
}

// extractValidationError converts validator.ValidationErrors into
// FieldErrors. Any other error is returned unchanged.
func extractValidationError(err error) error {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err
	}

	fieldErrors := make(FieldErrors, 0, len(validationErrors))
	for _, fe := range validationErrors {
		fieldErrors = append(fieldErrors, FieldError{
			Field: strings.ToLower(fe.Field()),
			Error: fieldMessage(fe),
		})
	}

	return fieldErrors
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"

	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at least %s characters", fe.Param())
		}
		return fmt.Sprintf("must be at least %s", fe.Param())

	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must not exceed %s characters", fe.Param())
		}
		return fmt.Sprintf("must not exceed %s", fe.Param())

	case "oneof":
		return fmt.Sprintf("must be one of: %s", fe.Param())

	default:
		if fe.Param() != "" {
			return fmt.Sprintf("failed %s:%s", fe.Tag(), fe.Param())
		}
		return fmt.Sprintf("failed %s", fe.Tag())
	}
}
