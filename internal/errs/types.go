package errs

import (
	"net/http"
)

// Fixed client-facing messages. The 405 and 422 spellings are part of the
// contract the frontend was written against.
const (
	MessageBadRequest       = "Bad Request"
	MessageNotFound         = "Not Found"
	MessageMethodNotAllowed = "METHOD NOT ALLOWED"
	MessageUnprocessable    = "Unprocrssable"
	MessageInternalServer   = "Internal Server Error"
)

func newHTTPError(status int, message string) *HTTPError {
	return &HTTPError{
		Success: false,
		Status:  status,
		Message: message,
		// http.StatusText(404) => "Not Found" => "NOT_FOUND"
		Code: MakeUpperCaseWithUnderscores(http.StatusText(status)),
	}
}

// NewBadRequestError creates a 400 Bad Request HTTPError.
//
// Raised when required quiz parameters are missing.
func NewBadRequestError() *HTTPError {
	return newHTTPError(http.StatusBadRequest, MessageBadRequest)
}

// NewNotFoundError creates a 404 Not Found HTTPError.
//
// Empty pages, out-of-range pages, unknown ids and unknown categories all
// collapse into this one error.
func NewNotFoundError() *HTTPError {
	return newHTTPError(http.StatusNotFound, MessageNotFound)
}

// NewMethodNotAllowedError creates a 405 HTTPError.
func NewMethodNotAllowedError() *HTTPError {
	return newHTTPError(http.StatusMethodNotAllowed, MessageMethodNotAllowed)
}

// NewUnprocessableError creates a 422 HTTPError wrapping cause.
//
// Any failure during delete, create or search is reported this way,
// regardless of what went wrong underneath.
func NewUnprocessableError(cause error) *HTTPError {
	return newHTTPError(http.StatusUnprocessableEntity, MessageUnprocessable).WithCause(cause)
}

// NewInternalServerError creates a 500 Internal Server Error HTTPError.
//
// Note:
//   - message is the generic status text, not the real internal error message.
//   - the cause is kept for logs only.
func NewInternalServerError(cause error) *HTTPError {
	return newHTTPError(http.StatusInternalServerError, MessageInternalServer).WithCause(cause)
}

// FromStatus returns the HTTPError for a status code produced outside the
// services (router misses, framework errors). Unknown statuses keep their
// standard status text as message.
func FromStatus(status int) *HTTPError {
	switch status {
	case http.StatusBadRequest:
		return NewBadRequestError()
	case http.StatusNotFound:
		return NewNotFoundError()
	case http.StatusMethodNotAllowed:
		return NewMethodNotAllowedError()
	case http.StatusUnprocessableEntity:
		return NewUnprocessableError(nil)
	case http.StatusInternalServerError:
		return NewInternalServerError(nil)
	}

	text := http.StatusText(status)
	if text == "" {
		return NewInternalServerError(nil)
	}
	return newHTTPError(status, text)
}
