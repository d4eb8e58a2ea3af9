package errs

import "strings"

// HTTPError is the error type returned by services and handlers.
//
// It implements the `error` interface via Error().
// It is serialized directly to JSON as the error body:
//
//	{ "success": false, "error": 404, "message": "Not Found" }
//
// Fields:
//   - Success: always false on the wire.
//   - Status: HTTP status code, serialized under "error".
//   - Message: fixed human-readable message for the status.
//   - Code: machine-friendly code (e.g. "NOT_FOUND"), used in logs only.
type HTTPError struct {
	Success bool   `json:"success"`
	Status  int    `json:"error"`
	Message string `json:"message"`
	Code    string `json:"-"`

	// cause is the underlying failure. It is logged, never sent to clients.
	cause error
}

// Error makes *HTTPError satisfy the built-in `error` interface.
//
// The cause is appended so logging the error shows what actually failed.
func (e *HTTPError) Error() string {
	if e.cause != nil {
		return e.Message + ": " + e.cause.Error()
	}
	return e.Message
}

// Unwrap exposes the cause to errors.Is / errors.As.
func (e *HTTPError) Unwrap() error {
	return e.cause
}

// Is customizes how errors.Is(...) treats HTTPError.
//
// Two HTTPErrors match when they have the same status. The message and the
// cause are ignored, so errors.Is(err, errs.NewNotFoundError()) works.
func (e *HTTPError) Is(target error) bool {
	t, ok := target.(*HTTPError)
	if !ok {
		return false
	}
	return t.Status == e.Status
}

// WithCause returns a *copy* of this HTTPError carrying cause.
func (e *HTTPError) WithCause(cause error) *HTTPError {
	return &HTTPError{
		Success: e.Success,
		Status:  e.Status,
		Message: e.Message,
		Code:    e.Code,
		cause:   cause,
	}
}

// MakeUpperCaseWithUnderscores converts a string into an UPPER_CASE_WITH_UNDERSCORES format.
//
// Example:
//
//	"Bad Request" -> "BAD_REQUEST"
//
// Used to create stable machine-readable error codes from HTTP status text.
func MakeUpperCaseWithUnderscores(str string) string {
	return strings.ToUpper(strings.ReplaceAll(str, " ", "_"))
}
