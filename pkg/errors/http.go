// Package errors holds transport-level error values shared by HTTP handlers.
package errors

import "net/http"

// HTTPError is an error that already knows its status code and the message
// that is safe to show to clients.
type HTTPError struct {
	StatusCode int
	Message    string
	Reason     string // Optional machine-readable cause
}

// NewHTTPError creates an HTTPError with the given status and client message.
func NewHTTPError(statusCode int, message string) *HTTPError {
	return &HTTPError{StatusCode: statusCode, Message: message}
}

// WithReason returns a copy of e carrying reason.
func (e *HTTPError) WithReason(reason string) *HTTPError {
	cp := *e
	cp.Reason = reason
	return &cp
}

func (e *HTTPError) Error() string {
	return e.Message
}

var (
	ErrInternalServerError = NewHTTPError(http.StatusInternalServerError, "Something went wrong, please try again later")
	ErrTooManyRequests     = NewHTTPError(http.StatusTooManyRequests, "Too many requests, please retry later")
)
