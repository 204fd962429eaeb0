package errors

import (
	stderrors "errors"
	"net/http"

	"ai-task-assistant/pkg/llmprovider"
)

// Client-facing messages per model failure kind. Raw model output never
// reaches a client.
var modelErrors = map[llmprovider.Kind]*HTTPError{
	llmprovider.KindSchemaViolation: NewHTTPError(http.StatusBadGateway, "The assistant returned an unexpected answer, please try again"),
	llmprovider.KindAuth:            NewHTTPError(http.StatusInternalServerError, "The assistant is not configured correctly"),
	llmprovider.KindRateLimited:     NewHTTPError(http.StatusTooManyRequests, "The assistant is busy, please retry later"),
	llmprovider.KindTransport:       NewHTTPError(http.StatusServiceUnavailable, "The assistant is unavailable, please try again"),
	llmprovider.KindUnclassified:    ErrInternalServerError,
}

// FromModelError maps a *llmprovider.ModelError anywhere in err's chain to its
// HTTP error. ok is false when err is not a model error.
func FromModelError(err error) (httpErr *HTTPError, ok bool) {
	var me *llmprovider.ModelError
	if !stderrors.As(err, &me) {
		return nil, false
	}
	he, found := modelErrors[me.Kind]
	if !found {
		he = ErrInternalServerError
	}
	return he.WithReason(string(me.Kind)), true
}
