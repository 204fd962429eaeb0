package http

import (
	"errors"
	"net/http"

	"ai-task-assistant/internal/task"
	pkgErrors "ai-task-assistant/pkg/errors"
)

// mapError translates use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	var verr *task.ValidationError
	if errors.As(err, &verr) {
		return pkgErrors.NewHTTPError(http.StatusBadRequest, verr.Message).WithReason(string(verr.Code))
	}
	if httpErr, ok := pkgErrors.FromModelError(err); ok {
		return httpErr
	}
	return pkgErrors.ErrInternalServerError
}
