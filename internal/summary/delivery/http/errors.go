package http

import (
	"errors"
	"net/http"

	"ai-task-assistant/internal/summary"
	pkgErrors "ai-task-assistant/pkg/errors"
)

// mapError translates use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, summary.ErrInvalidPeriod),
		errors.Is(err, summary.ErrTooManyTasks):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if httpErr, ok := pkgErrors.FromModelError(err); ok {
		return httpErr
	}
	return pkgErrors.ErrInternalServerError
}
