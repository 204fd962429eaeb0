package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	pkgErrors "ai-task-assistant/pkg/errors"
)

const (
	MessageSuccess = "Success"
	// ErrorCodeBadRequest is used for errors that carry no status of their own,
	// typically request binding failures.
	ErrorCodeBadRequest = 1
)

// NewOKResp returns a new OK response with the given data.
func NewOKResp(data any) Resp {
	return Resp{
		ErrorCode: 0,
		Message:   MessageSuccess,
		Data:      data,
	}
}

// OK sends 200 JSON with data.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, NewOKResp(data))
}

// Error sends an error response. A *pkgErrors.HTTPError picks its own status
// and message; anything else is a 400 with the error text.
func Error(c *gin.Context, err error) {
	var httpErr *pkgErrors.HTTPError
	if errors.As(err, &httpErr) {
		resp := Resp{
			ErrorCode: httpErr.StatusCode,
			Message:   httpErr.Message,
		}
		if httpErr.Reason != "" {
			resp.Errors = gin.H{"reason": httpErr.Reason}
		}
		c.JSON(httpErr.StatusCode, resp)
		return
	}

	c.JSON(http.StatusBadRequest, Resp{
		ErrorCode: ErrorCodeBadRequest,
		Message:   err.Error(),
	})
}

// InternalError sends 500 without exposing err.
func InternalError(c *gin.Context, err error) {
	Error(c, pkgErrors.ErrInternalServerError)
}

// TooManyRequests sends 429 and aborts the chain.
func TooManyRequests(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusTooManyRequests, Resp{
		ErrorCode: http.StatusTooManyRequests,
		Message:   pkgErrors.ErrTooManyRequests.Message,
	})
}
