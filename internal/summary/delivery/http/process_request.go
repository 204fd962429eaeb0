package http

import (
	"github.com/gin-gonic/gin"
)

// processSummaryReq binds and validates the summary request body. It serves
// both the summary and the analytics routes.
func (h *handler) processSummaryReq(c *gin.Context) (summaryReq, error) {
	var req summaryReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}
