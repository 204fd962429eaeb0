package http

import (
	"github.com/gin-gonic/gin"
)

// processParseReq binds the parse request body. Content rules are enforced by
// the use case so their messages reach the client verbatim.
func (h *handler) processParseReq(c *gin.Context) (parseReq, error) {
	var req parseReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}
