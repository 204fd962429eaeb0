package http

import (
	"github.com/gin-gonic/gin"

	"ai-task-assistant/pkg/response"
)

// Parse godoc
// @Summary     Create a task from natural language
// @Description Turns free-form text such as "prepare the team meeting by 3pm tomorrow" into a structured task.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       body body parseReq true "Natural-language input"
// @Success     200  {object} parseResp
// @Failure     400  {object} response.Resp "Invalid input"
// @Failure     429  {object} response.Resp "Rate limited"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Failure     502  {object} response.Resp "Unexpected model answer"
// @Failure     503  {object} response.Resp "Model unavailable"
// @Router      /api/v1/tasks/parse [POST]
func (h *handler) Parse(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processParseReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Parse(ctx, req.toInput(h.now()))
	if err != nil {
		h.l.Warnf(ctx, "uc.Parse: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newParseResp(output))
}
