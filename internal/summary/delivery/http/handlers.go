package http

import (
	"github.com/gin-gonic/gin"

	"ai-task-assistant/pkg/response"
)

// Summarize godoc
// @Summary     Summarize a task collection
// @Description Computes completion, urgency and productivity figures for the tasks and asks the model to explain them.
// @Tags        Summary
// @Accept      json
// @Produce     json
// @Param       body body summaryReq true "Tasks and period"
// @Success     200  {object} summaryResp
// @Failure     400  {object} response.Resp "Invalid request"
// @Failure     429  {object} response.Resp "Rate limited"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Failure     502  {object} response.Resp "Unexpected model answer"
// @Failure     503  {object} response.Resp "Model unavailable"
// @Router      /api/v1/tasks/summary [POST]
func (h *handler) Summarize(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processSummaryReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Summarize(ctx, req.toInput(h.now()))
	if err != nil {
		h.l.Warnf(ctx, "uc.Summarize: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newSummaryResp(output))
}

// Analyze godoc
// @Summary     Compute task analytics
// @Description Returns the raw analytics snapshot for the tasks without calling the model.
// @Tags        Summary
// @Accept      json
// @Produce     json
// @Param       body body summaryReq true "Tasks and period"
// @Success     200  {object} analyticsResp
// @Failure     400  {object} response.Resp "Invalid request"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks/analytics [POST]
func (h *handler) Analyze(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processSummaryReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	snap, err := h.uc.Analyze(ctx, req.toInput(h.now()))
	if err != nil {
		h.l.Warnf(ctx, "uc.Analyze: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, snap)
}

// Tip godoc
// @Summary     Get a focus tip
// @Description Asks the model for one practical tip to improve study focus.
// @Tags        Summary
// @Produce     json
// @Success     200 {object} tipResp
// @Failure     429 {object} response.Resp "Rate limited"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Failure     503 {object} response.Resp "Model unavailable"
// @Router      /api/v1/tips [GET]
func (h *handler) Tip(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.Tip(ctx)
	if err != nil {
		h.l.Warnf(ctx, "uc.Tip: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newTipResp(output))
}
