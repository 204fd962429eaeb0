package usecase

import (
	"context"
	"strings"
	"time"

	"ai-task-assistant/internal/metrics"
	"ai-task-assistant/internal/summary"
	"ai-task-assistant/pkg/llmprovider"
)

const opTip = "tip"

// Tip asks the model for a single free-text focus tip.
func (uc *implUseCase) Tip(ctx context.Context) (summary.TipOutput, error) {
	start := time.Now()
	resp, err := uc.llm.GenerateContent(ctx, llmprovider.NewTextRequest(tipPrompt))
	metrics.ModelRequestDuration.WithLabelValues(opTip).Observe(time.Since(start).Seconds())

	if err == nil && strings.TrimSpace(resp.Text()) == "" {
		err = llmprovider.ErrEmptyResponse
	}
	if err != nil {
		me := llmprovider.Classify(err)
		metrics.ModelRequestsTotal.WithLabelValues(opTip, string(me.Kind)).Inc()
		uc.l.Errorf(ctx, "summary.usecase.Tip: %v", me)
		return summary.TipOutput{}, me
	}

	metrics.ModelRequestsTotal.WithLabelValues(opTip, "ok").Inc()
	return summary.TipOutput{Tip: strings.TrimSpace(resp.Text())}, nil
}
