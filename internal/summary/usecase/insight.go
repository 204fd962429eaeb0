package usecase

import (
	"context"
	"time"

	"ai-task-assistant/internal/analytics"
	"ai-task-assistant/internal/metrics"
	"ai-task-assistant/internal/summary"
	"ai-task-assistant/pkg/llmprovider"
)

const opSummarize = "summarize"

// insight asks the model for the insight bundle. Failures come back as *llmprovider.ModelError.
func (uc *implUseCase) insight(ctx context.Context, snap analytics.Snapshot) (summary.Insight, error) {
	req := llmprovider.NewTextRequest(buildInsightPrompt(snap))
	req.ResponseSchema = insightSchema
	req.Temperature = 0.7

	start := time.Now()
	var out summary.Insight
	_, err := llmprovider.GenerateObject(ctx, uc.llm, req, &out)
	metrics.ModelRequestDuration.WithLabelValues(opSummarize).Observe(time.Since(start).Seconds())

	if err != nil {
		metrics.ModelRequestsTotal.WithLabelValues(opSummarize, string(llmprovider.KindOf(err))).Inc()
		return summary.Insight{}, err
	}

	metrics.ModelRequestsTotal.WithLabelValues(opSummarize, "ok").Inc()
	return out, nil
}
