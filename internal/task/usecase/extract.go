package usecase

import (
	"context"
	"time"

	"ai-task-assistant/internal/metrics"
	"ai-task-assistant/internal/model"
	"ai-task-assistant/pkg/datemath"
	"ai-task-assistant/pkg/llmprovider"
)

const opExtractTask = "extract_task"

// extract asks the model for a candidate task. Failures come back as *llmprovider.ModelError.
func (uc *implUseCase) extract(ctx context.Context, input string, refs datemath.References) (model.CandidateTask, error) {
	req := llmprovider.NewTextRequest(buildExtractionPrompt(input, refs))
	req.ResponseSchema = extractionSchema
	req.Temperature = 0.2 // Low temperature for deterministic JSON output

	start := time.Now()
	var candidate model.CandidateTask
	_, err := llmprovider.GenerateObject(ctx, uc.llm, req, &candidate)
	metrics.ModelRequestDuration.WithLabelValues(opExtractTask).Observe(time.Since(start).Seconds())

	if err != nil {
		metrics.ModelRequestsTotal.WithLabelValues(opExtractTask, string(llmprovider.KindOf(err))).Inc()
		return model.CandidateTask{}, err
	}

	metrics.ModelRequestsTotal.WithLabelValues(opExtractTask, "ok").Inc()
	return candidate, nil
}
