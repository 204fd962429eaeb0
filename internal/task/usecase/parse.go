package usecase

import (
	"context"
	"time"

	"ai-task-assistant/internal/metrics"
	"ai-task-assistant/internal/model"
	"ai-task-assistant/internal/task"
)

// Parse validates raw input, asks the model for a candidate task and repairs
// it into a task due at a concrete local instant.
func (uc *implUseCase) Parse(ctx context.Context, input task.ParseInput) (task.ParseOutput, error) {
	if err := Validate(input.RawInput); err != nil {
		return task.ParseOutput{}, err
	}
	text := Preprocess(input.RawInput)

	now := input.Now
	if now.IsZero() {
		now = time.Now()
	}
	refs := uc.dateMath.References(now)

	candidate, err := uc.extract(ctx, text, refs)
	if err != nil {
		uc.l.Errorf(ctx, "task.usecase.Parse: extract: %v", err)
		return task.ParseOutput{}, err
	}

	normalized, repairs := Normalize(candidate, refs.Today, uc.dateMath.Location())
	for _, r := range repairs {
		metrics.NormalizerRepairsTotal.WithLabelValues(r.Field, r.Reason).Inc()
		uc.l.Warn(ctx, "normalizer repaired field",
			"field", r.Field,
			"from", r.From,
			"to", r.To,
			"reason", r.Reason,
		)
	}

	dueAt, ok := uc.dateMath.Combine(normalized.DueDate, normalized.DueTime, now)
	if !ok {
		metrics.CombinerFallbacksTotal.Inc()
		uc.l.Warnf(ctx, "task.usecase.Parse: could not combine %q %q, using today 09:00",
			normalized.DueDate, normalized.DueTime)
	}

	return task.ParseOutput{
		Task: model.Task{
			Title:    normalized.Title,
			DueAt:    dueAt,
			Priority: normalized.Priority,
			Category: normalized.Category,
		},
		Candidate: candidate,
		Repairs:   repairs,
	}, nil
}
