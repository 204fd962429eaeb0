package summary

import (
	"context"

	"ai-task-assistant/internal/analytics"
)

//go:generate mockery --name UseCase
type UseCase interface {
	Summarize(ctx context.Context, input SummarizeInput) (SummarizeOutput, error)
	Analyze(ctx context.Context, input SummarizeInput) (analytics.Snapshot, error)
	Tip(ctx context.Context) (TipOutput, error)
}
