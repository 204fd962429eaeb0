package repository

import (
	"context"

	"ai-task-assistant/internal/summary"
)

// Repository caches generated insights by snapshot key.
type Repository interface {
	Get(ctx context.Context, key string) (summary.Insight, error)
	Set(ctx context.Context, key string, insight summary.Insight) error
}
