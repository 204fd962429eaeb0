package memory

import (
	"context"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"ai-task-assistant/internal/summary"
	"ai-task-assistant/internal/summary/repository"
)

// DefaultSize is used when size is not positive.
const DefaultSize = 1000

type implRepository struct {
	entries *expirable.LRU[string, summary.Insight]
}

// New creates an in-process summary cache bounded by size and ttl.
func New(size int, ttl time.Duration) repository.Repository {
	if size <= 0 {
		size = DefaultSize
	}
	return &implRepository{
		entries: expirable.NewLRU[string, summary.Insight](size, nil, ttl),
	}
}

func (r *implRepository) Get(_ context.Context, key string) (summary.Insight, error) {
	insight, ok := r.entries.Get(key)
	if !ok {
		return summary.Insight{}, repository.ErrNotFound
	}
	return insight, nil
}

func (r *implRepository) Set(_ context.Context, key string, insight summary.Insight) error {
	r.entries.Add(key, insight)
	return nil
}
