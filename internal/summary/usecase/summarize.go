package usecase

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"time"

	"ai-task-assistant/internal/analytics"
	"ai-task-assistant/internal/metrics"
	"ai-task-assistant/internal/summary"
	"ai-task-assistant/internal/summary/repository"
)

// Canned bundle parts for a period without tasks.
var (
	emptyInsights        = []string{"Add a task to get started!"}
	emptyRecommendations = []string{"Try adding a new task."}
)

// Summarize analyzes the tasks and asks the model to explain the figures.
// An empty collection never reaches the model.
func (uc *implUseCase) Summarize(ctx context.Context, input summary.SummarizeInput) (summary.SummarizeOutput, error) {
	snap, err := uc.Analyze(ctx, input)
	if err != nil {
		return summary.SummarizeOutput{}, err
	}

	if snap.Empty {
		return summary.SummarizeOutput{
			Insight: summary.Insight{
				Summary:         snap.Message,
				UrgentTasks:     []string{},
				Insights:        emptyInsights,
				Recommendations: emptyRecommendations,
			},
			Snapshot: snap,
		}, nil
	}

	key, err := cacheKey(snap)
	if err != nil {
		uc.l.Warnf(ctx, "summary.usecase.Summarize: cache key: %v", err)
	}

	if cached, ok := uc.lookup(ctx, key); ok {
		return summary.SummarizeOutput{Insight: cached, Snapshot: snap, Cached: true}, nil
	}

	insight, err := uc.insight(ctx, snap)
	if err != nil {
		uc.l.Errorf(ctx, "summary.usecase.Summarize: insight: %v", err)
		return summary.SummarizeOutput{}, err
	}
	if insight.UrgentTasks == nil {
		insight.UrgentTasks = []string{}
	}

	uc.store(ctx, key, insight)

	return summary.SummarizeOutput{Insight: insight, Snapshot: snap}, nil
}

// Analyze validates the request and computes the snapshot without calling the model.
func (uc *implUseCase) Analyze(ctx context.Context, input summary.SummarizeInput) (analytics.Snapshot, error) {
	if !input.Period.IsValid() {
		return analytics.Snapshot{}, summary.ErrInvalidPeriod
	}
	if len(input.Tasks) > summary.MaxTasks {
		return analytics.Snapshot{}, summary.ErrTooManyTasks
	}

	now := input.Now
	if now.IsZero() {
		now = time.Now()
	}

	tasks := input.Tasks
	if input.FilterByPeriod {
		tasks = analytics.FilterByPeriod(tasks, input.Period, now, uc.loc)
		uc.l.Debugf(ctx, "summary.usecase.Analyze: period %s kept %d of %d tasks", input.Period, len(tasks), len(input.Tasks))
	}

	metrics.TasksAnalyzed.Observe(float64(len(tasks)))
	return analytics.Analyze(tasks, now, input.Period, uc.loc), nil
}

func (uc *implUseCase) lookup(ctx context.Context, key string) (summary.Insight, bool) {
	if uc.cache == nil || key == "" {
		return summary.Insight{}, false
	}

	insight, err := uc.cache.Get(ctx, key)
	switch {
	case err == nil:
		metrics.SummaryCacheTotal.WithLabelValues("hit").Inc()
		return insight, true
	case errors.Is(err, repository.ErrNotFound):
		metrics.SummaryCacheTotal.WithLabelValues("miss").Inc()
	default:
		metrics.SummaryCacheTotal.WithLabelValues("error").Inc()
		uc.l.Warnf(ctx, "summary.usecase.lookup: %v", err)
	}
	return summary.Insight{}, false
}

func (uc *implUseCase) store(ctx context.Context, key string, insight summary.Insight) {
	if uc.cache == nil || key == "" {
		return
	}
	if err := uc.cache.Set(ctx, key, insight); err != nil {
		uc.l.Warnf(ctx, "summary.usecase.store: %v", err)
	}
}

// cacheKey hashes every figure the prompt is built from. GeneratedAt is left
// out so identical figures computed moments apart share an entry.
func cacheKey(snap analytics.Snapshot) (string, error) {
	snap.GeneratedAt = time.Time{}
	raw, err := json.Marshal(snap)
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256(raw)
	return hex.EncodeToString(sum[:]), nil
}
