package usecase_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/googleapi"

	"ai-task-assistant/internal/model"
	"ai-task-assistant/internal/summary"
	"ai-task-assistant/internal/summary/repository/memory"
	"ai-task-assistant/internal/summary/usecase"
	"ai-task-assistant/pkg/llmprovider"
	"ai-task-assistant/pkg/log"
)

type mockGenerator struct {
	text    string
	err     error
	calls   int
	lastReq *llmprovider.Request
}

func (m *mockGenerator) GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error) {
	m.calls++
	m.lastReq = req
	if m.err != nil {
		return nil, m.err
	}
	return &llmprovider.Response{
		Content:      llmprovider.Message{Role: "model", Parts: []llmprovider.Part{{Text: m.text}}},
		ProviderName: "mock",
	}, nil
}

const insightJSON = `{
	"summary": "You finished 75.0% of your tasks this week!",
	"urgentTasks": ["budget"],
	"insights": ["a", "b", "c"],
	"recommendations": ["x", "y", "z"]
}`

var now = time.Date(2024, 1, 10, 12, 0, 0, 0, time.UTC)

func at(day, hour int) time.Time {
	return time.Date(2024, 1, day, hour, 0, 0, 0, time.UTC)
}

func sampleTasks() []model.Task {
	return []model.Task{
		{Title: "report", DueAt: at(9, 10), Priority: model.PriorityMedium, Category: model.CategoryWork, Completed: true},
		{Title: "slides", DueAt: at(10, 15), Priority: model.PriorityMedium, Category: model.CategoryWork, Completed: true},
		{Title: "run", DueAt: at(8, 7), Priority: model.PriorityHigh, Category: model.CategoryHealth, Completed: true},
		{Title: "budget", DueAt: at(9, 12), Priority: model.PriorityHigh, Category: model.CategoryWork},
	}
}

func newUseCase(gen llmprovider.Generator, cached bool) summary.UseCase {
	if !cached {
		return usecase.New(log.NewNop(), gen, nil, time.UTC)
	}
	return usecase.New(log.NewNop(), gen, memory.New(10, time.Minute), time.UTC)
}

func TestSummarize_EmptyCollection(t *testing.T) {
	tests := []struct {
		period      model.Period
		wantSummary string
	}{
		{model.PeriodToday, "No tasks registered for today."},
		{model.PeriodWeek, "No tasks registered for this week."},
	}

	for _, tt := range tests {
		t.Run(string(tt.period), func(t *testing.T) {
			gen := &mockGenerator{}
			uc := newUseCase(gen, false)

			out, err := uc.Summarize(context.Background(), summary.SummarizeInput{Period: tt.period, Now: now})

			require.NoError(t, err)
			assert.Equal(t, tt.wantSummary, out.Insight.Summary)
			assert.Empty(t, out.Insight.UrgentTasks)
			assert.Equal(t, []string{"Add a task to get started!"}, out.Insight.Insights)
			assert.Equal(t, []string{"Try adding a new task."}, out.Insight.Recommendations)
			assert.True(t, out.Snapshot.Empty)
			assert.Equal(t, 0, gen.calls)
		})
	}
}

func TestSummarize_InvalidInput(t *testing.T) {
	gen := &mockGenerator{}
	uc := newUseCase(gen, false)

	_, err := uc.Summarize(context.Background(), summary.SummarizeInput{Period: "month", Tasks: sampleTasks()})
	assert.ErrorIs(t, err, summary.ErrInvalidPeriod)

	tooMany := make([]model.Task, summary.MaxTasks+1)
	_, err = uc.Summarize(context.Background(), summary.SummarizeInput{Period: model.PeriodWeek, Tasks: tooMany})
	assert.ErrorIs(t, err, summary.ErrTooManyTasks)

	assert.Equal(t, 0, gen.calls)
}

func TestSummarize_Success(t *testing.T) {
	gen := &mockGenerator{text: insightJSON}
	uc := newUseCase(gen, false)

	out, err := uc.Summarize(context.Background(), summary.SummarizeInput{
		Tasks:  sampleTasks(),
		Period: model.PeriodWeek,
		Now:    now,
	})

	require.NoError(t, err)
	assert.Equal(t, "You finished 75.0% of your tasks this week!", out.Insight.Summary)
	assert.Equal(t, []string{"budget"}, out.Insight.UrgentTasks)
	assert.Len(t, out.Insight.Insights, 3)
	assert.False(t, out.Cached)
	assert.Equal(t, "75.0", out.Snapshot.CompletionRate)

	require.NotNil(t, gen.lastReq)
	require.NotNil(t, gen.lastReq.ResponseSchema)
	prompt := gen.lastReq.Messages[0].Parts[0].Text
	assert.Contains(t, prompt, "This week's tasks")
	assert.Contains(t, prompt, "- Overall completion rate: 75.0%")
	assert.Contains(t, prompt, "4. budget (incomplete, overdue, priority: high, category: work, due: 2024-01-09 (1 days late))")
	assert.Contains(t, prompt, "- work: 2 of 3 completed (completion rate 66.7%)")
	assert.Contains(t, prompt, "- Overdue tasks: 1 (budget (1 days late))")
	assert.Contains(t, prompt, "- Most productive time of day: morning (completion rate 100.0%, 2 completed)")
	assert.Contains(t, prompt, "- No urgent tasks")
}

func TestSummarize_TodayPrompt(t *testing.T) {
	gen := &mockGenerator{text: insightJSON}
	uc := newUseCase(gen, false)

	_, err := uc.Summarize(context.Background(), summary.SummarizeInput{
		Tasks:  sampleTasks(),
		Period: model.PeriodToday,
		Now:    now,
	})

	require.NoError(t, err)
	prompt := gen.lastReq.Messages[0].Parts[0].Text
	assert.Contains(t, prompt, "Today's tasks")
	assert.Contains(t, prompt, "Rest of the day")
	assert.NotContains(t, prompt, "Next week:")
}

func TestSummarize_UsesCache(t *testing.T) {
	gen := &mockGenerator{text: insightJSON}
	uc := newUseCase(gen, true)
	input := summary.SummarizeInput{Tasks: sampleTasks(), Period: model.PeriodWeek, Now: now}

	first, err := uc.Summarize(context.Background(), input)
	require.NoError(t, err)
	assert.False(t, first.Cached)

	second, err := uc.Summarize(context.Background(), input)
	require.NoError(t, err)
	assert.True(t, second.Cached)
	assert.Equal(t, first.Insight, second.Insight)
	assert.Equal(t, 1, gen.calls)

	// A different period is a different entry.
	input.Period = model.PeriodToday
	_, err = uc.Summarize(context.Background(), input)
	require.NoError(t, err)
	assert.Equal(t, 2, gen.calls)
}

func TestSummarize_FilterByPeriod(t *testing.T) {
	gen := &mockGenerator{text: insightJSON}
	uc := newUseCase(gen, false)

	// Every sample task is due before today, so today's view is empty.
	out, err := uc.Summarize(context.Background(), summary.SummarizeInput{
		Tasks:          []model.Task{sampleTasks()[0], sampleTasks()[2], sampleTasks()[3]},
		Period:         model.PeriodToday,
		FilterByPeriod: true,
		Now:            now,
	})

	require.NoError(t, err)
	assert.True(t, out.Snapshot.Empty)
	assert.Equal(t, "No tasks registered for today.", out.Insight.Summary)
	assert.Equal(t, 0, gen.calls)
}

func TestSummarize_ModelErrors(t *testing.T) {
	tests := []struct {
		name     string
		gen      *mockGenerator
		wantKind llmprovider.Kind
	}{
		{name: "wrong shape", gen: &mockGenerator{text: `{"summary": 1}`}, wantKind: llmprovider.KindSchemaViolation},
		{name: "not json", gen: &mockGenerator{text: "I cannot help with that."}, wantKind: llmprovider.KindSchemaViolation},
		{name: "auth", gen: &mockGenerator{err: &googleapi.Error{Code: http.StatusForbidden}}, wantKind: llmprovider.KindAuth},
		{name: "server error", gen: &mockGenerator{err: &googleapi.Error{Code: http.StatusServiceUnavailable}}, wantKind: llmprovider.KindTransport},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := newUseCase(tt.gen, true)
			input := summary.SummarizeInput{Tasks: sampleTasks(), Period: model.PeriodWeek, Now: now}

			_, err := uc.Summarize(context.Background(), input)

			var me *llmprovider.ModelError
			require.True(t, errors.As(err, &me))
			assert.Equal(t, tt.wantKind, me.Kind)

			// Failures are never cached.
			_, _ = uc.Summarize(context.Background(), input)
			assert.Equal(t, 2, tt.gen.calls)
		})
	}
}

func TestAnalyze_NoModelCall(t *testing.T) {
	gen := &mockGenerator{}
	uc := newUseCase(gen, false)

	snap, err := uc.Analyze(context.Background(), summary.SummarizeInput{Tasks: sampleTasks(), Period: model.PeriodWeek, Now: now})

	require.NoError(t, err)
	assert.Equal(t, 4, snap.Total)
	assert.Equal(t, 0, gen.calls)
}

func TestTip(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		gen := &mockGenerator{text: "  Study in 25 minute blocks.\n"}
		out, err := newUseCase(gen, false).Tip(context.Background())

		require.NoError(t, err)
		assert.Equal(t, "Study in 25 minute blocks.", out.Tip)
		assert.Nil(t, gen.lastReq.ResponseSchema)
	})

	t.Run("empty text", func(t *testing.T) {
		_, err := newUseCase(&mockGenerator{text: "  "}, false).Tip(context.Background())
		assert.Equal(t, llmprovider.KindSchemaViolation, llmprovider.KindOf(err))
	})

	t.Run("rate limited", func(t *testing.T) {
		gen := &mockGenerator{err: &googleapi.Error{Code: http.StatusTooManyRequests}}
		_, err := newUseCase(gen, false).Tip(context.Background())
		assert.Equal(t, llmprovider.KindRateLimited, llmprovider.KindOf(err))
	})
}
