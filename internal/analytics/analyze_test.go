package analytics_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ai-task-assistant/internal/analytics"
	"ai-task-assistant/internal/model"
)

var now = time.Date(2024, 1, 10, 12, 0, 0, 0, time.UTC) // Wednesday

func at(day, hour int) time.Time {
	return time.Date(2024, 1, day, hour, 0, 0, 0, time.UTC)
}

func TestAnalyze_Empty(t *testing.T) {
	for _, period := range []model.Period{model.PeriodToday, model.PeriodWeek} {
		s := analytics.Analyze(nil, now, period, time.UTC)

		assert.True(t, s.Empty)
		assert.Equal(t, analytics.EmptyMessage(period), s.Message)
		assert.Equal(t, 0, s.Total)
		assert.Equal(t, 0, s.Completed)
		assert.Equal(t, "0", s.CompletionRate)
		assert.Equal(t, "0", s.OnTimeRate)
		assert.Empty(t, s.Urgent)
		assert.NotNil(t, s.Urgent)
		assert.Nil(t, s.MostProductiveSlot)
	}
	assert.NotEqual(t, analytics.EmptyMessage(model.PeriodToday), analytics.EmptyMessage(model.PeriodWeek))
}

func TestAnalyze_MixedCollection(t *testing.T) {
	tasks := []model.Task{
		{Title: "report", DueAt: at(9, 10), Priority: model.PriorityMedium, Category: model.CategoryWork, Completed: true},
		{Title: "slides", DueAt: at(10, 15), Priority: model.PriorityMedium, Category: model.CategoryWork, Completed: true},
		{Title: "run", DueAt: at(8, 7), Priority: model.PriorityHigh, Category: model.CategoryHealth, Completed: true},
		{Title: "budget", DueAt: at(9, 12), Priority: model.PriorityHigh, Category: model.CategoryWork},
	}

	s := analytics.Analyze(tasks, now, model.PeriodWeek, time.UTC)

	assert.False(t, s.Empty)
	assert.Equal(t, 4, s.Total)
	assert.Equal(t, 3, s.Completed)
	assert.Equal(t, 1, s.Incomplete)
	assert.Equal(t, 0, s.InProgress)
	assert.Equal(t, "75.0", s.CompletionRate)

	require.Len(t, s.Overdue, 1)
	assert.Equal(t, "budget", s.Overdue[0].Title)
	assert.Equal(t, 1, s.Overdue[0].DaysOverdue)
	assert.Equal(t, model.CategoryWork, s.Overdue[0].Category)
	assert.Empty(t, s.Urgent)
	assert.Empty(t, s.Upcoming)

	assert.Equal(t, []analytics.PriorityStat{
		{Priority: model.PriorityHigh, Bucket: analytics.Bucket{Total: 2, Completed: 1, Rate: "50.0"}},
		{Priority: model.PriorityMedium, Bucket: analytics.Bucket{Total: 2, Completed: 2, Rate: "100.0"}},
		{Priority: model.PriorityLow, Bucket: analytics.Bucket{Total: 0, Completed: 0, Rate: "0"}},
	}, s.Priorities)

	assert.Equal(t, []analytics.CategoryStat{
		{Category: model.CategoryWork, Bucket: analytics.Bucket{Total: 3, Completed: 2, Rate: "66.7"}},
		{Category: model.CategoryHealth, Bucket: analytics.Bucket{Total: 1, Completed: 1, Rate: "100.0"}},
	}, s.Categories)
	assert.Empty(t, s.PostponedCategories)
	assert.Empty(t, s.EasyCategories)

	assert.Equal(t, 3, s.OnTimeCompleted)
	assert.Equal(t, "100.0", s.OnTimeRate)

	require.Len(t, s.TimeSlots, 4)
	assert.Equal(t, analytics.SlotMorning, s.TimeSlots[0].Slot)
	assert.Equal(t, 2, s.TimeSlots[0].Total)
	assert.Equal(t, 0, s.TimeSlots[0].Pending)
	assert.Equal(t, 1, s.TimeSlots[1].Pending)
	assert.Equal(t, "50.0", s.TimeSlots[1].Rate)
	require.NotNil(t, s.MostProductiveSlot)
	assert.Equal(t, "morning", s.MostProductiveSlot.Label)
	assert.Equal(t, 100.0, s.MostProductiveSlot.Rate)
	assert.Equal(t, 2, s.MostProductiveSlot.Completed)

	// Monday and Wednesday tie at 100% with one completion; Monday comes first.
	require.NotNil(t, s.MostProductiveWeekday)
	assert.Equal(t, "Monday", s.MostProductiveWeekday.Label)
	assert.Equal(t, 2, s.Weekdays[time.Tuesday].Total)
	assert.Equal(t, "50.0", s.Weekdays[time.Tuesday].Rate)

	require.Len(t, s.Items, 4)
	assert.True(t, s.Items[3].Overdue)
	assert.Equal(t, -1, s.Items[3].DaysUntil)
	assert.Equal(t, "2024-01-09", s.Items[3].DueDate)
}

func TestAnalyze_UrgentAndUpcoming(t *testing.T) {
	tasks := []model.Task{
		{Title: "in 36h", DueAt: now.Add(36 * time.Hour), Priority: model.PriorityHigh, Category: model.CategoryWork},
		{Title: "in 49h", DueAt: now.Add(49 * time.Hour), Priority: model.PriorityHigh, Category: model.CategoryWork},
		{Title: "in 1h low", DueAt: now.Add(time.Hour), Priority: model.PriorityLow, Category: model.CategoryWork},
		{Title: "1h late", DueAt: now.Add(-time.Hour), Priority: model.PriorityHigh, Category: model.CategoryWork},
		{Title: "in 5d", DueAt: now.Add(5 * 24 * time.Hour), Priority: model.PriorityHigh, Category: model.CategoryWork},
		{Title: "done", DueAt: now.Add(time.Hour), Priority: model.PriorityHigh, Category: model.CategoryWork, Completed: true},
	}

	s := analytics.Analyze(tasks, now, model.PeriodWeek, time.UTC)

	assert.Equal(t, []string{"in 36h"}, s.Urgent)
	assert.Equal(t, []analytics.UpcomingTask{
		{Title: "in 36h", DaysUntil: 2},
		{Title: "in 49h", DaysUntil: 3},
		{Title: "in 1h low", DaysUntil: 1},
		{Title: "1h late", DaysUntil: 0},
	}, s.Upcoming)
	require.Len(t, s.Overdue, 1)
	assert.Equal(t, 1, s.Overdue[0].DaysOverdue)
	assert.Equal(t, 4, s.InProgress)
}

func TestAnalyze_CategoryPatterns(t *testing.T) {
	task := func(c model.Category, done bool) model.Task {
		return model.Task{Title: string(c), DueAt: now, Priority: model.PriorityLow, Category: c, Completed: done}
	}
	tasks := []model.Task{
		task(model.CategoryLearning, true),
		task(model.CategoryLearning, true),
		task(model.CategoryLearning, true),
		task(model.CategoryLearning, false),
		task(model.CategoryPersonal, false),
		task(model.CategoryPersonal, false),
		task(model.CategoryHealth, true),
		task(model.CategoryHealth, true),
		task(model.CategoryOther, false),
	}

	s := analytics.Analyze(tasks, now, model.PeriodWeek, time.UTC)

	assert.Equal(t, []model.Category{model.CategoryPersonal}, s.PostponedCategories)
	assert.Equal(t, []model.Category{model.CategoryHealth, model.CategoryLearning}, s.EasyCategories)
}

func TestAnalyze_NoCompletionsStillRanksSlots(t *testing.T) {
	tasks := []model.Task{
		{Title: "a", DueAt: at(11, 20), Priority: model.PriorityLow, Category: model.CategoryOther},
	}

	s := analytics.Analyze(tasks, now, model.PeriodToday, time.UTC)

	require.NotNil(t, s.MostProductiveSlot)
	assert.Equal(t, "morning", s.MostProductiveSlot.Label)
	assert.Equal(t, 0.0, s.MostProductiveSlot.Rate)
	require.NotNil(t, s.MostProductiveWeekday)
	assert.Equal(t, "Thursday", s.MostProductiveWeekday.Label)
	assert.Equal(t, 1, s.TimeSlots[2].Pending)
}

func TestAnalyze_UsesLocation(t *testing.T) {
	seoul, err := time.LoadLocation("Asia/Seoul")
	require.NoError(t, err)

	// 23:00 UTC Tuesday is 08:00 Wednesday in Seoul.
	tasks := []model.Task{
		{Title: "a", DueAt: time.Date(2024, 1, 9, 23, 0, 0, 0, time.UTC), Priority: model.PriorityLow, Category: model.CategoryOther, Completed: true},
	}

	s := analytics.Analyze(tasks, now, model.PeriodWeek, seoul)

	assert.Equal(t, 1, s.TimeSlots[0].Total)
	assert.Equal(t, 1, s.Weekdays[time.Wednesday].Total)
	assert.Equal(t, "2024-01-10", s.Items[0].DueDate)
}

func TestAnalyze_IsPure(t *testing.T) {
	tasks := []model.Task{
		{Title: "b", DueAt: at(12, 9), Priority: model.PriorityHigh, Category: model.CategoryWork},
		{Title: "a", DueAt: at(9, 9), Priority: model.PriorityLow, Category: model.CategoryHealth, Completed: true},
	}
	before := append([]model.Task(nil), tasks...)

	first := analytics.Analyze(tasks, now, model.PeriodWeek, time.UTC)
	second := analytics.Analyze(tasks, now, model.PeriodWeek, time.UTC)

	assert.Equal(t, first, second)
	assert.Equal(t, before, tasks)
}

func TestFormatRate(t *testing.T) {
	tests := []struct {
		completed, total int
		want             string
	}{
		{0, 0, "0"},
		{0, 5, "0.0"},
		{1, 3, "33.3"},
		{2, 3, "66.7"},
		{1, 16, "6.3"},
		{3, 4, "75.0"},
		{1, 1, "100.0"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, analytics.FormatRate(tt.completed, tt.total), "%d/%d", tt.completed, tt.total)
	}
}

func TestSlotOf(t *testing.T) {
	assert.Equal(t, analytics.SlotNight, analytics.SlotOf(0))
	assert.Equal(t, analytics.SlotNight, analytics.SlotOf(5))
	assert.Equal(t, analytics.SlotMorning, analytics.SlotOf(6))
	assert.Equal(t, analytics.SlotAfternoon, analytics.SlotOf(12))
	assert.Equal(t, analytics.SlotEvening, analytics.SlotOf(18))
	assert.Equal(t, analytics.SlotEvening, analytics.SlotOf(23))
}
