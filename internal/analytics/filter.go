package analytics

import (
	"time"

	"ai-task-assistant/internal/model"
	"ai-task-assistant/pkg/datemath"
)

// FilterByPeriod keeps the tasks a period is about. "today" keeps everything
// due from the start of today onwards; "week" keeps the Sunday-based week
// containing now. Unknown periods return the input unchanged.
func FilterByPeriod(tasks []model.Task, period model.Period, now time.Time, loc *time.Location) []model.Task {
	if loc == nil {
		loc = time.UTC
	}
	p := datemath.NewParserIn(loc)

	var from, to time.Time
	switch period {
	case model.PeriodToday:
		from = p.StartOfDay(now)
	case model.PeriodWeek:
		from = p.StartOfWeek(now)
		to = from.AddDate(0, 0, 7)
	default:
		return tasks
	}

	out := make([]model.Task, 0, len(tasks))
	for _, t := range tasks {
		if t.DueAt.Before(from) {
			continue
		}
		if !to.IsZero() && !t.DueAt.Before(to) {
			continue
		}
		out = append(out, t)
	}
	return out
}
