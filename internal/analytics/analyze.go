// Package analytics turns a task collection into the statistics behind a summary.
// Every function here is pure: the same tasks, instant and location give the
// same snapshot.
package analytics

import (
	"sort"
	"time"

	"ai-task-assistant/internal/model"
	"ai-task-assistant/pkg/datemath"
)

// EmptyMessage is the canned summary for a period with no tasks.
func EmptyMessage(period model.Period) string {
	if period == model.PeriodToday {
		return "No tasks registered for today."
	}
	return "No tasks registered for this week."
}

// Analyze computes the snapshot for tasks as seen at now. Hours and weekdays
// are read in loc. The input slice is never modified.
func Analyze(tasks []model.Task, now time.Time, period model.Period, loc *time.Location) Snapshot {
	if loc == nil {
		loc = time.UTC
	}

	s := Snapshot{
		Period:              period,
		GeneratedAt:         now,
		Priorities:          []PriorityStat{},
		Categories:          []CategoryStat{},
		Overdue:             []OverdueTask{},
		Urgent:              []string{},
		Upcoming:            []UpcomingTask{},
		TimeSlots:           []SlotStat{},
		Weekdays:            []WeekdayStat{},
		PostponedCategories: []model.Category{},
		EasyCategories:      []model.Category{},
		Items:               []Item{},
		CompletionRate:      FormatRate(0, 0),
		OnTimeRate:          FormatRate(0, 0),
	}

	if len(tasks) == 0 {
		s.Empty = true
		s.Message = EmptyMessage(period)
		return s
	}

	s.Total = len(tasks)
	for _, t := range tasks {
		if t.Completed {
			s.Completed++
		}
	}
	s.Incomplete = s.Total - s.Completed
	s.CompletionRate = FormatRate(s.Completed, s.Total)

	s.Priorities = priorityStats(tasks)

	categories := categoryTallies(tasks)
	for _, c := range categories {
		s.Categories = append(s.Categories, CategoryStat{Category: c.category, Bucket: newBucket(c.completed, c.total)})
	}
	s.PostponedCategories = postponedCategories(categories)
	s.EasyCategories = easyCategories(categories)

	s.OnTimeCompleted = s.Completed
	s.OnTimeRate = FormatRate(s.OnTimeCompleted, s.Completed)

	for _, t := range tasks {
		daysUntil := datemath.CeilDays(now, t.DueAt)
		overdue := !t.Completed && t.DueAt.Before(now)

		s.Items = append(s.Items, Item{
			Title:     t.Title,
			Completed: t.Completed,
			Overdue:   overdue,
			Priority:  t.Priority,
			Category:  t.Category,
			DueDate:   t.DueAt.In(loc).Format(datemath.DateLayout),
			DaysUntil: daysUntil,
		})

		if t.Completed {
			continue
		}

		// Less than a day overdue still rounds to 0 days until due, so such
		// a task is both overdue and upcoming.
		if daysUntil >= 0 && daysUntil <= UpcomingWithinDays {
			s.Upcoming = append(s.Upcoming, UpcomingTask{Title: t.Title, DaysUntil: daysUntil})
		}

		if overdue {
			s.Overdue = append(s.Overdue, OverdueTask{
				Title:       t.Title,
				DaysOverdue: datemath.CeilDays(t.DueAt, now),
				Category:    t.Category,
			})
			continue
		}

		s.InProgress++
		if t.Priority == model.PriorityHigh && daysUntil <= UrgentWithinDays {
			s.Urgent = append(s.Urgent, t.Title)
		}
	}

	s.TimeSlots, s.MostProductiveSlot = slotStats(tasks, loc)
	s.Weekdays, s.MostProductiveWeekday = weekdayStats(tasks, loc)

	return s
}

func priorityStats(tasks []model.Task) []PriorityStat {
	out := make([]PriorityStat, 0, len(model.Priorities))
	for _, p := range model.Priorities {
		var total, completed int
		for _, t := range tasks {
			if t.Priority != p {
				continue
			}
			total++
			if t.Completed {
				completed++
			}
		}
		out = append(out, PriorityStat{Priority: p, Bucket: newBucket(completed, total)})
	}
	return out
}

type categoryTally struct {
	category  model.Category
	total     int
	completed int
}

// categoryTallies keeps categories in order of first appearance.
func categoryTallies(tasks []model.Task) []categoryTally {
	index := make(map[model.Category]int)
	var out []categoryTally
	for _, t := range tasks {
		i, ok := index[t.Category]
		if !ok {
			i = len(out)
			index[t.Category] = i
			out = append(out, categoryTally{category: t.Category})
		}
		out[i].total++
		if t.Completed {
			out[i].completed++
		}
	}
	return out
}

// postponedCategories compares the displayed (one decimal) rate, so 49.96 is
// not postponed.
func postponedCategories(tallies []categoryTally) []model.Category {
	out := []model.Category{}
	for _, c := range tallies {
		if c.total < MinCategorySamples {
			continue
		}
		if round1(percent(c.completed, c.total)) < PostponedRateBelow {
			out = append(out, c.category)
		}
	}
	return out
}

func easyCategories(tallies []categoryTally) []model.Category {
	type ranked struct {
		category model.Category
		rate     float64
	}
	var candidates []ranked
	for _, c := range tallies {
		if c.total < MinCategorySamples {
			continue
		}
		if r := percent(c.completed, c.total); r >= EasyRateAtLeast {
			candidates = append(candidates, ranked{category: c.category, rate: r})
		}
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].rate > candidates[j].rate
	})

	out := make([]model.Category, 0, len(candidates))
	for _, c := range candidates {
		out = append(out, c.category)
	}
	return out
}

// SlotOf buckets an hour of the day.
func SlotOf(hour int) TimeSlot {
	switch {
	case hour >= 6 && hour < 12:
		return SlotMorning
	case hour >= 12 && hour < 18:
		return SlotAfternoon
	case hour >= 18 && hour < 24:
		return SlotEvening
	default:
		return SlotNight
	}
}

// slotStats ranks every slot, empty ones included, so a collection with no
// completions still reports the first slot at 0%.
func slotStats(tasks []model.Task, loc *time.Location) ([]SlotStat, *Productive) {
	stats := make([]SlotStat, len(TimeSlots))
	index := make(map[TimeSlot]int, len(TimeSlots))
	for i, slot := range TimeSlots {
		stats[i].Slot = slot
		index[slot] = i
	}

	for _, t := range tasks {
		st := &stats[index[SlotOf(t.DueAt.In(loc).Hour())]]
		st.Total++
		if t.Completed {
			st.Completed++
		} else {
			st.Pending++
		}
	}

	ranked := make([]Productive, 0, len(stats))
	for i := range stats {
		stats[i].Rate = FormatRate(stats[i].Completed, stats[i].Total)
		ranked = append(ranked, Productive{
			Label:     string(stats[i].Slot),
			Rate:      percent(stats[i].Completed, stats[i].Total),
			Completed: stats[i].Completed,
		})
	}
	return stats, best(ranked)
}

// weekdayStats tallies Sunday through Saturday. Days without tasks are not ranked.
func weekdayStats(tasks []model.Task, loc *time.Location) ([]WeekdayStat, *Productive) {
	stats := make([]WeekdayStat, 7)
	for d := time.Sunday; d <= time.Saturday; d++ {
		stats[d] = WeekdayStat{Weekday: d, Name: d.String()}
	}

	for _, t := range tasks {
		st := &stats[t.DueAt.In(loc).Weekday()]
		st.Total++
		if t.Completed {
			st.Completed++
		}
	}

	var ranked []Productive
	for i := range stats {
		stats[i].Rate = FormatRate(stats[i].Completed, stats[i].Total)
		if stats[i].Total == 0 {
			continue
		}
		ranked = append(ranked, Productive{
			Label:     stats[i].Name,
			Rate:      percent(stats[i].Completed, stats[i].Total),
			Completed: stats[i].Completed,
		})
	}
	return stats, best(ranked)
}

// best orders by rate then completed count; ties keep input order.
func best(candidates []Productive) *Productive {
	if len(candidates) == 0 {
		return nil
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].Rate != candidates[j].Rate {
			return candidates[i].Rate > candidates[j].Rate
		}
		return candidates[i].Completed > candidates[j].Completed
	})
	winner := candidates[0]
	return &winner
}
