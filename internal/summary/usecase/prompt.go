package usecase

import (
	"fmt"
	"strings"

	"ai-task-assistant/internal/analytics"
	"ai-task-assistant/internal/model"
	"ai-task-assistant/pkg/llmprovider"
)

// insightSchema is the structured output contract for summaries.
var insightSchema = &llmprovider.Schema{
	Type: llmprovider.TypeObject,
	Properties: map[string]*llmprovider.Schema{
		"summary": {
			Type:        llmprovider.TypeString,
			Description: "Summary of the tasks including the completion rate",
		},
		"urgentTasks": {
			Type:        llmprovider.TypeArray,
			Description: "Titles of urgent tasks",
			Items:       &llmprovider.Schema{Type: llmprovider.TypeString},
		},
		"insights": {
			Type:  llmprovider.TypeArray,
			Items: &llmprovider.Schema{Type: llmprovider.TypeString},
		},
		"recommendations": {
			Type:  llmprovider.TypeArray,
			Items: &llmprovider.Schema{Type: llmprovider.TypeString},
		},
	},
	Required:         []string{"summary", "urgentTasks", "insights", "recommendations"},
	PropertyOrdering: []string{"summary", "urgentTasks", "insights", "recommendations"},
}

const tipPrompt = "Give me one practical tip to improve focus while studying. Answer in two or three sentences."

var slotNames = map[string]string{
	string(analytics.SlotMorning):   "morning",
	string(analytics.SlotAfternoon): "afternoon",
	string(analytics.SlotEvening):   "evening",
	string(analytics.SlotNight):     "night",
}

func dueLabel(days int) string {
	switch {
	case days > 0:
		return fmt.Sprintf("(%d days later)", days)
	case days == 0:
		return "(today)"
	default:
		return fmt.Sprintf("(%d days late)", -days)
	}
}

func joinOr(items []string, none string) string {
	if len(items) == 0 {
		return none
	}
	return strings.Join(items, ", ")
}

func categoryNames(cats []model.Category) []string {
	out := make([]string, len(cats))
	for i, c := range cats {
		out[i] = string(c)
	}
	return out
}

// buildInsightPrompt embeds every snapshot figure. It is only called for a
// non-empty snapshot.
func buildInsightPrompt(s analytics.Snapshot) string {
	var sb strings.Builder
	sb.WriteString("Analyze the following task list in depth and provide a precise summary with actionable insights.\n\n")

	sb.WriteString("=== Analysis period ===\n")
	if s.Period == model.PeriodToday {
		sb.WriteString("Today's tasks (focus on today's concentration and the priority of what is left)\n\n")
	} else {
		sb.WriteString("This week's tasks (focus on weekly patterns and suggestions for next week)\n\n")
	}

	sb.WriteString("=== Tasks ===\n")
	for i, it := range s.Items {
		status := "incomplete"
		if it.Completed {
			status = "completed"
		}
		if it.Overdue {
			status += ", overdue"
		}
		fmt.Fprintf(&sb, "%d. %s (%s, priority: %s, category: %s, due: %s %s)\n",
			i+1, it.Title, status, it.Priority, it.Category, it.DueDate, dueLabel(it.DaysUntil))
	}

	sb.WriteString("\n=== Key statistics ===\n")
	fmt.Fprintf(&sb, "- Total tasks: %d\n", s.Total)
	fmt.Fprintf(&sb, "- Completed: %d\n", s.Completed)
	fmt.Fprintf(&sb, "- Incomplete: %d (in progress: %d)\n", s.Incomplete, s.InProgress)
	fmt.Fprintf(&sb, "- Overall completion rate: %s%%\n", s.CompletionRate)

	sb.WriteString("\n=== Completion by priority ===\n")
	for _, p := range s.Priorities {
		fmt.Fprintf(&sb, "- %s priority: %d of %d completed (completion rate %s%%)\n",
			p.Priority, p.Completed, p.Total, p.Rate)
	}

	sb.WriteString("\n=== Completion by category ===\n")
	for _, c := range s.Categories {
		fmt.Fprintf(&sb, "- %s: %d of %d completed (completion rate %s%%)\n",
			c.Category, c.Completed, c.Total, c.Rate)
	}

	sb.WriteString("\n=== Time management ===\n")
	fmt.Fprintf(&sb, "- Deadline compliance: %d completed tasks finished before their due date (%s%%)\n",
		s.OnTimeCompleted, s.OnTimeRate)
	overdue := make([]string, len(s.Overdue))
	for i, o := range s.Overdue {
		overdue[i] = fmt.Sprintf("%s (%d days late)", o.Title, o.DaysOverdue)
	}
	if len(overdue) > 0 {
		fmt.Fprintf(&sb, "- Overdue tasks: %d (%s)\n", len(overdue), strings.Join(overdue, ", "))
	} else {
		sb.WriteString("- Overdue tasks: 0\n")
	}
	pending := make([]string, len(s.TimeSlots))
	for i, ts := range s.TimeSlots {
		pending[i] = fmt.Sprintf("%s %d", slotNames[string(ts.Slot)], ts.Pending)
	}
	fmt.Fprintf(&sb, "- Incomplete tasks by time of day: %s\n", strings.Join(pending, ", "))

	sb.WriteString("\n=== Productivity patterns ===\n")
	if p := s.MostProductiveSlot; p != nil {
		fmt.Fprintf(&sb, "- Most productive time of day: %s (completion rate %.1f%%, %d completed)\n",
			slotNames[p.Label], p.Rate, p.Completed)
	} else {
		sb.WriteString("- Most productive time of day: not enough data\n")
	}
	if p := s.MostProductiveWeekday; p != nil {
		fmt.Fprintf(&sb, "- Most productive weekday: %s (completion rate %.1f%%, %d completed)\n",
			p.Label, p.Rate, p.Completed)
	} else {
		sb.WriteString("- Most productive weekday: not enough data\n")
	}
	fmt.Fprintf(&sb, "- Frequently postponed task types: %s\n", joinOr(categoryNames(s.PostponedCategories), "none"))
	fmt.Fprintf(&sb, "- Easy to complete task types: %s\n", joinOr(categoryNames(s.EasyCategories), "none"))

	sb.WriteString("\n=== Urgent ===\n")
	if len(s.Urgent) > 0 {
		fmt.Fprintf(&sb, "- Urgent tasks: %s\n", strings.Join(s.Urgent, ", "))
	} else {
		sb.WriteString("- No urgent tasks\n")
	}
	if len(s.Upcoming) > 0 {
		upcoming := make([]string, len(s.Upcoming))
		for i, u := range s.Upcoming {
			upcoming[i] = fmt.Sprintf("%s (%d days later)", u.Title, u.DaysUntil)
		}
		fmt.Fprintf(&sb, "- Due within 3 days: %s\n", strings.Join(upcoming, ", "))
	}

	sb.WriteString("\n=== Requirements ===\n\n")
	sb.WriteString("1. summary:\n")
	if s.Period == model.PeriodToday {
		sb.WriteString("   - Emphasize today's focus and current progress\n")
	} else {
		sb.WriteString("   - Summarize the weekly completion rate and overall progress\n")
	}
	sb.WriteString("   - Include the completion rate and briefly mention the priority pattern\n")
	fmt.Fprintf(&sb, "   - Open on a positive note (e.g. \"You completed %d tasks!\" or \"You finished %s%% of your tasks!\")\n\n",
		s.Completed, s.CompletionRate)

	sb.WriteString("2. urgentTasks:\n")
	sb.WriteString("   - Only incomplete, high priority tasks due within 2 days\n")
	sb.WriteString("   - Overdue tasks may be included when their priority is high\n\n")

	sb.WriteString("3. insights (give 3 to 5):\n")
	if s.Period == model.PeriodToday {
		sb.WriteString("   a) Focus today: how today's tasks are spread over the day and when focus is highest\n")
		sb.WriteString("   b) Remaining priorities: what to focus on for the rest of today\n")
		sb.WriteString("   c) Priority pattern: how well high priority tasks are handled\n")
		sb.WriteString("   d) Time management: deadline compliance and any overdue tasks\n")
	} else {
		sb.WriteString("   a) Weekly completion: overall completion rate and the priority pattern\n")
		sb.WriteString("   b) Productivity: the most productive weekday and time of day\n")
		sb.WriteString("   c) Time management: deadline compliance and how often tasks slip\n")
		sb.WriteString("   d) Categories: which kinds of tasks get done and which get postponed\n")
		sb.WriteString("   e) Load: when most tasks are concentrated\n")
	}
	sb.WriteString("   - Each insight must be concrete and actionable\n")
	for _, p := range s.Priorities {
		if p.Priority == model.PriorityHigh {
			fmt.Fprintf(&sb, "   - Mention strengths too (e.g. \"High priority tasks are at a solid %s%% completion rate\")\n\n", p.Rate)
		}
	}

	sb.WriteString("4. recommendations (give 3 to 4):\n")
	if s.Period == model.PeriodToday {
		sb.WriteString("   a) Rest of the day: how to use the remaining time well\n")
		sb.WriteString("   b) Reprioritize: handle urgent tasks first\n")
		sb.WriteString("   c) Scheduling: put important work in the hours with the best focus\n")
	} else {
		sb.WriteString("   a) Next week: how to adjust next week's schedule based on this week's pattern\n")
		sb.WriteString("   b) Reprioritize: rearrange the schedule using the priority pattern\n")
		sb.WriteString("   c) Spread the load: if some hours or days are overloaded, suggest how to spread them\n")
		sb.WriteString("   d) Productivity: plan around the most productive weekday and time of day\n")
	}
	sb.WriteString("   - Give concrete, practical advice\n\n")

	sb.WriteString("=== Tone ===\n")
	sb.WriteString("- Natural and friendly, conversational rather than formal\n")
	sb.WriteString("- No emoji or decorative symbols\n")
	sb.WriteString("- Positive and encouraging; highlight what is going well first\n")
	sb.WriteString("- Present improvements as things that can get even better\n")
	sb.WriteString("- Short sentences the user can act on right away\n")

	return sb.String()
}
