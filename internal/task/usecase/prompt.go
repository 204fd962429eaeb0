package usecase

import (
	"fmt"
	"strings"

	"ai-task-assistant/internal/model"
	"ai-task-assistant/pkg/datemath"
	"ai-task-assistant/pkg/llmprovider"
)

// extractionSchema is the structured output contract for task creation.
var extractionSchema = &llmprovider.Schema{
	Type: llmprovider.TypeObject,
	Properties: map[string]*llmprovider.Schema{
		"title": {
			Type:        llmprovider.TypeString,
			Description: "Short task title without date or time words",
		},
		"due_date": {
			Type:        llmprovider.TypeString,
			Description: "Due date in YYYY-MM-DD format",
		},
		"due_time": {
			Type:        llmprovider.TypeString,
			Description: `Due time in 24-hour HH:mm format, "09:00" when no time is given`,
		},
		"priority": {
			Type: llmprovider.TypeString,
			Enum: enumValues(model.Priorities),
		},
		"category": {
			Type: llmprovider.TypeString,
			Enum: enumValues(model.Categories),
		},
	},
	Required:         []string{"title", "due_date", "due_time", "priority", "category"},
	PropertyOrdering: []string{"title", "due_date", "due_time", "priority", "category"},
}

func enumValues[T ~string](values []T) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = string(v)
	}
	return out
}

// buildExtractionPrompt embeds the reference dates and the keyword rulebook.
func buildExtractionPrompt(input string, refs datemath.References) string {
	today := refs.Today.Format(datemath.DateLayout)
	tomorrow := refs.Tomorrow.Format(datemath.DateLayout)
	friday := refs.ThisWeekFriday.Format(datemath.DateLayout)
	monday := refs.NextWeekMonday.Format(datemath.DateLayout)

	var sb strings.Builder
	sb.WriteString("Convert the following natural-language input into a task as JSON.\n\n")
	fmt.Fprintf(&sb, "Current date: %s (%s)\n", today, refs.Now.Weekday())
	fmt.Fprintf(&sb, "Current time: %s\n", refs.Now.Format(datemath.ClockLayout))
	fmt.Fprintf(&sb, "Current weekday: %s\n\n", refs.Now.Weekday())
	fmt.Fprintf(&sb, "Input: %q\n\n", input)

	sb.WriteString("=== Conversion rules (must be followed) ===\n\n")

	sb.WriteString("1. title:\n")
	sb.WriteString("   - Extract only the core action, concise\n")
	sb.WriteString("   - Remove date and time expressions\n")
	sb.WriteString(`   - e.g. "prepare the important team meeting by 3pm tomorrow" -> "Prepare team meeting"` + "\n\n")

	sb.WriteString("2. due_date (YYYY-MM-DD):\n")
	fmt.Fprintf(&sb, "   - \"today\" -> %s\n", today)
	fmt.Fprintf(&sb, "   - \"tomorrow\" -> %s\n", tomorrow)
	fmt.Fprintf(&sb, "   - \"the day after tomorrow\" -> %s\n", refs.DayAfterTomorrow.Format(datemath.DateLayout))
	fmt.Fprintf(&sb, "   - \"this <weekday>\" -> nearest such weekday, e.g. \"this Friday\" -> %s\n", friday)
	fmt.Fprintf(&sb, "   - \"next <weekday>\" -> that weekday next week, e.g. \"next Monday\" -> %s\n", monday)
	fmt.Fprintf(&sb, "   - no date mentioned -> %s\n\n", today)

	sb.WriteString("3. due_time (24-hour HH:mm):\n")
	sb.WriteString("   - \"morning\" -> 09:00\n")
	sb.WriteString("   - \"lunch\" / \"noon\" -> 12:00\n")
	sb.WriteString("   - \"afternoon\" -> 14:00\n")
	sb.WriteString("   - \"evening\" -> 18:00\n")
	sb.WriteString("   - \"night\" -> 21:00\n")
	sb.WriteString("   - \"10am\" -> 10:00, \"3pm\" -> 15:00, \"3:30pm\" -> 15:30\n")
	sb.WriteString("   - no time mentioned -> 09:00\n\n")

	sb.WriteString("4. priority:\n")
	sb.WriteString("   - \"high\" if any of: urgent, urgently, important, asap, quickly, must, definitely\n")
	sb.WriteString("   - \"low\" if any of: leisurely, slowly, someday, whenever\n")
	sb.WriteString("   - \"medium\" if any of: normal, moderately, or no priority keyword at all\n\n")

	sb.WriteString("5. category:\n")
	sb.WriteString("   - \"work\" if any of: meeting, report, project, work\n")
	sb.WriteString("   - \"personal\" if any of: shopping, friend, family, personal\n")
	sb.WriteString("   - \"health\" if any of: exercise, workout, hospital, health, yoga\n")
	sb.WriteString("   - \"learning\" if any of: study, book, lecture, course, learning\n")
	sb.WriteString("   - \"other\" when none of the keywords match\n\n")

	sb.WriteString("=== Examples ===\n")
	fmt.Fprintf(&sb, "Input: \"prepare the important team meeting by 3pm tomorrow\"\n"+
		"Output: {\"title\":\"Prepare team meeting\",\"due_date\":\"%s\",\"due_time\":\"15:00\",\"priority\":\"high\",\"category\":\"work\"}\n\n", tomorrow)
	fmt.Fprintf(&sb, "Input: \"meet a friend for lunch this Friday\"\n"+
		"Output: {\"title\":\"Meet a friend\",\"due_date\":\"%s\",\"due_time\":\"12:00\",\"priority\":\"medium\",\"category\":\"personal\"}\n\n", friday)
	fmt.Fprintf(&sb, "Input: \"exercise next Monday morning\"\n"+
		"Output: {\"title\":\"Exercise\",\"due_date\":\"%s\",\"due_time\":\"09:00\",\"priority\":\"medium\",\"category\":\"health\"}\n", monday)

	return sb.String()
}
