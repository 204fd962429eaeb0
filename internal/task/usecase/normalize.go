package usecase

import (
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"ai-task-assistant/internal/model"
	"ai-task-assistant/internal/task"
	"ai-task-assistant/pkg/datemath"
)

const (
	// DefaultTitle replaces a title that is empty after trimming.
	DefaultTitle = "New task"
	// DefaultDueTime is used when the model gives no usable time.
	DefaultDueTime = "09:00"

	ellipsis = "..."
)

var clockRe = regexp.MustCompile(`^([0-1][0-9]|2[0-3]):[0-5][0-9]$`)

// Repair reasons.
const (
	reasonEmpty      = "empty"
	reasonTooLong    = "too_long"
	reasonUnparsable = "unparsable"
	reasonPast       = "past"
	reasonInvalid    = "invalid"
)

// Normalize repairs a candidate into an always-valid task. It never fails.
// reference is the request's "today"; only its calendar date in loc matters.
func Normalize(c model.CandidateTask, reference time.Time, loc *time.Location) (task.NormalizedTask, []task.Repair) {
	var repairs []task.Repair
	repair := func(field, from, to, reason string) {
		repairs = append(repairs, task.Repair{Field: field, From: from, To: to, Reason: reason})
	}

	out := task.NormalizedTask{}

	// Title
	title := strings.TrimSpace(c.Title)
	switch n := utf8.RuneCountInString(title); {
	case n == 0:
		out.Title = DefaultTitle
		repair("title", c.Title, out.Title, reasonEmpty)
	case n > task.TitleMaxLength:
		runes := []rune(title)
		out.Title = string(runes[:task.TitleMaxLength-len(ellipsis)]) + ellipsis
		repair("title", c.Title, out.Title, reasonTooLong)
	default:
		out.Title = title
	}

	// Date
	refDay := dateOnly(reference, loc)
	refDate := refDay.Format(datemath.DateLayout)
	due, ok := parseDate(c.DueDate, loc)
	switch {
	case !ok:
		out.DueDate = refDate
		repair("due_date", c.DueDate, out.DueDate, reasonUnparsable)
	case due.Before(refDay):
		out.DueDate = refDate
		repair("due_date", c.DueDate, out.DueDate, reasonPast)
	default:
		out.DueDate = due.Format(datemath.DateLayout)
	}

	// Time
	if clockRe.MatchString(c.DueTime) {
		out.DueTime = c.DueTime
	} else {
		out.DueTime = DefaultDueTime
		repair("due_time", c.DueTime, out.DueTime, invalidOrEmpty(c.DueTime))
	}

	// Priority
	if p := model.Priority(strings.ToLower(strings.TrimSpace(c.Priority))); p.IsValid() {
		out.Priority = p
	} else {
		out.Priority = model.PriorityMedium
		repair("priority", c.Priority, string(out.Priority), invalidOrEmpty(c.Priority))
	}

	// Category
	if cat := model.Category(strings.ToLower(strings.TrimSpace(c.Category))); cat.IsValid() {
		out.Category = cat
	} else {
		out.Category = model.CategoryOther
		repair("category", c.Category, string(out.Category), invalidOrEmpty(c.Category))
	}

	return out, repairs
}

func invalidOrEmpty(v string) string {
	if strings.TrimSpace(v) == "" {
		return reasonEmpty
	}
	return reasonInvalid
}

func dateOnly(t time.Time, loc *time.Location) time.Time {
	t = t.In(loc)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
}

// parseDate accepts YYYY-MM-DD and, leniently, a full RFC 3339 timestamp.
func parseDate(s string, loc *time.Location) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if d, err := time.ParseInLocation(datemath.DateLayout, s, loc); err == nil {
		return d, true
	}
	if ts, err := time.Parse(time.RFC3339, s); err == nil {
		return dateOnly(ts, loc), true
	}
	return time.Time{}, false
}
