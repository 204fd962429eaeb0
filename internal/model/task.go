package model

import "time"

// Priority is the urgency level of a task.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// Priorities lists every priority in reporting order.
var Priorities = []Priority{PriorityHigh, PriorityMedium, PriorityLow}

// IsValid reports whether p is one of the known priorities.
func (p Priority) IsValid() bool {
	switch p {
	case PriorityHigh, PriorityMedium, PriorityLow:
		return true
	}
	return false
}

// Category is the closed set of task categories.
type Category string

const (
	CategoryWork     Category = "work"
	CategoryPersonal Category = "personal"
	CategoryLearning Category = "learning"
	CategoryHealth   Category = "health"
	CategoryOther    Category = "other"
)

// Categories lists every category.
var Categories = []Category{CategoryWork, CategoryPersonal, CategoryLearning, CategoryHealth, CategoryOther}

// IsValid reports whether c is one of the known categories.
func (c Category) IsValid() bool {
	switch c {
	case CategoryWork, CategoryPersonal, CategoryLearning, CategoryHealth, CategoryOther:
		return true
	}
	return false
}

// Period selects the window a summary is about.
type Period string

const (
	PeriodToday Period = "today"
	PeriodWeek  Period = "week"
)

// IsValid reports whether p is "today" or "week".
func (p Period) IsValid() bool {
	return p == PeriodToday || p == PeriodWeek
}

// Task is a normalized unit of work. Storage belongs to the caller; this
// service only produces and reads these values.
type Task struct {
	ID          string // Optional, echoed back untouched
	Title       string
	Description string
	DueAt       time.Time
	Priority    Priority
	Category    Category
	Completed   bool
}

// CandidateTask is the untrusted shape returned by the extraction model.
type CandidateTask struct {
	Title    string `json:"title"`
	DueDate  string `json:"due_date"`
	DueTime  string `json:"due_time"`
	Priority string `json:"priority"`
	Category string `json:"category"`
}
