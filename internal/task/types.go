package task

import (
	"time"

	"ai-task-assistant/internal/model"
)

// ParseInput is the input for natural-language task creation.
type ParseInput struct {
	RawInput string
	Now      time.Time // Reference instant for every date computed in the request
}

// ParseOutput is the result of task creation.
type ParseOutput struct {
	Task      model.Task
	Candidate model.CandidateTask // What the model returned, before repair
	Repairs   []Repair
}

// NormalizedTask is a candidate after repair, still in string form.
type NormalizedTask struct {
	Title    string
	DueDate  string // YYYY-MM-DD
	DueTime  string // HH:mm
	Priority model.Priority
	Category model.Category
}

// Repair records one field the normalizer had to change.
type Repair struct {
	Field  string
	From   string
	To     string
	Reason string
}
