package summary

import (
	"time"

	"ai-task-assistant/internal/analytics"
	"ai-task-assistant/internal/model"
)

// MaxTasks bounds one summary request.
const MaxTasks = 1000

// --- UseCase Inputs ---

type SummarizeInput struct {
	Tasks          []model.Task
	Period         model.Period
	FilterByPeriod bool      // Drop tasks outside the period before analysis
	Now            time.Time // Zero means time.Now()
}

// --- UseCase Outputs ---

// Insight is the natural-language bundle returned by the model.
type Insight struct {
	Summary         string   `json:"summary"`
	UrgentTasks     []string `json:"urgentTasks"`
	Insights        []string `json:"insights"`
	Recommendations []string `json:"recommendations"`
}

type SummarizeOutput struct {
	Insight  Insight
	Snapshot analytics.Snapshot
	Cached   bool
}

type TipOutput struct {
	Tip string
}
