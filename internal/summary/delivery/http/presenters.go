package http

import (
	"time"

	"ai-task-assistant/internal/analytics"
	"ai-task-assistant/internal/model"
	"ai-task-assistant/internal/summary"
)

// --- Request DTOs ---

type taskReq struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"       binding:"required,max=100"`
	Description string    `json:"description"`
	DueDate     time.Time `json:"due_date"    binding:"required" example:"2024-01-11T15:00:00+09:00"`
	Priority    string    `json:"priority"    binding:"required,oneof=high medium low"`
	Category    string    `json:"category"    binding:"required,oneof=work personal learning health other"`
	Completed   bool      `json:"completed"`
}

type summaryReq struct {
	Tasks          []taskReq `json:"tasks"            binding:"required,dive"`
	Period         string    `json:"period"           binding:"required" example:"week"`
	FilterByPeriod bool      `json:"filter_by_period"`
}

func (r summaryReq) toInput(now time.Time) summary.SummarizeInput {
	tasks := make([]model.Task, len(r.Tasks))
	for i, t := range r.Tasks {
		tasks[i] = model.Task{
			ID:          t.ID,
			Title:       t.Title,
			Description: t.Description,
			DueAt:       t.DueDate,
			Priority:    model.Priority(t.Priority),
			Category:    model.Category(t.Category),
			Completed:   t.Completed,
		}
	}
	return summary.SummarizeInput{
		Tasks:          tasks,
		Period:         model.Period(r.Period),
		FilterByPeriod: r.FilterByPeriod,
		Now:            now,
	}
}

// --- Response DTOs ---

type summaryResp struct {
	Summary         string   `json:"summary"`
	UrgentTasks     []string `json:"urgentTasks"`
	Insights        []string `json:"insights"`
	Recommendations []string `json:"recommendations"`
	Cached          bool     `json:"cached"`
}

func (h *handler) newSummaryResp(out summary.SummarizeOutput) summaryResp {
	return summaryResp{
		Summary:         out.Insight.Summary,
		UrgentTasks:     out.Insight.UrgentTasks,
		Insights:        out.Insight.Insights,
		Recommendations: out.Insight.Recommendations,
		Cached:          out.Cached,
	}
}

// analyticsResp is the snapshot as computed.
type analyticsResp = analytics.Snapshot

type tipResp struct {
	Tip string `json:"tip"`
}

func (h *handler) newTipResp(out summary.TipOutput) tipResp {
	return tipResp{Tip: out.Tip}
}
