package http

import (
	"time"

	"ai-task-assistant/internal/task"
	"ai-task-assistant/pkg/response"
)

// --- Request DTOs ---

type parseReq struct {
	Input string `json:"input"`
}

func (r parseReq) toInput(now time.Time) task.ParseInput {
	return task.ParseInput{
		RawInput: r.Input,
		Now:      now,
	}
}

// --- Response DTOs ---

type parseResp struct {
	Title       string            `json:"title"`
	Description string            `json:"description"`
	DueDate     response.DateTime `json:"due_date" swaggertype:"string" example:"2024-01-11T15:00:00+09:00"`
	Priority    string            `json:"priority" example:"high"`
	Category    string            `json:"category" example:"work"`
}

func (h *handler) newParseResp(out task.ParseOutput) parseResp {
	return parseResp{
		Title:       out.Task.Title,
		Description: out.Task.Description,
		DueDate:     response.DateTime(out.Task.DueAt),
		Priority:    string(out.Task.Priority),
		Category:    string(out.Task.Category),
	}
}
