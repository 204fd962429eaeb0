package http

import (
	"time"

	"github.com/gin-gonic/gin"

	"ai-task-assistant/internal/task"
	"ai-task-assistant/pkg/log"
)

// Handler is the public interface for the task HTTP delivery layer.
type Handler interface {
	Parse(c *gin.Context)
}

type handler struct {
	l   log.Logger
	uc  task.UseCase
	now func() time.Time
}

// New creates a new HTTP handler for the task domain.
func New(l log.Logger, uc task.UseCase) *handler {
	return &handler{
		l:   l,
		uc:  uc,
		now: time.Now,
	}
}
