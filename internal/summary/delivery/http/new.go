package http

import (
	"time"

	"github.com/gin-gonic/gin"

	"ai-task-assistant/internal/summary"
	"ai-task-assistant/pkg/log"
)

// Handler is the public interface for the summary HTTP delivery layer.
type Handler interface {
	Summarize(c *gin.Context)
	Analyze(c *gin.Context)
	Tip(c *gin.Context)
}

type handler struct {
	l   log.Logger
	uc  summary.UseCase
	now func() time.Time
}

// New creates a new HTTP handler for the summary domain.
func New(l log.Logger, uc summary.UseCase) *handler {
	return &handler{
		l:   l,
		uc:  uc,
		now: time.Now,
	}
}
