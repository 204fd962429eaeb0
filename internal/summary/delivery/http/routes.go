package http

import (
	"github.com/gin-gonic/gin"

	"ai-task-assistant/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// Model-backed routes go through the rate limiter.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	tasks := rg.Group("/tasks")
	{
		tasks.POST("/summary", mw.RateLimit(), h.Summarize)
		tasks.POST("/analytics", h.Analyze)
	}

	rg.GET("/tips", mw.RateLimit(), h.Tip)
}
