package usecase

import (
	"ai-task-assistant/pkg/datemath"
	"ai-task-assistant/pkg/llmprovider"
	pkgLog "ai-task-assistant/pkg/log"
)

type implUseCase struct {
	l        pkgLog.Logger
	llm      llmprovider.Generator
	dateMath *datemath.Parser
}

// New creates a new task UseCase instance.
func New(l pkgLog.Logger, llm llmprovider.Generator, dateMath *datemath.Parser) *implUseCase {
	return &implUseCase{
		l:        l,
		llm:      llm,
		dateMath: dateMath,
	}
}
