package usecase

import (
	"time"

	"ai-task-assistant/internal/summary/repository"
	"ai-task-assistant/pkg/llmprovider"
	pkgLog "ai-task-assistant/pkg/log"
)

type implUseCase struct {
	l     pkgLog.Logger
	llm   llmprovider.Generator
	cache repository.Repository // nil disables caching
	loc   *time.Location
}

// New creates a new summary UseCase instance. cache may be nil.
func New(l pkgLog.Logger, llm llmprovider.Generator, cache repository.Repository, loc *time.Location) *implUseCase {
	if loc == nil {
		loc = time.UTC
	}
	return &implUseCase{
		l:     l,
		llm:   llm,
		cache: cache,
		loc:   loc,
	}
}
