package task

import (
	"context"
)

// UseCase defines the business logic interface for the task domain.
type UseCase interface {
	// Parse turns a free-text description into a validated task.
	Parse(ctx context.Context, input ParseInput) (ParseOutput, error)
}
