package argument

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/debatewise/arbiter/internal/repositories/argument Repository

import (
	"context"
)

// Repository defines the interface for argument persistence
type Repository interface {
	// AddArgument appends an argument to its session
	AddArgument(ctx context.Context, input *AddArgumentInput) error

	// GetArgumentsBySession retrieves a session's arguments in
	// submission order
	GetArgumentsBySession(ctx context.Context, input *GetArgumentsBySessionInput) (*GetArgumentsBySessionOutput, error)

	// CountBySession returns how many arguments a session has
	CountBySession(ctx context.Context, input *CountBySessionInput) (int64, error)
}
