package session

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/debatewise/arbiter/internal/repositories/session Repository

import (
	"context"

	"github.com/debatewise/arbiter/internal/models"
)

// Repository defines the interface for session persistence
type Repository interface {
	// SaveSession persists a session, overwriting any prior record
	SaveSession(ctx context.Context, input *SaveSessionInput) error

	// GetSession retrieves a session by ID
	GetSession(ctx context.Context, input *GetSessionInput) (*models.Session, error)
}
