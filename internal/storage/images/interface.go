package images

//go:generate mockgen -package=mocks -destination=mocks/mock_store.go github.com/debatewise/arbiter/internal/storage/images Store

import "context"

// Store defines the interface for argument attachment storage
type Store interface {
	// Save persists an uploaded image and returns the public URL path
	// it will be served under
	Save(ctx context.Context, input *SaveInput) (*SaveOutput, error)
}
