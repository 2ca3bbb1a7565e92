package events

//go:generate mockgen -package=mocks -destination=mocks/mock_publisher.go github.com/debatewise/arbiter/internal/events Publisher

import "context"

// Publisher broadcasts an event to every subscriber of a session.
// Publishing is best-effort: it never blocks the caller on a slow or
// broken subscriber and never reports failure.
type Publisher interface {
	Publish(ctx context.Context, sessionID string, event *Event)
}
