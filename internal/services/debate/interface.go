package debate

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/debatewise/arbiter/internal/services/debate Service

import "context"

// Service defines the interface for session lifecycle operations
type Service interface {
	// CreateSession creates a new debate session with empty slots
	CreateSession(ctx context.Context, input *CreateSessionInput) (*CreateSessionOutput, error)

	// GetSession retrieves a session and everything it owns. It does
	// not mutate anything; compose with BindParticipant for the
	// read-claims-a-slot behavior.
	GetSession(ctx context.Context, input *GetSessionInput) (*GetSessionOutput, error)

	// BindParticipant idempotently claims an open slot for a requester
	BindParticipant(ctx context.Context, input *BindParticipantInput) (*BindParticipantOutput, error)

	// RenameParticipant updates a slot's display name; only the slot's
	// occupant may do so
	RenameParticipant(ctx context.Context, input *RenameParticipantInput) (*RenameParticipantOutput, error)

	// SubmitArgument appends an argument; the submission that brings
	// the session to exactly two arguments triggers judgement
	SubmitArgument(ctx context.Context, input *SubmitArgumentInput) (*SubmitArgumentOutput, error)

	// SubmitAppeal records the losing party's one-time challenge and
	// triggers the appeal judgement
	SubmitAppeal(ctx context.Context, input *SubmitAppealInput) (*SubmitAppealOutput, error)
}
