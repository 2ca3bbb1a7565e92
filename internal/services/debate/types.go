package debate

import (
	"github.com/debatewise/arbiter/internal/common/clock"
	"github.com/debatewise/arbiter/internal/common/uuid"
	"github.com/debatewise/arbiter/internal/events"
	"github.com/debatewise/arbiter/internal/models"
	argumentRepo "github.com/debatewise/arbiter/internal/repositories/argument"
	sessionRepo "github.com/debatewise/arbiter/internal/repositories/session"
	verdictRepo "github.com/debatewise/arbiter/internal/repositories/verdict"
	"github.com/debatewise/arbiter/internal/services/arbiter"
)

// Default display names assigned when a slot is claimed
const (
	DefaultSlot1Name = "Debater 1"
	DefaultSlot2Name = "Debater 2"
)

// Config holds configuration for the debate service
type Config struct {
	// Repository dependencies
	SessionRepo  sessionRepo.Repository
	ArgumentRepo argumentRepo.Repository
	VerdictRepo  verdictRepo.Repository

	// Arbiter produces and persists verdicts
	Arbiter arbiter.Service

	// Publisher broadcasts lifecycle events to session subscribers
	Publisher events.Publisher

	// Service dependencies
	Clock         clock.Clock
	UUIDGenerator uuid.UUID
}

// CreateSessionInput contains parameters for creating a session
type CreateSessionInput struct {
	// Name is the display name of the debate
	Name string

	// Description is an optional summary of the topic
	Description string

	// Optional participant seeds; normally slots start empty and are
	// claimed via BindParticipant
	Participant1ID   string
	Participant1Name string
	Participant2ID   string
	Participant2Name string
}

// CreateSessionOutput contains the created session
type CreateSessionOutput struct {
	Session *models.Session
}

// GetSessionInput contains parameters for reading a session
type GetSessionInput struct {
	// SessionID is the session to read
	SessionID string
}

// GetSessionOutput contains the aggregated session view
type GetSessionOutput struct {
	View *models.SessionView
}

// BindParticipantInput contains parameters for claiming a slot
type BindParticipantInput struct {
	// SessionID is the session to bind into
	SessionID string

	// RequesterID is the external identity claiming a slot
	RequesterID string
}

// BindParticipantOutput contains the result of a bind attempt
type BindParticipantOutput struct {
	// Session reflects the state after the bind attempt
	Session *models.Session

	// Slot is the slot the requester occupies (1 or 2), or 0 when both
	// slots are taken by others and the session is read-only to them
	Slot int

	// NewlyBound is true when this call claimed the slot, false when
	// the requester was already bound or no slot was available
	NewlyBound bool
}

// RenameParticipantInput contains parameters for renaming a slot
type RenameParticipantInput struct {
	// SessionID is the session holding the slot
	SessionID string

	// Slot is the slot to rename (1 or 2)
	Slot int

	// RequesterID must match the slot's recorded occupant
	RequesterID string

	// NewName is the display name to set
	NewName string
}

// RenameParticipantOutput contains the updated session
type RenameParticipantOutput struct {
	Session *models.Session
}

// SubmitArgumentInput contains parameters for submitting an argument
type SubmitArgumentInput struct {
	// SessionID is the session to argue in
	SessionID string

	// ParticipantID is the submitting participant
	ParticipantID string

	// ParticipantName is the display name captured on the argument
	ParticipantName string

	// Content is the argument text. Callers validate non-emptiness;
	// the engine stores what it is given.
	Content string

	// ImageURL is an optional attachment reference
	ImageURL string
}

// SubmitArgumentOutput contains the stored argument and, when this
// submission was the second one, the triggered judgement
type SubmitArgumentOutput struct {
	// Argument is the stored argument
	Argument *models.Argument

	// ArgumentCount is the session's argument count after this
	// submission
	ArgumentCount int

	// JudgementTriggered is true when this submission brought the
	// count to exactly two and judgement ran
	JudgementTriggered bool

	// Judgement is the verdict produced when JudgementTriggered is
	// true
	Judgement *models.Judgement
}

// SubmitAppealInput contains parameters for submitting an appeal
type SubmitAppealInput struct {
	// SessionID is the session to appeal in
	SessionID string

	// AppellantID is the participant submitting the appeal; must be
	// the judgement's recorded loser
	AppellantID string

	// Content is the appeal text
	Content string
}

// SubmitAppealOutput contains the stored appeal and the final verdict
type SubmitAppealOutput struct {
	// Appeal is the stored appeal
	Appeal *models.Appeal

	// AppealJudgement is the final, binding verdict
	AppealJudgement *models.AppealJudgement
}
