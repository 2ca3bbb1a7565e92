package events

import (
	"fmt"

	"github.com/debatewise/arbiter/internal/models"
)

// EventType identifies what a session event announces
type EventType string

const (
	// EventTypeMessage is a generic transport-level notice
	EventTypeMessage EventType = "message"

	// EventTypeParticipantJoined announces a slot being claimed
	EventTypeParticipantJoined EventType = "participant_joined"

	// EventTypeArgumentSubmitted announces a new argument
	EventTypeArgumentSubmitted EventType = "argument_submitted"

	// EventTypeJudgementReady announces the session's judgement
	EventTypeJudgementReady EventType = "judgement_ready"

	// EventTypeAppealProcessed announces the appeal judgement
	EventTypeAppealProcessed EventType = "appeal_processed"
)

// Event is the payload broadcast to a session's subscribers
type Event struct {
	// Type identifies the event
	Type EventType `json:"type"`

	// Message is the human-readable notice text
	Message string `json:"message"`

	// Argument carries the new argument for argument_submitted events
	Argument *models.Argument `json:"argument,omitempty"`

	// ArgumentCount is the session's argument count after the
	// submission, for argument_submitted events
	ArgumentCount int `json:"argument_count,omitempty"`

	// Judgement carries the verdict for judgement_ready events
	Judgement *models.Judgement `json:"judgement,omitempty"`

	// AppealJudgement carries the final verdict for appeal_processed
	// events
	AppealJudgement *models.AppealJudgement `json:"appeal_judgement,omitempty"`

	// Participants is the number of live subscribers at publish time
	Participants int `json:"participants,omitempty"`
}

// NewMessageEvent builds a generic transport notice
func NewMessageEvent(text string) *Event {
	return &Event{
		Type:    EventTypeMessage,
		Message: text,
	}
}

// NewParticipantJoinedEvent announces a newly bound participant
func NewParticipantJoinedEvent(name string) *Event {
	return &Event{
		Type:    EventTypeParticipantJoined,
		Message: fmt.Sprintf("%s joined the debate", name),
	}
}

// NewArgumentSubmittedEvent announces a new argument and the running
// count
func NewArgumentSubmittedEvent(arg *models.Argument, count int) *Event {
	return &Event{
		Type:          EventTypeArgumentSubmitted,
		Message:       "New argument submitted",
		Argument:      arg,
		ArgumentCount: count,
	}
}

// NewJudgementReadyEvent announces the session's judgement
func NewJudgementReadyEvent(judgement *models.Judgement) *Event {
	return &Event{
		Type:      EventTypeJudgementReady,
		Message:   "Judgement ready",
		Judgement: judgement,
	}
}

// NewAppealProcessedEvent announces the session's appeal judgement
func NewAppealProcessedEvent(aj *models.AppealJudgement) *Event {
	return &Event{
		Type:            EventTypeAppealProcessed,
		Message:         "Appeal processed",
		AppealJudgement: aj,
	}
}
