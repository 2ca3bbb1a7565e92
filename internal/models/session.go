package models

import (
	"time"
)

// Session represents one two-party debate and its outcome
type Session struct {
	// ID is the unique identifier for this session
	ID string `json:"id"`

	// Name is the display name of the debate
	Name string `json:"name"`

	// Description is an optional summary of what is being debated
	Description string `json:"description,omitempty"`

	// Participant1ID is the external identifier bound to slot 1
	Participant1ID string `json:"participant1_id,omitempty"`

	// Participant1Name is the display name for slot 1
	Participant1Name string `json:"participant1_name,omitempty"`

	// Participant2ID is the external identifier bound to slot 2
	Participant2ID string `json:"participant2_id,omitempty"`

	// Participant2Name is the display name for slot 2
	Participant2Name string `json:"participant2_name,omitempty"`

	// CreatedAt is when the session was created
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt is when the session was last updated
	UpdatedAt time.Time `json:"updated_at"`
}

// SlotFor returns which slot (1 or 2) the participant occupies, or 0
// if the participant is not bound to this session.
func (s *Session) SlotFor(participantID string) int {
	if participantID == "" {
		return 0
	}
	switch participantID {
	case s.Participant1ID:
		return 1
	case s.Participant2ID:
		return 2
	}
	return 0
}

// NameFor returns the recorded display name for a participant ID, or
// UnknownParty when the ID matches neither slot.
func (s *Session) NameFor(participantID string) string {
	switch s.SlotFor(participantID) {
	case 1:
		if s.Participant1Name != "" {
			return s.Participant1Name
		}
	case 2:
		if s.Participant2Name != "" {
			return s.Participant2Name
		}
	}
	return UnknownParty
}

// SessionView is the aggregate returned to clients: the session plus
// everything it owns.
type SessionView struct {
	Session

	Arguments       []*Argument      `json:"arguments"`
	Judgement       *Judgement       `json:"judgement,omitempty"`
	AppealJudgement *AppealJudgement `json:"appeal_judgement,omitempty"`
	Appeals         []*Appeal        `json:"appeals"`
}
