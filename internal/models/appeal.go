package models

import (
	"time"
)

// Appeal is a one-time challenge submitted by the recorded loser of a
// session's judgement. Appeals are append-only.
type Appeal struct {
	// ID is the unique identifier for this appeal
	ID string `json:"id"`

	// SessionID is the session this appeal belongs to
	SessionID string `json:"session_id"`

	// ParticipantID is the ID of the appealing participant
	ParticipantID string `json:"participant_id"`

	// Content is the appeal text
	Content string `json:"content"`

	// CreatedAt is when the appeal was submitted
	CreatedAt time.Time `json:"created_at"`
}
