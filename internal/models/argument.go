package models

import (
	"time"
)

// Argument represents a single party's submitted position in a session
type Argument struct {
	// ID is the unique identifier for this argument
	ID string `json:"id"`

	// SessionID is the session this argument belongs to
	SessionID string `json:"session_id"`

	// ParticipantID is the ID of the participant who submitted it
	ParticipantID string `json:"participant_id"`

	// ParticipantName is the display name captured at submission time.
	// It is deliberately not updated by later session-level renames.
	ParticipantName string `json:"participant_name"`

	// Content is the argument text
	Content string `json:"content"`

	// ImageURL is an optional reference to an uploaded attachment
	ImageURL string `json:"image_url,omitempty"`

	// CreatedAt is when the argument was submitted
	CreatedAt time.Time `json:"created_at"`
}
