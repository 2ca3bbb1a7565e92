package httpapi

import (
	"github.com/debatewise/arbiter/internal/events"
	"github.com/debatewise/arbiter/internal/services/debate"
	"github.com/debatewise/arbiter/internal/storage/images"
)

// Config holds configuration for the HTTP handler
type Config struct {
	// DebateService runs the session lifecycle
	DebateService debate.Service

	// ImageStore persists argument attachments
	ImageStore images.Store

	// Registry tracks websocket subscribers and broadcasts events
	Registry *events.Registry
}

// createSessionRequest is the JSON body for POST /sessions/
type createSessionRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// renameParticipantRequest is the JSON body for
// PATCH /sessions/:id/participants/:slot
type renameParticipantRequest struct {
	RequesterID string `json:"requester_id"`
	Name        string `json:"name"`
}

// submitAppealRequest is the JSON body for POST /sessions/:id/appeal/
type submitAppealRequest struct {
	RequesterID string `json:"requester_id"`
	Content     string `json:"content"`
}

// errorResponse is the JSON error body for all failed requests
type errorResponse struct {
	Error string `json:"error"`
}
