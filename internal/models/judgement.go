package models

import (
	"time"
)

// UnknownParty is the sentinel label used for winner/loser fields when
// the oracle's answer cannot be resolved to a session participant, and
// for both parties of a degraded judgement.
const UnknownParty = "Unknown"

// Judgement is the primary verdict for a session's base arguments.
// There is at most one per session; re-judging overwrites it in place.
type Judgement struct {
	// ID is the unique identifier for this judgement
	ID string `json:"id"`

	// SessionID is the session this judgement belongs to
	SessionID string `json:"session_id"`

	// Content is the full narrative verdict text
	Content string `json:"content"`

	// Winner is the human-readable label of the winning party
	Winner string `json:"winner"`

	// WinnerID is the participant ID of the winning party
	WinnerID string `json:"winner_id"`

	// WinningArgument quotes the winning argument text
	WinningArgument string `json:"winning_argument"`

	// Loser is the human-readable label of the losing party
	Loser string `json:"loser"`

	// LoserID is the participant ID of the losing party. Appeals are
	// gated on this value.
	LoserID string `json:"loser_id"`

	// LosingArgument quotes the losing argument text
	LosingArgument string `json:"losing_argument"`

	// Reasoning is the narrative explaining the outcome
	Reasoning string `json:"reasoning"`

	// Degraded is true when this record was synthesized because the
	// oracle call failed; the labels are UnknownParty and the error
	// description is embedded in Content and Reasoning.
	Degraded bool `json:"degraded"`

	// CreatedAt is when the judgement was produced
	CreatedAt time.Time `json:"created_at"`
}

// AppealJudgement is the final, binding verdict produced by re-running
// arbitration with the loser's appeal included.
type AppealJudgement struct {
	// ID is the unique identifier for this appeal judgement
	ID string `json:"id"`

	// SessionID is the session this appeal judgement belongs to
	SessionID string `json:"session_id"`

	// Content is the full narrative verdict text
	Content string `json:"content"`

	// Winner is the human-readable label of the winning party
	Winner string `json:"winner"`

	// WinnerID is the participant ID of the winning party
	WinnerID string `json:"winner_id"`

	// WinningArgument quotes the winning argument text
	WinningArgument string `json:"winning_argument"`

	// Loser is the human-readable label of the losing party
	Loser string `json:"loser"`

	// LoserID is the participant ID of the losing party
	LoserID string `json:"loser_id"`

	// LosingArgument quotes the losing argument text
	LosingArgument string `json:"losing_argument"`

	// Reasoning is the narrative explaining the outcome
	Reasoning string `json:"reasoning"`

	// Degraded is true when this record was synthesized because the
	// oracle call failed
	Degraded bool `json:"degraded"`

	// CreatedAt is when the appeal judgement was produced
	CreatedAt time.Time `json:"created_at"`
}
