package oracle

// EvaluateArgument is one party's position as presented to the oracle
type EvaluateArgument struct {
	// ParticipantID is the identifier the oracle must use to name the
	// winner and loser
	ParticipantID string

	// ParticipantName is the display name, for prompt context only
	ParticipantName string

	// Content is the argument text
	Content string
}

// EvaluateInput contains the material for one arbitration round
type EvaluateInput struct {
	// Arguments is the ordered list of arguments to judge
	Arguments []EvaluateArgument

	// Appeal is optional additional context from the losing party
	Appeal string
}

// Verdict is the oracle's structured answer. Winner and Loser carry
// the participant identifiers supplied in the request, not free-text
// labels.
type Verdict struct {
	// Content is the full narrative verdict text
	Content string `json:"content"`

	// Winner is the participant ID of the winning party
	Winner string `json:"winner"`

	// WinningArgument quotes the winning argument text
	WinningArgument string `json:"winning_argument"`

	// Loser is the participant ID of the losing party
	Loser string `json:"loser"`

	// LosingArgument quotes the losing argument text
	LosingArgument string `json:"losing_argument"`

	// Reasoning is the narrative explaining the outcome
	Reasoning string `json:"reasoning"`
}
