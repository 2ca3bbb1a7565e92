package debate

// DebateError is a custom error type for session lifecycle errors
type DebateError string

// Error implements the error interface
func (e DebateError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrSessionNotFound DebateError = "session not found"
	ErrInvalidSlot     DebateError = "invalid participant slot"
	ErrNotSlotOwner    DebateError = "requester does not own this slot"
	ErrNoJudgement     DebateError = "no judgement exists for this session yet"
	ErrNotTheLoser     DebateError = "only the losing party can submit an appeal"
	ErrAlreadyAppealed DebateError = "session has already been through an appeal"

	ErrNilConfig        DebateError = "config cannot be nil"
	ErrNilSessionRepo   DebateError = "session repository cannot be nil"
	ErrNilArgumentRepo  DebateError = "argument repository cannot be nil"
	ErrNilVerdictRepo   DebateError = "verdict repository cannot be nil"
	ErrNilArbiter       DebateError = "arbiter service cannot be nil"
	ErrNilPublisher     DebateError = "publisher cannot be nil"
	ErrNilClock         DebateError = "clock cannot be nil"
	ErrNilUUIDGenerator DebateError = "UUID generator cannot be nil"
)
