package arbiter

// ArbiterError is a custom error type for arbitration errors
type ArbiterError string

// Error implements the error interface
func (e ArbiterError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrNilConfig        ArbiterError = "config cannot be nil"
	ErrNilSessionRepo   ArbiterError = "session repository cannot be nil"
	ErrNilArgumentRepo  ArbiterError = "argument repository cannot be nil"
	ErrNilVerdictRepo   ArbiterError = "verdict repository cannot be nil"
	ErrNilOracle        ArbiterError = "oracle cannot be nil"
	ErrNilPublisher     ArbiterError = "publisher cannot be nil"
	ErrNilClock         ArbiterError = "clock cannot be nil"
	ErrNilUUIDGenerator ArbiterError = "UUID generator cannot be nil"
)
