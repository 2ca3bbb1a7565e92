package oracle

//go:generate mockgen -package=mocks -destination=mocks/mock_oracle.go github.com/debatewise/arbiter/internal/oracle Oracle

import "context"

// Oracle evaluates a session's arguments and produces a structured
// verdict. Implementations may fail or time out; callers own the
// degraded-judgement fallback.
type Oracle interface {
	// Evaluate asks the oracle for a verdict over the supplied
	// arguments, optionally considering an appeal
	Evaluate(ctx context.Context, input *EvaluateInput) (*Verdict, error)
}
