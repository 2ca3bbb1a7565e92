package arbiter

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/debatewise/arbiter/internal/services/arbiter Service

import "context"

// Service defines the interface for arbitration orchestration
type Service interface {
	// Judge evaluates a session's arguments and persists the outcome
	// as the session's judgement
	Judge(ctx context.Context, input *JudgeInput) (*JudgeOutput, error)

	// JudgeWithAppeal re-evaluates a session's arguments with the
	// appeal included and persists a new appeal judgement
	JudgeWithAppeal(ctx context.Context, input *JudgeWithAppealInput) (*JudgeWithAppealOutput, error)
}
