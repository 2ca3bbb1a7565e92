package arbiter

import (
	"github.com/debatewise/arbiter/internal/common/clock"
	"github.com/debatewise/arbiter/internal/common/uuid"
	"github.com/debatewise/arbiter/internal/events"
	"github.com/debatewise/arbiter/internal/models"
	"github.com/debatewise/arbiter/internal/oracle"
	argumentRepo "github.com/debatewise/arbiter/internal/repositories/argument"
	sessionRepo "github.com/debatewise/arbiter/internal/repositories/session"
	verdictRepo "github.com/debatewise/arbiter/internal/repositories/verdict"
)

// Config holds configuration for the arbiter service
type Config struct {
	// Repository dependencies
	SessionRepo  sessionRepo.Repository
	ArgumentRepo argumentRepo.Repository
	VerdictRepo  verdictRepo.Repository

	// Oracle produces verdicts
	Oracle oracle.Oracle

	// Publisher broadcasts verdict events to session subscribers
	Publisher events.Publisher

	// Service dependencies
	Clock         clock.Clock
	UUIDGenerator uuid.UUID
}

// JudgeInput contains parameters for judging a session
type JudgeInput struct {
	// SessionID is the session to judge
	SessionID string
}

// JudgeOutput contains the persisted judgement
type JudgeOutput struct {
	// Judgement is the session's verdict. Check Degraded before
	// presenting it as the oracle's word.
	Judgement *models.Judgement
}

// JudgeWithAppealInput contains parameters for re-judging a session
// with an appeal attached
type JudgeWithAppealInput struct {
	// SessionID is the session to re-judge
	SessionID string

	// Appeal is the losing party's challenge
	Appeal *models.Appeal
}

// JudgeWithAppealOutput contains the persisted appeal judgement
type JudgeWithAppealOutput struct {
	// AppealJudgement is the final verdict
	AppealJudgement *models.AppealJudgement
}
