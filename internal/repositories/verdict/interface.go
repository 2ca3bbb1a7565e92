package verdict

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/debatewise/arbiter/internal/repositories/verdict Repository

import (
	"context"

	"github.com/debatewise/arbiter/internal/models"
)

// Repository defines the interface for verdict persistence: the
// session's judgement, its appeal judgements, and its appeals.
type Repository interface {
	// SaveJudgement persists a session's judgement, overwriting any
	// existing one in place
	SaveJudgement(ctx context.Context, input *SaveJudgementInput) error

	// GetJudgement retrieves a session's judgement
	GetJudgement(ctx context.Context, input *GetJudgementInput) (*models.Judgement, error)

	// AddAppealJudgement inserts a new appeal judgement; prior records
	// are kept
	AddAppealJudgement(ctx context.Context, input *AddAppealJudgementInput) error

	// GetAppealJudgement retrieves the most recent appeal judgement
	// for a session
	GetAppealJudgement(ctx context.Context, input *GetAppealJudgementInput) (*models.AppealJudgement, error)

	// AddAppeal appends an appeal to a session's appeal list
	AddAppeal(ctx context.Context, input *AddAppealInput) error

	// GetAppealsBySession retrieves a session's appeals in submission
	// order
	GetAppealsBySession(ctx context.Context, input *GetAppealsBySessionInput) (*GetAppealsBySessionOutput, error)
}
