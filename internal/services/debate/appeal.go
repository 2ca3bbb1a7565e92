package debate

import (
	"context"
	"errors"
	"fmt"

	"github.com/debatewise/arbiter/internal/models"
	verdictRepo "github.com/debatewise/arbiter/internal/repositories/verdict"
	"github.com/debatewise/arbiter/internal/services/arbiter"
)

// SubmitAppeal records the losing party's one-time challenge and
// triggers the appeal judgement. The gates run in order: the session
// must exist, a judgement must exist, no appeal judgement may exist
// yet, and the appellant must be the judgement's recorded loser.
func (s *service) SubmitAppeal(ctx context.Context, input *SubmitAppealInput) (*SubmitAppealOutput, error) {
	if input == nil || input.SessionID == "" || input.AppellantID == "" || input.Content == "" {
		return nil, errors.New("input, session ID, appellant ID, and content cannot be empty")
	}

	lock := s.lockSession(input.SessionID)
	defer s.unlockSession(input.SessionID, lock)

	if _, err := s.getSession(ctx, input.SessionID); err != nil {
		return nil, err
	}

	judgement, err := s.verdictRepo.GetJudgement(ctx, &verdictRepo.GetJudgementInput{
		SessionID: input.SessionID,
	})
	if err != nil {
		if errors.Is(err, verdictRepo.ErrJudgementNotFound) {
			return nil, ErrNoJudgement
		}
		return nil, fmt.Errorf("failed to get judgement: %w", err)
	}

	_, err = s.verdictRepo.GetAppealJudgement(ctx, &verdictRepo.GetAppealJudgementInput{
		SessionID: input.SessionID,
	})
	if err == nil {
		return nil, ErrAlreadyAppealed
	}
	if !errors.Is(err, verdictRepo.ErrAppealJudgementNotFound) {
		return nil, fmt.Errorf("failed to get appeal judgement: %w", err)
	}

	// A degraded judgement records no loser, so nobody can appeal it.
	// That matches the gate's intent: there is no ruling to overturn.
	if judgement.LoserID == "" || input.AppellantID != judgement.LoserID {
		return nil, ErrNotTheLoser
	}

	appeal := &models.Appeal{
		ID:            s.uuidGenerator.NewUUID(),
		SessionID:     input.SessionID,
		ParticipantID: input.AppellantID,
		Content:       input.Content,
		CreatedAt:     s.clock.Now(),
	}

	err = s.verdictRepo.AddAppeal(ctx, &verdictRepo.AddAppealInput{
		Appeal: appeal,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to save appeal: %w", err)
	}

	judgeOut, err := s.arbiter.JudgeWithAppeal(ctx, &arbiter.JudgeWithAppealInput{
		SessionID: input.SessionID,
		Appeal:    appeal,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to judge appeal: %w", err)
	}

	return &SubmitAppealOutput{
		Appeal:          appeal,
		AppealJudgement: judgeOut.AppealJudgement,
	}, nil
}
