package arbiter

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sort"

	"github.com/debatewise/arbiter/internal/common/clock"
	"github.com/debatewise/arbiter/internal/common/uuid"
	"github.com/debatewise/arbiter/internal/events"
	"github.com/debatewise/arbiter/internal/models"
	"github.com/debatewise/arbiter/internal/oracle"
	argumentRepo "github.com/debatewise/arbiter/internal/repositories/argument"
	sessionRepo "github.com/debatewise/arbiter/internal/repositories/session"
	verdictRepo "github.com/debatewise/arbiter/internal/repositories/verdict"
)

// service implements the Service interface
type service struct {
	sessionRepo   sessionRepo.Repository
	argumentRepo  argumentRepo.Repository
	verdictRepo   verdictRepo.Repository
	oracle        oracle.Oracle
	publisher     events.Publisher
	clock         clock.Clock
	uuidGenerator uuid.UUID
}

// New creates a new arbiter service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.SessionRepo == nil {
		return nil, ErrNilSessionRepo
	}

	if cfg.ArgumentRepo == nil {
		return nil, ErrNilArgumentRepo
	}

	if cfg.VerdictRepo == nil {
		return nil, ErrNilVerdictRepo
	}

	if cfg.Oracle == nil {
		return nil, ErrNilOracle
	}

	if cfg.Publisher == nil {
		return nil, ErrNilPublisher
	}

	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	if cfg.UUIDGenerator == nil {
		return nil, ErrNilUUIDGenerator
	}

	return &service{
		sessionRepo:   cfg.SessionRepo,
		argumentRepo:  cfg.ArgumentRepo,
		verdictRepo:   cfg.VerdictRepo,
		oracle:        cfg.Oracle,
		publisher:     cfg.Publisher,
		clock:         cfg.Clock,
		uuidGenerator: cfg.UUIDGenerator,
	}, nil
}

// Judge evaluates a session's arguments and persists the outcome as
// the session's judgement. An oracle failure does not fail the call:
// a degraded judgement embedding the error is persisted instead, so
// the session always ends up judged once both sides have spoken.
func (s *service) Judge(ctx context.Context, input *JudgeInput) (*JudgeOutput, error) {
	if input == nil || input.SessionID == "" {
		return nil, errors.New("input and session ID cannot be empty")
	}

	session, arguments, err := s.loadMaterial(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}

	verdict, oracleErr := s.oracle.Evaluate(ctx, &oracle.EvaluateInput{
		Arguments: arguments,
	})

	judgement := &models.Judgement{
		ID:        s.uuidGenerator.NewUUID(),
		SessionID: input.SessionID,
		CreatedAt: s.clock.Now(),
	}

	if oracleErr != nil {
		log.Printf("arbiter: oracle failed for session %s: %v", input.SessionID, oracleErr)
		applyDegraded(judgement, oracleErr)
	} else {
		judgement.Content = verdict.Content
		judgement.Winner = session.NameFor(verdict.Winner)
		judgement.WinnerID = verdict.Winner
		judgement.WinningArgument = verdict.WinningArgument
		judgement.Loser = session.NameFor(verdict.Loser)
		judgement.LoserID = verdict.Loser
		judgement.LosingArgument = verdict.LosingArgument
		judgement.Reasoning = verdict.Reasoning
	}

	// Upsert: re-judging overwrites the session's judgement in place
	err = s.verdictRepo.SaveJudgement(ctx, &verdictRepo.SaveJudgementInput{
		Judgement: judgement,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to save judgement: %w", err)
	}

	s.publisher.Publish(ctx, input.SessionID, events.NewJudgementReadyEvent(judgement))

	return &JudgeOutput{
		Judgement: judgement,
	}, nil
}

// JudgeWithAppeal re-evaluates a session's arguments with the appeal
// included and persists a new appeal judgement. Unlike Judge this
// always inserts; prior appeal judgements are kept.
func (s *service) JudgeWithAppeal(ctx context.Context, input *JudgeWithAppealInput) (*JudgeWithAppealOutput, error) {
	if input == nil || input.SessionID == "" || input.Appeal == nil {
		return nil, errors.New("input, session ID, and appeal cannot be empty")
	}

	session, arguments, err := s.loadMaterial(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}

	verdict, oracleErr := s.oracle.Evaluate(ctx, &oracle.EvaluateInput{
		Arguments: arguments,
		Appeal:    input.Appeal.Content,
	})

	appealJudgement := &models.AppealJudgement{
		ID:        s.uuidGenerator.NewUUID(),
		SessionID: input.SessionID,
		CreatedAt: s.clock.Now(),
	}

	if oracleErr != nil {
		log.Printf("arbiter: oracle failed for appeal on session %s: %v", input.SessionID, oracleErr)
		appealJudgement.Content = fmt.Sprintf("An error occurred: %v", oracleErr)
		appealJudgement.Winner = models.UnknownParty
		appealJudgement.WinningArgument = degradedArgumentText
		appealJudgement.Loser = models.UnknownParty
		appealJudgement.LosingArgument = degradedArgumentText
		appealJudgement.Reasoning = fmt.Sprintf("An error occurred: %v", oracleErr)
		appealJudgement.Degraded = true
	} else {
		appealJudgement.Content = verdict.Content
		appealJudgement.Winner = session.NameFor(verdict.Winner)
		appealJudgement.WinnerID = verdict.Winner
		appealJudgement.WinningArgument = verdict.WinningArgument
		appealJudgement.Loser = session.NameFor(verdict.Loser)
		appealJudgement.LoserID = verdict.Loser
		appealJudgement.LosingArgument = verdict.LosingArgument
		appealJudgement.Reasoning = verdict.Reasoning
	}

	err = s.verdictRepo.AddAppealJudgement(ctx, &verdictRepo.AddAppealJudgementInput{
		AppealJudgement: appealJudgement,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to save appeal judgement: %w", err)
	}

	s.publisher.Publish(ctx, input.SessionID, events.NewAppealProcessedEvent(appealJudgement))

	return &JudgeWithAppealOutput{
		AppealJudgement: appealJudgement,
	}, nil
}

const degradedArgumentText = "Unable to determine"

// applyDegraded fills a judgement with the degraded-outcome sentinel
// values and the error description.
func applyDegraded(judgement *models.Judgement, oracleErr error) {
	judgement.Content = fmt.Sprintf("An error occurred: %v", oracleErr)
	judgement.Winner = models.UnknownParty
	judgement.WinningArgument = degradedArgumentText
	judgement.Loser = models.UnknownParty
	judgement.LosingArgument = degradedArgumentText
	judgement.Reasoning = fmt.Sprintf("An error occurred: %v", oracleErr)
	judgement.Degraded = true
}

// loadMaterial fetches the session and its arguments, ordered by
// participant ID so repeated judging of the same session is
// deterministic regardless of submission race order.
func (s *service) loadMaterial(ctx context.Context, sessionID string) (*models.Session, []oracle.EvaluateArgument, error) {
	session, err := s.sessionRepo.GetSession(ctx, &sessionRepo.GetSessionInput{
		SessionID: sessionID,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get session: %w", err)
	}

	argsOut, err := s.argumentRepo.GetArgumentsBySession(ctx, &argumentRepo.GetArgumentsBySessionInput{
		SessionID: sessionID,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get arguments: %w", err)
	}

	stored := argsOut.Arguments
	sort.SliceStable(stored, func(i, j int) bool {
		return stored[i].ParticipantID < stored[j].ParticipantID
	})

	arguments := make([]oracle.EvaluateArgument, 0, len(stored))
	for _, arg := range stored {
		arguments = append(arguments, oracle.EvaluateArgument{
			ParticipantID:   arg.ParticipantID,
			ParticipantName: arg.ParticipantName,
			Content:         arg.Content,
		})
	}

	return session, arguments, nil
}
