package debate

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/debatewise/arbiter/internal/common/clock"
	"github.com/debatewise/arbiter/internal/common/uuid"
	"github.com/debatewise/arbiter/internal/events"
	"github.com/debatewise/arbiter/internal/models"
	argumentRepo "github.com/debatewise/arbiter/internal/repositories/argument"
	sessionRepo "github.com/debatewise/arbiter/internal/repositories/session"
	verdictRepo "github.com/debatewise/arbiter/internal/repositories/verdict"
	"github.com/debatewise/arbiter/internal/services/arbiter"
)

// service implements the Service interface
type service struct {
	sessionRepo   sessionRepo.Repository
	argumentRepo  argumentRepo.Repository
	verdictRepo   verdictRepo.Repository
	arbiter       arbiter.Service
	publisher     events.Publisher
	clock         clock.Clock
	uuidGenerator uuid.UUID

	// mu guards sessionLocks. Each session gets its own mutex so that
	// argument submission and appeal handling serialize per session,
	// not globally. Entries are reference-counted and evicted once the
	// last holder releases, so the map does not grow with the number
	// of sessions ever seen.
	mu           sync.Mutex
	sessionLocks map[string]*sessionLock
}

// sessionLock is one session's mutex plus the number of goroutines
// holding or waiting on it
type sessionLock struct {
	mu   sync.Mutex
	refs int
}

// New creates a new debate service
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

	if cfg.Arbiter == nil {
		return nil, ErrNilArbiter
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
		arbiter:       cfg.Arbiter,
		publisher:     cfg.Publisher,
		clock:         cfg.Clock,
		uuidGenerator: cfg.UUIDGenerator,
		sessionLocks:  make(map[string]*sessionLock),
	}, nil
}

// lockSession acquires a session's mutex, creating the entry on first
// use
func (s *service) lockSession(sessionID string) *sessionLock {
	s.mu.Lock()
	lock, ok := s.sessionLocks[sessionID]
	if !ok {
		lock = &sessionLock{}
		s.sessionLocks[sessionID] = lock
	}
	lock.refs++
	s.mu.Unlock()

	lock.mu.Lock()
	return lock
}

// unlockSession releases a session's mutex and evicts the entry when
// nobody else holds or waits on it
func (s *service) unlockSession(sessionID string, lock *sessionLock) {
	lock.mu.Unlock()

	s.mu.Lock()
	lock.refs--
	if lock.refs == 0 {
		delete(s.sessionLocks, sessionID)
	}
	s.mu.Unlock()
}

// CreateSession creates a new debate session
func (s *service) CreateSession(ctx context.Context, input *CreateSessionInput) (*CreateSessionOutput, error) {
	if input == nil || input.Name == "" {
		return nil, errors.New("input and session name cannot be empty")
	}

	now := s.clock.Now()
	session := &models.Session{
		ID:               s.uuidGenerator.NewUUID(),
		Name:             input.Name,
		Description:      input.Description,
		Participant1ID:   input.Participant1ID,
		Participant1Name: input.Participant1Name,
		Participant2ID:   input.Participant2ID,
		Participant2Name: input.Participant2Name,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	err := s.sessionRepo.SaveSession(ctx, &sessionRepo.SaveSessionInput{
		Session: session,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to save session: %w", err)
	}

	return &CreateSessionOutput{
		Session: session,
	}, nil
}

// GetSession retrieves a session together with its arguments,
// judgement, appeal judgement, and appeals
func (s *service) GetSession(ctx context.Context, input *GetSessionInput) (*GetSessionOutput, error) {
	if input == nil || input.SessionID == "" {
		return nil, errors.New("input and session ID cannot be empty")
	}

	session, err := s.getSession(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}

	argsOut, err := s.argumentRepo.GetArgumentsBySession(ctx, &argumentRepo.GetArgumentsBySessionInput{
		SessionID: input.SessionID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get arguments: %w", err)
	}

	view := &models.SessionView{
		Session:   *session,
		Arguments: argsOut.Arguments,
	}

	judgement, err := s.verdictRepo.GetJudgement(ctx, &verdictRepo.GetJudgementInput{
		SessionID: input.SessionID,
	})
	if err != nil && !errors.Is(err, verdictRepo.ErrJudgementNotFound) {
		return nil, fmt.Errorf("failed to get judgement: %w", err)
	}
	view.Judgement = judgement

	appealJudgement, err := s.verdictRepo.GetAppealJudgement(ctx, &verdictRepo.GetAppealJudgementInput{
		SessionID: input.SessionID,
	})
	if err != nil && !errors.Is(err, verdictRepo.ErrAppealJudgementNotFound) {
		return nil, fmt.Errorf("failed to get appeal judgement: %w", err)
	}
	view.AppealJudgement = appealJudgement

	appealsOut, err := s.verdictRepo.GetAppealsBySession(ctx, &verdictRepo.GetAppealsBySessionInput{
		SessionID: input.SessionID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get appeals: %w", err)
	}
	view.Appeals = appealsOut.Appeals

	return &GetSessionOutput{
		View: view,
	}, nil
}

// BindParticipant claims an open slot for the requester. The call is
// idempotent: a requester already bound to a slot gets that slot back
// unchanged, and a third distinct requester on a full session gets a
// read-only view rather than an error.
func (s *service) BindParticipant(ctx context.Context, input *BindParticipantInput) (*BindParticipantOutput, error) {
	if input == nil || input.SessionID == "" {
		return nil, errors.New("input and session ID cannot be empty")
	}

	lock := s.lockSession(input.SessionID)
	defer s.unlockSession(input.SessionID, lock)

	session, err := s.getSession(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}

	// Spectators and anonymous reads never claim a slot
	if input.RequesterID == "" {
		return &BindParticipantOutput{
			Session: session,
		}, nil
	}

	if slot := session.SlotFor(input.RequesterID); slot != 0 {
		return &BindParticipantOutput{
			Session: session,
			Slot:    slot,
		}, nil
	}

	var slot int
	switch {
	case session.Participant1ID == "":
		session.Participant1ID = input.RequesterID
		session.Participant1Name = DefaultSlot1Name
		slot = 1
	case session.Participant2ID == "":
		session.Participant2ID = input.RequesterID
		session.Participant2Name = DefaultSlot2Name
		slot = 2
	default:
		// Both slots taken by others: the requester is a spectator
		return &BindParticipantOutput{
			Session: session,
		}, nil
	}

	session.UpdatedAt = s.clock.Now()

	err = s.sessionRepo.SaveSession(ctx, &sessionRepo.SaveSessionInput{
		Session: session,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to save session: %w", err)
	}

	s.publisher.Publish(ctx, session.ID, events.NewParticipantJoinedEvent(session.NameFor(input.RequesterID)))

	return &BindParticipantOutput{
		Session:    session,
		Slot:       slot,
		NewlyBound: true,
	}, nil
}

// RenameParticipant updates a slot's display name. Only the slot's
// recorded occupant may rename it.
func (s *service) RenameParticipant(ctx context.Context, input *RenameParticipantInput) (*RenameParticipantOutput, error) {
	if input == nil || input.SessionID == "" || input.NewName == "" {
		return nil, errors.New("input, session ID, and new name cannot be empty")
	}

	if input.Slot != 1 && input.Slot != 2 {
		return nil, ErrInvalidSlot
	}

	lock := s.lockSession(input.SessionID)
	defer s.unlockSession(input.SessionID, lock)

	session, err := s.getSession(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}

	switch input.Slot {
	case 1:
		if session.Participant1ID == "" || session.Participant1ID != input.RequesterID {
			return nil, ErrNotSlotOwner
		}
		session.Participant1Name = input.NewName
	case 2:
		if session.Participant2ID == "" || session.Participant2ID != input.RequesterID {
			return nil, ErrNotSlotOwner
		}
		session.Participant2Name = input.NewName
	}

	session.UpdatedAt = s.clock.Now()

	err = s.sessionRepo.SaveSession(ctx, &sessionRepo.SaveSessionInput{
		Session: session,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to save session: %w", err)
	}

	return &RenameParticipantOutput{
		Session: session,
	}, nil
}

// SubmitArgument stores an argument and, when the submission brings
// the session to exactly two arguments, triggers judgement before
// returning. The count check runs under the session lock so that two
// racing submissions cannot both see themselves as the second one.
func (s *service) SubmitArgument(ctx context.Context, input *SubmitArgumentInput) (*SubmitArgumentOutput, error) {
	if input == nil || input.SessionID == "" || input.ParticipantID == "" || input.Content == "" {
		return nil, errors.New("input, session ID, participant ID, and content cannot be empty")
	}

	lock := s.lockSession(input.SessionID)
	defer s.unlockSession(input.SessionID, lock)

	if _, err := s.getSession(ctx, input.SessionID); err != nil {
		return nil, err
	}

	arg := &models.Argument{
		ID:              s.uuidGenerator.NewUUID(),
		SessionID:       input.SessionID,
		ParticipantID:   input.ParticipantID,
		ParticipantName: input.ParticipantName,
		Content:         input.Content,
		ImageURL:        input.ImageURL,
		CreatedAt:       s.clock.Now(),
	}

	err := s.argumentRepo.AddArgument(ctx, &argumentRepo.AddArgumentInput{
		Argument: arg,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to add argument: %w", err)
	}

	count, err := s.argumentRepo.CountBySession(ctx, &argumentRepo.CountBySessionInput{
		SessionID: input.SessionID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to count arguments: %w", err)
	}

	s.publisher.Publish(ctx, input.SessionID, events.NewArgumentSubmittedEvent(arg, int(count)))

	output := &SubmitArgumentOutput{
		Argument:      arg,
		ArgumentCount: int(count),
	}

	// The second argument closes the floor and the session gets
	// judged immediately. Later arguments (if a client forces them
	// through) never re-trigger.
	if count == 2 {
		judgeOut, err := s.arbiter.Judge(ctx, &arbiter.JudgeInput{
			SessionID: input.SessionID,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to judge session: %w", err)
		}

		output.JudgementTriggered = true
		output.Judgement = judgeOut.Judgement
	}

	return output, nil
}

// getSession fetches a session, translating the repository's
// not-found into the service error
func (s *service) getSession(ctx context.Context, sessionID string) (*models.Session, error) {
	session, err := s.sessionRepo.GetSession(ctx, &sessionRepo.GetSessionInput{
		SessionID: sessionID,
	})
	if err != nil {
		if errors.Is(err, sessionRepo.ErrSessionNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}
	return session, nil
}
