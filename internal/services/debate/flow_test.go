package debate

import (
	"context"
	"sync"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/debatewise/arbiter/internal/common/clock"
	"github.com/debatewise/arbiter/internal/common/uuid"
	"github.com/debatewise/arbiter/internal/events"
	"github.com/debatewise/arbiter/internal/oracle"
	oracleMocks "github.com/debatewise/arbiter/internal/oracle/mocks"
	argumentRepo "github.com/debatewise/arbiter/internal/repositories/argument"
	sessionRepo "github.com/debatewise/arbiter/internal/repositories/session"
	verdictRepo "github.com/debatewise/arbiter/internal/repositories/verdict"
	arbiterService "github.com/debatewise/arbiter/internal/services/arbiter"
)

// recordingSink collects every event delivered to one subscriber
type recordingSink struct {
	mu     sync.Mutex
	events []events.Event
}

func (r *recordingSink) WriteJSON(v interface{}) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, *(v.(*events.Event)))
	return nil
}

func (r *recordingSink) received() []events.Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]events.Event(nil), r.events...)
}

// DebateFlowTestSuite runs the full session lifecycle against real
// repositories (miniredis), the real arbiter, and the real event
// registry; only the oracle is mocked.
type DebateFlowTestSuite struct {
	suite.Suite
	mockCtrl      *gomock.Controller
	mockOracle    *oracleMocks.MockOracle
	mr            *miniredis.Miniredis
	client        *redis.Client
	registry      *events.Registry
	debateService Service
	ctx           context.Context
}

func (s *DebateFlowTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockOracle = oracleMocks.NewMockOracle(s.mockCtrl)
	s.ctx = context.Background()

	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.mr = mr

	s.client = redis.NewClient(&redis.Options{
		Addr: s.mr.Addr(),
	})

	sessions, err := sessionRepo.NewRedis(&sessionRepo.Config{RedisClient: s.client})
	s.Require().NoError(err)
	arguments, err := argumentRepo.NewRedis(&argumentRepo.Config{RedisClient: s.client})
	s.Require().NoError(err)
	verdicts, err := verdictRepo.NewRedis(&verdictRepo.Config{RedisClient: s.client})
	s.Require().NoError(err)

	s.registry = events.NewRegistry()

	arbiterSvc, err := arbiterService.New(&arbiterService.Config{
		SessionRepo:   sessions,
		ArgumentRepo:  arguments,
		VerdictRepo:   verdicts,
		Oracle:        s.mockOracle,
		Publisher:     s.registry,
		Clock:         clock.New(),
		UUIDGenerator: uuid.New(),
	})
	s.Require().NoError(err)

	debateSvc, err := New(&Config{
		SessionRepo:   sessions,
		ArgumentRepo:  arguments,
		VerdictRepo:   verdicts,
		Arbiter:       arbiterSvc,
		Publisher:     s.registry,
		Clock:         clock.New(),
		UUIDGenerator: uuid.New(),
	})
	s.Require().NoError(err)
	s.debateService = debateSvc
}

func (s *DebateFlowTestSuite) TearDownTest() {
	s.client.Close()
	s.mr.Close()
	s.mockCtrl.Finish()
}

func TestDebateFlowTestSuite(t *testing.T) {
	suite.Run(t, new(DebateFlowTestSuite))
}

// A subscriber watching from the start sees the whole lifecycle in
// order: both joins, each argument with its running count, then the
// judgement, all on one connection.
func (s *DebateFlowTestSuite) TestFullLifecycleEventOrdering() {
	created, err := s.debateService.CreateSession(s.ctx, &CreateSessionInput{
		Name: "Cats vs Dogs",
	})
	s.Require().NoError(err)
	sessionID := created.Session.ID

	sink := &recordingSink{}
	s.registry.Subscribe(sessionID, sink)

	bind1, err := s.debateService.BindParticipant(s.ctx, &BindParticipantInput{
		SessionID:   sessionID,
		RequesterID: "user-1",
	})
	s.Require().NoError(err)
	s.Equal(1, bind1.Slot)

	bind2, err := s.debateService.BindParticipant(s.ctx, &BindParticipantInput{
		SessionID:   sessionID,
		RequesterID: "user-2",
	})
	s.Require().NoError(err)
	s.Equal(2, bind2.Slot)

	s.mockOracle.EXPECT().
		Evaluate(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input *oracle.EvaluateInput) (*oracle.Verdict, error) {
			// Arguments reach the oracle ordered by participant ID
			s.Require().Len(input.Arguments, 2)
			s.Equal("user-1", input.Arguments[0].ParticipantID)
			s.Equal("user-2", input.Arguments[1].ParticipantID)
			return &oracle.Verdict{
				Content:         "Cats take it",
				Winner:          "user-1",
				WinningArgument: "Cats are self-cleaning",
				Loser:           "user-2",
				LosingArgument:  "Dogs are loyal",
				Reasoning:       "Lower maintenance wins",
			}, nil
		})

	first, err := s.debateService.SubmitArgument(s.ctx, &SubmitArgumentInput{
		SessionID:       sessionID,
		ParticipantID:   "user-1",
		ParticipantName: "Debater 1",
		Content:         "Cats are self-cleaning",
	})
	s.Require().NoError(err)
	s.False(first.JudgementTriggered)

	second, err := s.debateService.SubmitArgument(s.ctx, &SubmitArgumentInput{
		SessionID:       sessionID,
		ParticipantID:   "user-2",
		ParticipantName: "Debater 2",
		Content:         "Dogs are loyal",
	})
	s.Require().NoError(err)
	s.True(second.JudgementTriggered)
	s.Equal("user-1", second.Judgement.WinnerID)
	s.Equal("Debater 1", second.Judgement.Winner)

	got := sink.received()
	s.Require().Len(got, 5)
	s.Equal(events.EventTypeParticipantJoined, got[0].Type)
	s.Contains(got[0].Message, "Debater 1")
	s.Equal(events.EventTypeParticipantJoined, got[1].Type)
	s.Contains(got[1].Message, "Debater 2")
	s.Equal(events.EventTypeArgumentSubmitted, got[2].Type)
	s.Equal(1, got[2].ArgumentCount)
	s.Equal(events.EventTypeArgumentSubmitted, got[3].Type)
	s.Equal(2, got[3].ArgumentCount)
	s.Equal(events.EventTypeJudgementReady, got[4].Type)
	s.Equal("user-1", got[4].Judgement.WinnerID)
}
