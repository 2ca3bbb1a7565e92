package arbiter

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	clockMocks "github.com/debatewise/arbiter/internal/common/clock/mocks"
	uuidMocks "github.com/debatewise/arbiter/internal/common/uuid/mocks"
	"github.com/debatewise/arbiter/internal/events"
	eventMocks "github.com/debatewise/arbiter/internal/events/mocks"
	"github.com/debatewise/arbiter/internal/models"
	"github.com/debatewise/arbiter/internal/oracle"
	oracleMocks "github.com/debatewise/arbiter/internal/oracle/mocks"
	argumentRepo "github.com/debatewise/arbiter/internal/repositories/argument"
	argumentMocks "github.com/debatewise/arbiter/internal/repositories/argument/mocks"
	sessionRepo "github.com/debatewise/arbiter/internal/repositories/session"
	sessionMocks "github.com/debatewise/arbiter/internal/repositories/session/mocks"
	verdictRepo "github.com/debatewise/arbiter/internal/repositories/verdict"
	verdictMocks "github.com/debatewise/arbiter/internal/repositories/verdict/mocks"
)

type ArbiterServiceTestSuite struct {
	suite.Suite
	mockCtrl         *gomock.Controller
	mockSessionRepo  *sessionMocks.MockRepository
	mockArgumentRepo *argumentMocks.MockRepository
	mockVerdictRepo  *verdictMocks.MockRepository
	mockOracle       *oracleMocks.MockOracle
	mockPublisher    *eventMocks.MockPublisher
	mockClock        *clockMocks.MockClock
	mockUUID         *uuidMocks.MockUUID
	arbiterService   Service
	ctx              context.Context

	// Test data
	testTime      time.Time
	testSessionID string

	expectedSession   *models.Session
	expectedArguments []*models.Argument
}

func (s *ArbiterServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockSessionRepo = sessionMocks.NewMockRepository(s.mockCtrl)
	s.mockArgumentRepo = argumentMocks.NewMockRepository(s.mockCtrl)
	s.mockVerdictRepo = verdictMocks.NewMockRepository(s.mockCtrl)
	s.mockOracle = oracleMocks.NewMockOracle(s.mockCtrl)
	s.mockPublisher = eventMocks.NewMockPublisher(s.mockCtrl)
	s.mockClock = clockMocks.NewMockClock(s.mockCtrl)
	s.mockUUID = uuidMocks.NewMockUUID(s.mockCtrl)

	s.ctx = context.Background()

	s.testTime = time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)
	s.testSessionID = "test-session-id"

	s.mockClock.EXPECT().Now().Return(s.testTime).AnyTimes()
	s.mockUUID.EXPECT().NewUUID().Return("test-judgement-id").AnyTimes()

	s.expectedSession = &models.Session{
		ID:               s.testSessionID,
		Name:             "Cowboys vs Eagles",
		Participant1ID:   "user-1",
		Participant1Name: "Debater 1",
		Participant2ID:   "user-2",
		Participant2Name: "Debater 2",
	}

	// Stored in submission order, deliberately not in participant-ID
	// order
	s.expectedArguments = []*models.Argument{
		{
			ID:              "arg-2",
			SessionID:       s.testSessionID,
			ParticipantID:   "user-2",
			ParticipantName: "Debater 2",
			Content:         "Eagles have more recent success",
		},
		{
			ID:              "arg-1",
			SessionID:       s.testSessionID,
			ParticipantID:   "user-1",
			ParticipantName: "Debater 1",
			Content:         "Cowboys have 5 championships",
		},
	}

	svc, err := New(&Config{
		SessionRepo:   s.mockSessionRepo,
		ArgumentRepo:  s.mockArgumentRepo,
		VerdictRepo:   s.mockVerdictRepo,
		Oracle:        s.mockOracle,
		Publisher:     s.mockPublisher,
		Clock:         s.mockClock,
		UUIDGenerator: s.mockUUID,
	})
	s.Require().NoError(err)
	s.arbiterService = svc
}

func (s *ArbiterServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestArbiterServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ArbiterServiceTestSuite))
}

func (s *ArbiterServiceTestSuite) expectMaterialLoad() {
	s.mockSessionRepo.EXPECT().
		GetSession(s.ctx, &sessionRepo.GetSessionInput{SessionID: s.testSessionID}).
		Return(s.expectedSession, nil)

	s.mockArgumentRepo.EXPECT().
		GetArgumentsBySession(s.ctx, &argumentRepo.GetArgumentsBySessionInput{SessionID: s.testSessionID}).
		Return(&argumentRepo.GetArgumentsBySessionOutput{Arguments: s.expectedArguments}, nil)
}

func (s *ArbiterServiceTestSuite) TestJudgeSuccess() {
	s.expectMaterialLoad()

	var gotInput *oracle.EvaluateInput
	s.mockOracle.EXPECT().
		Evaluate(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input *oracle.EvaluateInput) (*oracle.Verdict, error) {
			gotInput = input
			return &oracle.Verdict{
				Content:         "Debater 1 takes it",
				Winner:          "user-1",
				WinningArgument: "Cowboys have 5 championships",
				Loser:           "user-2",
				LosingArgument:  "Eagles have more recent success",
				Reasoning:       "More titles",
			}, nil
		})

	var saved *models.Judgement
	s.mockVerdictRepo.EXPECT().
		SaveJudgement(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input *verdictRepo.SaveJudgementInput) error {
			saved = input.Judgement
			return nil
		})

	s.mockPublisher.EXPECT().
		Publish(s.ctx, s.testSessionID, gomock.Any()).
		Do(func(_ context.Context, _ string, event *events.Event) {
			s.Equal(events.EventTypeJudgementReady, event.Type)
			s.NotNil(event.Judgement)
		})

	out, err := s.arbiterService.Judge(s.ctx, &JudgeInput{SessionID: s.testSessionID})
	s.Require().NoError(err)

	// Arguments reach the oracle sorted by participant ID, not by
	// submission order
	s.Require().Len(gotInput.Arguments, 2)
	s.Equal("user-1", gotInput.Arguments[0].ParticipantID)
	s.Equal("user-2", gotInput.Arguments[1].ParticipantID)
	s.Empty(gotInput.Appeal)

	s.Require().NotNil(saved)
	s.Equal("test-judgement-id", saved.ID)
	s.Equal("Debater 1", saved.Winner)
	s.Equal("user-1", saved.WinnerID)
	s.Equal("Debater 2", saved.Loser)
	s.Equal("user-2", saved.LoserID)
	s.Equal(s.testTime, saved.CreatedAt)
	s.False(saved.Degraded)

	s.Equal(saved, out.Judgement)
}

func (s *ArbiterServiceTestSuite) TestJudgeUnresolvableWinnerKeepsUnknownLabel() {
	s.expectMaterialLoad()

	s.mockOracle.EXPECT().
		Evaluate(gomock.Any(), gomock.Any()).
		Return(&oracle.Verdict{
			Content:   "A verdict",
			Winner:    "stranger",
			Loser:     "user-2",
			Reasoning: "Because",
		}, nil)

	s.mockVerdictRepo.EXPECT().
		SaveJudgement(s.ctx, gomock.Any()).
		Return(nil)

	s.mockPublisher.EXPECT().
		Publish(s.ctx, s.testSessionID, gomock.Any())

	out, err := s.arbiterService.Judge(s.ctx, &JudgeInput{SessionID: s.testSessionID})
	s.Require().NoError(err)

	// An identifier the session does not know degrades to the Unknown
	// label but the raw ID is kept
	s.Equal(models.UnknownParty, out.Judgement.Winner)
	s.Equal("stranger", out.Judgement.WinnerID)
	s.Equal("Debater 2", out.Judgement.Loser)
	s.False(out.Judgement.Degraded)
}

func (s *ArbiterServiceTestSuite) TestJudgeOracleFailurePersistsDegradedJudgement() {
	s.expectMaterialLoad()

	s.mockOracle.EXPECT().
		Evaluate(gomock.Any(), gomock.Any()).
		Return(nil, errors.New("connection timed out"))

	var saved *models.Judgement
	s.mockVerdictRepo.EXPECT().
		SaveJudgement(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input *verdictRepo.SaveJudgementInput) error {
			saved = input.Judgement
			return nil
		})

	s.mockPublisher.EXPECT().
		Publish(s.ctx, s.testSessionID, gomock.Any())

	out, err := s.arbiterService.Judge(s.ctx, &JudgeInput{SessionID: s.testSessionID})

	// The oracle failure is absorbed, not propagated
	s.Require().NoError(err)
	s.Require().NotNil(saved)
	s.True(saved.Degraded)
	s.Equal(models.UnknownParty, saved.Winner)
	s.Equal(models.UnknownParty, saved.Loser)
	s.Empty(saved.WinnerID)
	s.Empty(saved.LoserID)
	s.Contains(saved.Content, "connection timed out")
	s.Contains(saved.Reasoning, "connection timed out")
	s.Equal(saved, out.Judgement)
}

func (s *ArbiterServiceTestSuite) TestJudgeStorageFailureAborts() {
	s.expectMaterialLoad()

	s.mockOracle.EXPECT().
		Evaluate(gomock.Any(), gomock.Any()).
		Return(&oracle.Verdict{
			Content:   "A verdict",
			Winner:    "user-1",
			Loser:     "user-2",
			Reasoning: "Because",
		}, nil)

	s.mockVerdictRepo.EXPECT().
		SaveJudgement(s.ctx, gomock.Any()).
		Return(errors.New("redis down"))

	_, err := s.arbiterService.Judge(s.ctx, &JudgeInput{SessionID: s.testSessionID})
	s.Require().Error(err)
}

func (s *ArbiterServiceTestSuite) TestJudgeSessionNotFound() {
	s.mockSessionRepo.EXPECT().
		GetSession(s.ctx, &sessionRepo.GetSessionInput{SessionID: s.testSessionID}).
		Return(nil, sessionRepo.ErrSessionNotFound)

	_, err := s.arbiterService.Judge(s.ctx, &JudgeInput{SessionID: s.testSessionID})
	s.Require().ErrorIs(err, sessionRepo.ErrSessionNotFound)
}

func (s *ArbiterServiceTestSuite) TestJudgeWithAppealSuccess() {
	s.expectMaterialLoad()

	appeal := &models.Appeal{
		ID:            "appeal-1",
		SessionID:     s.testSessionID,
		ParticipantID: "user-2",
		Content:       "this is subjective",
	}

	var gotInput *oracle.EvaluateInput
	s.mockOracle.EXPECT().
		Evaluate(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input *oracle.EvaluateInput) (*oracle.Verdict, error) {
			gotInput = input
			return &oracle.Verdict{
				Content:   "Still Debater 1",
				Winner:    "user-1",
				Loser:     "user-2",
				Reasoning: "The appeal does not change the balance",
			}, nil
		})

	var saved *models.AppealJudgement
	s.mockVerdictRepo.EXPECT().
		AddAppealJudgement(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input *verdictRepo.AddAppealJudgementInput) error {
			saved = input.AppealJudgement
			return nil
		})

	s.mockPublisher.EXPECT().
		Publish(s.ctx, s.testSessionID, gomock.Any()).
		Do(func(_ context.Context, _ string, event *events.Event) {
			s.Equal(events.EventTypeAppealProcessed, event.Type)
			s.NotNil(event.AppealJudgement)
		})

	out, err := s.arbiterService.JudgeWithAppeal(s.ctx, &JudgeWithAppealInput{
		SessionID: s.testSessionID,
		Appeal:    appeal,
	})
	s.Require().NoError(err)

	s.Equal("this is subjective", gotInput.Appeal)
	s.Require().NotNil(saved)
	s.Equal("Debater 1", saved.Winner)
	s.Equal("user-2", saved.LoserID)
	s.False(saved.Degraded)
	s.Equal(saved, out.AppealJudgement)
}

func (s *ArbiterServiceTestSuite) TestJudgeWithAppealOracleFailurePersistsDegraded() {
	s.expectMaterialLoad()

	s.mockOracle.EXPECT().
		Evaluate(gomock.Any(), gomock.Any()).
		Return(nil, errors.New("oracle exploded"))

	var saved *models.AppealJudgement
	s.mockVerdictRepo.EXPECT().
		AddAppealJudgement(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input *verdictRepo.AddAppealJudgementInput) error {
			saved = input.AppealJudgement
			return nil
		})

	s.mockPublisher.EXPECT().
		Publish(s.ctx, s.testSessionID, gomock.Any())

	_, err := s.arbiterService.JudgeWithAppeal(s.ctx, &JudgeWithAppealInput{
		SessionID: s.testSessionID,
		Appeal:    &models.Appeal{ID: "appeal-1", Content: "unfair"},
	})
	s.Require().NoError(err)
	s.Require().NotNil(saved)
	s.True(saved.Degraded)
	s.Contains(saved.Content, "oracle exploded")
}

func (s *ArbiterServiceTestSuite) TestNewValidation() {
	_, err := New(nil)
	s.Require().ErrorIs(err, ErrNilConfig)

	_, err = New(&Config{})
	s.Require().ErrorIs(err, ErrNilSessionRepo)
}
