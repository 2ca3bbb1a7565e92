package argument

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/debatewise/arbiter/internal/models"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	mr      *miniredis.Miniredis
	client  *redis.Client
	repo    Repository
	testNow time.Time
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.mr = mr

	s.client = redis.NewClient(&redis.Options{
		Addr: s.mr.Addr(),
	})

	repo, err := NewRedis(&Config{
		RedisClient: s.client,
	})
	s.Require().NoError(err)
	s.repo = repo

	s.testNow = time.Date(2025, 6, 10, 9, 0, 0, 0, time.UTC)
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.client.Close()
	s.mr.Close()
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

func (s *RedisRepositoryTestSuite) addArgument(id, participantID, content string) {
	err := s.repo.AddArgument(context.Background(), &AddArgumentInput{
		Argument: &models.Argument{
			ID:              id,
			SessionID:       "test-session-id",
			ParticipantID:   participantID,
			ParticipantName: fmt.Sprintf("Name of %s", participantID),
			Content:         content,
			CreatedAt:       s.testNow,
		},
	})
	s.Require().NoError(err)
}

func (s *RedisRepositoryTestSuite) TestAddAndGetArguments() {
	s.addArgument("arg-1", "user-1", "Cowboys have 5 championships")
	s.addArgument("arg-2", "user-2", "Eagles have more recent success")

	out, err := s.repo.GetArgumentsBySession(context.Background(), &GetArgumentsBySessionInput{
		SessionID: "test-session-id",
	})
	s.Require().NoError(err)
	s.Require().Len(out.Arguments, 2)

	// Submission order is preserved
	s.Equal("arg-1", out.Arguments[0].ID)
	s.Equal("arg-2", out.Arguments[1].ID)
	s.Equal("user-1", out.Arguments[0].ParticipantID)
	s.Equal("Cowboys have 5 championships", out.Arguments[0].Content)
}

func (s *RedisRepositoryTestSuite) TestCountBySession() {
	count, err := s.repo.CountBySession(context.Background(), &CountBySessionInput{
		SessionID: "test-session-id",
	})
	s.Require().NoError(err)
	s.Equal(int64(0), count)

	s.addArgument("arg-1", "user-1", "first")
	s.addArgument("arg-2", "user-2", "second")
	s.addArgument("arg-3", "user-1", "third")

	count, err = s.repo.CountBySession(context.Background(), &CountBySessionInput{
		SessionID: "test-session-id",
	})
	s.Require().NoError(err)
	s.Equal(int64(3), count)
}

func (s *RedisRepositoryTestSuite) TestGetArgumentsEmptySession() {
	out, err := s.repo.GetArgumentsBySession(context.Background(), &GetArgumentsBySessionInput{
		SessionID: "empty-session",
	})
	s.Require().NoError(err)
	s.Empty(out.Arguments)
}

func (s *RedisRepositoryTestSuite) TestAddArgumentValidation() {
	err := s.repo.AddArgument(context.Background(), nil)
	s.Require().Error(err)

	err = s.repo.AddArgument(context.Background(), &AddArgumentInput{
		Argument: &models.Argument{SessionID: "test-session-id"},
	})
	s.Require().Error(err)

	err = s.repo.AddArgument(context.Background(), &AddArgumentInput{
		Argument: &models.Argument{ID: "arg-1"},
	})
	s.Require().Error(err)
}
