package verdict

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/debatewise/arbiter/internal/models"
)

const (
	// Key prefixes for Redis
	judgementKeyPrefix            = "judgement:"
	appealJudgementKeyPrefix      = "appeal_judgement:"
	sessionAppealJudgementsPrefix = "session_appeal_judgements:"
	appealKeyPrefix               = "appeal:"
	sessionAppealsKeyPrefix       = "session_appeals:"
)

var (
	// ErrJudgementNotFound is returned when a session has no judgement
	ErrJudgementNotFound = errors.New("judgement not found")

	// ErrAppealJudgementNotFound is returned when a session has no
	// appeal judgement
	ErrAppealJudgementNotFound = errors.New("appeal judgement not found")
)

// Config holds configuration for the Redis verdict repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed verdict repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	// Validate config
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	// Test connection
	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisRepository{
		client: cfg.RedisClient,
	}, nil
}

// SaveJudgement persists a session's judgement. The record is keyed by
// session, so re-judging overwrites the previous verdict in place.
func (r *redisRepository) SaveJudgement(ctx context.Context, input *SaveJudgementInput) error {
	if input == nil || input.Judgement == nil {
		return errors.New("input and judgement cannot be nil")
	}

	if input.Judgement.SessionID == "" {
		return errors.New("judgement session ID cannot be empty")
	}

	judgementJSON, err := json.Marshal(input.Judgement)
	if err != nil {
		return fmt.Errorf("failed to marshal judgement: %w", err)
	}

	judgementKey := fmt.Sprintf("%s%s", judgementKeyPrefix, input.Judgement.SessionID)
	if err := r.client.Set(ctx, judgementKey, judgementJSON, 0).Err(); err != nil {
		return fmt.Errorf("failed to save judgement: %w", err)
	}

	return nil
}

// GetJudgement retrieves a session's judgement
func (r *redisRepository) GetJudgement(ctx context.Context, input *GetJudgementInput) (*models.Judgement, error) {
	if input == nil || input.SessionID == "" {
		return nil, errors.New("input and session ID cannot be empty")
	}

	judgementKey := fmt.Sprintf("%s%s", judgementKeyPrefix, input.SessionID)
	judgementJSON, err := r.client.Get(ctx, judgementKey).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrJudgementNotFound
		}
		return nil, fmt.Errorf("failed to get judgement: %w", err)
	}

	var judgement models.Judgement
	if err := json.Unmarshal([]byte(judgementJSON), &judgement); err != nil {
		return nil, fmt.Errorf("failed to unmarshal judgement: %w", err)
	}

	return &judgement, nil
}

// AddAppealJudgement inserts a new appeal judgement record and appends
// it to the session's list. Unlike SaveJudgement this never
// overwrites: each call creates a new record.
func (r *redisRepository) AddAppealJudgement(ctx context.Context, input *AddAppealJudgementInput) error {
	if input == nil || input.AppealJudgement == nil {
		return errors.New("input and appeal judgement cannot be nil")
	}

	aj := input.AppealJudgement
	if aj.ID == "" {
		return errors.New("appeal judgement ID cannot be empty")
	}

	if aj.SessionID == "" {
		return errors.New("appeal judgement session ID cannot be empty")
	}

	ajJSON, err := json.Marshal(aj)
	if err != nil {
		return fmt.Errorf("failed to marshal appeal judgement: %w", err)
	}

	pipe := r.client.Pipeline()

	ajKey := fmt.Sprintf("%s%s", appealJudgementKeyPrefix, aj.ID)
	pipe.Set(ctx, ajKey, ajJSON, 0)

	sessionKey := fmt.Sprintf("%s%s", sessionAppealJudgementsPrefix, aj.SessionID)
	pipe.RPush(ctx, sessionKey, aj.ID)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save appeal judgement: %w", err)
	}

	return nil
}

// GetAppealJudgement retrieves the most recent appeal judgement for a
// session. At most one is expected under normal flow.
func (r *redisRepository) GetAppealJudgement(ctx context.Context, input *GetAppealJudgementInput) (*models.AppealJudgement, error) {
	if input == nil || input.SessionID == "" {
		return nil, errors.New("input and session ID cannot be empty")
	}

	sessionKey := fmt.Sprintf("%s%s", sessionAppealJudgementsPrefix, input.SessionID)
	ajIDs, err := r.client.LRange(ctx, sessionKey, -1, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get appeal judgement IDs: %w", err)
	}

	if len(ajIDs) == 0 {
		return nil, ErrAppealJudgementNotFound
	}

	ajKey := fmt.Sprintf("%s%s", appealJudgementKeyPrefix, ajIDs[0])
	ajJSON, err := r.client.Get(ctx, ajKey).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrAppealJudgementNotFound
		}
		return nil, fmt.Errorf("failed to get appeal judgement: %w", err)
	}

	var aj models.AppealJudgement
	if err := json.Unmarshal([]byte(ajJSON), &aj); err != nil {
		return nil, fmt.Errorf("failed to unmarshal appeal judgement: %w", err)
	}

	return &aj, nil
}

// AddAppeal appends an appeal to a session's append-only appeal list
func (r *redisRepository) AddAppeal(ctx context.Context, input *AddAppealInput) error {
	if input == nil || input.Appeal == nil {
		return errors.New("input and appeal cannot be nil")
	}

	appeal := input.Appeal
	if appeal.ID == "" {
		return errors.New("appeal ID cannot be empty")
	}

	if appeal.SessionID == "" {
		return errors.New("appeal session ID cannot be empty")
	}

	appealJSON, err := json.Marshal(appeal)
	if err != nil {
		return fmt.Errorf("failed to marshal appeal: %w", err)
	}

	pipe := r.client.Pipeline()

	appealKey := fmt.Sprintf("%s%s", appealKeyPrefix, appeal.ID)
	pipe.Set(ctx, appealKey, appealJSON, 0)

	sessionKey := fmt.Sprintf("%s%s", sessionAppealsKeyPrefix, appeal.SessionID)
	pipe.RPush(ctx, sessionKey, appeal.ID)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save appeal: %w", err)
	}

	return nil
}

// GetAppealsBySession retrieves a session's appeals in submission order
func (r *redisRepository) GetAppealsBySession(ctx context.Context, input *GetAppealsBySessionInput) (*GetAppealsBySessionOutput, error) {
	if input == nil || input.SessionID == "" {
		return nil, errors.New("input and session ID cannot be empty")
	}

	sessionKey := fmt.Sprintf("%s%s", sessionAppealsKeyPrefix, input.SessionID)
	appealIDs, err := r.client.LRange(ctx, sessionKey, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get appeal IDs: %w", err)
	}

	if len(appealIDs) == 0 {
		return &GetAppealsBySessionOutput{
			Appeals: []*models.Appeal{},
		}, nil
	}

	pipe := r.client.Pipeline()
	cmds := make([]*redis.StringCmd, len(appealIDs))
	for i, appealID := range appealIDs {
		appealKey := fmt.Sprintf("%s%s", appealKeyPrefix, appealID)
		cmds[i] = pipe.Get(ctx, appealKey)
	}

	if _, err := pipe.Exec(ctx); err != nil && err != redis.Nil {
		return nil, fmt.Errorf("failed to get appeals: %w", err)
	}

	appeals := make([]*models.Appeal, 0, len(appealIDs))
	for i, cmd := range cmds {
		appealJSON, err := cmd.Result()
		if err != nil {
			if err == redis.Nil {
				continue
			}
			return nil, fmt.Errorf("failed to get appeal %s: %w", appealIDs[i], err)
		}

		var appeal models.Appeal
		if err := json.Unmarshal([]byte(appealJSON), &appeal); err != nil {
			return nil, fmt.Errorf("failed to unmarshal appeal %s: %w", appealIDs[i], err)
		}

		appeals = append(appeals, &appeal)
	}

	return &GetAppealsBySessionOutput{
		Appeals: appeals,
	}, nil
}
