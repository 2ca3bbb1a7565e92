package argument

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
	argumentKeyPrefix         = "argument:"
	sessionArgumentsKeyPrefix = "session_arguments:"
)

// ErrArgumentNotFound is returned when an argument is not found
var ErrArgumentNotFound = errors.New("argument not found")

// Config holds configuration for the Redis argument repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed argument repository
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

// AddArgument appends an argument to its session's list
func (r *redisRepository) AddArgument(ctx context.Context, input *AddArgumentInput) error {
	if input == nil || input.Argument == nil {
		return errors.New("input and argument cannot be nil")
	}

	arg := input.Argument
	if arg.ID == "" {
		return errors.New("argument ID cannot be empty")
	}

	if arg.SessionID == "" {
		return errors.New("argument session ID cannot be empty")
	}

	// Marshal the argument to JSON
	argJSON, err := json.Marshal(arg)
	if err != nil {
		return fmt.Errorf("failed to marshal argument: %w", err)
	}

	// Create a Redis transaction
	pipe := r.client.Pipeline()

	// Store the argument record
	argKey := fmt.Sprintf("%s%s", argumentKeyPrefix, arg.ID)
	pipe.Set(ctx, argKey, argJSON, 0)

	// Append the argument ID to the session's ordered list; list order
	// is submission order
	sessionKey := fmt.Sprintf("%s%s", sessionArgumentsKeyPrefix, arg.SessionID)
	pipe.RPush(ctx, sessionKey, arg.ID)

	// Execute the transaction
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save argument: %w", err)
	}

	return nil
}

// GetArgumentsBySession retrieves all of a session's arguments in the
// order they were submitted
func (r *redisRepository) GetArgumentsBySession(ctx context.Context, input *GetArgumentsBySessionInput) (*GetArgumentsBySessionOutput, error) {
	if input == nil || input.SessionID == "" {
		return nil, errors.New("input and session ID cannot be empty")
	}

	sessionKey := fmt.Sprintf("%s%s", sessionArgumentsKeyPrefix, input.SessionID)
	argIDs, err := r.client.LRange(ctx, sessionKey, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get argument IDs: %w", err)
	}

	if len(argIDs) == 0 {
		return &GetArgumentsBySessionOutput{
			Arguments: []*models.Argument{},
		}, nil
	}

	// Fetch all argument records in one pipeline
	pipe := r.client.Pipeline()
	cmds := make([]*redis.StringCmd, len(argIDs))
	for i, argID := range argIDs {
		argKey := fmt.Sprintf("%s%s", argumentKeyPrefix, argID)
		cmds[i] = pipe.Get(ctx, argKey)
	}

	if _, err := pipe.Exec(ctx); err != nil && err != redis.Nil {
		return nil, fmt.Errorf("failed to get arguments: %w", err)
	}

	arguments := make([]*models.Argument, 0, len(argIDs))
	for i, cmd := range cmds {
		argJSON, err := cmd.Result()
		if err != nil {
			if err == redis.Nil {
				// Record deleted between the list read and the fetch
				continue
			}
			return nil, fmt.Errorf("failed to get argument %s: %w", argIDs[i], err)
		}

		var arg models.Argument
		if err := json.Unmarshal([]byte(argJSON), &arg); err != nil {
			return nil, fmt.Errorf("failed to unmarshal argument %s: %w", argIDs[i], err)
		}

		arguments = append(arguments, &arg)
	}

	return &GetArgumentsBySessionOutput{
		Arguments: arguments,
	}, nil
}

// CountBySession returns the number of arguments a session holds
func (r *redisRepository) CountBySession(ctx context.Context, input *CountBySessionInput) (int64, error) {
	if input == nil || input.SessionID == "" {
		return 0, errors.New("input and session ID cannot be empty")
	}

	sessionKey := fmt.Sprintf("%s%s", sessionArgumentsKeyPrefix, input.SessionID)
	count, err := r.client.LLen(ctx, sessionKey).Result()
	if err != nil {
		return 0, fmt.Errorf("failed to count arguments: %w", err)
	}

	return count, nil
}
