package overland

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/leohylee/tes-companion/internal/clock"
	"github.com/leohylee/tes-companion/internal/entities"
	dnderr "github.com/leohylee/tes-companion/internal/errors"
)

// RedisRepoConfig holds configuration for the Redis repository
type RedisRepoConfig struct {
	Client       redis.UniversalClient
	TimeProvider clock.TimeProvider
}

type redisRepo struct {
	client       redis.UniversalClient
	timeProvider clock.TimeProvider
}

// NewRedisRepository creates a new Redis-backed overland repository
func NewRedisRepository(cfg *RedisRepoConfig) Repository {
	if cfg == nil {
		panic("RedisRepoConfig cannot be nil")
	}
	if cfg.Client == nil {
		panic("Redis client cannot be nil")
	}
	if cfg.TimeProvider == nil {
		cfg.TimeProvider = clock.System{}
	}
	return &redisRepo{client: cfg.Client, timeProvider: cfg.TimeProvider}
}

func (r *redisRepo) key(ownerID string) string {
	return fmt.Sprintf("owner:%s:overland", ownerID)
}

// Get returns the owner's saved state
func (r *redisRepo) Get(ctx context.Context, ownerID string) (*entities.OverlandState, error) {
	if ownerID == "" {
		return nil, dnderr.InvalidArgument("owner ID is required")
	}

	jsonData, err := r.client.Get(ctx, r.key(ownerID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, notFound(ownerID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get overland state: %w", err)
	}

	var data Data
	if err := json.Unmarshal(jsonData, &data); err != nil {
		return nil, fmt.Errorf("failed to unmarshal overland state: %w", err)
	}
	return fromData(&data), nil
}

// Save replaces the owner's state
func (r *redisRepo) Save(ctx context.Context, ownerID string, state *entities.OverlandState) error {
	if err := validateForWrite(ownerID, state); err != nil {
		return err
	}

	jsonData, err := json.Marshal(toData(ownerID, state, r.timeProvider.Now()))
	if err != nil {
		return fmt.Errorf("failed to marshal overland state: %w", err)
	}
	if err := r.client.Set(ctx, r.key(ownerID), string(jsonData), 0).Err(); err != nil {
		return fmt.Errorf("failed to store overland state: %w", err)
	}
	return nil
}
