package characters

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"

	"github.com/leohylee/tes-companion/internal/clock"
	"github.com/leohylee/tes-companion/internal/entities"
	dnderr "github.com/leohylee/tes-companion/internal/errors"
)

// RedisRepoConfig holds configuration for the Redis repository
type RedisRepoConfig struct {
	Client       redis.UniversalClient
	TimeProvider clock.TimeProvider
}

// redisRepo implements the Repository interface using Redis
type redisRepo struct {
	client       redis.UniversalClient
	timeProvider clock.TimeProvider
}

// NewRedisRepository creates a new Redis-backed character repository
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

	return &redisRepo{
		client:       cfg.Client,
		timeProvider: cfg.TimeProvider,
	}
}

// key generates the Redis key for a character
func (r *redisRepo) key(id string) string {
	return fmt.Sprintf("character:%s", id)
}

// ownerCharactersKey generates the Redis key for an owner's character set
func (r *redisRepo) ownerCharactersKey(ownerID string) string {
	return fmt.Sprintf("owner:%s:characters", ownerID)
}

// Create stores a new character
func (r *redisRepo) Create(ctx context.Context, char *entities.Character) error {
	if err := validateForWrite(char); err != nil {
		return err
	}

	exists, err := r.client.Exists(ctx, r.key(char.ID)).Result()
	if err != nil {
		return fmt.Errorf("failed to check character existence: %w", err)
	}
	if exists > 0 {
		return dnderr.AlreadyExistsf("character with ID '%s' already exists", char.ID).
			WithMeta("character_id", char.ID)
	}

	now := r.timeProvider.Now()
	if char.CreatedAt == 0 {
		char.CreatedAt = now.UnixMilli()
	}

	return r.write(ctx, toData(char, now))
}

func (r *redisRepo) write(ctx context.Context, data Data) error {
	jsonData, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to marshal character: %w", err)
	}

	pipe := r.client.Pipeline()
	pipe.Set(ctx, r.key(data.ID), string(jsonData), 0)
	pipe.SAdd(ctx, r.ownerCharactersKey(data.OwnerID), data.ID)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to store character: %w", err)
	}
	return nil
}

func (r *redisRepo) load(ctx context.Context, id string) (*Data, error) {
	jsonData, err := r.client.Get(ctx, r.key(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, notFound(id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get character: %w", err)
	}

	var data Data
	if err := json.Unmarshal(jsonData, &data); err != nil {
		return nil, fmt.Errorf("failed to unmarshal character: %w", err)
	}
	return &data, nil
}

// Get retrieves a character by ID
func (r *redisRepo) Get(ctx context.Context, id string) (*entities.Character, error) {
	if id == "" {
		return nil, dnderr.InvalidArgument("character ID is required")
	}
	data, err := r.load(ctx, id)
	if err != nil {
		return nil, err
	}
	return fromData(data), nil
}

// ListByOwner retrieves all characters for a specific owner
func (r *redisRepo) ListByOwner(ctx context.Context, ownerID string) ([]*entities.Character, error) {
	if ownerID == "" {
		return nil, dnderr.InvalidArgument("owner ID is required")
	}

	ids, err := r.client.SMembers(ctx, r.ownerCharactersKey(ownerID)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list character IDs: %w", err)
	}

	loaded := make([]*entities.Character, len(ids))
	g, gctx := errgroup.WithContext(ctx)
	for i, id := range ids {
		g.Go(func() error {
			char, err := r.Get(gctx, id)
			if dnderr.IsNotFound(err) {
				// Index outlived the record
				log.Printf("Redis: character %s listed for owner %s but missing", id, ownerID)
				return nil
			}
			if err != nil {
				return fmt.Errorf("failed to get character %s: %w", id, err)
			}
			loaded[i] = char
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	characters := make([]*entities.Character, 0, len(loaded))
	for _, c := range loaded {
		if c != nil {
			characters = append(characters, c)
		}
	}
	sortNewestFirst(characters)
	return characters, nil
}

// Update replaces an existing character, keeping its creation time and owner
func (r *redisRepo) Update(ctx context.Context, char *entities.Character) error {
	if err := validateForWrite(char); err != nil {
		return err
	}

	existing, err := r.load(ctx, char.ID)
	if err != nil {
		return err
	}
	if existing.OwnerID != char.OwnerID {
		return notFound(char.ID)
	}

	data := toData(char, r.timeProvider.Now())
	data.CreatedAt = existing.CreatedAt
	return r.write(ctx, data)
}

// Delete removes a character
func (r *redisRepo) Delete(ctx context.Context, id string) error {
	if id == "" {
		return dnderr.InvalidArgument("character ID is required")
	}

	existing, err := r.load(ctx, id)
	if err != nil {
		return err
	}

	pipe := r.client.Pipeline()
	pipe.Del(ctx, r.key(id))
	pipe.SRem(ctx, r.ownerCharactersKey(existing.OwnerID), id)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete character: %w", err)
	}
	return nil
}
