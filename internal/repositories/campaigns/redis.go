package campaigns

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

type redisRepo struct {
	client       redis.UniversalClient
	timeProvider clock.TimeProvider
}

// NewRedisRepository creates a new Redis-backed campaign repository
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

func (r *redisRepo) key(id string) string {
	return fmt.Sprintf("campaign:%s", id)
}

func (r *redisRepo) ownerCampaignsKey(ownerID string) string {
	return fmt.Sprintf("owner:%s:campaigns", ownerID)
}

func (r *redisRepo) sequenceKey(ownerID string) string {
	return fmt.Sprintf("owner:%s:campaign_seq", ownerID)
}

// NextNumber reserves the owner's next campaign number
func (r *redisRepo) NextNumber(ctx context.Context, ownerID string) (int, error) {
	if ownerID == "" {
		return 0, dnderr.InvalidArgument("owner ID is required")
	}
	n, err := r.client.Incr(ctx, r.sequenceKey(ownerID)).Result()
	if err != nil {
		return 0, fmt.Errorf("failed to reserve campaign number: %w", err)
	}
	return int(n), nil
}

// Create stores a new campaign
func (r *redisRepo) Create(ctx context.Context, campaign *entities.Campaign) error {
	if err := validateForWrite(campaign); err != nil {
		return err
	}

	exists, err := r.client.Exists(ctx, r.key(campaign.ID)).Result()
	if err != nil {
		return fmt.Errorf("failed to check campaign existence: %w", err)
	}
	if exists > 0 {
		return dnderr.AlreadyExistsf("campaign with ID '%s' already exists", campaign.ID).
			WithMeta("campaign_id", campaign.ID)
	}

	now := r.timeProvider.Now()
	if campaign.CreatedAt == 0 {
		campaign.CreatedAt = now.UnixMilli()
	}
	return r.write(ctx, toData(campaign, now))
}

func (r *redisRepo) write(ctx context.Context, data Data) error {
	jsonData, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to marshal campaign: %w", err)
	}

	pipe := r.client.Pipeline()
	pipe.Set(ctx, r.key(data.ID), string(jsonData), 0)
	pipe.SAdd(ctx, r.ownerCampaignsKey(data.OwnerID), data.ID)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to store campaign: %w", err)
	}
	return nil
}

func (r *redisRepo) load(ctx context.Context, id string) (*Data, error) {
	jsonData, err := r.client.Get(ctx, r.key(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, notFound(id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get campaign: %w", err)
	}

	var data Data
	if err := json.Unmarshal(jsonData, &data); err != nil {
		return nil, fmt.Errorf("failed to unmarshal campaign: %w", err)
	}
	return &data, nil
}

// Get retrieves a campaign by ID
func (r *redisRepo) Get(ctx context.Context, id string) (*entities.Campaign, error) {
	if id == "" {
		return nil, dnderr.InvalidArgument("campaign ID is required")
	}
	data, err := r.load(ctx, id)
	if err != nil {
		return nil, err
	}
	return fromData(data), nil
}

// ListByOwner retrieves all campaigns for an owner
func (r *redisRepo) ListByOwner(ctx context.Context, ownerID string) ([]*entities.Campaign, error) {
	if ownerID == "" {
		return nil, dnderr.InvalidArgument("owner ID is required")
	}

	ids, err := r.client.SMembers(ctx, r.ownerCampaignsKey(ownerID)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list campaign IDs: %w", err)
	}

	loaded := make([]*entities.Campaign, len(ids))
	g, gctx := errgroup.WithContext(ctx)
	for i, id := range ids {
		g.Go(func() error {
			campaign, err := r.Get(gctx, id)
			if dnderr.IsNotFound(err) {
				log.Printf("Redis: campaign %s listed for owner %s but missing", id, ownerID)
				return nil
			}
			if err != nil {
				return fmt.Errorf("failed to get campaign %s: %w", id, err)
			}
			loaded[i] = campaign
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	campaigns := make([]*entities.Campaign, 0, len(loaded))
	for _, c := range loaded {
		if c != nil {
			campaigns = append(campaigns, c)
		}
	}
	sortByNumberDesc(campaigns)
	return campaigns, nil
}

// Update replaces an existing campaign, keeping its number and creation time
func (r *redisRepo) Update(ctx context.Context, campaign *entities.Campaign) error {
	if err := validateForWrite(campaign); err != nil {
		return err
	}

	existing, err := r.load(ctx, campaign.ID)
	if err != nil {
		return err
	}
	if existing.OwnerID != campaign.OwnerID {
		return notFound(campaign.ID)
	}

	data := toData(campaign, r.timeProvider.Now())
	data.Number = existing.Number
	data.CreatedAt = existing.CreatedAt
	return r.write(ctx, data)
}

// Delete removes a campaign
func (r *redisRepo) Delete(ctx context.Context, id string) error {
	if id == "" {
		return dnderr.InvalidArgument("campaign ID is required")
	}

	existing, err := r.load(ctx, id)
	if err != nil {
		return err
	}

	pipe := r.client.Pipeline()
	pipe.Del(ctx, r.key(id))
	pipe.SRem(ctx, r.ownerCampaignsKey(existing.OwnerID), id)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete campaign: %w", err)
	}
	return nil
}
