package campaign

import (
	"context"
	"log"

	"golang.org/x/sync/errgroup"

	"github.com/leohylee/tes-companion/internal/entities"
	dnderr "github.com/leohylee/tes-companion/internal/errors"
	"github.com/leohylee/tes-companion/internal/repositories/campaigns"
	"github.com/leohylee/tes-companion/internal/repositories/characters"
	"github.com/leohylee/tes-companion/internal/uuid"
)

// Repository is an alias for the campaign repository interface
type Repository = campaigns.Repository

// Service defines the campaign service interface
type Service interface {
	// ListCampaigns lists the owner's campaigns, highest number first
	ListCampaigns(ctx context.Context, ownerID string) ([]*entities.Campaign, error)

	// CreateCampaign starts a new campaign numbered after the owner's last one
	CreateCampaign(ctx context.Context, ownerID string, characterIDs []string) (*entities.Campaign, error)

	// GetCampaign retrieves a campaign with its party's characters populated
	GetCampaign(ctx context.Context, ownerID, campaignID string) (*entities.Campaign, error)

	// UpdateCampaign merges a partial update and returns the stored result
	UpdateCampaign(ctx context.Context, ownerID, campaignID string, patch *entities.CampaignPatch) (*entities.Campaign, error)

	// DeleteCampaign removes one of the owner's campaigns
	DeleteCampaign(ctx context.Context, ownerID, campaignID string) error
}

// ServiceConfig holds configuration for the service
type ServiceConfig struct {
	Repository          Repository            // Required
	CharacterRepository characters.Repository // Required
	UUIDGenerator       uuid.Generator        // Optional, will use default if nil
}

type service struct {
	repository    Repository
	characterRepo characters.Repository
	uuidGenerator uuid.Generator
}

// NewService creates a new campaign service
func NewService(cfg *ServiceConfig) Service {
	if cfg.Repository == nil {
		panic("repository is required")
	}
	if cfg.CharacterRepository == nil {
		panic("character repository is required")
	}

	svc := &service{
		repository:    cfg.Repository,
		characterRepo: cfg.CharacterRepository,
	}

	if cfg.UUIDGenerator != nil {
		svc.uuidGenerator = cfg.UUIDGenerator
	} else {
		svc.uuidGenerator = uuid.NewGoogleUUIDGenerator()
	}

	return svc
}

// ListCampaigns lists the owner's campaigns
func (s *service) ListCampaigns(ctx context.Context, ownerID string) ([]*entities.Campaign, error) {
	if ownerID == "" {
		return nil, dnderr.Unauthenticated("owner is required")
	}

	list, err := s.repository.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, dnderr.Wrapf(err, "failed to list campaigns for owner '%s'", ownerID).
			WithMeta("owner_id", ownerID)
	}
	return list, nil
}

// CreateCampaign reserves the next number and stores a fresh campaign
func (s *service) CreateCampaign(ctx context.Context, ownerID string, characterIDs []string) (*entities.Campaign, error) {
	if ownerID == "" {
		return nil, dnderr.Unauthenticated("owner is required")
	}
	if err := entities.ValidateCampaignCharacters(characterIDs); err != nil {
		return nil, err
	}

	number, err := s.repository.NextNumber(ctx, ownerID)
	if err != nil {
		return nil, dnderr.Wrap(err, "failed to reserve campaign number").
			WithMeta("owner_id", ownerID)
	}

	c := entities.NewCampaign(s.uuidGenerator.New(), ownerID, number, characterIDs)
	if err := s.repository.Create(ctx, c); err != nil {
		return nil, dnderr.Wrap(err, "failed to create campaign").
			WithMeta("owner_id", ownerID).
			WithMeta("campaign_number", number)
	}

	log.Printf("CampaignService: created %q (%s) with %d characters for %s", c.Name, c.ID, len(characterIDs), ownerID)
	return c, nil
}

// GetCampaign retrieves a campaign and populates its characters
func (s *service) GetCampaign(ctx context.Context, ownerID, campaignID string) (*entities.Campaign, error) {
	c, err := s.owned(ctx, ownerID, campaignID)
	if err != nil {
		return nil, err
	}

	party, err := s.loadParty(ctx, ownerID, c.CharacterIDs)
	if err != nil {
		return nil, dnderr.Wrapf(err, "failed to load characters for campaign '%s'", campaignID).
			WithMeta("campaign_id", campaignID)
	}
	c.Characters = party
	return c, nil
}

// loadParty fetches the party in parallel, skipping characters that no
// longer exist or belong to someone else
func (s *service) loadParty(ctx context.Context, ownerID string, ids []string) ([]*entities.Character, error) {
	loaded := make([]*entities.Character, len(ids))

	g, gctx := errgroup.WithContext(ctx)
	for i, id := range ids {
		g.Go(func() error {
			char, err := s.characterRepo.Get(gctx, id)
			if dnderr.IsNotFound(err) {
				return nil
			}
			if err != nil {
				return err
			}
			if char.OwnerID == ownerID {
				loaded[i] = char
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	party := make([]*entities.Character, 0, len(loaded))
	for _, char := range loaded {
		if char != nil {
			party = append(party, char)
		}
	}
	return party, nil
}

// UpdateCampaign merges patch into the stored campaign
func (s *service) UpdateCampaign(ctx context.Context, ownerID, campaignID string, patch *entities.CampaignPatch) (*entities.Campaign, error) {
	if err := patch.Validate(); err != nil {
		return nil, err
	}

	c, err := s.owned(ctx, ownerID, campaignID)
	if err != nil {
		return nil, err
	}

	c.Apply(patch)
	c.Normalize()
	if err := s.repository.Update(ctx, c); err != nil {
		return nil, dnderr.Wrapf(err, "failed to update campaign '%s'", campaignID).
			WithMeta("campaign_id", campaignID)
	}
	return c, nil
}

// DeleteCampaign removes one of the owner's campaigns
func (s *service) DeleteCampaign(ctx context.Context, ownerID, campaignID string) error {
	if _, err := s.owned(ctx, ownerID, campaignID); err != nil {
		return err
	}

	if err := s.repository.Delete(ctx, campaignID); err != nil {
		return dnderr.Wrapf(err, "failed to delete campaign '%s'", campaignID).
			WithMeta("campaign_id", campaignID)
	}

	log.Printf("CampaignService: deleted %s for %s", campaignID, ownerID)
	return nil
}

func (s *service) owned(ctx context.Context, ownerID, campaignID string) (*entities.Campaign, error) {
	if ownerID == "" {
		return nil, dnderr.Unauthenticated("owner is required")
	}
	if campaignID == "" {
		return nil, dnderr.InvalidArgument("campaign ID is required")
	}

	c, err := s.repository.Get(ctx, campaignID)
	if err != nil {
		return nil, dnderr.Wrapf(err, "failed to get campaign '%s'", campaignID).
			WithMeta("campaign_id", campaignID)
	}
	if c.OwnerID != ownerID {
		return nil, dnderr.NotFoundf("campaign with ID '%s' not found", campaignID).
			WithMeta("campaign_id", campaignID)
	}
	return c, nil
}
