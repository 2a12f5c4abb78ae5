package services

import (
	"github.com/leohylee/tes-companion/internal/repositories/campaigns"
	"github.com/leohylee/tes-companion/internal/repositories/characters"
	"github.com/leohylee/tes-companion/internal/repositories/overland"
	campaignService "github.com/leohylee/tes-companion/internal/services/campaign"
	characterService "github.com/leohylee/tes-companion/internal/services/character"
	overlandService "github.com/leohylee/tes-companion/internal/services/overland"
	"github.com/leohylee/tes-companion/internal/uuid"
)

// Provider holds all service instances
type Provider struct {
	CharacterService characterService.Service
	CampaignService  campaignService.Service
	OverlandService  overlandService.Service
}

// ProviderConfig holds configuration for creating services
type ProviderConfig struct {
	CharacterRepository characters.Repository
	CampaignRepository  campaigns.Repository
	OverlandRepository  overland.Repository
	UUIDGenerator       uuid.Generator
}

// NewProvider creates a new service provider with all services initialized
func NewProvider(cfg *ProviderConfig) *Provider {
	// Use in-memory repositories if none provided
	charRepo := cfg.CharacterRepository
	if charRepo == nil {
		charRepo = characters.NewInMemoryRepository()
	}

	campaignRepo := cfg.CampaignRepository
	if campaignRepo == nil {
		campaignRepo = campaigns.NewInMemoryRepository()
	}

	overlandRepo := cfg.OverlandRepository
	if overlandRepo == nil {
		overlandRepo = overland.NewInMemoryRepository()
	}

	return &Provider{
		CharacterService: characterService.NewService(&characterService.ServiceConfig{
			Repository:    charRepo,
			UUIDGenerator: cfg.UUIDGenerator,
		}),
		CampaignService: campaignService.NewService(&campaignService.ServiceConfig{
			Repository:          campaignRepo,
			CharacterRepository: charRepo,
			UUIDGenerator:       cfg.UUIDGenerator,
		}),
		OverlandService: overlandService.NewService(&overlandService.ServiceConfig{
			Repository: overlandRepo,
		}),
	}
}
