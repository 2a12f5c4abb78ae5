package store

//go:generate mockgen -destination=mock/mock_remote.go -package=mockstore -source=remote.go

import (
	"context"

	"github.com/leohylee/tes-companion/internal/entities"
)

// CharacterRemote is the system of record for characters
type CharacterRemote interface {
	ListCharacters(ctx context.Context) ([]*entities.Character, error)
	CreateCharacter(ctx context.Context, input *entities.CharacterInput) (*entities.Character, error)
	UpdateCharacter(ctx context.Context, id string, patch *entities.CharacterPatch) (*entities.Character, error)
	DeleteCharacter(ctx context.Context, id string) error
}

// CampaignRemote is the system of record for campaigns
type CampaignRemote interface {
	ListCampaigns(ctx context.Context) ([]*entities.Campaign, error)
	CreateCampaign(ctx context.Context, characterIDs []string) (*entities.Campaign, error)
	UpdateCampaign(ctx context.Context, id string, patch *entities.CampaignPatch) (*entities.Campaign, error)
	DeleteCampaign(ctx context.Context, id string) error
}

// OverlandRemote is the system of record for the free-roam map
type OverlandRemote interface {
	GetOverland(ctx context.Context) (*entities.OverlandState, error)
	SaveOverland(ctx context.Context, state *entities.OverlandState) (*entities.OverlandState, error)
}
