package companion

import (
	"context"

	"github.com/leohylee/tes-companion/internal/entities"
	"github.com/leohylee/tes-companion/internal/handlers/rest"
	"github.com/leohylee/tes-companion/internal/store"
)

// Client talks to the companion REST API on behalf of one user
type Client interface {
	store.CharacterRemote
	store.CampaignRemote
	store.OverlandRemote

	// GetCampaign fetches one campaign with its characters populated
	GetCampaign(ctx context.Context, id string) (*entities.Campaign, error)

	// ListMaps fetches the province catalogue
	ListMaps(ctx context.Context) (*rest.MapsResponse, error)
}
