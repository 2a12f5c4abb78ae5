package campaigns

//go:generate mockgen -destination=mock/mock.go -package=mockcampaigns -source=interface.go

import (
	"context"

	"github.com/leohylee/tes-companion/internal/entities"
)

// Repository defines the interface for campaign persistence
type Repository interface {
	// NextNumber reserves the next campaign number for an owner, starting at 1
	NextNumber(ctx context.Context, ownerID string) (int, error)

	// Create stores a new campaign
	Create(ctx context.Context, campaign *entities.Campaign) error

	// Get retrieves a campaign by ID
	Get(ctx context.Context, id string) (*entities.Campaign, error)

	// ListByOwner returns an owner's campaigns, highest number first
	ListByOwner(ctx context.Context, ownerID string) ([]*entities.Campaign, error)

	// Update replaces an existing campaign
	Update(ctx context.Context, campaign *entities.Campaign) error

	// Delete removes a campaign
	Delete(ctx context.Context, id string) error
}
