package campaigns

import (
	"context"
	"sync"

	"github.com/leohylee/tes-companion/internal/clock"
	"github.com/leohylee/tes-companion/internal/entities"
	dnderr "github.com/leohylee/tes-companion/internal/errors"
)

// InMemoryRepository is an in-memory implementation of the campaign repository
type InMemoryRepository struct {
	mu           sync.RWMutex
	campaigns    map[string]*entities.Campaign
	sequences    map[string]int
	timeProvider clock.TimeProvider
}

// NewInMemoryRepository creates a new in-memory repository
func NewInMemoryRepository() *InMemoryRepository {
	return NewInMemoryRepositoryWithClock(clock.System{})
}

// NewInMemoryRepositoryWithClock creates an in-memory repository with a fixed clock
func NewInMemoryRepositoryWithClock(timeProvider clock.TimeProvider) *InMemoryRepository {
	return &InMemoryRepository{
		campaigns:    make(map[string]*entities.Campaign),
		sequences:    make(map[string]int),
		timeProvider: timeProvider,
	}
}

// NextNumber reserves the owner's next campaign number
func (r *InMemoryRepository) NextNumber(_ context.Context, ownerID string) (int, error) {
	if ownerID == "" {
		return 0, dnderr.InvalidArgument("owner ID is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.sequences[ownerID]++
	return r.sequences[ownerID], nil
}

// Create stores a new campaign
func (r *InMemoryRepository) Create(_ context.Context, campaign *entities.Campaign) error {
	if err := validateForWrite(campaign); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.campaigns[campaign.ID]; exists {
		return dnderr.AlreadyExistsf("campaign with ID '%s' already exists", campaign.ID).
			WithMeta("campaign_id", campaign.ID)
	}
	for _, c := range r.campaigns {
		if c.OwnerID == campaign.OwnerID && c.Number == campaign.Number {
			return dnderr.AlreadyExistsf("campaign number %d already exists", campaign.Number).
				WithMeta("campaign_number", campaign.Number)
		}
	}
	if campaign.CreatedAt == 0 {
		campaign.CreatedAt = r.timeProvider.Now().UnixMilli()
	}

	stored := campaign.Clone()
	stored.Characters = nil
	stored.Normalize()
	r.campaigns[campaign.ID] = stored
	return nil
}

// Get retrieves a campaign by ID
func (r *InMemoryRepository) Get(_ context.Context, id string) (*entities.Campaign, error) {
	if id == "" {
		return nil, dnderr.InvalidArgument("campaign ID is required")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	campaign, exists := r.campaigns[id]
	if !exists {
		return nil, notFound(id)
	}
	return campaign.Clone(), nil
}

// ListByOwner retrieves all campaigns for an owner
func (r *InMemoryRepository) ListByOwner(_ context.Context, ownerID string) ([]*entities.Campaign, error) {
	if ownerID == "" {
		return nil, dnderr.InvalidArgument("owner ID is required")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*entities.Campaign, 0)
	for _, c := range r.campaigns {
		if c.OwnerID == ownerID {
			result = append(result, c.Clone())
		}
	}
	sortByNumberDesc(result)
	return result, nil
}

// Update replaces an existing campaign, keeping its number and creation time
func (r *InMemoryRepository) Update(_ context.Context, campaign *entities.Campaign) error {
	if err := validateForWrite(campaign); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	existing, exists := r.campaigns[campaign.ID]
	if !exists || existing.OwnerID != campaign.OwnerID {
		return notFound(campaign.ID)
	}

	next := campaign.Clone()
	next.Characters = nil
	next.Number = existing.Number
	next.CreatedAt = existing.CreatedAt
	next.Normalize()
	r.campaigns[campaign.ID] = next
	return nil
}

// Delete removes a campaign
func (r *InMemoryRepository) Delete(_ context.Context, id string) error {
	if id == "" {
		return dnderr.InvalidArgument("campaign ID is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.campaigns[id]; !exists {
		return notFound(id)
	}
	delete(r.campaigns, id)
	return nil
}
