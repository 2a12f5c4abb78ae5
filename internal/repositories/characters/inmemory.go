package characters

import (
	"context"
	"sync"

	"github.com/leohylee/tes-companion/internal/clock"
	"github.com/leohylee/tes-companion/internal/entities"
	dnderr "github.com/leohylee/tes-companion/internal/errors"
)

// InMemoryRepository is an in-memory implementation of the character repository
// Useful for testing and development
type InMemoryRepository struct {
	mu           sync.RWMutex
	characters   map[string]*entities.Character
	timeProvider clock.TimeProvider
}

// NewInMemoryRepository creates a new in-memory repository
func NewInMemoryRepository() *InMemoryRepository {
	return NewInMemoryRepositoryWithClock(clock.System{})
}

// NewInMemoryRepositoryWithClock creates an in-memory repository with a fixed clock
func NewInMemoryRepositoryWithClock(timeProvider clock.TimeProvider) *InMemoryRepository {
	return &InMemoryRepository{
		characters:   make(map[string]*entities.Character),
		timeProvider: timeProvider,
	}
}

// Create stores a new character
func (r *InMemoryRepository) Create(_ context.Context, character *entities.Character) error {
	if err := validateForWrite(character); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.characters[character.ID]; exists {
		return dnderr.AlreadyExistsf("character with ID '%s' already exists", character.ID).
			WithMeta("character_id", character.ID)
	}
	if character.CreatedAt == 0 {
		character.CreatedAt = r.timeProvider.Now().UnixMilli()
	}

	// Store a copy to avoid external modifications
	r.characters[character.ID] = character.Clone()
	return nil
}

// Get retrieves a character by ID
func (r *InMemoryRepository) Get(_ context.Context, id string) (*entities.Character, error) {
	if id == "" {
		return nil, dnderr.InvalidArgument("character ID is required")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	character, exists := r.characters[id]
	if !exists {
		return nil, notFound(id)
	}
	return character.Clone(), nil
}

// ListByOwner retrieves all characters for a specific owner
func (r *InMemoryRepository) ListByOwner(_ context.Context, ownerID string) ([]*entities.Character, error) {
	if ownerID == "" {
		return nil, dnderr.InvalidArgument("owner ID is required")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*entities.Character, 0)
	for _, char := range r.characters {
		if char.OwnerID == ownerID {
			result = append(result, char.Clone())
		}
	}
	sortNewestFirst(result)
	return result, nil
}

// Update replaces an existing character, keeping its creation time
func (r *InMemoryRepository) Update(_ context.Context, character *entities.Character) error {
	if err := validateForWrite(character); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	existing, exists := r.characters[character.ID]
	if !exists || existing.OwnerID != character.OwnerID {
		return notFound(character.ID)
	}
	next := character.Clone()
	next.CreatedAt = existing.CreatedAt
	r.characters[character.ID] = next
	return nil
}

// Delete removes a character
func (r *InMemoryRepository) Delete(_ context.Context, id string) error {
	if id == "" {
		return dnderr.InvalidArgument("character ID is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.characters[id]; !exists {
		return notFound(id)
	}
	delete(r.characters, id)
	return nil
}
