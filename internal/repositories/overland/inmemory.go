package overland

import (
	"context"
	"sync"

	"github.com/leohylee/tes-companion/internal/entities"
	dnderr "github.com/leohylee/tes-companion/internal/errors"
)

// InMemoryRepository keeps overland states in a map
type InMemoryRepository struct {
	mu     sync.RWMutex
	states map[string]*entities.OverlandState
}

// NewInMemoryRepository creates a new in-memory repository
func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{states: make(map[string]*entities.OverlandState)}
}

// Get returns a copy of the owner's state
func (r *InMemoryRepository) Get(_ context.Context, ownerID string) (*entities.OverlandState, error) {
	if ownerID == "" {
		return nil, dnderr.InvalidArgument("owner ID is required")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	state, ok := r.states[ownerID]
	if !ok {
		return nil, notFound(ownerID)
	}
	return state.Clone(), nil
}

// Save replaces the owner's state
func (r *InMemoryRepository) Save(_ context.Context, ownerID string, state *entities.OverlandState) error {
	if err := validateForWrite(ownerID, state); err != nil {
		return err
	}

	stored := state.Clone()
	stored.Normalize()

	r.mu.Lock()
	defer r.mu.Unlock()
	r.states[ownerID] = stored
	return nil
}
