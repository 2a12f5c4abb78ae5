package overland

import (
	"context"

	"github.com/leohylee/tes-companion/internal/entities"
	dnderr "github.com/leohylee/tes-companion/internal/errors"
	"github.com/leohylee/tes-companion/internal/repositories/overland"
)

// Repository is an alias for the overland repository interface
type Repository = overland.Repository

// Service reads and replaces a user's free-roam map
type Service interface {
	// GetState returns the saved state, or a fresh one for a new user
	GetState(ctx context.Context, ownerID string) (*entities.OverlandState, error)

	// SaveState replaces the state and returns it normalised
	SaveState(ctx context.Context, ownerID string, state *entities.OverlandState) (*entities.OverlandState, error)
}

// ServiceConfig holds configuration for the service
type ServiceConfig struct {
	Repository Repository // Required
}

type service struct {
	repository Repository
}

// NewService creates a new overland service
func NewService(cfg *ServiceConfig) Service {
	if cfg.Repository == nil {
		panic("repository is required")
	}
	return &service{repository: cfg.Repository}
}

// GetState returns the owner's state
func (s *service) GetState(ctx context.Context, ownerID string) (*entities.OverlandState, error) {
	if ownerID == "" {
		return nil, dnderr.Unauthenticated("owner is required")
	}

	state, err := s.repository.Get(ctx, ownerID)
	if dnderr.IsNotFound(err) {
		return entities.NewOverlandState(), nil
	}
	if err != nil {
		return nil, dnderr.Wrap(err, "failed to get overland state").WithMeta("owner_id", ownerID)
	}
	return state, nil
}

// SaveState replaces the owner's state
func (s *service) SaveState(ctx context.Context, ownerID string, state *entities.OverlandState) (*entities.OverlandState, error) {
	if ownerID == "" {
		return nil, dnderr.Unauthenticated("owner is required")
	}
	if err := state.Validate(); err != nil {
		return nil, err
	}

	next := state.Clone()
	next.Normalize()
	if err := s.repository.Save(ctx, ownerID, next); err != nil {
		return nil, dnderr.Wrap(err, "failed to save overland state").WithMeta("owner_id", ownerID)
	}
	return next, nil
}
