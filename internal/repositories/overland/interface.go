package overland

//go:generate mockgen -destination=mock/mock.go -package=mockoverland -source=interface.go

import (
	"context"

	"github.com/leohylee/tes-companion/internal/entities"
)

// Repository stores one overland state per user
type Repository interface {
	// Get returns the owner's saved state, or a not found error if none exists
	Get(ctx context.Context, ownerID string) (*entities.OverlandState, error)

	// Save replaces the owner's state
	Save(ctx context.Context, ownerID string, state *entities.OverlandState) error
}
