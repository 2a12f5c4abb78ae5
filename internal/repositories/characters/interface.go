package characters

//go:generate mockgen -destination=mock/mock.go -package=mockcharacters -source=interface.go

import (
	"context"

	"github.com/leohylee/tes-companion/internal/entities"
)

// Repository defines the interface for character persistence
type Repository interface {
	// Create stores a new character, stamping its creation time
	Create(ctx context.Context, character *entities.Character) error

	// Get retrieves a character by ID
	Get(ctx context.Context, id string) (*entities.Character, error)

	// ListByOwner returns an owner's characters, newest first
	ListByOwner(ctx context.Context, ownerID string) ([]*entities.Character, error)

	// Update replaces an existing character
	Update(ctx context.Context, character *entities.Character) error

	// Delete removes a character
	Delete(ctx context.Context, id string) error
}
