package character

import (
	"context"
	"log"

	"github.com/leohylee/tes-companion/internal/entities"
	dnderr "github.com/leohylee/tes-companion/internal/errors"
	"github.com/leohylee/tes-companion/internal/repositories/characters"
	"github.com/leohylee/tes-companion/internal/uuid"
)

// Repository is an alias for the character repository interface
type Repository = characters.Repository

// Service defines the character service interface. Every call is scoped to
// the owner; a character owned by someone else is reported as not found.
type Service interface {
	// ListCharacters lists the owner's characters, newest first
	ListCharacters(ctx context.Context, ownerID string) ([]*entities.Character, error)

	// CreateCharacter validates the wizard input and stores a new character
	CreateCharacter(ctx context.Context, ownerID string, input *entities.CharacterInput) (*entities.Character, error)

	// GetCharacter retrieves one of the owner's characters
	GetCharacter(ctx context.Context, ownerID, characterID string) (*entities.Character, error)

	// UpdateCharacter merges a partial update and returns the stored result
	UpdateCharacter(ctx context.Context, ownerID, characterID string, patch *entities.CharacterPatch) (*entities.Character, error)

	// DeleteCharacter removes one of the owner's characters
	DeleteCharacter(ctx context.Context, ownerID, characterID string) error
}

// ServiceConfig holds configuration for the service
type ServiceConfig struct {
	Repository    Repository     // Required
	UUIDGenerator uuid.Generator // Optional, will use default if nil
}

type service struct {
	repository    Repository
	uuidGenerator uuid.Generator
}

// NewService creates a new character service
func NewService(cfg *ServiceConfig) Service {
	if cfg.Repository == nil {
		panic("repository is required")
	}

	svc := &service{
		repository: cfg.Repository,
	}

	if cfg.UUIDGenerator != nil {
		svc.uuidGenerator = cfg.UUIDGenerator
	} else {
		svc.uuidGenerator = uuid.NewGoogleUUIDGenerator()
	}

	return svc
}

// ListCharacters lists the owner's characters
func (s *service) ListCharacters(ctx context.Context, ownerID string) ([]*entities.Character, error) {
	if ownerID == "" {
		return nil, dnderr.Unauthenticated("owner is required")
	}

	list, err := s.repository.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, dnderr.Wrapf(err, "failed to list characters for owner '%s'", ownerID).
			WithMeta("owner_id", ownerID)
	}
	return list, nil
}

// CreateCharacter stores a new character built from the wizard input
func (s *service) CreateCharacter(ctx context.Context, ownerID string, input *entities.CharacterInput) (*entities.Character, error) {
	if ownerID == "" {
		return nil, dnderr.Unauthenticated("owner is required")
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	char := input.ToCharacter(s.uuidGenerator.New(), ownerID)
	if err := s.repository.Create(ctx, char); err != nil {
		return nil, dnderr.Wrap(err, "failed to create character").
			WithMeta("owner_id", ownerID)
	}

	log.Printf("CharacterService: created %s (%s %s) for %s", char.ID, char.Race, char.ClassID, ownerID)
	return char, nil
}

// GetCharacter retrieves one of the owner's characters
func (s *service) GetCharacter(ctx context.Context, ownerID, characterID string) (*entities.Character, error) {
	if ownerID == "" {
		return nil, dnderr.Unauthenticated("owner is required")
	}
	if characterID == "" {
		return nil, dnderr.InvalidArgument("character ID is required")
	}

	char, err := s.repository.Get(ctx, characterID)
	if err != nil {
		return nil, dnderr.Wrapf(err, "failed to get character '%s'", characterID).
			WithMeta("character_id", characterID)
	}
	if char.OwnerID != ownerID {
		return nil, dnderr.NotFoundf("character with ID '%s' not found", characterID).
			WithMeta("character_id", characterID)
	}
	return char, nil
}

// UpdateCharacter merges patch into the stored character
func (s *service) UpdateCharacter(ctx context.Context, ownerID, characterID string, patch *entities.CharacterPatch) (*entities.Character, error) {
	if err := patch.Validate(); err != nil {
		return nil, err
	}

	char, err := s.GetCharacter(ctx, ownerID, characterID)
	if err != nil {
		return nil, err
	}

	char.Apply(patch)
	if err := s.repository.Update(ctx, char); err != nil {
		return nil, dnderr.Wrapf(err, "failed to update character '%s'", characterID).
			WithMeta("character_id", characterID)
	}
	return char, nil
}

// DeleteCharacter removes one of the owner's characters
func (s *service) DeleteCharacter(ctx context.Context, ownerID, characterID string) error {
	if _, err := s.GetCharacter(ctx, ownerID, characterID); err != nil {
		return err
	}

	if err := s.repository.Delete(ctx, characterID); err != nil {
		return dnderr.Wrapf(err, "failed to delete character '%s'", characterID).
			WithMeta("character_id", characterID)
	}

	log.Printf("CharacterService: deleted %s for %s", characterID, ownerID)
	return nil
}
