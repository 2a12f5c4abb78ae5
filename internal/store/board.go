package store

import (
	"context"

	"github.com/leohylee/tes-companion/internal/entities"
	dnderr "github.com/leohylee/tes-companion/internal/errors"
	"github.com/leohylee/tes-companion/internal/events"
	"github.com/leohylee/tes-companion/internal/geometry"
	"github.com/leohylee/tes-companion/internal/optimistic"
	"github.com/leohylee/tes-companion/internal/uuid"
)

// Defaults for tokens placed from the campaign board
const (
	DefaultTokenLabel = "Token"
	DefaultTokenColor = "#C9A959"
)

// DefaultTokenPosition is the centre of the map
var DefaultTokenPosition = geometry.Position{X: 50, Y: 50}

// CampaignBoardConfig holds the dependencies for a campaign board
type CampaignBoardConfig struct {
	Campaigns  *CampaignStore
	CampaignID string
	Bus        *events.Bus
	IDs        uuid.Generator
}

// CampaignBoard edits one campaign's tokens and markers locally. Nothing is
// sent until Save, which goes through the campaign store.
type CampaignBoard struct {
	engine     *optimistic.Engine
	campaigns  *CampaignStore
	campaignID string
	tokenIDs   uuid.Generator
	markerIDs  uuid.Generator

	tokens   []entities.Token
	markers  []entities.Marker
	dirty    bool
	revision uint64
}

// NewCampaignBoard opens a working copy of the campaign's map
func NewCampaignBoard(cfg *CampaignBoardConfig) (*CampaignBoard, error) {
	if cfg == nil || cfg.Campaigns == nil {
		panic("campaign store is required")
	}
	campaign, err := cfg.Campaigns.Get(cfg.CampaignID)
	if err != nil {
		return nil, err
	}
	ids := cfg.IDs
	if ids == nil {
		ids = uuid.NewGoogleUUIDGenerator()
	}
	return &CampaignBoard{
		engine:     optimistic.NewEngine(events.StoreCampaignBoard, cfg.Bus),
		campaigns:  cfg.Campaigns,
		campaignID: campaign.ID,
		tokenIDs:   uuid.NewPrefixedGenerator("token", ids),
		markerIDs:  uuid.NewPrefixedGenerator("marker", ids),
		tokens:     entities.CloneTokens(campaign.MapTokens),
		markers:    entities.CloneMarkers(campaign.MapMarkers),
	}, nil
}

// touch marks the working copy changed; callers hold the engine lock
func (b *CampaignBoard) touch() {
	b.dirty = true
	b.revision++
}

// CampaignID is the campaign this board edits
func (b *CampaignBoard) CampaignID() string { return b.campaignID }

// AddToken drops a token in the middle of the map
func (b *CampaignBoard) AddToken(icon, label string) (entities.Token, error) {
	if icon == "" {
		return entities.Token{}, dnderr.Validation("token icon is required")
	}
	if label == "" {
		label = DefaultTokenLabel
	}
	token := entities.Token{
		ID:       b.tokenIDs.New(),
		Position: DefaultTokenPosition,
		Icon:     icon,
		Label:    label,
		Color:    DefaultTokenColor,
	}
	err := b.engine.Write("add_token", func() error {
		b.tokens = append(b.tokens, token)
		b.touch()
		return nil
	})
	return token, err
}

// RemoveToken deletes one token
func (b *CampaignBoard) RemoveToken(id string) error {
	return b.engine.Write("remove_token", func() error {
		for i := range b.tokens {
			if b.tokens[i].ID == id {
				b.tokens = append(b.tokens[:i], b.tokens[i+1:]...)
				b.touch()
				return nil
			}
		}
		return dnderr.NotFoundf("token '%s' not found", id)
	})
}

// MoveToken sets a token's position, clamped
func (b *CampaignBoard) MoveToken(_ context.Context, id string, pos geometry.Position) error {
	return b.engine.Write("move_token", func() error {
		for i := range b.tokens {
			if b.tokens[i].ID == id {
				b.tokens[i].Position = geometry.Clamp(pos)
				b.touch()
				return nil
			}
		}
		return dnderr.NotFoundf("token '%s' not found", id)
	})
}

// TokenPosition reports where a token is, if it still exists
func (b *CampaignBoard) TokenPosition(id string) (geometry.Position, bool) {
	var (
		pos geometry.Position
		ok  bool
	)
	b.engine.Read(func() {
		for _, t := range b.tokens {
			if t.ID == id {
				pos, ok = t.Position, true
				return
			}
		}
	})
	return pos, ok
}

// AddMarker places a marker
func (b *CampaignBoard) AddMarker(_ context.Context, input *entities.MarkerInput) (entities.Marker, error) {
	if err := input.Validate(); err != nil {
		return entities.Marker{}, err
	}
	marker := entities.Marker{
		ID:       b.markerIDs.New(),
		Position: geometry.Clamp(input.Position),
		Type:     input.Type,
		Label:    input.Label,
	}
	err := b.engine.Write("add_marker", func() error {
		b.markers = append(b.markers, marker)
		b.touch()
		return nil
	})
	return marker, err
}

// RemoveMarker deletes one marker
func (b *CampaignBoard) RemoveMarker(_ context.Context, id string) error {
	return b.engine.Write("remove_marker", func() error {
		for i := range b.markers {
			if b.markers[i].ID == id {
				b.markers = append(b.markers[:i], b.markers[i+1:]...)
				b.touch()
				return nil
			}
		}
		return dnderr.NotFoundf("marker '%s' not found", id)
	})
}

// Tokens returns a copy of the working tokens
func (b *CampaignBoard) Tokens() []entities.Token {
	var out []entities.Token
	b.engine.Read(func() { out = entities.CloneTokens(b.tokens) })
	return out
}

// Markers returns a copy of the working markers
func (b *CampaignBoard) Markers() []entities.Marker {
	var out []entities.Marker
	b.engine.Read(func() { out = entities.CloneMarkers(b.markers) })
	return out
}

// Dirty reports unsaved changes
func (b *CampaignBoard) Dirty() bool {
	var dirty bool
	b.engine.Read(func() { dirty = b.dirty })
	return dirty
}

// Save writes the working copy to the campaign. On failure the working copy
// stays dirty so the user can retry. Edits made while the save is in flight
// are kept and leave the board dirty.
func (b *CampaignBoard) Save(ctx context.Context) (*entities.Campaign, error) {
	var (
		tokens   []entities.Token
		markers  []entities.Marker
		revision uint64
	)
	b.engine.Read(func() {
		tokens = entities.CloneTokens(b.tokens)
		markers = entities.CloneMarkers(b.markers)
		revision = b.revision
	})

	saved, err := b.campaigns.Update(ctx, b.campaignID, &entities.CampaignPatch{
		MapTokens:  &tokens,
		MapMarkers: &markers,
	})
	if err != nil {
		return nil, err
	}

	_ = b.engine.Write("save", func() error {
		if b.revision != revision {
			return nil
		}
		b.tokens = entities.CloneTokens(saved.MapTokens)
		b.markers = entities.CloneMarkers(saved.MapMarkers)
		b.dirty = false
		return nil
	})
	return saved, nil
}

// Discard throws the working copy away and reloads from the campaign store
func (b *CampaignBoard) Discard() error {
	campaign, err := b.campaigns.Get(b.campaignID)
	if err != nil {
		return err
	}
	return b.engine.Write("discard", func() error {
		b.tokens = entities.CloneTokens(campaign.MapTokens)
		b.markers = entities.CloneMarkers(campaign.MapMarkers)
		b.dirty = false
		return nil
	})
}
