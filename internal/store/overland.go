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

// OverlandStoreConfig holds the dependencies for the free-roam map store
type OverlandStoreConfig struct {
	// Remote is optional; without it the map lives only in this process
	Remote OverlandRemote
	Bus    *events.Bus
	// IDs defaults to random UUIDs
	IDs uuid.Generator
}

// OverlandStore holds the free-roam map: province, tokens, markers and day.
// Every change is written back as a whole state.
type OverlandStore struct {
	engine  *optimistic.Engine
	remote  OverlandRemote
	tokens  uuid.Generator
	markers uuid.Generator
	state   *entities.OverlandState
}

// NewOverlandStore creates the store at its initial state
func NewOverlandStore(cfg *OverlandStoreConfig) *OverlandStore {
	if cfg == nil {
		cfg = &OverlandStoreConfig{}
	}
	ids := cfg.IDs
	if ids == nil {
		ids = uuid.NewGoogleUUIDGenerator()
	}
	return &OverlandStore{
		engine:  optimistic.NewEngine(events.StoreOverland, cfg.Bus),
		remote:  cfg.Remote,
		tokens:  uuid.NewPrefixedGenerator("token", ids),
		markers: uuid.NewPrefixedGenerator("marker", ids),
		state:   entities.NewOverlandState(),
	}
}

// Load pulls the saved state from the server
func (s *OverlandStore) Load(ctx context.Context) error {
	if s.remote == nil {
		return nil
	}
	_, err := optimistic.Load(ctx, s.engine, "load", s.remote.GetOverland, func(state *entities.OverlandState) {
		s.adopt(state)
	})
	return err
}

// State returns a copy of the whole map state
func (s *OverlandStore) State() *entities.OverlandState {
	var out *entities.OverlandState
	s.engine.Read(func() { out = s.state.Clone() })
	return out
}

// SetCurrentMap switches province
func (s *OverlandStore) SetCurrentMap(ctx context.Context, mapID entities.MapID) error {
	if !mapID.Valid() {
		return dnderr.Validationf("unknown map '%s'", mapID).WithMeta("map_id", mapID)
	}
	return s.mutate(ctx, "set_current_map", string(mapID), func(st *entities.OverlandState) error {
		st.CurrentMapID = mapID
		return nil
	})
}

// AddToken places a new token with a fresh id
func (s *OverlandStore) AddToken(ctx context.Context, input *entities.TokenInput) (entities.Token, error) {
	if err := input.Validate(); err != nil {
		return entities.Token{}, err
	}
	token := entities.Token{
		ID:       s.tokens.New(),
		Position: geometry.Clamp(input.Position),
		Icon:     input.Icon,
		Label:    input.Label,
		Color:    input.Color,
	}
	err := s.mutate(ctx, "add_token", token.ID, func(st *entities.OverlandState) error {
		st.Tokens = append(st.Tokens, token)
		return nil
	})
	return token, err
}

// UpdateToken merges patch into one token
func (s *OverlandStore) UpdateToken(ctx context.Context, id string, patch *entities.TokenPatch) error {
	return s.mutate(ctx, "update_token", id, func(st *entities.OverlandState) error {
		for i := range st.Tokens {
			if st.Tokens[i].ID == id {
				st.Tokens[i].Apply(patch)
				return nil
			}
		}
		return dnderr.NotFoundf("token '%s' not found", id)
	})
}

// UpdateTokenPosition moves one token, clamping the position
func (s *OverlandStore) UpdateTokenPosition(ctx context.Context, id string, pos geometry.Position) error {
	return s.UpdateToken(ctx, id, &entities.TokenPatch{Position: &pos})
}

// RemoveToken deletes one token
func (s *OverlandStore) RemoveToken(ctx context.Context, id string) error {
	return s.mutate(ctx, "remove_token", id, func(st *entities.OverlandState) error {
		for i := range st.Tokens {
			if st.Tokens[i].ID == id {
				st.Tokens = append(st.Tokens[:i], st.Tokens[i+1:]...)
				return nil
			}
		}
		return dnderr.NotFoundf("token '%s' not found", id)
	})
}

// AddMarker places a new marker with a fresh id
func (s *OverlandStore) AddMarker(ctx context.Context, input *entities.MarkerInput) (entities.Marker, error) {
	if err := input.Validate(); err != nil {
		return entities.Marker{}, err
	}
	marker := entities.Marker{
		ID:       s.markers.New(),
		Position: geometry.Clamp(input.Position),
		Type:     input.Type,
		Label:    input.Label,
	}
	err := s.mutate(ctx, "add_marker", marker.ID, func(st *entities.OverlandState) error {
		st.Markers = append(st.Markers, marker)
		return nil
	})
	return marker, err
}

// RemoveMarker deletes one marker
func (s *OverlandStore) RemoveMarker(ctx context.Context, id string) error {
	return s.mutate(ctx, "remove_marker", id, func(st *entities.OverlandState) error {
		for i := range st.Markers {
			if st.Markers[i].ID == id {
				st.Markers = append(st.Markers[:i], st.Markers[i+1:]...)
				return nil
			}
		}
		return dnderr.NotFoundf("marker '%s' not found", id)
	})
}

// NextDay advances the journey by one day
func (s *OverlandStore) NextDay(ctx context.Context) error {
	return s.mutate(ctx, "next_day", "", func(st *entities.OverlandState) error {
		st.CurrentDay = entities.Adjust(st.CurrentDay, 1, entities.MinDay)
		return nil
	})
}

// PrevDay goes back one day, never before day one
func (s *OverlandStore) PrevDay(ctx context.Context) error {
	return s.mutate(ctx, "prev_day", "", func(st *entities.OverlandState) error {
		st.CurrentDay = entities.Adjust(st.CurrentDay, -1, entities.MinDay)
		return nil
	})
}

// SetDay jumps to day, floored at one
func (s *OverlandStore) SetDay(ctx context.Context, day int) error {
	return s.mutate(ctx, "set_day", "", func(st *entities.OverlandState) error {
		st.CurrentDay = max(day, entities.MinDay)
		return nil
	})
}

// Reset returns the map to its initial state
func (s *OverlandStore) Reset(ctx context.Context) error {
	return s.mutate(ctx, "reset", "", func(st *entities.OverlandState) error {
		*st = *entities.NewOverlandState()
		return nil
	})
}

// TokenPosition reports where a token is, if it still exists
func (s *OverlandStore) TokenPosition(id string) (geometry.Position, bool) {
	var (
		pos geometry.Position
		ok  bool
	)
	s.engine.Read(func() {
		for _, t := range s.state.Tokens {
			if t.ID == id {
				pos, ok = t.Position, true
				return
			}
		}
	})
	return pos, ok
}

// MoveToken is the drag hook; it is UpdateTokenPosition
func (s *OverlandStore) MoveToken(ctx context.Context, id string, pos geometry.Position) error {
	return s.UpdateTokenPosition(ctx, id, pos)
}

// Err returns the last sync failure
func (s *OverlandStore) Err() error { return s.engine.Err() }

// ClearError dismisses the last sync failure
func (s *OverlandStore) ClearError() { s.engine.ClearError() }

// Loading reports whether a load is in flight
func (s *OverlandStore) Loading() bool { return s.engine.Loading() }

func (s *OverlandStore) adopt(state *entities.OverlandState) {
	if state == nil {
		return
	}
	next := state.Clone()
	next.Normalize()
	s.state = next
}

// mutate edits a private copy of the state, installs it, and pushes the
// whole state to the server when there is one
func (s *OverlandStore) mutate(ctx context.Context, op, entityID string, edit func(*entities.OverlandState) error) error {
	if s.remote == nil {
		return s.engine.Write(op, func() error {
			next := s.state.Clone()
			if err := edit(next); err != nil {
				return err
			}
			next.Normalize()
			s.state = next
			return nil
		})
	}

	var outgoing *entities.OverlandState
	_, err := optimistic.Do(ctx, s.engine, optimistic.Op[*entities.OverlandState, *entities.OverlandState]{
		Name:     op,
		EntityID: entityID,
		Capture:  func() *entities.OverlandState { return s.state.Clone() },
		Apply: func() error {
			next := s.state.Clone()
			if err := edit(next); err != nil {
				return err
			}
			next.Normalize()
			s.state = next
			outgoing = next.Clone()
			return nil
		},
		Send: func(ctx context.Context) (*entities.OverlandState, error) {
			return s.remote.SaveOverland(ctx, outgoing)
		},
		Reconcile: s.adopt,
		Restore:   func(prev *entities.OverlandState) { s.state = prev },
	})
	return err
}
