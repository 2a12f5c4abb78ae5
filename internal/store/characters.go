package store

import (
	"context"

	"github.com/leohylee/tes-companion/internal/entities"
	dnderr "github.com/leohylee/tes-companion/internal/errors"
	"github.com/leohylee/tes-companion/internal/events"
	"github.com/leohylee/tes-companion/internal/optimistic"
)

// CharacterStoreConfig holds the dependencies for a character store
type CharacterStoreConfig struct {
	Remote CharacterRemote
	Bus    *events.Bus
}

// CharacterStore is the client-side view of the caller's characters
type CharacterStore struct {
	engine     *optimistic.Engine
	remote     CharacterRemote
	characters collection[*entities.Character]
	selectedID string
}

// NewCharacterStore creates a character store
func NewCharacterStore(cfg *CharacterStoreConfig) *CharacterStore {
	if cfg == nil || cfg.Remote == nil {
		panic("character remote is required")
	}
	return &CharacterStore{
		engine: optimistic.NewEngine(events.StoreCharacters, cfg.Bus),
		remote: cfg.Remote,
		characters: collection[*entities.Character]{
			id:    func(c *entities.Character) string { return c.ID },
			clone: (*entities.Character).Clone,
		},
	}
}

// Fetch replaces local state with the server's list
func (s *CharacterStore) Fetch(ctx context.Context) error {
	_, err := optimistic.Load(ctx, s.engine, "fetch", s.remote.ListCharacters, func(list []*entities.Character) {
		s.characters.set(list)
	})
	return err
}

// Add creates a character remotely, then appends and selects it
func (s *CharacterStore) Add(ctx context.Context, input *entities.CharacterInput) (*entities.Character, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	created, err := optimistic.Remote(ctx, s.engine, "add",
		func(ctx context.Context) (*entities.Character, error) {
			return s.remote.CreateCharacter(ctx, input)
		},
		func(c *entities.Character) {
			if c == nil {
				return
			}
			s.characters.insert(len(s.characters.items), c)
			s.selectedID = c.ID
		})
	if err != nil {
		return nil, err
	}
	if created == nil {
		return nil, dnderr.New(dnderr.CodeInternal, "server returned no character")
	}
	return created.Clone(), nil
}

// Update merges patch into the character
func (s *CharacterStore) Update(ctx context.Context, id string, patch *entities.CharacterPatch) (*entities.Character, error) {
	if err := patch.Validate(); err != nil {
		return nil, err
	}
	return s.mutate(ctx, "update", id, func(*entities.Character) (*entities.CharacterPatch, error) {
		return patch, nil
	})
}

// AddSkill gives the character a skill it does not hold yet
func (s *CharacterStore) AddSkill(ctx context.Context, id string, skillID entities.SkillID) (*entities.Character, error) {
	if !skillID.Valid() {
		return nil, dnderr.Validationf("unknown skill '%s'", skillID).WithMeta("skill_id", skillID)
	}
	return s.mutate(ctx, "add_skill", id, func(c *entities.Character) (*entities.CharacterPatch, error) {
		if c.HasSkill(skillID) {
			return nil, dnderr.Validationf("skill '%s' is already known", skillID).
				WithMeta("character_id", id).
				WithMeta("skill_id", skillID)
		}
		skills := append(append([]entities.Skill{}, c.Skills...), entities.NewSkill(skillID))
		return &entities.CharacterPatch{Skills: &skills}, nil
	})
}

// RemoveSkill drops one skill entry by its entry id
func (s *CharacterStore) RemoveSkill(ctx context.Context, id, entryID string) (*entities.Character, error) {
	return s.mutate(ctx, "remove_skill", id, func(c *entities.Character) (*entities.CharacterPatch, error) {
		skills := make([]entities.Skill, 0, len(c.Skills))
		for _, sk := range c.Skills {
			if sk.ID != entryID {
				skills = append(skills, sk)
			}
		}
		if len(skills) == len(c.Skills) {
			return nil, dnderr.NotFoundf("skill entry '%s' not found", entryID).WithMeta("character_id", id)
		}
		return &entities.CharacterPatch{Skills: &skills}, nil
	})
}

// ToggleMaster flips between the novice and master side of the class card
func (s *CharacterStore) ToggleMaster(ctx context.Context, id string) (*entities.Character, error) {
	return s.mutate(ctx, "toggle_master", id, func(c *entities.Character) (*entities.CharacterPatch, error) {
		master := !c.IsMaster
		return &entities.CharacterPatch{IsMaster: &master}, nil
	})
}

// Remove deletes the character, clearing the selection if it pointed there
func (s *CharacterStore) Remove(ctx context.Context, id string) error {
	type removal struct {
		snapshot[*entities.Character]
		wasSelected bool
	}

	_, err := optimistic.Do(ctx, s.engine, optimistic.Op[removal, struct{}]{
		Name:     "remove",
		EntityID: id,
		Capture: func() removal {
			return removal{snapshot: s.characters.capture(id), wasSelected: s.selectedID == id}
		},
		Apply: func() error {
			i := s.characters.indexOf(id)
			if i < 0 {
				return dnderr.NotFoundf("character '%s' not found", id)
			}
			s.characters.removeAt(i)
			if s.selectedID == id {
				s.selectedID = ""
			}
			return nil
		},
		Send: func(ctx context.Context) (struct{}, error) {
			return struct{}{}, s.remote.DeleteCharacter(ctx, id)
		},
		Restore: func(snap removal) {
			if !snap.found || s.characters.indexOf(id) >= 0 {
				return
			}
			s.characters.insert(snap.index, snap.entity)
			if snap.wasSelected && s.selectedID == "" {
				s.selectedID = id
			}
		},
	})
	return err
}

// Select points the store at id; the id need not exist
func (s *CharacterStore) Select(id string) {
	_ = s.engine.Write("select", func() error {
		s.selectedID = id
		return nil
	})
}

// SelectedID returns the current selection, possibly empty
func (s *CharacterStore) SelectedID() string {
	var id string
	s.engine.Read(func() { id = s.selectedID })
	return id
}

// Selected returns the selected character, or nil
func (s *CharacterStore) Selected() *entities.Character {
	var out *entities.Character
	s.engine.Read(func() {
		if c, ok := s.characters.get(s.selectedID); ok {
			out = c.Clone()
		}
	})
	return out
}

// Get returns one character
func (s *CharacterStore) Get(id string) (*entities.Character, error) {
	var out *entities.Character
	s.engine.Read(func() {
		if c, ok := s.characters.get(id); ok {
			out = c.Clone()
		}
	})
	if out == nil {
		return nil, dnderr.NotFoundf("character '%s' not found", id)
	}
	return out, nil
}

// List returns every character in store order
func (s *CharacterStore) List() []*entities.Character {
	var out []*entities.Character
	s.engine.Read(func() { out = s.characters.all() })
	return out
}

// Reset forgets everything, e.g. on sign-out
func (s *CharacterStore) Reset() {
	_ = s.engine.Write("reset", func() error {
		s.characters.set(nil)
		s.selectedID = ""
		return nil
	})
	s.engine.ClearError()
}

// Err returns the last sync failure
func (s *CharacterStore) Err() error { return s.engine.Err() }

// ClearError dismisses the last sync failure
func (s *CharacterStore) ClearError() { s.engine.ClearError() }

// Loading reports whether a fetch is in flight
func (s *CharacterStore) Loading() bool { return s.engine.Loading() }

// mutate runs a field-level change through the optimistic engine. build sees
// a private copy of the current character and returns the patch to send.
func (s *CharacterStore) mutate(ctx context.Context, op, id string,
	build func(*entities.Character) (*entities.CharacterPatch, error)) (*entities.Character, error) {
	var patch *entities.CharacterPatch

	updated, err := optimistic.Do(ctx, s.engine, optimistic.Op[snapshot[*entities.Character], *entities.Character]{
		Name:     op,
		EntityID: id,
		Capture:  func() snapshot[*entities.Character] { return s.characters.capture(id) },
		Apply: func() error {
			current, ok := s.characters.get(id)
			if !ok {
				return dnderr.NotFoundf("character '%s' not found", id)
			}
			next := current.Clone()
			p, err := build(next)
			if err != nil {
				return err
			}
			next.Apply(p)
			s.characters.replace(next)
			patch = p
			return nil
		},
		Send: func(ctx context.Context) (*entities.Character, error) {
			return s.remote.UpdateCharacter(ctx, id, patch)
		},
		Reconcile: func(c *entities.Character) {
			if c != nil {
				s.characters.replace(c)
			}
		},
		Restore: func(snap snapshot[*entities.Character]) {
			if snap.found {
				s.characters.replace(snap.entity)
			}
		},
	})
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, dnderr.New(dnderr.CodeInternal, "server returned no character").WithMeta("character_id", id)
	}
	return updated.Clone(), nil
}
