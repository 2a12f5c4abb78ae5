package store

import (
	"context"
	"maps"
	"strings"

	"github.com/leohylee/tes-companion/internal/entities"
	dnderr "github.com/leohylee/tes-companion/internal/errors"
	"github.com/leohylee/tes-companion/internal/events"
	"github.com/leohylee/tes-companion/internal/optimistic"
)

// CampaignStoreConfig holds the dependencies for a campaign store
type CampaignStoreConfig struct {
	Remote CampaignRemote
	Bus    *events.Bus
}

// CampaignStore is the client-side view of the caller's campaigns
type CampaignStore struct {
	engine     *optimistic.Engine
	remote     CampaignRemote
	campaigns  collection[*entities.Campaign]
	selectedID string
}

// NewCampaignStore creates a campaign store
func NewCampaignStore(cfg *CampaignStoreConfig) *CampaignStore {
	if cfg == nil || cfg.Remote == nil {
		panic("campaign remote is required")
	}
	return &CampaignStore{
		engine: optimistic.NewEngine(events.StoreCampaigns, cfg.Bus),
		remote: cfg.Remote,
		campaigns: collection[*entities.Campaign]{
			id:    func(c *entities.Campaign) string { return c.ID },
			clone: normalizedCampaign,
		},
	}
}

// normalizedCampaign copies c with storage defaults filled in
func normalizedCampaign(c *entities.Campaign) *entities.Campaign {
	if c == nil {
		return nil
	}
	out := c.Clone()
	out.Normalize()
	return out
}

// Fetch replaces local state with the server's list
func (s *CampaignStore) Fetch(ctx context.Context) error {
	_, err := optimistic.Load(ctx, s.engine, "fetch", s.remote.ListCampaigns, func(list []*entities.Campaign) {
		s.campaigns.set(list)
	})
	return err
}

// Add starts a campaign for one to four characters. The campaign is put
// first in the list and selected once the server has created it.
func (s *CampaignStore) Add(ctx context.Context, characterIDs []string) (*entities.Campaign, error) {
	if err := entities.ValidateCampaignCharacters(characterIDs); err != nil {
		return nil, err
	}

	ids := append([]string{}, characterIDs...)
	created, err := optimistic.Remote(ctx, s.engine, "add",
		func(ctx context.Context) (*entities.Campaign, error) {
			return s.remote.CreateCampaign(ctx, ids)
		},
		func(c *entities.Campaign) {
			if c == nil {
				return
			}
			s.campaigns.insert(0, c)
			s.selectedID = c.ID
		})
	if err != nil {
		return nil, err
	}
	if created == nil {
		return nil, dnderr.New(dnderr.CodeInternal, "server returned no campaign")
	}
	return normalizedCampaign(created), nil
}

// Update merges patch into the campaign
func (s *CampaignStore) Update(ctx context.Context, id string, patch *entities.CampaignPatch) (*entities.Campaign, error) {
	if err := patch.Validate(); err != nil {
		return nil, err
	}
	return s.mutate(ctx, "update", id, func(*entities.Campaign) (*entities.CampaignPatch, error) {
		return patch, nil
	})
}

// AdvanceDay moves the campaign one day forward
func (s *CampaignStore) AdvanceDay(ctx context.Context, id string) (*entities.Campaign, error) {
	return s.AdjustDay(ctx, id, 1)
}

// RetreatDay moves the campaign one day back, never before day one
func (s *CampaignStore) RetreatDay(ctx context.Context, id string) (*entities.Campaign, error) {
	return s.AdjustDay(ctx, id, -1)
}

// AdjustDay shifts the day counter by delta
func (s *CampaignStore) AdjustDay(ctx context.Context, id string, delta int) (*entities.Campaign, error) {
	return s.mutate(ctx, "adjust_day", id, func(c *entities.Campaign) (*entities.CampaignPatch, error) {
		day := entities.Adjust(c.Day, delta, entities.MinDay)
		return &entities.CampaignPatch{Day: &day}, nil
	})
}

// AdjustPartyXP shifts the party experience track by delta
func (s *CampaignStore) AdjustPartyXP(ctx context.Context, id string, delta int) (*entities.Campaign, error) {
	return s.mutate(ctx, "adjust_party_xp", id, func(c *entities.Campaign) (*entities.CampaignPatch, error) {
		xp := entities.Adjust(c.PartyXP, delta, entities.MinPartyXP)
		return &entities.CampaignPatch{PartyXP: &xp}, nil
	})
}

// AdjustCharacterHP shifts one party member's health
func (s *CampaignStore) AdjustCharacterHP(ctx context.Context, id, characterID string, delta int) (*entities.Campaign, error) {
	return s.mutate(ctx, "adjust_character_hp", id, func(c *entities.Campaign) (*entities.CampaignPatch, error) {
		hp, err := adjustStat(c, c.CharacterHP, characterID, delta)
		if err != nil {
			return nil, err
		}
		return &entities.CampaignPatch{CharacterHP: &hp}, nil
	})
}

// AdjustCharacterXP shifts one party member's experience
func (s *CampaignStore) AdjustCharacterXP(ctx context.Context, id, characterID string, delta int) (*entities.Campaign, error) {
	return s.mutate(ctx, "adjust_character_xp", id, func(c *entities.Campaign) (*entities.CampaignPatch, error) {
		xp, err := adjustStat(c, c.CharacterXP, characterID, delta)
		if err != nil {
			return nil, err
		}
		return &entities.CampaignPatch{CharacterXP: &xp}, nil
	})
}

func adjustStat(c *entities.Campaign, stats map[string]int, characterID string, delta int) (map[string]int, error) {
	if !c.HasCharacter(characterID) {
		return nil, dnderr.Validationf("character '%s' is not in campaign '%s'", characterID, c.ID).
			WithMeta("character_id", characterID)
	}
	out := maps.Clone(stats)
	if out == nil {
		out = map[string]int{}
	}
	out[characterID] = entities.Adjust(out[characterID], delta, entities.MinCharacterStat)
	return out, nil
}

// SetOverland picks the campaign's province map; nil clears it
func (s *CampaignStore) SetOverland(ctx context.Context, id string, mapID *entities.MapID) (*entities.Campaign, error) {
	next := entities.MapID("")
	if mapID != nil {
		if !mapID.Valid() {
			return nil, dnderr.Validationf("unknown map '%s'", *mapID).WithMeta("map_id", *mapID)
		}
		next = *mapID
	}
	return s.mutate(ctx, "set_overland", id, func(*entities.Campaign) (*entities.CampaignPatch, error) {
		return &entities.CampaignPatch{Overland: &next}, nil
	})
}

// SetGuild records the guild the party has joined
func (s *CampaignStore) SetGuild(ctx context.Context, id, guild string) (*entities.Campaign, error) {
	return s.mutate(ctx, "set_guild", id, func(*entities.Campaign) (*entities.CampaignPatch, error) {
		return &entities.CampaignPatch{Guild: &guild}, nil
	})
}

// AddGuildQuest appends a quest; duplicates are allowed
func (s *CampaignStore) AddGuildQuest(ctx context.Context, id, quest string) (*entities.Campaign, error) {
	quest = strings.TrimSpace(quest)
	if quest == "" {
		return nil, dnderr.Validation("guild quest cannot be empty")
	}
	return s.mutate(ctx, "add_guild_quest", id, func(c *entities.Campaign) (*entities.CampaignPatch, error) {
		quests := append(append([]string{}, c.GuildQuests...), quest)
		return &entities.CampaignPatch{GuildQuests: &quests}, nil
	})
}

// RemoveGuildQuest drops the quest at index
func (s *CampaignStore) RemoveGuildQuest(ctx context.Context, id string, index int) (*entities.Campaign, error) {
	return s.mutate(ctx, "remove_guild_quest", id, func(c *entities.Campaign) (*entities.CampaignPatch, error) {
		if index < 0 || index >= len(c.GuildQuests) {
			return nil, dnderr.NotFoundf("guild quest %d not found", index).WithMeta("campaign_id", id)
		}
		quests := append(append([]string{}, c.GuildQuests[:index]...), c.GuildQuests[index+1:]...)
		return &entities.CampaignPatch{GuildQuests: &quests}, nil
	})
}

// SetJournal replaces the campaign journal
func (s *CampaignStore) SetJournal(ctx context.Context, id, journal string) (*entities.Campaign, error) {
	return s.mutate(ctx, "set_journal", id, func(*entities.Campaign) (*entities.CampaignPatch, error) {
		return &entities.CampaignPatch{Journal: &journal}, nil
	})
}

// SetNotes updates the free-text start date, end date and difficulty
func (s *CampaignStore) SetNotes(ctx context.Context, id, startDate, endDate, difficulty string) (*entities.Campaign, error) {
	return s.mutate(ctx, "set_notes", id, func(*entities.Campaign) (*entities.CampaignPatch, error) {
		return &entities.CampaignPatch{
			StartDate:  &startDate,
			EndDate:    &endDate,
			Difficulty: &difficulty,
		}, nil
	})
}

// Remove deletes the campaign, clearing the selection if it pointed there
func (s *CampaignStore) Remove(ctx context.Context, id string) error {
	type removal struct {
		snapshot[*entities.Campaign]
		wasSelected bool
	}

	_, err := optimistic.Do(ctx, s.engine, optimistic.Op[removal, struct{}]{
		Name:     "remove",
		EntityID: id,
		Capture: func() removal {
			return removal{snapshot: s.campaigns.capture(id), wasSelected: s.selectedID == id}
		},
		Apply: func() error {
			i := s.campaigns.indexOf(id)
			if i < 0 {
				return dnderr.NotFoundf("campaign '%s' not found", id)
			}
			s.campaigns.removeAt(i)
			if s.selectedID == id {
				s.selectedID = ""
			}
			return nil
		},
		Send: func(ctx context.Context) (struct{}, error) {
			return struct{}{}, s.remote.DeleteCampaign(ctx, id)
		},
		Restore: func(snap removal) {
			if !snap.found || s.campaigns.indexOf(id) >= 0 {
				return
			}
			s.campaigns.insert(snap.index, snap.entity)
			if snap.wasSelected && s.selectedID == "" {
				s.selectedID = id
			}
		},
	})
	return err
}

// Select points the store at id; the id need not exist
func (s *CampaignStore) Select(id string) {
	_ = s.engine.Write("select", func() error {
		s.selectedID = id
		return nil
	})
}

// SelectedID returns the current selection, possibly empty
func (s *CampaignStore) SelectedID() string {
	var id string
	s.engine.Read(func() { id = s.selectedID })
	return id
}

// Selected returns the selected campaign, or nil
func (s *CampaignStore) Selected() *entities.Campaign {
	var out *entities.Campaign
	s.engine.Read(func() {
		if c, ok := s.campaigns.get(s.selectedID); ok {
			out = c.Clone()
		}
	})
	return out
}

// Get returns one campaign
func (s *CampaignStore) Get(id string) (*entities.Campaign, error) {
	var out *entities.Campaign
	s.engine.Read(func() {
		if c, ok := s.campaigns.get(id); ok {
			out = c.Clone()
		}
	})
	if out == nil {
		return nil, dnderr.NotFoundf("campaign '%s' not found", id)
	}
	return out, nil
}

// List returns every campaign in store order
func (s *CampaignStore) List() []*entities.Campaign {
	var out []*entities.Campaign
	s.engine.Read(func() { out = s.campaigns.all() })
	return out
}

// Reset forgets everything
func (s *CampaignStore) Reset() {
	_ = s.engine.Write("reset", func() error {
		s.campaigns.set(nil)
		s.selectedID = ""
		return nil
	})
	s.engine.ClearError()
}

// Err returns the last sync failure
func (s *CampaignStore) Err() error { return s.engine.Err() }

// ClearError dismisses the last sync failure
func (s *CampaignStore) ClearError() { s.engine.ClearError() }

// Loading reports whether a fetch is in flight
func (s *CampaignStore) Loading() bool { return s.engine.Loading() }

func (s *CampaignStore) mutate(ctx context.Context, op, id string,
	build func(*entities.Campaign) (*entities.CampaignPatch, error)) (*entities.Campaign, error) {
	var patch *entities.CampaignPatch

	updated, err := optimistic.Do(ctx, s.engine, optimistic.Op[snapshot[*entities.Campaign], *entities.Campaign]{
		Name:     op,
		EntityID: id,
		Capture:  func() snapshot[*entities.Campaign] { return s.campaigns.capture(id) },
		Apply: func() error {
			current, ok := s.campaigns.get(id)
			if !ok {
				return dnderr.NotFoundf("campaign '%s' not found", id)
			}
			next := current.Clone()
			p, err := build(next)
			if err != nil {
				return err
			}
			next.Apply(p)
			s.campaigns.replace(next)
			patch = p
			return nil
		},
		Send: func(ctx context.Context) (*entities.Campaign, error) {
			return s.remote.UpdateCampaign(ctx, id, patch)
		},
		Reconcile: func(c *entities.Campaign) {
			if c != nil {
				s.campaigns.replace(c)
			}
		},
		Restore: func(snap snapshot[*entities.Campaign]) {
			if snap.found {
				s.campaigns.replace(snap.entity)
			}
		},
	})
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, dnderr.New(dnderr.CodeInternal, "server returned no campaign").WithMeta("campaign_id", id)
	}
	return normalizedCampaign(updated), nil
}
