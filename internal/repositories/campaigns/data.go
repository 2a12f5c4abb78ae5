package campaigns

import (
	"sort"
	"time"

	"github.com/leohylee/tes-companion/internal/entities"
	dnderr "github.com/leohylee/tes-companion/internal/errors"
)

// Data represents the serialized form of a campaign. Board contents reuse
// the entity JSON since they round-trip through clients unchanged.
type Data struct {
	ID           string            `json:"id"`
	OwnerID      string            `json:"owner_id"`
	Number       int               `json:"number"`
	Name         string            `json:"name"`
	CharacterIDs []string          `json:"character_ids"`
	Day          int               `json:"day"`
	PartyXP      int               `json:"party_xp"`
	CharacterHP  map[string]int    `json:"character_hp"`
	CharacterXP  map[string]int    `json:"character_xp"`
	Overland     string            `json:"overland,omitempty"`
	MapTokens    []entities.Token  `json:"map_tokens"`
	MapMarkers   []entities.Marker `json:"map_markers"`
	Guild        string            `json:"guild,omitempty"`
	GuildQuests  []string          `json:"guild_quests"`
	StartDate    string            `json:"start_date,omitempty"`
	EndDate      string            `json:"end_date,omitempty"`
	Difficulty   string            `json:"difficulty,omitempty"`
	Journal      string            `json:"journal,omitempty"`
	CreatedAt    int64             `json:"created_at"`
	UpdatedAt    time.Time         `json:"updated_at"`
}

func toData(c *entities.Campaign, updatedAt time.Time) Data {
	n := c.Clone()
	n.Normalize()

	var overland string
	if n.Overland != nil {
		overland = string(*n.Overland)
	}
	return Data{
		ID:           n.ID,
		OwnerID:      n.OwnerID,
		Number:       n.Number,
		Name:         n.Name,
		CharacterIDs: n.CharacterIDs,
		Day:          n.Day,
		PartyXP:      n.PartyXP,
		CharacterHP:  n.CharacterHP,
		CharacterXP:  n.CharacterXP,
		Overland:     overland,
		MapTokens:    n.MapTokens,
		MapMarkers:   n.MapMarkers,
		Guild:        n.Guild,
		GuildQuests:  n.GuildQuests,
		StartDate:    n.StartDate,
		EndDate:      n.EndDate,
		Difficulty:   n.Difficulty,
		Journal:      n.Journal,
		CreatedAt:    n.CreatedAt,
		UpdatedAt:    updatedAt,
	}
}

func fromData(d *Data) *entities.Campaign {
	c := &entities.Campaign{
		ID:           d.ID,
		OwnerID:      d.OwnerID,
		Number:       d.Number,
		Name:         d.Name,
		CharacterIDs: d.CharacterIDs,
		Day:          d.Day,
		PartyXP:      d.PartyXP,
		CharacterHP:  d.CharacterHP,
		CharacterXP:  d.CharacterXP,
		MapTokens:    d.MapTokens,
		MapMarkers:   d.MapMarkers,
		Guild:        d.Guild,
		GuildQuests:  d.GuildQuests,
		StartDate:    d.StartDate,
		EndDate:      d.EndDate,
		Difficulty:   d.Difficulty,
		Journal:      d.Journal,
		CreatedAt:    d.CreatedAt,
	}
	if d.Overland != "" {
		overland := entities.MapID(d.Overland)
		c.Overland = &overland
	}
	c.Normalize()
	return c
}

// sortByNumberDesc puts the most recent campaign first
func sortByNumberDesc(list []*entities.Campaign) {
	sort.SliceStable(list, func(i, j int) bool {
		if list[i].Number != list[j].Number {
			return list[i].Number > list[j].Number
		}
		return list[i].CreatedAt > list[j].CreatedAt
	})
}

func validateForWrite(c *entities.Campaign) error {
	if c == nil {
		return dnderr.InvalidArgument("campaign cannot be nil")
	}
	if c.ID == "" {
		return dnderr.InvalidArgument("campaign ID is required")
	}
	if c.OwnerID == "" {
		return dnderr.InvalidArgument("campaign owner ID is required")
	}
	return nil
}

func notFound(id string) error {
	return dnderr.NotFoundf("campaign with ID '%s' not found", id).WithMeta("campaign_id", id)
}
