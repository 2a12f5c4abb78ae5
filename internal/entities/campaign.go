package entities

import (
	"fmt"
	"strings"

	dnderr "github.com/leohylee/tes-companion/internal/errors"
)

const (
	MinCampaignCharacters = 1
	MaxCampaignCharacters = 4
)

// Campaign is one playthrough of a party of characters
type Campaign struct {
	ID           string         `json:"id"`
	OwnerID      string         `json:"-"`
	Number       int            `json:"number"`
	Name         string         `json:"name"`
	CharacterIDs []string       `json:"characterIds"`
	Day          int            `json:"day"`
	PartyXP      int            `json:"partyXp"`
	CharacterHP  map[string]int `json:"characterHp"`
	CharacterXP  map[string]int `json:"characterXp"`
	Overland     *MapID         `json:"overland"`
	MapTokens    []Token        `json:"mapTokens"`
	MapMarkers   []Marker       `json:"mapMarkers"`
	Guild        string         `json:"guild"`
	GuildQuests  []string       `json:"guildQuests"`
	StartDate    string         `json:"startDate"`
	EndDate      string         `json:"endDate"`
	Difficulty   string         `json:"difficulty"`
	Journal      string         `json:"journal"`
	CreatedAt    int64          `json:"createdAt,omitempty"`

	// Characters is only populated when a single campaign is fetched
	Characters []*Character `json:"characters,omitempty"`
}

// NewCampaign builds a freshly created campaign with its defaults
func NewCampaign(id, ownerID string, number int, characterIDs []string) *Campaign {
	c := &Campaign{
		ID:           id,
		OwnerID:      ownerID,
		Number:       number,
		Name:         CampaignName(number),
		CharacterIDs: append([]string{}, characterIDs...),
	}
	c.Normalize()
	return c
}

// CampaignName is the default name of the nth campaign
func CampaignName(number int) string {
	return fmt.Sprintf("Campaign %d", number)
}

// HasCharacter reports whether characterID is part of the party
func (c *Campaign) HasCharacter(characterID string) bool {
	for _, id := range c.CharacterIDs {
		if id == characterID {
			return true
		}
	}
	return false
}

// Normalize fills in defaults for fields older records may lack
func (c *Campaign) Normalize() {
	if c.Day < MinDay {
		c.Day = MinDay
	}
	if c.PartyXP < MinPartyXP {
		c.PartyXP = MinPartyXP
	}
	if c.CharacterIDs == nil {
		c.CharacterIDs = []string{}
	}
	if c.CharacterHP == nil {
		c.CharacterHP = map[string]int{}
	}
	if c.CharacterXP == nil {
		c.CharacterXP = map[string]int{}
	}
	if c.Overland != nil && *c.Overland == "" {
		c.Overland = nil
	}
	if c.MapTokens == nil {
		c.MapTokens = []Token{}
	}
	if c.MapMarkers == nil {
		c.MapMarkers = []Marker{}
	}
	if c.GuildQuests == nil {
		c.GuildQuests = []string{}
	}
}

// Clone returns a deep copy
func (c *Campaign) Clone() *Campaign {
	if c == nil {
		return nil
	}
	out := *c
	out.CharacterIDs = append([]string{}, c.CharacterIDs...)
	out.CharacterHP = cloneStats(c.CharacterHP)
	out.CharacterXP = cloneStats(c.CharacterXP)
	if c.Overland != nil {
		overland := *c.Overland
		out.Overland = &overland
	}
	out.MapTokens = CloneTokens(c.MapTokens)
	out.MapMarkers = CloneMarkers(c.MapMarkers)
	out.GuildQuests = append([]string{}, c.GuildQuests...)
	if c.Characters != nil {
		out.Characters = make([]*Character, len(c.Characters))
		for i, ch := range c.Characters {
			out.Characters[i] = ch.Clone()
		}
	}
	return &out
}

// Apply merges the set fields of p into c
func (c *Campaign) Apply(p *CampaignPatch) {
	if p == nil {
		return
	}
	if p.Name != nil {
		c.Name = strings.TrimSpace(*p.Name)
	}
	if p.CharacterIDs != nil {
		c.CharacterIDs = append([]string{}, (*p.CharacterIDs)...)
	}
	if p.Day != nil {
		c.Day = *p.Day
	}
	if p.PartyXP != nil {
		c.PartyXP = *p.PartyXP
	}
	if p.CharacterHP != nil {
		c.CharacterHP = cloneStats(*p.CharacterHP)
	}
	if p.CharacterXP != nil {
		c.CharacterXP = cloneStats(*p.CharacterXP)
	}
	if p.Overland != nil {
		if *p.Overland == "" {
			c.Overland = nil
		} else {
			overland := *p.Overland
			c.Overland = &overland
		}
	}
	if p.MapTokens != nil {
		c.MapTokens = CloneTokens(*p.MapTokens)
		ClampTokens(c.MapTokens)
	}
	if p.MapMarkers != nil {
		c.MapMarkers = CloneMarkers(*p.MapMarkers)
		ClampMarkers(c.MapMarkers)
	}
	if p.Guild != nil {
		c.Guild = *p.Guild
	}
	if p.GuildQuests != nil {
		c.GuildQuests = append([]string{}, (*p.GuildQuests)...)
	}
	if p.StartDate != nil {
		c.StartDate = *p.StartDate
	}
	if p.EndDate != nil {
		c.EndDate = *p.EndDate
	}
	if p.Difficulty != nil {
		c.Difficulty = *p.Difficulty
	}
	if p.Journal != nil {
		c.Journal = *p.Journal
	}
}

// CampaignPatch is a partial update; nil fields are left untouched.
// Overland set to the empty string clears the campaign's map.
type CampaignPatch struct {
	Name         *string         `json:"name,omitempty"`
	CharacterIDs *[]string       `json:"characterIds,omitempty"`
	Day          *int            `json:"day,omitempty"`
	PartyXP      *int            `json:"partyXp,omitempty"`
	CharacterHP  *map[string]int `json:"characterHp,omitempty"`
	CharacterXP  *map[string]int `json:"characterXp,omitempty"`
	Overland     *MapID          `json:"overland,omitempty"`
	MapTokens    *[]Token        `json:"mapTokens,omitempty"`
	MapMarkers   *[]Marker       `json:"mapMarkers,omitempty"`
	Guild        *string         `json:"guild,omitempty"`
	GuildQuests  *[]string       `json:"guildQuests,omitempty"`
	StartDate    *string         `json:"startDate,omitempty"`
	EndDate      *string         `json:"endDate,omitempty"`
	Difficulty   *string         `json:"difficulty,omitempty"`
	Journal      *string         `json:"journal,omitempty"`
}

// Validate checks the fields that are set
func (p *CampaignPatch) Validate() error {
	if p == nil {
		return dnderr.InvalidArgument("campaign patch cannot be nil")
	}
	if p.Name != nil && strings.TrimSpace(*p.Name) == "" {
		return dnderr.Validation("campaign name cannot be empty")
	}
	if p.CharacterIDs != nil {
		if err := ValidateCampaignCharacters(*p.CharacterIDs); err != nil {
			return err
		}
	}
	if p.Day != nil && *p.Day < MinDay {
		return dnderr.Validationf("day must be at least %d", MinDay).WithMeta("day", *p.Day)
	}
	if p.PartyXP != nil && *p.PartyXP < MinPartyXP {
		return dnderr.Validationf("party xp must be at least %d", MinPartyXP).WithMeta("party_xp", *p.PartyXP)
	}
	if p.CharacterHP != nil {
		if err := validateStats("hp", *p.CharacterHP); err != nil {
			return err
		}
	}
	if p.CharacterXP != nil {
		if err := validateStats("xp", *p.CharacterXP); err != nil {
			return err
		}
	}
	if p.Overland != nil && *p.Overland != "" && !p.Overland.Valid() {
		return dnderr.Validationf("unknown map '%s'", *p.Overland).WithMeta("map_id", *p.Overland)
	}
	if p.MapMarkers != nil {
		for _, m := range *p.MapMarkers {
			if !m.Type.Valid() {
				return dnderr.Validationf("unknown marker type '%s'", m.Type).WithMeta("marker_id", m.ID)
			}
		}
	}
	return nil
}

// ValidateCampaignCharacters enforces the party size of one to four
func ValidateCampaignCharacters(ids []string) error {
	if len(ids) < MinCampaignCharacters || len(ids) > MaxCampaignCharacters {
		return dnderr.Validationf("campaign must have between %d and %d characters",
			MinCampaignCharacters, MaxCampaignCharacters).WithMeta("character_count", len(ids))
	}
	seen := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if strings.TrimSpace(id) == "" {
			return dnderr.Validation("character id cannot be empty")
		}
		if _, dup := seen[id]; dup {
			return dnderr.Validationf("character '%s' is listed twice", id).WithMeta("character_id", id)
		}
		seen[id] = struct{}{}
	}
	return nil
}

func validateStats(kind string, stats map[string]int) error {
	for id, v := range stats {
		if v < MinCharacterStat {
			return dnderr.Validationf("character %s cannot be negative", kind).
				WithMeta("character_id", id).
				WithMeta(kind, v)
		}
	}
	return nil
}

func cloneStats(in map[string]int) map[string]int {
	out := make(map[string]int, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}
