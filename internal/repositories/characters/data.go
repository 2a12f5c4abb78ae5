package characters

import (
	"sort"
	"time"

	"github.com/leohylee/tes-companion/internal/entities"
	dnderr "github.com/leohylee/tes-companion/internal/errors"
)

// SkillData is the stored form of a skill entry
type SkillData struct {
	ID      string `json:"id"`
	SkillID string `json:"skill_id"`
}

// Data represents the serialized form of a character
type Data struct {
	ID          string      `json:"id"`
	OwnerID     string      `json:"owner_id"`
	Name        string      `json:"name"`
	Race        string      `json:"race"`
	RaceVariant int         `json:"race_variant"`
	ClassID     string      `json:"class_id"`
	IsMaster    bool        `json:"is_master"`
	Skills      []SkillData `json:"skills"`
	CreatedAt   int64       `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}

func toData(c *entities.Character, updatedAt time.Time) Data {
	skills := make([]SkillData, 0, len(c.Skills))
	for _, s := range c.Skills {
		skills = append(skills, SkillData{ID: s.ID, SkillID: string(s.SkillID)})
	}
	return Data{
		ID:          c.ID,
		OwnerID:     c.OwnerID,
		Name:        c.Name,
		Race:        string(c.Race),
		RaceVariant: c.RaceVariant,
		ClassID:     string(c.ClassID),
		IsMaster:    c.IsMaster,
		Skills:      skills,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   updatedAt,
	}
}

func fromData(d *Data) *entities.Character {
	skills := make([]entities.Skill, 0, len(d.Skills))
	for _, s := range d.Skills {
		skills = append(skills, entities.Skill{ID: s.ID, SkillID: entities.SkillID(s.SkillID)})
	}
	variant := d.RaceVariant
	if variant == 0 {
		variant = entities.MinRaceVariant
	}
	return &entities.Character{
		ID:          d.ID,
		OwnerID:     d.OwnerID,
		Name:        d.Name,
		Race:        entities.RaceID(d.Race),
		RaceVariant: variant,
		ClassID:     entities.ClassID(d.ClassID),
		IsMaster:    d.IsMaster,
		Skills:      skills,
		CreatedAt:   d.CreatedAt,
	}
}

// sortNewestFirst orders by creation time descending, id breaking ties
func sortNewestFirst(list []*entities.Character) {
	sort.SliceStable(list, func(i, j int) bool {
		if list[i].CreatedAt != list[j].CreatedAt {
			return list[i].CreatedAt > list[j].CreatedAt
		}
		return list[i].ID < list[j].ID
	})
}

func validateForWrite(c *entities.Character) error {
	if c == nil {
		return dnderr.InvalidArgument("character cannot be nil")
	}
	if c.ID == "" {
		return dnderr.InvalidArgument("character ID is required")
	}
	if c.OwnerID == "" {
		return dnderr.InvalidArgument("character owner ID is required")
	}
	return nil
}

func notFound(id string) error {
	return dnderr.NotFoundf("character with ID '%s' not found", id).WithMeta("character_id", id)
}
