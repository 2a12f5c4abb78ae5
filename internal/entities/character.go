package entities

import (
	"strings"

	dnderr "github.com/leohylee/tes-companion/internal/errors"
)

// Skill is one entry of a character's skill list. The entry id equals its
// skill id, which is what makes duplicates detectable.
type Skill struct {
	ID      string  `json:"id"`
	SkillID SkillID `json:"skillId"`
}

// NewSkill builds the entry for a skill id
func NewSkill(skillID SkillID) Skill {
	return Skill{ID: string(skillID), SkillID: skillID}
}

// Character is a player character owned by one user account
type Character struct {
	ID          string  `json:"id"`
	OwnerID     string  `json:"-"`
	Name        string  `json:"name"`
	Race        RaceID  `json:"race"`
	RaceVariant int     `json:"raceVariant"`
	ClassID     ClassID `json:"classId"`
	IsMaster    bool    `json:"isMaster"`
	Skills      []Skill `json:"skills"`
	CreatedAt   int64   `json:"createdAt,omitempty"`
}

// HasSkill reports whether the character already holds skillID
func (c *Character) HasSkill(skillID SkillID) bool {
	for _, s := range c.Skills {
		if s.SkillID == skillID {
			return true
		}
	}
	return false
}

// Clone returns a deep copy
func (c *Character) Clone() *Character {
	if c == nil {
		return nil
	}
	out := *c
	out.Skills = append([]Skill(nil), c.Skills...)
	if out.Skills == nil {
		out.Skills = []Skill{}
	}
	return &out
}

// Apply merges the set fields of p into c
func (c *Character) Apply(p *CharacterPatch) {
	if p == nil {
		return
	}
	if p.Name != nil {
		c.Name = strings.TrimSpace(*p.Name)
	}
	if p.Race != nil {
		c.Race = *p.Race
	}
	if p.RaceVariant != nil {
		c.RaceVariant = *p.RaceVariant
	}
	if p.ClassID != nil {
		c.ClassID = *p.ClassID
	}
	if p.IsMaster != nil {
		c.IsMaster = *p.IsMaster
	}
	if p.Skills != nil {
		c.Skills = append([]Skill{}, (*p.Skills)...)
	}
}

// CharacterInput is what the creation wizard submits
type CharacterInput struct {
	Name        string  `json:"name"`
	Race        RaceID  `json:"race"`
	RaceVariant int     `json:"raceVariant,omitempty"`
	ClassID     ClassID `json:"classId"`
	IsMaster    bool    `json:"isMaster,omitempty"`
	Skills      []Skill `json:"skills,omitempty"`
}

// Validate checks required fields and catalogue membership
func (in *CharacterInput) Validate() error {
	if in == nil {
		return dnderr.InvalidArgument("character input cannot be nil")
	}
	if strings.TrimSpace(in.Name) == "" || in.Race == "" || in.ClassID == "" {
		return dnderr.Validation("name, race, and class are required")
	}
	if !in.Race.Valid() {
		return dnderr.Validationf("unknown race '%s'", in.Race).WithMeta("race", in.Race)
	}
	if !in.ClassID.Valid() {
		return dnderr.Validationf("unknown class '%s'", in.ClassID).WithMeta("class_id", in.ClassID)
	}
	if in.RaceVariant != 0 {
		if err := validateRaceVariant(in.RaceVariant); err != nil {
			return err
		}
	}
	return ValidateSkills(in.Skills)
}

// ToCharacter builds a character applying creation defaults
func (in *CharacterInput) ToCharacter(id, ownerID string) *Character {
	variant := in.RaceVariant
	if variant == 0 {
		variant = MinRaceVariant
	}
	skills := make([]Skill, 0, len(in.Skills))
	for _, s := range in.Skills {
		skills = append(skills, NewSkill(s.SkillID))
	}
	return &Character{
		ID:          id,
		OwnerID:     ownerID,
		Name:        strings.TrimSpace(in.Name),
		Race:        in.Race,
		RaceVariant: variant,
		ClassID:     in.ClassID,
		IsMaster:    in.IsMaster,
		Skills:      skills,
	}
}

// CharacterPatch is a partial update; nil fields are left untouched
type CharacterPatch struct {
	Name        *string  `json:"name,omitempty"`
	Race        *RaceID  `json:"race,omitempty"`
	RaceVariant *int     `json:"raceVariant,omitempty"`
	ClassID     *ClassID `json:"classId,omitempty"`
	IsMaster    *bool    `json:"isMaster,omitempty"`
	Skills      *[]Skill `json:"skills,omitempty"`
}

// Validate checks the fields that are set
func (p *CharacterPatch) Validate() error {
	if p == nil {
		return dnderr.InvalidArgument("character patch cannot be nil")
	}
	if p.Name != nil && strings.TrimSpace(*p.Name) == "" {
		return dnderr.Validation("character name cannot be empty")
	}
	if p.Race != nil && !p.Race.Valid() {
		return dnderr.Validationf("unknown race '%s'", *p.Race)
	}
	if p.ClassID != nil && !p.ClassID.Valid() {
		return dnderr.Validationf("unknown class '%s'", *p.ClassID)
	}
	if p.RaceVariant != nil {
		if err := validateRaceVariant(*p.RaceVariant); err != nil {
			return err
		}
	}
	if p.Skills != nil {
		return ValidateSkills(*p.Skills)
	}
	return nil
}

// ValidateSkills rejects unknown and duplicate skill ids
func ValidateSkills(skills []Skill) error {
	seen := make(map[SkillID]struct{}, len(skills))
	for _, s := range skills {
		if !s.SkillID.Valid() {
			return dnderr.Validationf("unknown skill '%s'", s.SkillID).WithMeta("skill_id", s.SkillID)
		}
		if _, dup := seen[s.SkillID]; dup {
			return dnderr.Validationf("skill '%s' is already known", s.SkillID).WithMeta("skill_id", s.SkillID)
		}
		seen[s.SkillID] = struct{}{}
	}
	return nil
}

func validateRaceVariant(v int) error {
	if v < MinRaceVariant || v > MaxRaceVariant {
		return dnderr.Validationf("race variant must be between %d and %d", MinRaceVariant, MaxRaceVariant).
			WithMeta("race_variant", v)
	}
	return nil
}
