package entities

import "fmt"

// RaceID identifies one of the playable races
type RaceID string

const (
	RaceArgonian RaceID = "argonian"
	RaceBreton   RaceID = "breton"
	RaceDarkElf  RaceID = "dark-elf"
	RaceHighElf  RaceID = "high-elf"
	RaceImperial RaceID = "imperial"
	RaceKhajiit  RaceID = "khajiit"
	RaceNord     RaceID = "nord"
	RaceOrc      RaceID = "orc"
	RaceRedguard RaceID = "redguard"
	RaceWoodElf  RaceID = "wood-elf"
)

// ClassID identifies one of the character classes
type ClassID string

const (
	ClassAcrobat      ClassID = "acrobat"
	ClassArcher       ClassID = "archer"
	ClassBard         ClassID = "bard"
	ClassDragonknight ClassID = "dragonknight"
	ClassHealer       ClassID = "healer"
	ClassKnight       ClassID = "knight"
	ClassNecromancer  ClassID = "necromancer"
	ClassNightblade   ClassID = "nightblade"
	ClassPilgrim      ClassID = "pilgrim"
	ClassRogue        ClassID = "rogue"
	ClassScout        ClassID = "scout"
	ClassSorcerer     ClassID = "sorcerer"
	ClassSpellsword   ClassID = "spellsword"
	ClassTemplar      ClassID = "templar"
	ClassWarden       ClassID = "warden"
)

// SkillID identifies one of the skill cards a character can hold
type SkillID string

const (
	SkillAcrobatics       SkillID = "acrobatics"
	SkillBow              SkillID = "bow"
	SkillDaedricSummoning SkillID = "daedric-summoning"
	SkillDestructionStaff SkillID = "destruction-staff"
	SkillHeavyArmor       SkillID = "heavy-armor"
	SkillOneHandAndShield SkillID = "one-hand-and-shield"
	SkillRestoringLight   SkillID = "restoring-light"
	SkillShadow           SkillID = "shadow"
	SkillSpeech           SkillID = "speech"
	SkillTwoHanded        SkillID = "two-handed"
)

const (
	MinRaceVariant = 1
	MaxRaceVariant = 4
)

// CatalogEntry pairs an id with its display name
type CatalogEntry[T ~string] struct {
	ID   T      `json:"id"`
	Name string `json:"name"`
}

// Races lists every race in display order
var Races = []CatalogEntry[RaceID]{
	{ID: RaceArgonian, Name: "Argonian"},
	{ID: RaceBreton, Name: "Breton"},
	{ID: RaceDarkElf, Name: "Dark Elf"},
	{ID: RaceHighElf, Name: "High Elf"},
	{ID: RaceImperial, Name: "Imperial"},
	{ID: RaceKhajiit, Name: "Khajiit"},
	{ID: RaceNord, Name: "Nord"},
	{ID: RaceOrc, Name: "Orc"},
	{ID: RaceRedguard, Name: "Redguard"},
	{ID: RaceWoodElf, Name: "Wood Elf"},
}

// Classes lists every class in display order
var Classes = []CatalogEntry[ClassID]{
	{ID: ClassAcrobat, Name: "Acrobat"},
	{ID: ClassArcher, Name: "Archer"},
	{ID: ClassBard, Name: "Bard"},
	{ID: ClassDragonknight, Name: "Dragonknight"},
	{ID: ClassHealer, Name: "Healer"},
	{ID: ClassKnight, Name: "Knight"},
	{ID: ClassNecromancer, Name: "Necromancer"},
	{ID: ClassNightblade, Name: "Nightblade"},
	{ID: ClassPilgrim, Name: "Pilgrim"},
	{ID: ClassRogue, Name: "Rogue"},
	{ID: ClassScout, Name: "Scout"},
	{ID: ClassSorcerer, Name: "Sorcerer"},
	{ID: ClassSpellsword, Name: "Spellsword"},
	{ID: ClassTemplar, Name: "Templar"},
	{ID: ClassWarden, Name: "Warden"},
}

// Skills lists every skill in display order
var Skills = []CatalogEntry[SkillID]{
	{ID: SkillAcrobatics, Name: "Acrobatics"},
	{ID: SkillBow, Name: "Bow"},
	{ID: SkillDaedricSummoning, Name: "Daedric Summoning"},
	{ID: SkillDestructionStaff, Name: "Destruction Staff"},
	{ID: SkillHeavyArmor, Name: "Heavy Armor"},
	{ID: SkillOneHandAndShield, Name: "One Hand and Shield"},
	{ID: SkillRestoringLight, Name: "Restoring Light"},
	{ID: SkillShadow, Name: "Shadow"},
	{ID: SkillSpeech, Name: "Speech"},
	{ID: SkillTwoHanded, Name: "Two Handed"},
}

// Valid reports whether r is a known race
func (r RaceID) Valid() bool { return inCatalog(Races, r) }

// Valid reports whether c is a known class
func (c ClassID) Valid() bool { return inCatalog(Classes, c) }

// Valid reports whether s is a known skill
func (s SkillID) Valid() bool { return inCatalog(Skills, s) }

// Name returns the display name, or the raw id if unknown
func (r RaceID) Name() string { return catalogName(Races, r) }

// Name returns the display name, or the raw id if unknown
func (c ClassID) Name() string { return catalogName(Classes, c) }

// Name returns the display name, or the raw id if unknown
func (s SkillID) Name() string { return catalogName(Skills, s) }

// SkillPage is the side of a skill card shown
type SkillPage int

// RaceImagePath returns the portrait for a race variant
func RaceImagePath(race RaceID, variant int) string {
	return fmt.Sprintf("/images/races/%s-%d.png", race, variant)
}

// ClassImagePath returns the class card for the novice or master side
func ClassImagePath(class ClassID, isMaster bool) string {
	side := "novice"
	if isMaster {
		side = "master"
	}
	return fmt.Sprintf("/images/classes/%s-%s.png", class, side)
}

// SkillImagePath returns the image of one page of a skill card
func SkillImagePath(skill SkillID, page SkillPage) string {
	return fmt.Sprintf("/images/skills/%s-%d.png", skill, page)
}

func inCatalog[T ~string](entries []CatalogEntry[T], id T) bool {
	for _, e := range entries {
		if e.ID == id {
			return true
		}
	}
	return false
}

func catalogName[T ~string](entries []CatalogEntry[T], id T) string {
	for _, e := range entries {
		if e.ID == id {
			return e.Name
		}
	}
	return string(id)
}
