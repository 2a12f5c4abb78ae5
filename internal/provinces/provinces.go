// Package provinces is the static catalogue of overland maps and the token
// palette offered when placing pieces on them.
package provinces

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/leohylee/tes-companion/internal/entities"
)

//go:embed provinces.yaml
var defaultCatalog []byte

// MapInfo describes one province map
type MapInfo struct {
	ID              entities.MapID `yaml:"id" json:"id"`
	Name            string         `yaml:"name" json:"name"`
	ImagePath       string         `yaml:"image_path" json:"imagePath"`
	ReferenceImages []string       `yaml:"reference_images" json:"referenceImages,omitempty"`
}

// TokenIcon is a preset the token picker offers
type TokenIcon struct {
	Icon  string `yaml:"icon" json:"icon"`
	Label string `yaml:"label" json:"label"`
}

// Catalog holds every province plus the token and day palettes
type Catalog struct {
	Maps       []MapInfo   `yaml:"maps" json:"maps"`
	TokenIcons []TokenIcon `yaml:"token_icons" json:"tokenIcons"`
	DayColors  []string    `yaml:"day_colors" json:"dayColors"`

	byID map[entities.MapID]MapInfo
}

// Default returns the catalogue compiled into the binary
func Default() (*Catalog, error) {
	return Parse(defaultCatalog)
}

// Load reads a catalogue override from disk
func Load(path string) (*Catalog, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read province catalog: %w", err)
	}
	return Parse(raw)
}

// Parse decodes and validates a YAML catalogue
func Parse(raw []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return nil, fmt.Errorf("provinces.yaml: %w", err)
	}

	c.byID = make(map[entities.MapID]MapInfo, len(c.Maps))
	for _, m := range c.Maps {
		if !m.ID.Valid() {
			return nil, fmt.Errorf("provinces.yaml: unknown map id %q", m.ID)
		}
		if m.ImagePath == "" {
			return nil, fmt.Errorf("provinces.yaml: map %q has no image", m.ID)
		}
		c.byID[m.ID] = m
	}
	for _, id := range entities.MapIDs {
		if _, ok := c.byID[id]; !ok {
			return nil, fmt.Errorf("provinces.yaml: map %q missing", id)
		}
	}
	if len(c.DayColors) == 0 {
		return nil, fmt.Errorf("provinces.yaml: no day colors")
	}

	return &c, nil
}

// Map looks up a province
func (c *Catalog) Map(id entities.MapID) (MapInfo, bool) {
	m, ok := c.byID[id]
	return m, ok
}

// DayColor cycles the day palette; day 1 gets the first colour
func (c *Catalog) DayColor(day int) string {
	if day < entities.MinDay {
		day = entities.MinDay
	}
	return c.DayColors[(day-1)%len(c.DayColors)]
}
