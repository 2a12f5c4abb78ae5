package entities

import (
	"github.com/leohylee/tes-companion/internal/geometry"

	dnderr "github.com/leohylee/tes-companion/internal/errors"
)

// MapID identifies one of the seven provinces usable as an overland map
type MapID string

const (
	MapBlackMarsh    MapID = "black-marsh"
	MapCyrodiil      MapID = "cyrodiil"
	MapEasternSkyrim MapID = "eastern-skyrim"
	MapHighRock      MapID = "high-rock"
	MapMorrowind     MapID = "morrowind"
	MapValenwood     MapID = "valenwood"
	MapWesternSkyrim MapID = "western-skyrim"

	// DefaultMapID is the province shown before the user picks one
	DefaultMapID = MapEasternSkyrim
)

// MapIDs lists the provinces in display order
var MapIDs = []MapID{
	MapBlackMarsh,
	MapCyrodiil,
	MapEasternSkyrim,
	MapHighRock,
	MapMorrowind,
	MapValenwood,
	MapWesternSkyrim,
}

// Valid reports whether m is one of the seven provinces
func (m MapID) Valid() bool {
	for _, id := range MapIDs {
		if id == m {
			return true
		}
	}
	return false
}

// MarkerType is the closed set of annotations a marker can carry
type MarkerType string

const (
	MarkerVisited MarkerType = "visited"
	MarkerQuest   MarkerType = "quest"
	MarkerPOI     MarkerType = "poi"
	MarkerDanger  MarkerType = "danger"
	MarkerCamp    MarkerType = "camp"
)

// MarkerStyle is how a marker type is drawn
type MarkerStyle struct {
	Icon  string `json:"icon"`
	Color string `json:"color"`
}

var markerStyles = map[MarkerType]MarkerStyle{
	MarkerVisited: {Icon: "✓", Color: "#22C55E"},
	MarkerQuest:   {Icon: "!", Color: "#EAB308"},
	MarkerPOI:     {Icon: "★", Color: "#3B82F6"},
	MarkerDanger:  {Icon: "⚠", Color: "#EF4444"},
	MarkerCamp:    {Icon: "🏕", Color: "#F97316"},
}

// Valid reports whether t is a known marker type
func (t MarkerType) Valid() bool {
	_, ok := markerStyles[t]
	return ok
}

// Style returns the icon and colour of t
func (t MarkerType) Style() MarkerStyle {
	return markerStyles[t]
}

// Token is a movable game piece placed on a map
type Token struct {
	ID       string            `json:"id"`
	Position geometry.Position `json:"position"`
	Icon     string            `json:"icon"`
	Label    string            `json:"label"`
	Color    string            `json:"color"`
}

// TokenInput is a token without its id
type TokenInput struct {
	Position geometry.Position `json:"position"`
	Icon     string            `json:"icon"`
	Label    string            `json:"label"`
	Color    string            `json:"color"`
}

// Validate requires an icon, the one thing a token cannot be drawn without
func (in *TokenInput) Validate() error {
	if in == nil {
		return dnderr.InvalidArgument("token input cannot be nil")
	}
	if in.Icon == "" {
		return dnderr.Validation("token icon is required")
	}
	return nil
}

// TokenPatch is a partial token update
type TokenPatch struct {
	Position *geometry.Position `json:"position,omitempty"`
	Icon     *string            `json:"icon,omitempty"`
	Label    *string            `json:"label,omitempty"`
	Color    *string            `json:"color,omitempty"`
}

// Apply merges p into t, clamping a new position
func (t *Token) Apply(p *TokenPatch) {
	if p == nil {
		return
	}
	if p.Position != nil {
		t.Position = geometry.Clamp(*p.Position)
	}
	if p.Icon != nil {
		t.Icon = *p.Icon
	}
	if p.Label != nil {
		t.Label = *p.Label
	}
	if p.Color != nil {
		t.Color = *p.Color
	}
}

// Marker is a fixed annotation; once placed it can only be deleted
type Marker struct {
	ID       string            `json:"id"`
	Position geometry.Position `json:"position"`
	Type     MarkerType        `json:"type"`
	Label    string            `json:"label,omitempty"`
}

// MarkerInput is a marker without its id
type MarkerInput struct {
	Position geometry.Position `json:"position"`
	Type     MarkerType        `json:"type"`
	Label    string            `json:"label,omitempty"`
}

// Validate checks the marker type
func (in *MarkerInput) Validate() error {
	if in == nil {
		return dnderr.InvalidArgument("marker input cannot be nil")
	}
	if !in.Type.Valid() {
		return dnderr.Validationf("unknown marker type '%s'", in.Type).WithMeta("marker_type", in.Type)
	}
	return nil
}

// CloneTokens deep-copies a token list, never returning nil
func CloneTokens(tokens []Token) []Token {
	return append(make([]Token, 0, len(tokens)), tokens...)
}

// CloneMarkers deep-copies a marker list, never returning nil
func CloneMarkers(markers []Marker) []Marker {
	return append(make([]Marker, 0, len(markers)), markers...)
}

// ClampTokens forces every token position into bounds
func ClampTokens(tokens []Token) {
	for i := range tokens {
		tokens[i].Position = geometry.Clamp(tokens[i].Position)
	}
}

// ClampMarkers forces every marker position into bounds
func ClampMarkers(markers []Marker) {
	for i := range markers {
		markers[i].Position = geometry.Clamp(markers[i].Position)
	}
}

// OverlandState is a user's free-roam map, separate from any campaign board
type OverlandState struct {
	CurrentMapID MapID    `json:"currentMapId"`
	Tokens       []Token  `json:"tokens"`
	Markers      []Marker `json:"markers"`
	CurrentDay   int      `json:"currentDay"`
}

// NewOverlandState returns the state of a user who has never touched the map
func NewOverlandState() *OverlandState {
	return &OverlandState{
		CurrentMapID: DefaultMapID,
		Tokens:       []Token{},
		Markers:      []Marker{},
		CurrentDay:   MinDay,
	}
}

// Clone returns a deep copy
func (s *OverlandState) Clone() *OverlandState {
	if s == nil {
		return nil
	}
	out := *s
	out.Tokens = CloneTokens(s.Tokens)
	out.Markers = CloneMarkers(s.Markers)
	return &out
}

// Normalize fills defaults and clamps positions
func (s *OverlandState) Normalize() {
	if !s.CurrentMapID.Valid() {
		s.CurrentMapID = DefaultMapID
	}
	if s.CurrentDay < MinDay {
		s.CurrentDay = MinDay
	}
	if s.Tokens == nil {
		s.Tokens = []Token{}
	}
	if s.Markers == nil {
		s.Markers = []Marker{}
	}
	ClampTokens(s.Tokens)
	ClampMarkers(s.Markers)
}

// Validate rejects states that cannot be normalised into shape
func (s *OverlandState) Validate() error {
	if s == nil {
		return dnderr.InvalidArgument("overland state cannot be nil")
	}
	if s.CurrentMapID != "" && !s.CurrentMapID.Valid() {
		return dnderr.Validationf("unknown map '%s'", s.CurrentMapID).WithMeta("map_id", s.CurrentMapID)
	}
	for _, m := range s.Markers {
		if !m.Type.Valid() {
			return dnderr.Validationf("unknown marker type '%s'", m.Type).WithMeta("marker_id", m.ID)
		}
	}
	return nil
}
