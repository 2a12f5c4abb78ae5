package overland

import (
	"time"

	"github.com/leohylee/tes-companion/internal/entities"
	dnderr "github.com/leohylee/tes-companion/internal/errors"
)

// Data represents the serialized form of an overland state
type Data struct {
	OwnerID      string            `json:"owner_id"`
	CurrentMapID string            `json:"current_map_id"`
	Tokens       []entities.Token  `json:"tokens"`
	Markers      []entities.Marker `json:"markers"`
	CurrentDay   int               `json:"current_day"`
	UpdatedAt    time.Time         `json:"updated_at"`
}

func toData(ownerID string, s *entities.OverlandState, updatedAt time.Time) Data {
	n := s.Clone()
	n.Normalize()
	return Data{
		OwnerID:      ownerID,
		CurrentMapID: string(n.CurrentMapID),
		Tokens:       n.Tokens,
		Markers:      n.Markers,
		CurrentDay:   n.CurrentDay,
		UpdatedAt:    updatedAt,
	}
}

func fromData(d *Data) *entities.OverlandState {
	s := &entities.OverlandState{
		CurrentMapID: entities.MapID(d.CurrentMapID),
		Tokens:       d.Tokens,
		Markers:      d.Markers,
		CurrentDay:   d.CurrentDay,
	}
	s.Normalize()
	return s
}

func validateForWrite(ownerID string, s *entities.OverlandState) error {
	if ownerID == "" {
		return dnderr.InvalidArgument("owner ID is required")
	}
	return s.Validate()
}

func notFound(ownerID string) error {
	return dnderr.NotFound("overland state not found").WithMeta("owner_id", ownerID)
}
