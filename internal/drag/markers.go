package drag

import (
	"context"

	"github.com/leohylee/tes-companion/internal/entities"
	"github.com/leohylee/tes-companion/internal/geometry"
)

// MarkerBoard is anything holding markers
type MarkerBoard interface {
	AddMarker(ctx context.Context, input *entities.MarkerInput) (entities.Marker, error)
	RemoveMarker(ctx context.Context, id string) error
}

// Screen reports where the map is currently drawn
type Screen interface {
	ScreenRect() geometry.Rect
}

// PlaceMarker drops a marker of type t where the user double-clicked
func PlaceMarker(ctx context.Context, board MarkerBoard, screen Screen, pt geometry.Point, t entities.MarkerType, label string) (entities.Marker, error) {
	return board.AddMarker(ctx, &entities.MarkerInput{
		Position: geometry.FromPoint(pt, screen.ScreenRect()),
		Type:     t,
		Label:    label,
	})
}

// ClickMarker removes a marker; markers have no edit step
func ClickMarker(ctx context.Context, board MarkerBoard, id string) error {
	return board.RemoveMarker(ctx, id)
}
