// Package geometry maps entities placed over a variable-sized map image.
//
// Positions are stored as percentages of the container so they survive
// resizing, zooming and panning. Screen-space values (pointer coordinates,
// drag deltas, container bounds) are plain pixels. Every function here is
// pure: the same inputs always give the same output.
package geometry

import "math"

const (
	// MinPercent is the lowest value either axis of a Position may hold
	MinPercent = 0.0
	// MaxPercent is the highest value either axis of a Position may hold
	MaxPercent = 100.0
)

// Position is a percentage offset inside a container's bounding box
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Point is an absolute screen coordinate or a pixel delta
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Sub returns p - o
func (p Point) Sub(o Point) Point {
	return Point{X: p.X - o.X, Y: p.Y - o.Y}
}

// Rect is the rendered bounding box of a container
type Rect struct {
	Left   float64 `json:"left"`
	Top    float64 `json:"top"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Empty reports whether the rect cannot be used as a divisor
func (r Rect) Empty() bool {
	return !(r.Width > 0) || !(r.Height > 0)
}

// Clamp bounds each axis to [0,100]. NaN collapses to 0.
func Clamp(p Position) Position {
	return Position{X: clampAxis(p.X), Y: clampAxis(p.Y)}
}

// InBounds reports whether p is already within [0,100] on both axes
func InBounds(p Position) bool {
	return p.X >= MinPercent && p.X <= MaxPercent && p.Y >= MinPercent && p.Y <= MaxPercent
}

// ToPixel converts a percentage position to absolute pixels inside rect
func ToPixel(p Position, rect Rect) Point {
	return Point{
		X: rect.Left + p.X/100*rect.Width,
		Y: rect.Top + p.Y/100*rect.Height,
	}
}

// FromPoint converts an absolute pixel inside rect to a clamped position.
// An empty rect yields the origin.
func FromPoint(pt Point, rect Rect) Position {
	if rect.Empty() {
		return Position{}
	}
	return Clamp(Position{
		X: (pt.X - rect.Left) / rect.Width * 100,
		Y: (pt.Y - rect.Top) / rect.Height * 100,
	})
}

// FromDelta moves p by a pixel delta observed at the given zoom scale.
//
// The delta is first converted to layout pixels (divided by scale), then to a
// percentage of the container. An empty rect or a non-positive scale leaves
// the position where it was.
func FromDelta(p Position, delta Point, rect Rect, scale float64) Position {
	if rect.Empty() || !(scale > 0) {
		return Clamp(p)
	}
	return Clamp(Position{
		X: p.X + (delta.X/scale)/rect.Width*100,
		Y: p.Y + (delta.Y/scale)/rect.Height*100,
	})
}

func clampAxis(v float64) float64 {
	if math.IsNaN(v) {
		return MinPercent
	}
	return math.Max(MinPercent, math.Min(MaxPercent, v))
}
