package drag

import (
	"sync"

	"github.com/leohylee/tes-companion/internal/geometry"
)

// Zoom limits
const (
	MinScale = 0.5
	MaxScale = 4.0
)

// Gesture reports whether a competing gesture owns the pointer
type Gesture interface {
	Active() bool
}

// Viewport is a pannable, zoomable window onto a map of fixed layout size.
// It satisfies Surface.
type Viewport struct {
	mu sync.Mutex

	origin geometry.Point // screen position of the unpanned container
	width  float64
	height float64
	panX   float64
	panY   float64
	scale  float64

	suppressors []Gesture
}

// NewViewport creates a viewport at scale 1 with no pan
func NewViewport(origin geometry.Point, width, height float64) *Viewport {
	return &Viewport{origin: origin, width: width, height: height, scale: 1}
}

// SuppressWhile refuses pans and zooms while g is active
func (v *Viewport) SuppressWhile(g Gesture) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.suppressors = append(v.suppressors, g)
}

// Bounds is the unscaled layout rectangle
func (v *Viewport) Bounds() geometry.Rect {
	v.mu.Lock()
	defer v.mu.Unlock()
	return geometry.Rect{Left: v.origin.X, Top: v.origin.Y, Width: v.width, Height: v.height}
}

// Scale is the current zoom factor
func (v *Viewport) Scale() float64 {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.scale
}

// ScreenRect is where the map is drawn right now, pan and zoom included
func (v *Viewport) ScreenRect() geometry.Rect {
	v.mu.Lock()
	defer v.mu.Unlock()
	return geometry.Rect{
		Left:   v.origin.X + v.panX,
		Top:    v.origin.Y + v.panY,
		Width:  v.width * v.scale,
		Height: v.height * v.scale,
	}
}

// Resize changes the layout size, e.g. after the window resized
func (v *Viewport) Resize(width, height float64) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.width, v.height = width, height
}

// Pan shifts the map by a screen delta. It returns false while suppressed.
func (v *Viewport) Pan(delta geometry.Point) bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.suppressed() {
		return false
	}
	v.panX += delta.X
	v.panY += delta.Y
	return true
}

// Zoom multiplies the scale by factor, keeping focus fixed on screen.
// The result is bounded to [MinScale, MaxScale].
func (v *Viewport) Zoom(factor float64, focus geometry.Point) bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.suppressed() || !(factor > 0) {
		return false
	}

	next := min(max(v.scale*factor, MinScale), MaxScale)
	// layout coordinate under the focus point
	u := (focus.X - v.origin.X - v.panX) / v.scale
	w := (focus.Y - v.origin.Y - v.panY) / v.scale
	v.panX = focus.X - v.origin.X - u*next
	v.panY = focus.Y - v.origin.Y - w*next
	v.scale = next
	return true
}

// ResetView returns to scale 1 with no pan
func (v *Viewport) ResetView() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.suppressed() {
		return false
	}
	v.panX, v.panY, v.scale = 0, 0, 1
	return true
}

func (v *Viewport) suppressed() bool {
	for _, g := range v.suppressors {
		if g.Active() {
			return true
		}
	}
	return false
}
