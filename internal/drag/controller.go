// Package drag turns pointer gestures over a map into token moves and
// marker placements.
package drag

import (
	"context"
	"log"
	"sync"

	dnderr "github.com/leohylee/tes-companion/internal/errors"
	"github.com/leohylee/tes-companion/internal/geometry"
)

// Surface supplies the map container's layout size and the current zoom
type Surface interface {
	Bounds() geometry.Rect
	Scale() float64
}

// Board is anything holding draggable tokens
type Board interface {
	TokenPosition(id string) (geometry.Position, bool)
	MoveToken(ctx context.Context, id string, pos geometry.Position) error
}

// State of the controller
type State int

const (
	Idle State = iota
	Dragging
)

func (s State) String() string {
	if s == Dragging {
		return "dragging"
	}
	return "idle"
}

// Controller tracks one drag at a time. Each move is applied as the delta
// from the previous pointer position, not from where the drag started.
type Controller struct {
	board   Board
	surface Surface

	mu       sync.Mutex
	state    State
	entityID string
	last     geometry.Point
}

// Suppressible is a surface that can refuse its own gestures while a drag
// owns the pointer
type Suppressible interface {
	SuppressWhile(g Gesture)
}

// NewController creates an idle controller. A surface that is Suppressible
// stops panning and zooming while this controller is dragging.
func NewController(board Board, surface Surface) *Controller {
	if board == nil || surface == nil {
		panic("drag controller needs a board and a surface")
	}
	c := &Controller{board: board, surface: surface}
	if s, ok := surface.(Suppressible); ok {
		s.SuppressWhile(c)
	}
	return c
}

// Press starts dragging id from pt. It returns false if another drag is
// active or the token does not exist.
func (c *Controller) Press(id string, pt geometry.Point) bool {
	if _, ok := c.board.TokenPosition(id); !ok {
		return false
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state == Dragging {
		return false
	}
	c.state = Dragging
	c.entityID = id
	c.last = pt
	return true
}

// Move applies the pointer delta since the last event. Moves while idle,
// or for a token that has since been removed, do nothing.
func (c *Controller) Move(ctx context.Context, pt geometry.Point) error {
	c.mu.Lock()
	if c.state != Dragging {
		c.mu.Unlock()
		return nil
	}
	id := c.entityID
	delta := pt.Sub(c.last)
	c.last = pt
	c.mu.Unlock()

	current, ok := c.board.TokenPosition(id)
	if !ok {
		return nil
	}

	next := geometry.FromDelta(current, delta, c.surface.Bounds(), c.surface.Scale())
	if err := c.board.MoveToken(ctx, id, next); err != nil {
		if dnderr.IsNotFound(err) {
			return nil
		}
		log.Printf("Drag: failed to move %s: %v", id, err)
		return err
	}
	return nil
}

// Release ends the drag wherever the pointer is
func (c *Controller) Release() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state = Idle
	c.entityID = ""
}

// State returns the current state and the dragged id, if any
func (c *Controller) State() (State, string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state, c.entityID
}

// Active reports whether a drag is in progress
func (c *Controller) Active() bool {
	s, _ := c.State()
	return s == Dragging
}
