// Package paint wires the pointer lifecycle to grid mutation.
//
// The controller is an explicit two-state machine: Idle and Painting.
// Pointer down enters Painting with an immediate paint attempt, every move
// while Painting attempts another paint, and up or cancel return to Idle
// without painting. Event bindings in the UI are thin adapters over these
// transition methods.
package paint

import (
	"pixelgrid/internal/grid"
	"pixelgrid/internal/logging"
	"pixelgrid/internal/palette"
	"pixelgrid/internal/picking"
)

// State names the controller's position in its lifecycle.
type State string

const (
	// StateIdle means no button is held; moves are ignored.
	StateIdle State = "idle"
	// StatePainting means the button is held; every move paints.
	StatePainting State = "painting"
)

// Sink receives the visual side effects of painting. The controller treats
// it as write-only; the TUI renders from it and the mirror rebroadcasts it.
type Sink interface {
	// SetCell updates one cell's on-screen appearance with the named color
	// it was painted with.
	SetCell(c grid.Coordinate, color palette.Entry)
	// Reset returns every cell to the background appearance.
	Reset()
}

// Controller implements paint-while-button-held over a grid. It lives for
// the application's lifetime; there is no terminal state.
type Controller struct {
	state    State
	grid     *grid.Grid
	store    *palette.Store
	resolver *picking.Resolver
	sink     Sink
}

// NewController creates a controller in the Idle state.
func NewController(g *grid.Grid, store *palette.Store, resolver *picking.Resolver, sink Sink) *Controller {
	return &Controller{
		state:    StateIdle,
		grid:     g,
		store:    store,
		resolver: resolver,
		sink:     sink,
	}
}

// State returns the current lifecycle state.
func (c *Controller) State() State {
	return c.state
}

// PointerDown enters Painting and immediately attempts a paint at the
// event's position.
func (c *Controller) PointerDown(ev picking.Event, vp picking.Rect) {
	c.state = StatePainting
	c.attempt(ev, vp)
}

// PointerMove attempts a paint when Painting. Moves arriving in Idle are
// hover motion and do nothing.
func (c *Controller) PointerMove(ev picking.Event, vp picking.Rect) {
	if c.state != StatePainting {
		return
	}
	c.attempt(ev, vp)
}

// PointerUp returns to Idle. No paint occurs.
func (c *Controller) PointerUp() {
	c.state = StateIdle
}

// PointerCancel returns to Idle, for pointer streams that end without a
// release (focus loss, capture cancel).
func (c *Controller) PointerCancel() {
	c.state = StateIdle
}

// Clear resets every cell to unpainted and tells the sink to sweep the
// whole grid back to the background appearance.
func (c *Controller) Clear() {
	c.grid.Clear()
	c.sink.Reset()
	logging.Debug("Grid cleared")
}

// attempt resolves the event to a cell and paints it with the current
// selection. A miss (gap, off-grid, locationless event) is a silent no-op.
func (c *Controller) attempt(ev picking.Event, vp picking.Rect) {
	cell, ok := c.resolver.Resolve(ev, vp)
	if !ok {
		return
	}

	index := c.store.Current()
	if err := c.grid.Paint(cell, index); err != nil {
		// Unreachable when the picker and grid agree on dimensions.
		logging.Warn("Paint rejected: " + err.Error())
		return
	}

	entry := c.store.Palette().Entry(index)
	c.sink.SetCell(cell, entry)
	logging.LogPaint(cell.Col, cell.Row, index, entry.Name)
}
