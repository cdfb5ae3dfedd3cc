// Package picking resolves raw pointer locations to grid cells.
//
// The pipeline has two halves: Normalize maps an event point inside a
// viewport to a coordinate with both axes in [-1, 1] and the vertical axis
// inverted (screen down is world down, which is negative), and a Resolver
// asks a Picker capability which cell, if any, lies under that normalized
// point. Cells are drawn smaller than their pitch, so the gap between cells
// is a legitimate miss region rather than a bug.
package picking

import (
	"fmt"
	"math"

	"pixelgrid/internal/grid"
)

// DefaultCellFill is the fraction of a cell's pitch the cell body covers.
// The remainder is the inter-cell gap. 0.75 matches the terminal layout of
// three glyph columns of cell per one glyph column of gap.
const DefaultCellFill = 0.75

// Point is a raw event location in viewport units (screen Y grows down).
type Point struct {
	X float64
	Y float64
}

// Event unifies pointer and touch input. When both a pointer location and
// touch points are present the pointer wins. An event carrying neither
// resolves to nothing; pointer tracking is best-effort, not safety-critical.
type Event struct {
	Pointer *Point
	Touches []Point
}

// Location returns the event's effective point, or false when the event
// carries no usable location.
func (e Event) Location() (Point, bool) {
	if e.Pointer != nil {
		return *e.Pointer, true
	}
	if len(e.Touches) > 0 {
		return e.Touches[0], true
	}
	return Point{}, false
}

// Rect is a viewport in the same units as Point.
type Rect struct {
	X float64
	Y float64
	W float64
	H float64
}

// Norm is a normalized picking coordinate. Points inside the viewport map
// to [-1, 1] on both axes, with +Y at the top of the viewport.
type Norm struct {
	X float64
	Y float64
}

// Normalize maps pt relative to vp into normalized space. Points outside
// the viewport produce values outside [-1, 1] and will never pick a cell.
func Normalize(pt Point, vp Rect) Norm {
	return Norm{
		X: (pt.X-vp.X)/vp.W*2 - 1,
		Y: -((pt.Y-vp.Y)/vp.H*2 - 1),
	}
}

// Hit is one cell intersected by a pick, with its distance from the cell
// center in pitch units.
type Hit struct {
	Cell     grid.Coordinate
	Distance float64
}

// Picker is the external picking capability: given a normalized coordinate
// it returns every visual cell intersected. Implementations may return
// multiple hits; the Resolver keeps the nearest.
type Picker interface {
	Pick(n Norm) []Hit
}

// Resolver turns events into cell coordinates.
type Resolver struct {
	picker Picker
}

// NewResolver creates a resolver over the given picking capability.
func NewResolver(p Picker) *Resolver {
	return &Resolver{picker: p}
}

// Resolve runs the full pipeline: event location, normalization against vp,
// and cell resolution. It returns false when the event has no location or
// the point misses every cell.
func (r *Resolver) Resolve(ev Event, vp Rect) (grid.Coordinate, bool) {
	pt, ok := ev.Location()
	if !ok {
		return grid.Coordinate{}, false
	}
	return r.ResolveCell(Normalize(pt, vp))
}

// ResolveCell resolves a normalized coordinate to at most one cell, taking
// the nearest intersection when the picker reports several.
func (r *Resolver) ResolveCell(n Norm) (grid.Coordinate, bool) {
	hits := r.picker.Pick(n)
	if len(hits) == 0 {
		return grid.Coordinate{}, false
	}

	nearest := hits[0]
	for _, h := range hits[1:] {
		if h.Distance < nearest.Distance {
			nearest = h
		}
	}
	return nearest.Cell, true
}

// PlanePicker is the concrete picking capability for an N x N grid filling
// the normalized square: cell (0,0) sits at the top left, pitch is 2/N per
// axis, and each cell body covers fill of its pitch, centered.
type PlanePicker struct {
	size int
	fill float64
}

// NewPlanePicker creates a picker for a size x size grid. fill must be in
// (0, 1]; pass DefaultCellFill for the standard layout.
func NewPlanePicker(size int, fill float64) (*PlanePicker, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: %d", grid.ErrInvalidSize, size)
	}
	if fill <= 0 || fill > 1 {
		return nil, fmt.Errorf("picking: cell fill %v outside (0, 1]", fill)
	}
	return &PlanePicker{size: size, fill: fill}, nil
}

// Pick returns the cell whose body contains n, or nothing when n falls
// outside the normalized square, beyond the grid edge, or in a gap. Cells
// do not overlap, so at most one hit is ever produced.
func (p *PlanePicker) Pick(n Norm) []Hit {
	if n.X < -1 || n.X > 1 || n.Y < -1 || n.Y > 1 {
		return nil
	}

	// Position in pitch units; v counts rows downward from the top edge.
	u := (n.X + 1) / 2 * float64(p.size)
	v := (1 - n.Y) / 2 * float64(p.size)

	col := int(math.Floor(u))
	row := int(math.Floor(v))
	// The far edges of the square land exactly on size; fold them onto the
	// last cell so the boundary is not a dead zone.
	if col == p.size {
		col = p.size - 1
	}
	if row == p.size {
		row = p.size - 1
	}

	// Offset from the cell center, in pitch units.
	du := u - (float64(col) + 0.5)
	dv := v - (float64(row) + 0.5)

	half := p.fill / 2
	if math.Abs(du) > half || math.Abs(dv) > half {
		return nil
	}

	return []Hit{{
		Cell:     grid.Coordinate{Col: col, Row: row},
		Distance: math.Hypot(du, dv),
	}}
}
