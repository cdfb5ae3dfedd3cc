package palette

import (
	"errors"
	"fmt"
)

// ReservedToken is the export token for unpainted cells. Palette entries
// may not use it as a name, otherwise exports would be ambiguous.
const ReservedToken = "none"

var (
	// ErrInvalidIndex indicates a selection index outside the palette bounds.
	// This is a programmer error: the UI only ever offers valid indices.
	ErrInvalidIndex = errors.New("palette: selection index out of range")

	// ErrEmpty indicates an attempt to build a palette with no entries.
	ErrEmpty = errors.New("palette: at least one entry required")

	// ErrDuplicateName indicates two entries sharing a display name.
	ErrDuplicateName = errors.New("palette: duplicate entry name")

	// ErrReservedName indicates an entry named after the unpainted token.
	ErrReservedName = errors.New("palette: entry name collides with reserved token")
)

// RGB is a display color value.
type RGB struct {
	R, G, B uint8
}

// Hex returns the color as a #RRGGBB string for terminal and image styling.
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

// ParseHex parses a #RRGGBB string (leading # optional) into an RGB value.
func ParseHex(s string) (RGB, error) {
	if len(s) > 0 && s[0] == '#' {
		s = s[1:]
	}
	if len(s) != 6 {
		return RGB{}, fmt.Errorf("palette: invalid hex color %q", s)
	}
	var c RGB
	if _, err := fmt.Sscanf(s, "%02x%02x%02x", &c.R, &c.G, &c.B); err != nil {
		return RGB{}, fmt.Errorf("palette: invalid hex color %q: %w", s, err)
	}
	return c, nil
}

// Entry is a single selectable color: a stable display name (used verbatim
// in exports) and its display value.
type Entry struct {
	Name  string
	Value RGB
}

// Palette is an ordered, fixed set of color entries. It is immutable after
// construction; all lookups are by index.
type Palette struct {
	entries []Entry
}

// New validates and builds a palette. Names must be unique, non-empty and
// must not equal the reserved unpainted token.
func New(entries []Entry) (Palette, error) {
	if len(entries) == 0 {
		return Palette{}, ErrEmpty
	}

	seen := make(map[string]struct{}, len(entries))
	for i, e := range entries {
		if e.Name == "" {
			return Palette{}, fmt.Errorf("palette: entry %d has empty name", i)
		}
		if e.Name == ReservedToken {
			return Palette{}, fmt.Errorf("%w: %q", ErrReservedName, e.Name)
		}
		if _, dup := seen[e.Name]; dup {
			return Palette{}, fmt.Errorf("%w: %q", ErrDuplicateName, e.Name)
		}
		seen[e.Name] = struct{}{}
	}

	// Copy so callers cannot mutate the palette through their slice.
	own := make([]Entry, len(entries))
	copy(own, entries)
	return Palette{entries: own}, nil
}

// Default returns the built-in eight color palette used when no palette is
// configured.
func Default() Palette {
	p, err := New([]Entry{
		{Name: "red", Value: RGB{0xE6, 0x3C, 0x3C}},
		{Name: "orange", Value: RGB{0xF2, 0xA7, 0x4F}},
		{Name: "yellow", Value: RGB{0xF2, 0xE2, 0x4F}},
		{Name: "green", Value: RGB{0x43, 0xBF, 0x6D}},
		{Name: "cyan", Value: RGB{0x4F, 0xD2, 0xE2}},
		{Name: "blue", Value: RGB{0x3C, 0x6E, 0xE6}},
		{Name: "purple", Value: RGB{0x7D, 0x56, 0xF4}},
		{Name: "white", Value: RGB{0xFF, 0xFF, 0xFF}},
	})
	if err != nil {
		// The built-in palette is a compile-time constant in all but syntax.
		panic(err)
	}
	return p
}

// Len returns the number of entries.
func (p Palette) Len() int {
	return len(p.entries)
}

// Entry returns the entry at index i. The index must be valid; entries are
// only ever addressed with indices previously validated by Store.Select or
// recorded by a paint operation.
func (p Palette) Entry(i int) Entry {
	return p.entries[i]
}

// Entries returns a copy of all entries in order.
func (p Palette) Entries() []Entry {
	out := make([]Entry, len(p.entries))
	copy(out, p.entries)
	return out
}

// Valid reports whether i addresses an entry.
func (p Palette) Valid(i int) bool {
	return i >= 0 && i < len(p.entries)
}

// Store holds a palette together with the currently active selection.
// The selection defaults to 0 and is never invalid.
type Store struct {
	palette  Palette
	selected int
}

// NewStore creates a store with the selection at entry 0.
func NewStore(p Palette) *Store {
	return &Store{palette: p}
}

// Palette returns the underlying palette.
func (s *Store) Palette() Palette {
	return s.palette
}

// Colors returns the ordered entries.
func (s *Store) Colors() []Entry {
	return s.palette.Entries()
}

// Select sets the active paint color. Out-of-range indices return
// ErrInvalidIndex and leave the selection unchanged.
func (s *Store) Select(i int) error {
	if !s.palette.Valid(i) {
		return fmt.Errorf("%w: %d (palette size %d)", ErrInvalidIndex, i, s.palette.Len())
	}
	s.selected = i
	return nil
}

// Current returns the active selection index.
func (s *Store) Current() int {
	return s.selected
}

// CurrentEntry returns the active selection's entry.
func (s *Store) CurrentEntry() Entry {
	return s.palette.Entry(s.selected)
}
