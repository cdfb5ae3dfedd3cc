package grid

import (
	"fmt"
	"strings"

	"pixelgrid/internal/palette"
)

// Serialize renders the grid as comma-separated text: N lines (top row
// first), each N tokens (left to right). Painted cells emit the palette
// name for their recorded index; unpainted cells emit the reserved token.
// Lines are newline-joined with no trailing newline.
//
// Names are resolved against p at call time. Indices stored in the grid
// were validated when painted, so resolution is total for any palette the
// grid was painted against.
func Serialize(g *Grid, p palette.Palette) string {
	var b strings.Builder
	tokens := make([]string, g.size)

	for row := 0; row < g.size; row++ {
		for col := 0; col < g.size; col++ {
			ref := g.cells[row*g.size+col]
			if ref.Painted() {
				tokens[col] = p.Entry(ref.Index()).Name
			} else {
				tokens[col] = palette.ReservedToken
			}
		}
		if row > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(strings.Join(tokens, ","))
	}

	return b.String()
}

// Filename returns the export artifact name for an N x N grid.
func Filename(size int) string {
	return fmt.Sprintf("grid_colors_%dx%d.csv", size, size)
}

// Parse rebuilds a grid from Serialize output. The input must be square and
// every token must be either the reserved unpainted token or a name in p.
func Parse(text string, p palette.Palette) (*Grid, error) {
	lines := strings.Split(strings.TrimRight(text, "\n"), "\n")

	g, err := New(len(lines))
	if err != nil {
		return nil, err
	}

	byName := make(map[string]int, p.Len())
	for i, e := range p.Entries() {
		byName[e.Name] = i
	}

	for row, line := range lines {
		tokens := strings.Split(line, ",")
		if len(tokens) != len(lines) {
			return nil, fmt.Errorf("grid: row %d has %d tokens, want %d", row, len(tokens), len(lines))
		}
		for col, tok := range tokens {
			tok = strings.TrimSpace(tok)
			if tok == palette.ReservedToken {
				continue
			}
			index, ok := byName[tok]
			if !ok {
				return nil, fmt.Errorf("grid: row %d col %d: unknown color %q", row, col, tok)
			}
			if err := g.Paint(Coordinate{Col: col, Row: row}, index); err != nil {
				return nil, err
			}
		}
	}

	return g, nil
}
