// Package export writes one-shot grid artifacts: the CSV color table and an
// optional PNG rendering.
package export

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fogleman/gg"

	"pixelgrid/internal/grid"
	"pixelgrid/internal/logging"
	"pixelgrid/internal/palette"
)

// PNG rendering geometry. Cells draw at CellFill of their pitch so the
// background shows through as grid lines, matching the on-screen look.
const (
	CellPitchPx = 24
	CellFill    = 0.9
)

// Background is the PNG background and unpainted cell color.
var Background = palette.RGB{R: 0x1A, G: 0x1A, B: 0x1A}

// WriteCSV serializes the grid and writes it to dir under the standard
// artifact name (grid_colors_{N}x{N}.csv). It returns the written path.
func WriteCSV(g *grid.Grid, p palette.Palette, dir string) (string, error) {
	if dir == "" {
		dir = "."
	}
	path := filepath.Join(dir, grid.Filename(g.Size()))

	content := grid.Serialize(g, p)
	// Write through a temp file so a crash never leaves a half-written
	// artifact behind.
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, []byte(content), 0o644); err != nil {
		return "", fmt.Errorf("export: write %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return "", fmt.Errorf("export: rename to %s: %w", path, err)
	}

	logging.LogExport(path, g.Size(), g.PaintedCount())
	return path, nil
}

// WritePNG renders the grid to a PNG image at path. Painted cells draw in
// their palette color; unpainted cells stay the background color, and the
// inter-cell gap reads as grid lines.
func WritePNG(g *grid.Grid, p palette.Palette, path string) error {
	n := g.Size()
	side := n * CellPitchPx

	dc := gg.NewContext(side, side)
	dc.SetRGB255(int(Background.R), int(Background.G), int(Background.B))
	dc.Clear()

	inset := float64(CellPitchPx) * (1 - CellFill) / 2
	body := float64(CellPitchPx) * CellFill

	g.Each(func(c grid.Coordinate, ref grid.ColorRef) {
		if !ref.Painted() {
			return
		}
		v := p.Entry(ref.Index()).Value
		dc.SetRGB255(int(v.R), int(v.G), int(v.B))
		dc.DrawRectangle(
			float64(c.Col*CellPitchPx)+inset,
			float64(c.Row*CellPitchPx)+inset,
			body, body,
		)
		dc.Fill()
	})

	if err := dc.SavePNG(path); err != nil {
		return fmt.Errorf("export: save png %s: %w", path, err)
	}

	logging.LogExport(path, n, g.PaintedCount())
	return nil
}
