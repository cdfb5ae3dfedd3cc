package export

import (
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"pixelgrid/internal/grid"
	"pixelgrid/internal/palette"
)

func TestWriteCSV(t *testing.T) {
	dir := t.TempDir()
	p := palette.Default()
	g, _ := grid.New(3)
	_ = g.Paint(grid.Coordinate{Col: 0, Row: 0}, 0)
	_ = g.Paint(grid.Coordinate{Col: 2, Row: 2}, 5)

	path, err := WriteCSV(g, p, dir)
	if err != nil {
		t.Fatalf("WriteCSV() error = %v", err)
	}

	if filepath.Base(path) != "grid_colors_3x3.csv" {
		t.Errorf("artifact name = %q, want grid_colors_3x3.csv", filepath.Base(path))
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	got := string(data)
	want := "red,none,none\nnone,none,none\nnone,none,blue"
	if got != want {
		t.Errorf("artifact content = %q, want %q", got, want)
	}
	if strings.HasSuffix(got, "\n") {
		t.Error("artifact content should have no trailing newline")
	}

	// No temp file left behind.
	if _, err := os.Stat(path + ".tmp"); !os.IsNotExist(err) {
		t.Errorf("temp file still present: %v", err)
	}
}

func TestWriteCSVBadDir(t *testing.T) {
	g, _ := grid.New(2)
	if _, err := WriteCSV(g, palette.Default(), "/nonexistent/path/here"); err == nil {
		t.Error("WriteCSV() into missing directory should fail")
	}
}

func TestWritePNGDimensions(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.png")
	g, _ := grid.New(4)
	_ = g.Paint(grid.Coordinate{Col: 1, Row: 1}, 3)

	if err := WritePNG(g, palette.Default(), path); err != nil {
		t.Fatalf("WritePNG() error = %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer f.Close()

	cfg, err := png.DecodeConfig(f)
	if err != nil {
		t.Fatalf("DecodeConfig() error = %v", err)
	}
	want := 4 * CellPitchPx
	if cfg.Width != want || cfg.Height != want {
		t.Errorf("PNG size = %dx%d, want %dx%d", cfg.Width, cfg.Height, want, want)
	}
}
