package grid

import (
	"strings"
	"testing"

	"pixelgrid/internal/palette"
)

func testPalette(t *testing.T) palette.Palette {
	t.Helper()
	p, err := palette.New([]palette.Entry{
		{Name: "red", Value: palette.RGB{R: 255, G: 0, B: 0}},
		{Name: "green", Value: palette.RGB{R: 0, G: 255, B: 0}},
		{Name: "blue", Value: palette.RGB{R: 0, G: 0, B: 255}},
	})
	if err != nil {
		t.Fatalf("palette.New() error = %v", err)
	}
	return p
}

func TestSerializeEmptyGrid(t *testing.T) {
	p := testPalette(t)
	g, _ := New(3)

	got := Serialize(g, p)
	want := "none,none,none\nnone,none,none\nnone,none,none"
	if got != want {
		t.Errorf("Serialize() = %q, want %q", got, want)
	}
}

func TestSerializeNoTrailingNewline(t *testing.T) {
	g, _ := New(2)
	if got := Serialize(g, testPalette(t)); strings.HasSuffix(got, "\n") {
		t.Errorf("Serialize() ends with newline: %q", got)
	}
}

// Painting every cell (col,row) with index (col+row) mod len(palette) must
// reproduce the palette names by the same formula.
func TestSerializeDiagonalFormula(t *testing.T) {
	p := testPalette(t)
	g, _ := New(3)

	g.Each(func(c Coordinate, _ ColorRef) {
		if err := g.Paint(c, (c.Col+c.Row)%p.Len()); err != nil {
			t.Fatalf("Paint(%v) error = %v", c, err)
		}
	})

	got := Serialize(g, p)
	want := "red,green,blue\ngreen,blue,red\nblue,red,green"
	if got != want {
		t.Errorf("Serialize() = %q, want %q", got, want)
	}
}

func TestSerializeShapeIsStable(t *testing.T) {
	p := testPalette(t)
	g, _ := New(4)

	check := func(stage string) {
		t.Helper()
		lines := strings.Split(Serialize(g, p), "\n")
		if len(lines) != 4 {
			t.Fatalf("%s: got %d lines, want 4", stage, len(lines))
		}
		for i, line := range lines {
			if tokens := strings.Split(line, ","); len(tokens) != 4 {
				t.Errorf("%s: line %d has %d tokens, want 4", stage, i, len(tokens))
			}
		}
	}

	check("fresh")
	_ = g.Paint(Coordinate{Col: 1, Row: 1}, 2)
	_ = g.Paint(Coordinate{Col: 3, Row: 0}, 0)
	check("painted")
	g.Clear()
	check("cleared")
}

func TestSerializeReflectsSelectionAtPaintTime(t *testing.T) {
	p := testPalette(t)
	g, _ := New(2)

	_ = g.Paint(Coordinate{Col: 0, Row: 0}, 2)
	_ = g.Paint(Coordinate{Col: 1, Row: 1}, 1)

	got := Serialize(g, p)
	want := "blue,none\nnone,green"
	if got != want {
		t.Errorf("Serialize() = %q, want %q", got, want)
	}
}

func TestFilename(t *testing.T) {
	if got := Filename(16); got != "grid_colors_16x16.csv" {
		t.Errorf("Filename(16) = %q, want %q", got, "grid_colors_16x16.csv")
	}
}

func TestParseRoundTrip(t *testing.T) {
	p := testPalette(t)
	g, _ := New(3)
	g.Each(func(c Coordinate, _ ColorRef) {
		if (c.Col+c.Row)%2 == 0 {
			_ = g.Paint(c, c.Col%p.Len())
		}
	})

	text := Serialize(g, p)
	parsed, err := Parse(text, p)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	if parsed.Size() != g.Size() {
		t.Fatalf("parsed size = %d, want %d", parsed.Size(), g.Size())
	}
	if got := Serialize(parsed, p); got != text {
		t.Errorf("round trip = %q, want %q", got, text)
	}
}

func TestParseRejectsUnknownToken(t *testing.T) {
	if _, err := Parse("red,mauve\nnone,none", testPalette(t)); err == nil {
		t.Error("Parse() with unknown color name should fail")
	}
}

func TestParseRejectsRaggedRows(t *testing.T) {
	if _, err := Parse("red,green\nnone", testPalette(t)); err == nil {
		t.Error("Parse() with ragged rows should fail")
	}
}
