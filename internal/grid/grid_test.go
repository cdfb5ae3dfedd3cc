package grid

import (
	"errors"
	"testing"
)

func TestNewRejectsInvalidSize(t *testing.T) {
	for _, size := range []int{0, -1, -16} {
		if _, err := New(size); !errors.Is(err, ErrInvalidSize) {
			t.Errorf("New(%d) error = %v, want ErrInvalidSize", size, err)
		}
	}
}

func TestNewStartsUnpainted(t *testing.T) {
	g, err := New(4)
	if err != nil {
		t.Fatalf("New(4) error = %v", err)
	}

	g.Each(func(c Coordinate, ref ColorRef) {
		if ref.Painted() {
			t.Errorf("cell %v = %v after New, want Unpainted", c, ref)
		}
	})
	if g.PaintedCount() != 0 {
		t.Errorf("PaintedCount() = %d after New, want 0", g.PaintedCount())
	}
}

func TestPaintThenAt(t *testing.T) {
	g, _ := New(5)

	for row := 0; row < 5; row++ {
		for col := 0; col < 5; col++ {
			c := Coordinate{Col: col, Row: row}
			k := (col + row) % 3
			if err := g.Paint(c, k); err != nil {
				t.Fatalf("Paint(%v, %d) error = %v", c, k, err)
			}
			if got := g.At(c); got != PaintedWith(k) {
				t.Errorf("At(%v) = %v, want PaintedWith(%d)", c, got, k)
			}
		}
	}
}

func TestPaintIsIdempotent(t *testing.T) {
	g, _ := New(3)
	c := Coordinate{Col: 1, Row: 2}

	if err := g.Paint(c, 4); err != nil {
		t.Fatalf("Paint() error = %v", err)
	}
	first := g.At(c)

	if err := g.Paint(c, 4); err != nil {
		t.Fatalf("second Paint() error = %v", err)
	}
	if got := g.At(c); got != first {
		t.Errorf("At() = %v after repaint, want %v", got, first)
	}
	if g.PaintedCount() != 1 {
		t.Errorf("PaintedCount() = %d, want 1", g.PaintedCount())
	}
}

func TestPaintOverwrites(t *testing.T) {
	g, _ := New(3)
	c := Coordinate{Col: 0, Row: 0}

	_ = g.Paint(c, 1)
	_ = g.Paint(c, 6)

	if got := g.At(c); got != PaintedWith(6) {
		t.Errorf("At(%v) = %v, want PaintedWith(6)", c, got)
	}
}

func TestPaintOutOfBounds(t *testing.T) {
	g, _ := New(3)

	bad := []Coordinate{
		{Col: -1, Row: 0},
		{Col: 0, Row: -1},
		{Col: 3, Row: 0},
		{Col: 0, Row: 3},
	}
	for _, c := range bad {
		if err := g.Paint(c, 0); !errors.Is(err, ErrOutOfBounds) {
			t.Errorf("Paint(%v) error = %v, want ErrOutOfBounds", c, err)
		}
	}
	if g.PaintedCount() != 0 {
		t.Errorf("PaintedCount() = %d after rejected paints, want 0", g.PaintedCount())
	}
}

func TestAtOutOfBoundsReadsUnpainted(t *testing.T) {
	g, _ := New(2)
	if got := g.At(Coordinate{Col: 5, Row: 5}); got != Unpainted {
		t.Errorf("At(out of bounds) = %v, want Unpainted", got)
	}
}

func TestClearResetsEverything(t *testing.T) {
	g, _ := New(4)
	g.Each(func(c Coordinate, _ ColorRef) {
		_ = g.Paint(c, 0)
	})
	if g.PaintedCount() != 16 {
		t.Fatalf("PaintedCount() = %d before Clear, want 16", g.PaintedCount())
	}

	g.Clear()

	if g.PaintedCount() != 0 {
		t.Errorf("PaintedCount() = %d after Clear, want 0", g.PaintedCount())
	}
	g.Each(func(c Coordinate, ref ColorRef) {
		if ref != Unpainted {
			t.Errorf("cell %v = %v after Clear, want Unpainted", c, ref)
		}
	})
}

func TestEachVisitsRowMajor(t *testing.T) {
	g, _ := New(2)

	var visited []Coordinate
	g.Each(func(c Coordinate, _ ColorRef) {
		visited = append(visited, c)
	})

	want := []Coordinate{
		{Col: 0, Row: 0}, {Col: 1, Row: 0},
		{Col: 0, Row: 1}, {Col: 1, Row: 1},
	}
	if len(visited) != len(want) {
		t.Fatalf("Each visited %d cells, want %d", len(visited), len(want))
	}
	for i := range want {
		if visited[i] != want[i] {
			t.Errorf("Each visit %d = %v, want %v", i, visited[i], want[i])
		}
	}
}
