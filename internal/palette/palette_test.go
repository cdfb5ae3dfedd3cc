package palette

import (
	"errors"
	"testing"
)

func TestNewRejectsEmpty(t *testing.T) {
	_, err := New(nil)
	if !errors.Is(err, ErrEmpty) {
		t.Errorf("New(nil) error = %v, want ErrEmpty", err)
	}
}

func TestNewRejectsDuplicateNames(t *testing.T) {
	_, err := New([]Entry{
		{Name: "red", Value: RGB{255, 0, 0}},
		{Name: "red", Value: RGB{200, 0, 0}},
	})
	if !errors.Is(err, ErrDuplicateName) {
		t.Errorf("New() with duplicate names error = %v, want ErrDuplicateName", err)
	}
}

func TestNewRejectsReservedName(t *testing.T) {
	_, err := New([]Entry{{Name: "none", Value: RGB{}}})
	if !errors.Is(err, ErrReservedName) {
		t.Errorf("New() with reserved name error = %v, want ErrReservedName", err)
	}
}

func TestNewCopiesEntries(t *testing.T) {
	entries := []Entry{{Name: "red", Value: RGB{255, 0, 0}}}
	p, err := New(entries)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	entries[0].Name = "mutated"
	if got := p.Entry(0).Name; got != "red" {
		t.Errorf("Entry(0).Name = %q after caller mutation, want %q", got, "red")
	}
}

func TestDefaultPalette(t *testing.T) {
	p := Default()

	if p.Len() != 8 {
		t.Errorf("Default().Len() = %d, want 8", p.Len())
	}

	for i := 0; i < p.Len(); i++ {
		if !p.Valid(i) {
			t.Errorf("Valid(%d) = false, want true", i)
		}
	}
	if p.Valid(-1) || p.Valid(p.Len()) {
		t.Error("Valid() should reject out-of-range indices")
	}
}

func TestStoreDefaultsToZero(t *testing.T) {
	s := NewStore(Default())
	if s.Current() != 0 {
		t.Errorf("Current() = %d before any Select, want 0", s.Current())
	}
}

func TestStoreSelect(t *testing.T) {
	s := NewStore(Default())

	if err := s.Select(3); err != nil {
		t.Fatalf("Select(3) error = %v", err)
	}
	if s.Current() != 3 {
		t.Errorf("Current() = %d, want 3", s.Current())
	}
	if got := s.CurrentEntry().Name; got != "green" {
		t.Errorf("CurrentEntry().Name = %q, want %q", got, "green")
	}
}

func TestStoreSelectOutOfRange(t *testing.T) {
	s := NewStore(Default())
	if err := s.Select(2); err != nil {
		t.Fatalf("Select(2) error = %v", err)
	}

	for _, i := range []int{-1, 8, 100} {
		if err := s.Select(i); !errors.Is(err, ErrInvalidIndex) {
			t.Errorf("Select(%d) error = %v, want ErrInvalidIndex", i, err)
		}
	}

	// A failed Select must not disturb the selection.
	if s.Current() != 2 {
		t.Errorf("Current() = %d after failed Select, want 2", s.Current())
	}
}

func TestParseHex(t *testing.T) {
	tests := []struct {
		in      string
		want    RGB
		wantErr bool
	}{
		{"#E63C3C", RGB{0xE6, 0x3C, 0x3C}, false},
		{"e63c3c", RGB{0xE6, 0x3C, 0x3C}, false},
		{"#FFFFFF", RGB{255, 255, 255}, false},
		{"#FFF", RGB{}, true},
		{"", RGB{}, true},
		{"#GGGGGG", RGB{}, true},
	}

	for _, tt := range tests {
		got, err := ParseHex(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseHex(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && got != tt.want {
			t.Errorf("ParseHex(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestRGBHex(t *testing.T) {
	tests := []struct {
		color RGB
		want  string
	}{
		{RGB{0, 0, 0}, "#000000"},
		{RGB{255, 255, 255}, "#FFFFFF"},
		{RGB{0xE6, 0x3C, 0x3C}, "#E63C3C"},
	}

	for _, tt := range tests {
		if got := tt.color.Hex(); got != tt.want {
			t.Errorf("RGB%v.Hex() = %q, want %q", tt.color, got, tt.want)
		}
	}
}
