package config

import (
	"fmt"

	"pixelgrid/internal/palette"
)

// Config represents the entire user configuration file.
type Config struct {
	Version int `yaml:"version"`

	// GridSize is the editor's N x N dimension, fixed for a session.
	GridSize int `yaml:"grid_size"`

	// CellFill is the fraction of a cell's pitch covered by the cell body;
	// the remainder shows as grid lines. Must be in (0, 1].
	CellFill float64 `yaml:"cell_fill"`

	// ExportDir is where CSV artifacts land. Empty means current directory.
	ExportDir string `yaml:"export_dir,omitempty"`

	// Palette overrides the built-in palette when non-empty.
	Palette []ColorEntry `yaml:"palette,omitempty"`

	Mirror *MirrorConfig `yaml:"mirror,omitempty"`
}

// ColorEntry is one configurable palette color.
type ColorEntry struct {
	Name  string `yaml:"name"`
	Color string `yaml:"color"` // #RRGGBB
}

// MirrorConfig holds live-share settings.
type MirrorConfig struct {
	Port     int  `yaml:"port"`
	Announce bool `yaml:"announce"` // advertise the mirror over mDNS
}

// NewConfig creates a Config with default values.
func NewConfig() *Config {
	return &Config{
		Version:  1,
		GridSize: 16,
		CellFill: 0.75,
		Mirror: &MirrorConfig{
			Port:     8137,
			Announce: false,
		},
	}
}

// Validate checks the loaded values for consistency.
func (c *Config) Validate() error {
	if c.GridSize <= 0 {
		return fmt.Errorf("config: grid_size must be positive, got %d", c.GridSize)
	}
	if c.CellFill <= 0 || c.CellFill > 1 {
		return fmt.Errorf("config: cell_fill must be in (0, 1], got %v", c.CellFill)
	}
	if c.Mirror != nil && (c.Mirror.Port < 1 || c.Mirror.Port > 65535) {
		return fmt.Errorf("config: mirror port must be between 1-65535, got %d", c.Mirror.Port)
	}
	return nil
}

// BuildPalette converts the configured colors into a palette, or returns
// the built-in default when none are configured.
func (c *Config) BuildPalette() (palette.Palette, error) {
	if len(c.Palette) == 0 {
		return palette.Default(), nil
	}

	entries := make([]palette.Entry, 0, len(c.Palette))
	for _, e := range c.Palette {
		value, err := palette.ParseHex(e.Color)
		if err != nil {
			return palette.Palette{}, fmt.Errorf("config: palette entry %q: %w", e.Name, err)
		}
		entries = append(entries, palette.Entry{Name: e.Name, Value: value})
	}
	return palette.New(entries)
}
