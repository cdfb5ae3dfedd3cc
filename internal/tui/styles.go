package tui

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"pixelgrid/internal/version"
)

// Application branding constants
const (
	AppName = "PIXELGRID"
)

// AppVersion returns the application version from the centralized version package
func AppVersion() string {
	return version.Version
}

// Grid layout constants. A cell body is CellWidth glyphs wide followed by
// GapWidth glyphs of background; rows are one glyph tall with no vertical
// gap. With this layout every glyph of a cell body picks that cell and
// every gap glyph misses, for any grid size, when the picker's cell fill
// is CellFill.
const (
	CellWidth = 3
	GapWidth  = 1
	CellFill  = 0.75

	// GridMarginX/Y position the grid's top-left glyph on screen.
	GridMarginX = 2
	GridMarginY = 2

	MinTerminalWidth = 40 // Minimum supported terminal width
)

// Color palette
var (
	// Primary colors
	PrimaryColor   = lipgloss.Color("#7D56F4") // Purple
	SecondaryColor = lipgloss.Color("#43BF6D") // Green
	ErrorColor     = lipgloss.Color("#FF5555") // Red

	// Neutral colors
	TextColor       = lipgloss.Color("#FFFFFF") // White
	SubtleColor     = lipgloss.Color("#626262") // Gray
	BackgroundColor = lipgloss.Color("#1A1A1A") // Dark gray - unpainted cells
)

// Common styles
var (
	// Title style
	TitleStyle = lipgloss.NewStyle().
			Foreground(PrimaryColor).
			Bold(true)

	// Subtitle style - grid dimensions next to the title
	SubtitleStyle = lipgloss.NewStyle().
			Foreground(SubtleColor)

	// Unpainted cell body
	EmptyCellStyle = lipgloss.NewStyle().
			Background(BackgroundColor)

	// Swatch label style (the digit on each palette swatch)
	SwatchLabelStyle = lipgloss.NewStyle().
				Bold(true)

	// Marker under the selected swatch
	SelectedMarkerStyle = lipgloss.NewStyle().
				Foreground(TextColor).
				Bold(true)

	// Status line style (export results, viewer count)
	StatusStyle = lipgloss.NewStyle().
			Foreground(SecondaryColor)

	// Status line style for errors
	StatusErrorStyle = lipgloss.NewStyle().
				Foreground(ErrorColor)

	// Help text style
	HelpStyle = lipgloss.NewStyle().
			Foreground(SubtleColor)
)

// GetTerminalSize returns the current terminal width and height
func GetTerminalSize() (int, int) {
	width, height, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return MinTerminalWidth, 24 // Default fallback
	}
	if width < MinTerminalWidth {
		width = MinTerminalWidth
	}
	return width, height
}
