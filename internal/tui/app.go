package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"pixelgrid/internal/export"
	"pixelgrid/internal/grid"
	"pixelgrid/internal/mirror"
	"pixelgrid/internal/paint"
	"pixelgrid/internal/palette"
	"pixelgrid/internal/picking"
)

// editorKeyMap defines key bindings for the editor screen
type editorKeyMap struct {
	Select key.Binding
	Prev   key.Binding
	Next   key.Binding
	Clear  key.Binding
	Export key.Binding
	Quit   key.Binding
}

// ShortHelp returns keybindings to be shown in the mini help view
func (k editorKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Select, k.Prev, k.Next, k.Clear, k.Export, k.Quit}
}

// FullHelp returns keybindings for the expanded help view
func (k editorKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Select, k.Prev, k.Next},
		{k.Clear, k.Export, k.Quit},
	}
}

func newEditorKeyMap() editorKeyMap {
	return editorKeyMap{
		Select: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"),
			key.WithHelp("1-9", "color"),
		),
		Prev: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "prev color"),
		),
		Next: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "next color"),
		),
		Clear: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "clear"),
		),
		Export: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "export csv"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// visualBuffer is the coordinate-indexed array of visual cell handles. The
// paint controller writes colors into it; the view renders from it and
// never reads the grid directly.
type visualBuffer struct {
	size  int
	cells []*palette.RGB
}

func newVisualBuffer(size int) *visualBuffer {
	return &visualBuffer{
		size:  size,
		cells: make([]*palette.RGB, size*size),
	}
}

// SetCell implements paint.Sink
func (b *visualBuffer) SetCell(c grid.Coordinate, color palette.Entry) {
	v := color.Value
	b.cells[c.Row*b.size+c.Col] = &v
}

// Reset implements paint.Sink
func (b *visualBuffer) Reset() {
	for i := range b.cells {
		b.cells[i] = nil
	}
}

func (b *visualBuffer) at(col, row int) *palette.RGB {
	return b.cells[row*b.size+col]
}

// editorSink fans visual updates out to the on-screen buffer and, when
// sharing, the mirror hub.
type editorSink struct {
	buffer *visualBuffer
	hub    *mirror.Hub // nil when not sharing
}

func (s *editorSink) SetCell(c grid.Coordinate, color palette.Entry) {
	s.buffer.SetCell(c, color)
	if s.hub != nil {
		s.hub.SetCell(c, color)
	}
}

func (s *editorSink) Reset() {
	s.buffer.Reset()
	if s.hub != nil {
		s.hub.Reset()
	}
}

// Model is the editor screen: the grid, the palette bar, a status line and
// a help footer. All state mutation happens synchronously in Update.
type Model struct {
	grid      *grid.Grid
	store     *palette.Store
	ctrl      *paint.Controller
	buffer    *visualBuffer
	hub       *mirror.Hub
	exportDir string

	// UI state
	Width  int
	Height int

	status    string
	statusErr bool

	// Help
	Help help.Model
	Keys editorKeyMap
}

// NewModel wires the editor together: picking over the drawn grid rect,
// the paint controller, and the visual sink (plus the mirror hub when
// sharing is enabled; pass nil otherwise).
func NewModel(g *grid.Grid, store *palette.Store, hub *mirror.Hub, exportDir string, cellFill float64) (Model, error) {
	picker, err := picking.NewPlanePicker(g.Size(), cellFill)
	if err != nil {
		return Model{}, err
	}

	buffer := newVisualBuffer(g.Size())
	sink := &editorSink{buffer: buffer, hub: hub}

	width, height := GetTerminalSize()
	return Model{
		grid:      g,
		store:     store,
		ctrl:      paint.NewController(g, store, picking.NewResolver(picker), sink),
		buffer:    buffer,
		hub:       hub,
		exportDir: exportDir,
		Width:     width,
		Height:    height,
		Help:      help.New(),
		Keys:      newEditorKeyMap(),
	}, nil
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)
	}

	return m, nil
}

// handleKey handles keyboard input
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.Keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.Keys.Clear):
		m.ctrl.Clear()
		m.setStatus("grid cleared", false)

	case key.Matches(msg, m.Keys.Export):
		// Export is synchronous: nothing else can touch the grid while it
		// reads a stable snapshot.
		path, err := export.WriteCSV(m.grid, m.store.Palette(), m.exportDir)
		if err != nil {
			m.setStatus(fmt.Sprintf("export failed: %v", err), true)
		} else {
			m.setStatus("exported "+path, false)
		}

	case key.Matches(msg, m.Keys.Prev):
		m.selectIndex((m.store.Current() + m.store.Palette().Len() - 1) % m.store.Palette().Len())

	case key.Matches(msg, m.Keys.Next):
		m.selectIndex((m.store.Current() + 1) % m.store.Palette().Len())

	case key.Matches(msg, m.Keys.Select):
		// Bindings cover 1-9; only offer indices the palette actually has.
		idx := int(msg.String()[0] - '1')
		if m.store.Palette().Valid(idx) {
			m.selectIndex(idx)
		}
	}

	return m, nil
}

// handleMouse routes the pointer lifecycle into the paint state machine.
// The event bindings are adapters; all paint semantics live in the
// controller.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		if idx, ok := m.swatchAt(msg.X, msg.Y); ok {
			m.selectIndex(idx)
			return m, nil
		}
		m.ctrl.PointerDown(m.pointerEvent(msg), m.gridViewport())

	case tea.MouseActionMotion:
		m.ctrl.PointerMove(m.pointerEvent(msg), m.gridViewport())

	case tea.MouseActionRelease:
		m.ctrl.PointerUp()
	}

	return m, nil
}

// selectIndex updates the palette selection and the status line.
func (m *Model) selectIndex(idx int) {
	if err := m.store.Select(idx); err != nil {
		// Unreachable: callers only pass enumerated indices.
		m.setStatus(err.Error(), true)
		return
	}
	m.setStatus("painting with "+m.store.CurrentEntry().Name, false)
}

func (m *Model) setStatus(s string, isErr bool) {
	m.status = s
	m.statusErr = isErr
}

// pointerEvent converts a terminal mouse position into a picking event at
// the glyph's center.
func (m Model) pointerEvent(msg tea.MouseMsg) picking.Event {
	pt := picking.Point{
		X: float64(msg.X) + 0.5,
		Y: float64(msg.Y) + 0.5,
	}
	return picking.Event{Pointer: &pt}
}

// gridViewport is the drawn grid's rectangle in terminal glyph units: the
// picking layer normalizes pointer positions against it.
func (m Model) gridViewport() picking.Rect {
	n := m.grid.Size()
	return picking.Rect{
		X: GridMarginX,
		Y: GridMarginY,
		W: float64(n*(CellWidth+GapWidth) - GapWidth),
		H: float64(n),
	}
}

// paletteRow is the screen row of the palette bar.
func (m Model) paletteRow() int {
	return GridMarginY + m.grid.Size() + 1
}

// swatchAt returns the palette index of the swatch at screen position
// (x, y), if any.
func (m Model) swatchAt(x, y int) (int, bool) {
	if y != m.paletteRow() {
		return 0, false
	}
	stride := CellWidth + GapWidth
	rel := x - GridMarginX
	if rel < 0 || rel%stride >= CellWidth {
		return 0, false
	}
	idx := rel / stride
	if !m.store.Palette().Valid(idx) {
		return 0, false
	}
	return idx, true
}

// View implements tea.Model
func (m Model) View() string {
	var b strings.Builder
	n := m.grid.Size()
	margin := strings.Repeat(" ", GridMarginX)
	gap := strings.Repeat(" ", GapWidth)
	body := strings.Repeat(" ", CellWidth)

	// Title
	b.WriteString(margin)
	b.WriteString(TitleStyle.Render(AppName))
	b.WriteString(" ")
	b.WriteString(SubtitleStyle.Render(fmt.Sprintf("%s · %dx%d", AppVersion(), n, n)))
	b.WriteString("\n\n")

	// Grid, rendered from the visual buffer only
	for row := 0; row < n; row++ {
		b.WriteString(margin)
		for col := 0; col < n; col++ {
			if col > 0 {
				b.WriteString(gap)
			}
			if c := m.buffer.at(col, row); c != nil {
				b.WriteString(lipgloss.NewStyle().Background(lipgloss.Color(c.Hex())).Render(body))
			} else {
				b.WriteString(EmptyCellStyle.Render(body))
			}
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")

	// Palette bar
	b.WriteString(margin)
	for i, e := range m.store.Colors() {
		if i > 0 {
			b.WriteString(gap)
		}
		label := fmt.Sprintf(" %d ", i+1)
		b.WriteString(SwatchLabelStyle.
			Background(lipgloss.Color(e.Value.Hex())).
			Foreground(contrastColor(e.Value)).
			Render(label))
	}
	b.WriteString("\n")

	// Selection marker under the active swatch
	b.WriteString(margin)
	b.WriteString(strings.Repeat(" ", m.store.Current()*(CellWidth+GapWidth)+1))
	b.WriteString(SelectedMarkerStyle.Render("^"))
	b.WriteString("\n\n")

	// Status line
	b.WriteString(margin)
	status := m.status
	if m.hub != nil {
		viewers := fmt.Sprintf("%d viewer(s)", m.hub.ViewerCount())
		if status != "" {
			status += "  ·  " + viewers
		} else {
			status = viewers
		}
	}
	if m.statusErr {
		b.WriteString(StatusErrorStyle.Render(status))
	} else {
		b.WriteString(StatusStyle.Render(status))
	}
	b.WriteString("\n\n")

	// Help footer using bubbles/help
	b.WriteString(margin)
	b.WriteString(HelpStyle.Render(m.Help.View(m.Keys)))
	b.WriteString("\n")

	return b.String()
}

// contrastColor picks a readable label color for a swatch background.
func contrastColor(c palette.RGB) lipgloss.Color {
	// Perceived luminance, integer weights
	luma := (299*int(c.R) + 587*int(c.G) + 114*int(c.B)) / 1000
	if luma > 140 {
		return lipgloss.Color("#000000")
	}
	return lipgloss.Color("#FFFFFF")
}
