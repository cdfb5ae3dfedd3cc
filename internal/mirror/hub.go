package mirror

import (
	"encoding/json"
	"strings"
	"sync"

	"pixelgrid/internal/grid"
	"pixelgrid/internal/logging"
	"pixelgrid/internal/palette"

	"go.uber.org/zap"
)

// Message is the wire format sent to viewers. A viewer receives one
// snapshot on join, then incremental cell and clear messages.
type Message struct {
	Type  string       `json:"type"` // "snapshot", "cell" or "clear"
	Size  int          `json:"size,omitempty"`
	Cells []CellUpdate `json:"cells,omitempty"`
	Cell  *CellUpdate  `json:"cell,omitempty"`
}

// CellUpdate describes one painted cell.
type CellUpdate struct {
	Col   int    `json:"col"`
	Row   int    `json:"row"`
	Name  string `json:"name"`
	Color string `json:"color"` // #RRGGBB
}

// Hub fans paint events out to connected viewers. It also keeps a shadow
// copy of the painted cells so late joiners get a full snapshot and the
// CSV endpoint never has to read the editor's grid across goroutines: the
// editor pushes state in, viewers only ever read the shadow.
type Hub struct {
	mu      sync.RWMutex
	size    int
	cells   map[grid.Coordinate]palette.Entry
	clients map[*client]struct{}
}

// NewHub creates a hub mirroring a size x size grid.
func NewHub(size int) *Hub {
	return &Hub{
		size:    size,
		cells:   make(map[grid.Coordinate]palette.Entry),
		clients: make(map[*client]struct{}),
	}
}

// SetCell records a paint and broadcasts it. Called from the editor's
// event loop.
func (h *Hub) SetCell(c grid.Coordinate, e palette.Entry) {
	h.mu.Lock()
	h.cells[c] = e
	h.mu.Unlock()

	h.broadcast(Message{
		Type: "cell",
		Cell: &CellUpdate{Col: c.Col, Row: c.Row, Name: e.Name, Color: e.Value.Hex()},
	})
}

// Reset records a full clear and broadcasts it.
func (h *Hub) Reset() {
	h.mu.Lock()
	h.cells = make(map[grid.Coordinate]palette.Entry)
	h.mu.Unlock()

	h.broadcast(Message{Type: "clear"})
}

// ViewerCount returns the number of connected viewers.
func (h *Hub) ViewerCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// CSV renders the shadow state in the export format: size lines of size
// comma-joined tokens, unpainted cells as the reserved token.
func (h *Hub) CSV() string {
	h.mu.RLock()
	defer h.mu.RUnlock()

	var b strings.Builder
	for row := 0; row < h.size; row++ {
		if row > 0 {
			b.WriteByte('\n')
		}
		for col := 0; col < h.size; col++ {
			if col > 0 {
				b.WriteByte(',')
			}
			if e, ok := h.cells[grid.Coordinate{Col: col, Row: row}]; ok {
				b.WriteString(e.Name)
			} else {
				b.WriteString(palette.ReservedToken)
			}
		}
	}
	return b.String()
}

// snapshotMessage builds the join message from the shadow state.
func (h *Hub) snapshotMessage() Message {
	h.mu.RLock()
	defer h.mu.RUnlock()

	msg := Message{Type: "snapshot", Size: h.size}
	for c, e := range h.cells {
		msg.Cells = append(msg.Cells, CellUpdate{
			Col: c.Col, Row: c.Row, Name: e.Name, Color: e.Value.Hex(),
		})
	}
	return msg
}

// register adds a viewer and queues its snapshot.
func (h *Hub) register(c *client) {
	snapshot, err := json.Marshal(h.snapshotMessage())
	if err != nil {
		logging.Error("Failed to marshal snapshot", zap.Error(err))
		return
	}

	h.mu.Lock()
	h.clients[c] = struct{}{}
	h.mu.Unlock()

	c.send <- snapshot
	logging.LogViewer(c.remoteAddr, "viewer_joined")
}

// unregister removes a viewer and closes its send channel.
func (h *Hub) unregister(c *client) {
	h.mu.Lock()
	_, present := h.clients[c]
	if present {
		delete(h.clients, c)
		close(c.send)
	}
	h.mu.Unlock()

	if present {
		logging.LogViewer(c.remoteAddr, "viewer_left")
	}
}

// broadcast sends msg to every viewer. Viewers whose send buffer is full
// are dropped rather than allowed to stall the editor.
func (h *Hub) broadcast(msg Message) {
	data, err := json.Marshal(msg)
	if err != nil {
		logging.Error("Failed to marshal broadcast", zap.Error(err))
		return
	}

	h.mu.Lock()
	for c := range h.clients {
		select {
		case c.send <- data:
		default:
			delete(h.clients, c)
			close(c.send)
			logging.Warn("Dropping slow viewer", zap.String("remote_addr", c.remoteAddr))
		}
	}
	h.mu.Unlock()
}
