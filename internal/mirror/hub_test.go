package mirror

import (
	"encoding/json"
	"testing"

	"pixelgrid/internal/grid"
	"pixelgrid/internal/palette"
)

var red = palette.Entry{Name: "red", Value: palette.RGB{R: 0xE6, G: 0x3C, B: 0x3C}}

// testClient builds a hub-only client (no connection) for broadcast tests.
func testClient(h *Hub) *client {
	return &client{hub: h, remoteAddr: "test", send: make(chan []byte, sendBuffer)}
}

func TestHubSnapshotOnRegister(t *testing.T) {
	h := NewHub(4)
	h.SetCell(grid.Coordinate{Col: 1, Row: 2}, red)

	c := testClient(h)
	h.register(c)

	data := <-c.send
	var msg Message
	if err := json.Unmarshal(data, &msg); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}

	if msg.Type != "snapshot" {
		t.Errorf("first message type = %q, want snapshot", msg.Type)
	}
	if msg.Size != 4 {
		t.Errorf("snapshot size = %d, want 4", msg.Size)
	}
	if len(msg.Cells) != 1 {
		t.Fatalf("snapshot cells = %d, want 1", len(msg.Cells))
	}
	cell := msg.Cells[0]
	if cell.Col != 1 || cell.Row != 2 || cell.Name != "red" || cell.Color != "#E63C3C" {
		t.Errorf("snapshot cell = %+v", cell)
	}
}

func TestHubBroadcastsCellUpdates(t *testing.T) {
	h := NewHub(4)
	c := testClient(h)
	h.register(c)
	<-c.send // snapshot

	h.SetCell(grid.Coordinate{Col: 0, Row: 3}, red)

	var msg Message
	if err := json.Unmarshal(<-c.send, &msg); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if msg.Type != "cell" || msg.Cell == nil {
		t.Fatalf("message = %+v, want cell update", msg)
	}
	if msg.Cell.Col != 0 || msg.Cell.Row != 3 {
		t.Errorf("cell update = %+v, want col 0 row 3", msg.Cell)
	}
}

func TestHubBroadcastsClear(t *testing.T) {
	h := NewHub(4)
	h.SetCell(grid.Coordinate{Col: 0, Row: 0}, red)

	c := testClient(h)
	h.register(c)
	<-c.send // snapshot

	h.Reset()

	var msg Message
	if err := json.Unmarshal(<-c.send, &msg); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if msg.Type != "clear" {
		t.Errorf("message type = %q, want clear", msg.Type)
	}

	// The shadow state is empty again: a fresh viewer sees no cells.
	if csv := h.CSV(); csv != "none,none,none,none\nnone,none,none,none\nnone,none,none,none\nnone,none,none,none" {
		t.Errorf("CSV() after Reset = %q", csv)
	}
}

func TestHubCSV(t *testing.T) {
	h := NewHub(2)
	h.SetCell(grid.Coordinate{Col: 1, Row: 0}, red)

	got := h.CSV()
	want := "none,red\nnone,none"
	if got != want {
		t.Errorf("CSV() = %q, want %q", got, want)
	}
}

func TestHubUnregister(t *testing.T) {
	h := NewHub(2)
	c := testClient(h)
	h.register(c)

	if h.ViewerCount() != 1 {
		t.Fatalf("ViewerCount() = %d, want 1", h.ViewerCount())
	}

	h.unregister(c)
	if h.ViewerCount() != 0 {
		t.Errorf("ViewerCount() = %d after unregister, want 0", h.ViewerCount())
	}

	// Double unregister must not panic or double-close.
	h.unregister(c)
}

func TestHubDropsSlowViewer(t *testing.T) {
	h := NewHub(2)
	c := &client{hub: h, remoteAddr: "slow", send: make(chan []byte)} // no buffer
	h.mu.Lock()
	h.clients[c] = struct{}{}
	h.mu.Unlock()

	// Nobody reads c.send, so the broadcast cannot queue and the viewer
	// must be dropped instead of blocking.
	h.SetCell(grid.Coordinate{Col: 0, Row: 0}, red)

	if h.ViewerCount() != 0 {
		t.Errorf("ViewerCount() = %d after slow broadcast, want 0", h.ViewerCount())
	}
}
