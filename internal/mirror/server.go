package mirror

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"pixelgrid/internal/logging"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Viewers are read-only and the payload is the user's own doodle;
	// cross-origin viewing is the point of sharing.
	CheckOrigin: func(*http.Request) bool { return true },
}

// Server exposes the hub over HTTP: /ws for live viewers and /grid.csv for
// a plain-text snapshot in the export format.
type Server struct {
	hub        *Hub
	httpServer *http.Server
}

// NewServer creates a server for the given hub listening on port.
func NewServer(hub *Hub, port int) *Server {
	s := &Server{hub: hub}

	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.handleWS)
	mux.HandleFunc("/grid.csv", s.handleCSV)

	s.httpServer = &http.Server{
		Addr:              fmt.Sprintf(":%d", port),
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}
	return s
}

// Start begins serving in a background goroutine.
func (s *Server) Start() {
	logging.Info("Mirror server listening", zap.String("addr", s.httpServer.Addr))
	go func() {
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.Error("Mirror server failed", zap.Error(err))
		}
	}()
}

// Shutdown stops accepting viewers and closes the listener.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		logging.Warn("WebSocket upgrade failed",
			zap.String("remote_addr", r.RemoteAddr),
			zap.Error(err),
		)
		return
	}

	c := newClient(s.hub, conn)
	s.hub.register(c)
	c.run()
}

func (s *Server) handleCSV(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/csv")
	_, _ = w.Write([]byte(s.hub.CSV()))
}
