package discovery

import (
	"fmt"
	"os"

	"github.com/grandcat/zeroconf"
	"go.uber.org/zap"

	"pixelgrid/internal/logging"
)

const (
	// ServiceType is the mDNS service type the mirror advertises under.
	ServiceType = "_pixelgrid._tcp"

	// ServiceDomain is the mDNS domain (typically "local.")
	ServiceDomain = "local."
)

// Announcer advertises a running mirror server on the local network so
// viewers can find it without knowing the host's address.
type Announcer struct {
	server *zeroconf.Server
}

// Announce registers the mirror service over mDNS. gridSize is published
// as a TXT record so viewers can size their canvas before connecting.
func Announce(port int, gridSize int) (*Announcer, error) {
	host, err := os.Hostname()
	if err != nil || host == "" {
		host = "pixelgrid"
	}

	instance := fmt.Sprintf("pixelgrid on %s", host)
	txt := []string{
		fmt.Sprintf("size=%d", gridSize),
		"path=/ws",
	}

	server, err := zeroconf.Register(instance, ServiceType, ServiceDomain, port, txt, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to register mDNS service: %w", err)
	}

	logging.Info("Announcing mirror over mDNS",
		zap.String("instance", instance),
		zap.String("service", ServiceType),
		zap.Int("port", port),
	)
	return &Announcer{server: server}, nil
}

// Shutdown withdraws the mDNS advertisement.
func (a *Announcer) Shutdown() {
	if a.server != nil {
		a.server.Shutdown()
	}
}
