//go:build linux

package mpris

import (
	"sync"

	"github.com/quarckster/go-mpris-server/pkg/server"
	log "github.com/sirupsen/logrus"

	"github.com/llehouerou/onair/internal/control"
)

// Receiver exposes the session over MPRIS so media keys and desktop applets
// can toggle playback or quit.
type Receiver struct {
	source Source

	mu     sync.Mutex
	server *server.Server
}

// NewReceiver creates an MPRIS receiver reading state from source.
func NewReceiver(source Source) *Receiver {
	return &Receiver{source: source}
}

// Register claims the MPRIS bus name and starts serving. Registering twice
// is a no-op.
func (r *Receiver) Register(b *control.Bus) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.server != nil {
		return nil
	}

	r.server = server.NewServer(busName, &rootAdapter{bus: b}, &playerAdapter{bus: b, source: r.source})

	// Start the server in background
	srv := r.server
	go func() {
		if err := srv.Listen(); err != nil {
			log.WithError(err).Warn("mpris server stopped")
		}
	}()
	return nil
}

// Unregister releases the bus name. Safe to call at any time.
func (r *Receiver) Unregister() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.server == nil {
		return
	}
	if err := r.server.Stop(); err != nil {
		log.WithError(err).Debug("stop mpris server")
	}
	r.server = nil
}
