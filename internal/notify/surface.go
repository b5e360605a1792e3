package notify

import (
	"fmt"
	"slices"
	"sync"
	"sync/atomic"

	log "github.com/sirupsen/logrus"

	"github.com/llehouerou/onair/internal/control"
)

// Surface keeps a single persistent notification up to date, replacing it
// in place on every Show.
type Surface struct {
	notifier Notifier
	id       atomic.Uint32

	mu   sync.Mutex
	last *Notification
}

// NewSurface creates a surface publishing through n.
func NewSurface(n Notifier) *Surface {
	return &Surface{notifier: n}
}

// Show publishes notif, replacing the previous one. The notification never
// expires and survives action presses. Showing the same content twice is a
// no-op.
func (s *Surface) Show(notif Notification) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	notif.ReplacesID = s.id.Load()
	notif.Timeout = 0
	notif.Resident = true
	if s.last != nil && sameContent(*s.last, notif) {
		return nil
	}

	id, err := s.notifier.Notify(notif)
	if err != nil {
		return err
	}
	if id != 0 {
		s.id.Store(id)
	}
	notif.Actions = slices.Clone(notif.Actions)
	s.last = &notif
	return nil
}

func sameContent(a, b Notification) bool {
	return a.Title == b.Title &&
		a.Body == b.Body &&
		a.Icon == b.Icon &&
		a.Urgency == b.Urgency &&
		slices.Equal(a.Actions, b.Actions)
}

// ID returns the server id of the current notification, 0 if none.
func (s *Surface) ID() uint32 {
	return s.id.Load()
}

// Close removes the notification. Safe to call when nothing is shown.
func (s *Surface) Close() error {
	s.mu.Lock()
	s.last = nil
	s.mu.Unlock()

	id := s.id.Swap(0)
	if id == 0 {
		return nil
	}
	return s.notifier.Close(id)
}

// ActionReceiver turns presses on the surface's buttons into control events.
type ActionReceiver struct {
	surface *Surface

	mu   sync.Mutex
	stop func()
}

// NewActionReceiver creates a receiver for the buttons of s.
func NewActionReceiver(s *Surface) *ActionReceiver {
	return &ActionReceiver{surface: s}
}

// Register starts forwarding button presses to b. Registering twice is a
// no-op.
func (r *ActionReceiver) Register(b *control.Bus) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.stop != nil {
		return nil
	}
	invocations, stop, err := r.surface.notifier.ListenActions()
	if err != nil {
		return fmt.Errorf("listen for notification actions: %w", err)
	}
	r.stop = stop
	if invocations != nil {
		go r.forward(invocations, b)
	}
	return nil
}

func (r *ActionReceiver) forward(invocations <-chan Invocation, b *control.Bus) {
	for inv := range invocations {
		if inv.ID == 0 || inv.ID != r.surface.ID() {
			continue // another application's notification
		}
		event, ok := control.ParseAction(inv.Key)
		if !ok {
			// Body click ("default"): the screen is already in front
			log.WithField("action", inv.Key).Debug("ignoring notification action")
			continue
		}
		if !b.Send(event) {
			log.WithField("event", event.String()).Debug("control event dropped")
		}
	}
}

// Unregister stops forwarding. Safe to call at any time, any number of times.
func (r *ActionReceiver) Unregister() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.stop != nil {
		r.stop()
		r.stop = nil
	}
}
