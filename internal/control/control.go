// Package control carries play/pause and exit requests from every control
// surface (keyboard, notification buttons, media keys) to the event loop.
package control

import "sync"

const eventBufferSize = 16

// Event is a control request.
type Event int

const (
	Toggle Event = iota
	Exit
)

// String returns the event name.
func (e Event) String() string {
	switch e {
	case Toggle:
		return "Toggle"
	case Exit:
		return "Exit"
	default:
		return "Unknown"
	}
}

// Action keys shared by the notification buttons and MPRIS.
const (
	ActionToggle = "toggle"
	ActionExit   = "exit"
)

// ParseAction maps a notification or MPRIS action key to an event.
func ParseAction(key string) (Event, bool) {
	switch key {
	case ActionToggle:
		return Toggle, true
	case ActionExit:
		return Exit, true
	default:
		return 0, false
	}
}

// Bus delivers control events to a single consumer.
type Bus struct {
	Events <-chan Event
	Done   <-chan struct{}

	eventCh   chan Event
	doneCh    chan struct{}
	closeOnce sync.Once
}

// NewBus creates a bus with a buffered event channel.
func NewBus() *Bus {
	b := &Bus{
		eventCh: make(chan Event, eventBufferSize),
		doneCh:  make(chan struct{}),
	}
	b.Events = b.eventCh
	b.Done = b.doneCh
	return b
}

// Send queues e (non-blocking). It returns false if the event was dropped
// because the bus is closed or full.
func (b *Bus) Send(e Event) bool {
	select {
	case <-b.doneCh:
		return false
	default:
	}
	select {
	case b.eventCh <- e:
		return true
	default:
		// Drop if buffer full
		return false
	}
}

// Close signals producers and the consumer to stop. Safe to call twice.
func (b *Bus) Close() {
	b.closeOnce.Do(func() { close(b.doneCh) })
}

// Receiver is a source of control events that is attached to the bus once
// the stream is ready. Unregister must be safe to call even if Register was
// never called or failed.
type Receiver interface {
	Register(b *Bus) error
	Unregister()
}
