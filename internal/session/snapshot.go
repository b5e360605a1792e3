package session

import "sync/atomic"

// Snapshot is a read-only copy of the session for other goroutines.
type Snapshot struct {
	State  State
	Title  string
	Status string
}

// Snapshot copies the fields readers outside the event loop need.
func (s *Session) Snapshot() Snapshot {
	return Snapshot{State: s.state, Title: s.labels.ShortName, Status: s.status}
}

// Published holds the latest Snapshot. The zero value reports an Idle session.
type Published struct {
	v atomic.Pointer[Snapshot]
}

// Store publishes snap.
func (p *Published) Store(snap Snapshot) {
	p.v.Store(&snap)
}

// Load returns the latest published snapshot.
func (p *Published) Load() Snapshot {
	if snap := p.v.Load(); snap != nil {
		return *snap
	}
	return Snapshot{State: Idle}
}
