// Package session holds the playback session of the single screen: its state
// machine, its three timers and the projections rendered from it.
package session

// State is the playback session state.
//
//	Idle ──no network──▶ CheckingConnectivity ──network──▶ Preparing
//	Idle ──network─────────────────────────────────────────▶ Preparing
//	Preparing ──engine ready──▶ Ready ──toggle──▶ Playing ◀──toggle──▶ Paused
//	Preparing ──engine error / timeout──▶ Stopped
//	any ──exit──▶ Stopped (closed)
type State int

const (
	Idle State = iota
	CheckingConnectivity
	Preparing
	Ready
	Playing
	Paused
	Stopped
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case Idle:
		return "Idle"
	case CheckingConnectivity:
		return "CheckingConnectivity"
	case Preparing:
		return "Preparing"
	case Ready:
		return "Ready"
	case Playing:
		return "Playing"
	case Paused:
		return "Paused"
	case Stopped:
		return "Stopped"
	default:
		return "Unknown"
	}
}

// CanToggle returns true if the play/pause control is available.
func (s State) CanToggle() bool {
	return s == Ready || s == Playing || s == Paused
}

// Failure tells why a session stopped on its own.
type Failure int

const (
	FailureNone Failure = iota
	FailurePrepare
	FailureTimeout
)

// String returns the failure name.
func (f Failure) String() string {
	switch f {
	case FailureNone:
		return "None"
	case FailurePrepare:
		return "Prepare"
	case FailureTimeout:
		return "Timeout"
	default:
		return "Unknown"
	}
}
