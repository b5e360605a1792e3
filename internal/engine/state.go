package engine

// State represents the engine lifecycle.
//
//	┌──────┐ Prepare ┌───────────┐ ready ┌──────────┐ Start ┌─────────┐
//	│ Idle │────────▶│ Preparing │──────▶│ Prepared │──────▶│ Started │
//	└──────┘         └───────────┘       └──────────┘       └─────────┘
//	                       │ error                         Pause │ ▲ Start
//	                       ▼                                     ▼ │
//	                  ┌────────┐                            ┌────────┐
//	                  │ Failed │                            │ Paused │
//	                  └────────┘                            └────────┘
//
// Prepared, Started and Paused move to Failed when the stream ends on its
// own (see Stream.Ended).
//
// Stop moves every state to Stopped. Stopped is terminal: a new Stream is
// needed to play again.
//
// Invalid transitions return ErrEngineState:
//   - Prepare outside Idle
//   - Start outside Prepared, Started, Paused
//   - Pause outside Started, Paused
type State int

const (
	Idle State = iota
	Preparing
	Prepared
	Started
	Paused
	Failed
	Stopped
)

// String returns the state name for debugging.
func (s State) String() string {
	switch s {
	case Idle:
		return "Idle"
	case Preparing:
		return "Preparing"
	case Prepared:
		return "Prepared"
	case Started:
		return "Started"
	case Paused:
		return "Paused"
	case Failed:
		return "Failed"
	case Stopped:
		return "Stopped"
	default:
		return "Unknown"
	}
}

// CanStart returns true if Start is valid in this state.
func (s State) CanStart() bool {
	return s == Prepared || s == Started || s == Paused
}

// CanPause returns true if Pause is valid in this state.
func (s State) CanPause() bool {
	return s == Started || s == Paused
}
