package session

import (
	"errors"
	"fmt"
	"time"
)

// DefaultMaxProgressTicks is the number of loading ticks before giving up.
const DefaultMaxProgressTicks = 60

// Labels are the texts the session renders.
type Labels struct {
	ShortName string
	Loading   string
	NoNetwork string
	Error     string
	Timeout   string
	StartPos  string
	Play      string
	Pause     string
	Exit      string
}

// Session is the state of the single playback screen. It is owned by the
// event loop and must not be shared across goroutines; use Snapshot for that.
type Session struct {
	state   State
	failure Failure
	closed  bool

	labels   Labels
	maxTicks int

	initAttempts int
	dotPhase     int
	status       string
	detail       string

	timers [timerCount]Timer
}

// New creates an idle session. maxTicks <= 0 uses DefaultMaxProgressTicks.
func New(labels Labels, maxTicks int) *Session {
	if maxTicks <= 0 {
		maxTicks = DefaultMaxProgressTicks
	}
	return &Session{
		state:    Idle,
		labels:   labels,
		maxTicks: maxTicks,
		status:   labels.StartPos,
	}
}

func (s *Session) State() State { return s.state }
func (s *Session) Failure() Failure { return s.failure }
func (s *Session) Closed() bool { return s.closed }
func (s *Session) InitAttempts() int { return s.initAttempts }
func (s *Session) DotPhase() int { return s.dotPhase }
func (s *Session) Labels() Labels { return s.labels }
func (s *Session) MaxTicks() int { return s.maxTicks }
func (s *Session) Status() string { return s.status }
func (s *Session) Detail() string { return s.detail }
func (s *Session) IsFailed() bool { return s.failure != FailureNone }
func (s *Session) Timer(id TimerID) *Timer { return &s.timers[id] }

// Accept reports whether a tick of timer id tagged with gen is current.
func (s *Session) Accept(id TimerID, gen int) bool {
	return s.timers[id].Accept(gen)
}

// Begin leaves Idle. It returns the timer to schedule and its generation.
func (s *Session) Begin(connected bool) (TimerID, int, bool) {
	if s.state != Idle {
		return 0, 0, false
	}
	if !connected {
		s.state = CheckingConnectivity
		s.status = s.labels.NoNetwork
		return ConnectivityPoll, s.timers[ConnectivityPoll].Start(), true
	}
	return InitProgress, s.enterPreparing(), true
}

// ConnectivityRestored moves from CheckingConnectivity to Preparing and
// returns the generation of the progress timer.
func (s *Session) ConnectivityRestored() (int, bool) {
	if s.state != CheckingConnectivity {
		return 0, false
	}
	s.timers[ConnectivityPoll].Cancel()
	return s.enterPreparing(), true
}

func (s *Session) enterPreparing() int {
	s.state = Preparing
	s.initAttempts = 0
	s.dotPhase = 0
	s.status = FormatLoading(s.labels.Loading, 0)
	return s.timers[InitProgress].Start()
}

// ProgressTick counts one loading tick. It returns true while the progress
// timer must be rescheduled.
func (s *Session) ProgressTick() bool {
	if s.state != Preparing {
		return false
	}
	s.initAttempts++
	if s.initAttempts >= s.maxTicks {
		s.timers[InitProgress].Cancel()
		s.state = Stopped
		s.failure = FailureTimeout
		s.status = s.labels.Timeout
		return false
	}
	s.dotPhase = nextDotPhase(s.dotPhase)
	s.status = FormatLoading(s.labels.Loading, s.dotPhase)
	return true
}

// MarkReady records the engine ready event. Late events are ignored.
func (s *Session) MarkReady() bool {
	if s.state != Preparing {
		return false
	}
	s.timers[InitProgress].Cancel()
	s.state = Ready
	s.status = s.labels.StartPos
	return true
}

// MarkFailed records an engine failure. The session stays open so the
// message can be read.
func (s *Session) MarkFailed(err error) bool {
	if s.closed || s.state == Stopped {
		return false
	}
	s.cancelAll()
	s.state = Stopped
	s.failure = FailurePrepare
	s.status = s.labels.Error
	if err != nil {
		s.detail = err.Error()
	}
	return true
}

// Toggle switches between Playing and Paused. It returns the new state and
// the generation of the elapsed timer when entering Playing.
func (s *Session) Toggle() (State, int, bool) {
	switch s.state {
	case Ready, Paused:
		s.state = Playing
		return Playing, s.timers[ElapsedTick].Start(), true
	case Playing:
		s.timers[ElapsedTick].Cancel()
		s.state = Paused
		return Paused, 0, true
	default:
		return s.state, 0, false
	}
}

// SetElapsed renders the played duration. Ignored unless Playing.
func (s *Session) SetElapsed(d time.Duration) bool {
	if s.state != Playing {
		return false
	}
	s.status = FormatElapsed(d)
	return true
}

// Close stops the session for good. It returns false if already closed.
func (s *Session) Close() bool {
	if s.closed {
		return false
	}
	s.closed = true
	s.cancelAll()
	s.state = Stopped
	return true
}

func (s *Session) cancelAll() {
	for i := range s.timers {
		s.timers[i].Cancel()
	}
}

// ErrInvariant is returned by CheckInvariants.
var ErrInvariant = errors.New("session invariant violated")

// CheckInvariants verifies that only the timer owned by the current state
// is armed.
func (s *Session) CheckInvariants() error {
	var want TimerID = -1
	switch s.state {
	case CheckingConnectivity:
		want = ConnectivityPoll
	case Preparing:
		want = InitProgress
	case Playing:
		want = ElapsedTick
	}
	for id := range timerCount {
		active := s.timers[id].Active()
		if active != (id == want) {
			return fmt.Errorf("%w: state %s with %s active=%v", ErrInvariant, s.state, id, active)
		}
	}
	if s.closed && s.state != Stopped {
		return fmt.Errorf("%w: closed in state %s", ErrInvariant, s.state)
	}
	if s.initAttempts > s.maxTicks {
		return fmt.Errorf("%w: %d progress ticks over %d", ErrInvariant, s.initAttempts, s.maxTicks)
	}
	return nil
}
