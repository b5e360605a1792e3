package session

// TimerID names one of the session's periodic timers.
type TimerID int

const (
	ConnectivityPoll TimerID = iota
	InitProgress
	ElapsedTick
	timerCount
)

// String returns the timer name.
func (id TimerID) String() string {
	switch id {
	case ConnectivityPoll:
		return "ConnectivityPoll"
	case InitProgress:
		return "InitProgress"
	case ElapsedTick:
		return "ElapsedTick"
	default:
		return "Unknown"
	}
}

// Timer tracks whether a repeating timer is armed. Ticks carry the
// generation they were scheduled with; Cancel bumps the generation so ticks
// already in flight are recognised as stale and dropped.
type Timer struct {
	active bool
	gen    int
}

// Start arms the timer and returns the generation to tag ticks with.
func (t *Timer) Start() int {
	t.gen++
	t.active = true
	return t.gen
}

// Cancel disarms the timer. Cancelling an inactive timer is a no-op.
func (t *Timer) Cancel() {
	if !t.active {
		return
	}
	t.gen++
	t.active = false
}

// Active reports whether the timer is armed.
func (t *Timer) Active() bool { return t.active }

// Gen returns the current generation.
func (t *Timer) Gen() int { return t.gen }

// Accept reports whether a tick tagged with gen belongs to the armed timer.
func (t *Timer) Accept(gen int) bool {
	return t.active && gen == t.gen
}
