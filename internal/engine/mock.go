package engine

import "time"

// Mock is a test double for Stream.
type Mock struct {
	state        State
	position     time.Duration
	prepareErr   error
	startErr     error
	prepareCalls []string
	startCalls   int
	pauseCalls   int
	stopCalls    int
	prepared     chan error
	ended        chan error
}

// NewMock creates a new mock engine for testing.
func NewMock() *Mock {
	return &Mock{
		state:    Idle,
		prepared: make(chan error, 1),
		ended:    make(chan error, 1),
	}
}

func (m *Mock) Prepare(url string) error {
	m.prepareCalls = append(m.prepareCalls, url)
	if m.prepareErr != nil {
		return m.prepareErr
	}
	m.state = Preparing
	return nil
}

func (m *Mock) Prepared() <-chan error { return m.prepared }

func (m *Mock) Ended() <-chan error { return m.ended }

func (m *Mock) Start() error {
	m.startCalls++
	if m.startErr != nil {
		return m.startErr
	}
	if !m.state.CanStart() {
		return ErrEngineState
	}
	m.state = Started
	return nil
}

func (m *Mock) Pause() error {
	m.pauseCalls++
	if !m.state.CanPause() {
		return ErrEngineState
	}
	m.state = Paused
	return nil
}

func (m *Mock) Stop() {
	m.stopCalls++
	m.state = Stopped
}

func (m *Mock) Position() time.Duration { return m.position }

func (m *Mock) State() State { return m.state }

// Test helpers

func (m *Mock) SetPrepareError(err error) { m.prepareErr = err }

func (m *Mock) SetStartError(err error) { m.startErr = err }

func (m *Mock) SetPosition(d time.Duration) { m.position = d }

func (m *Mock) PrepareCalls() []string { return m.prepareCalls }

func (m *Mock) StartCalls() int { return m.startCalls }

func (m *Mock) PauseCalls() int { return m.pauseCalls }

func (m *Mock) StopCalls() int { return m.stopCalls }

// SimulateReady completes a pending Prepare.
func (m *Mock) SimulateReady() {
	m.state = Prepared
	m.prepared <- nil
}

// SimulateError fails a pending Prepare.
func (m *Mock) SimulateError(err error) {
	m.state = Failed
	m.prepared <- err
}

// SimulateEnd reports that a prepared stream stopped on its own.
func (m *Mock) SimulateEnd(err error) {
	m.state = Failed
	m.ended <- err
}

// Verify Mock implements Interface at compile time.
var _ Interface = (*Mock)(nil)
