package notify

import "sync"

// Mock is a Notifier that records what it is asked to show.
type Mock struct {
	mu sync.Mutex

	nextID    uint32
	sent      []Notification
	closed    []uint32
	notifyErr error
	listenErr error

	listening   bool
	invocations chan Invocation
	listenCalls int
	stopCalls   int
}

// NewMock creates a recording notifier.
func NewMock() *Mock {
	return &Mock{}
}

func (m *Mock) Notify(n Notification) (uint32, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.notifyErr != nil {
		return 0, m.notifyErr
	}
	id := n.ReplacesID
	if id == 0 {
		m.nextID++
		id = m.nextID
	}
	n.Actions = append([]Action(nil), n.Actions...)
	m.sent = append(m.sent, n)
	return id, nil
}

func (m *Mock) Close(id uint32) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = append(m.closed, id)
	return nil
}

func (m *Mock) ListenActions() (<-chan Invocation, func(), error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.listenCalls++
	if m.listenErr != nil {
		return nil, nil, m.listenErr
	}
	ch := make(chan Invocation, signalBufferSize)
	m.invocations = ch
	m.listening = true

	var once sync.Once
	stop := func() {
		once.Do(func() {
			m.mu.Lock()
			defer m.mu.Unlock()
			m.stopCalls++
			m.listening = false
			close(ch)
		})
	}
	return ch, stop, nil
}

// Invoke simulates a button press. It returns false if nobody listens.
func (m *Mock) Invoke(id uint32, key string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.listening {
		return false
	}
	m.invocations <- Invocation{ID: id, Key: key}
	return true
}

// SetNotifyError makes subsequent Notify calls fail.
func (m *Mock) SetNotifyError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.notifyErr = err
}

// SetListenError makes subsequent ListenActions calls fail.
func (m *Mock) SetListenError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.listenErr = err
}

// Sent returns every notification shown so far.
func (m *Mock) Sent() []Notification {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]Notification(nil), m.sent...)
}

// Last returns the most recent notification.
func (m *Mock) Last() (Notification, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.sent) == 0 {
		return Notification{}, false
	}
	return m.sent[len(m.sent)-1], true
}

// Closed returns the ids passed to Close.
func (m *Mock) Closed() []uint32 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]uint32(nil), m.closed...)
}

// Listening reports whether an action listener is active.
func (m *Mock) Listening() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.listening
}

// ListenCalls returns how many times ListenActions was called.
func (m *Mock) ListenCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.listenCalls
}

// StopCalls returns how many listeners were stopped.
func (m *Mock) StopCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.stopCalls
}
