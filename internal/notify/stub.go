package notify

// stubNotifier is used when D-Bus is unavailable or notifications are
// disabled.
type stubNotifier struct{}

// Disabled returns a notifier that does nothing.
func Disabled() Notifier {
	return &stubNotifier{}
}

func (s *stubNotifier) Notify(_ Notification) (uint32, error) {
	return 0, nil
}

func (s *stubNotifier) Close(_ uint32) error {
	return nil
}

func (s *stubNotifier) ListenActions() (<-chan Invocation, func(), error) {
	return nil, func() {}, nil
}
