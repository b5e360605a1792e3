package engine

import "time"

// Interface defines the media engine contract for dependency injection and
// testing.
type Interface interface {
	// Prepare starts loading url asynchronously. A non-nil error means the
	// request was rejected synchronously and nothing will be delivered on
	// Prepared.
	Prepare(url string) error
	// Prepared delivers exactly one value per accepted Prepare: nil once the
	// stream is ready to start, or the load error.
	Prepared() <-chan error
	// Ended delivers at most one error if a prepared stream stops without
	// Stop being called.
	Ended() <-chan error
	Start() error
	Pause() error
	Stop()
	Position() time.Duration
	State() State
}

// Verify Stream implements Interface at compile time.
var _ Interface = (*Stream)(nil)
