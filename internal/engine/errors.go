package engine

import "errors"

// Synchronous Prepare failures. Callers classify them with errors.Is.
var (
	// ErrConfiguration is returned for malformed or unsupported stream URLs.
	ErrConfiguration = errors.New("invalid stream configuration")
	// ErrSecurity is returned when the URL violates the transport policy.
	ErrSecurity = errors.New("stream blocked by security policy")
	// ErrEngineState is returned when an operation is invalid in the
	// engine's current state.
	ErrEngineState = errors.New("invalid engine state")
)

// ErrUnsupportedContent is reported asynchronously when no decoder accepts
// the stream's content type.
var ErrUnsupportedContent = errors.New("unsupported stream content type")

// Failures reported on Ended once the stream has been prepared.
var (
	// ErrReadTimeout is returned when the server stops sending data.
	ErrReadTimeout = errors.New("no data received from stream")
	// ErrStreamEnded is reported when the server closes a live stream.
	ErrStreamEnded = errors.New("stream ended")
)
