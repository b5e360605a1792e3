package engine

import (
	"io"
	"sync/atomic"
)

// countingBody counts bytes read from the network for the log.
type countingBody struct {
	io.ReadCloser
	bytes atomic.Uint64
}

func (b *countingBody) Read(p []byte) (int, error) {
	n, err := b.ReadCloser.Read(p)
	b.bytes.Add(uint64(n)) //nolint:gosec // n is never negative
	return n, err
}
