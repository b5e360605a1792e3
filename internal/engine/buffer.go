package engine

import (
	"context"
	"fmt"
	"io"
	"sync/atomic"
	"time"

	"github.com/gopxl/beep/v2"
)

const (
	// DefaultReadTimeout is how long a read may wait for the server.
	DefaultReadTimeout = 5 * time.Second

	chunkSize    = 4096
	bufferChunks = 16 // about 1.5 s at 44.1 kHz
)

// timeoutReader fails a Read that waits longer than timeout, and every Read
// after it. The abandoned read keeps running on its goroutine until ctx is
// cancelled, which closes the body.
type timeoutReader struct {
	r       io.Reader
	ctx     context.Context
	timeout time.Duration
	err     error
}

func (t *timeoutReader) Read(p []byte) (int, error) {
	if t.err != nil {
		return 0, t.err
	}
	if err := t.ctx.Err(); err != nil {
		return 0, err
	}

	type result struct {
		n   int
		err error
	}
	// The abandoned read must not write into p after a timeout
	buf := make([]byte, len(p))
	done := make(chan result, 1)
	go func() {
		n, err := t.r.Read(buf)
		done <- result{n, err}
	}()

	timer := time.NewTimer(t.timeout)
	defer timer.Stop()

	select {
	case res := <-done:
		copy(p, buf[:res.n])
		return res.n, res.err
	case <-timer.C:
		t.err = fmt.Errorf("%w for %v", ErrReadTimeout, t.timeout)
		return 0, t.err
	case <-t.ctx.Done():
		return 0, t.ctx.Err()
	}
}

// readCloser reads through a wrapper and closes the underlying body.
type readCloser struct {
	io.Reader
	io.Closer
}

// sampleBuffer sits between the decoder and the speaker. fill decodes on
// its own goroutine; Stream runs under the speaker lock and only drains
// memory, playing silence while the buffer is empty.
type sampleBuffer struct {
	chunks  chan [][2]float64
	current [][2]float64
	done    bool
	played  atomic.Int64
}

func newSampleBuffer() *sampleBuffer {
	return &sampleBuffer{chunks: make(chan [][2]float64, bufferChunks)}
}

// fill decodes src into the buffer until it ends or ctx is done. It returns
// the decoder error, nil at the end of the body, or ctx.Err().
func (b *sampleBuffer) fill(ctx context.Context, src beep.Streamer) error {
	defer close(b.chunks)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		chunk := make([][2]float64, chunkSize)
		n, ok := src.Stream(chunk)
		if n > 0 {
			select {
			case b.chunks <- chunk[:n]:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		if !ok {
			if err := ctx.Err(); err != nil {
				return err
			}
			return src.Err()
		}
	}
}

// next loads the next chunk without blocking. It returns false when nothing
// is buffered.
func (b *sampleBuffer) next() bool {
	select {
	case chunk, open := <-b.chunks:
		if !open {
			b.done = true
			return false
		}
		b.current = chunk
		return true
	default:
		return false
	}
}

func (b *sampleBuffer) Stream(samples [][2]float64) (n int, ok bool) {
	for n < len(samples) && !b.done {
		if len(b.current) == 0 && !b.next() {
			break
		}
		c := copy(samples[n:], b.current)
		b.current = b.current[c:]
		n += c
	}
	b.played.Add(int64(n))

	if b.done && n == 0 {
		return 0, false
	}
	clear(samples[n:])
	return len(samples), true
}

func (b *sampleBuffer) Err() error { return nil }

// Played returns the number of decoded samples handed to the output.
func (b *sampleBuffer) Played() int {
	return int(b.played.Load())
}
