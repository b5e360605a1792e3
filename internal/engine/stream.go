package engine

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/gopxl/beep/v2"
	log "github.com/sirupsen/logrus"
)

const userAgent = "onair/1.0 (https://github.com/llehouerou/onair)"

// Stream plays a live HTTP audio stream.
type Stream struct {
	mu    sync.Mutex
	state State

	client         *http.Client
	sink           Sink
	allowCleartext bool
	readTimeout    time.Duration
	decoders       map[string]DecodeFunc
	types          map[string]string

	url      string
	cancel   context.CancelFunc
	body     *countingBody
	format   beep.Format
	buffer   *sampleBuffer
	ctrl     *beep.Ctrl
	queued   bool // ctrl handed to the sink
	prepared chan error
	ended    chan error
}

// Option configures a Stream.
type Option func(*Stream)

// WithSink replaces the speaker output.
func WithSink(sink Sink) Option {
	return func(s *Stream) { s.sink = sink }
}

// WithHTTPClient replaces the HTTP client used to open the stream.
func WithHTTPClient(c *http.Client) Option {
	return func(s *Stream) { s.client = c }
}

// WithCleartext controls whether http:// URLs are accepted.
func WithCleartext(allow bool) Option {
	return func(s *Stream) { s.allowCleartext = allow }
}

// WithReadTimeout sets how long the stream may stall before it fails.
func WithReadTimeout(d time.Duration) Option {
	return func(s *Stream) {
		if d > 0 {
			s.readTimeout = d
		}
	}
}

// WithDecoder registers a decoder for a media type, or replaces a built-in
// one ("mp3", "flac", "wav").
func WithDecoder(mediaType string, fn DecodeFunc) Option {
	return func(s *Stream) {
		s.decoders[mediaType] = fn
		s.types[mediaType] = mediaType
	}
}

// New creates an idle stream engine.
func New(opts ...Option) *Stream {
	s := &Stream{
		state: Idle,
		client: &http.Client{
			Timeout: 0, // No overall timeout, streams are long-lived
			Transport: &http.Transport{
				DialContext: (&net.Dialer{
					Timeout: 10 * time.Second,
				}).DialContext,
				TLSHandshakeTimeout:   10 * time.Second,
				ResponseHeaderTimeout: 15 * time.Second,
				DisableCompression:    true,
			},
		},
		sink:           defaultSink,
		allowCleartext: true,
		readTimeout:    DefaultReadTimeout,
		decoders:       defaultDecoders(),
		types:          defaultMediaTypes(),
		prepared:       make(chan error, 1),
		ended:          make(chan error, 1),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Prepare validates rawURL and starts loading it in the background.
func (s *Stream) Prepare(rawURL string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != Idle {
		return fmt.Errorf("%w: prepare in state %s", ErrEngineState, s.state)
	}

	u, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrConfiguration, err)
	}
	switch u.Scheme {
	case "https":
	case "http":
		if !s.allowCleartext {
			return fmt.Errorf("%w: cleartext http is not allowed for %s", ErrSecurity, u.Host)
		}
	default:
		return fmt.Errorf("%w: unsupported scheme %q", ErrConfiguration, u.Scheme)
	}
	if u.Host == "" {
		return fmt.Errorf("%w: missing host in %q", ErrConfiguration, rawURL)
	}

	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel
	s.url = u.String()
	s.state = Preparing

	go s.load(ctx, s.url)
	return nil
}

// Prepared delivers the outcome of the last accepted Prepare.
func (s *Stream) Prepared() <-chan error {
	return s.prepared
}

// Ended delivers at most one error once a prepared stream stops on its
// own: the server closed it, stalled past the read timeout, or sent data
// the decoder rejected. Stop never reports here.
func (s *Stream) Ended() <-chan error {
	return s.ended
}

// load opens the stream and readies a decoder. Runs on its own goroutine.
func (s *Stream) load(ctx context.Context, rawURL string) {
	logger := log.WithField("url", rawURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, http.NoBody)
	if err != nil {
		s.fail(fmt.Errorf("create request: %w", err))
		return
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Icy-MetaData", "0")

	resp, err := s.client.Do(req)
	if err != nil {
		s.fail(fmt.Errorf("http request: %w", err))
		return
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		s.fail(fmt.Errorf("unexpected status: %s", resp.Status))
		return
	}

	contentType := resp.Header.Get("Content-Type")
	kind, ok := decoderKind(s.types, contentType, rawURL)
	decode := s.decoders[kind]
	if !ok || decode == nil {
		resp.Body.Close()
		s.fail(fmt.Errorf("%w: %q", ErrUnsupportedContent, contentType))
		return
	}

	body := &countingBody{ReadCloser: resp.Body}
	src := readCloser{
		Reader: &timeoutReader{r: body, ctx: ctx, timeout: s.readTimeout},
		Closer: body,
	}
	decoder, format, err := decode(src)
	if err != nil {
		body.Close()
		s.fail(fmt.Errorf("decode %s: %w", kind, err))
		return
	}

	if err := s.sink.Init(format.SampleRate); err != nil {
		decoder.Close()
		s.fail(fmt.Errorf("init audio output: %w", err))
		return
	}

	s.mu.Lock()
	if s.state != Preparing {
		// Stopped while loading
		s.mu.Unlock()
		decoder.Close()
		return
	}

	s.body = body
	s.format = format
	s.buffer = newSampleBuffer()

	// Resample if the stream's sample rate differs from the output's
	var playStreamer beep.Streamer = s.buffer
	if outRate := s.sink.SampleRate(); outRate != 0 && format.SampleRate != outRate {
		playStreamer = beep.Resample(4, format.SampleRate, outRate, s.buffer)
	}
	s.ctrl = &beep.Ctrl{Streamer: playStreamer, Paused: true}
	s.state = Prepared
	go s.feed(ctx, s.buffer, decoder)
	s.mu.Unlock()

	logger.WithFields(log.Fields{
		"format":      kind,
		"sample_rate": int(format.SampleRate),
	}).Info("stream prepared")

	s.prepared <- nil
}

// fail records a load error and reports it unless the stream was stopped.
func (s *Stream) fail(err error) {
	s.mu.Lock()
	if s.state != Preparing {
		s.mu.Unlock()
		return
	}
	s.state = Failed
	s.mu.Unlock()

	log.WithError(err).WithField("url", s.url).Warn("stream prepare failed")
	s.prepared <- err
}

// feed decodes into buffer until the stream ends. It owns decoder and
// closes it on return. Runs on its own goroutine so network stalls never
// reach the speaker lock.
func (s *Stream) feed(ctx context.Context, buffer *sampleBuffer, decoder beep.StreamCloser) {
	err := buffer.fill(ctx, decoder)
	_ = decoder.Close()
	if ctx.Err() != nil {
		return // Stopped
	}
	if err == nil {
		err = ErrStreamEnded
	}

	s.mu.Lock()
	switch s.state {
	case Prepared, Started, Paused:
	default:
		s.mu.Unlock()
		return
	}
	s.state = Failed
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
	s.mu.Unlock()

	log.WithError(err).WithField("url", s.url).Warn("stream ended")
	s.ended <- err
}

// Start begins or resumes playback.
func (s *Stream) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.state.CanStart() {
		return fmt.Errorf("%w: start in state %s", ErrEngineState, s.state)
	}
	if s.state == Started {
		return nil
	}

	if !s.queued {
		s.ctrl.Paused = false
		s.queued = true
		s.sink.Play(s.ctrl)
	} else {
		s.sink.Lock()
		s.ctrl.Paused = false
		s.sink.Unlock()
	}
	s.state = Started
	return nil
}

// Pause pauses playback. The connection stays open.
func (s *Stream) Pause() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.state.CanPause() {
		return fmt.Errorf("%w: pause in state %s", ErrEngineState, s.state)
	}
	if s.state == Paused {
		return nil
	}

	s.sink.Lock()
	s.ctrl.Paused = true
	s.sink.Unlock()
	s.state = Paused
	return nil
}

// Stop stops playback and releases the connection. Further calls are no-ops.
func (s *Stream) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == Stopped {
		return
	}

	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
	if s.queued {
		s.sink.Clear()
		s.queued = false
	}

	fields := log.Fields{"url": s.url, "state": s.state.String()}
	if s.body != nil {
		fields["received"] = humanize.Bytes(s.body.bytes.Load())
	}
	log.WithFields(fields).Info("stream stopped")

	s.ctrl = nil
	s.state = Stopped
}

// Position returns how much of the stream has been played.
func (s *Stream) Position() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.buffer == nil || s.format.SampleRate == 0 {
		return 0
	}
	return s.format.SampleRate.D(s.buffer.Played())
}

// State returns the current lifecycle state.
func (s *Stream) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}
