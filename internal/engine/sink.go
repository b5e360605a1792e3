package engine

import (
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/speaker"
)

// Sink is the audio output. The default sink is beep's speaker; tests use a
// sink that never touches an audio device.
type Sink interface {
	// Init prepares the output for the given rate. Calls after the first
	// successful one are no-ops.
	Init(sr beep.SampleRate) error
	SampleRate() beep.SampleRate
	Play(s beep.Streamer)
	Clear()
	Lock()
	Unlock()
}

// speakerSink plays through the process-wide beep speaker.
type speakerSink struct {
	mu          sync.Mutex
	initialized bool
	rate        beep.SampleRate
}

func (s *speakerSink) Init(sr beep.SampleRate) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.initialized {
		return nil
	}
	if err := speaker.Init(sr, sr.N(time.Second/10)); err != nil {
		return err
	}
	s.rate = sr
	s.initialized = true
	return nil
}

func (s *speakerSink) SampleRate() beep.SampleRate {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rate
}

func (s *speakerSink) Play(st beep.Streamer) { speaker.Play(st) }

func (s *speakerSink) Clear() { speaker.Clear() }

func (s *speakerSink) Lock() { speaker.Lock() }

func (s *speakerSink) Unlock() { speaker.Unlock() }

var defaultSink = &speakerSink{}
