package app

import (
	"time"

	"github.com/llehouerou/onair/internal/engine"
	"github.com/llehouerou/onair/internal/session"
)

// Source answers media key queries from outside the event loop.
type Source struct {
	published *session.Published
	engine    engine.Interface
	url       string
}

// NewSource creates a source reading the published snapshot. e must be safe
// for concurrent use.
func NewSource(published *session.Published, e engine.Interface, url string) *Source {
	return &Source{published: published, engine: e, url: url}
}

func (s *Source) Snapshot() session.Snapshot {
	return s.published.Load()
}

func (s *Source) Position() time.Duration {
	switch s.published.Load().State {
	case session.Playing, session.Paused:
	default:
		return 0
	}
	return s.engine.Position()
}

func (s *Source) URL() string {
	return s.url
}
