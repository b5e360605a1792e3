package mpris

import (
	"fmt"
	"hash/fnv"
	"time"

	"github.com/godbus/dbus/v5"
	"github.com/quarckster/go-mpris-server/pkg/types"
	log "github.com/sirupsen/logrus"

	"github.com/llehouerou/onair/internal/control"
	"github.com/llehouerou/onair/internal/session"
)

// busName is the suffix of org.mpris.MediaPlayer2.<name>.
const busName = "onair"

// Source is what the adapters read. Implementations must be safe for use
// from the D-Bus goroutines.
type Source interface {
	Snapshot() session.Snapshot
	Position() time.Duration
	URL() string
}

func send(b *control.Bus, e control.Event) {
	if !b.Send(e) {
		log.WithField("event", e.String()).Debug("mpris control event dropped")
	}
}

// rootAdapter implements OrgMprisMediaPlayer2Adapter.
type rootAdapter struct {
	bus *control.Bus
}

func (r *rootAdapter) Raise() error {
	return nil // The screen is already in front
}

func (r *rootAdapter) Quit() error {
	send(r.bus, control.Exit)
	return nil
}

func (r *rootAdapter) CanQuit() (bool, error) {
	return true, nil
}

func (r *rootAdapter) CanRaise() (bool, error) {
	return false, nil
}

func (r *rootAdapter) HasTrackList() (bool, error) {
	return false, nil
}

func (r *rootAdapter) Identity() (string, error) {
	return "onair", nil
}

//nolint:revive // Method name required by interface.
func (r *rootAdapter) SupportedUriSchemes() ([]string, error) {
	return []string{"http", "https"}, nil
}

func (r *rootAdapter) SupportedMimeTypes() ([]string, error) {
	return []string{"audio/mpeg", "audio/flac", "audio/wav", "audio/ogg", "audio/opus"}, nil
}

// playerAdapter implements OrgMprisMediaPlayer2PlayerAdapter.
type playerAdapter struct {
	bus    *control.Bus
	source Source
}

func (p *playerAdapter) Next() error {
	return nil // Single stream
}

func (p *playerAdapter) Previous() error {
	return nil // Single stream
}

// Pause toggles only when playing, so a Pause never resumes playback.
func (p *playerAdapter) Pause() error {
	if p.source.Snapshot().State == session.Playing {
		send(p.bus, control.Toggle)
	}
	return nil
}

func (p *playerAdapter) PlayPause() error {
	if p.source.Snapshot().State.CanToggle() {
		send(p.bus, control.Toggle)
	}
	return nil
}

// Stop pauses: there is no stopped-but-open state for a live stream.
func (p *playerAdapter) Stop() error {
	return p.Pause()
}

func (p *playerAdapter) Play() error {
	switch p.source.Snapshot().State {
	case session.Ready, session.Paused:
		send(p.bus, control.Toggle)
	}
	return nil
}

func (p *playerAdapter) Seek(_ types.Microseconds) error {
	return nil // Live stream
}

func (p *playerAdapter) SetPosition(_ string, _ types.Microseconds) error {
	return nil // Live stream
}

//nolint:revive // Method name required by interface.
func (p *playerAdapter) OpenUri(_ string) error {
	return nil // Not supported
}

func (p *playerAdapter) PlaybackStatus() (types.PlaybackStatus, error) {
	return playbackStatus(p.source.Snapshot().State), nil
}

func playbackStatus(s session.State) types.PlaybackStatus {
	switch s {
	case session.Playing:
		return types.PlaybackStatusPlaying
	case session.Ready, session.Paused:
		return types.PlaybackStatusPaused
	default:
		return types.PlaybackStatusStopped
	}
}

func (p *playerAdapter) Rate() (float64, error) {
	return 1.0, nil
}

func (p *playerAdapter) SetRate(_ float64) error {
	return nil // Not supported
}

func (p *playerAdapter) Metadata() (types.Metadata, error) {
	snap := p.source.Snapshot()
	return types.Metadata{
		TrackId: dbus.ObjectPath(formatTrackID(p.source.URL())),
		Title:   snap.Title,
		Url:     p.source.URL(),
	}, nil
}

func (p *playerAdapter) Volume() (float64, error) {
	return 1.0, nil
}

func (p *playerAdapter) SetVolume(_ float64) error {
	return nil // Not supported
}

func (p *playerAdapter) Position() (int64, error) {
	return p.source.Position().Microseconds(), nil
}

func (p *playerAdapter) MinimumRate() (float64, error) {
	return 1.0, nil
}

func (p *playerAdapter) MaximumRate() (float64, error) {
	return 1.0, nil
}

func (p *playerAdapter) CanGoNext() (bool, error) {
	return false, nil
}

func (p *playerAdapter) CanGoPrevious() (bool, error) {
	return false, nil
}

func (p *playerAdapter) CanPlay() (bool, error) {
	return p.source.Snapshot().State.CanToggle(), nil
}

func (p *playerAdapter) CanPause() (bool, error) {
	return p.source.Snapshot().State.CanToggle(), nil
}

func (p *playerAdapter) CanSeek() (bool, error) {
	return false, nil
}

func (p *playerAdapter) CanControl() (bool, error) {
	return true, nil
}

func formatTrackID(url string) string {
	h := fnv.New64a()
	h.Write([]byte(url))
	return fmt.Sprintf("/org/mpris/MediaPlayer2/Track/%x", h.Sum64())
}
