package playerbar

import (
	"errors"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"

	"github.com/llehouerou/onair/internal/icons"
	"github.com/llehouerou/onair/internal/session"
)

var labels = session.Labels{
	ShortName: "BBC WS",
	Loading:   "Connecting",
	NoNetwork: "Waiting for network connection",
	Error:     "Unable to load the stream",
	Timeout:   "Unable to connect",
	StartPos:  "00:00",
	Play:      "Play",
	Pause:     "Pause",
	Exit:      "Exit",
}

func TestNewState_Kinds(t *testing.T) {
	tests := []struct {
		name  string
		setup func(s *session.Session)
		want  StatusKind
	}{
		{"preparing", func(s *session.Session) { s.Begin(true) }, StatusNormal},
		{"offline", func(s *session.Session) { s.Begin(false) }, StatusWaiting},
		{"playing", func(s *session.Session) { s.Begin(true); s.MarkReady(); s.Toggle() }, StatusLive},
		{"failed", func(s *session.Session) { s.Begin(true); s.MarkFailed(errors.New("boom")) }, StatusFailed},
		{"timed out", func(s *session.Session) {
			s.Begin(true)
			for s.ProgressTick() {
			}
		}, StatusFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := session.New(labels, 0)
			tt.setup(s)

			st := NewState(s)

			assert.Equal(t, tt.want, st.Kind)
			assert.Equal(t, "BBC WS", st.Station)
			assert.Equal(t, s.Status(), st.Status)
		})
	}
}

func TestRender_Layout(t *testing.T) {
	icons.Init("none")
	s := session.New(labels, 0)
	s.Begin(true)
	s.MarkReady()
	s.Toggle()
	s.SetElapsed(0)

	out := Render(NewState(s), 40)

	assert.Equal(t, Height(), lipgloss.Height(out))
	assert.Equal(t, 40, lipgloss.Width(out))
	plain := ansi.Strip(out)
	assert.Contains(t, plain, "> BBC WS")
	assert.Contains(t, plain, "00:00")
}

func TestRender_ShowsDetailOnFailure(t *testing.T) {
	icons.Init("none")
	s := session.New(labels, 0)
	s.Begin(true)
	s.MarkFailed(errors.New("http request: connection refused"))

	plain := ansi.Strip(Render(NewState(s), 80))

	assert.Contains(t, plain, "! BBC WS")
	assert.Contains(t, plain, "Unable to load the stream")
	assert.Contains(t, plain, "connection refused")
}

func TestRender_StationIconWhileIdle(t *testing.T) {
	icons.Init("unicode")
	defer icons.Init("none")
	s := session.New(labels, 0)
	s.Begin(true)
	s.MarkReady()

	assert.Contains(t, ansi.Strip(Render(NewState(s), 80)), "📻 BBC WS")

	s.Toggle()
	plain := ansi.Strip(Render(NewState(s), 80))
	assert.NotContains(t, plain, "📻", "the play icon replaces the station icon")
	assert.Contains(t, plain, "BBC WS")
}

func TestRender_NarrowWidth(t *testing.T) {
	icons.Init("none")
	s := session.New(labels, 0)
	s.Begin(false)

	out := Render(NewState(s), 20)

	for _, line := range strings.Split(out, "\n") {
		assert.LessOrEqual(t, lipgloss.Width(line), 20)
	}
}
