// Package playerbar renders the station panel: station name, playback icon,
// status line (loading dots, elapsed time or error) and an optional detail.
package playerbar

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/onair/internal/icons"
	"github.com/llehouerou/onair/internal/session"
	"github.com/llehouerou/onair/internal/ui/render"
	"github.com/llehouerou/onair/internal/ui/styles"
)

// StatusKind selects how the status text is styled.
type StatusKind int

const (
	StatusNormal  StatusKind = iota // preparing, ready, paused
	StatusLive                      // playing
	StatusWaiting                   // no network yet
	StatusFailed                    // terminal error or timeout
)

// State holds everything needed to render the panel.
type State struct {
	Station string
	Status  string
	Detail  string
	Kind    StatusKind
	Playing bool
	Paused  bool
}

// Height returns the total height of the panel.
func Height() int {
	return 4 // top border + 2 content rows + bottom border
}

// NewState builds the panel state from the session.
func NewState(s *session.Session) State {
	c := session.RenderControls(s)
	st := State{
		Station: c.Title,
		Status:  c.Status,
		Detail:  s.Detail(),
		Playing: s.State() == session.Playing,
		Paused:  s.State() == session.Paused,
	}
	switch {
	case c.Failed:
		st.Kind = StatusFailed
	case s.State() == session.CheckingConnectivity:
		st.Kind = StatusWaiting
	case st.Playing:
		st.Kind = StatusLive
	}
	return st
}

// Render returns the panel string for the given width.
func Render(s State, width int) string {
	// Border (2) + padding (2)
	innerWidth := max(width-4, 10)

	icon := statusIcon(s)
	left := stationStyle(render.TruncateEllipsis(render.Sanitize(s.Station), innerWidth/2))
	if icon != "" {
		left = icon + " " + left
	} else {
		left = icons.FormatStation(left)
	}
	right := statusStyle(s.Kind)(render.TruncateEllipsis(s.Status, innerWidth-lipgloss.Width(left)-1))
	first := render.Row(left, right, innerWidth)

	second := ""
	if s.Detail != "" {
		second = detailStyle()(render.TruncateEllipsis(render.Sanitize(s.Detail), innerWidth))
	}

	return styles.PanelStyle(panelKind(s)).
		Width(innerWidth + 2).
		Render(strings.Join([]string{first, second}, "\n"))
}

func statusIcon(s State) string {
	switch {
	case s.Kind == StatusFailed:
		return icons.Error()
	case s.Kind == StatusWaiting:
		return icons.Offline()
	case s.Playing:
		return icons.Play()
	case s.Paused:
		return icons.Pause()
	default:
		return ""
	}
}

func panelKind(s State) styles.PanelKind {
	switch {
	case s.Kind == StatusFailed:
		return styles.PanelFailed
	case s.Playing:
		return styles.PanelLive
	default:
		return styles.PanelIdle
	}
}
