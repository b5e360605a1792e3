package session

import "github.com/llehouerou/onair/internal/control"

// ActionKind identifies a control action.
type ActionKind int

const (
	ActionPlay ActionKind = iota
	ActionPause
	ActionExit
)

// Action keys used by the notification and MPRIS.
const (
	KeyToggle = control.ActionToggle
	KeyExit   = control.ActionExit
)

// Action is one rendered control.
type Action struct {
	Key   string
	Kind  ActionKind
	Label string
}

// Controls is what the menu bar and the notification show. Both surfaces
// render from the same value so they never disagree.
type Controls struct {
	Title  string
	Status string
	Failed bool

	// Toggle is nil until the stream is ready.
	Toggle *Action
	Exit   Action
}

// Actions returns the actions in display order.
func (c Controls) Actions() []Action {
	if c.Toggle == nil {
		return []Action{c.Exit}
	}
	return []Action{*c.Toggle, c.Exit}
}

// RenderControls projects the session onto its controls.
func RenderControls(s *Session) Controls {
	c := Controls{
		Title:  s.labels.ShortName,
		Status: s.status,
		Failed: s.IsFailed(),
		Exit:   Action{Key: KeyExit, Kind: ActionExit, Label: s.labels.Exit},
	}
	switch s.state {
	case Ready, Paused:
		c.Toggle = &Action{Key: KeyToggle, Kind: ActionPlay, Label: s.labels.Play}
	case Playing:
		c.Toggle = &Action{Key: KeyToggle, Kind: ActionPause, Label: s.labels.Pause}
	}
	return c
}
