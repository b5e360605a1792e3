// Package app contains the single-screen player model and its messages.
package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/onair/internal/control"
)

// Message category interfaces for type-based routing in Update().
// External messages (from other packages) cannot implement these interfaces,
// so they are handled separately in the Update() switch.

// TimerMessage is implemented by the periodic ticks owned by the session.
type TimerMessage interface {
	tea.Msg
	timerMessage()
}

// StreamMessage is implemented by messages reporting engine outcomes.
type StreamMessage interface {
	tea.Msg
	streamMessage()
}

// startMsg kicks off the connectivity check.
type startMsg struct{}

func (startMsg) streamMessage() {}

// ConnectivityTickMsg asks for another connectivity check.
// Gen is compared to the poll timer to drop stale ticks.
type ConnectivityTickMsg struct {
	Gen int
}

func (ConnectivityTickMsg) timerMessage() {}

// ProgressTickMsg advances the loading animation.
type ProgressTickMsg struct {
	Gen int
}

func (ProgressTickMsg) timerMessage() {}

// ElapsedTickMsg refreshes the elapsed time while playing.
type ElapsedTickMsg struct {
	Gen int
}

func (ElapsedTickMsg) timerMessage() {}

// PreparedMsg carries the engine's prepare outcome. Err is nil on success.
type PreparedMsg struct {
	Err error
}

func (PreparedMsg) streamMessage() {}

// EndedMsg reports that a prepared stream stopped on its own: the server
// closed it, it stalled, or it could not be decoded.
type EndedMsg struct {
	Err error
}

func (EndedMsg) streamMessage() {}

// ControlMsg is a play/pause or exit request from the notification or the
// media keys.
type ControlMsg struct {
	Event control.Event
}
