// internal/app/commands.go
package app

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// StartCmd returns the command that begins the session.
func StartCmd() tea.Cmd {
	return func() tea.Msg {
		return startMsg{}
	}
}

// ConnectivityTickCmd returns a command that sends ConnectivityTickMsg after d.
func ConnectivityTickCmd(d time.Duration, gen int) tea.Cmd {
	return tea.Tick(d, func(_ time.Time) tea.Msg {
		return ConnectivityTickMsg{Gen: gen}
	})
}

// ProgressTickCmd returns a command that sends ProgressTickMsg after d.
func ProgressTickCmd(d time.Duration, gen int) tea.Cmd {
	return tea.Tick(d, func(_ time.Time) tea.Msg {
		return ProgressTickMsg{Gen: gen}
	})
}

// ElapsedTickCmd returns a command that sends ElapsedTickMsg after d.
func ElapsedTickCmd(d time.Duration, gen int) tea.Cmd {
	return tea.Tick(d, func(_ time.Time) tea.Msg {
		return ElapsedTickMsg{Gen: gen}
	})
}

// waitForChannel creates a command that waits for a value from a channel and converts it to a message.
// onResult receives the value and a boolean indicating if the channel is still open (false means channel closed).
func waitForChannel[T any](ch <-chan T, onResult func(T, bool) tea.Msg) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		result, ok := <-ch
		return onResult(result, ok)
	}
}

// WatchPrepared returns a command that waits for the engine's prepare outcome.
func (m Model) WatchPrepared() tea.Cmd {
	return waitForChannel(m.engine.Prepared(), func(err error, ok bool) tea.Msg {
		if !ok {
			return nil
		}
		return PreparedMsg{Err: err}
	})
}

// WatchEnded returns a command that waits for the stream to stop on its own.
func (m Model) WatchEnded() tea.Cmd {
	return waitForChannel(m.engine.Ended(), func(err error, ok bool) tea.Msg {
		if !ok {
			return nil
		}
		return EndedMsg{Err: err}
	})
}

// WatchControls returns a command that waits for the next control event.
// It returns nil once the bus is closed.
func (m Model) WatchControls() tea.Cmd {
	bus := m.bus
	return func() tea.Msg {
		select {
		case e := <-bus.Events:
			return ControlMsg{Event: e}
		case <-bus.Done:
			return nil
		}
	}
}
