// internal/app/view.go
package app

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/onair/internal/session"
	"github.com/llehouerou/onair/internal/ui/menubar"
	"github.com/llehouerou/onair/internal/ui/overlay"
	"github.com/llehouerou/onair/internal/ui/playerbar"
	"github.com/llehouerou/onair/internal/ui/styles"
)

// View renders the application UI.
func (m Model) View() string {
	// Can't render before we know terminal size
	if m.session.Closed() || m.width == 0 {
		return ""
	}

	view := lipgloss.JoinVertical(lipgloss.Left,
		playerbar.Render(playerbar.NewState(m.session), m.width),
		menubar.Render(session.RenderControls(m.session), m.keys, m.width),
	)
	// Never clip the panels, even on a zero-height terminal
	height := max(m.height, playerbar.Height()+menubar.Height())
	view = enforceHeight(view, height)

	if m.showHelp {
		help := styles.PanelStyle(styles.PanelIdle).Render(menubar.RenderHelp(max(m.width-4, 1)))
		// Grow a short screen so the whole help box fits
		height = max(height, lipgloss.Height(help))
		view = overlay.Center(enforceHeight(view, height), help, m.width, height)
	}
	return view
}

// enforceHeight ensures the view has exactly the specified number of lines.
func enforceHeight(view string, targetHeight int) string {
	lines := strings.Split(view, "\n")
	currentHeight := len(lines)

	if currentHeight == targetHeight {
		return view
	}

	if currentHeight < targetHeight {
		// Pad with empty lines
		for i := currentHeight; i < targetHeight; i++ {
			lines = append(lines, "")
		}
	} else {
		// Keep the player bar when the terminal is too short
		lines = lines[:targetHeight]
	}

	return strings.Join(lines, "\n")
}
