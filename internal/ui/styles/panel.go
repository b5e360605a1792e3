package styles

import "github.com/charmbracelet/lipgloss"

// PanelKind selects the border color of the station panel.
type PanelKind int

const (
	PanelIdle PanelKind = iota
	PanelLive
	PanelFailed
)

// PanelStyle returns the rounded panel style for kind.
func PanelStyle(kind PanelKind) lipgloss.Style {
	t := T()
	border := t.Border
	switch kind {
	case PanelLive:
		border = t.BorderFocus
	case PanelFailed:
		border = t.Error
	}
	return lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Padding(0, 1)
}
