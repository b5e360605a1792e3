// Package overlay draws a box over an already rendered screen.
package overlay

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Center draws box in the middle of a width x height screen.
func Center(base, box string, width, height int) string {
	boxLines := strings.Split(box, "\n")
	boxWidth := 0
	for _, l := range boxLines {
		boxWidth = max(boxWidth, ansi.StringWidth(l))
	}
	col := max((width-boxWidth)/2, 0)
	row := max((height-len(boxLines))/2, 0)
	return At(base, box, col, row, width)
}

// At draws box with its top-left corner at (col, row). Base lines are padded
// to width first. Box lines below the base or past width are clipped.
// ANSI styling on both sides is preserved.
func At(base, box string, col, row, width int) string {
	lines := strings.Split(base, "\n")
	for i, boxLine := range strings.Split(box, "\n") {
		y := row + i
		if y < 0 || y >= len(lines) {
			continue
		}
		end := min(col+ansi.StringWidth(boxLine), width)
		if end <= col {
			continue
		}

		line := lines[y]
		if w := ansi.StringWidth(line); w < width {
			line += strings.Repeat(" ", width-w)
		}
		lines[y] = ansi.Cut(line, 0, col) + ansi.Truncate(boxLine, end-col, "") + ansi.Cut(line, end, width)
	}
	return strings.Join(lines, "\n")
}
