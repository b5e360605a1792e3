package overlay

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
)

func TestAt(t *testing.T) {
	tests := []struct {
		name  string
		base  string
		box   string
		col   int
		row   int
		width int
		want  string
	}{
		{"inside", "aaaaa\nbbbbb\nccccc", "XY", 1, 1, 5, "aaaaa\nbXYbb\nccccc"},
		{"pads short base lines", "a\nb", "XY", 2, 1, 5, "a\nb XY "},
		{"clips at width", "aaaaa", "XYZ", 3, 0, 5, "aaaXY"},
		{"drops lines below base", "aaaaa", "X\nY", 0, 0, 5, "Xaaaa"},
		{"negative row skipped", "aaaaa\nbbbbb", "X\nY", 0, -1, 5, "Yaaaa\nbbbbb"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, At(tt.base, tt.box, tt.col, tt.row, tt.width))
		})
	}
}

func TestAt_KeepsStyles(t *testing.T) {
	base := lipgloss.NewStyle().Bold(true).Render("aaaaaa")
	box := lipgloss.NewStyle().Italic(true).Render("XY")

	got := At(base, box, 2, 0, 6)

	assert.Equal(t, "aaXYaa", ansi.Strip(got))
	assert.Contains(t, got, "\x1b[")
}

func TestCenter(t *testing.T) {
	base := strings.Repeat("......\n", 4) + "......"
	got := Center(base, "##\n##", 6, 5)

	assert.Equal(t, "......\n..##..\n..##..\n......\n......", got)
}
