package session

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// dotCells is the width reserved for the loading dots.
const dotCells = 3

// nextDotPhase advances the loading animation: one more dot per tick, and
// back to no dots on the tick after the third.
func nextDotPhase(phase int) int {
	if phase < dotCells {
		return phase + 1
	}
	return 0
}

// FormatLoading renders base followed by phase dots, padded so the label
// keeps the same width whatever the phase.
func FormatLoading(base string, phase int) string {
	phase = max(0, min(phase, dotCells))
	return base + runewidth.FillRight(strings.Repeat(".", phase), dotCells)
}
