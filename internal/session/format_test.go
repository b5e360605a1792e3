package session

import (
	"fmt"
	"testing"
	"time"
)

func TestFormatElapsed(t *testing.T) {
	tests := []struct {
		ms   int64
		want string
	}{
		{0, "00:00"},
		{999, "00:00"},
		{1000, "00:01"},
		{59999, "00:59"},
		{60000, "01:00"},
		{125000, "02:05"},
		{3599999, "59:59"},
		{3600000, "60:00"},
		{6000000, "100:00"},
		{-5000, "00:00"},
	}

	for _, tt := range tests {
		got := FormatElapsed(time.Duration(tt.ms) * time.Millisecond)
		if got != tt.want {
			t.Errorf("FormatElapsed(%dms) = %q, want %q", tt.ms, got, tt.want)
		}
	}
}

func TestFormatElapsed_MatchesFormula(t *testing.T) {
	for ms := int64(0); ms < 2*3600*1000; ms += 7919 {
		got := FormatElapsed(time.Duration(ms) * time.Millisecond)
		want := fmt.Sprintf("%02d:%02d", ms/60000, (ms/1000)%60)
		if got != want {
			t.Fatalf("FormatElapsed(%dms) = %q, want %q", ms, got, want)
		}
	}
}

func TestFormatLoading(t *testing.T) {
	tests := []struct {
		phase int
		want  string
	}{
		{0, "Connecting   "},
		{1, "Connecting.  "},
		{2, "Connecting.. "},
		{3, "Connecting..."},
		{7, "Connecting..."},
		{-1, "Connecting   "},
	}

	for _, tt := range tests {
		if got := FormatLoading("Connecting", tt.phase); got != tt.want {
			t.Errorf("FormatLoading(%d) = %q, want %q", tt.phase, got, tt.want)
		}
	}
}

func TestNextDotPhase(t *testing.T) {
	phase := 0
	want := []int{1, 2, 3, 0, 1, 2, 3, 0}
	for i, w := range want {
		phase = nextDotPhase(phase)
		if phase != w {
			t.Fatalf("tick %d: phase = %d, want %d", i+1, phase, w)
		}
	}
}
