package styles

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

func TestBrand_KeepsText(t *testing.T) {
	tests := []string{"", "A", "BBC WS", "Radio 日本"}

	for _, text := range tests {
		got := ansi.Strip(Brand(text))
		if got != text {
			t.Errorf("Brand(%q) stripped = %q, want original text", text, got)
		}
	}
}

func TestBrand_Width(t *testing.T) {
	if w := lipgloss.Width(Brand("BBC WS")); w != 6 {
		t.Errorf("Brand width = %d, want 6", w)
	}
}

func TestBrandGradient_GraphemeClusters(t *testing.T) {
	text := "🇫🇷 FIP"
	out := brandGradient(text, lipgloss.Color("#000000"), lipgloss.Color("#ffffff"))
	if got := ansi.Strip(out); got != text {
		t.Errorf("brandGradient stripped = %q, want %q", got, text)
	}
}

func TestToColorful_ANSIFallback(t *testing.T) {
	if got := toColorful(lipgloss.Color("240")).Hex(); got != "#808080" {
		t.Errorf("ANSI fallback = %s, want #808080", got)
	}
	if got := toColorful(lipgloss.Color("#a78bfa")).Hex(); got != "#a78bfa" {
		t.Errorf("hex color = %s, want #a78bfa", got)
	}
}

func TestPanelStyle(t *testing.T) {
	for _, kind := range []PanelKind{PanelIdle, PanelLive, PanelFailed} {
		out := PanelStyle(kind).Render("x")
		if lipgloss.Height(out) != 3 {
			t.Errorf("PanelStyle(%d) height = %d, want 3", kind, lipgloss.Height(out))
		}
	}
}
