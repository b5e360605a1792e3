package keymap

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/samber/lo"
)

// KeyBinding converts b for the bubbles help view.
func (b Binding) KeyBinding() key.Binding {
	shown := lo.Map(b.Keys, func(k string, _ int) string { return DisplayKey(k) })
	return key.NewBinding(
		key.WithKeys(b.Keys...),
		key.WithHelp(strings.Join(shown, "/"), b.Description),
	)
}

// HelpMap exposes Bindings as a help.KeyMap.
type HelpMap struct{}

func (HelpMap) ShortHelp() []key.Binding {
	return lo.Map(Bindings, func(b Binding, _ int) key.Binding { return b.KeyBinding() })
}

// helpContexts orders the help columns.
var helpContexts = []string{"playback", "global"}

// FullHelp lays out one column per binding context.
func (HelpMap) FullHelp() [][]key.Binding {
	return lo.Map(helpContexts, func(ctx string, _ int) []key.Binding {
		return lo.Map(ByContext(ctx), func(b Binding, _ int) key.Binding { return b.KeyBinding() })
	})
}
