package keymap

// Binding describes a single key binding.
type Binding struct {
	Action      Action
	Keys        []string
	Description string
	Context     string // "global", "playback"
}

// Bindings contains all key bindings.
var Bindings = []Binding{
	// Global
	{ActionExit, []string{"q", "ctrl+c"}, "Exit", "global"},
	{ActionBack, []string{"esc"}, "Back", "global"},
	{ActionHelp, []string{"?"}, "Show help", "global"},

	// Playback
	{ActionToggle, []string{" ", "p"}, "Play/pause", "playback"},
}

// ByContext returns key bindings filtered by context.
func ByContext(context string) []Binding {
	var result []Binding
	for _, kb := range Bindings {
		if kb.Context == context {
			result = append(result, kb)
		}
	}
	return result
}

// DisplayKey returns the key as shown to the user.
func DisplayKey(key string) string {
	if key == " " {
		return "space"
	}
	return key
}
