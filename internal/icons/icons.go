package icons

// Style represents the icon style to use.
type Style string

const (
	StyleNerd    Style = "nerd"
	StyleUnicode Style = "unicode"
	StyleNone    Style = "none"
)

// Icons holds the icon characters for the current style.
type Icons struct {
	Play    string
	Pause   string
	Exit    string
	Live    string
	Offline string
	Error   string
}

var (
	nerdIcons = Icons{
		Play:    "\uf04b", // nf-fa-play
		Pause:   "\uf04c", // nf-fa-pause
		Exit:    "󰗼",      // nf-md-exit_to_app
		Live:    "󰐹",      // nf-md-podcast
		Offline: "󰖪",      // nf-md-wifi_off
		Error:   "\uf071", // nf-fa-warning
	}

	unicodeIcons = Icons{
		Play:    "▶",
		Pause:   "⏸",
		Exit:    "⏏",
		Live:    "📻",
		Offline: "⚠",
		Error:   "✖",
	}

	noneIcons = Icons{
		Play:    ">",
		Pause:   "||",
		Exit:    "x",
		Live:    "",
		Offline: "",
		Error:   "!",
	}

	// current holds the active icon set
	current = noneIcons
)

// Freedesktop icon names used for the notification.
const (
	ThemePlay  = "media-playback-start"
	ThemePause = "media-playback-pause"
	ThemeExit  = "application-exit"
	ThemeLive  = "audio-x-generic"
	ThemeError = "dialog-error"
)

// Init initializes the icons based on the style.
// Call this once at startup with the config value.
func Init(style string) {
	switch Style(style) {
	case StyleNerd:
		current = nerdIcons
	case StyleUnicode:
		current = unicodeIcons
	case StyleNone:
		current = noneIcons
	default:
		current = noneIcons
	}
}

// Play returns the play icon.
func Play() string {
	return current.Play
}

// Pause returns the pause icon.
func Pause() string {
	return current.Pause
}

// Exit returns the exit icon.
func Exit() string {
	return current.Exit
}

// Error returns the error marker.
func Error() string {
	return current.Error
}

// Offline returns the no-network marker.
func Offline() string {
	return current.Offline
}

// FormatAction prefixes a control label with its icon.
func FormatAction(icon, label string) string {
	if icon == "" {
		return label
	}
	return icon + " " + label
}

// FormatStation formats the station name with the live icon.
func FormatStation(name string) string {
	if current.Live == "" {
		return name
	}
	return current.Live + " " + name
}
