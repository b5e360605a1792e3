// Package menubar renders the in-app menu: the play/pause item once the
// stream is ready, exit, and help.
package menubar

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/onair/internal/icons"
	"github.com/llehouerou/onair/internal/keymap"
	"github.com/llehouerou/onair/internal/session"
	"github.com/llehouerou/onair/internal/ui/render"
	"github.com/llehouerou/onair/internal/ui/styles"
)

const itemSeparator = "   "

// Height returns the height of the menu bar.
func Height() int {
	return 1
}

// Item is one rendered menu entry.
type Item struct {
	Key   string
	Icon  string
	Label string
}

// Items returns the menu entries for c in display order.
func Items(c session.Controls, keys *keymap.Resolver) []Item {
	items := make([]Item, 0, 3)
	if c.Toggle != nil {
		items = append(items, Item{
			Key:   firstKey(keys, keymap.ActionToggle),
			Icon:  actionIcon(c.Toggle.Kind),
			Label: c.Toggle.Label,
		})
	}
	items = append(items,
		Item{Key: firstKey(keys, keymap.ActionExit), Icon: actionIcon(c.Exit.Kind), Label: c.Exit.Label},
		Item{Key: firstKey(keys, keymap.ActionHelp), Label: "Help"},
	)
	return items
}

func actionIcon(kind session.ActionKind) string {
	switch kind {
	case session.ActionPlay:
		return icons.Play()
	case session.ActionPause:
		return icons.Pause()
	case session.ActionExit:
		return icons.Exit()
	default:
		return ""
	}
}

func firstKey(keys *keymap.Resolver, action keymap.Action) string {
	if keys == nil {
		return ""
	}
	if k := keys.KeysFor(action); len(k) > 0 {
		return keymap.DisplayKey(k[0])
	}
	return ""
}

// Render returns the menu bar for the given width.
func Render(c session.Controls, keys *keymap.Resolver, width int) string {
	st := styles.T().S()
	parts := make([]string, 0, 3)
	for _, it := range Items(c, keys) {
		label := st.Base.Render(icons.FormatAction(it.Icon, it.Label))
		if it.Key != "" {
			label = st.Key.Render(it.Key) + " " + label
		}
		parts = append(parts, label)
	}
	line := strings.Join(parts, itemSeparator)
	if lipgloss.Width(line) > width {
		// Drop styling to truncate safely
		line = render.TruncateEllipsis(plain(c, keys), width)
	}
	return line
}

func plain(c session.Controls, keys *keymap.Resolver) string {
	parts := make([]string, 0, 3)
	for _, it := range Items(c, keys) {
		p := icons.FormatAction(it.Icon, it.Label)
		if it.Key != "" {
			p = it.Key + " " + p
		}
		parts = append(parts, p)
	}
	return strings.Join(parts, itemSeparator)
}

// RenderHelp lists every key binding, one per line.
func RenderHelp(width int) string {
	st := styles.T().S()
	h := help.New()
	h.Width = width
	h.ShowAll = true
	h.Styles.FullKey = st.Key
	h.Styles.FullDesc = st.Muted
	return h.View(keymap.HelpMap{})
}
