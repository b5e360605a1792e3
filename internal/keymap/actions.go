// Package keymap defines key bindings and action dispatch for the application.
package keymap

// Action represents a user-triggerable action.
type Action string

const (
	ActionToggle Action = "toggle" // play/pause
	ActionExit   Action = "exit"
	ActionBack   Action = "back" // closes help, otherwise exits
	ActionHelp   Action = "help"
)
