// Package errmsg provides consistent error formatting for log lines and the
// detail row under the status label.
package errmsg

import "fmt"

// Op represents an operation that can fail.
type Op string

// Operation constants - grouped by domain.
const (
	// Stream operations
	OpStreamPrepare Op = "prepare stream"
	OpStreamStart   Op = "start playback"
	OpStreamPause   Op = "pause playback"
	OpStreamPlay    Op = "play stream"

	// Control surface operations
	OpNotifyPublish Op = "publish notification"
	OpNotifyClose   Op = "close notification"
	OpNotifyListen  Op = "listen for notification actions"
	OpMPRISRegister Op = "register media keys"

	// Initialization
	OpInitialize Op = "initialize application"
	OpLogSetup   Op = "open log file"
)

// Format creates a user-friendly error message.
func Format(op Op, err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Failed to %s: %v", op, err)
}

// FormatWith creates an error message with additional context.
func FormatWith(op Op, context string, err error) string {
	if err == nil {
		return ""
	}
	if context == "" {
		return Format(op, err)
	}
	return fmt.Sprintf("Failed to %s '%s': %v", op, context, err)
}
