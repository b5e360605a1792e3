// Package notify provides desktop notifications via D-Bus.
package notify

const signalBufferSize = 16

// Urgency represents notification priority levels per freedesktop spec.
type Urgency byte

const (
	UrgencyLow      Urgency = 0
	UrgencyNormal   Urgency = 1
	UrgencyCritical Urgency = 2
)

// Action is a notification button.
type Action struct {
	Key   string // identifier reported back when invoked
	Label string
}

// Notification contains data for a desktop notification.
type Notification struct {
	Title      string   // Summary text (required)
	Body       string   // Body text (optional, supports basic markup)
	Icon       string   // Path to image file or icon name (optional)
	Timeout    int32    // ms, -1 = server default, 0 = never expire
	ReplacesID uint32   // 0 = new notification, >0 = replace existing
	Urgency    Urgency  // Low, Normal, Critical
	Actions    []Action // buttons, in display order
	Resident   bool     // keep the notification after an action is invoked
}

// Invocation is a button press reported by the notification server.
type Invocation struct {
	ID  uint32
	Key string
}

// Notifier sends desktop notifications.
type Notifier interface {
	// Notify sends a notification and returns its ID.
	// Returns 0 and nil error if notifications are disabled or unavailable.
	Notify(n Notification) (uint32, error)
	// Close closes a notification by ID.
	Close(id uint32) error
	// ListenActions reports button presses until stop is called.
	ListenActions() (invocations <-chan Invocation, stop func(), err error)
}

// flattenActions encodes actions the way org.freedesktop.Notifications
// expects them: key, label, key, label...
func flattenActions(actions []Action) []string {
	out := make([]string, 0, 2*len(actions))
	for _, a := range actions {
		out = append(out, a.Key, a.Label)
	}
	return out
}
