//go:build linux

package notify

import (
	"sync"

	"github.com/godbus/dbus/v5"
	log "github.com/sirupsen/logrus"
)

const (
	dbusNotifyDest      = "org.freedesktop.Notifications"
	dbusNotifyPath      = "/org/freedesktop/Notifications"
	dbusNotifyInterface = "org.freedesktop.Notifications"

	signalActionInvoked = dbusNotifyInterface + ".ActionInvoked"
)

// dbusNotifier sends notifications via D-Bus.
type dbusNotifier struct {
	conn *dbus.Conn
	obj  dbus.BusObject
}

// New creates a Notifier that sends desktop notifications via D-Bus.
// Returns a no-op notifier if D-Bus is unavailable.
func New() (Notifier, error) {
	conn, err := dbus.SessionBus()
	if err != nil {
		// D-Bus not available, return no-op notifier (intentional graceful degradation)
		log.WithError(err).Info("session bus unavailable, notifications disabled")
		return &stubNotifier{}, nil //nolint:nilerr // graceful fallback when D-Bus unavailable
	}

	obj := conn.Object(dbusNotifyDest, dbusNotifyPath)
	return &dbusNotifier{conn: conn, obj: obj}, nil
}

func buildHints(notif Notification) map[string]dbus.Variant {
	hints := map[string]dbus.Variant{
		"urgency":       dbus.MakeVariant(byte(notif.Urgency)),
		"desktop-entry": dbus.MakeVariant("onair"),
		"category":      dbus.MakeVariant("x-onair.playback"),
	}
	if notif.Resident {
		hints["resident"] = dbus.MakeVariant(true)
		hints["transient"] = dbus.MakeVariant(false)
	}
	return hints
}

// Notify sends a notification via D-Bus.
func (n *dbusNotifier) Notify(notif Notification) (uint32, error) {
	// D-Bus Notify method signature:
	// Notify(app_name, replaces_id, icon, summary, body, actions, hints, timeout) -> id
	call := n.obj.Call(
		dbusNotifyInterface+".Notify",
		0,                             // flags
		"onair",                       // app_name
		notif.ReplacesID,              // replaces_id
		notif.Icon,                    // app_icon (path or icon name)
		notif.Title,                   // summary
		notif.Body,                    // body
		flattenActions(notif.Actions), // actions
		buildHints(notif),             // hints
		notif.Timeout,                 // expire_timeout
	)

	if call.Err != nil {
		return 0, call.Err
	}

	var id uint32
	if err := call.Store(&id); err != nil {
		return 0, err
	}

	return id, nil
}

// Close closes a notification by ID.
func (n *dbusNotifier) Close(id uint32) error {
	call := n.obj.Call(dbusNotifyInterface+".CloseNotification", 0, id)
	return call.Err
}

// ListenActions subscribes to the ActionInvoked signal.
func (n *dbusNotifier) ListenActions() (<-chan Invocation, func(), error) {
	match := []dbus.MatchOption{
		dbus.WithMatchObjectPath(dbusNotifyPath),
		dbus.WithMatchInterface(dbusNotifyInterface),
		dbus.WithMatchMember("ActionInvoked"),
	}
	if err := n.conn.AddMatchSignal(match...); err != nil {
		return nil, nil, err
	}

	signals := make(chan *dbus.Signal, signalBufferSize)
	n.conn.Signal(signals)

	out := make(chan Invocation, signalBufferSize)
	done := make(chan struct{})
	go func() {
		defer close(out)
		for {
			select {
			case <-done:
				return
			case sig, ok := <-signals:
				if !ok {
					return
				}
				inv, ok := parseActionInvoked(sig)
				if !ok {
					continue
				}
				select {
				case out <- inv:
				default:
					// Drop if buffer full
				}
			}
		}
	}()

	var once sync.Once
	stop := func() {
		once.Do(func() {
			n.conn.RemoveSignal(signals)
			if err := n.conn.RemoveMatchSignal(match...); err != nil {
				log.WithError(err).Debug("remove ActionInvoked match")
			}
			close(done)
		})
	}
	return out, stop, nil
}

// parseActionInvoked decodes ActionInvoked(id uint32, action_key string).
func parseActionInvoked(sig *dbus.Signal) (Invocation, bool) {
	if sig == nil || sig.Name != signalActionInvoked || len(sig.Body) != 2 {
		return Invocation{}, false
	}
	id, ok := sig.Body[0].(uint32)
	if !ok {
		return Invocation{}, false
	}
	key, ok := sig.Body[1].(string)
	if !ok {
		return Invocation{}, false
	}
	return Invocation{ID: id, Key: key}, true
}
