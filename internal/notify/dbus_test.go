//go:build linux

package notify

import (
	"os"
	"testing"

	"github.com/godbus/dbus/v5"
)

func TestNewDBusNotifier(t *testing.T) {
	// Skip if no D-Bus session (CI environment)
	if os.Getenv("DBUS_SESSION_BUS_ADDRESS") == "" {
		t.Skip("no D-Bus session available")
	}

	notifier, err := New()
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	if notifier == nil {
		t.Fatal("New() returned nil notifier")
	}
}

func TestNotifySendsNotification(t *testing.T) {
	if os.Getenv("DBUS_SESSION_BUS_ADDRESS") == "" {
		t.Skip("no D-Bus session available")
	}

	notifier, err := New()
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}

	id, err := notifier.Notify(Notification{
		Title:   "onair test",
		Body:    "Test notification from unit test",
		Timeout: 1000, // 1 second
		Urgency: UrgencyLow,
	})
	if err != nil {
		t.Fatalf("Notify() error: %v", err)
	}
	// ID should be non-zero on success
	if id == 0 {
		t.Error("Notify() returned id=0, expected non-zero")
	}

	// Close it immediately
	if err := notifier.Close(id); err != nil {
		t.Errorf("Close() error: %v", err)
	}
}

func TestNotifyReplacesExisting(t *testing.T) {
	if os.Getenv("DBUS_SESSION_BUS_ADDRESS") == "" {
		t.Skip("no D-Bus session available")
	}

	notifier, err := New()
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}

	// Send first notification
	id1, err := notifier.Notify(Notification{
		Title:   "BBC WS",
		Body:    "Connecting   ",
		Timeout: 2000,
	})
	if err != nil {
		t.Fatalf("first Notify() error: %v", err)
	}

	// Replace it
	id2, err := notifier.Notify(Notification{
		Title:      "BBC WS",
		Body:       "00:00",
		Timeout:    1000,
		ReplacesID: id1,
	})
	if err != nil {
		t.Fatalf("second Notify() error: %v", err)
	}

	// IDs should match when replacing
	if id2 != id1 {
		t.Errorf("replacing notification got id=%d, want id=%d", id2, id1)
	}

	if err := notifier.Close(id2); err != nil {
		t.Errorf("Close() error: %v", err)
	}
}

func TestParseActionInvoked(t *testing.T) {
	tests := []struct {
		name   string
		sig    *dbus.Signal
		want   Invocation
		wantOK bool
	}{
		{
			name:   "valid",
			sig:    &dbus.Signal{Name: signalActionInvoked, Body: []any{uint32(7), "toggle"}},
			want:   Invocation{ID: 7, Key: "toggle"},
			wantOK: true,
		},
		{
			name: "other signal",
			sig:  &dbus.Signal{Name: dbusNotifyInterface + ".NotificationClosed", Body: []any{uint32(7), uint32(2)}},
		},
		{
			name: "wrong id type",
			sig:  &dbus.Signal{Name: signalActionInvoked, Body: []any{int32(7), "toggle"}},
		},
		{
			name: "wrong key type",
			sig:  &dbus.Signal{Name: signalActionInvoked, Body: []any{uint32(7), 1}},
		},
		{
			name: "short body",
			sig:  &dbus.Signal{Name: signalActionInvoked, Body: []any{uint32(7)}},
		},
		{name: "nil"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := parseActionInvoked(tt.sig)
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("parseActionInvoked() = %+v, %v; want %+v, %v", got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestBuildHints(t *testing.T) {
	hints := buildHints(Notification{Urgency: UrgencyNormal, Resident: true})

	if v, ok := hints["resident"]; !ok || v.Value() != true {
		t.Errorf("resident hint = %v, want true", v)
	}
	if v := hints["desktop-entry"].Value(); v != "onair" {
		t.Errorf("desktop-entry = %v, want onair", v)
	}
	if v := hints["urgency"].Value(); v != byte(UrgencyNormal) {
		t.Errorf("urgency = %v, want %d", v, UrgencyNormal)
	}

	if _, ok := buildHints(Notification{})["resident"]; ok {
		t.Error("resident hint set on a transient notification")
	}
}

func TestListenActions(t *testing.T) {
	if os.Getenv("DBUS_SESSION_BUS_ADDRESS") == "" {
		t.Skip("no D-Bus session available")
	}

	notifier, err := New()
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}

	invocations, stop, err := notifier.ListenActions()
	if err != nil {
		t.Fatalf("ListenActions() error: %v", err)
	}
	stop()
	stop()

	if invocations == nil {
		t.Skip("notifier fell back to the no-op implementation")
	}
	if _, ok := <-invocations; ok {
		t.Error("invocation channel should be closed after stop")
	}
}
