// internal/app/app.go
package app

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/samber/lo"
	log "github.com/sirupsen/logrus"

	"github.com/llehouerou/onair/internal/connectivity"
	"github.com/llehouerou/onair/internal/control"
	"github.com/llehouerou/onair/internal/engine"
	"github.com/llehouerou/onair/internal/errmsg"
	"github.com/llehouerou/onair/internal/icons"
	"github.com/llehouerou/onair/internal/keymap"
	"github.com/llehouerou/onair/internal/notify"
	"github.com/llehouerou/onair/internal/session"
)

// Timing holds the periods of the session timers.
type Timing struct {
	Poll     time.Duration // connectivity re-check while offline
	Progress time.Duration // loading animation
	Elapsed  time.Duration // elapsed time refresh
}

// DefaultTiming returns the standard timer periods.
func DefaultTiming() Timing {
	return Timing{
		Poll:     5 * time.Second,
		Progress: 500 * time.Millisecond,
		Elapsed:  500 * time.Millisecond,
	}
}

// Deps are the collaborators of the model.
type Deps struct {
	URL      string
	Labels   session.Labels
	MaxTicks int
	Timing   Timing

	Engine engine.Interface
	Prober connectivity.Prober

	// Notifier shows the persistent notification. Nil disables it.
	Notifier notify.Notifier
	// MediaKeys is attached once the stream is ready. Nil disables it.
	MediaKeys control.Receiver
	// Published receives a snapshot after every change. Nil allocates one.
	Published *session.Published
	// Keys resolves key presses. Nil uses the default bindings.
	Keys *keymap.Resolver
}

// receiver is a control receiver and the operation logged when it fails.
// Early receivers attach when the session leaves Idle, the others once the
// stream is ready.
type receiver struct {
	op    errmsg.Op
	r     control.Receiver
	early bool
}

// Model is the root application model.
type Model struct {
	session   *session.Session
	engine    engine.Interface
	prober    connectivity.Prober
	surface   *notify.Surface
	bus       *control.Bus
	receivers []receiver
	published *session.Published
	keys      *keymap.Resolver

	streamURL string
	timing    Timing

	showHelp bool
	width    int
	height   int
}

// New creates the model. Nothing runs until Init.
func New(d Deps) Model {
	if d.Timing == (Timing{}) {
		d.Timing = DefaultTiming()
	}
	if d.Notifier == nil {
		d.Notifier = notify.Disabled()
	}
	if d.Published == nil {
		d.Published = &session.Published{}
	}
	if d.Keys == nil {
		d.Keys = keymap.NewResolver(keymap.Bindings)
	}

	surface := notify.NewSurface(d.Notifier)
	receivers := []receiver{
		{op: errmsg.OpNotifyListen, r: notify.NewActionReceiver(surface), early: true},
	}
	if d.MediaKeys != nil {
		receivers = append(receivers, receiver{op: errmsg.OpMPRISRegister, r: d.MediaKeys})
	}

	m := Model{
		session:   session.New(d.Labels, d.MaxTicks),
		engine:    d.Engine,
		prober:    d.Prober,
		surface:   surface,
		bus:       control.NewBus(),
		receivers: receivers,
		published: d.Published,
		keys:      d.Keys,
		streamURL: d.URL,
		timing:    d.Timing,
	}
	m.published.Store(m.session.Snapshot())
	return m
}

// Init starts the session and listens for remote controls.
func (m Model) Init() tea.Cmd {
	return tea.Batch(StartCmd(), m.WatchControls())
}

// Session exposes the session for inspection.
func (m Model) Session() *session.Session {
	return m.session
}

// Published returns the snapshot shared with other goroutines.
func (m Model) Published() *session.Published {
	return m.published
}

// Shutdown releases everything the session holds: the engine, the control
// receivers and the notification. Only the first call has an effect.
func (m Model) Shutdown() {
	if !m.session.Close() {
		return
	}
	m.engine.Stop()
	for _, rc := range m.receivers {
		rc.r.Unregister()
	}
	if err := m.surface.Close(); err != nil {
		log.WithError(err).Warn(errmsg.Format(errmsg.OpNotifyClose, err))
	}
	m.bus.Close()
	m.published.Store(m.session.Snapshot())
	log.WithField("url", m.streamURL).Info("session closed")
}

// registerReceivers attaches the early or the late receivers. A receiver
// that fails is logged and skipped.
func (m Model) registerReceivers(early bool) {
	for _, rc := range m.receivers {
		if rc.early != early {
			continue
		}
		if err := rc.r.Register(m.bus); err != nil {
			log.WithError(err).Warn(errmsg.Format(rc.op, err))
		}
	}
}

// syncControls publishes the session to every surface.
func (m Model) syncControls() {
	m.published.Store(m.session.Snapshot())
	if m.session.Closed() {
		return
	}
	if err := m.surface.Show(notificationFor(session.RenderControls(m.session), m.session.Detail())); err != nil {
		log.WithError(err).Warn(errmsg.Format(errmsg.OpNotifyPublish, err))
	}
}

// notificationFor renders the controls as a notification. Exit is always
// offered; play/pause appears once the stream can be toggled.
func notificationFor(c session.Controls, detail string) notify.Notification {
	n := notify.Notification{
		Title:   c.Title,
		Body:    c.Status,
		Icon:    icons.ThemeLive,
		Urgency: notify.UrgencyLow,
	}
	switch {
	case c.Failed:
		n.Icon = icons.ThemeError
		n.Urgency = notify.UrgencyNormal
		if detail != "" {
			n.Body = c.Status + "\n" + detail
		}
	case c.Toggle != nil && c.Toggle.Kind == session.ActionPause:
		n.Icon = icons.ThemePlay
	case c.Toggle != nil:
		n.Icon = icons.ThemePause
	}
	n.Actions = lo.Map(c.Actions(), func(a session.Action, _ int) notify.Action {
		return notify.Action{Key: a.Key, Label: a.Label}
	})
	return n
}
