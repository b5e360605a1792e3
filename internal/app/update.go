// internal/app/update.go
package app

import (
	tea "github.com/charmbracelet/bubbletea"
	log "github.com/sirupsen/logrus"

	"github.com/llehouerou/onair/internal/control"
	"github.com/llehouerou/onair/internal/errmsg"
	"github.com/llehouerou/onair/internal/keymap"
	"github.com/llehouerou/onair/internal/session"
)

// Update handles messages and returns updated model and commands.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}

	if m.session.Closed() {
		return m, nil
	}

	switch msg := msg.(type) {
	case TimerMessage:
		return m.handleTimerMsg(msg)
	case StreamMessage:
		return m.handleStreamMsg(msg)
	case ControlMsg:
		return m.handleControl(msg.Event)
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleStreamMsg(msg StreamMessage) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case startMsg:
		return m.handleStart()
	case PreparedMsg:
		return m.handlePrepared(msg)
	case EndedMsg:
		return m.handleEnded(msg)
	}
	return m, nil
}

func (m Model) handleStart() (tea.Model, tea.Cmd) {
	timer, gen, ok := m.session.Begin(m.prober.IsConnected())
	if !ok {
		return m, nil
	}
	// The notification goes up below; its Exit button must already work
	m.registerReceivers(true)
	if timer == session.ConnectivityPoll {
		log.Info("network unavailable, waiting")
		m.syncControls()
		return m, ConnectivityTickCmd(m.timing.Poll, gen)
	}
	return m.prepare(gen)
}

// prepare asks the engine for the stream. gen is the progress timer
// generation the session just armed.
func (m Model) prepare(gen int) (tea.Model, tea.Cmd) {
	if err := m.engine.Prepare(m.streamURL); err != nil {
		log.WithError(err).Error(errmsg.FormatWith(errmsg.OpStreamPrepare, m.streamURL, err))
		m.session.MarkFailed(err)
		m.syncControls()
		return m, nil
	}
	log.WithField("url", m.streamURL).Info("preparing stream")
	m.syncControls()
	return m, tea.Batch(ProgressTickCmd(m.timing.Progress, gen), m.WatchPrepared())
}

func (m Model) handlePrepared(msg PreparedMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		if !m.session.MarkFailed(msg.Err) {
			log.WithError(msg.Err).Debug("ignoring late prepare failure")
			return m, nil
		}
		log.WithError(msg.Err).Error(errmsg.FormatWith(errmsg.OpStreamPrepare, m.streamURL, msg.Err))
		m.syncControls()
		return m, nil
	}

	if !m.session.MarkReady() {
		log.WithField("state", m.session.State().String()).Debug("ignoring late ready event")
		return m, nil
	}
	log.Info("stream ready")
	m.registerReceivers(false)
	m.syncControls()
	return m, m.WatchEnded()
}

// handleEnded fails the session when the stream stops without an exit.
func (m Model) handleEnded(msg EndedMsg) (tea.Model, tea.Cmd) {
	if !m.session.MarkFailed(msg.Err) {
		return m, nil
	}
	log.WithError(msg.Err).Error(errmsg.FormatWith(errmsg.OpStreamPlay, m.streamURL, msg.Err))
	m.syncControls()
	return m, nil
}

func (m Model) handleTimerMsg(msg TimerMessage) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case ConnectivityTickMsg:
		if !m.session.Accept(session.ConnectivityPoll, msg.Gen) {
			return m, nil
		}
		if !m.prober.IsConnected() {
			return m, ConnectivityTickCmd(m.timing.Poll, msg.Gen)
		}
		gen, ok := m.session.ConnectivityRestored()
		if !ok {
			return m, nil
		}
		log.Info("network available")
		return m.prepare(gen)

	case ProgressTickMsg:
		if !m.session.Accept(session.InitProgress, msg.Gen) {
			return m, nil
		}
		again := m.session.ProgressTick()
		if !again {
			log.WithField("ticks", m.session.InitAttempts()).Warn("stream did not become ready in time")
		}
		m.syncControls()
		if again {
			return m, ProgressTickCmd(m.timing.Progress, msg.Gen)
		}
		return m, nil

	case ElapsedTickMsg:
		if !m.session.Accept(session.ElapsedTick, msg.Gen) {
			return m, nil
		}
		m.session.SetElapsed(m.engine.Position())
		m.syncControls()
		return m, ElapsedTickCmd(m.timing.Elapsed, msg.Gen)
	}
	return m, nil
}

// handleControl applies a control event and keeps listening for the next.
func (m Model) handleControl(e control.Event) (tea.Model, tea.Cmd) {
	switch e {
	case control.Toggle:
		model, cmd := m.toggle()
		return model, tea.Batch(cmd, m.WatchControls())
	case control.Exit:
		return m.exit()
	}
	return m, m.WatchControls()
}

func (m Model) toggle() (tea.Model, tea.Cmd) {
	state, gen, ok := m.session.Toggle()
	if !ok {
		return m, nil
	}

	switch state {
	case session.Playing:
		if err := m.engine.Start(); err != nil {
			log.WithError(err).Error(errmsg.Format(errmsg.OpStreamStart, err))
			m.session.MarkFailed(err)
			m.syncControls()
			return m, nil
		}
		m.session.SetElapsed(m.engine.Position())
		m.syncControls()
		return m, ElapsedTickCmd(m.timing.Elapsed, gen)
	case session.Paused:
		if err := m.engine.Pause(); err != nil {
			log.WithError(err).Warn(errmsg.Format(errmsg.OpStreamPause, err))
		}
	}
	m.syncControls()
	return m, nil
}

func (m Model) exit() (tea.Model, tea.Cmd) {
	m.Shutdown()
	return m, tea.Quit
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keys.Resolve(msg.String()) {
	case keymap.ActionToggle:
		return m.toggle()
	case keymap.ActionExit:
		return m.exit()
	case keymap.ActionHelp:
		m.showHelp = !m.showHelp
	case keymap.ActionBack:
		// Back closes the help first, then leaves like exit
		if !m.showHelp {
			return m.exit()
		}
		m.showHelp = false
	}
	return m, nil
}
