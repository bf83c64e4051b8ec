package app

import (
	"errors"
	"log/slog"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/flicks/internal/mediactl"
	"github.com/llehouerou/flicks/internal/mpris"
	"github.com/llehouerou/flicks/internal/ui/action"
	"github.com/llehouerou/flicks/internal/ui/poster"
)

// Update handles messages and returns updated model and commands.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleWindowSize(msg)

	case tea.KeyMsg:
		cmd := m.handleKey(msg)
		return m, cmd

	case tea.MouseMsg:
		cmd := m.handleMouse(msg)
		return m, cmd

	case WatchMessage:
		return m.handleWatchMsg(msg)

	case BrowseMessage:
		return m.handleBrowseMsg(msg)

	case mediactl.PlayNextMsg:
		if m.watch == nil || msg.ID != m.watch.ctrl.ID() {
			return m, nil
		}
		return m, m.playNext()

	case mpris.PlayPauseMsg, mpris.PlayMsg, mpris.PauseMsg, mpris.StopMsg,
		mpris.NextMsg, mpris.SeekMsg, mpris.SetPositionMsg, mpris.SetVolumeMsg:
		return m, m.handleMediaKey(msg)

	case action.Msg:
		return m, m.handleAction(msg)

	case StderrMsg:
		line := strings.TrimSpace(string(msg))
		slog.Warn("app: stderr", "line", line)
		var cmd tea.Cmd
		if line != "" {
			cmd = m.Toasts.Show(line)
		}
		return m, tea.Batch(cmd, m.WatchStderr())
	}

	// Scheduled messages owned by components: toasts, controller timers,
	// the search box cursor.
	cmds := []tea.Cmd{m.Toasts.Update(msg), m.Popups.Update(msg)}
	if m.watch != nil {
		cmds = append(cmds, m.watch.ctrl.Update(msg))
	}
	return m, tea.Batch(cmds...)
}

func (m Model) handleWindowSize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.Popups.SetSize(msg.Width, msg.Height)
	m.syncBar()
	return m, m.preparePoster()
}

// handleWatchMsg routes watch view messages.
func (m Model) handleWatchMsg(msg WatchMessage) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case TickMsg:
		if m.watch == nil {
			m.ticking = false
			return m, nil
		}
		if m.watch.ctrl.State().Playing {
			m.watch.ctrl.OnTimeUpdate()
		}
		m.publish()
		return m, m.TickCmd()

	case PlayerEventMsg:
		cmd := m.handlePlayerEvent(msg)
		return m, tea.Batch(cmd, m.WatchPlayerEvents())

	case SeasonLoadedMsg:
		return m, m.handleSeasonLoaded(msg)
	}
	return m, nil
}

// handleBrowseMsg routes landing page messages.
func (m Model) handleBrowseMsg(msg BrowseMessage) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case TrailerOpenedMsg:
		return m, m.handleTrailerOpened(msg)
	case PosterReadyMsg:
		if msg.Err != nil && !errors.Is(msg.Err, poster.ErrNoArtwork) {
			slog.Debug("app: hero artwork", "source", msg.Source, "err", msg.Err)
		}
	}
	return m, nil
}
