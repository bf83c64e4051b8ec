package app

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/flicks/internal/embed"
)

const (
	tickInterval = 250 * time.Millisecond
	seasonDelay  = time.Second
)

// TickCmd returns a command that sends TickMsg after 250ms.
func (m Model) TickCmd() tea.Cmd {
	return m.schedule(tickInterval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// SeasonLoadedCmd confirms a season switch after a short delay.
func (m Model) SeasonLoadedCmd(titleID string, season int) tea.Cmd {
	return m.schedule(seasonDelay, func(time.Time) tea.Msg {
		return SeasonLoadedMsg{TitleID: titleID, Season: season}
	})
}

// WatchPlayerEvents returns a command that waits for the next lifecycle
// event from the media element. It is re-issued after every event.
func (m Model) WatchPlayerEvents() tea.Cmd {
	if m.Player == nil {
		return nil
	}
	events := m.Player.Events()
	return func() tea.Msg {
		e, ok := <-events
		if !ok {
			return nil
		}
		return PlayerEventMsg(e)
	}
}

// WatchStderr returns a command that waits for captured stderr output.
func (m Model) WatchStderr() tea.Cmd {
	if m.stderr == nil {
		return nil
	}
	ch := m.stderr
	return func() tea.Msg {
		line, ok := <-ch
		if !ok {
			return nil
		}
		return StderrMsg(line)
	}
}

// OpenTrailerCmd mounts the widget for raw off the UI loop. The browser
// hand-off can take a moment.
func OpenTrailerCmd(s *embed.Session, titleID, raw string) tea.Cmd {
	return func() tea.Msg {
		return TrailerOpenedMsg{TitleID: titleID, Err: s.Open(raw)}
	}
}
