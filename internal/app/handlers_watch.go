package app

import (
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/flicks/internal/app/handler"
	"github.com/llehouerou/flicks/internal/app/navctl"
	"github.com/llehouerou/flicks/internal/catalog"
	"github.com/llehouerou/flicks/internal/errmsg"
	"github.com/llehouerou/flicks/internal/keymap"
	"github.com/llehouerou/flicks/internal/mpris"
	"github.com/llehouerou/flicks/internal/player"
	"github.com/llehouerou/flicks/internal/ui/layout"
	"github.com/llehouerou/flicks/internal/ui/list"
	"github.com/llehouerou/flicks/internal/ui/playerbar"
)

var pickerKeys = keymap.ResolverFor("picker")

// handleWatchKey handles a key in the watch view. Order: open picker, the
// media controller (countdown and shortcuts overlay included), view keys,
// then Esc for fullscreen and leaving the view.
func (m *Model) handleWatchKey(msg tea.KeyMsg) tea.Cmd {
	w := m.watch
	_, cmd := handler.Chain(msg.String(),
		func(string) handler.Result { return m.handlePickerKey(msg) },
		func(key string) handler.Result { return handler.From(w.ctrl.HandleKey(key, false)) },
		m.handleWatchActionKey,
		m.handleWatchEscape,
		m.handleQuitKeys,
	)
	if m.watch != w {
		return cmd
	}
	return tea.Batch(cmd, w.ctrl.ShowControls())
}

func (m *Model) handlePickerKey(msg tea.KeyMsg) handler.Result {
	w := m.watch
	if w.picker == navctl.PickerNone || pickerKeys.Resolve(msg.String()) == "" {
		return handler.NotHandled
	}
	return m.handlePickerResult(m.activePicker().Update(msg))
}

func (m *Model) activePicker() *list.Model[int] {
	if m.watch.picker == navctl.PickerSeasons {
		return &m.watch.seasons
	}
	return &m.watch.episodes
}

func (m *Model) handlePickerResult(res list.Result) handler.Result {
	w := m.watch
	switch res.Action {
	case list.ActionEnter, list.ActionClick:
		if w.picker == navctl.PickerSeasons {
			return handler.Handled(m.pickSeason(res.Index))
		}
		return handler.Handled(m.playEpisode(catalog.EpisodeRef{Season: w.pickSeason, Episode: res.Index}))
	case list.ActionCancel:
		w.picker = navctl.PickerNone
	case list.ActionNone:
	}
	return handler.HandledNoCmd
}

func (m *Model) handleWatchActionKey(key string) handler.Result {
	w := m.watch
	switch m.WatchKeys.Resolve(key) {
	case keymap.ActionNextEpisode:
		if _, ok := w.next(); !ok {
			return handler.NotHandled
		}
		return handler.Handled(m.playNext())
	case keymap.ActionEpisodes:
		m.togglePicker(navctl.PickerEpisodes)
	case keymap.ActionSeasons:
		m.togglePicker(navctl.PickerSeasons)
	case keymap.ActionSubtitles:
		return handler.Handled(m.Toasts.Show("Subtitle options coming soon!"))
	case keymap.ActionSettings:
		return handler.Handled(m.Toasts.Show("Settings menu coming soon!"))
	case keymap.ActionBack:
		m.closeWatch()
	case keymap.ActionSearch:
		return handler.Handled(m.Popups.ShowSearch(m.Navigation.Query()))
	default:
		return handler.NotHandled
	}
	return handler.HandledNoCmd
}

// handleWatchEscape leaves fullscreen, or the watch view when not in
// fullscreen. Overlays have had their chance by now.
func (m *Model) handleWatchEscape(key string) handler.Result {
	if key != "esc" {
		return handler.NotHandled
	}
	if m.display.active {
		if err := m.display.ExitFullscreen(); err != nil {
			slog.Debug("app: leave fullscreen", "error", err)
		}
		m.watch.ctrl.FullscreenChanged(false)
		m.syncBar()
		return handler.HandledNoCmd
	}
	m.closeWatch()
	return handler.HandledNoCmd
}

// --- Mouse ---

// handleWatchMouse handles mouse input in the watch view. Motion and release
// go to the controller wherever they happen so a scrub drag keeps tracking
// off the bar.
func (m *Model) handleWatchMouse(msg tea.MouseMsg) tea.Cmd {
	w := m.watch
	m.syncBar()

	if w.picker != navctl.PickerNone && m.inPicker(msg.X, msg.Y) && !w.ctrl.State().Dragging {
		return m.handlePickerResult(m.activePicker().Update(msg)).Cmd
	}

	if consumed, cmd := w.ctrl.HandleMouse(msg); consumed {
		return cmd
	}

	if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
		if z, ok := w.bar.ButtonAt(msg.X, msg.Y); ok {
			cmd := m.pressButton(z, msg.X)
			if m.watch != w {
				return cmd
			}
			m.syncBar()
			return tea.Batch(cmd, w.ctrl.ShowControls())
		}
		if w.picker != navctl.PickerNone {
			w.picker = navctl.PickerNone
			return w.ctrl.ShowControls()
		}
		if m.inVideo(msg.Y) {
			return tea.Batch(w.ctrl.TogglePlayback(), w.ctrl.ShowControls())
		}
	}
	return w.ctrl.ShowControls()
}

func (m Model) inPicker(x, y int) bool {
	left, top, width, height := m.pickerRect()
	return x >= left && x < left+width && y >= top && y < top+height
}

func (m Model) inVideo(y int) bool {
	top := 0
	if !m.display.active {
		top = layout.TitleHeight
	}
	return y >= top && y < top+layout.VideoHeight(m.height, m.display.active)
}

// pressButton runs the control bar button z; x is the click column, used by
// the volume slider.
func (m *Model) pressButton(z playerbar.Zone, x int) tea.Cmd {
	w := m.watch
	c := w.ctrl
	opts := c.Options()
	switch z.Button {
	case playerbar.ButtonPlayPause:
		return c.TogglePlayback()
	case playerbar.ButtonRewind:
		return c.SeekRelative(-opts.CoarseSeek)
	case playerbar.ButtonForward:
		return c.SeekRelative(opts.CoarseSeek)
	case playerbar.ButtonMute:
		c.ToggleMute()
	case playerbar.ButtonVolume:
		c.SetVolume(playerbar.VolumeAt(z, x))
	case playerbar.ButtonNext:
		return m.playNext()
	case playerbar.ButtonEpisodes:
		m.togglePicker(navctl.PickerEpisodes)
	case playerbar.ButtonSubtitles:
		return m.Toasts.Show("Subtitle options coming soon!")
	case playerbar.ButtonSettings:
		return m.Toasts.Show("Settings menu coming soon!")
	case playerbar.ButtonFullscreen:
		c.ToggleFullscreen()
	}
	return nil
}

// --- Media element events ---

// handlePlayerEvent translates a media element event into controller calls.
// Events left over from an earlier Load are dropped.
func (m *Model) handlePlayerEvent(e PlayerEventMsg) tea.Cmd {
	w := m.watch
	if w == nil || e.Load != w.load {
		return nil
	}
	c := w.ctrl
	switch e.Kind {
	case player.EventMetadata:
		c.OnMetadataLoaded()
	case player.EventPlay:
		return c.OnPlay()
	case player.EventPause:
		return c.OnPause()
	case player.EventWaiting:
		c.OnWaiting()
	case player.EventCanPlay:
		c.OnCanPlay()
	case player.EventEnded:
		c.OnTimeUpdate()
		if _, ok := w.next(); ok {
			return c.OnPlaybackEnded()
		}
		return c.OnPause()
	case player.EventError:
		slog.Warn("app: media error", "path", w.path, "error", e.Err)
		cmd := c.OnError()
		if e.Err == nil {
			return cmd
		}
		return tea.Batch(cmd, m.Toasts.Show(errmsg.Format(errmsg.OpPlaybackStart, e.Err)))
	}
	return nil
}

// --- Media keys ---

// handleMediaKey applies a request from a media-key client.
func (m *Model) handleMediaKey(msg tea.Msg) tea.Cmd {
	w := m.watch
	if w == nil {
		return nil
	}
	c := w.ctrl
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case mpris.PlayPauseMsg:
		cmd = c.TogglePlayback()
	case mpris.PlayMsg:
		if !c.State().Playing {
			cmd = c.TogglePlayback()
		}
	case mpris.PauseMsg:
		if c.State().Playing {
			cmd = c.TogglePlayback()
		}
	case mpris.StopMsg:
		m.closeWatch()
		return nil
	case mpris.NextMsg:
		return m.playNext()
	case mpris.SeekMsg:
		cmd = c.SeekRelative(msg.Offset)
	case mpris.SetPositionMsg:
		if d := m.Player.Duration(); d > 0 {
			c.SeekToFraction(float64(msg.Position) / float64(d))
		}
	case mpris.SetVolumeMsg:
		c.SetVolume(msg.Volume)
	}
	m.publish()
	return tea.Batch(cmd, c.ShowControls())
}
