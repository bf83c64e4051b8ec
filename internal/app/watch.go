package app

import (
	"fmt"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/flicks/internal/app/navctl"
	"github.com/llehouerou/flicks/internal/catalog"
	"github.com/llehouerou/flicks/internal/errmsg"
	"github.com/llehouerou/flicks/internal/mediactl"
	"github.com/llehouerou/flicks/internal/mpris"
	"github.com/llehouerou/flicks/internal/ui/layout"
	"github.com/llehouerou/flicks/internal/ui/list"
	"github.com/llehouerou/flicks/internal/ui/playerbar"
)

// watchSession is the state of the watch view for one loaded title or
// episode. Loading another episode replaces the whole session, controller
// included, so nothing scheduled for the previous one can reach it.
type watchSession struct {
	title *catalog.Title
	ref   catalog.EpisodeRef // zero for movies
	path  string
	ctrl  *mediactl.Controller
	load  uint64 // player LoadID of this episode
	bar   playerbar.Layout

	picker     navctl.PickerKind
	pickSeason int // season listed in the episode picker
	episodes   list.Model[int]
	seasons    list.Model[int]
}

func (w *watchSession) series() bool {
	return w.title.Kind == catalog.KindSeries
}

// label names what is playing: the film, or "S1:E2 Name".
func (w *watchSession) label() string {
	if !w.series() {
		return w.title.Name
	}
	return w.title.EpisodeLabel(w.ref)
}

func (w *watchSession) next() (catalog.EpisodeRef, bool) {
	if !w.series() {
		return catalog.EpisodeRef{}, false
	}
	return w.title.Next(w.ref)
}

func (w *watchSession) barState() playerbar.State {
	_, hasNext := w.next()
	title := w.title.Name
	if w.series() {
		title += "  " + w.label()
	}
	return playerbar.State{
		Surface:     w.ctrl.Surface(),
		Title:       title,
		HasNext:     hasNext,
		HasEpisodes: w.series(),
	}
}

func mediaPath(t *catalog.Title, ref catalog.EpisodeRef) string {
	if t.Kind != catalog.KindSeries {
		return t.Media
	}
	if ep, ok := t.Episode(ref); ok {
		return ep.Media
	}
	return ""
}

// openWatch loads ref of t and shows the watch view. The previous session,
// if any, is replaced.
func (m *Model) openWatch(t *catalog.Title, ref catalog.EpisodeRef) tea.Cmd {
	if m.Player == nil {
		return m.Toasts.Show("Playback is not available")
	}
	path := mediaPath(t, ref)
	if path == "" {
		return m.Toasts.Show("This title isn't available to watch yet")
	}

	label := t.Name
	if t.Kind == catalog.KindSeries {
		label = t.EpisodeLabel(ref)
	}
	if err := m.Player.Load(path); err != nil {
		slog.Error("app: load media", "path", path, "error", err)
		// The player dropped the previous episode before trying this one.
		m.closeWatch()
		m.Popups.ShowError(errmsg.FormatWith(errmsg.OpMediaLoad, label, err))
		return nil
	}

	ctrl := mediactl.New(m.Player, m.display, m.Config.ControllerOptions())
	ctrl.SetScheduler(m.schedule)
	ctrl.OnMetadataLoaded()

	m.watch = &watchSession{
		title:    t,
		ref:      ref,
		path:     path,
		ctrl:     ctrl,
		load:     m.Player.LoadID(),
		episodes: list.New[int](),
		seasons:  list.New[int](),
	}
	m.Navigation.SetViewMode(navctl.ViewWatch)
	m.syncBar()
	slog.Info("app: watching", "title", t.ID, "label", label)

	cmds := []tea.Cmd{ctrl.Init()}
	if *m.Config.GetPlayerConfig().Autoplay {
		cmds = append(cmds, ctrl.TogglePlayback())
	}
	if !m.ticking {
		m.ticking = true
		cmds = append(cmds, m.TickCmd())
	}
	m.publish()
	return tea.Batch(cmds...)
}

// closeWatch stops playback and returns to the landing page.
func (m *Model) closeWatch() {
	if m.watch == nil {
		return
	}
	m.Player.Close()
	m.watch = nil
	m.display.active = false
	m.Navigation.SetViewMode(navctl.ViewBrowse)
	m.publish()
}

// playNext loads the episode after the current one.
func (m *Model) playNext() tea.Cmd {
	w := m.watch
	if w == nil {
		return nil
	}
	ref, ok := w.next()
	if !ok {
		return m.Toasts.Show("No more episodes")
	}

	toast := m.Toasts.Show("Loading next episode...")
	icon := w.title.Poster
	if icon == "" {
		icon = mpris.FindArtwork(mediaPath(w.title, ref))
	}
	if err := m.Desktop.Send("Up next", w.title.Name+"  "+w.title.EpisodeLabel(ref), icon); err != nil {
		slog.Debug("app: desktop notification", "error", err)
	}
	return tea.Batch(toast, m.openWatch(w.title, ref))
}

// playEpisode loads ref of the title being watched.
func (m *Model) playEpisode(ref catalog.EpisodeRef) tea.Cmd {
	w := m.watch
	if w == nil {
		return nil
	}
	w.picker = navctl.PickerNone
	if ref == w.ref {
		return nil
	}
	ep, ok := w.title.Episode(ref)
	if !ok {
		return nil
	}
	n := ep.Number
	if n <= 0 {
		n = ref.Episode + 1
	}
	toast := m.Toasts.Show(fmt.Sprintf("Playing Episode %d", n))
	return tea.Batch(toast, m.openWatch(w.title, ref))
}

// syncBar recomputes the control bar geometry and hands the scrub bar to
// the controller. Button widths depend on the surface, so call it before
// hit-testing.
func (m *Model) syncBar() {
	w := m.watch
	if w == nil {
		return
	}
	w.bar = playerbar.Measure(w.barState(), m.width).At(layout.ControlBarRow(m.height))
	w.ctrl.SetBar(w.bar.Bar)
	m.sizePickers()
}

// --- Pickers ---

// pickerRect returns the screen rectangle of the side panel.
func (m Model) pickerRect() (left, top, width, height int) {
	width = layout.PickerWidth(m.width)
	top = 0
	if !m.display.active {
		top = layout.TitleHeight
	}
	return m.width - width, top, width, layout.VideoHeight(m.height, m.display.active)
}

func (m *Model) sizePickers() {
	w := m.watch
	left, top, width, height := m.pickerRect()
	for _, l := range []*list.Model[int]{&w.episodes, &w.seasons} {
		l.SetSize(width-2, height)
		l.SetOrigin(left+1, top+3) // border, header, separator
	}
}

func (m *Model) openEpisodePicker(season int) {
	w := m.watch
	if !w.series() || season < 0 || season >= len(w.title.Seasons) {
		return
	}
	eps := w.title.Seasons[season].Episodes
	items := make([]int, len(eps))
	for i := range eps {
		items[i] = i
	}
	w.pickSeason = season
	w.picker = navctl.PickerEpisodes
	w.seasons.SetFocused(false)
	w.episodes.SetFocused(true)
	w.episodes.SetItems(items)
	m.sizePickers()
	if season == w.ref.Season {
		w.episodes.Select(w.ref.Episode)
	} else {
		w.episodes.Select(0)
	}
}

func (m *Model) openSeasonPicker() {
	w := m.watch
	if !w.series() {
		return
	}
	items := make([]int, len(w.title.Seasons))
	for i := range items {
		items[i] = i
	}
	w.picker = navctl.PickerSeasons
	w.episodes.SetFocused(false)
	w.seasons.SetFocused(true)
	w.seasons.SetItems(items)
	m.sizePickers()
	w.seasons.Select(w.pickSeason)
}

func (m *Model) togglePicker(kind navctl.PickerKind) {
	w := m.watch
	if w.picker == kind {
		w.picker = navctl.PickerNone
		return
	}
	switch kind {
	case navctl.PickerEpisodes:
		m.openEpisodePicker(w.ref.Season)
	case navctl.PickerSeasons:
		m.openSeasonPicker()
	case navctl.PickerNone:
		w.picker = navctl.PickerNone
	}
}

// pickSeason starts switching the episode picker to season i.
func (m *Model) pickSeason(i int) tea.Cmd {
	w := m.watch
	w.picker = navctl.PickerNone
	n := w.title.SeasonNumber(i)
	return tea.Batch(
		m.Toasts.Show(fmt.Sprintf("Loading Season %d...", n)),
		m.SeasonLoadedCmd(w.title.ID, i),
	)
}

func (m *Model) handleSeasonLoaded(msg SeasonLoadedMsg) tea.Cmd {
	w := m.watch
	if w == nil || w.title.ID != msg.TitleID {
		return nil
	}
	m.openEpisodePicker(msg.Season)
	return m.Toasts.Show(fmt.Sprintf("Season %d loaded", w.title.SeasonNumber(msg.Season)))
}

// --- Media keys ---

// snapshot describes the watch view for media-key clients.
func (m Model) snapshot() mpris.Snapshot {
	vol := 1.0
	if m.Player != nil {
		vol = m.Player.Volume()
	}
	w := m.watch
	if w == nil {
		return mpris.Snapshot{Status: mpris.StatusStopped, Volume: vol}
	}
	s := mpris.Snapshot{
		Status:   mpris.StatusPaused,
		Path:     w.path,
		Title:    w.label(),
		Length:   m.Player.Duration(),
		Position: m.Player.Position(),
		Volume:   vol,
	}
	if w.ctrl.State().Playing {
		s.Status = mpris.StatusPlaying
	}
	if w.series() {
		s.Series = w.title.Name
		if ep, ok := w.title.Episode(w.ref); ok {
			s.Episode = ep.Number
		}
	}
	s.Poster = w.title.Poster
	_, s.HasNext = w.next()
	return s
}

func (m *Model) publish() {
	if m.MediaKeys != nil {
		m.MediaKeys.Publish(m.snapshot())
	}
}
