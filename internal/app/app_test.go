package app

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/flicks/internal/app/navctl"
	"github.com/llehouerou/flicks/internal/catalog"
	"github.com/llehouerou/flicks/internal/embed"
	"github.com/llehouerou/flicks/internal/mpris"
	"github.com/llehouerou/flicks/internal/player"
)

// immediate runs scheduled work as soon as the command is executed.
func immediate(_ time.Duration, fn func(time.Time) tea.Msg) tea.Cmd {
	return func() tea.Msg { return fn(time.Time{}) }
}

type fakeInstance struct {
	stopped   bool
	destroyed bool
}

func (i *fakeInstance) State() embed.WidgetState {
	if i.stopped {
		return embed.StateEnded
	}
	return embed.StatePlaying
}
func (i *fakeInstance) Stop()    { i.stopped = true }
func (i *fakeInstance) Destroy() { i.destroyed = true }

type fakeWidget struct {
	err       error
	mounts    []string
	instances []*fakeInstance
}

func (w *fakeWidget) Mount(mountPoint, id string, _ embed.PlayerVars) (embed.Instance, error) {
	if w.err != nil {
		return nil, w.err
	}
	w.mounts = append(w.mounts, mountPoint+" "+id)
	inst := &fakeInstance{}
	w.instances = append(w.instances, inst)
	return inst, nil
}

type fakeMediaKeys struct {
	snapshots []mpris.Snapshot
}

func (k *fakeMediaKeys) Publish(s mpris.Snapshot) { k.snapshots = append(k.snapshots, s) }

func (k *fakeMediaKeys) last() mpris.Snapshot {
	if len(k.snapshots) == 0 {
		return mpris.Snapshot{}
	}
	return k.snapshots[len(k.snapshots)-1]
}

func testCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	titles := []catalog.Title{
		{
			ID: "night", Name: "Night Shift", Kind: catalog.KindSeries, Year: 2023,
			Maturity: "TV-MA", Match: 97, Genres: []string{"Drama"},
			Synopsis: "A hospital after dark.", Trailer: "dQw4w9WgXcQ",
			Seasons: []catalog.Season{
				{Number: 1, Episodes: []catalog.Episode{
					{Number: 1, Name: "Pilot", Minutes: 50, Media: "night-1-1.mp3"},
					{Number: 2, Name: "Graveyard", Minutes: 48, Media: "night-1-2.mp3"},
				}},
				{Number: 2, Episodes: []catalog.Episode{
					{Number: 1, Name: "Return", Minutes: 51, Media: "night-2-1.mp3"},
				}},
			},
		},
		{
			ID: "storm", Name: "Storm Front", Kind: catalog.KindMovie, Year: 2021,
			Match: 88, Minutes: 112, Media: "storm.mp3",
			Trailer: "https://www.youtube.com/watch?v=aBcDeFgHiJk",
		},
		{ID: "tides", Name: "Tides", Kind: catalog.KindMovie, Trailer: "not a video"},
		{ID: "orbit", Name: "Orbit", Kind: catalog.KindMovie, Synopsis: "Six months in orbit."},
		{ID: "comet", Name: "Comet", Kind: catalog.KindMovie, Trailer: "https://youtu.be/zYxWvUtSrQp"},
	}
	rows := []catalog.Row{
		{Name: "Trending Now", Titles: []string{"night", "storm", "tides", "orbit", "comet"}},
		{Name: "Comedies", Titles: []string{"storm"}},
	}
	cat, err := catalog.New("night", rows, titles)
	require.NoError(t, err)
	return cat
}

func newTestModel(t *testing.T) (Model, *player.Mock, *fakeWidget) {
	t.Helper()
	p := player.NewMock()
	p.SetDuration(10 * time.Minute)
	w := &fakeWidget{}
	m := New(Deps{
		Catalog:  testCatalog(t),
		Player:   p,
		Widget:   w,
		Schedule: immediate,
	})
	next, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	return next.(Model), p, w
}

// key builds the key message whose String() is s.
func key(s string) tea.KeyMsg {
	switch s {
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace}
	case "backspace":
		return tea.KeyMsg{Type: tea.KeyBackspace}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(t *testing.T, m Model, keys ...string) (Model, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, k := range keys {
		var next tea.Model
		next, cmd = m.Update(key(k))
		m = next.(Model)
	}
	return m, cmd
}

func send(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	return next.(Model), cmd
}

// selectTitle moves the cursor to title id in the current row.
func selectTitle(t *testing.T, m Model, id string) {
	t.Helper()
	for range 10 {
		if sel, ok := m.Navigation.Selected(); ok && sel.ID == id {
			return
		}
		m.Navigation.MoveCard(1, 3)
	}
	t.Fatalf("title %q not reachable from the cursor", id)
}

func toastText(m Model) string {
	toast, ok := m.Toasts.Current()
	if !ok {
		return ""
	}
	return toast.Message
}

func TestNew(t *testing.T) {
	m, _, _ := newTestModel(t)

	assert.Equal(t, navctl.ViewBrowse, m.Navigation.ViewMode())
	assert.False(t, m.Watching())
	assert.NotNil(t, m.Trailers)
	require.Len(t, m.Navigation.Rows(), 2)
	assert.Equal(t, "Trending Now", m.Navigation.Rows()[0].Name)
	_, ok := m.Toasts.Current()
	assert.False(t, ok)
}

func TestNew_WithoutWidget(t *testing.T) {
	m := New(Deps{Catalog: testCatalog(t), Schedule: immediate})
	assert.Nil(t, m.Trailers)
	assert.NotNil(t, m.Config)
	assert.Nil(t, m.WatchPlayerEvents())
	assert.Nil(t, m.WatchStderr())
}

func TestView_BeforeWindowSize(t *testing.T) {
	m := New(Deps{Catalog: testCatalog(t)})
	assert.Equal(t, "Loading...", m.View())
}

func TestStderrMsg(t *testing.T) {
	ch := make(chan string, 1)
	m := New(Deps{Catalog: testCatalog(t), Stderr: ch, Schedule: immediate})

	m, cmd := send(t, m, StderrMsg("ALSA lib pcm.c: underrun occurred\n"))

	assert.Equal(t, "ALSA lib pcm.c: underrun occurred", toastText(m))
	assert.NotNil(t, cmd)
}

func TestWatchPlayerEvents(t *testing.T) {
	m, p, _ := newTestModel(t)
	require.NoError(t, p.Load("storm.mp3"))

	msg := m.WatchPlayerEvents()()

	ev, ok := msg.(PlayerEventMsg)
	require.True(t, ok)
	assert.Equal(t, player.EventWaiting, ev.Kind)
}

func TestHandleQuitKeys(t *testing.T) {
	for _, k := range []string{"q", "ctrl+c"} {
		m, _, _ := newTestModel(t)
		res := m.handleQuitKeys(k)
		assert.True(t, res.Handled, k)
		assert.NotNil(t, res.Cmd, k)
	}
	m, _, _ := newTestModel(t)
	for _, k := range []string{"x", "Q"} {
		assert.False(t, m.handleQuitKeys(k).Handled, k)
	}
}

func TestQuit_ClosesWatchView(t *testing.T) {
	m, p, _ := newTestModel(t)
	m, _ = press(t, m, "enter")
	require.True(t, m.Watching())

	m, cmd := press(t, m, "q")

	assert.False(t, m.Watching())
	assert.Equal(t, player.Stopped, p.State())
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}
