package app

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/flicks/internal/app/popupctl"
	"github.com/llehouerou/flicks/internal/catalog"
	"github.com/llehouerou/flicks/internal/embed"
	"github.com/llehouerou/flicks/internal/ui/action"
	"github.com/llehouerou/flicks/internal/ui/headerbar"
	"github.com/llehouerou/flicks/internal/ui/textinput"
)

func TestHandleBrowseKey_UnboundKey(t *testing.T) {
	m, _, _ := newTestModel(t)

	result := m.handleBrowseKey("x")

	assert.False(t, result.Handled)
}

func TestToggleMyList(t *testing.T) {
	m, _, _ := newTestModel(t)

	m, _ = press(t, m, "+")
	assert.Equal(t, []string{"night"}, m.MyList)
	assert.Equal(t, "Added to My List", toastText(m))

	m, _ = press(t, m, "a")
	assert.Empty(t, m.MyList)
	assert.Equal(t, "Removed from My List", toastText(m))
}

func TestToggleMyList_RebuildsMyListTab(t *testing.T) {
	m, _, _ := newTestModel(t)
	m, _ = press(t, m, "+")
	m.switchTab(headerbar.TabMyList)
	require.Len(t, m.Navigation.Rows(), 1)
	require.Len(t, m.Navigation.Rows()[0].Titles, 1)

	m, _ = press(t, m, "+")

	assert.Empty(t, m.Navigation.Rows()[0].Titles)
}

func TestToggleLike(t *testing.T) {
	m, _, _ := newTestModel(t)

	m, _ = press(t, m, "L")
	assert.True(t, m.Liked["night"])
	assert.Equal(t, "Thanks for rating!", toastText(m))

	m, _ = press(t, m, "L")
	assert.False(t, m.Liked["night"])
	assert.Equal(t, "Rating removed", toastText(m))
}

func TestMoreInfo_ShowsToast(t *testing.T) {
	m, _, _ := newTestModel(t)

	m, _ = press(t, m, "i")

	assert.Equal(t, "More info coming soon!", toastText(m))
}

func TestTabs(t *testing.T) {
	m, _, _ := newTestModel(t)

	m, _ = press(t, m, "tab")
	assert.Equal(t, headerbar.TabSeries, m.Navigation.Tab())
	for _, r := range m.Navigation.Rows() {
		for _, title := range r.Titles {
			assert.Equal(t, catalog.KindSeries, title.Kind)
		}
	}

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyShiftTab})
	assert.Equal(t, headerbar.TabHome, m.Navigation.Tab())
}

func TestSearch(t *testing.T) {
	m, _, _ := newTestModel(t)

	m, _ = press(t, m, "/")
	require.Equal(t, popupctl.Search, m.Popups.ActivePopup())

	m, _ = send(t, m, action.Msg{Source: "textinput", Action: textinput.Result{Query: " storm "}})

	assert.Equal(t, popupctl.None, m.Popups.ActivePopup())
	assert.Equal(t, "storm", m.Navigation.Query())
	assert.Equal(t, `Searching for "storm"...`, toastText(m))
	require.Len(t, m.Navigation.Rows(), 1)
	sel, ok := m.Navigation.Selected()
	require.True(t, ok)
	assert.Equal(t, "storm", sel.ID)

	m, _ = press(t, m, "esc")
	assert.Empty(t, m.Navigation.Query())
}

func TestSearch_Canceled(t *testing.T) {
	m, _, _ := newTestModel(t)
	m, _ = press(t, m, "/")

	m, _ = send(t, m, action.Msg{Source: "textinput", Action: textinput.Result{Query: "storm", Canceled: true}})

	assert.Equal(t, popupctl.None, m.Popups.ActivePopup())
	assert.Empty(t, m.Navigation.Query())
}

func TestHelp(t *testing.T) {
	m, _, _ := newTestModel(t)

	m, _ = press(t, m, "?")

	assert.Equal(t, popupctl.Help, m.Popups.ActivePopup())
}

func TestOpenTitle_PlayableMovie(t *testing.T) {
	m, p, _ := newTestModel(t)
	selectTitle(t, m, "storm")

	m, _ = press(t, m, "enter")

	assert.True(t, m.Watching())
	assert.Equal(t, []string{"storm.mp3"}, p.Loads())
}

func TestOpenTitle_NothingToPlayShowsInfo(t *testing.T) {
	m, p, _ := newTestModel(t)
	selectTitle(t, m, "orbit")

	m, _ = press(t, m, "enter")

	assert.False(t, m.Watching())
	assert.Empty(t, p.Loads())
	assert.Equal(t, popupctl.Info, m.Popups.ActivePopup())
}

func TestTrailer_Opens(t *testing.T) {
	m, _, w := newTestModel(t)
	selectTitle(t, m, "comet")

	m, cmd := press(t, m, "enter")
	require.NotNil(t, cmd)
	assert.True(t, m.trailerPending)

	m, _ = send(t, m, cmd())

	require.NotNil(t, m.trailer)
	assert.False(t, m.trailerPending)
	assert.Equal(t, "Comet", m.trailer.name)
	assert.Equal(t, "zYxWvUtSrQp", m.trailer.videoID)
	assert.Equal(t, []string{"player-1 zYxWvUtSrQp"}, w.mounts)
}

func TestTrailer_KeyWhilePending(t *testing.T) {
	m, _, _ := newTestModel(t)
	selectTitle(t, m, "comet")
	m, _ = press(t, m, "t")

	_, cmd := press(t, m, "t")

	assert.Nil(t, cmd)
}

func TestTrailer_ModalSwallowsKeysAndClosesOnEsc(t *testing.T) {
	m, _, w := newTestModel(t)
	selectTitle(t, m, "comet")
	m, cmd := press(t, m, "t")
	m, _ = send(t, m, cmd())
	require.NotNil(t, m.trailer)

	m, _ = press(t, m, "+")
	assert.Empty(t, m.MyList)

	m, _ = press(t, m, "esc")
	assert.Nil(t, m.trailer)
	assert.False(t, m.Trailers.Active())
	require.Len(t, w.instances, 1)
	assert.True(t, w.instances[0].stopped)
	assert.True(t, w.instances[0].destroyed)
}

func TestTrailer_UnknownIDIsSilent(t *testing.T) {
	m, _, w := newTestModel(t)
	selectTitle(t, m, "tides")

	m, cmd := press(t, m, "t")
	require.NotNil(t, cmd)
	msg := cmd()
	opened, ok := msg.(TrailerOpenedMsg)
	require.True(t, ok)
	require.ErrorIs(t, opened.Err, embed.ErrUnknownID)

	m, _ = send(t, m, msg)

	assert.Nil(t, m.trailer)
	assert.Empty(t, toastText(m))
	assert.Empty(t, w.mounts)
}

func TestTrailer_WidgetErrorShowsToast(t *testing.T) {
	m, _, w := newTestModel(t)
	w.err = &embed.WidgetError{Code: embed.ErrNotEmbeddable}
	selectTitle(t, m, "comet")

	m, cmd := press(t, m, "t")
	m, _ = send(t, m, cmd())

	assert.Nil(t, m.trailer)
	assert.Equal(t, "Error loading video. Video owner does not allow embedding.", toastText(m))
}

func TestTrailer_NoneAvailable(t *testing.T) {
	m, _, _ := newTestModel(t)
	selectTitle(t, m, "orbit")

	m, _ = press(t, m, "t")

	assert.Equal(t, "No trailer available", toastText(m))
}

func TestHandleBrowseMouse(t *testing.T) {
	m, p, _ := newTestModel(t)
	// Second card of the first row, below the header and hero.
	x, y := 2+23+1, 2+8+2

	m, _ = send(t, m, tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	sel, ok := m.Navigation.Selected()
	require.True(t, ok)
	assert.Equal(t, "storm", sel.ID)
	assert.False(t, m.Watching())

	m, _ = send(t, m, tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	assert.True(t, m.Watching())
	assert.Equal(t, []string{"storm.mp3"}, p.Loads())
}

func TestHandleBrowseMouse_Wheel(t *testing.T) {
	m, _, _ := newTestModel(t)

	m, _ = send(t, m, tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonWheelDown})

	row, _ := m.Navigation.Cursor()
	assert.Equal(t, 1, row)
}
