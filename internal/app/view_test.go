package app

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/flicks/internal/player"
	"github.com/llehouerou/flicks/internal/ui/headerbar"
)

func plain(s string) string {
	return ansi.Strip(s)
}

func TestBrowseView(t *testing.T) {
	m, _, _ := newTestModel(t)

	view := plain(m.View())

	assert.Contains(t, view, "Trending Now")
	assert.Contains(t, view, "Comedies")
	assert.Contains(t, view, "Storm Front")
	assert.Contains(t, view, "A hospital after dark.")
	assert.Len(t, strings.Split(view, "\n"), m.height)
}

func TestBrowseView_EmptyStates(t *testing.T) {
	m, _, _ := newTestModel(t)

	m.switchTab(headerbar.TabMyList)
	assert.Contains(t, plain(m.View()), "Your list is empty")

	m.search("zzz")
	assert.Contains(t, plain(m.View()), `No results for "zzz"`)
}

func TestBrowseView_Toast(t *testing.T) {
	m, _, _ := newTestModel(t)
	m, _ = press(t, m, "+")

	assert.Contains(t, plain(m.View()), "Added to My List")
}

func TestBrowseView_InfoDialog(t *testing.T) {
	m, _, _ := newTestModel(t)
	selectTitle(t, m, "orbit")
	m, _ = press(t, m, "enter")

	view := plain(m.View())

	assert.Contains(t, view, "Orbit")
	assert.Contains(t, view, "Six months in orbit.")
	assert.Contains(t, view, "Press any key to close")
}

func TestTrailerModal(t *testing.T) {
	m, _, _ := newTestModel(t)
	selectTitle(t, m, "comet")
	m, cmd := press(t, m, "t")
	m, _ = send(t, m, cmd())
	require.NotNil(t, m.trailer)

	view := plain(m.View())

	assert.Contains(t, view, "Trailer playing in player-1")
	assert.Contains(t, view, "Esc to close")
}

func TestWatchView_Countdown(t *testing.T) {
	m, _ := watching(t)
	m, _ = send(t, m, event(m, player.EventEnded))

	view := plain(m.View())

	assert.Contains(t, view, "Next episode in 5")
	assert.Contains(t, view, "Paused")
}

func TestWatchView_Shortcuts(t *testing.T) {
	m, _ := watching(t)
	m, _ = press(t, m, "?")

	assert.Contains(t, plain(m.View()), "Keyboard Shortcuts")
}

func TestWatchView_EpisodePicker(t *testing.T) {
	m, _ := watching(t)
	m, _ = press(t, m, "e")

	view := plain(m.View())

	assert.Contains(t, view, "Episodes · Season 1")
	assert.Contains(t, view, "2. Graveyard")
}

func TestWatchView_FullscreenHidesTitleLine(t *testing.T) {
	m, _ := watching(t)
	assert.Contains(t, plain(m.View()), "← Back")

	m, _ = press(t, m, "f")

	assert.NotContains(t, plain(m.View()), "← Back")
}
