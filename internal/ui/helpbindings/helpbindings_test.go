package helpbindings

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/flicks/internal/ui/testutil"
)

func open(t *testing.T, height int, contexts ...string) (*testutil.Popup, *Model) {
	t.Helper()
	m := New()
	m.SetContexts(contexts)
	h := testutil.NewPopup(t, &m, 80, height)
	return h, &m
}

func TestHelpBindings_Close(t *testing.T) {
	for _, key := range []string{"esc", "q", "?"} {
		t.Run(key, func(t *testing.T) {
			h, _ := open(t, 24, "global")
			_, ok := testutil.Result(t, h.Press(key)).(Close)
			assert.True(t, ok)
		})
	}
}

func TestHelpBindings_Scroll(t *testing.T) {
	h, m := open(t, 24, "global", "browse", "player")
	require.Positive(t, m.lastTop(), "three sections overflow a 24 row popup")

	h.Press("j", "down", "j")
	assert.Equal(t, 3, m.top)

	h.Press("k")
	assert.Equal(t, 2, m.top)

	for range 100 {
		h.Press("j")
	}
	assert.Equal(t, m.lastTop(), m.top)

	for range 100 {
		h.Press("up")
	}
	assert.Equal(t, 0, m.top)
	h.Shows("j/k scroll")
}

func TestHelpBindings_ShortListDoesNotScroll(t *testing.T) {
	h, m := open(t, 40, "global")
	h.Press("j")
	assert.Equal(t, 0, m.top)
	assert.NotContains(t, h.Text(), "j/k scroll")
	h.Shows("Keyboard Shortcuts", "?/esc close", "General")
}

func TestHelpBindings_SectionOrder(t *testing.T) {
	h, _ := open(t, 100, "countdown", "player", "global")
	text := h.Text()
	general := strings.Index(text, "General")
	player := strings.Index(text, "Player")
	next := strings.Index(text, "Next Episode")
	require.True(t, general >= 0 && player >= 0 && next >= 0, text)
	assert.Less(t, general, player)
	assert.Less(t, player, next)
	assert.NotContains(t, text, "Browse")
}

func TestHelpBindings_SetContextsResetsScroll(t *testing.T) {
	h, m := open(t, 24, "global", "browse", "player")
	h.Press("j", "j")
	require.Equal(t, 2, m.top)

	m.SetContexts([]string{"player"})
	assert.Equal(t, 0, m.top)
}

func TestHelpBindings_PlayerKeys(t *testing.T) {
	h, _ := open(t, 100, "player")
	h.Shows("space", "shift+←", "Play/Pause", "Mute", "Next episode")
}

func TestHelpBindings_RowsShareWidth(t *testing.T) {
	_, m := open(t, 100, "global", "player")
	w := len([]rune(testutil.StripANSI(m.body[0])))
	for _, line := range m.body {
		assert.Len(t, []rune(testutil.StripANSI(line)), w)
	}
}

func TestHelpBindings_EmptyWithoutSize(t *testing.T) {
	m := New()
	m.SetContexts([]string{"global"})
	assert.Empty(t, m.View())
}

func TestKeysLabel(t *testing.T) {
	assert.Equal(t, "space, k, ↑", keysLabel([]string{" ", "k", "up"}))
}
