package textinput

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/flicks/internal/ui/testutil"
)

func openSearch(t *testing.T, query string) *testutil.Popup {
	t.Helper()
	m := New()
	m.Open("Search", query, 80, 24)
	return testutil.NewPopup(t, &m, 80, 24)
}

func result(t *testing.T, h *testutil.Popup, key string) Result {
	t.Helper()
	r, ok := testutil.Result(t, h.Press(key)).(Result)
	require.True(t, ok)
	return r
}

func TestSearch_InitBlinks(t *testing.T) {
	m := New()
	assert.NotNil(t, m.Init())
}

func TestSearch_Query(t *testing.T) {
	tests := []struct {
		name    string
		initial string
		keys    []string
		want    string
	}{
		{"typed", "", []string{"n", "o", "i", "r"}, "noir"},
		{"prefilled", "heist", nil, "heist"},
		{"appended", "night", []string{" ", "s"}, "night s"},
		{"backspace", "drama", []string{"backspace", "backspace"}, "dra"},
		{"backspace on empty", "", []string{"backspace"}, ""},
		{"arrow keys do not type", "doc", []string{"up", "down"}, "doc"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := openSearch(t, tt.initial)
			h.Press(tt.keys...)
			got := result(t, h, "enter")
			assert.Equal(t, tt.want, got.Query)
			assert.False(t, got.Canceled)
		})
	}
}

func TestSearch_Cancel(t *testing.T) {
	h := openSearch(t, "")
	h.Type("noir")
	got := result(t, h, "esc")
	assert.True(t, got.Canceled)
	assert.Empty(t, got.Query)
}

func TestSearch_View(t *testing.T) {
	h := openSearch(t, "")
	h.Shows("Search", "Enter: search")

	h.Type("orbit")
	h.Shows("orbit")
}

func TestSearch_EmptyWithoutSize(t *testing.T) {
	m := New()
	assert.Empty(t, m.View())
}

func TestSearch_LimitsLength(t *testing.T) {
	h := openSearch(t, "")
	for range maxQuery + 10 {
		h.Press("x")
	}
	m, ok := h.Model().(*Model)
	require.True(t, ok)
	assert.Len(t, m.Value(), maxQuery)
}
