package overlay

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func blank(w, h int) string {
	lines := make([]string, h)
	for i := range lines {
		lines[i] = strings.Repeat(".", w)
	}
	return strings.Join(lines, "\n")
}

func TestCompose(t *testing.T) {
	base := blank(10, 3)
	got := Compose(base, "\n   abc", 10)
	assert.Equal(t, "..........\n...abc....\n..........", got)
}

func TestCompose_PadsShortBase(t *testing.T) {
	got := Compose("..", "    x", 6)
	assert.Equal(t, "..  x ", got)
}

func TestCompose_IgnoresExtraLines(t *testing.T) {
	got := Compose("....", "ab\ncd", 4)
	assert.Equal(t, "ab..", got)
}

func TestPlace_BottomCenter(t *testing.T) {
	got := Place(blank(10, 3), "ok", 10, 3, lipgloss.Center, lipgloss.Bottom)
	lines := strings.Split(got, "\n")
	assert.Equal(t, "..........", lines[0])
	assert.Equal(t, "....ok....", lines[2])
}

func TestPlace_Empty(t *testing.T) {
	base := blank(4, 2)
	assert.Equal(t, base, Place(base, "", 4, 2, lipgloss.Center, lipgloss.Center))
}

func TestAt(t *testing.T) {
	got := At(blank(6, 3), "xy\nzw", 6, 2, 1)
	assert.Equal(t, "......\n..xy..\n..zw..", got)
}
