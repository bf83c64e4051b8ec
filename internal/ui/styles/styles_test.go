package styles

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"

	"github.com/llehouerou/flicks/internal/catalog"
)

func TestGradient_PreservesText(t *testing.T) {
	tests := []string{"", "F", "FLICKS", "Café ☕"}
	for _, text := range tests {
		assert.Equal(t, text, ansi.Strip(Gradient(text, "#ff0000", "#0000ff", false)))
	}
	assert.Equal(t, "FLICKS", ansi.Strip(Logo("FLICKS")))
	assert.Equal(t, "Night Shift", ansi.Strip(HeroTitle("Night Shift")))
}

func TestRamp(t *testing.T) {
	colors := ramp(3, "#ff0000", "#0000ff")
	assert.Len(t, colors, 3)
	assert.Equal(t, "#ff0000", colors[0])
	assert.Equal(t, "#0000ff", colors[2])

	assert.Equal(t, []string{"#ff0000"}, ramp(1, "#ff0000", "#0000ff"))
}

func TestParseHex_ANSIFallsBackToGray(t *testing.T) {
	assert.Equal(t, "#808080", parseHex(lipgloss.Color("240")).Hex())
}

func TestMaturityColor(t *testing.T) {
	theme := T()
	assert.Equal(t, theme.Primary, theme.MaturityColor(catalog.LevelAdult))
	assert.Equal(t, theme.Success, theme.MaturityColor(catalog.LevelKids))
	assert.Equal(t, theme.FgSubtle, theme.MaturityColor(catalog.LevelUnrated))
}

func TestMaturityBadge(t *testing.T) {
	assert.Empty(t, MaturityBadge(""))
	assert.Equal(t, "[TV-MA]", ansi.Strip(MaturityBadge("TV-MA")))
}

func TestCardStyle_Border(t *testing.T) {
	out := CardStyle(true).Render("x")
	assert.True(t, strings.Contains(ansi.Strip(out), "╭"))
}
