package playerbar

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/flicks/internal/ui/styles"
)

func timeStyle() lipgloss.Style {
	return styles.T().S().Muted
}

func titleStyle() lipgloss.Style {
	return styles.T().S().Title
}

func iconStyle() lipgloss.Style {
	return styles.T().S().Base
}

func filledStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(styles.T().Primary)
}

func handleStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(styles.T().FgBase).Bold(true)
}

func emptyStyle() lipgloss.Style {
	return styles.T().S().Subtle
}

// renderVolume draws the volume slider as a row of cells, all empty while
// muted.
func renderVolume(level float64, muted bool, cells int) string {
	filled := 0
	if !muted {
		filled = min(int(level*float64(cells)+0.5), cells)
	}
	return filledStyle().Render(strings.Repeat("▮", filled)) +
		emptyStyle().Render(strings.Repeat("▯", cells-filled))
}
