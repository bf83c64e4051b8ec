// Package headerbar renders the browse view's top line: the wordmark, the
// section tabs and the active search.
package headerbar

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/flicks/internal/icons"
	"github.com/llehouerou/flicks/internal/ui/render"
	"github.com/llehouerou/flicks/internal/ui/styles"
)

// Height is the fixed height of the header bar (single line).
const Height = 1

// Logo is the wordmark at the left of the header.
const Logo = "FLICKS"

// Tab is a browse section.
type Tab int

const (
	TabHome Tab = iota
	TabSeries
	TabFilms
	TabMyList
)

var tabNames = []string{"Home", "Series", "Films", "My List"}

func (t Tab) String() string {
	if t < 0 || int(t) >= len(tabNames) {
		return ""
	}
	return tabNames[t]
}

// Next cycles forward through the tabs.
func (t Tab) Next() Tab {
	return Tab((int(t) + 1) % len(tabNames))
}

// Prev cycles backward through the tabs.
func (t Tab) Prev() Tab {
	return Tab((int(t) + len(tabNames) - 1) % len(tabNames))
}

func activeStyle() lipgloss.Style {
	return styles.T().S().Title
}

func inactiveStyle() lipgloss.Style {
	return styles.T().S().Muted
}

// Render returns the header for the given width. A non-empty query is shown
// at the right.
func Render(current Tab, query string, width int) string {
	if width < 20 {
		return render.Pad("", max(width, 0))
	}

	parts := make([]string, 0, len(tabNames))
	for i, name := range tabNames {
		if Tab(i) == current {
			parts = append(parts, activeStyle().Render(name))
		} else {
			parts = append(parts, inactiveStyle().Render(name))
		}
	}
	left := " " + styles.Logo(Logo) + "   " + strings.Join(parts, "  ")

	right := ""
	if query != "" {
		right = inactiveStyle().Render(icons.Current().Search+" ") +
			styles.T().S().Base.Render(render.Truncate(query, 24)) + " "
	}

	if lipgloss.Width(left)+lipgloss.Width(right)+1 > width {
		right = ""
	}
	return render.Pad(render.TruncateEllipsis(render.Row(left, right, width), width), width)
}
