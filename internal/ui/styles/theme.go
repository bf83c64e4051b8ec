package styles

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/flicks/internal/catalog"
)

// Theme is the dark streaming-site palette. Primary is the brand red used
// for the logo, focused cards and progress fills; Secondary is the gold of
// match scores and "new" badges.
type Theme struct {
	Primary, Secondary lipgloss.Color

	FgBase, FgMuted, FgSubtle     lipgloss.Color
	BgBase, BgCursor, BgOverlay   lipgloss.Color
	Border, BorderFocus           lipgloss.Color
	Success, Error, Warning, Info lipgloss.Color

	styles Styles
}

// Styles are the lipgloss styles shared by every view.
type Styles struct {
	Base, Muted, Subtle lipgloss.Style
	Title, Playing      lipgloss.Style
	Cursor, Overlay     lipgloss.Style

	Success, Error, Warning lipgloss.Style
}

var current = newTheme()

func newTheme() *Theme {
	t := &Theme{
		Primary:     "#e50914",
		Secondary:   "#f5c518",
		FgBase:      "#e5e5e5",
		FgMuted:     "#a3a3a3",
		FgSubtle:    "#6d6d6d",
		BgBase:      "#141414",
		BgCursor:    "#2f2f2f",
		BgOverlay:   "#262626",
		Border:      "#4d4d4d",
		BorderFocus: "#e5e5e5",
		Success:     "#46d369",
		Error:       "#e87c03",
		Warning:     "#f5c518",
		Info:        "#54b9c5",
	}
	fg := func(c lipgloss.Color) lipgloss.Style { return lipgloss.NewStyle().Foreground(c) }
	t.styles = Styles{
		Base:    fg(t.FgBase),
		Muted:   fg(t.FgMuted),
		Subtle:  fg(t.FgSubtle),
		Title:   fg(t.FgBase).Bold(true),
		Playing: fg(t.Primary).Bold(true),
		Cursor:  fg(t.FgBase).Background(t.BgCursor),
		Overlay: fg(t.FgBase).Background(t.BgOverlay).Padding(0, 2),
		Success: fg(t.Success),
		Error:   fg(t.Error),
		Warning: fg(t.Warning),
	}
	return t
}

// T returns the active theme.
func T() *Theme { return current }

// S returns the theme's styles.
func (t *Theme) S() *Styles { return &t.styles }

// MaturityColor picks a badge color that warms with the rating level.
func (t *Theme) MaturityColor(level catalog.Level) lipgloss.Color {
	switch level {
	case catalog.LevelKids:
		return t.Success
	case catalog.LevelFamily:
		return t.Info
	case catalog.LevelTeen:
		return t.Warning
	case catalog.LevelAdult:
		return t.Primary
	}
	return t.FgSubtle
}

// MaturityBadge renders "[rating]" in the rating's color. An empty rating
// renders nothing.
func MaturityBadge(rating string) string {
	if rating == "" {
		return ""
	}
	t := T()
	return lipgloss.NewStyle().
		Foreground(t.MaturityColor(catalog.MaturityLevel(rating))).
		Bold(true).
		Render("[" + rating + "]")
}
