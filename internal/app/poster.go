package app

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/flicks/internal/app/popupctl"
	"github.com/llehouerou/flicks/internal/ui/layout"
)

// heroArtwork returns the file drawn beside the hero text, or "".
func (m Model) heroArtwork() string {
	if m.Catalog == nil {
		return ""
	}
	if t := m.Catalog.HeroTitle(); t != nil {
		return t.Artwork()
	}
	return ""
}

// preparePoster loads the hero artwork off the update loop.
func (m Model) preparePoster() tea.Cmd {
	src := m.heroArtwork()
	if m.Posters == nil || src == "" {
		return nil
	}
	if _, ok := layout.PosterColumn(m.width); !ok {
		return nil
	}
	posters := m.Posters
	return func() tea.Msg {
		err := posters.Prepare(src, layout.PosterWidth, layout.HeroHeight)
		return PosterReadyMsg{Source: src, Err: err}
	}
}

// posterVisible reports whether the hero artwork is on screen this frame.
// Images are drawn above the text layer, so anything overlapping the hero
// hides them.
func (m Model) posterVisible() bool {
	if m.watch != nil || m.trailer != nil || m.Popups.ActivePopup() != popupctl.None {
		return false
	}
	if !m.Navigation.ShowsHero() || !layout.ShowHero(m.height) {
		return false
	}
	_, ok := layout.PosterColumn(m.width)
	return ok && m.Posters.Ready(m.heroArtwork(), layout.PosterWidth, layout.HeroHeight)
}

// withPoster adds the image protocol sequences to a rendered frame: the
// transmission ahead of the first line, the placement after the last.
func (m Model) withPoster(view string) string {
	if m.Posters == nil {
		return view
	}
	if !m.posterVisible() {
		return view + m.Posters.Hide()
	}
	col, _ := layout.PosterColumn(m.width)
	var sb strings.Builder
	sb.WriteString(m.Posters.Transmit())
	sb.WriteString(view)
	sb.WriteString(m.Posters.Place(layout.HeaderHeight+1, col+1))
	return sb.String()
}
