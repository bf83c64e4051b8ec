package app

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/flicks/internal/app/navctl"
	"github.com/llehouerou/flicks/internal/catalog"
	"github.com/llehouerou/flicks/internal/mediactl"
	"github.com/llehouerou/flicks/internal/ui/helpbindings"
	"github.com/llehouerou/flicks/internal/ui/layout"
	"github.com/llehouerou/flicks/internal/ui/overlay"
	"github.com/llehouerou/flicks/internal/ui/playerbar"
	"github.com/llehouerou/flicks/internal/ui/popup"
	"github.com/llehouerou/flicks/internal/ui/render"
	"github.com/llehouerou/flicks/internal/ui/styles"
)

// watchView renders the watch view: title line, media area, control bar
// and whatever overlays the controller has up.
func (m Model) watchView() string {
	w := m.watch
	s := styles.T().S()
	full := m.display.active

	lines := make([]string, 0, m.height)
	if !full {
		back := s.Muted.Render("← Back")
		lines = append(lines, render.Row(back+"  "+s.Title.Render(w.label()), s.Subtle.Render("? shortcuts"), m.width))
	}

	vh := layout.VideoHeight(m.height, full)
	if vh > 0 {
		video := lipgloss.Place(m.width, vh, lipgloss.Center, lipgloss.Center, m.mediaCard())
		lines = append(lines, strings.Split(video, "\n")...)
	}

	bar, _ := playerbar.Render(w.barState(), m.width)
	lines = append(lines, strings.Split(bar, "\n")...)
	base := fitScreen(lines, m.width, m.height)

	videoTop := 0
	if !full {
		videoTop = layout.TitleHeight
	}
	base = m.renderPicker(base)
	for _, o := range w.ctrl.Overlays() {
		base = m.renderOverlay(base, o, videoTop, vh)
	}
	return base
}

// mediaCard is what stands in for the picture: what is playing and the
// element's state.
func (m Model) mediaCard() string {
	w := m.watch
	s := styles.T().S()
	lines := []string{styles.HeroTitle(w.title.Name)}
	if w.series() {
		lines = append(lines, s.Base.Render(w.label()))
	}

	sf := w.ctrl.Surface()
	var status string
	switch {
	case sf.Buffering:
		status = s.Warning.Render("Buffering...")
	case sf.Playing:
		status = s.Playing.Render("Now playing")
	default:
		status = s.Muted.Render("Paused")
	}
	lines = append(lines, "", status)
	return lipgloss.JoinVertical(lipgloss.Center, lines...)
}

func (m Model) renderOverlay(base string, o mediactl.Overlay, videoTop, vh int) string {
	s := styles.T().S()
	switch o.Kind {
	case mediactl.OverlaySeek:
		box := s.Overlay.Bold(true).Padding(1, 3).Render(o.Text)
		x := max((m.width-lipgloss.Width(box))/2, 0)
		y := videoTop + max((vh-lipgloss.Height(box))/2, 0)
		return overlay.At(base, box, m.width, x, y)

	case mediactl.OverlayCountdown:
		body := s.Title.Render(fmt.Sprintf("Next episode in %d", o.Count)) + "\n" +
			s.Muted.Render("Enter to play now · Esc to cancel")
		box := s.Overlay.Padding(1, 2).Render(body)
		x := max(m.width-lipgloss.Width(box)-2, 0)
		y := videoTop + max(vh-lipgloss.Height(box)-1, 0)
		return overlay.At(base, box, m.width, x, y)

	case mediactl.OverlayShortcuts:
		help := helpbindings.New()
		help.SetContexts([]string{"player", "countdown", "picker"})
		help.SetSize(m.width*popup.SizeLarge.WidthPct/100-6, m.height*popup.SizeLarge.HeightPct/100-4)
		box := popup.RenderBordered(help.View(), m.width, m.height, popup.SizeLarge)
		return overlay.Compose(base, box, m.width)
	}
	return base
}

// renderPicker draws the episode or season side panel.
func (m Model) renderPicker(base string) string {
	w := m.watch
	if w.picker == navctl.PickerNone {
		return base
	}
	left, top, width, height := m.pickerRect()
	inner := width - 2
	s := styles.T().S()

	var header string
	var rows []string
	if w.picker == navctl.PickerSeasons {
		header = "Seasons"
		rows = m.seasonRows(inner)
	} else {
		header = fmt.Sprintf("Episodes · Season %d", w.title.SeasonNumber(w.pickSeason))
		rows = m.episodeRows(inner)
	}

	content := make([]string, 0, height)
	content = append(content, render.FitStyled(s.Title.Render(header), inner), s.Subtle.Render(render.Separator(inner)))
	content = append(content, rows...)
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(styles.T().BorderFocus).
		Width(inner).
		Height(max(height-2, 0)).
		Render(strings.Join(content, "\n"))
	return overlay.At(base, box, m.width, left, top)
}

func (m Model) episodeRows(width int) []string {
	w := m.watch
	s := styles.T().S()
	eps := w.title.Seasons[w.pickSeason].Episodes
	start, end := w.episodes.VisibleRange()
	out := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		ep := eps[i]
		n := ep.Number
		if n <= 0 {
			n = i + 1
		}
		left := fmt.Sprintf("%d. %s", n, render.Sanitize(ep.Name))
		right := ""
		if ep.Minutes > 0 {
			right = catalog.Runtime(ep.Minutes)
		}
		line := render.Row(render.TruncateEllipsis(left, width-len(right)-1), right, width)

		current := w.pickSeason == w.ref.Season && i == w.ref.Episode
		out = append(out, pickerLine(line, width, i == w.episodes.SelectedIndex(), current, s))
	}
	return out
}

func (m Model) seasonRows(width int) []string {
	w := m.watch
	s := styles.T().S()
	start, end := w.seasons.VisibleRange()
	out := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		count := len(w.title.Seasons[i].Episodes)
		line := render.Row(fmt.Sprintf("Season %d", w.title.SeasonNumber(i)), fmt.Sprintf("%d episodes", count), width)
		out = append(out, pickerLine(line, width, i == w.seasons.SelectedIndex(), i == w.ref.Season, s))
	}
	return out
}

func pickerLine(line string, width int, cursor, current bool, s *styles.Styles) string {
	line = render.FitStyled(line, width)
	switch {
	case cursor:
		return s.Cursor.Render(line)
	case current:
		return s.Playing.Render(line)
	default:
		return s.Base.Render(line)
	}
}
