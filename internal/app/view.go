package app

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/flicks/internal/embed"
	"github.com/llehouerou/flicks/internal/notify"
	"github.com/llehouerou/flicks/internal/ui/overlay"
	"github.com/llehouerou/flicks/internal/ui/render"
	"github.com/llehouerou/flicks/internal/ui/styles"
)

// toastBottomMargin keeps toasts clear of the control bar.
const toastBottomMargin = 3

// View renders the UI.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	var base string
	if m.watch != nil {
		base = m.watchView()
	} else {
		base = m.browseView()
	}
	base = m.renderTrailer(base)
	base = m.renderToast(base)
	return m.withPoster(m.Popups.RenderOverlay(base))
}

// fitScreen pads or cuts lines to exactly width x height.
func fitScreen(lines []string, width, height int) string {
	out := make([]string, height)
	for i := range out {
		if i < len(lines) {
			out[i] = render.FitStyled(lines[i], width)
		} else {
			out[i] = strings.Repeat(" ", width)
		}
	}
	return strings.Join(out, "\n")
}

// renderToast draws the current toast at the bottom center. It is dimmed
// while sliding in or out.
func (m Model) renderToast(base string) string {
	t, ok := m.Toasts.Current()
	if !ok {
		return base
	}
	style := styles.T().S().Overlay
	if t.Phase != notify.PhaseVisible {
		style = style.Foreground(styles.T().FgMuted)
	}
	box := style.Render(render.TruncateEllipsis(t.Message, max(m.width-8, 1)))
	x := max((m.width-lipgloss.Width(box))/2, 0)
	y := max(m.height-toastBottomMargin, 0)
	return overlay.At(base, box, m.width, x, y)
}

// renderTrailer draws the trailer modal while the widget plays.
func (m Model) renderTrailer(base string) string {
	tv := m.trailer
	if tv == nil {
		return base
	}
	s := styles.T().S()
	status := "Trailer " + m.Trailers.State().String() + " in " + tv.mount
	body := strings.Join([]string{
		s.Title.Render(tv.name),
		"",
		s.Muted.Render(status),
		s.Subtle.Render(embed.EmbedURL(tv.videoID, m.Trailers.Vars())),
		"",
		s.Subtle.Render("Esc to close"),
	}, "\n")
	box := styles.ModalStyle().Render(body)
	return overlay.Place(base, box, m.width, m.height, lipgloss.Center, lipgloss.Center)
}
