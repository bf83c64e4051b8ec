package app

import (
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/flicks/internal/app/navctl"
	"github.com/llehouerou/flicks/internal/catalog"
	"github.com/llehouerou/flicks/internal/icons"
	"github.com/llehouerou/flicks/internal/ui/headerbar"
	"github.com/llehouerou/flicks/internal/ui/layout"
	"github.com/llehouerou/flicks/internal/ui/render"
	"github.com/llehouerou/flicks/internal/ui/styles"
)

// browseView renders the landing page: header, hero banner and title rows.
func (m Model) browseView() string {
	nav := m.Navigation
	lines := []string{headerbar.Render(nav.Tab(), nav.Query(), m.width), ""}

	hero := nav.ShowsHero()
	if hero && layout.ShowHero(m.height) {
		lines = append(lines, m.heroLines()...)
	}

	rows := nav.Rows()
	if len(rows) == 0 || (len(rows) == 1 && len(rows[0].Titles) == 0) {
		lines = append(lines, m.emptyLines()...)
		return fitScreen(lines, m.width, m.height)
	}

	perRow := layout.CardsPerRow(m.width)
	curRow, curCard := nav.Cursor()
	end := min(nav.RowTop()+layout.VisibleRows(m.height, hero), len(rows))
	for i := nav.RowTop(); i < end; i++ {
		focus := -1
		if i == curRow {
			focus = curCard
		}
		lines = append(lines, m.rowLines(rows[i], nav.Offset(i), perRow, focus)...)
	}
	return fitScreen(lines, m.width, m.height)
}

func (m Model) emptyLines() []string {
	s := styles.T().S()
	pad := strings.Repeat(" ", layout.RowPadding)
	switch {
	case m.Navigation.Query() != "":
		return []string{
			pad + s.Title.Render(fmt.Sprintf("No results for %q", m.Navigation.Query())),
			pad + s.Muted.Render("Try a different title or genre. Esc clears the search."),
		}
	case m.Navigation.Tab() == headerbar.TabMyList:
		return []string{
			pad + s.Title.Render("Your list is empty"),
			pad + s.Muted.Render("Press + on any title to add it here."),
		}
	default:
		return []string{pad + s.Muted.Render("Nothing to show here yet.")}
	}
}

// heroLines renders the featured title in exactly layout.HeroHeight lines.
func (m Model) heroLines() []string {
	lines := make([]string, 0, layout.HeroHeight)
	var t *catalog.Title
	if m.Catalog != nil {
		t = m.Catalog.HeroTitle()
	}
	if t != nil {
		s := styles.T().S()
		pad := strings.Repeat(" ", layout.RowPadding)
		width := max(min(m.width-2*layout.RowPadding, layout.HeroTextWidth), 1)

		lines = append(lines, pad+styles.HeroTitle(t.Name))
		meta := s.Muted.Render(t.Meta())
		if badge := styles.MaturityBadge(t.Maturity); badge != "" {
			meta = badge + " " + meta
		}
		lines = append(lines, pad+meta, "")
		syn := render.Wrap(t.Synopsis, width, 3)
		for i := range 3 {
			line := ""
			if i < len(syn) {
				line = s.Base.Render(syn[i])
			}
			lines = append(lines, pad+line)
		}
		lines = append(lines, pad+heroButtons(t, slices.Contains(m.MyList, t.ID)))
	}
	for len(lines) < layout.HeroHeight {
		lines = append(lines, "")
	}
	return lines[:layout.HeroHeight]
}

func heroButtons(t *catalog.Title, inList bool) string {
	th := styles.T()
	ic := icons.Current()
	primary := lipgloss.NewStyle().
		Background(th.FgBase).
		Foreground(th.BgBase).
		Bold(true).
		Padding(0, 1)
	secondary := lipgloss.NewStyle().
		Background(th.BgCursor).
		Foreground(th.FgBase).
		Padding(0, 1)

	label := ic.Play + " Play"
	if !t.Playable() {
		label = ic.Play + " Trailer"
	}
	buttons := []string{
		primary.Render(label),
		secondary.Render(ic.Info + " More Info"),
		secondary.Render(icons.MyList(inList) + " My List"),
	}
	return strings.Join(buttons, " ")
}

// rowLines renders a row name and its visible cards. focus is the focused
// card index within the row, or -1.
func (m Model) rowLines(r navctl.Row, offset, perRow, focus int) []string {
	s := styles.T().S()
	pad := strings.Repeat(" ", layout.RowPadding)
	name := s.Title.Render(r.Name)
	if focus >= 0 {
		name = s.Playing.Render(r.Name)
	}
	if hidden := len(r.Titles) - offset - perRow; hidden > 0 {
		name += s.Subtle.Render(fmt.Sprintf("  +%d more", hidden))
	}

	end := min(offset+perRow, len(r.Titles))
	cards := make([]string, 0, 2*(end-offset))
	for i := offset; i < end; i++ {
		if i > offset {
			cards = append(cards, strings.Repeat(" ", layout.CardGap))
		}
		cards = append(cards, m.card(r.Titles[i], i == focus))
	}

	lines := []string{pad + name}
	if len(cards) > 0 {
		for l := range strings.SplitSeq(lipgloss.JoinHorizontal(lipgloss.Top, cards...), "\n") {
			lines = append(lines, pad+l)
		}
	}
	for len(lines) < layout.RowHeight {
		lines = append(lines, "")
	}
	return lines
}

// card renders a title card of layout.CardWidth x layout.CardHeight.
func (m Model) card(t *catalog.Title, focused bool) string {
	s := styles.T().S()
	inner := layout.CardWidth - 2

	name := render.TruncateEllipsis(render.Sanitize(t.Name), inner)
	if focused {
		name = s.Title.Render(name)
	} else {
		name = s.Base.Render(name)
	}

	var tags []string
	if m.Liked[t.ID] {
		tags = append(tags, icons.Current().Like)
	}
	if slices.Contains(m.MyList, t.ID) {
		tags = append(tags, icons.MyList(true))
	}
	if t.IsNew(m.now()) {
		tags = append(tags, lipgloss.NewStyle().Foreground(styles.T().Secondary).Render("NEW"))
	}
	info := ""
	switch {
	case t.Match > 0:
		info = fmt.Sprintf("%d%%", t.Match)
	case t.Year > 0:
		info = fmt.Sprint(t.Year)
	}
	second := s.Muted.Render(info)
	if len(tags) > 0 {
		second = render.Row(second, strings.Join(tags, " "), inner)
	}

	body := render.FitStyled(name, inner) + "\n" + render.FitStyled(second, inner)
	return styles.CardStyle(focused).Render(body)
}
