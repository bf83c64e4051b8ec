package popup

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/flicks/internal/ui/render"
	"github.com/llehouerou/flicks/internal/ui/styles"
)

// Dialog is a titled box of text with a footer hint, as used for the title
// info and error popups.
type Dialog struct {
	Title   string
	Content string
	Footer  string
	Width   int // inner width; 0 fits the content
}

func New() *Dialog {
	return &Dialog{}
}

// Box renders the bordered dialog at the top left. Content lines longer than
// the terminal allows are cut with an ellipsis.
func (d *Dialog) Box(termWidth int) string {
	s := styles.T().S()

	inner := d.Width
	if inner == 0 {
		inner = max(widest(d.Content), lipgloss.Width(d.Title), lipgloss.Width(d.Footer)) + 2
	}
	inner = max(min(inner, termWidth-4), 1)

	var lines []string
	if d.Title != "" {
		lines = append(lines, render.Center(s.Title.Render(d.Title), inner), "")
	}
	for line := range strings.SplitSeq(d.Content, "\n") {
		lines = append(lines, render.Pad(render.TruncateEllipsis(line, inner), inner))
	}
	if d.Footer != "" {
		lines = append(lines, "", render.Center(s.Subtle.Render(d.Footer), inner))
	}
	return bordered(inner+2, 0, 0, 1).Render(strings.Join(lines, "\n"))
}

// Render returns the dialog centered on a termWidth x termHeight screen.
func (d *Dialog) Render(termWidth, termHeight int) string {
	return Center(d.Box(termWidth), termWidth, termHeight)
}

// bordered is the rounded, theme-colored frame shared by every popup.
func bordered(width, height, padV, padH int) lipgloss.Style {
	st := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(styles.T().Border).
		Padding(padV, padH).
		Width(width)
	if height > 0 {
		st = st.Height(height)
	}
	return st
}

func widest(s string) int {
	w := 0
	for line := range strings.SplitSeq(s, "\n") {
		w = max(w, lipgloss.Width(line))
	}
	return w
}

// Center places content mid-screen. Nothing is written right of the box so
// the result can be composed over another view.
func Center(content string, termWidth, termHeight int) string {
	lines := strings.Split(strings.TrimRight(content, "\n"), "\n")
	left := strings.Repeat(" ", max((termWidth-widest(content))/2, 0))
	for i, l := range lines {
		lines[i] = left + l
	}
	top := strings.Repeat("\n", max((termHeight-len(lines))/2, 0))
	return top + strings.Join(lines, "\n")
}

// SizeConfig says how big a popup is: a share of the screen, or its content
// size capped at MaxWidth.
type SizeConfig struct {
	WidthPct  int
	HeightPct int
	MaxWidth  int
}

var (
	SizeLarge = SizeConfig{WidthPct: 70, HeightPct: 70} // shortcuts panel
	SizeAuto  = SizeConfig{MaxWidth: 72}                // info, trailer
)

// RenderBordered frames content and centers it.
func RenderBordered(content string, screenW, screenH int, size SizeConfig) string {
	w, h := calculateDimensions(content, screenW, screenH, size)
	return Center(bordered(w-2, h-2, 1, 2).Render(content), screenW, screenH)
}

// calculateDimensions returns the outer size including border and padding.
func calculateDimensions(content string, screenW, screenH int, size SizeConfig) (int, int) {
	if size.WidthPct > 0 {
		return screenW * size.WidthPct / 100, screenH * size.HeightPct / 100
	}
	w := widest(content) + 6
	if size.MaxWidth > 0 {
		w = min(w, size.MaxWidth)
	}
	h := strings.Count(content, "\n") + 5
	return min(w, screenW-4), min(h, screenH-4)
}
