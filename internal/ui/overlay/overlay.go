// Package overlay draws transient boxes (toasts, countdown, seek indicator,
// dialogs) over an already rendered screen.
package overlay

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Compose overlays content on top of a base view. On each line the span from
// the first to the last visible overlay cell replaces the base. ANSI aware.
func Compose(base, overlay string, width int) string {
	baseLines := strings.Split(base, "\n")
	overlayLines := strings.Split(overlay, "\n")

	for i, overlayLine := range overlayLines {
		if i >= len(baseLines) {
			break
		}

		plain := ansi.Strip(overlayLine)
		if strings.TrimSpace(plain) == "" {
			continue
		}

		startCol := 0
		for _, r := range plain {
			if r != ' ' {
				break
			}
			startCol++
		}
		endCol := ansi.StringWidth(strings.TrimRight(plain, " "))
		content := ansi.Cut(overlayLine, startCol, endCol)

		baseLine := baseLines[i]
		if w := ansi.StringWidth(baseLine); w < width {
			baseLine += strings.Repeat(" ", width-w)
		}

		prefix := ansi.Cut(baseLine, 0, startCol)
		if w := ansi.StringWidth(prefix); w < startCol {
			prefix += strings.Repeat(" ", startCol-w)
		}
		line := prefix + content
		if endCol < width {
			line += ansi.Cut(baseLine, endCol, width)
		}
		baseLines[i] = line
	}

	return strings.Join(baseLines, "\n")
}

// Place positions box inside a width x height screen and composes it over
// base.
func Place(base, box string, width, height int, h, v lipgloss.Position) string {
	if box == "" {
		return base
	}
	placed := lipgloss.Place(width, height, h, v, box)
	return Compose(base, placed, width)
}

// At composes box over base with its top-left corner at (x, y).
func At(base, box string, width, x, y int) string {
	if box == "" {
		return base
	}
	lines := strings.Split(box, "\n")
	shifted := make([]string, y, y+len(lines))
	pad := strings.Repeat(" ", max(x, 0))
	for _, l := range lines {
		shifted = append(shifted, pad+l)
	}
	return Compose(base, strings.Join(shifted, "\n"), width)
}
