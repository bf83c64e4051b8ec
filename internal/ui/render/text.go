// Package render holds the cell-width aware string helpers the views share.
// Widths are terminal cells, so wide runes and ANSI styling are accounted for.
package render

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"
)

// Sanitize drops control characters other than tab and invalid UTF-8 from
// catalog text, and turns no-break spaces into plain ones.
func Sanitize(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r == utf8.RuneError, r != '\t' && unicode.IsControl(r):
			return -1
		case r == '\u00a0':
			return ' '
		}
		return r
	}, s)
}

// Truncate cuts unstyled text to width, marking the cut with "...".
func Truncate(s string, width int) string {
	return runewidth.Truncate(Sanitize(s), width, "...")
}

// TruncateEllipsis cuts possibly styled text to width with a "…".
func TruncateEllipsis(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return ansi.Truncate(s, width, "…")
}

func Pad(s string, width int) string {
	return runewidth.FillRight(s, width)
}

// FitStyled returns exactly width cells of s, cut or space padded.
func FitStyled(s string, width int) string {
	if width <= 0 {
		return ""
	}
	s = ansi.Truncate(s, width, "")
	return s + spaces(width-lipgloss.Width(s))
}

// Center pads s evenly to width; any odd cell goes on the right.
func Center(s string, width int) string {
	gap := width - lipgloss.Width(s)
	if gap <= 0 {
		return s
	}
	return spaces(gap/2) + s + spaces(gap-gap/2)
}

// Row pushes right to the far edge of width, keeping at least one space.
func Row(left, right string, width int) string {
	return left + spaces(max(width-lipgloss.Width(left)-lipgloss.Width(right), 1)) + right
}

// Wrap word-wraps s to width. When maxLines > 0 and the text runs longer,
// the last kept line ends in "…".
func Wrap(s string, width, maxLines int) []string {
	if s == "" || width <= 0 {
		return nil
	}
	lines := strings.Split(ansi.Wordwrap(Sanitize(s), width, ""), "\n")
	for i := range lines {
		lines[i] = strings.TrimRight(lines[i], " ")
	}
	if maxLines <= 0 || len(lines) <= maxLines {
		return lines
	}
	lines = lines[:maxLines]
	last := &lines[maxLines-1]
	if lipgloss.Width(*last) < width {
		*last += "…"
	} else {
		*last = TruncateEllipsis(*last, width)
	}
	return lines
}

func Separator(width int) string {
	return strings.Repeat("─", max(width, 0))
}

func spaces(n int) string {
	return strings.Repeat(" ", max(n, 0))
}
