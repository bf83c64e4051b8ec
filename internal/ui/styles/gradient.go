package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/rivo/uniseg"
)

// Logo renders the wordmark in brand red fading to dark red.
func Logo(text string) string {
	return Gradient(text, T().Primary, lipgloss.Color("#831010"), true)
}

// HeroTitle renders a hero or watch title fading from white to gray.
func HeroTitle(text string) string {
	return Gradient(text, lipgloss.Color("#ffffff"), T().FgMuted, true)
}

// Gradient colors each grapheme of text along a blend from one color to
// another. Colors that are not #rrggbb blend as mid gray.
func Gradient(text string, from, to lipgloss.Color, bold bool) string {
	var graphemes []string
	for g := uniseg.NewGraphemes(text); g.Next(); {
		graphemes = append(graphemes, g.Str())
	}
	base := lipgloss.NewStyle().Bold(bold)
	if len(graphemes) < 2 {
		return base.Foreground(from).Render(text)
	}

	var b strings.Builder
	for i, hex := range ramp(len(graphemes), from, to) {
		b.WriteString(base.Foreground(lipgloss.Color(hex)).Render(graphemes[i]))
	}
	return b.String()
}

// ramp returns n hex colors from one end to the other, blended in HCL so the
// midpoint does not go muddy.
func ramp(n int, from, to lipgloss.Color) []string {
	a, b := parseHex(from), parseHex(to)
	out := make([]string, n)
	for i := range out {
		t := 0.0
		if n > 1 {
			t = float64(i) / float64(n-1)
		}
		out[i] = a.BlendHcl(b, t).Clamped().Hex()
	}
	return out
}

func parseHex(c lipgloss.Color) colorful.Color {
	if col, err := colorful.Hex(string(c)); err == nil {
		return col
	}
	return colorful.Color{R: 0.5, G: 0.5, B: 0.5}
}
