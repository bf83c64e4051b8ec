// Package helpbindings renders the keyboard shortcuts reference as a
// scrollable popup.
package helpbindings

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/flicks/internal/keymap"
	"github.com/llehouerou/flicks/internal/ui"
	"github.com/llehouerou/flicks/internal/ui/popup"
	"github.com/llehouerou/flicks/internal/ui/styles"
)

var _ popup.Popup = (*Model)(nil)

// sections lists the binding contexts in display order with their headings.
var sections = []struct {
	context string
	heading string
}{
	{"global", "General"},
	{"browse", "Browse"},
	{"player", "Player"},
	{"countdown", "Next Episode"},
	{"picker", "Episodes & Seasons"},
}

// keyNames spells out keys that do not print.
var keyNames = map[string]string{
	" ":           "space",
	"left":        "←",
	"right":       "→",
	"up":          "↑",
	"down":        "↓",
	"shift+left":  "shift+←",
	"shift+right": "shift+→",
}

// chrome is the rows used by the title, footer, border and padding.
const chrome = 10

// Model is the shortcuts popup. The body is rendered when the contexts
// change; scrolling only moves the window over it.
type Model struct {
	ui.Base
	body []string
	top  int
}

func New() Model {
	return Model{}
}

// SetContexts selects the binding contexts to list and scrolls to the top.
// Sections always appear in the same order whatever the argument order.
func (m *Model) SetContexts(contexts []string) {
	want := make(map[string]bool, len(contexts))
	for _, c := range contexts {
		want[c] = true
	}
	var bindings []keymap.Binding
	for _, s := range sections {
		if want[s.context] {
			bindings = append(bindings, keymap.ByContext(s.context)...)
		}
	}
	m.body = renderBody(bindings)
	m.top = 0
}

func (m *Model) Init() tea.Cmd { return nil }

func (m *Model) Update(msg tea.Msg) (popup.Popup, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch key.String() {
	case "?", "esc", "q":
		return m, func() tea.Msg { return ActionMsg(Close{}) }
	case "j", "down":
		m.top = min(m.top+1, m.lastTop())
	case "k", "up":
		m.top = max(m.top-1, 0)
	}
	return m, nil
}

func (m *Model) View() string {
	if m.Width() == 0 || m.Height() == 0 {
		return ""
	}
	s := styles.T().S()

	end := min(m.top+m.window(), len(m.body))
	footer := "?/esc close"
	if m.lastTop() > 0 {
		footer = "j/k scroll · " + footer
	}

	var b strings.Builder
	b.WriteString(s.Title.Render("Keyboard Shortcuts"))
	b.WriteString("\n\n")
	b.WriteString(strings.Join(m.body[min(m.top, end):end], "\n"))
	b.WriteString("\n\n")
	b.WriteString(s.Subtle.Render(footer))
	return b.String()
}

func (m Model) window() int {
	return max(m.Height()-chrome, 5)
}

func (m Model) lastTop() int {
	return max(len(m.body)-m.window(), 0)
}

// renderBody lays bindings out as a heading, a rule and one padded row per
// binding for each context. Every row is padded to the widest one so the
// popup keeps its width while scrolling.
func renderBody(bindings []keymap.Binding) []string {
	t := styles.T()
	keyStyle := lipgloss.NewStyle().Foreground(t.Primary).Bold(true)
	headStyle := lipgloss.NewStyle().Foreground(t.Secondary).Bold(true)

	keyWidth := 0
	for _, b := range bindings {
		keyWidth = max(keyWidth, lipgloss.Width(keysLabel(b.Keys)))
	}

	var lines []string
	context := ""
	for _, b := range bindings {
		if b.Context != context {
			if context != "" {
				lines = append(lines, "")
			}
			context = b.Context
			lines = append(lines,
				headStyle.Render(heading(context)),
				t.S().Subtle.Render(strings.Repeat("─", keyWidth+15)))
		}
		label := keysLabel(b.Keys)
		label += strings.Repeat(" ", keyWidth-lipgloss.Width(label))
		lines = append(lines, keyStyle.Render(label)+"  "+t.S().Base.Render(b.Description))
	}

	width := 0
	for _, l := range lines {
		width = max(width, lipgloss.Width(l))
	}
	for i, l := range lines {
		lines[i] = l + strings.Repeat(" ", width-lipgloss.Width(l))
	}
	return lines
}

func heading(context string) string {
	for _, s := range sections {
		if s.context == context {
			return s.heading
		}
	}
	return context
}

func keysLabel(keys []string) string {
	out := make([]string, len(keys))
	for i, k := range keys {
		if name, ok := keyNames[k]; ok {
			k = name
		}
		out[i] = k
	}
	return strings.Join(out, ", ")
}
