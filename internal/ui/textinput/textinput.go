// Package textinput is the search box popup. Enter reports the query, Esc
// reports a cancel; every other key edits the text.
package textinput

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/flicks/internal/icons"
	"github.com/llehouerou/flicks/internal/ui"
	"github.com/llehouerou/flicks/internal/ui/popup"
	"github.com/llehouerou/flicks/internal/ui/styles"
)

var _ popup.Popup = (*Model)(nil)

const (
	maxQuery    = 80
	placeholder = "Search by name or genre"
	hint        = "Enter: search, Esc: cancel"
)

type Model struct {
	ui.Base
	title string
	input textinput.Model
}

func New() Model {
	in := textinput.New()
	in.CharLimit = maxQuery
	in.Placeholder = placeholder
	return Model{input: in}
}

// Open focuses the box with query prefilled so that reopening search edits
// the current filter.
func (m *Model) Open(title, query string, width, height int) {
	m.title = title
	m.input.Prompt = icons.Current().Search + " "
	m.input.SetValue(query)
	m.input.CursorEnd()
	m.input.Width = max(width/2, 20)
	m.input.Focus()
	m.SetSize(width, height)
}

func (m Model) Value() string {
	return m.input.Value()
}

func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m *Model) Update(msg tea.Msg) (popup.Popup, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.Type { //nolint:exhaustive // the rest edits the text
		case tea.KeyEsc:
			return m, report(Result{Canceled: true})
		case tea.KeyEnter:
			return m, report(Result{Query: m.input.Value()})
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func report(r Result) tea.Cmd {
	return func() tea.Msg { return ActionMsg(r) }
}

func (m *Model) View() string {
	if m.Width() == 0 || m.Height() == 0 {
		return ""
	}
	s := styles.T().S()
	return s.Title.Render(m.title) + "\n\n" + m.input.View() + "\n\n" + s.Subtle.Render(hint)
}
