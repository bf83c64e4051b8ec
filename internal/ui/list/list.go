// Package list is the scrolling picker behind the episode and season panels.
// It owns selection and scrolling; the caller draws the rows.
package list

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/flicks/internal/ui"
	"github.com/llehouerou/flicks/internal/ui/cursor"
)

type Action int

const (
	ActionNone Action = iota
	ActionEnter
	ActionClick
	ActionCancel
)

// Result reports what an Update did. Index is the chosen item for Enter and
// Click and -1 otherwise.
type Result struct {
	Action Action
	Index  int
}

var nothing = Result{Index: -1}

type Model[T any] struct {
	ui.Base
	items  []T
	cursor cursor.Cursor
	x, y   int
}

func New[T any]() Model[T] {
	return Model[T]{cursor: cursor.New(ui.ScrollMargin)}
}

// SetItems replaces the items, keeping the selection in range.
func (m *Model[T]) SetItems(items []T) {
	m.items = items
	m.cursor.Clamp(len(items))
}

// SetOrigin is the screen cell of the first visible row.
func (m *Model[T]) SetOrigin(x, y int) { m.x, m.y = x, y }

func (m Model[T]) Items() []T { return m.items }

func (m Model[T]) SelectedIndex() int { return m.cursor.Pos() }

func (m Model[T]) Selected() (T, bool) {
	var zero T
	i := m.cursor.Pos()
	if i >= len(m.items) {
		return zero, false
	}
	return m.items[i], true
}

// Select jumps to item i and scrolls it to the middle of the panel.
func (m *Model[T]) Select(i int) {
	n, h := len(m.items), m.rows()
	m.cursor.Jump(i, n, h)
	m.cursor.Center(n, h)
}

// VisibleRange is the half-open range of items on screen.
func (m Model[T]) VisibleRange() (start, end int) {
	return m.cursor.Window(len(m.items), m.rows())
}

func (m Model[T]) rows() int { return m.Rows(ui.PanelOverhead) }

func (m *Model[T]) Update(msg tea.Msg) Result {
	if !m.IsFocused() {
		return nothing
	}
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.key(msg.String())
	case tea.MouseMsg:
		return m.mouse(msg)
	}
	return nothing
}

func (m *Model[T]) key(k string) Result {
	n := len(m.items)
	if m.cursor.HandleKey(k, n, m.rows()) {
		return nothing
	}
	switch {
	case k == "esc":
		return Result{Action: ActionCancel, Index: -1}
	case k == "enter" && n > 0:
		return Result{Action: ActionEnter, Index: m.cursor.Pos()}
	}
	return nothing
}

func (m *Model[T]) mouse(msg tea.MouseMsg) Result {
	n, h := len(m.items), m.rows()
	switch {
	case msg.Button == tea.MouseButtonWheelUp:
		m.cursor.Move(-1, n, h)
	case msg.Button == tea.MouseButtonWheelDown:
		m.cursor.Move(1, n, h)
	case msg.Button == tea.MouseButtonLeft && msg.Action == tea.MouseActionPress:
		if i, ok := m.itemAt(msg.X, msg.Y); ok {
			m.cursor.Jump(i, n, h)
			return Result{Action: ActionClick, Index: i}
		}
	}
	return nothing
}

// itemAt maps a screen cell to the item drawn there.
func (m Model[T]) itemAt(x, y int) (int, bool) {
	row := y - m.y
	if x < m.x || x >= m.x+m.Width() || row < 0 || row >= m.rows() {
		return 0, false
	}
	i := m.cursor.Offset() + row
	return i, i < len(m.items)
}
