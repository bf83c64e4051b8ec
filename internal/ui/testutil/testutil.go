// Package testutil drives popups from tests and reads back their text.
package testutil

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"github.com/llehouerou/flicks/internal/ui/action"
	"github.com/llehouerou/flicks/internal/ui/popup"
)

// StripANSI removes styling so rendered output can be compared as text.
func StripANSI(s string) string {
	return ansi.Strip(s)
}

// Key builds the KeyMsg bubbletea would deliver for a key name as returned
// by tea.KeyMsg.String.
func Key(name string) tea.KeyMsg {
	switch name {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "backspace":
		return tea.KeyMsg{Type: tea.KeyBackspace}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "ctrl+a":
		return tea.KeyMsg{Type: tea.KeyCtrlA}
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(name)}
}

// Popup wraps a popup under test.
type Popup struct {
	t testing.TB
	p popup.Popup
}

// NewPopup sizes p and runs its Init.
func NewPopup(t testing.TB, p popup.Popup, width, height int) *Popup {
	t.Helper()
	p.SetSize(width, height)
	p.Init()
	return &Popup{t: t, p: p}
}

// Model returns the popup for type assertions.
func (h *Popup) Model() popup.Popup { return h.p }

// Press sends each key in turn and returns the command from the last one.
func (h *Popup) Press(keys ...string) tea.Cmd {
	var cmd tea.Cmd
	for _, k := range keys {
		h.p, cmd = h.p.Update(Key(k))
	}
	return cmd
}

// Type sends every rune of s as its own key press.
func (h *Popup) Type(s string) {
	for _, r := range s {
		h.Press(string(r))
	}
}

// Text is the rendered view without styling.
func (h *Popup) Text() string {
	return StripANSI(h.p.View())
}

// Shows fails the test unless every want appears in the view.
func (h *Popup) Shows(want ...string) {
	h.t.Helper()
	text := h.Text()
	for _, w := range want {
		if !strings.Contains(text, w) {
			h.t.Errorf("view does not contain %q:\n%s", w, text)
		}
	}
}

// Result runs cmd and returns the action it reports. It fails the test if
// cmd is nil or produces anything else.
func Result(t testing.TB, cmd tea.Cmd) action.Action {
	t.Helper()
	if cmd == nil {
		t.Fatal("expected a command, got nil")
	}
	msg, ok := cmd().(action.Msg)
	if !ok {
		t.Fatalf("expected action.Msg, got %T", msg)
	}
	return msg.Action
}
