// Package popupctl owns the modal popups of the app: the shortcuts
// reference, the search box, the title info dialog and error dialogs.
package popupctl

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/flicks/internal/ui/helpbindings"
	"github.com/llehouerou/flicks/internal/ui/overlay"
	"github.com/llehouerou/flicks/internal/ui/popup"
	"github.com/llehouerou/flicks/internal/ui/textinput"
)

// dialog is a read-only popup closed by any key.
type dialog struct {
	title, body, footer string
}

type Manager struct {
	help   *helpbindings.Model
	search *textinput.Model
	info   *dialog
	err    *dialog

	width, height int
}

func New() *Manager {
	return &Manager{}
}

// SetSize resizes open popups along with the screen.
func (p *Manager) SetSize(width, height int) {
	p.width, p.height = width, height
	if p.help != nil {
		p.help.SetSize(p.helpSize())
	}
	if p.search != nil {
		p.search.SetSize(width, height)
	}
}

// The shortcuts reference takes a fixed share of the screen; the others
// size to their content.
func (p *Manager) helpSize() (int, int) {
	return p.width * popup.SizeLarge.WidthPct / 100, p.height * popup.SizeLarge.HeightPct / 100
}

func (p *Manager) IsVisible(t Type) bool {
	switch t {
	case Help:
		return p.help != nil
	case Search:
		return p.search != nil
	case Info:
		return p.info != nil
	case Error:
		return p.err != nil
	case None:
	}
	return false
}

// ActivePopup returns the popup that receives keys, or None.
func (p *Manager) ActivePopup() Type {
	for i := len(stacking) - 1; i >= 0; i-- {
		if p.IsVisible(stacking[i]) {
			return stacking[i]
		}
	}
	return None
}

func (p *Manager) Hide(t Type) {
	switch t {
	case Help:
		p.help = nil
	case Search:
		p.search = nil
	case Info:
		p.info = nil
	case Error:
		p.err = nil
	case None:
	}
}

// ShowHelp opens the shortcuts reference for the given binding contexts.
func (p *Manager) ShowHelp(contexts []string) tea.Cmd {
	help := helpbindings.New()
	help.SetContexts(contexts)
	help.SetSize(p.helpSize())
	p.help = &help
	return help.Init()
}

// ShowSearch opens the search box with the current query.
func (p *Manager) ShowSearch(query string) tea.Cmd {
	in := textinput.New()
	in.Open("Search", query, p.width, p.height)
	p.search = &in
	return in.Init()
}

func (p *Manager) ShowInfo(title, body string) {
	p.info = &dialog{title: title, body: body, footer: "Press any key to close"}
}

func (p *Manager) ShowError(msg string) {
	p.err = &dialog{title: "Error", body: msg, footer: "Press any key to dismiss"}
}

// ErrorMsg returns the open error text, or "".
func (p *Manager) ErrorMsg() string {
	if p.err == nil {
		return ""
	}
	return p.err.body
}

// InTextInput reports whether the search box has the keyboard.
func (p *Manager) InTextInput() bool {
	return p.ActivePopup() == Search
}

// HandleKey gives a key to the active popup. Dialogs close on any key.
// Reports whether a popup took the key.
func (p *Manager) HandleKey(msg tea.KeyMsg) (bool, tea.Cmd) {
	var cmd tea.Cmd
	switch t := p.ActivePopup(); t {
	case None:
		return false, nil
	case Error, Info:
		p.Hide(t)
	case Help:
		_, cmd = p.help.Update(msg)
	case Search:
		_, cmd = p.search.Update(msg)
	}
	return true, cmd
}

// Update forwards non-key messages, such as cursor blinks, to the search box.
func (p *Manager) Update(msg tea.Msg) tea.Cmd {
	if p.search == nil {
		return nil
	}
	_, cmd := p.search.Update(msg)
	return cmd
}

// RenderOverlay draws every open popup over base, bottom to top.
func (p *Manager) RenderOverlay(base string) string {
	for _, t := range stacking {
		var box string
		switch t {
		case Info:
			box = p.renderDialog(p.info)
		case Error:
			box = p.renderDialog(p.err)
		case Search:
			if p.search != nil {
				box = popup.RenderBordered(p.search.View(), p.width, p.height, popup.SizeConfig{})
			}
		case Help:
			if p.help != nil {
				box = popup.RenderBordered(p.help.View(), p.width, p.height, popup.SizeLarge)
			}
		case None:
		}
		if box != "" {
			base = overlay.Compose(base, box, p.width)
		}
	}
	return base
}

func (p *Manager) renderDialog(d *dialog) string {
	if d == nil {
		return ""
	}
	box := popup.New()
	box.Title, box.Content, box.Footer = d.title, d.body, d.footer
	return box.Render(p.width, p.height)
}
