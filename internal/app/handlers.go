package app

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/flicks/internal/app/handler"
	"github.com/llehouerou/flicks/internal/app/navctl"
	"github.com/llehouerou/flicks/internal/app/popupctl"
	"github.com/llehouerou/flicks/internal/ui/action"
	"github.com/llehouerou/flicks/internal/ui/helpbindings"
	"github.com/llehouerou/flicks/internal/ui/textinput"
)

// handleKey routes a key press: popups first, then the active view.
func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	key := msg.String()

	if m.Popups.ActivePopup() != popupctl.None {
		// Esc still reaches the player while the search box has focus.
		if m.watch != nil && m.Popups.InTextInput() {
			if ok, cmd := m.watch.ctrl.HandleKey(key, true); ok {
				return cmd
			}
		}
		_, cmd := m.Popups.HandleKey(msg)
		return cmd
	}

	if m.Navigation.ViewMode() == navctl.ViewWatch && m.watch != nil {
		return m.handleWatchKey(msg)
	}
	_, cmd := handler.Chain(key,
		m.handleTrailerKey,
		m.handleBrowseKey,
		m.handleQuitKeys,
	)
	return cmd
}

// handleQuitKeys handles q and ctrl+c.
func (m *Model) handleQuitKeys(key string) handler.Result {
	if key != "q" && key != "ctrl+c" {
		return handler.NotHandled
	}
	m.closeWatch()
	if m.Trailers != nil {
		m.Trailers.Close()
	}
	return handler.Handled(tea.Quit)
}

// handleMouse routes mouse events to the active view. Popups are modal and
// swallow them.
func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if m.Popups.ActivePopup() != popupctl.None {
		return nil
	}
	if m.watch != nil {
		return m.handleWatchMouse(msg)
	}
	return m.handleBrowseMouse(msg)
}

// handleAction handles results from popup components.
func (m *Model) handleAction(msg action.Msg) tea.Cmd {
	switch a := msg.Action.(type) {
	case helpbindings.Close:
		m.Popups.Hide(popupctl.Help)
		return nil
	case textinput.Result:
		m.Popups.Hide(popupctl.Search)
		if a.Canceled {
			return nil
		}
		return m.search(a.Query)
	}
	return nil
}

// search filters the grid by q and shows the results on the landing page.
func (m *Model) search(q string) tea.Cmd {
	q = strings.TrimSpace(q)
	m.closeWatch()
	m.Navigation.SetQuery(q)
	m.Navigation.Rebuild(m.Catalog, m.MyList)
	if q == "" {
		return nil
	}
	return m.Toasts.Show(fmt.Sprintf("Searching for %q...", q))
}
