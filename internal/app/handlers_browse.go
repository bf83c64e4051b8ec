package app

import (
	"errors"
	"log/slog"
	"slices"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/flicks/internal/app/handler"
	"github.com/llehouerou/flicks/internal/catalog"
	"github.com/llehouerou/flicks/internal/embed"
	"github.com/llehouerou/flicks/internal/keymap"
	"github.com/llehouerou/flicks/internal/ui/headerbar"
	"github.com/llehouerou/flicks/internal/ui/layout"
	"github.com/llehouerou/flicks/internal/ui/render"
)

// trailerView is the modal shown while a trailer plays in the widget.
type trailerView struct {
	titleID string
	name    string
	videoID string
	mount   string
}

// handleBrowseKey handles landing page keys.
func (m *Model) handleBrowseKey(key string) handler.Result {
	nav := m.Navigation
	switch m.BrowseKeys.Resolve(key) {
	case keymap.ActionMoveUp:
		nav.MoveRow(-1, m.visibleRows())
	case keymap.ActionMoveDown:
		nav.MoveRow(1, m.visibleRows())
	case keymap.ActionMoveLeft:
		nav.MoveCard(-1, layout.CardsPerRow(m.width))
	case keymap.ActionMoveRight:
		nav.MoveCard(1, layout.CardsPerRow(m.width))
	case keymap.ActionSelect:
		if t, ok := nav.Selected(); ok {
			return handler.Handled(m.openTitle(t))
		}
	case keymap.ActionTrailer:
		if t, ok := nav.Selected(); ok {
			return handler.Handled(m.openTrailer(t))
		}
	case keymap.ActionToggleList:
		return handler.Handled(m.toggleMyList())
	case keymap.ActionToggleLike:
		return handler.Handled(m.toggleLike())
	case keymap.ActionMoreInfo:
		return handler.Handled(m.Toasts.Show("More info coming soon!"))
	case keymap.ActionNextTab:
		m.switchTab(nav.Tab().Next())
	case keymap.ActionPrevTab:
		m.switchTab(nav.Tab().Prev())
	case keymap.ActionHelp:
		return handler.Handled(m.Popups.ShowHelp([]string{"global", "browse"}))
	case keymap.ActionSearch:
		return handler.Handled(m.Popups.ShowSearch(nav.Query()))
	default:
		if key == "esc" && nav.Query() != "" {
			return handler.Handled(m.search(""))
		}
		return handler.NotHandled
	}
	return handler.HandledNoCmd
}

func (m Model) visibleRows() int {
	return layout.VisibleRows(m.height, m.Navigation.ShowsHero())
}

func (m *Model) switchTab(t headerbar.Tab) {
	m.Navigation.SetTab(t)
	m.Navigation.Rebuild(m.Catalog, m.MyList)
}

// openTitle plays a title locally when it has media, falls back to its
// trailer, and otherwise shows its details.
func (m *Model) openTitle(t *catalog.Title) tea.Cmd {
	if t.Playable() {
		ref, _ := t.First()
		return m.openWatch(t, ref)
	}
	if t.Trailer != "" {
		return m.openTrailer(t)
	}
	m.showInfo(t)
	return nil
}

func (m *Model) showInfo(t *catalog.Title) {
	parts := []string{t.Meta()}
	if syn := render.Wrap(t.Synopsis, 56, 6); len(syn) > 0 {
		parts = append(parts, strings.Join(syn, "\n"))
	}
	if added := t.AddedLabel(m.now()); added != "" {
		parts = append(parts, added)
	}
	m.Popups.ShowInfo(t.Name, strings.Join(parts, "\n\n"))
}

func (m *Model) toggleMyList() tea.Cmd {
	t, ok := m.Navigation.Selected()
	if !ok {
		return nil
	}
	msg := "Added to My List"
	if i := slices.Index(m.MyList, t.ID); i >= 0 {
		m.MyList = slices.Delete(m.MyList, i, i+1)
		msg = "Removed from My List"
	} else {
		m.MyList = append(m.MyList, t.ID)
	}
	if m.Navigation.Tab() == headerbar.TabMyList && m.Navigation.Query() == "" {
		m.Navigation.Rebuild(m.Catalog, m.MyList)
	}
	return m.Toasts.Show(msg)
}

func (m *Model) toggleLike() tea.Cmd {
	t, ok := m.Navigation.Selected()
	if !ok {
		return nil
	}
	if m.Liked[t.ID] {
		delete(m.Liked, t.ID)
		return m.Toasts.Show("Rating removed")
	}
	m.Liked[t.ID] = true
	return m.Toasts.Show("Thanks for rating!")
}

// --- Trailers ---

func (m *Model) openTrailer(t *catalog.Title) tea.Cmd {
	if m.Trailers == nil || t.Trailer == "" {
		return m.Toasts.Show("No trailer available")
	}
	if m.trailerPending {
		return nil
	}
	m.trailerPending = true
	return OpenTrailerCmd(m.Trailers, t.ID, t.Trailer)
}

func (m *Model) handleTrailerOpened(msg TrailerOpenedMsg) tea.Cmd {
	m.trailerPending = false
	switch {
	case errors.Is(msg.Err, embed.ErrUnknownID):
		slog.Info("app: trailer has no content id", "title", msg.TitleID)
		return nil
	case msg.Err != nil:
		slog.Warn("app: trailer failed", "title", msg.TitleID, "error", msg.Err)
		m.trailer = nil
		return m.Toasts.Show(embed.Message(msg.Err))
	}

	name := msg.TitleID
	if t, ok := m.Catalog.Title(msg.TitleID); ok {
		name = t.Name
	}
	m.trailer = &trailerView{
		titleID: msg.TitleID,
		name:    name,
		videoID: m.Trailers.VideoID(),
		mount:   m.Trailers.MountPoint(),
	}
	return nil
}

// handleTrailerKey closes the trailer modal on esc or enter. The modal
// swallows every other key except quit.
func (m *Model) handleTrailerKey(key string) handler.Result {
	if m.trailer == nil {
		return handler.NotHandled
	}
	switch key {
	case "esc", "enter":
		m.closeTrailer()
		return handler.HandledNoCmd
	case "q", "ctrl+c":
		return handler.NotHandled
	}
	return handler.HandledNoCmd
}

func (m *Model) closeTrailer() {
	m.Trailers.Close()
	m.trailer = nil
}

// --- Mouse ---

func (m *Model) handleBrowseMouse(msg tea.MouseMsg) tea.Cmd {
	if m.trailer != nil || msg.Action != tea.MouseActionPress {
		return nil
	}
	nav := m.Navigation
	switch msg.Button { //nolint:exhaustive // wheel and left button only
	case tea.MouseButtonWheelUp:
		nav.MoveRow(-1, m.visibleRows())
	case tea.MouseButtonWheelDown:
		nav.MoveRow(1, m.visibleRows())
	case tea.MouseButtonLeft:
		row, card, ok := layout.CardAt(msg.X, msg.Y, m.width, m.height, nav.ShowsHero())
		if !ok {
			return nil
		}
		prevRow, prevCard := nav.Cursor()
		if !nav.SelectVisible(row, card) {
			return nil
		}
		// A click on the focused card opens it.
		if r, c := nav.Cursor(); r == prevRow && c == prevCard {
			if t, ok := nav.Selected(); ok {
				return m.openTitle(t)
			}
		}
	}
	return nil
}
