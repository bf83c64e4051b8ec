package app

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/flicks/internal/player"
)

// Message category interfaces for type-based routing in Update().
// External messages (from other packages) cannot implement these interfaces,
// so they are handled separately in the Update() switch.

// WatchMessage is implemented by messages that drive the watch view.
type WatchMessage interface {
	tea.Msg
	watchMessage()
}

// BrowseMessage is implemented by messages that drive the landing page.
type BrowseMessage interface {
	tea.Msg
	browseMessage()
}

// TickMsg is sent periodically while the watch view is open to refresh the
// time labels and the scrub fill.
type TickMsg time.Time

func (TickMsg) watchMessage() {}

// PlayerEventMsg wraps a lifecycle event from the media element.
type PlayerEventMsg player.Event

func (PlayerEventMsg) watchMessage() {}

// SeasonLoadedMsg is sent once a season picked in the season picker is
// ready to browse.
type SeasonLoadedMsg struct {
	TitleID string
	Season  int
}

func (SeasonLoadedMsg) watchMessage() {}

// TrailerOpenedMsg reports the outcome of handing a trailer to the widget.
type TrailerOpenedMsg struct {
	TitleID string
	Err     error
}

func (TrailerOpenedMsg) browseMessage() {}

// PosterReadyMsg reports that the hero artwork was prepared, or why not.
type PosterReadyMsg struct {
	Source string
	Err    error
}

func (PosterReadyMsg) browseMessage() {}

// StderrMsg carries a line written to stderr by a C library.
type StderrMsg string
