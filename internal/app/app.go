// Package app is the root bubbletea model: the landing page, the trailer
// hand-off and the watch view.
package app

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/flicks/internal/app/navctl"
	"github.com/llehouerou/flicks/internal/app/popupctl"
	"github.com/llehouerou/flicks/internal/catalog"
	"github.com/llehouerou/flicks/internal/config"
	"github.com/llehouerou/flicks/internal/embed"
	"github.com/llehouerou/flicks/internal/keymap"
	"github.com/llehouerou/flicks/internal/mediactl"
	"github.com/llehouerou/flicks/internal/mpris"
	"github.com/llehouerou/flicks/internal/notify"
	"github.com/llehouerou/flicks/internal/player"
	"github.com/llehouerou/flicks/internal/ui/poster"
)

// MediaKeys receives the watch view state for media-key clients.
type MediaKeys interface {
	Publish(s mpris.Snapshot)
}

// Deps are the collaborators the model is built from.
type Deps struct {
	Config   *config.Config
	Catalog  *catalog.Catalog
	Player   player.Interface
	Widget   embed.Widget
	Desktop  *notify.Desktop  // nil disables desktop mirroring
	Posters  *poster.Renderer // nil disables hero artwork
	Stderr   <-chan string    // captured C library output, may be nil
	Schedule mediactl.Scheduler
}

// Model is the application state.
type Model struct {
	Config     *config.Config
	Catalog    *catalog.Catalog
	Player     player.Interface
	Navigation *navctl.Manager
	Popups     *popupctl.Manager
	Toasts     *notify.Toasts
	Trailers   *embed.Session
	Desktop    *notify.Desktop
	Posters    *poster.Renderer
	MediaKeys  MediaKeys

	BrowseKeys *keymap.Resolver
	WatchKeys  *keymap.Resolver

	// My List in the order titles were added, and liked titles. Neither
	// outlives the process.
	MyList []string
	Liked  map[string]bool

	watch          *watchSession
	display        *display
	trailer        *trailerView
	trailerPending bool
	ticking        bool

	stderr   <-chan string
	schedule mediactl.Scheduler
	now      func() time.Time

	width  int
	height int
}

// New creates the model.
func New(d Deps) Model {
	cfg := d.Config
	if cfg == nil {
		cfg = &config.Config{}
	}
	schedule := d.Schedule
	if schedule == nil {
		schedule = tea.Tick
	}

	toasts := notify.NewToasts()
	toasts.SetScheduler(notify.Scheduler(schedule))

	vars := cfg.Embed
	if vars == (embed.PlayerVars{}) {
		vars = embed.DefaultPlayerVars()
	}

	m := Model{
		Config:     cfg,
		Catalog:    d.Catalog,
		Player:     d.Player,
		Navigation: navctl.New(),
		Popups:     popupctl.New(),
		Toasts:     toasts,
		Desktop:    d.Desktop,
		Posters:    d.Posters,
		BrowseKeys: keymap.ResolverFor("browse", "global"),
		WatchKeys:  keymap.ResolverFor("player", "global"),
		Liked:      make(map[string]bool),
		display:    &display{},
		stderr:     d.Stderr,
		schedule:   schedule,
		now:        time.Now,
	}
	if d.Widget != nil {
		m.Trailers = embed.NewSession(d.Widget, vars)
	}
	m.Navigation.Rebuild(m.Catalog, m.MyList)
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.WatchPlayerEvents(), m.WatchStderr())
}

// SetMediaKeys attaches a media-key adapter.
func (m *Model) SetMediaKeys(k MediaKeys) {
	m.MediaKeys = k
}

// Watching reports whether the watch view is open.
func (m Model) Watching() bool {
	return m.watch != nil
}

// display is the terminal-level fullscreen flag: the watch view hides its
// title line and hands the rows to the media area.
type display struct {
	active bool
}

func (d *display) IsFullscreen() bool { return d.active }

func (d *display) RequestFullscreen() error {
	d.active = true
	return nil
}

func (d *display) ExitFullscreen() error {
	d.active = false
	return nil
}
