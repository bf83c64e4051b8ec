package mediactl

import (
	"fmt"
	"log/slog"
	"math"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/flicks/internal/keymap"
)

// PlayNextMsg asks the owner to advance to the next item. It is emitted
// exactly once per finished countdown or confirmation.
type PlayNextMsg struct {
	ID int
}

// Controller mediates between user input, a media element and the control
// surface. It is not safe for concurrent use; drive it from the UI loop.
type Controller struct {
	id        int
	el        Element
	display   Display
	opts      Options
	schedule  Scheduler
	keys      *keymap.Resolver
	countKeys *keymap.Resolver

	state   State
	surface Surface
	bar     Bar

	idle         task
	countdown    task
	overlays     map[OverlayKind]Overlay
	overlayTasks map[OverlayKind]*task
}

// New binds a controller to an element and a display.
func New(el Element, display Display, opts Options) *Controller {
	c := &Controller{
		id:           nextID(),
		el:           el,
		display:      display,
		opts:         opts.withDefaults(),
		schedule:     tea.Tick,
		keys:         keymap.ResolverFor("player"),
		countKeys:    keymap.ResolverFor("countdown"),
		overlays:     make(map[OverlayKind]Overlay),
		overlayTasks: make(map[OverlayKind]*task),
	}
	c.state.Playing = !el.Paused()
	c.state.Volume = clamp(el.Volume(), 0, 1)
	c.state.Muted = el.Muted()
	c.state.PreviousVolume = c.state.Volume
	if c.state.PreviousVolume == 0 {
		c.state.PreviousVolume = c.opts.FallbackVolume
	}
	c.state.ControlsVisible = true
	c.surface.Fullscreen = display != nil && display.IsFullscreen()
	c.syncSurface()
	return c
}

// SetScheduler replaces the scheduler used for timed tasks.
func (c *Controller) SetScheduler(s Scheduler) {
	c.schedule = s
}

// ID returns the controller's instance id.
func (c *Controller) ID() int { return c.id }

// State returns a copy of the playback UI state.
func (c *Controller) State() State { return c.state }

// Surface returns a copy of the control-surface visuals.
func (c *Controller) Surface() Surface { return c.surface }

// Options returns the effective options.
func (c *Controller) Options() Options { return c.opts }

// SetBar records where the scrub bar is drawn.
func (c *Controller) SetBar(b Bar) { c.bar = b }

// Bar returns the scrub bar geometry.
func (c *Controller) Bar() Bar { return c.bar }

// Init shows the controls, as a freshly mounted view does.
func (c *Controller) Init() tea.Cmd {
	return c.ShowControls()
}

// Update handles the controller's own scheduled messages. Messages that
// belong to another controller are ignored.
func (c *Controller) Update(msg tea.Msg) tea.Cmd {
	tm, ok := msg.(timerMsg)
	if !ok || tm.id != c.id {
		return nil
	}
	switch tm.purpose {
	case purposeIdleHide:
		if c.idle.fire(tm) && c.state.Playing {
			c.setControlsVisible(false)
		}
	case purposeCountdown:
		if c.countdown.fire(tm) {
			return c.tickCountdown()
		}
	case purposeOverlay:
		if c.overlayTask(tm.kind).fire(tm) {
			delete(c.overlays, tm.kind)
		}
	}
	return nil
}

// TogglePlayback starts playback when paused and pauses it otherwise.
// A rejected play request leaves the element paused and is not retried.
func (c *Controller) TogglePlayback() tea.Cmd {
	if c.el.Paused() {
		if err := c.el.Play(); err != nil {
			slog.Debug("mediactl: play request rejected", "error", err)
			return nil
		}
		c.state.Playing = true
	} else {
		c.el.Pause()
		c.state.Playing = false
	}
	c.syncSurface()
	return c.ShowControls()
}

// SeekRelative moves the position by delta, clamped to [0, duration], and
// flashes an indicator. No-op while the duration is unknown.
func (c *Controller) SeekRelative(delta time.Duration) tea.Cmd {
	dur := c.el.Duration()
	if dur <= 0 {
		return nil
	}
	pos := max(min(c.el.Position()+delta, dur), 0)
	c.el.SetPosition(pos)
	c.OnTimeUpdate()
	return c.ShowOverlay(Overlay{Kind: OverlaySeek, Text: seekLabel(delta)}, c.opts.IndicatorDuration)
}

// SeekToFraction moves the position to f*duration, f clamped to [0,1].
// No-op while the duration is unknown or f is NaN.
func (c *Controller) SeekToFraction(f float64) {
	dur := c.el.Duration()
	if dur <= 0 || math.IsNaN(f) {
		return
	}
	c.el.SetPosition(time.Duration(clamp(f, 0, 1) * float64(dur)))
	c.OnTimeUpdate()
}

func seekLabel(delta time.Duration) string {
	secs := int(delta.Abs().Round(time.Second) / time.Second)
	if delta < 0 {
		return fmt.Sprintf("⏪ %ds", secs)
	}
	return fmt.Sprintf("%ds ⏩", secs)
}

// ToggleFullscreen enters fullscreen, or leaves it when already there.
func (c *Controller) ToggleFullscreen() {
	if c.display == nil {
		return
	}
	var err error
	if c.display.IsFullscreen() {
		err = c.display.ExitFullscreen()
	} else {
		err = c.display.RequestFullscreen()
	}
	if err != nil {
		slog.Debug("mediactl: fullscreen request failed", "error", err)
	}
	c.surface.Fullscreen = c.display.IsFullscreen()
}

// FullscreenChanged records a fullscreen change made outside the controller.
func (c *Controller) FullscreenChanged(active bool) {
	c.surface.Fullscreen = active
}

// ShowControls makes the controls visible and, while playing, re-arms the
// idle-hide timer. While paused any pending hide is cancelled.
func (c *Controller) ShowControls() tea.Cmd {
	c.setControlsVisible(true)
	if !c.state.Playing {
		c.idle.cancel()
		return nil
	}
	return c.idle.arm(c, purposeIdleHide, 0, c.opts.IdleHide)
}

func (c *Controller) setControlsVisible(v bool) {
	c.state.ControlsVisible = v
	c.surface.ControlsVisible = v
}

// OnTimeUpdate refreshes the time labels and the scrub fill.
func (c *Controller) OnTimeUpdate() {
	pos, dur := c.el.Position(), c.el.Duration()
	c.surface.Elapsed = FormatDuration(pos)
	if dur <= 0 {
		c.surface.Fill = 0
		c.surface.Remaining = ""
		return
	}
	c.surface.Fill = clamp(float64(pos)/float64(dur)*100, 0, 100)
	c.surface.Remaining = "-" + FormatDuration(max(dur-pos, 0))
}

// OnMetadataLoaded fills in the total duration once it is known.
func (c *Controller) OnMetadataLoaded() {
	if dur := c.el.Duration(); dur > 0 {
		c.surface.Total = FormatDuration(dur)
	}
	c.OnTimeUpdate()
}

// OnPlay handles the element reporting that playback started.
func (c *Controller) OnPlay() tea.Cmd {
	c.state.Playing = true
	c.syncSurface()
	return c.ShowControls()
}

// OnPause handles the element reporting that playback paused.
func (c *Controller) OnPause() tea.Cmd {
	c.state.Playing = false
	c.syncSurface()
	return c.ShowControls()
}

// OnWaiting shows the buffering spinner.
func (c *Controller) OnWaiting() { c.surface.Buffering = true }

// OnCanPlay hides the buffering spinner.
func (c *Controller) OnCanPlay() { c.surface.Buffering = false }

// OnError handles a media error: playback is over and the spinner goes away.
func (c *Controller) OnError() tea.Cmd {
	c.surface.Buffering = false
	return c.OnPause()
}

// syncSurface copies state into the surface.
func (c *Controller) syncSurface() {
	c.state.Volume = clamp(c.el.Volume(), 0, 1)
	c.state.Muted = c.el.Muted()
	c.surface.Playing = c.state.Playing
	c.surface.Volume = c.state.Volume
	c.surface.Muted = c.state.Muted
	c.surface.ControlsVisible = c.state.ControlsVisible
}
