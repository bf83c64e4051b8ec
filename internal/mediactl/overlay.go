package mediactl

import (
	"slices"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// OverlayKind identifies a transient panel drawn over the media.
type OverlayKind int

const (
	OverlaySeek OverlayKind = iota
	OverlayCountdown
	OverlayShortcuts
)

func (k OverlayKind) String() string {
	switch k {
	case OverlaySeek:
		return "seek"
	case OverlayCountdown:
		return "countdown"
	case OverlayShortcuts:
		return "shortcuts"
	default:
		return "unknown"
	}
}

// Overlay is a declarative description of a transient panel.
type Overlay struct {
	Kind  OverlayKind
	Text  string // seek indicator label
	Count int    // countdown value
}

// ShowOverlay displays o, replacing any overlay of the same kind. A positive
// d removes it after d; zero keeps it until dismissed.
func (c *Controller) ShowOverlay(o Overlay, d time.Duration) tea.Cmd {
	c.overlays[o.Kind] = o
	t := c.overlayTask(o.Kind)
	if d <= 0 {
		t.cancel()
		return nil
	}
	return t.arm(c, purposeOverlay, o.Kind, d)
}

// DismissOverlay removes the overlay of the given kind, if any.
func (c *Controller) DismissOverlay(kind OverlayKind) {
	delete(c.overlays, kind)
	c.overlayTask(kind).cancel()
	if kind == OverlayCountdown {
		c.countdown.cancel()
	}
}

// Overlay returns the active overlay of the given kind.
func (c *Controller) Overlay(kind OverlayKind) (Overlay, bool) {
	o, ok := c.overlays[kind]
	return o, ok
}

// Overlays returns the active overlays ordered by kind.
func (c *Controller) Overlays() []Overlay {
	out := make([]Overlay, 0, len(c.overlays))
	for _, o := range c.overlays {
		out = append(out, o)
	}
	slices.SortFunc(out, func(a, b Overlay) int { return int(a.Kind) - int(b.Kind) })
	return out
}

func (c *Controller) overlayTask(kind OverlayKind) *task {
	t, ok := c.overlayTasks[kind]
	if !ok {
		t = &task{}
		c.overlayTasks[kind] = t
	}
	return t
}
