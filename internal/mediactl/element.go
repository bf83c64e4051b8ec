// Package mediactl drives a playable media element from user input and keeps
// a control surface in sync with the element's lifecycle.
//
// A Controller binds to exactly one Element and one Display. It owns the
// transient UI state (idle-hide timer, scrub drag, volume memory, overlays)
// and never polls the element: callers feed it input and lifecycle events.
package mediactl

import "time"

// Element is the playable media the controller drives.
//
// Play and Pause are requests; the element reports what actually happened
// through lifecycle events (see the On* methods on Controller).
type Element interface {
	Position() time.Duration
	// Duration returns the media length, or a value <= 0 while unknown.
	Duration() time.Duration
	Paused() bool
	Play() error
	Pause()
	SetPosition(pos time.Duration)
	Volume() float64
	SetVolume(level float64)
	Muted() bool
	SetMuted(muted bool)
}

// Display is the container that can be put in fullscreen.
type Display interface {
	IsFullscreen() bool
	RequestFullscreen() error
	ExitFullscreen() error
}

// Bar is the scrub bar bounding box, in terminal cells.
type Bar struct {
	Row   int
	Left  int
	Width int
}

// Fraction converts an x coordinate into a position along the bar, clamped
// to [0,1]. Returns false if the bar has no width yet.
func (b Bar) Fraction(x int) (float64, bool) {
	if b.Width <= 0 {
		return 0, false
	}
	f := float64(x-b.Left) / float64(b.Width)
	return clamp(f, 0, 1), true
}

// Contains reports whether the cell at (x, y) is on the bar.
func (b Bar) Contains(x, y int) bool {
	return y == b.Row && x >= b.Left && x < b.Left+b.Width
}

// HandleX returns the column of the scrub handle for a fill ratio.
func (b Bar) HandleX(ratio float64) int {
	if b.Width <= 0 {
		return b.Left
	}
	return b.Left + min(int(float64(b.Width)*clamp(ratio, 0, 1)), b.Width-1)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
