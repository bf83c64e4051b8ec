package mediactl

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// Scheduler turns a delayed message into a command. tea.Tick is the
// production scheduler; tests substitute one that records the delay.
type Scheduler func(d time.Duration, fn func(time.Time) tea.Msg) tea.Cmd

var lastID int64

func nextID() int {
	return int(atomic.AddInt64(&lastID, 1))
}

type purpose int

const (
	purposeIdleHide purpose = iota
	purposeCountdown
	purposeOverlay
)

// timerMsg is delivered when a scheduled task comes due. It is ignored
// unless it belongs to this controller and its generation is still current.
type timerMsg struct {
	id      int
	purpose purpose
	kind    OverlayKind
	gen     int
}

// task is a single-owner scheduled job. Arming always invalidates the
// previous arming, so two pending timers for the same purpose can never
// both fire.
type task struct {
	gen     int
	pending bool
}

func (t *task) arm(c *Controller, p purpose, kind OverlayKind, d time.Duration) tea.Cmd {
	t.gen++
	t.pending = true
	msg := timerMsg{id: c.id, purpose: p, kind: kind, gen: t.gen}
	return c.schedule(d, func(time.Time) tea.Msg { return msg })
}

func (t *task) cancel() {
	t.gen++
	t.pending = false
}

// fire reports whether msg is the live arming and consumes it.
func (t *task) fire(msg timerMsg) bool {
	if !t.pending || msg.gen != t.gen {
		return false
	}
	t.pending = false
	return true
}
