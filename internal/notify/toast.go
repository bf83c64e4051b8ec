package notify

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// Toast timings.
const (
	EnterDuration   = 150 * time.Millisecond
	VisibleDuration = 3 * time.Second
	ExitDuration    = 300 * time.Millisecond
)

// Phase is where a toast is in its show/hide cycle.
type Phase int

const (
	PhaseEntering Phase = iota
	PhaseVisible
	PhaseLeaving
)

func (p Phase) String() string {
	switch p {
	case PhaseEntering:
		return "entering"
	case PhaseVisible:
		return "visible"
	case PhaseLeaving:
		return "leaving"
	default:
		return "unknown"
	}
}

// Toast is a single transient message.
type Toast struct {
	ID      int64
	Message string
	Phase   Phase
}

// Scheduler turns a delayed message into a command; tea.Tick in production.
type Scheduler func(d time.Duration, fn func(time.Time) tea.Msg) tea.Cmd

// toastMsg advances toast ID to the phase after the one it was scheduled in.
type toastMsg struct {
	ID    int64
	Phase Phase
}

var lastToastID int64

// Toasts holds at most one toast. Showing a new one drops the current one
// immediately.
type Toasts struct {
	current  *Toast
	schedule Scheduler
}

// NewToasts creates an empty toast surface.
func NewToasts() *Toasts {
	return &Toasts{schedule: tea.Tick}
}

// SetScheduler replaces the scheduler used for phase changes.
func (t *Toasts) SetScheduler(s Scheduler) {
	t.schedule = s
}

// Show replaces any current toast with msg.
func (t *Toasts) Show(msg string) tea.Cmd {
	id := atomic.AddInt64(&lastToastID, 1)
	t.current = &Toast{ID: id, Message: msg, Phase: PhaseEntering}
	return t.after(EnterDuration, id, PhaseEntering)
}

// Current returns the toast on screen, if any.
func (t *Toasts) Current() (Toast, bool) {
	if t.current == nil {
		return Toast{}, false
	}
	return *t.current, true
}

// Dismiss removes the current toast now.
func (t *Toasts) Dismiss() {
	t.current = nil
}

// Update advances the current toast. Messages for replaced toasts are
// ignored.
func (t *Toasts) Update(msg tea.Msg) tea.Cmd {
	tm, ok := msg.(toastMsg)
	if !ok || t.current == nil || tm.ID != t.current.ID || tm.Phase != t.current.Phase {
		return nil
	}
	switch t.current.Phase {
	case PhaseEntering:
		t.current.Phase = PhaseVisible
		return t.after(VisibleDuration, tm.ID, PhaseVisible)
	case PhaseVisible:
		t.current.Phase = PhaseLeaving
		return t.after(ExitDuration, tm.ID, PhaseLeaving)
	default:
		t.current = nil
		return nil
	}
}

func (t *Toasts) after(d time.Duration, id int64, p Phase) tea.Cmd {
	return t.schedule(d, func(time.Time) tea.Msg { return toastMsg{ID: id, Phase: p} })
}
