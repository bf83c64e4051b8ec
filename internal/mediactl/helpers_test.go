package mediactl

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// recorder is a Scheduler that records delays and hands back the
// scheduled message as a command result, without waiting.
type recorder struct {
	delays []time.Duration
}

func (r *recorder) schedule(d time.Duration, fn func(time.Time) tea.Msg) tea.Cmd {
	r.delays = append(r.delays, d)
	return func() tea.Msg { return fn(time.Now()) }
}

func (r *recorder) last() time.Duration {
	if len(r.delays) == 0 {
		return 0
	}
	return r.delays[len(r.delays)-1]
}

func newTestController(el *MockElement, opts Options) (*Controller, *MockDisplay, *recorder) {
	disp := &MockDisplay{}
	c := New(el, disp, opts)
	rec := &recorder{}
	c.SetScheduler(rec.schedule)
	return c, disp, rec
}

// collect runs cmd and flattens batches into their messages.
func collect(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, collect(c)...)
		}
		return out
	}
	if msg == nil {
		return nil
	}
	return []tea.Msg{msg}
}

// deliver feeds every message produced by cmd back into the controller and
// returns the messages the controller did not consume.
func deliver(c *Controller, cmd tea.Cmd) []tea.Msg {
	var rest []tea.Msg
	for _, msg := range collect(cmd) {
		if _, ok := msg.(timerMsg); ok {
			rest = append(rest, deliver(c, c.Update(msg))...)
			continue
		}
		rest = append(rest, msg)
	}
	return rest
}

// timers returns only the controller's scheduled messages in cmd.
func timers(cmd tea.Cmd) []timerMsg {
	var out []timerMsg
	for _, msg := range collect(cmd) {
		if tm, ok := msg.(timerMsg); ok {
			out = append(out, tm)
		}
	}
	return out
}
