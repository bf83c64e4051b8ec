package notify

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorder struct {
	delays []time.Duration
}

func (r *recorder) schedule(d time.Duration, fn func(time.Time) tea.Msg) tea.Cmd {
	r.delays = append(r.delays, d)
	return func() tea.Msg { return fn(time.Now()) }
}

func newTestToasts() (*Toasts, *recorder) {
	rec := &recorder{}
	t := NewToasts()
	t.SetScheduler(rec.schedule)
	return t, rec
}

func TestToasts_Lifecycle(t *testing.T) {
	toasts, rec := newTestToasts()

	cmd := toasts.Show("Added to My List")
	cur, ok := toasts.Current()
	require.True(t, ok)
	assert.Equal(t, "Added to My List", cur.Message)
	assert.Equal(t, PhaseEntering, cur.Phase)

	cmd = toasts.Update(cmd())
	cur, _ = toasts.Current()
	assert.Equal(t, PhaseVisible, cur.Phase)

	cmd = toasts.Update(cmd())
	cur, _ = toasts.Current()
	assert.Equal(t, PhaseLeaving, cur.Phase)

	assert.Nil(t, toasts.Update(cmd()))
	_, ok = toasts.Current()
	assert.False(t, ok)

	assert.Equal(t, []time.Duration{EnterDuration, VisibleDuration, ExitDuration}, rec.delays)
}

func TestToasts_AtMostOne(t *testing.T) {
	toasts, _ := newTestToasts()

	first := toasts.Show("Thanks for rating!")
	second := toasts.Show("Rating removed")

	cur, ok := toasts.Current()
	require.True(t, ok)
	assert.Equal(t, "Rating removed", cur.Message)

	// Timers of the replaced toast do nothing.
	assert.Nil(t, toasts.Update(first()))
	cur, _ = toasts.Current()
	assert.Equal(t, PhaseEntering, cur.Phase)

	assert.NotNil(t, toasts.Update(second()))
	cur, _ = toasts.Current()
	assert.Equal(t, PhaseVisible, cur.Phase)
}

func TestToasts_DuplicateTimerIgnored(t *testing.T) {
	toasts, _ := newTestToasts()
	cmd := toasts.Show("x")
	msg := cmd()

	toasts.Update(msg)
	assert.Nil(t, toasts.Update(msg), "phase already advanced")
	cur, _ := toasts.Current()
	assert.Equal(t, PhaseVisible, cur.Phase)
}

func TestToasts_Dismiss(t *testing.T) {
	toasts, _ := newTestToasts()
	cmd := toasts.Show("x")
	toasts.Dismiss()
	_, ok := toasts.Current()
	assert.False(t, ok)
	assert.Nil(t, toasts.Update(cmd()))
}

func TestToasts_IgnoresForeignMessages(t *testing.T) {
	toasts, _ := newTestToasts()
	toasts.Show("x")
	assert.Nil(t, toasts.Update(tea.KeyMsg{}))
}

func TestPhase_String(t *testing.T) {
	assert.Equal(t, "entering", PhaseEntering.String())
	assert.Equal(t, "visible", PhaseVisible.String())
	assert.Equal(t, "leaving", PhaseLeaving.String())
	assert.Equal(t, "unknown", Phase(9).String())
}
