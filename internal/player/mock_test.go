package player

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mockEvents(m *Mock) []EventKind {
	var kinds []EventKind
	for {
		select {
		case e := <-m.Events():
			kinds = append(kinds, e.Kind)
		default:
			return kinds
		}
	}
}

func TestMock_Lifecycle(t *testing.T) {
	m := NewMock()
	assert.ErrorIs(t, m.Play(), ErrNothingLoaded)

	m.SetDuration(time.Minute)
	require.NoError(t, m.Load("/m/pilot.mp3"))
	assert.Equal(t, "pilot", m.Title())
	require.NoError(t, m.Play())
	m.Pause()
	m.SimulateEnded()

	assert.Equal(t, []EventKind{
		EventWaiting, EventMetadata, EventCanPlay, EventPlay, EventPause, EventEnded,
	}, mockEvents(m))
	assert.Equal(t, time.Minute, m.Position())
	assert.True(t, m.Paused())
}

func TestMock_SetPositionClamps(t *testing.T) {
	m := NewMock()
	m.SetDuration(10 * time.Second)
	m.SetPosition(time.Minute)
	assert.Equal(t, 10*time.Second, m.Position())
	m.SetPosition(-time.Second)
	assert.Equal(t, time.Duration(0), m.Position())
	assert.Len(t, m.Seeks(), 2)
}

func TestMock_PlayDenied(t *testing.T) {
	m := NewMock()
	require.NoError(t, m.Load("a.wav"))
	m.SetPlayError(ErrDenied)
	assert.ErrorIs(t, m.Play(), ErrDenied)
	assert.True(t, m.Paused())
}
