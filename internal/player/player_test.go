package player

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/wav"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeSink records queued streamers instead of opening an audio device.
type fakeSink struct {
	rate    beep.SampleRate
	initErr error
	queued  []beep.Streamer
	cleared int
}

func (f *fakeSink) Init(rate beep.SampleRate) (beep.SampleRate, error) {
	if f.initErr != nil {
		return 0, f.initErr
	}
	if f.rate == 0 {
		f.rate = rate
	}
	return f.rate, nil
}

func (f *fakeSink) Play(s beep.Streamer) { f.queued = append(f.queued, s) }
func (f *fakeSink) Clear()               { f.cleared++; f.queued = nil }
func (f *fakeSink) Lock()                {}
func (f *fakeSink) Unlock()              {}

// drain streams the last queued streamer until it reports exhaustion.
func (f *fakeSink) drain(t *testing.T) {
	t.Helper()
	require.NotEmpty(t, f.queued)
	s := f.queued[len(f.queued)-1]
	buf := make([][2]float64, 4096)
	for range 1000 {
		if _, ok := s.Stream(buf); !ok {
			return
		}
	}
	t.Fatal("stream never ended")
}

const testRate = beep.SampleRate(8000)

// writeWAV creates a silent stereo WAV of the given length.
func writeWAV(t *testing.T, name string, d time.Duration) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	format := beep.Format{SampleRate: testRate, NumChannels: 2, Precision: 2}
	require.NoError(t, wav.Encode(f, beep.Silence(testRate.N(d)), format))
	return path
}

func drainEvents(p *Player) []EventKind {
	var kinds []EventKind
	for {
		select {
		case e := <-p.Events():
			kinds = append(kinds, e.Kind)
		default:
			return kinds
		}
	}
}

func TestPlay_NothingLoaded(t *testing.T) {
	p := newWithSink(&fakeSink{})
	err := p.Play()
	require.ErrorIs(t, err, ErrNothingLoaded)
	assert.True(t, p.Paused())
	assert.Empty(t, drainEvents(p))
}

func TestLoad(t *testing.T) {
	path := writeWAV(t, "pilot.wav", 2*time.Second)
	p := newWithSink(&fakeSink{})

	require.NoError(t, p.Load(path))
	assert.Equal(t, []EventKind{EventWaiting, EventMetadata, EventCanPlay}, drainEvents(p))
	assert.Equal(t, Paused, p.State())
	assert.True(t, p.Paused())
	assert.Equal(t, 2*time.Second, p.Duration())
	assert.Equal(t, time.Duration(0), p.Position())
	assert.Equal(t, "pilot", p.Title())
	assert.Equal(t, "WAV", p.Info().Format)
}

func TestLoad_Unsupported(t *testing.T) {
	p := newWithSink(&fakeSink{})
	err := p.Load("movie.mkv")
	require.Error(t, err)
	assert.Equal(t, []EventKind{EventWaiting, EventError}, drainEvents(p))
	assert.Equal(t, time.Duration(0), p.Duration())
}

func TestLoad_SinkFailure(t *testing.T) {
	path := writeWAV(t, "a.wav", time.Second)
	p := newWithSink(&fakeSink{initErr: errors.New("no device")})
	err := p.Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no device")
	assert.ErrorIs(t, p.Play(), ErrNothingLoaded)
}

func TestLoad_EventsCarryLoadID(t *testing.T) {
	out := &fakeSink{}
	p := newWithSink(out)
	assert.Zero(t, p.LoadID())

	require.NoError(t, p.Load(writeWAV(t, "a.wav", time.Second)))
	require.NoError(t, p.Play())
	out.drain(t)
	first := p.LoadID()

	require.Error(t, p.Load("b.mkv"))
	assert.Equal(t, first+1, p.LoadID())
	assert.ErrorIs(t, p.Play(), ErrNothingLoaded, "a failed load still closes the old file")

	var loads []uint64
	for len(p.Events()) > 0 {
		loads = append(loads, (<-p.Events()).Load)
	}
	// waiting, metadata, canplay, play, ended from the first file; waiting,
	// error from the second.
	assert.Equal(t, []uint64{first, first, first, first, first, first + 1, first + 1}, loads)
}

func TestPlayPause(t *testing.T) {
	out := &fakeSink{}
	p := newWithSink(out)
	require.NoError(t, p.Load(writeWAV(t, "a.wav", time.Second)))
	drainEvents(p)

	require.NoError(t, p.Play())
	assert.False(t, p.Paused())
	assert.Len(t, out.queued, 1)

	require.NoError(t, p.Play(), "play while playing is a no-op")
	assert.Len(t, out.queued, 1)

	p.Pause()
	assert.True(t, p.Paused())
	require.NoError(t, p.Play())
	assert.Len(t, out.queued, 1, "resume reuses the queued stream")

	assert.Equal(t, []EventKind{EventPlay, EventPause, EventPlay}, drainEvents(p))
}

func TestSetPosition_Clamps(t *testing.T) {
	p := newWithSink(&fakeSink{})
	require.NoError(t, p.Load(writeWAV(t, "a.wav", 2*time.Second)))

	p.SetPosition(500 * time.Millisecond)
	assert.Equal(t, 500*time.Millisecond, p.Position())

	p.SetPosition(time.Hour)
	assert.Equal(t, 2*time.Second, p.Position())

	p.SetPosition(-time.Second)
	assert.Equal(t, time.Duration(0), p.Position())
}

func TestEnded(t *testing.T) {
	out := &fakeSink{}
	p := newWithSink(out)
	require.NoError(t, p.Load(writeWAV(t, "a.wav", 500*time.Millisecond)))
	require.NoError(t, p.Play())
	drainEvents(p)

	out.drain(t)
	assert.Equal(t, []EventKind{EventEnded}, drainEvents(p))
	assert.Equal(t, Stopped, p.State())
	assert.True(t, p.Paused())
	assert.Equal(t, p.Duration(), p.Position())

	require.NoError(t, p.Play(), "replay after the end")
	assert.Len(t, out.queued, 2)
	assert.Equal(t, time.Duration(0), p.Position())
}

func TestClose(t *testing.T) {
	out := &fakeSink{}
	p := newWithSink(out)
	require.NoError(t, p.Load(writeWAV(t, "a.wav", time.Second)))
	require.NoError(t, p.Play())

	p.Close()
	assert.Equal(t, 1, out.cleared)
	assert.Equal(t, Stopped, p.State())
	assert.Empty(t, p.Title())
	assert.ErrorIs(t, p.Play(), ErrNothingLoaded)

	p.Close()
	assert.Equal(t, 1, out.cleared, "closing twice is a no-op")
}

func TestVolume(t *testing.T) {
	p := newWithSink(&fakeSink{})
	require.NoError(t, p.Load(writeWAV(t, "a.wav", time.Second)))

	p.SetVolume(0.5)
	assert.Equal(t, 0.5, p.Volume())
	assert.InDelta(t, -1.0, p.volume.Volume, 1e-9)

	p.SetVolume(2)
	assert.Equal(t, 1.0, p.Volume())

	p.SetMuted(true)
	assert.True(t, p.Muted())
	assert.True(t, p.volume.Silent)
	p.SetMuted(false)
	assert.False(t, p.volume.Silent)
}

func TestVolume_KeptAcrossLoads(t *testing.T) {
	p := newWithSink(&fakeSink{})
	p.SetVolume(0.25)
	p.SetMuted(true)

	require.NoError(t, p.Load(writeWAV(t, "a.wav", time.Second)))
	assert.InDelta(t, -2.0, p.volume.Volume, 1e-9)
	assert.True(t, p.volume.Silent)
}

func TestLevelToVolume(t *testing.T) {
	p := &Player{}
	tests := []struct {
		level float64
		want  float64
	}{
		{0, -10},
		{-1, -10},
		{0.25, -2},
		{0.5, -1},
		{1, 0},
		{1.5, 0},
	}
	for _, tt := range tests {
		assert.InDelta(t, tt.want, p.levelToVolume(tt.level), 1e-9, "level %v", tt.level)
	}
}
