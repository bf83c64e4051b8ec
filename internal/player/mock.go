package player

import (
	"errors"
	"path/filepath"
	"time"
)

// Mock is a test double for Player. It emits the same lifecycle events.
type Mock struct {
	state    State
	path     string
	position time.Duration
	duration time.Duration
	volume   float64
	muted    bool
	loadErr  error
	playErr  error
	loads    []string
	seeks    []time.Duration
	events   events
	loadID   uint64
}

// NewMock creates a new mock player for testing.
func NewMock() *Mock {
	return &Mock{
		state:  Stopped,
		volume: 1,
		events: make(events, eventBuffer),
	}
}

// Load closes the current file first, like Player.Load.
func (m *Mock) Load(path string) error {
	m.Close()
	m.loadID++
	m.loads = append(m.loads, path)
	m.emit(EventWaiting, nil)
	if m.loadErr != nil {
		m.emit(EventError, m.loadErr)
		return m.loadErr
	}
	m.path = path
	m.position = 0
	m.state = Paused
	m.emit(EventMetadata, nil)
	m.emit(EventCanPlay, nil)
	return nil
}

func (m *Mock) LoadID() uint64 { return m.loadID }

func (m *Mock) emit(kind EventKind, err error) {
	m.events.emit(Event{Kind: kind, Err: err, Load: m.loadID})
}

func (m *Mock) Close() {
	m.path = ""
	m.state = Stopped
}

func (m *Mock) Play() error {
	if m.path == "" {
		return ErrNothingLoaded
	}
	if m.playErr != nil {
		return m.playErr
	}
	if m.state != Playing {
		m.state = Playing
		m.emit(EventPlay, nil)
	}
	return nil
}

func (m *Mock) Pause() {
	if m.state == Playing {
		m.state = Paused
		m.emit(EventPause, nil)
	}
}

func (m *Mock) Paused() bool            { return m.state != Playing }
func (m *Mock) State() State            { return m.state }
func (m *Mock) Position() time.Duration { return m.position }
func (m *Mock) Duration() time.Duration { return m.duration }
func (m *Mock) Volume() float64         { return m.volume }
func (m *Mock) SetVolume(v float64)     { m.volume = min(max(v, 0), 1) }
func (m *Mock) Muted() bool             { return m.muted }
func (m *Mock) SetMuted(b bool)         { m.muted = b }
func (m *Mock) Events() <-chan Event    { return m.events }

func (m *Mock) SetPosition(d time.Duration) {
	m.seeks = append(m.seeks, d)
	m.position = min(max(d, 0), m.duration)
}

func (m *Mock) Title() string {
	if m.path == "" {
		return ""
	}
	return titleFromPath(filepath.Base(m.path))
}

// Test helpers

func (m *Mock) SetLoadError(err error) { m.loadErr = err }

func (m *Mock) SetPlayError(err error) { m.playErr = err }

func (m *Mock) SetDuration(d time.Duration) { m.duration = d }

func (m *Mock) Loads() []string { return m.loads }

func (m *Mock) Seeks() []time.Duration { return m.seeks }

// SimulateEnded plays the stream to its end.
func (m *Mock) SimulateEnded() {
	m.position = m.duration
	m.state = Stopped
	m.emit(EventEnded, nil)
}

// SimulateStall reports a buffering stall followed by recovery.
func (m *Mock) SimulateStall() {
	m.emit(EventWaiting, nil)
	m.emit(EventCanPlay, nil)
}

// ErrDenied mimics a host refusing to start playback.
var ErrDenied = errors.New("playback denied")

// Verify Mock implements Interface at compile time.
var _ Interface = (*Mock)(nil)
