package mediactl

import (
	"errors"
	"time"
)

// ErrPlayDenied is returned by MockElement.Play when DenyPlay is set.
var ErrPlayDenied = errors.New("play request denied")

// MockElement is an in-memory Element for tests.
type MockElement struct {
	Pos      time.Duration
	Dur      time.Duration
	IsPaused bool
	Level    float64
	IsMuted  bool
	DenyPlay bool

	PlayCalls  int
	PauseCalls int
	Seeks      []time.Duration
}

// NewMockElement returns a paused element at full volume.
func NewMockElement(dur time.Duration) *MockElement {
	return &MockElement{Dur: dur, IsPaused: true, Level: 1}
}

func (m *MockElement) Position() time.Duration { return m.Pos }
func (m *MockElement) Duration() time.Duration { return m.Dur }
func (m *MockElement) Paused() bool            { return m.IsPaused }
func (m *MockElement) Volume() float64         { return m.Level }
func (m *MockElement) Muted() bool             { return m.IsMuted }
func (m *MockElement) SetVolume(v float64)     { m.Level = v }
func (m *MockElement) SetMuted(b bool)         { m.IsMuted = b }

func (m *MockElement) Play() error {
	m.PlayCalls++
	if m.DenyPlay {
		return ErrPlayDenied
	}
	m.IsPaused = false
	return nil
}

func (m *MockElement) Pause() {
	m.PauseCalls++
	m.IsPaused = true
}

func (m *MockElement) SetPosition(pos time.Duration) {
	m.Pos = pos
	m.Seeks = append(m.Seeks, pos)
}

// MockDisplay is an in-memory Display for tests.
type MockDisplay struct {
	Active bool
	Err    error
}

func (d *MockDisplay) IsFullscreen() bool { return d.Active }

func (d *MockDisplay) RequestFullscreen() error {
	if d.Err != nil {
		return d.Err
	}
	d.Active = true
	return nil
}

func (d *MockDisplay) ExitFullscreen() error {
	if d.Err != nil {
		return d.Err
	}
	d.Active = false
	return nil
}
