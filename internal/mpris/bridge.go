package mpris

import (
	"fmt"
	"hash/fnv"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/godbus/dbus/v5"
	"github.com/quarckster/go-mpris-server/pkg/types"
)

// Sender delivers messages into the running program; *tea.Program is one.
type Sender interface {
	Send(msg tea.Msg)
}

// Status mirrors the MPRIS playback status.
type Status int

const (
	StatusStopped Status = iota
	StatusPlaying
	StatusPaused
)

// Snapshot is what media-key clients can read about the watch view.
type Snapshot struct {
	Status   Status
	Path     string
	Title    string // episode or movie name
	Series   string // empty for movies
	Episode  int
	Poster   string // catalog artwork; falls back to files next to Path
	Length   time.Duration
	Position time.Duration
	Volume   float64
	HasNext  bool
}

// metadata renders the snapshot as MPRIS track metadata. A series plays as
// an album whose tracks are its episodes.
func (s Snapshot) metadata() types.Metadata {
	if s.Path == "" {
		return types.Metadata{}
	}
	m := types.Metadata{
		TrackId:     dbus.ObjectPath(trackID(s.Path)),
		Length:      types.Microseconds(s.Length.Microseconds()),
		Title:       s.Title,
		Album:       s.Series,
		TrackNumber: s.Episode,
	}
	if s.Series != "" {
		m.Artist = []string{s.Series}
	}
	art := s.Poster
	if art == "" {
		art = FindArtwork(s.Path)
	}
	if art != "" {
		m.ArtUrl = "file://" + art
	}
	return m
}

// Messages sent into the program when a media-key client calls in.
type (
	PlayPauseMsg   struct{}
	PlayMsg        struct{}
	PauseMsg       struct{}
	StopMsg        struct{}
	NextMsg        struct{}
	SeekMsg        struct{ Offset time.Duration }
	SetPositionMsg struct{ Position time.Duration }
	SetVolumeMsg   struct{ Volume float64 }
)

// bridge turns D-Bus calls into messages and answers property reads from
// the last published snapshot. D-Bus calls arrive on their own goroutines.
type bridge struct {
	sender Sender

	mu   sync.Mutex
	snap Snapshot
}

func newBridge(sender Sender) *bridge {
	return &bridge{sender: sender, snap: Snapshot{Volume: 1}}
}

func (b *bridge) publish(s Snapshot) {
	b.mu.Lock()
	b.snap = s
	b.mu.Unlock()
}

func (b *bridge) snapshot() Snapshot {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.snap
}

func (b *bridge) send(msg tea.Msg) error {
	if b.sender != nil {
		b.sender.Send(msg)
	}
	return nil
}

func trackID(path string) string {
	h := fnv.New64a()
	h.Write([]byte(path))
	return fmt.Sprintf("/org/mpris/MediaPlayer2/Track/%x", h.Sum64())
}
