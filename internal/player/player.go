// Package player is a local media element backed by beep. It decodes a file,
// plays it through the system speaker and reports lifecycle events.
package player

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
)

// ErrNothingLoaded is returned by Play before a file was loaded.
var ErrNothingLoaded = errors.New("player: nothing loaded")

type Player struct {
	out      sink
	state    State
	streamer beep.StreamSeekCloser
	format   beep.Format
	file     *os.File
	ctrl     *beep.Ctrl
	volume   *effects.Volume
	info     *Info
	queued   bool
	ended    atomic.Bool
	loadID   atomic.Uint64
	events   events

	volumeLevel float64
	muted       bool
}

// Info describes the loaded media.
type Info struct {
	Path     string
	Title    string
	Artist   string
	Album    string
	Year     int
	Format   string
	Duration time.Duration
}

// New creates a player that outputs to the system speaker.
func New() *Player {
	return newWithSink(defaultSink)
}

func newWithSink(out sink) *Player {
	return &Player{
		out:         out,
		state:       Stopped,
		events:      make(events, eventBuffer),
		volumeLevel: 1,
	}
}

// Events returns the lifecycle notification stream.
func (p *Player) Events() <-chan Event {
	return p.events
}

// LoadID numbers Load calls. Events carry the id current when they were
// emitted.
func (p *Player) LoadID() uint64 { return p.loadID.Load() }

func (p *Player) emit(kind EventKind, err error) {
	p.events.emit(Event{Kind: kind, Err: err, Load: p.loadID.Load()})
}

// Load opens a media file and leaves it paused at the start. Whatever was
// loaded before is closed first, even when the new file fails to open.
func (p *Player) Load(path string) error {
	p.Close()
	p.loadID.Add(1)
	p.emit(EventWaiting, nil)

	f, streamer, format, codec, err := open(path)
	if err != nil {
		p.emit(EventError, err)
		return err
	}

	rate, err := p.out.Init(format.SampleRate)
	if err != nil {
		streamer.Close()
		f.Close()
		err = fmt.Errorf("init speaker: %w", err)
		p.emit(EventError, err)
		return err
	}

	p.file = f
	p.streamer = streamer
	p.format = format

	// Resample if the file's sample rate differs from the speaker's
	var playStreamer beep.Streamer = streamer
	if format.SampleRate != rate {
		playStreamer = beep.Resample(4, format.SampleRate, rate, streamer)
	}
	p.ctrl = &beep.Ctrl{Streamer: playStreamer, Paused: true}
	p.volume = &effects.Volume{
		Streamer: p.ctrl,
		Base:     2,
		Volume:   p.levelToVolume(p.volumeLevel),
		Silent:   p.muted,
	}

	info, err := ReadInfo(path)
	if err != nil {
		info = &Info{Path: path, Title: titleFromPath(path)}
	}
	info.Duration = format.SampleRate.D(streamer.Len())
	info.Format = codec
	p.info = info

	p.state = Paused
	p.queued = false
	p.ended.Store(false)

	p.emit(EventMetadata, nil)
	p.emit(EventCanPlay, nil)
	return nil
}

// Close stops playback and releases the loaded file.
func (p *Player) Close() {
	if p.streamer == nil {
		return
	}
	p.out.Clear()
	p.streamer.Close()
	p.streamer = nil
	if p.file != nil {
		p.file.Close()
		p.file = nil
	}
	p.ctrl = nil
	p.volume = nil
	p.info = nil
	p.queued = false
	p.state = Stopped
}

// Play starts or resumes playback. A finished stream restarts from the top.
func (p *Player) Play() error {
	p.settle()
	if p.streamer == nil {
		return ErrNothingLoaded
	}
	if p.state == Playing {
		return nil
	}

	if !p.queued {
		p.out.Lock()
		if p.streamer.Position() >= p.streamer.Len() {
			_ = p.streamer.Seek(0)
		}
		p.out.Unlock()
		p.ended.Store(false)
		p.out.Play(beep.Seq(p.volume, beep.Callback(p.finish)))
		p.queued = true
	}

	p.out.Lock()
	p.ctrl.Paused = false
	p.out.Unlock()
	p.state = Playing
	p.emit(EventPlay, nil)
	return nil
}

// Pause pauses playback.
func (p *Player) Pause() {
	p.settle()
	if p.state != Playing || p.ctrl == nil {
		return
	}
	p.out.Lock()
	p.ctrl.Paused = true
	p.out.Unlock()
	p.state = Paused
	p.emit(EventPause, nil)
}

// Paused reports whether playback is not running.
func (p *Player) Paused() bool {
	p.settle()
	return p.state != Playing
}

// State returns the playback state.
func (p *Player) State() State {
	p.settle()
	return p.state
}

// Info returns the loaded media description, or nil.
func (p *Player) Info() *Info { return p.info }

// Title returns the loaded media title.
func (p *Player) Title() string {
	if p.info == nil {
		return ""
	}
	return p.info.Title
}

// Position returns the current playback position.
func (p *Player) Position() time.Duration {
	if p.streamer == nil {
		return 0
	}
	p.out.Lock()
	pos := p.streamer.Position()
	p.out.Unlock()
	return p.format.SampleRate.D(pos)
}

// Duration returns the media length, or 0 when nothing is loaded.
func (p *Player) Duration() time.Duration {
	if p.streamer == nil {
		return 0
	}
	return p.format.SampleRate.D(p.streamer.Len())
}

// SetPosition seeks to pos, clamped to the stream bounds.
func (p *Player) SetPosition(pos time.Duration) {
	if p.streamer == nil {
		return
	}
	p.out.Lock()
	defer p.out.Unlock()
	n := min(max(p.format.SampleRate.N(pos), 0), p.streamer.Len())
	if err := p.streamer.Seek(n); err != nil {
		p.emit(EventError, fmt.Errorf("seek: %w", err))
	}
}

// finish runs on the speaker goroutine when the stream is exhausted.
func (p *Player) finish() {
	p.ended.Store(true)
	p.emit(EventEnded, nil)
}

// settle applies an end of stream reported by the speaker goroutine.
func (p *Player) settle() {
	if p.ended.CompareAndSwap(true, false) {
		p.queued = false
		p.state = Stopped
	}
}

func titleFromPath(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
