//go:build linux

package mpris

import (
	"time"

	"github.com/quarckster/go-mpris-server/pkg/server"
	"github.com/quarckster/go-mpris-server/pkg/types"
)

// mimeTypes are the containers the player decodes.
var mimeTypes = []string{
	"audio/mpeg", "audio/flac", "audio/wav",
	"audio/ogg", "audio/opus", "video/ogg",
	"audio/mp4", "video/mp4",
}

// Adapter publishes the watch view as org.mpris.MediaPlayer2.flicks.
type Adapter struct {
	bridge *bridge
	server *server.Server
}

// New starts the MPRIS server. Media-key commands arrive at sender as tea
// messages.
func New(sender Sender) (*Adapter, error) {
	b := newBridge(sender)
	srv := server.NewServer("flicks", root{}, player{b})
	go func() { _ = srv.Listen() }()
	return &Adapter{bridge: b, server: srv}, nil
}

// Publish replaces what media-key clients read.
func (a *Adapter) Publish(s Snapshot) { a.bridge.publish(s) }

func (a *Adapter) Close() error { return a.server.Stop() }

// root is org.mpris.MediaPlayer2. flicks cannot be raised or quit from
// outside the terminal.
type root struct{}

func (root) Raise() error                          { return nil }
func (root) Quit() error                           { return nil }
func (root) CanQuit() (bool, error)                { return false, nil }
func (root) CanRaise() (bool, error)               { return false, nil }
func (root) HasTrackList() (bool, error)           { return false, nil }
func (root) Identity() (string, error)             { return "Flicks", nil }
func (root) SupportedMimeTypes() ([]string, error) { return mimeTypes, nil }

//nolint:revive // name fixed by the interface
func (root) SupportedUriSchemes() ([]string, error) { return []string{"file"}, nil }

// player is org.mpris.MediaPlayer2.Player. Commands become messages;
// properties come from the last snapshot.
type player struct {
	*bridge
}

func (p player) Play() error      { return p.send(PlayMsg{}) }
func (p player) Pause() error     { return p.send(PauseMsg{}) }
func (p player) PlayPause() error { return p.send(PlayPauseMsg{}) }
func (p player) Stop() error      { return p.send(StopMsg{}) }
func (p player) Next() error      { return p.send(NextMsg{}) }
func (p player) Previous() error  { return nil }

func (p player) Seek(offset types.Microseconds) error {
	return p.send(SeekMsg{Offset: time.Duration(offset) * time.Microsecond})
}

func (p player) SetPosition(_ string, pos types.Microseconds) error {
	return p.send(SetPositionMsg{Position: time.Duration(pos) * time.Microsecond})
}

func (p player) SetVolume(v float64) error { return p.send(SetVolumeMsg{Volume: v}) }

//nolint:revive // name fixed by the interface
func (p player) OpenUri(string) error { return nil }

func (p player) SetRate(float64) error { return nil }

func (p player) PlaybackStatus() (types.PlaybackStatus, error) {
	switch p.snapshot().Status {
	case StatusPlaying:
		return types.PlaybackStatusPlaying, nil
	case StatusPaused:
		return types.PlaybackStatusPaused, nil
	case StatusStopped:
	}
	return types.PlaybackStatusStopped, nil
}

func (p player) Metadata() (types.Metadata, error) { return p.snapshot().metadata(), nil }

func (p player) Position() (int64, error)      { return p.snapshot().Position.Microseconds(), nil }
func (p player) Volume() (float64, error)      { return p.snapshot().Volume, nil }
func (p player) CanGoNext() (bool, error)      { return p.snapshot().HasNext, nil }
func (p player) CanPlay() (bool, error)        { return p.snapshot().Path != "", nil }
func (p player) CanSeek() (bool, error)        { return p.snapshot().Length > 0, nil }
func (p player) CanGoPrevious() (bool, error)  { return false, nil }
func (p player) CanPause() (bool, error)       { return true, nil }
func (p player) CanControl() (bool, error)     { return true, nil }
func (p player) Rate() (float64, error)        { return 1, nil }
func (p player) MinimumRate() (float64, error) { return 1, nil }
func (p player) MaximumRate() (float64, error) { return 1, nil }
