//go:build linux

package mpris

import (
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/quarckster/go-mpris-server/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sink struct {
	msgs []tea.Msg
}

func (s *sink) Send(msg tea.Msg) { s.msgs = append(s.msgs, msg) }

func TestPlayerAdapter_Commands(t *testing.T) {
	s := &sink{}
	p := player{newBridge(s)}

	require.NoError(t, p.PlayPause())
	require.NoError(t, p.Play())
	require.NoError(t, p.Pause())
	require.NoError(t, p.Next())
	require.NoError(t, p.Seek(types.Microseconds(-10_000_000)))
	require.NoError(t, p.SetPosition("", types.Microseconds(90_000_000)))
	require.NoError(t, p.SetVolume(0.3))

	assert.Equal(t, []tea.Msg{
		PlayPauseMsg{},
		PlayMsg{},
		PauseMsg{},
		NextMsg{},
		SeekMsg{Offset: -10 * time.Second},
		SetPositionMsg{Position: 90 * time.Second},
		SetVolumeMsg{Volume: 0.3},
	}, s.msgs)
}

func TestPlayerAdapter_Snapshot(t *testing.T) {
	b := newBridge(nil)
	p := player{b}

	meta, err := p.Metadata()
	require.NoError(t, err)
	assert.Empty(t, meta.Title)
	canPlay, _ := p.CanPlay()
	assert.False(t, canPlay)

	b.publish(Snapshot{
		Status:   StatusPaused,
		Path:     filepath.Join(t.TempDir(), "e01.mp3"),
		Title:    "Pilot",
		Series:   "Night Shift",
		Length:   40 * time.Minute,
		Position: 90 * time.Second,
		Volume:   0.5,
		HasNext:  true,
	})

	status, _ := p.PlaybackStatus()
	assert.Equal(t, types.PlaybackStatusPaused, status)
	meta, _ = p.Metadata()
	assert.Equal(t, "Pilot", meta.Title)
	assert.Equal(t, "Night Shift", meta.Album)
	assert.Equal(t, types.Microseconds((40 * time.Minute).Microseconds()), meta.Length)
	pos, _ := p.Position()
	assert.Equal(t, int64(90_000_000), pos)
	vol, _ := p.Volume()
	assert.Equal(t, 0.5, vol)
	next, _ := p.CanGoNext()
	assert.True(t, next)
	seek, _ := p.CanSeek()
	assert.True(t, seek)
}

func TestTrackID_Stable(t *testing.T) {
	assert.Equal(t, trackID("/a.mp3"), trackID("/a.mp3"))
	assert.NotEqual(t, trackID("/a.mp3"), trackID("/b.mp3"))
}

func TestSnapshot_Metadata(t *testing.T) {
	dir := t.TempDir()
	episode := Snapshot{
		Path:    filepath.Join(dir, "s01e02.mp3"),
		Title:   "Rounds",
		Series:  "Night Shift",
		Episode: 2,
		Poster:  "/posters/night.jpg",
	}
	meta := episode.metadata()
	assert.Equal(t, 2, meta.TrackNumber)
	assert.Equal(t, []string{"Night Shift"}, meta.Artist)
	assert.Equal(t, "file:///posters/night.jpg", meta.ArtUrl)

	movie := Snapshot{Path: filepath.Join(dir, "heist.mp3"), Title: "The Heist"}
	meta = movie.metadata()
	assert.Empty(t, meta.Artist)
	assert.Empty(t, meta.ArtUrl, "no poster and nothing next to the file")
}
