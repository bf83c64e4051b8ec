package player

import (
	"os"

	"github.com/dhowden/tag"
)

// ReadInfo reads the embedded tags of a media file. Files without tags
// (WAV, untagged MP3) return an error; callers fall back to the file name.
func ReadInfo(path string) (*Info, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	m, err := tag.ReadFrom(f)
	if err != nil {
		return nil, err
	}

	title := m.Title()
	if title == "" {
		title = titleFromPath(path)
	}

	return &Info{
		Path:   path,
		Title:  title,
		Artist: m.Artist(),
		Album:  m.Album(),
		Year:   m.Year(),
	}, nil
}
