package mpris

import (
	"os"
	"path/filepath"
	"strings"
)

// artworkNames lists common poster filenames in priority order.
var artworkNames = []string{
	"poster.jpg", "poster.png", "poster.jpeg",
	"cover.jpg", "cover.png", "cover.jpeg",
	"folder.jpg", "folder.png", "folder.jpeg",
}

// FindArtwork looks for a poster for a media file: first one named after the
// file itself, then a shared one in the same directory (and its parent, for
// season folders). Returns the path, or empty string if not found.
func FindArtwork(mediaPath string) string {
	dir := filepath.Dir(mediaPath)
	stem := strings.TrimSuffix(filepath.Base(mediaPath), filepath.Ext(mediaPath))
	for _, ext := range []string{".jpg", ".png", ".jpeg"} {
		path := filepath.Join(dir, stem+ext)
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	for _, d := range []string{dir, filepath.Dir(dir)} {
		for _, name := range artworkNames {
			path := filepath.Join(d, name)
			if _, err := os.Stat(path); err == nil {
				return path
			}
		}
	}
	return ""
}
