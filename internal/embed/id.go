// Package embed hands trailers to an external embeddable video widget. It
// resolves a content identifier from the URL shapes the catalog uses and
// manages the widget's lifetime.
package embed

import (
	"net/url"
	"regexp"
	"strings"
)

var idPattern = regexp.MustCompile(`^[A-Za-z0-9_-]{11}$`)

// ValidID reports whether id looks like a widget content identifier.
func ValidID(id string) bool {
	return idPattern.MatchString(id)
}

// ExtractID resolves the content identifier from a watch URL
// (youtube.com/watch?v=ID), a short link (youtu.be/ID), an embed or shorts
// path (/embed/ID, /shorts/ID) or a bare identifier.
func ExtractID(raw string) (string, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", false
	}
	if ValidID(raw) {
		return raw, true
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}
	u, err := url.Parse(raw)
	if err != nil {
		return "", false
	}

	host := strings.TrimPrefix(strings.ToLower(u.Hostname()), "www.")
	host = strings.TrimPrefix(host, "m.")
	var id string
	switch host {
	case "youtu.be":
		id = firstSegment(u.Path)
	case "youtube.com", "youtube-nocookie.com", "music.youtube.com":
		switch {
		case strings.HasPrefix(u.Path, "/shorts/"):
			id = firstSegment(strings.TrimPrefix(u.Path, "/shorts/"))
		case strings.HasPrefix(u.Path, "/embed/"):
			id = firstSegment(strings.TrimPrefix(u.Path, "/embed/"))
		case strings.HasPrefix(u.Path, "/live/"):
			id = firstSegment(strings.TrimPrefix(u.Path, "/live/"))
		default:
			id = u.Query().Get("v")
		}
	default:
		return "", false
	}

	if !ValidID(id) {
		return "", false
	}
	return id, true
}

func firstSegment(p string) string {
	p = strings.TrimPrefix(p, "/")
	if i := strings.IndexByte(p, '/'); i >= 0 {
		p = p[:i]
	}
	return p
}
