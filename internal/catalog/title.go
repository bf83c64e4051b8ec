package catalog

import (
	"fmt"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
)

// EpisodeRef points at an episode by season and episode position.
type EpisodeRef struct {
	Season  int // index into Title.Seasons
	Episode int // index into Season.Episodes
}

// Playable reports whether the title has anything to play locally.
func (t *Title) Playable() bool {
	if t.Kind == KindMovie {
		return t.Media != ""
	}
	for _, s := range t.Seasons {
		for _, e := range s.Episodes {
			if e.Media != "" {
				return true
			}
		}
	}
	return false
}

// Artwork returns the file the hero banner draws: the poster, else the
// first media file, whose embedded cover may serve.
func (t *Title) Artwork() string {
	if t.Poster != "" {
		return t.Poster
	}
	if t.Kind == KindMovie {
		return t.Media
	}
	for _, s := range t.Seasons {
		for _, e := range s.Episodes {
			if e.Media != "" {
				return e.Media
			}
		}
	}
	return ""
}

// Episode returns the episode ref points at.
func (t *Title) Episode(ref EpisodeRef) (*Episode, bool) {
	if ref.Season < 0 || ref.Season >= len(t.Seasons) {
		return nil, false
	}
	eps := t.Seasons[ref.Season].Episodes
	if ref.Episode < 0 || ref.Episode >= len(eps) {
		return nil, false
	}
	return &eps[ref.Episode], true
}

// First returns the first episode of the title.
func (t *Title) First() (EpisodeRef, bool) {
	for s := range t.Seasons {
		if len(t.Seasons[s].Episodes) > 0 {
			return EpisodeRef{Season: s}, true
		}
	}
	return EpisodeRef{}, false
}

// Next returns the episode after ref: the next one in the season, else the
// first episode of the next non-empty season.
func (t *Title) Next(ref EpisodeRef) (EpisodeRef, bool) {
	if _, ok := t.Episode(ref); !ok {
		return EpisodeRef{}, false
	}
	if ref.Episode+1 < len(t.Seasons[ref.Season].Episodes) {
		return EpisodeRef{Season: ref.Season, Episode: ref.Episode + 1}, true
	}
	for s := ref.Season + 1; s < len(t.Seasons); s++ {
		if len(t.Seasons[s].Episodes) > 0 {
			return EpisodeRef{Season: s}, true
		}
	}
	return EpisodeRef{}, false
}

// SeasonNumber returns the display number of season index i.
func (t *Title) SeasonNumber(i int) int {
	if i < 0 || i >= len(t.Seasons) {
		return 0
	}
	if n := t.Seasons[i].Number; n > 0 {
		return n
	}
	return i + 1
}

// EpisodeLabel formats ref as "S1:E2 Name".
func (t *Title) EpisodeLabel(ref EpisodeRef) string {
	ep, ok := t.Episode(ref)
	if !ok {
		return ""
	}
	n := ep.Number
	if n <= 0 {
		n = ref.Episode + 1
	}
	label := fmt.Sprintf("S%d:E%d", t.SeasonNumber(ref.Season), n)
	if ep.Name != "" {
		label += " " + ep.Name
	}
	return label
}

// Meta is the one-line summary under a title: year, rating, length, genres.
func (t *Title) Meta() string {
	var parts []string
	if t.Match > 0 {
		parts = append(parts, fmt.Sprintf("%d%% Match", t.Match))
	}
	if t.Year > 0 {
		parts = append(parts, fmt.Sprint(t.Year))
	}
	if t.Maturity != "" {
		parts = append(parts, t.Maturity)
	}
	switch {
	case t.Kind == KindSeries && len(t.Seasons) == 1:
		parts = append(parts, "1 Season")
	case t.Kind == KindSeries && len(t.Seasons) > 1:
		parts = append(parts, fmt.Sprintf("%d Seasons", len(t.Seasons)))
	case t.Minutes > 0:
		parts = append(parts, Runtime(t.Minutes))
	}
	if len(t.Genres) > 0 {
		parts = append(parts, strings.Join(t.Genres, ", "))
	}
	return strings.Join(parts, " • ")
}

// AddedAt parses the added date.
func (t *Title) AddedAt() (time.Time, bool) {
	if t.Added == "" {
		return time.Time{}, false
	}
	at, err := time.Parse(time.DateOnly, t.Added)
	if err != nil {
		return time.Time{}, false
	}
	return at, true
}

// AddedLabel renders the added date relative to now ("added 3 weeks ago").
func (t *Title) AddedLabel(now time.Time) string {
	at, ok := t.AddedAt()
	if !ok {
		return ""
	}
	return "added " + humanize.RelTime(at, now, "ago", "from now")
}

// IsNew reports whether the title was added within the last 30 days.
func (t *Title) IsNew(now time.Time) bool {
	at, ok := t.AddedAt()
	return ok && !at.After(now) && now.Sub(at) <= 30*24*time.Hour
}

// Runtime formats minutes as "1h 42m" or "42m".
func Runtime(minutes int) string {
	if minutes <= 0 {
		return ""
	}
	h, m := minutes/60, minutes%60
	switch {
	case h == 0:
		return fmt.Sprintf("%dm", m)
	case m == 0:
		return fmt.Sprintf("%dh", h)
	default:
		return fmt.Sprintf("%dh %dm", h, m)
	}
}
