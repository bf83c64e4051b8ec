package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func series() *Title {
	return &Title{
		ID:   "s",
		Kind: KindSeries,
		Seasons: []Season{
			{Number: 1, Episodes: []Episode{{Number: 1, Name: "Pilot"}, {Number: 2}}},
			{Number: 2},
			{Number: 3, Episodes: []Episode{{Number: 1, Name: "Back"}}},
		},
	}
}

func TestNext(t *testing.T) {
	title := series()
	tests := []struct {
		name string
		from EpisodeRef
		want EpisodeRef
		ok   bool
	}{
		{"within season", EpisodeRef{0, 0}, EpisodeRef{0, 1}, true},
		{"skips empty season", EpisodeRef{0, 1}, EpisodeRef{2, 0}, true},
		{"last episode", EpisodeRef{2, 0}, EpisodeRef{}, false},
		{"invalid ref", EpisodeRef{1, 0}, EpisodeRef{}, false},
		{"out of range", EpisodeRef{9, 9}, EpisodeRef{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := title.Next(tt.from)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFirst(t *testing.T) {
	title := &Title{Seasons: []Season{{}, {Episodes: []Episode{{Name: "x"}}}}}
	ref, ok := title.First()
	assert.True(t, ok)
	assert.Equal(t, EpisodeRef{Season: 1}, ref)

	_, ok = (&Title{}).First()
	assert.False(t, ok)
}

func TestEpisodeLabel(t *testing.T) {
	title := series()
	assert.Equal(t, "S1:E1 Pilot", title.EpisodeLabel(EpisodeRef{0, 0}))
	assert.Equal(t, "S1:E2", title.EpisodeLabel(EpisodeRef{0, 1}))
	assert.Equal(t, "S3:E1 Back", title.EpisodeLabel(EpisodeRef{2, 0}))
	assert.Empty(t, title.EpisodeLabel(EpisodeRef{1, 0}))
}

func TestSeasonNumber(t *testing.T) {
	title := &Title{Seasons: []Season{{Number: 0}, {Number: 7}}}
	assert.Equal(t, 1, title.SeasonNumber(0))
	assert.Equal(t, 7, title.SeasonNumber(1))
	assert.Equal(t, 0, title.SeasonNumber(5))
}

func TestMeta(t *testing.T) {
	tests := []struct {
		name  string
		title Title
		want  string
	}{
		{
			name:  "series",
			title: Title{Kind: KindSeries, Match: 97, Year: 2024, Maturity: "TV-MA", Seasons: make([]Season, 2), Genres: []string{"Drama", "Thriller"}},
			want:  "97% Match • 2024 • TV-MA • 2 Seasons • Drama, Thriller",
		},
		{
			name:  "single season",
			title: Title{Kind: KindSeries, Seasons: make([]Season, 1)},
			want:  "1 Season",
		},
		{
			name:  "movie",
			title: Title{Kind: KindMovie, Year: 2019, Minutes: 122},
			want:  "2019 • 2h 2m",
		},
		{
			name: "empty",
			want: "",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.title.Meta())
		})
	}
}

func TestRuntime(t *testing.T) {
	assert.Equal(t, "", Runtime(0))
	assert.Equal(t, "42m", Runtime(42))
	assert.Equal(t, "2h", Runtime(120))
	assert.Equal(t, "1h 5m", Runtime(65))
}

func TestMaturityLevel(t *testing.T) {
	tests := map[string]Level{
		"TV-MA": LevelAdult,
		"r":     LevelAdult,
		"PG-13": LevelTeen,
		"TV-14": LevelTeen,
		"PG":    LevelFamily,
		"TV-Y7": LevelKids,
		"G":     LevelKids,
		"":      LevelUnrated,
		"NR":    LevelUnrated,
	}
	for rating, want := range tests {
		assert.Equal(t, want, MaturityLevel(rating), rating)
	}
}

func TestArtwork(t *testing.T) {
	tests := []struct {
		name  string
		title Title
		want  string
	}{
		{"poster wins", Title{Kind: KindMovie, Poster: "p.jpg", Media: "m.mp4"}, "p.jpg"},
		{"movie media", Title{Kind: KindMovie, Media: "m.mp4"}, "m.mp4"},
		{"first episode with media", Title{Kind: KindSeries, Seasons: []Season{
			{Episodes: []Episode{{Name: "no file"}}},
			{Episodes: []Episode{{Media: "s2e1.m4v"}}},
		}}, "s2e1.m4v"},
		{"nothing", Title{Kind: KindSeries}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.title.Artwork())
		})
	}
}
