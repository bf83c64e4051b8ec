// Package catalog loads the titles shown on the landing page: rows, the hero
// banner, and the seasons and episodes of each series.
package catalog

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Kind distinguishes films from series.
type Kind string

const (
	KindMovie  Kind = "movie"
	KindSeries Kind = "series"
)

type Title struct {
	ID       string   `koanf:"id"`
	Name     string   `koanf:"name"`
	Kind     Kind     `koanf:"kind"`
	Year     int      `koanf:"year"`
	Maturity string   `koanf:"maturity"` // e.g. "TV-MA", "PG-13"
	Match    int      `koanf:"match"`    // percent match shown on cards
	Genres   []string `koanf:"genres"`
	Synopsis string   `koanf:"synopsis"`
	Trailer  string   `koanf:"trailer"` // widget URL or bare id
	Poster   string   `koanf:"poster"`  // image file for the hero banner
	Media    string   `koanf:"media"`   // movies only
	Minutes  int      `koanf:"minutes"` // movies only
	Added    string   `koanf:"added"`   // YYYY-MM-DD
	Seasons  []Season `koanf:"seasons"`
}

type Season struct {
	Number   int       `koanf:"number"`
	Episodes []Episode `koanf:"episodes"`
}

type Episode struct {
	Number   int    `koanf:"number"`
	Name     string `koanf:"name"`
	Minutes  int    `koanf:"minutes"`
	Synopsis string `koanf:"synopsis"`
	Media    string `koanf:"media"`
}

// Row is a titled carousel of titles on the landing page.
type Row struct {
	Name   string   `koanf:"name"`
	Titles []string `koanf:"titles"`
}

type Catalog struct {
	Hero   string  `koanf:"hero"`
	Rows   []Row   `koanf:"rows"`
	Titles []Title `koanf:"titles"`

	index map[string]int
}

// ErrEmpty is returned for a catalog with no titles.
var ErrEmpty = errors.New("catalog: no titles")

// Load reads a catalog file. Relative media paths are resolved against
// mediaDir, or the catalog's own directory when mediaDir is empty.
func Load(path, mediaDir string) (*Catalog, error) {
	k := koanf.New(".")
	if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}

	var c Catalog
	if err := k.Unmarshal("", &c); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}

	if mediaDir == "" {
		mediaDir = filepath.Dir(path)
	}
	c.resolveMedia(mediaDir)

	if err := c.build(); err != nil {
		return nil, err
	}
	return &c, nil
}

// New builds a catalog from titles and rows, as Load does after parsing.
func New(hero string, rows []Row, titles []Title) (*Catalog, error) {
	c := &Catalog{Hero: hero, Rows: rows, Titles: titles}
	if err := c.build(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Catalog) build() error {
	if len(c.Titles) == 0 {
		return ErrEmpty
	}
	c.index = make(map[string]int, len(c.Titles))
	for i := range c.Titles {
		t := &c.Titles[i]
		if t.ID == "" {
			return fmt.Errorf("catalog: title %d has no id", i)
		}
		if _, dup := c.index[t.ID]; dup {
			return fmt.Errorf("catalog: duplicate title id %q", t.ID)
		}
		if t.Kind == "" {
			t.Kind = KindMovie
			if len(t.Seasons) > 0 {
				t.Kind = KindSeries
			}
		}
		c.index[t.ID] = i
	}
	for _, r := range c.Rows {
		for _, id := range r.Titles {
			if _, ok := c.index[id]; !ok {
				return fmt.Errorf("catalog: row %q references unknown title %q", r.Name, id)
			}
		}
	}
	if c.Hero == "" {
		c.Hero = c.Titles[0].ID
	}
	if _, ok := c.index[c.Hero]; !ok {
		return fmt.Errorf("catalog: unknown hero title %q", c.Hero)
	}
	return nil
}

func (c *Catalog) resolveMedia(dir string) {
	abs := func(p string) string {
		if p == "" || filepath.IsAbs(p) {
			return p
		}
		return filepath.Join(dir, p)
	}
	for i := range c.Titles {
		t := &c.Titles[i]
		t.Media = abs(t.Media)
		t.Poster = abs(t.Poster)
		for s := range t.Seasons {
			for e := range t.Seasons[s].Episodes {
				ep := &t.Seasons[s].Episodes[e]
				ep.Media = abs(ep.Media)
			}
		}
	}
}

// Title returns the title with the given id.
func (c *Catalog) Title(id string) (*Title, bool) {
	i, ok := c.index[id]
	if !ok {
		return nil, false
	}
	return &c.Titles[i], true
}

// HeroTitle returns the title featured in the banner.
func (c *Catalog) HeroTitle() *Title {
	t, _ := c.Title(c.Hero)
	return t
}

// RowTitles returns the titles of row i in display order.
func (c *Catalog) RowTitles(i int) []*Title {
	if i < 0 || i >= len(c.Rows) {
		return nil
	}
	out := make([]*Title, 0, len(c.Rows[i].Titles))
	for _, id := range c.Rows[i].Titles {
		if t, ok := c.Title(id); ok {
			out = append(out, t)
		}
	}
	return out
}

// Search returns titles whose name or genres contain query, case-insensitively.
func (c *Catalog) Search(query string) []*Title {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil
	}
	var out []*Title
	for i := range c.Titles {
		t := &c.Titles[i]
		if strings.Contains(strings.ToLower(t.Name), q) || matchesAny(t.Genres, q) {
			out = append(out, t)
		}
	}
	return out
}

func matchesAny(values []string, q string) bool {
	for _, v := range values {
		if strings.Contains(strings.ToLower(v), q) {
			return true
		}
	}
	return false
}
