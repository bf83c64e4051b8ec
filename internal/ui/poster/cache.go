package poster

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
)

const (
	cacheDirName = "flicks/posters"
	cacheMaxAge  = 30 * 24 * time.Hour
)

// Cache keeps resized artwork as PNG files.
type Cache struct {
	dir string
}

// NewCache creates a cache under baseDir, or $XDG_CACHE_HOME when empty.
func NewCache(baseDir string) (*Cache, error) {
	if baseDir == "" {
		baseDir = xdg.CacheHome
	}
	dir := filepath.Join(baseDir, cacheDirName)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	c := &Cache{dir: dir}
	go c.prune(time.Now().Add(-cacheMaxAge))
	return c, nil
}

func (c *Cache) path(source string, width, height int) string {
	sum := sha256.Sum256(fmt.Appendf(nil, "%s:%d:%d", source, width, height))
	return filepath.Join(c.dir, hex.EncodeToString(sum[:])+".png")
}

// Get returns the cached PNG for source at the given cell size, or nil.
func (c *Cache) Get(source string, width, height int) []byte {
	if c == nil {
		return nil
	}
	path := c.path(source, width, height)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil
	}
	now := time.Now()
	_ = os.Chtimes(path, now, now)
	return data
}

// Put stores PNG data for source at the given cell size.
func (c *Cache) Put(source string, width, height int, data []byte) error {
	if c == nil {
		return nil
	}
	return os.WriteFile(c.path(source, width, height), data, 0o600)
}

// prune removes entries not used since cutoff.
func (c *Cache) prune(cutoff time.Time) {
	entries, err := os.ReadDir(c.dir)
	if err != nil {
		return
	}
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if info, err := e.Info(); err == nil && info.ModTime().Before(cutoff) {
			_ = os.Remove(filepath.Join(c.dir, e.Name()))
		}
	}
}
