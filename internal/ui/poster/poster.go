package poster

import (
	"bytes"
	"errors"
	"image"
	_ "image/gif"  // GIF posters
	_ "image/jpeg" // JPEG posters and embedded covers
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/dhowden/tag"
	"github.com/nfnt/resize"
)

// ErrNoArtwork is returned for media files without embedded pictures.
var ErrNoArtwork = errors.New("poster: no artwork")

var nextID atomic.Uint32

// Renderer holds the artwork currently shown in the hero banner.
type Renderer struct {
	proto Protocol
	cache *Cache

	mu       sync.RWMutex
	source   string
	width    int
	height   int
	id       uint32
	transmit string
}

// New creates a renderer. cache may be nil.
func New(proto Protocol, cache *Cache) *Renderer {
	return &Renderer{proto: proto, cache: cache}
}

// Prepare loads the artwork for source sized to width x height cells.
// It does file and image work and belongs in a tea.Cmd. Preparing the
// current source again is a no-op.
func (r *Renderer) Prepare(source string, width, height int) error {
	if r.Ready(source, width, height) {
		return nil
	}

	img, err := r.load(source, width, height)
	if err != nil {
		r.Clear()
		return err
	}
	id := nextID.Add(1)
	transmit, err := r.proto.Prepare(img, id)
	if err != nil {
		r.Clear()
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.id != 0 {
		transmit = r.proto.Delete(r.id) + transmit
	}
	r.source, r.width, r.height = source, width, height
	r.id = id
	r.transmit = transmit
	return nil
}

func (r *Renderer) load(source string, width, height int) (image.Image, error) {
	if data := r.cache.Get(source, width, height); data != nil {
		if img, err := png.Decode(bytes.NewReader(data)); err == nil {
			return img, nil
		}
	}

	img, err := Load(source)
	if err != nil {
		return nil, err
	}
	cw, ch := r.proto.CellSize()
	img = resize.Thumbnail(uint(max(width*cw, 1)), uint(max(height*ch, 1)), img, resize.Lanczos3) //nolint:gosec // small sizes

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err == nil {
		_ = r.cache.Put(source, width, height, buf.Bytes())
	}
	return img, nil
}

// Ready reports whether source is prepared at the given size.
func (r *Renderer) Ready(source string, width, height int) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.id != 0 && r.source == source && r.width == width && r.height == height
}

// Transmit returns the one-time sequence of the current image, if any.
func (r *Renderer) Transmit() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.transmit
}

// Place returns the sequence showing the current image at the 1-based cell
// (row, col), or "" when nothing is prepared.
func (r *Renderer) Place(row, col int) string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.id == 0 {
		return ""
	}
	return r.proto.Place(r.id, row, col, r.width, r.height)
}

// Hide returns the sequence that takes the current image off the screen.
func (r *Renderer) Hide() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.id == 0 {
		return ""
	}
	return r.proto.Unplace(r.id)
}

// Clear forgets the current image.
func (r *Renderer) Clear() {
	r.mu.Lock()
	id := r.id
	r.source, r.id, r.transmit = "", 0, ""
	r.mu.Unlock()
	if id != 0 {
		r.proto.Delete(id)
	}
}

// Load decodes an image file, or the picture embedded in a media file.
func Load(source string) (image.Image, error) {
	f, err := os.Open(source)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(source)) {
	case ".png", ".jpg", ".jpeg", ".gif":
		img, _, err := image.Decode(f)
		return img, err
	}

	m, err := tag.ReadFrom(f)
	if err != nil {
		return nil, err
	}
	pic := m.Picture()
	if pic == nil || len(pic.Data) == 0 {
		return nil, ErrNoArtwork
	}
	img, _, err := image.Decode(bytes.NewReader(pic.Data))
	return img, err
}
