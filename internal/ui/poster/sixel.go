package poster

import (
	"bytes"
	"fmt"
	"image"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/mattn/go-sixel"
)

// Sixel encodes images up front and re-emits the pixels on every Place.
type Sixel struct {
	mu     sync.RWMutex
	images map[uint32]string
	cellW  int
	cellH  int
	placed atomic.Uint64
}

// NewSixel creates a Sixel protocol sized to the terminal's cells.
func NewSixel() *Sixel {
	w, h := cellSize()
	return &Sixel{images: make(map[uint32]string), cellW: w, cellH: h}
}

func (s *Sixel) Prepare(img image.Image, id uint32) (string, error) {
	var buf bytes.Buffer
	enc := sixel.NewEncoder(&buf)
	enc.Dither = true
	if err := enc.Encode(img); err != nil {
		return "", fmt.Errorf("encode sixel: %w", err)
	}
	s.mu.Lock()
	s.images[id] = buf.String()
	s.mu.Unlock()
	return "", nil
}

// Place ends with a no-op SGR carrying a counter: an identical frame would
// otherwise be skipped by the renderer and the pixels left half erased.
func (s *Sixel) Place(id uint32, row, col, _, _ int) string {
	s.mu.RLock()
	data, ok := s.images[id]
	s.mu.RUnlock()
	if !ok {
		return ""
	}
	seq := s.placed.Add(1)
	var sb strings.Builder
	fmt.Fprintf(&sb, "\x1b[s\x1b[%d;%dH", row, col)
	sb.WriteString(data)
	fmt.Fprintf(&sb, "\x1b[u\x1b[%dm\x1b[0m", seq%255+1)
	return sb.String()
}

// Unplace is a no-op: sixel pixels live in the cells and go away when the
// text under them is redrawn.
func (s *Sixel) Unplace(uint32) string { return "" }

func (s *Sixel) Delete(id uint32) string {
	s.mu.Lock()
	delete(s.images, id)
	s.mu.Unlock()
	return ""
}

func (s *Sixel) CellSize() (int, int) { return s.cellW, s.cellH }
