package poster

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/png"
	"strings"
)

const (
	kittyStart = "\x1b_G"
	kittyEnd   = "\x1b\\"

	// kittyChunk is the largest payload one escape sequence may carry.
	kittyChunk = 4096
)

// Kitty transmits images once and places them by id.
type Kitty struct{}

func (Kitty) Prepare(img image.Image, id uint32) (string, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return "", fmt.Errorf("encode png: %w", err)
	}
	return kittyTransmit(buf.Bytes(), id), nil
}

// kittyTransmit stores PNG data under id without displaying it (a=t).
func kittyTransmit(pngData []byte, id uint32) string {
	encoded := base64.StdEncoding.EncodeToString(pngData)
	var sb strings.Builder
	for i := 0; i < len(encoded); i += kittyChunk {
		end := min(i+kittyChunk, len(encoded))
		more := 0
		if end < len(encoded) {
			more = 1
		}
		sb.WriteString(kittyStart)
		if i == 0 {
			fmt.Fprintf(&sb, "a=t,f=100,i=%d,q=2,m=%d;", id, more)
		} else {
			fmt.Fprintf(&sb, "m=%d;", more)
		}
		sb.WriteString(encoded[i:end])
		sb.WriteString(kittyEnd)
	}
	return sb.String()
}

// Place uses placement id 1 so a new placement replaces the previous one.
func (Kitty) Place(id uint32, row, col, width, height int) string {
	return fmt.Sprintf("\x1b[s\x1b[%d;%dH%sa=p,i=%d,p=1,c=%d,r=%d,C=1,q=2;%s\x1b[u",
		row, col, kittyStart, id, width, height, kittyEnd)
}

// Unplace removes the placements only (lowercase d=i).
func (Kitty) Unplace(id uint32) string {
	return fmt.Sprintf("%sa=d,d=i,i=%d,q=2;%s", kittyStart, id, kittyEnd)
}

// Delete also frees the image data (uppercase d=I).
func (Kitty) Delete(id uint32) string {
	return fmt.Sprintf("%sa=d,d=I,i=%d,q=2;%s", kittyStart, id, kittyEnd)
}

func (Kitty) CellSize() (int, int) { return 8, 16 }
