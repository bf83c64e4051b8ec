// Package poster draws title artwork in the hero banner on terminals that
// speak an image protocol.
package poster

import (
	"image"
	"os"
	"strings"
)

// Protocol is a terminal image protocol.
type Protocol interface {
	// Prepare encodes img under id and returns what must be written to the
	// terminal once before the first Place.
	Prepare(img image.Image, id uint32) (string, error)

	// Place returns the sequence that shows image id at the 1-based cell
	// (row, col), scaled to width x height cells.
	Place(id uint32, row, col, width, height int) string

	// Unplace returns the sequence that takes image id off the screen and
	// keeps it for a later Place.
	Unplace(id uint32) string

	// Delete returns the sequence that drops image id.
	Delete(id uint32) string

	// CellSize returns the pixel size of one terminal cell.
	CellSize() (w, h int)
}

// Detect returns the best protocol for the current terminal, or nil.
// FLICKS_IMAGE_PROTOCOL ("kitty", "sixel", "none") overrides detection.
func Detect() Protocol {
	switch os.Getenv("FLICKS_IMAGE_PROTOCOL") {
	case "kitty":
		return &Kitty{}
	case "sixel":
		return NewSixel()
	case "none":
		return nil
	}
	if kittySupported() {
		return &Kitty{}
	}
	if sixelSupported() {
		return NewSixel()
	}
	return nil
}

func kittySupported() bool {
	// Contour inherits parent terminal variables but has no Kitty support
	if os.Getenv("CONTOUR_PROFILE") != "" {
		return false
	}
	if os.Getenv("KITTY_WINDOW_ID") != "" || os.Getenv("GHOSTTY_RESOURCES_DIR") != "" {
		return true
	}
	if os.Getenv("TERM_PROGRAM") == "WezTerm" {
		return true
	}
	// KONSOLE_VERSION is like "220401"; Kitty graphics landed in 22.04
	if v := os.Getenv("KONSOLE_VERSION"); len(v) >= 4 && v[:4] >= "2204" {
		return true
	}
	return strings.Contains(os.Getenv("TERM"), "kitty")
}

func sixelSupported() bool {
	term := os.Getenv("TERM")
	switch os.Getenv("TERM_PROGRAM") {
	case "vscode", "mintty", "iTerm.app", "contour":
		return true
	}
	return term == "foot" || term == "foot-extra" || os.Getenv("CONTOUR_PROFILE") != ""
}
