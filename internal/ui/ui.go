// Package ui holds what the flicks components share: a size and focus base
// and the geometry of the picker panels.
package ui

const (
	// ScrollMargin is how many rows a picker keeps visible around the
	// selection.
	ScrollMargin = 2
	// PanelOverhead is the rows a picker spends on its border, title and
	// separator.
	PanelOverhead = 4
)

// Base is embedded by components whose size and focus are set by a parent.
type Base struct {
	w, h    int
	focused bool
}

func (b *Base) SetSize(width, height int) { b.w, b.h = width, height }

func (b Base) Width() int  { return b.w }
func (b Base) Height() int { return b.h }

func (b *Base) SetFocused(focused bool) { b.focused = focused }

func (b Base) IsFocused() bool { return b.focused }

// Rows is the height left for content after overhead rows.
func (b Base) Rows(overhead int) int {
	return max(b.h-overhead, 0)
}
