// Package layout provides pure functions for UI dimension calculations.
package layout

// Browse view.
const (
	// HeaderHeight is the logo/tabs line plus a blank line under it.
	HeaderHeight = 2

	// HeroHeight is the banner height when there is room for it.
	HeroHeight = 8

	// CompactThreshold is the terminal height below which the hero is hidden.
	CompactThreshold = 24

	// CardWidth and CardHeight size a title card, border included.
	CardWidth  = 22
	CardHeight = 4
	CardGap    = 1

	// RowHeight is a row name line, its cards and a blank separator.
	RowHeight = 1 + CardHeight + 1

	// RowPadding is the left and right margin of a row.
	RowPadding = 2

	// HeroTextWidth caps the hero synopsis.
	HeroTextWidth = 72

	// PosterWidth is the hero artwork width; it is HeroHeight rows tall.
	PosterWidth = 16
)

// Watch view.
const (
	// TitleHeight is the "now watching" line, hidden in fullscreen.
	TitleHeight = 1

	// ControlBarHeight is the scrub line plus the button line.
	ControlBarHeight = 2

	// MinScrubWidth is the narrowest usable scrub bar.
	MinScrubWidth = 10

	// MaxPickerWidth caps the episode and season picker panels.
	MaxPickerWidth = 44
)

// ShowHero reports whether the hero banner fits.
func ShowHero(windowHeight int) bool {
	return windowHeight >= CompactThreshold
}

// PosterColumn returns the 0-based column of the hero artwork. ok is false
// when the window is too narrow to show it beside the text.
func PosterColumn(windowWidth int) (col int, ok bool) {
	col = windowWidth - RowPadding - PosterWidth
	return col, col >= RowPadding+HeroTextWidth+RowPadding
}

// RowsTop returns the first screen line of the row area. hero reports
// whether the current grid has a banner at all.
func RowsTop(windowHeight int, hero bool) int {
	if hero && ShowHero(windowHeight) {
		return HeaderHeight + HeroHeight
	}
	return HeaderHeight
}

// VisibleRows returns how many title rows fit below the header and hero.
func VisibleRows(windowHeight int, hero bool) int {
	return max((windowHeight-RowsTop(windowHeight, hero))/RowHeight, 1)
}

// CardsPerRow returns how many cards fit side by side.
func CardsPerRow(windowWidth int) int {
	return max((windowWidth-2*RowPadding+CardGap)/(CardWidth+CardGap), 1)
}

// CardAt maps a screen cell to a visible (row, card) slot, both relative to
// the first visible row and card. ok is false off the cards.
func CardAt(x, y, windowWidth, windowHeight int, hero bool) (row, card int, ok bool) {
	top := RowsTop(windowHeight, hero)
	if y < top || x < RowPadding {
		return 0, 0, false
	}
	row = (y - top) / RowHeight
	if row >= VisibleRows(windowHeight, hero) {
		return 0, 0, false
	}
	within := (y - top) % RowHeight
	if within < 1 || within > CardHeight {
		return 0, 0, false
	}
	card = (x - RowPadding) / (CardWidth + CardGap)
	if card >= CardsPerRow(windowWidth) || (x-RowPadding)%(CardWidth+CardGap) >= CardWidth {
		return 0, 0, false
	}
	return row, card, true
}

// VideoHeight returns the height of the media area of the watch view.
func VideoHeight(windowHeight int, fullscreen bool) int {
	h := windowHeight - ControlBarHeight
	if !fullscreen {
		h -= TitleHeight
	}
	return max(h, 0)
}

// ControlBarRow returns the screen line of the scrub bar.
func ControlBarRow(windowHeight int) int {
	return max(windowHeight-ControlBarHeight, 0)
}

// PickerWidth returns the width of the side picker panel.
func PickerWidth(windowWidth int) int {
	return min(max(windowWidth/3, 24), MaxPickerWidth, windowWidth)
}
