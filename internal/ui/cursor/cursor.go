// Package cursor tracks a selection inside a scrolling window, as used by
// the episode and season pickers.
package cursor

// Cursor is a selected index plus the first visible index. The list length
// and window height are passed in on every call because both change with
// the catalog and the terminal.
type Cursor struct {
	pos    int
	top    int
	margin int // rows kept visible around the selection
}

// New returns a cursor that keeps margin rows visible around the selection.
func New(margin int) Cursor {
	return Cursor{margin: margin}
}

func (c Cursor) Pos() int { return c.pos }

// Offset is the index of the first visible row.
func (c Cursor) Offset() int { return c.top }

// Move shifts the selection by delta, stopping at either end.
func (c *Cursor) Move(delta, n, height int) {
	c.Jump(c.pos+delta, n, height)
}

// Jump selects index i, clamped to the list.
func (c *Cursor) Jump(i, n, height int) {
	if n == 0 {
		return
	}
	c.pos = bound(i, n-1)
	c.follow(n, height)
}

// follow scrolls the least amount that keeps the selection and its margin
// inside the window.
func (c *Cursor) follow(n, height int) {
	if height <= 0 {
		return
	}
	margin := min(c.margin, (height-1)/2)
	if lo := c.pos - margin; lo < c.top {
		c.top = lo
	}
	if hi := c.pos + margin - height + 1; hi > c.top {
		c.top = hi
	}
	c.top = bound(c.top, max(n-height, 0))
}

// Center scrolls so the selection sits mid-window. Pickers open this way on
// the episode being watched.
func (c *Cursor) Center(n, height int) {
	if n == 0 || height <= 0 {
		return
	}
	c.top = bound(c.pos-height/2, max(n-height, 0))
}

// Clamp pulls the selection back inside a list that shrank to n rows.
func (c *Cursor) Clamp(n int) {
	if n == 0 {
		c.pos, c.top = 0, 0
		return
	}
	c.pos = bound(c.pos, n-1)
	c.top = min(c.top, c.pos)
}

// Window returns the visible rows as [start, end).
func (c Cursor) Window(n, height int) (start, end int) {
	if n == 0 || height <= 0 {
		return 0, 0
	}
	return c.top, min(c.top+height, n)
}

// HandleKey applies a navigation key and reports whether it was one:
// j/k and arrows step, g/G and home/end jump, pgup/pgdown page.
func (c *Cursor) HandleKey(key string, n, height int) bool {
	switch key {
	case "j", "down":
		c.Move(1, n, height)
	case "k", "up":
		c.Move(-1, n, height)
	case "g", "home":
		c.Jump(0, n, height)
	case "G", "end":
		c.Jump(n-1, n, height)
	case "pgdown":
		c.Move(max(height-1, 1), n, height)
	case "pgup":
		c.Move(-max(height-1, 1), n, height)
	default:
		return false
	}
	return true
}

func bound(v, hi int) int {
	return max(0, min(v, hi))
}
