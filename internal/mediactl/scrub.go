package mediactl

import tea "github.com/charmbracelet/bubbletea"

// BeginScrubDrag enters the dragging state.
func (c *Controller) BeginScrubDrag() {
	c.state.Dragging = true
}

// UpdateScrubDrag seeks to the bar fraction under x while dragging. The
// fraction is clamped, so dragging past either end pins to it.
func (c *Controller) UpdateScrubDrag(x int) {
	if !c.state.Dragging {
		return
	}
	if f, ok := c.bar.Fraction(x); ok {
		c.SeekToFraction(f)
	}
}

// EndScrubDrag leaves the dragging state.
func (c *Controller) EndScrubDrag() {
	c.state.Dragging = false
}

// ClickBar seeks to the bar fraction under x.
func (c *Controller) ClickBar(x int) {
	if f, ok := c.bar.Fraction(x); ok {
		c.SeekToFraction(f)
	}
}

// HandleMouse feeds a terminal mouse event to the scrub bar. Motion and
// release are honoured anywhere on screen so a drag that leaves the bar
// keeps tracking. Reports whether the event was consumed.
func (c *Controller) HandleMouse(msg tea.MouseMsg) (bool, tea.Cmd) {
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft || !c.bar.Contains(msg.X, msg.Y) {
			return false, nil
		}
		if abs(msg.X-c.bar.HandleX(c.surface.Ratio())) <= 1 {
			c.BeginScrubDrag()
		} else {
			c.ClickBar(msg.X)
		}
		return true, c.ShowControls()
	case tea.MouseActionMotion:
		dragging := c.state.Dragging
		c.UpdateScrubDrag(msg.X)
		return dragging, c.ShowControls()
	case tea.MouseActionRelease:
		if !c.state.Dragging {
			return false, nil
		}
		c.EndScrubDrag()
		return true, nil
	}
	return false, nil
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
