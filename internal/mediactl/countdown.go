package mediactl

import tea "github.com/charmbracelet/bubbletea"

// OnPlaybackEnded starts the countdown to the next item.
func (c *Controller) OnPlaybackEnded() tea.Cmd {
	c.state.Playing = false
	c.syncSurface()
	c.setControlsVisible(true)
	c.idle.cancel()
	c.ShowOverlay(Overlay{Kind: OverlayCountdown, Count: c.opts.CountdownFrom}, 0)
	return c.countdown.arm(c, purposeCountdown, OverlayCountdown, c.opts.CountdownTick)
}

// CountdownActive reports whether a next-item countdown is running.
func (c *Controller) CountdownActive() bool {
	o, ok := c.overlays[OverlayCountdown]
	return ok && o.Count > 0
}

// ConfirmNext skips the rest of the countdown.
func (c *Controller) ConfirmNext() tea.Cmd {
	if !c.CountdownActive() {
		return nil
	}
	c.DismissOverlay(OverlayCountdown)
	return c.playNext()
}

// CancelNext stops the countdown without advancing.
func (c *Controller) CancelNext() {
	c.DismissOverlay(OverlayCountdown)
}

func (c *Controller) tickCountdown() tea.Cmd {
	if !c.CountdownActive() {
		return nil
	}
	o := c.overlays[OverlayCountdown]
	o.Count--
	if o.Count > 0 {
		c.overlays[OverlayCountdown] = o
		return c.countdown.arm(c, purposeCountdown, OverlayCountdown, c.opts.CountdownTick)
	}
	// Zero stays on screen briefly while the next item loads.
	return tea.Batch(c.playNext(), c.ShowOverlay(o, c.opts.IndicatorDuration))
}

func (c *Controller) playNext() tea.Cmd {
	id := c.id
	return func() tea.Msg { return PlayNextMsg{ID: id} }
}
