package mediactl

import "math"

// SetVolume sets the level, clamped to [0,1]. A positive level unmutes.
// With ZeroVolumeImpliesMuted a zero level also mutes.
func (c *Controller) SetVolume(level float64) {
	level = clamp(level, 0, 1)
	c.el.SetVolume(level)
	switch {
	case level > 0:
		c.el.SetMuted(false)
	case c.opts.ZeroVolumeImpliesMuted:
		c.el.SetMuted(true)
	}
	c.syncSurface()
}

// StepVolume changes the level by dir volume steps.
func (c *Controller) StepVolume(dir int) {
	next := c.el.Volume() + float64(dir)*c.opts.VolumeStep
	// 0.95+0.1 must land exactly on 1.0.
	next = math.Round(next*100) / 100
	c.SetVolume(next)
}

// ToggleMute mutes, remembering the level, or restores it. Two calls in a
// row leave volume and mute as they were.
func (c *Controller) ToggleMute() {
	vol := c.el.Volume()
	switch {
	case vol == 0:
		restore := c.state.PreviousVolume
		if restore <= 0 {
			restore = c.opts.FallbackVolume
		}
		c.el.SetVolume(restore)
		c.el.SetMuted(false)
	case c.el.Muted():
		c.el.SetMuted(false)
	default:
		c.state.PreviousVolume = vol
		c.el.SetMuted(true)
	}
	c.syncSurface()
}
