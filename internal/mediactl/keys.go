package mediactl

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/flicks/internal/keymap"
)

// HandleKey dispatches a key press. While a text input has focus only Esc
// reaches the controller. Esc closes the top overlay; when none is open the
// key is left to the caller. Reports whether the key was consumed.
func (c *Controller) HandleKey(key string, inTextInput bool) (bool, tea.Cmd) {
	if inTextInput && key != "esc" {
		return false, nil
	}

	if c.CountdownActive() {
		switch c.countKeys.Resolve(key) {
		case keymap.ActionPlayNow:
			return true, c.ConfirmNext()
		case keymap.ActionCancel:
			c.CancelNext()
			return true, nil
		}
	}

	var cmd tea.Cmd
	switch c.keys.Resolve(key) {
	case keymap.ActionPlayPause:
		cmd = c.TogglePlayback()
	case keymap.ActionSeekBack:
		cmd = c.SeekRelative(-c.opts.CoarseSeek)
	case keymap.ActionSeekForward:
		cmd = c.SeekRelative(c.opts.CoarseSeek)
	case keymap.ActionSeekBackFine:
		cmd = c.SeekRelative(-c.opts.FineSeek)
	case keymap.ActionSeekForwardFine:
		cmd = c.SeekRelative(c.opts.FineSeek)
	case keymap.ActionVolumeUp:
		c.StepVolume(1)
	case keymap.ActionVolumeDown:
		c.StepVolume(-1)
	case keymap.ActionToggleMute:
		c.ToggleMute()
	case keymap.ActionToggleFullscreen:
		c.ToggleFullscreen()
	case keymap.ActionShortcuts:
		c.ShowShortcuts()
	case keymap.ActionDismiss:
		if _, ok := c.overlays[OverlayShortcuts]; !ok {
			return false, nil
		}
		c.DismissOverlay(OverlayShortcuts)
	default:
		return false, nil
	}
	return true, tea.Batch(cmd, c.ShowControls())
}

// ShowShortcuts opens the shortcuts reference until dismissed.
func (c *Controller) ShowShortcuts() {
	c.ShowOverlay(Overlay{Kind: OverlayShortcuts}, 0)
}

// Shortcuts lists the bindings the shortcuts reference shows.
func Shortcuts() []keymap.Binding {
	return keymap.ByContext("player")
}
