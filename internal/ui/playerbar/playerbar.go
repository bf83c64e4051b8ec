// Package playerbar renders the watch view's control bar: the scrub line
// and the button line, and reports where each clickable element sits.
package playerbar

import (
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/flicks/internal/icons"
	"github.com/llehouerou/flicks/internal/mediactl"
	"github.com/llehouerou/flicks/internal/ui/layout"
	"github.com/llehouerou/flicks/internal/ui/render"
)

// Height is the scrub line plus the button line.
const Height = 2

const (
	labelWidth  = 8 // fits "-1:23:45"
	volumeCells = 5
	buttonGap   = 2
)

// Button identifies a clickable control.
type Button string

const (
	ButtonPlayPause  Button = "play_pause"
	ButtonRewind     Button = "rewind"
	ButtonForward    Button = "forward"
	ButtonMute       Button = "mute"
	ButtonVolume     Button = "volume"
	ButtonNext       Button = "next"
	ButtonEpisodes   Button = "episodes"
	ButtonSubtitles  Button = "subtitles"
	ButtonSettings   Button = "settings"
	ButtonFullscreen Button = "fullscreen"
)

// State holds everything needed to render the control bar.
type State struct {
	Surface     mediactl.Surface
	Title       string // e.g. "Night Shift  S1:E2 Graveyard"
	HasNext     bool
	HasEpisodes bool
}

// Zone is the horizontal extent of a button on the button line.
type Zone struct {
	Button Button
	Left   int
	Width  int
}

// Contains reports whether column x is inside the zone.
func (z Zone) Contains(x int) bool {
	return x >= z.Left && x < z.Left+z.Width
}

// Layout locates the scrub bar and the buttons. Bar.Row is 0, the button
// line is row 1; use At to move it to screen coordinates.
type Layout struct {
	Bar       mediactl.Bar
	ButtonRow int
	Zones     []Zone
	titleLeft int
	titleMax  int
}

// At returns the layout shifted down to start at screen line row.
func (l Layout) At(row int) Layout {
	l.Bar.Row += row
	l.ButtonRow += row
	return l
}

// ButtonAt returns the button under (x, y).
func (l Layout) ButtonAt(x, y int) (Zone, bool) {
	if y != l.ButtonRow {
		return Zone{}, false
	}
	for _, z := range l.Zones {
		if z.Contains(x) {
			return z, true
		}
	}
	return Zone{}, false
}

type slot struct {
	button Button
	icon   string
}

// Measure computes the layout for a bar of the given width.
func Measure(s State, width int) Layout {
	l := Layout{ButtonRow: 1}

	if width-2*(labelWidth+2) >= layout.MinScrubWidth {
		l.Bar = mediactl.Bar{Left: labelWidth + 2, Width: width - 2*(labelWidth+2)}
	} else {
		l.Bar = mediactl.Bar{Left: 1, Width: max(width-2, 0)}
	}

	left, right := slots(s)
	x := 1
	for _, sl := range left {
		w := lipgloss.Width(sl.icon)
		l.Zones = append(l.Zones, Zone{Button: sl.button, Left: x, Width: w})
		x += w + buttonGap
	}
	l.titleLeft = x

	end := width - 1
	for i := len(right) - 1; i >= 0; i-- {
		w := lipgloss.Width(right[i].icon)
		end -= w
		if end < l.titleLeft {
			break
		}
		l.Zones = append(l.Zones, Zone{Button: right[i].button, Left: end, Width: w})
		end -= buttonGap
	}
	l.titleMax = max(end-l.titleLeft, 0)
	return l
}

func slots(s State) (left, right []slot) {
	ic := icons.Current()
	left = []slot{
		{ButtonPlayPause, icons.PlayPause(s.Surface.Playing)},
		{ButtonRewind, ic.Rewind},
		{ButtonForward, ic.Forward},
		{ButtonMute, icons.VolumeState(s.Surface.Muted)},
		{ButtonVolume, strings.Repeat("x", volumeCells)},
	}
	if s.HasNext {
		right = append(right, slot{ButtonNext, ic.Next})
	}
	if s.HasEpisodes {
		right = append(right, slot{ButtonEpisodes, ic.Episodes})
	}
	right = append(right,
		slot{ButtonSubtitles, ic.Subtitles},
		slot{ButtonSettings, ic.Settings},
		slot{ButtonFullscreen, icons.FullscreenState(s.Surface.Fullscreen)},
	)
	return left, right
}

// VolumeAt converts a click inside the volume slider into a level.
func VolumeAt(z Zone, x int) float64 {
	if z.Width <= 0 {
		return 0
	}
	cell := min(max(x-z.Left, 0), z.Width-1)
	return float64(cell+1) / float64(z.Width)
}

// Render returns the two control bar lines and their layout. Hidden
// controls render as blank lines.
func Render(s State, width int) (string, Layout) {
	l := Measure(s, width)
	if !s.Surface.ControlsVisible || width <= 0 {
		blank := strings.Repeat(" ", max(width, 0))
		return blank + "\n" + blank, l
	}
	return renderScrub(s.Surface, l.Bar, width) + "\n" + renderButtons(s, l, width), l
}

func renderScrub(sf mediactl.Surface, bar mediactl.Bar, width int) string {
	labels := bar.Left > 1
	var b strings.Builder
	if labels {
		elapsed := sf.Elapsed
		if sf.Buffering {
			elapsed = "…" + elapsed
		}
		b.WriteString(" " + timeStyle().Render(leftPad(elapsed, labelWidth)) + " ")
	} else {
		b.WriteString(strings.Repeat(" ", bar.Left))
	}

	if bar.Width > 0 {
		handle := bar.HandleX(sf.Ratio()) - bar.Left
		b.WriteString(filledStyle().Render(strings.Repeat("━", handle)))
		b.WriteString(handleStyle().Render("●"))
		b.WriteString(emptyStyle().Render(strings.Repeat("─", bar.Width-handle-1)))
	}

	if labels {
		b.WriteString(" " + timeStyle().Render(render.Pad(sf.Remaining, labelWidth)) + " ")
	}
	return render.Pad(b.String(), width)
}

func renderButtons(s State, l Layout, width int) string {
	zones := slices.Clone(l.Zones)
	slices.SortFunc(zones, func(a, b Zone) int { return a.Left - b.Left })

	var b strings.Builder
	col := 0
	pad := func(to int) {
		if to > col {
			b.WriteString(strings.Repeat(" ", to-col))
			col = to
		}
	}
	writeTitle := func() {
		if l.titleMax <= 0 || s.Title == "" {
			return
		}
		pad(l.titleLeft)
		title := render.TruncateEllipsis(render.Sanitize(s.Title), l.titleMax)
		b.WriteString(titleStyle().Render(title))
		col += lipgloss.Width(title)
	}

	titleDone := false
	for _, z := range zones {
		if !titleDone && z.Left >= l.titleLeft {
			writeTitle()
			titleDone = true
		}
		pad(z.Left)
		b.WriteString(buttonText(s, z))
		col += z.Width
	}
	if !titleDone {
		writeTitle()
	}
	pad(width)
	return b.String()
}

func buttonText(s State, z Zone) string {
	ic := icons.Current()
	switch z.Button {
	case ButtonPlayPause:
		return iconStyle().Render(icons.PlayPause(s.Surface.Playing))
	case ButtonRewind:
		return iconStyle().Render(ic.Rewind)
	case ButtonForward:
		return iconStyle().Render(ic.Forward)
	case ButtonMute:
		return iconStyle().Render(icons.VolumeState(s.Surface.Muted))
	case ButtonVolume:
		return renderVolume(s.Surface.Volume, s.Surface.Muted, z.Width)
	case ButtonNext:
		return iconStyle().Render(ic.Next)
	case ButtonEpisodes:
		return iconStyle().Render(ic.Episodes)
	case ButtonSubtitles:
		return iconStyle().Render(ic.Subtitles)
	case ButtonSettings:
		return iconStyle().Render(ic.Settings)
	case ButtonFullscreen:
		return iconStyle().Render(icons.FullscreenState(s.Surface.Fullscreen))
	}
	return strings.Repeat(" ", z.Width)
}

func leftPad(s string, width int) string {
	w := lipgloss.Width(s)
	if w >= width {
		return s
	}
	return strings.Repeat(" ", width-w) + s
}
