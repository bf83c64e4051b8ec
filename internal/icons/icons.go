// Package icons selects the glyph set used by the control bar and the
// browse view: Nerd Font, plain Unicode, or ASCII.
package icons

// Style represents the icon style to use.
type Style string

const (
	StyleNerd    Style = "nerd"
	StyleUnicode Style = "unicode"
	StyleNone    Style = "none"
)

// Icons holds the icon characters for the current style.
type Icons struct {
	Play           string
	Pause          string
	Rewind         string
	Forward        string
	Volume         string
	VolumeMute     string
	Next           string
	Episodes       string
	Subtitles      string
	Settings       string
	Fullscreen     string
	ExitFullscreen string
	Add            string
	Added          string
	Like           string
	Info           string
	Search         string
}

var (
	nerdIcons = Icons{
		Play:           "\uf04b", // nf-fa-play
		Pause:          "\uf04c", // nf-fa-pause
		Rewind:         "\uf04a", // nf-fa-backward
		Forward:        "\uf04e", // nf-fa-forward
		Volume:         "\uf028", // nf-fa-volume_up
		VolumeMute:     "\uf026", // nf-fa-volume_off
		Next:           "\uf051", // nf-fa-step_forward
		Episodes:       "\uf03a", // nf-fa-list
		Subtitles:      "\uf20a", // nf-fa-cc
		Settings:       "\uf013", // nf-fa-cog
		Fullscreen:     "\uf065", // nf-fa-expand
		ExitFullscreen: "\uf066", // nf-fa-compress
		Add:            "\uf067", // nf-fa-plus
		Added:          "\uf00c", // nf-fa-check
		Like:           "\uf164", // nf-fa-thumbs_up
		Info:           "\uf05a", // nf-fa-info_circle
		Search:         "\uf002", // nf-fa-search
	}

	unicodeIcons = Icons{
		Play:           "▶",
		Pause:          "⏸",
		Rewind:         "⏪",
		Forward:        "⏩",
		Volume:         "🔊",
		VolumeMute:     "🔇",
		Next:           "⏭",
		Episodes:       "☰",
		Subtitles:      "㏄",
		Settings:       "⚙",
		Fullscreen:     "⛶",
		ExitFullscreen: "⤡",
		Add:            "＋",
		Added:          "✓",
		Like:           "👍",
		Info:           "ⓘ",
		Search:         "🔍",
	}

	noneIcons = Icons{
		Play:           ">",
		Pause:          "||",
		Rewind:         "<<",
		Forward:        ">>",
		Volume:         "Vol",
		VolumeMute:     "Mute",
		Next:           ">|",
		Episodes:       "Eps",
		Subtitles:      "CC",
		Settings:       "Set",
		Fullscreen:     "[ ]",
		ExitFullscreen: "] [",
		Add:            "+",
		Added:          "*",
		Like:           "Like",
		Info:           "(i)",
		Search:         "/",
	}

	current = noneIcons
)

// Init selects the icon style. Unknown styles fall back to ASCII.
// Call this once at startup with the config value.
func Init(style string) {
	switch Style(style) {
	case StyleNerd:
		current = nerdIcons
	case StyleUnicode:
		current = unicodeIcons
	default:
		current = noneIcons
	}
}

// Current returns the active icon set.
func Current() Icons {
	return current
}

// PlayPause returns the icon for the play button: pause while playing.
func PlayPause(playing bool) string {
	if playing {
		return current.Pause
	}
	return current.Play
}

// VolumeState returns the speaker icon for the mute state.
func VolumeState(muted bool) string {
	if muted {
		return current.VolumeMute
	}
	return current.Volume
}

// FullscreenState returns the fullscreen toggle icon.
func FullscreenState(active bool) string {
	if active {
		return current.ExitFullscreen
	}
	return current.Fullscreen
}

// MyList returns the My List button icon.
func MyList(inList bool) string {
	if inList {
		return current.Added
	}
	return current.Add
}
