package keymap

// Binding describes a single key binding.
type Binding struct {
	Action      Action
	Keys        []string
	Description string
	Context     string // "global", "browse", "player", "countdown", "picker"
}

// All contains all key bindings for dispatch and help generation.
var All = []Binding{
	// Global
	{ActionQuit, []string{"q", "ctrl+c"}, "Quit", "global"},
	{ActionSearch, []string{"/"}, "Search", "global"},

	// Browse
	{ActionMoveUp, []string{"k", "up"}, "Previous row", "browse"},
	{ActionMoveDown, []string{"j", "down"}, "Next row", "browse"},
	{ActionMoveLeft, []string{"h", "left"}, "Previous title", "browse"},
	{ActionMoveRight, []string{"l", "right"}, "Next title", "browse"},
	{ActionSelect, []string{"enter"}, "Play", "browse"},
	{ActionTrailer, []string{"t"}, "Play trailer", "browse"},
	{ActionToggleList, []string{"+", "a"}, "Add to / remove from My List", "browse"},
	{ActionToggleLike, []string{"L"}, "Rate", "browse"},
	{ActionMoreInfo, []string{"i"}, "More info", "browse"},
	{ActionNextTab, []string{"tab"}, "Next section", "browse"},
	{ActionPrevTab, []string{"shift+tab"}, "Previous section", "browse"},
	{ActionHelp, []string{"?"}, "Keyboard shortcuts", "browse"},

	// Player
	{ActionPlayPause, []string{" "}, "Play/Pause", "player"},
	{ActionSeekBack, []string{"left"}, "Rewind", "player"},
	{ActionSeekForward, []string{"right"}, "Forward", "player"},
	{ActionSeekBackFine, []string{"shift+left"}, "Rewind (fine)", "player"},
	{ActionSeekForwardFine, []string{"shift+right"}, "Forward (fine)", "player"},
	{ActionVolumeUp, []string{"up"}, "Volume Up", "player"},
	{ActionVolumeDown, []string{"down"}, "Volume Down", "player"},
	{ActionToggleMute, []string{"m", "M"}, "Mute", "player"},
	{ActionToggleFullscreen, []string{"f", "F"}, "Fullscreen", "player"},
	{ActionShortcuts, []string{"?"}, "Keyboard shortcuts", "player"},
	{ActionDismiss, []string{"esc"}, "Exit", "player"},
	{ActionNextEpisode, []string{"n"}, "Next episode", "player"},
	{ActionEpisodes, []string{"e"}, "Episodes", "player"},
	{ActionSeasons, []string{"s"}, "Seasons", "player"},
	{ActionSubtitles, []string{"c"}, "Subtitles", "player"},
	{ActionSettings, []string{","}, "Settings", "player"},
	{ActionBack, []string{"backspace"}, "Back to browse", "player"},

	// Countdown to next episode
	{ActionPlayNow, []string{"enter"}, "Play Now", "countdown"},
	{ActionCancel, []string{"esc"}, "Cancel", "countdown"},

	// Episode and season pickers
	{ActionMoveUp, []string{"k", "up"}, "Move up", "picker"},
	{ActionMoveDown, []string{"j", "down"}, "Move down", "picker"},
	{ActionSelect, []string{"enter"}, "Choose", "picker"},
	{ActionCancel, []string{"esc"}, "Close", "picker"},
}

// ByContext returns key bindings filtered by context.
func ByContext(context string) []Binding {
	var result []Binding
	for _, kb := range All {
		if kb.Context == context {
			result = append(result, kb)
		}
	}
	return result
}

// ResolverFor builds a resolver restricted to the given contexts.
// Earlier contexts win when the same key is bound in several of them.
func ResolverFor(contexts ...string) *Resolver {
	r := &Resolver{actions: make(map[string]Action)}
	for _, ctx := range contexts {
		for _, b := range ByContext(ctx) {
			for _, k := range b.Keys {
				if _, taken := r.actions[k]; !taken {
					r.actions[k] = b.Action
				}
			}
		}
	}
	return r
}
