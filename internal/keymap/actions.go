// Package keymap defines key bindings and action dispatch for the application.
package keymap

// Action represents a user-triggerable action.
type Action string

const (
	// Global actions
	ActionQuit   Action = "quit"
	ActionSearch Action = "search"
	ActionBack   Action = "back"

	// Browse actions
	ActionMoveUp     Action = "move_up"
	ActionMoveDown   Action = "move_down"
	ActionMoveLeft   Action = "move_left"
	ActionMoveRight  Action = "move_right"
	ActionSelect     Action = "select"
	ActionToggleList Action = "toggle_my_list"
	ActionToggleLike Action = "toggle_like"
	ActionMoreInfo   Action = "more_info"
	ActionTrailer    Action = "trailer"
	ActionNextTab    Action = "next_tab"
	ActionPrevTab    Action = "prev_tab"
	ActionHelp       Action = "help"

	// Player actions
	ActionPlayPause        Action = "play_pause"
	ActionSeekBack         Action = "seek_back"
	ActionSeekForward      Action = "seek_forward"
	ActionSeekBackFine     Action = "seek_back_fine"
	ActionSeekForwardFine  Action = "seek_forward_fine"
	ActionVolumeUp         Action = "volume_up"
	ActionVolumeDown       Action = "volume_down"
	ActionToggleMute       Action = "toggle_mute"
	ActionToggleFullscreen Action = "toggle_fullscreen"
	ActionShortcuts        Action = "shortcuts"
	ActionDismiss          Action = "dismiss"
	ActionNextEpisode      Action = "next_episode"
	ActionEpisodes         Action = "episodes"
	ActionSeasons          Action = "seasons"
	ActionSubtitles        Action = "subtitles"
	ActionSettings         Action = "settings"

	// Countdown panel actions
	ActionPlayNow Action = "play_now"
	ActionCancel  Action = "cancel"
)
