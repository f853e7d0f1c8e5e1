// Package keymap defines key bindings and action dispatch for the application.
package keymap

// Action represents a user-triggerable action.
type Action string

const (
	// Global actions
	ActionQuit   Action = "quit"
	ActionHelp   Action = "help"
	ActionFilter Action = "filter"

	// Playback actions
	ActionPlayPause      Action = "play_pause"
	ActionNextTrack      Action = "next_track"
	ActionPrevTrack      Action = "prev_track"
	ActionSeekForward    Action = "seek_forward"
	ActionSeekBack       Action = "seek_back"
	ActionVolumeUp       Action = "volume_up"
	ActionVolumeDown     Action = "volume_down"
	ActionToggleMute     Action = "toggle_mute"
	ActionToggleRepeat   Action = "toggle_repeat"
	ActionToggleShuffle  Action = "toggle_shuffle"
	ActionToggleAutoplay Action = "toggle_autoplay"

	// Playlist actions
	ActionMoveUp      Action = "move_up"
	ActionMoveDown    Action = "move_down"
	ActionJumpStart   Action = "jump_start"
	ActionJumpEnd     Action = "jump_end"
	ActionSelect      Action = "select"       // enter - play row
	ActionClearFilter Action = "clear_filter" // esc
)
