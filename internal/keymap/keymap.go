package keymap

import "github.com/samber/lo"

// Binding describes a single key binding.
type Binding struct {
	Action      Action
	Keys        []string
	Description string
	Context     string // "global", "playback", "playlist"
}

// Bindings contains all key bindings.
var Bindings = []Binding{
	// Global
	{ActionQuit, []string{"q", "ctrl+c"}, "Quit", "global"},
	{ActionFilter, []string{"/"}, "Filter playlist", "global"},
	{ActionHelp, []string{"?"}, "Show help", "global"},

	// Playback
	{ActionPlayPause, []string{" "}, "Play/pause", "playback"},
	{ActionSeekBack, []string{"left"}, "Seek back", "playback"},
	{ActionSeekForward, []string{"right"}, "Seek forward", "playback"},
	{ActionVolumeUp, []string{"up", "+"}, "Volume up", "playback"},
	{ActionVolumeDown, []string{"down", "-"}, "Volume down", "playback"},
	{ActionNextTrack, []string{"n", "N"}, "Next track", "playback"},
	{ActionPrevTrack, []string{"p", "P"}, "Previous track", "playback"},
	{ActionToggleRepeat, []string{"r"}, "Toggle repeat", "playback"},
	{ActionToggleShuffle, []string{"s"}, "Toggle shuffle", "playback"},
	{ActionToggleMute, []string{"m"}, "Toggle mute", "playback"},
	{ActionToggleAutoplay, []string{"a"}, "Toggle autoplay", "playback"},

	// Playlist
	{ActionMoveDown, []string{"j"}, "Move down", "playlist"},
	{ActionMoveUp, []string{"k"}, "Move up", "playlist"},
	{ActionJumpStart, []string{"g", "home"}, "First track", "playlist"},
	{ActionJumpEnd, []string{"G", "end"}, "Last track", "playlist"},
	{ActionSelect, []string{"enter"}, "Play selected", "playlist"},
	{ActionClearFilter, []string{"esc"}, "Clear filter", "playlist"},
}

// ByContext returns key bindings filtered by context.
func ByContext(context string) []Binding {
	return lo.Filter(Bindings, func(b Binding, _ int) bool {
		return b.Context == context
	})
}

// DisplayKey returns a printable name for a key string.
func DisplayKey(key string) string {
	if key == " " {
		return "space"
	}
	return key
}
