// Package errmsg provides consistent error formatting for user-facing messages.
package errmsg

import "fmt"

// Op represents an operation that can fail.
type Op string

// Operation constants - grouped by domain.
const (
	// Playback operations
	OpPlaybackStart Op = "start playback"

	// Preference operations
	OpVolumeSave   Op = "save volume"
	OpAutoplaySave Op = "save autoplay setting"

	// Playlist operations
	OpDurationProbe Op = "read track duration"

	// Desktop integration
	OpNotify Op = "send notification"
	OpMPRIS  Op = "register media controls"
)

// Format creates a user-friendly error message.
func Format(op Op, err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Failed to %s: %v", op, err)
}
