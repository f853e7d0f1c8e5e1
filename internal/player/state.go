// internal/player/state.go
package player

// State represents the primitive's transport state.
//
//	┌──────────┐   play    ┌──────────┐
//	│  Stopped │ ─────────▶│  Playing │
//	└──────────┘           └──────────┘
//	     ▲   ▲               │  ▲  │
//	     │   │ ended   pause │  │  │ set source
//	     │   └───────────────┼──┼──┘
//	     │                   ▼  │ play
//	     │  set source   ┌──────────┐
//	     └───────────────│  Paused  │
//	                     └──────────┘
//
// Stopped covers both "source loaded, never started" and "ended".
// With loop enabled, Playing never transitions to Stopped on its own.
type State int

const (
	Stopped State = iota
	Playing
	Paused
)

// String returns the state name for debugging.
func (s State) String() string {
	switch s {
	case Stopped:
		return "Stopped"
	case Playing:
		return "Playing"
	case Paused:
		return "Paused"
	default:
		return "Unknown"
	}
}
