// internal/player/interface.go
package player

import "time"

// Interface is the playback primitive driven by the session controller.
type Interface interface {
	// SetSource points the primitive at a new audio locator, stopping
	// whatever was loaded. Emits EventMetadataLoaded once the duration is known.
	SetSource(locator string) error
	Source() string
	// Play starts or resumes playback. It may block briefly and may fail,
	// e.g. when the source could not be decoded or no audio device is available.
	Play() error
	Pause()
	State() State
	Position() time.Duration
	// Duration returns 0 until metadata is known.
	Duration() time.Duration
	Seek(to time.Duration) error
	SetVolume(level float64)
	Volume() float64
	SetMuted(muted bool)
	Muted() bool
	// SetLoop enables native looping: the track restarts by itself and
	// EventEnded is not emitted.
	SetLoop(loop bool)
	Loop() bool
	Events() <-chan Event
	Close() error
}

// Verify Player implements Interface at compile time.
var _ Interface = (*Player)(nil)
