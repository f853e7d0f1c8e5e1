package session

import (
	"errors"
	"time"

	"github.com/llehouerou/cassette/internal/catalog"
)

var (
	// ErrPlaybackStartRejected wraps a primitive's refusal to start playback.
	ErrPlaybackStartRejected = errors.New("playback start rejected")
	// ErrIndexOutOfRange is returned for track indices outside the catalog.
	ErrIndexOutOfRange = errors.New("track index out of range")
)

// State is a snapshot of the session.
//
// State machine per loaded track:
//
//	Idle → Loaded → Playing ⇄ Paused
//	Playing/Paused → Loaded     (LoadTrack)
//	Playing → Playing           (ended while looping)
//	Playing → Loaded+Playing    (ended with autoplay)
type State struct {
	CurrentIndex int
	Loaded       bool
	Playing      bool
	Repeat       bool
	Shuffle      bool
	Seeking      bool
}

// Surface receives display updates from the controller.
type Surface interface {
	SetTrack(t catalog.Track)
	// SetPlaying switches the transport glyph.
	SetPlaying(playing bool)
	SetNowPlaying(on bool)
	SetElapsed(pos time.Duration)
	// SetSeekPosition moves the seek thumb.
	SetSeekPosition(pos time.Duration)
	// SetDuration sets the total time and the seek range [0, d].
	SetDuration(d time.Duration)
	SetRepeat(on bool)
	SetShuffle(on bool)
	SetAutoplay(on bool)
	SetVolume(v float64)
	SetMuted(muted bool)
}

// Start is a pending playback start. It may block and must run off the
// event loop; its result goes back through Controller.HandlePlayResult.
type Start func() PlayResult

// PlayResult is the outcome of a Start.
type PlayResult struct {
	Index  int
	Source string
	Err    error
}
