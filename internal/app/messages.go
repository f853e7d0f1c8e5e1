package app

import (
	"time"

	"github.com/llehouerou/cassette/internal/mpris"
	"github.com/llehouerou/cassette/internal/player"
	"github.com/llehouerou/cassette/internal/session"
)

// TickMsg drives time updates while playing.
type TickMsg time.Time

// PlayResultMsg carries the outcome of a pending playback start.
type PlayResultMsg session.PlayResult

// PlayerEventMsg carries an event from the playback primitive.
// Closed is set once the event channel is closed.
type PlayerEventMsg struct {
	Event  player.Event
	Closed bool
}

// DurationProbedMsg carries a duration probe result for one track,
// keyed by its original catalog index.
type DurationProbedMsg struct {
	Index    int
	Duration time.Duration
	Err      error
}

// ExternalCommandMsg carries a media-key or MPRIS request.
type ExternalCommandMsg mpris.Command

// CoverRenderedMsg carries rendered cover art. Key identifies the
// track and size it was rendered for.
type CoverRenderedMsg struct {
	Key string
	Art string
}

// StatusClearMsg clears the status line if it still shows message ID.
type StatusClearMsg struct {
	ID int64
}

// StatusDuration is how long status messages are displayed.
const StatusDuration = 4 * time.Second
