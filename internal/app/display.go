package app

import (
	"time"

	"github.com/llehouerou/cassette/internal/catalog"
	"github.com/llehouerou/cassette/internal/session"
	"github.com/llehouerou/cassette/internal/ui/playerbar"
)

var _ session.Surface = (*Display)(nil)

// Display is the rendering surface driven by the session controller.
// The view reads from it and nothing else writes to it.
type Display struct {
	Track        catalog.Track
	Playing      bool
	NowPlaying   bool
	Elapsed      time.Duration
	SeekPosition time.Duration
	Duration     time.Duration
	Repeat       bool
	Shuffle      bool
	Autoplay     bool
	Volume       float64
	Muted        bool
}

func (d *Display) SetTrack(t catalog.Track)          { d.Track = t }
func (d *Display) SetPlaying(playing bool)           { d.Playing = playing }
func (d *Display) SetNowPlaying(on bool)             { d.NowPlaying = on }
func (d *Display) SetElapsed(pos time.Duration)      { d.Elapsed = pos }
func (d *Display) SetSeekPosition(pos time.Duration) { d.SeekPosition = pos }
func (d *Display) SetDuration(dur time.Duration)     { d.Duration = dur }
func (d *Display) SetRepeat(on bool)                 { d.Repeat = on }
func (d *Display) SetShuffle(on bool)                { d.Shuffle = on }
func (d *Display) SetAutoplay(on bool)               { d.Autoplay = on }
func (d *Display) SetVolume(v float64)               { d.Volume = v }
func (d *Display) SetMuted(muted bool)               { d.Muted = muted }

// PlayerBar converts the display into the player bar's render state.
func (d *Display) PlayerBar() playerbar.State {
	return playerbar.State{
		Title:        d.Track.Title,
		Artist:       d.Track.Artist,
		Playing:      d.Playing,
		NowPlaying:   d.NowPlaying,
		Elapsed:      d.Elapsed,
		SeekPosition: d.SeekPosition,
		Duration:     d.Duration,
		Volume:       d.Volume,
		Muted:        d.Muted,
		Repeat:       d.Repeat,
		Shuffle:      d.Shuffle,
		Autoplay:     d.Autoplay,
	}
}
