package session

import (
	"time"

	"github.com/llehouerou/cassette/internal/catalog"
)

// recordingSurface keeps the last value pushed for each element.
type recordingSurface struct {
	track      catalog.Track
	playing    bool
	nowPlaying bool
	elapsed    time.Duration
	seekPos    time.Duration
	duration   time.Duration
	repeat     bool
	shuffle    bool
	autoplay   bool
	volume     float64
	muted      bool

	seekUpdates int
}

func (s *recordingSurface) SetTrack(t catalog.Track)     { s.track = t }
func (s *recordingSurface) SetPlaying(playing bool)      { s.playing = playing }
func (s *recordingSurface) SetNowPlaying(on bool)        { s.nowPlaying = on }
func (s *recordingSurface) SetElapsed(pos time.Duration) { s.elapsed = pos }
func (s *recordingSurface) SetDuration(d time.Duration)  { s.duration = d }
func (s *recordingSurface) SetRepeat(on bool)            { s.repeat = on }
func (s *recordingSurface) SetShuffle(on bool)           { s.shuffle = on }
func (s *recordingSurface) SetAutoplay(on bool)          { s.autoplay = on }
func (s *recordingSurface) SetVolume(v float64)          { s.volume = v }
func (s *recordingSurface) SetMuted(muted bool)          { s.muted = muted }

func (s *recordingSurface) SetSeekPosition(pos time.Duration) {
	s.seekPos = pos
	s.seekUpdates++
}
