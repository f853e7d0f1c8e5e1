// Package session implements the playback session controller.
package session

import (
	"fmt"
	"math"
	"math/rand/v2"
	"time"

	"github.com/charmbracelet/log"
	"github.com/samber/lo"

	"github.com/llehouerou/cassette/internal/catalog"
	"github.com/llehouerou/cassette/internal/logging"
	"github.com/llehouerou/cassette/internal/player"
	"github.com/llehouerou/cassette/internal/prefs"
)

// Options are the controller's dependencies.
type Options struct {
	Catalog *catalog.Catalog
	Player  player.Interface
	Surface Surface
	Store   prefs.Store
	Logger  *log.Logger
	// Intn returns a random int in [0, n). Defaults to math/rand/v2.
	Intn          func(n int) int
	DefaultVolume float64
}

// Controller owns the session state and drives the playback primitive.
// It is not safe for concurrent use: call it from a single goroutine.
type Controller struct {
	tracks  *catalog.Catalog
	player  player.Interface
	surface Surface
	store   prefs.Store
	logger  *log.Logger
	intn    func(int) int

	state    State
	prefs    prefs.Preferences
	duration time.Duration
}

// New creates a controller, applies stored preferences and loads the first
// track without playing it.
func New(opts Options) (*Controller, error) {
	if opts.Catalog == nil || opts.Catalog.IsEmpty() {
		return nil, catalog.ErrNoTracks
	}
	c := &Controller{
		tracks:  opts.Catalog,
		player:  opts.Player,
		surface: opts.Surface,
		store:   opts.Store,
		logger:  opts.Logger,
		intn:    opts.Intn,
	}
	if c.logger == nil {
		c.logger = logging.Discard()
	}
	if c.intn == nil {
		c.intn = rand.IntN
	}
	if c.store == nil {
		c.store = prefs.NewMemory()
	}

	p, err := prefs.Load(c.store, opts.DefaultVolume)
	if err != nil {
		c.logger.Warn("loading preferences", "err", err)
	}
	c.prefs = p

	c.player.SetVolume(p.Volume)
	c.player.SetLoop(false)
	c.surface.SetVolume(p.Volume)
	c.surface.SetMuted(c.player.Muted())
	c.surface.SetAutoplay(p.AutoplayOnEnd)
	c.surface.SetRepeat(false)
	c.surface.SetShuffle(false)

	c.LoadTrack(0)
	return c, nil
}

// State returns a snapshot of the session state.
func (c *Controller) State() State { return c.state }

// Preferences returns the current playback preferences.
func (c *Controller) Preferences() prefs.Preferences { return c.prefs }

// Current returns the loaded track.
func (c *Controller) Current() (catalog.Track, bool) {
	if !c.state.Loaded {
		return catalog.Track{}, false
	}
	return c.tracks.At(c.state.CurrentIndex)
}

// Len returns the number of tracks.
func (c *Controller) Len() int { return c.tracks.Len() }

// Position returns the primitive's playback position.
func (c *Controller) Position() time.Duration { return c.player.Position() }

// Duration returns the loaded track's duration, 0 if unknown.
func (c *Controller) Duration() time.Duration { return c.duration }

// Volume returns the current volume level.
func (c *Controller) Volume() float64 { return c.prefs.Volume }

// Muted reports whether the primitive is muted.
func (c *Controller) Muted() bool { return c.player.Muted() }

// LoadTrack points the primitive at track i without starting playback.
// Out-of-range indices are ignored and reported as false.
func (c *Controller) LoadTrack(i int) bool {
	t, ok := c.tracks.At(i)
	if !ok {
		return false
	}

	c.state.CurrentIndex = i
	c.state.Loaded = true
	c.state.Seeking = false

	if err := c.player.SetSource(t.Source); err != nil {
		c.logger.Warn("loading track", "index", i, "source", t.Source, "err", err)
	}
	c.duration = c.player.Duration()

	c.surface.SetTrack(t)
	c.surface.SetNowPlaying(false)
	c.surface.SetElapsed(0)
	c.surface.SetSeekPosition(0)
	c.surface.SetDuration(c.duration)
	c.syncPlaying()

	c.logger.Debug("track loaded", "index", i, "title", t.Title)
	return true
}

// Play returns a pending start of the loaded track, or nil if nothing is
// loaded.
func (c *Controller) Play() Start {
	if !c.state.Loaded {
		return nil
	}
	p := c.player
	idx := c.state.CurrentIndex
	src := p.Source()
	return func() PlayResult {
		return PlayResult{Index: idx, Source: src, Err: p.Play()}
	}
}

// HandlePlayResult applies the outcome of a Start. A rejected start leaves
// the current index untouched and is returned wrapped in
// ErrPlaybackStartRejected.
func (c *Controller) HandlePlayResult(r PlayResult) error {
	c.syncPlaying()

	if r.Err != nil {
		c.logger.Error("playback start rejected", "index", r.Index, "source", r.Source, "err", r.Err)
		return fmt.Errorf("%w: %w", ErrPlaybackStartRejected, r.Err)
	}
	if r.Index == c.state.CurrentIndex && c.state.Playing {
		c.surface.SetNowPlaying(true)
	}
	return nil
}

// PlayIndex loads track i and returns a pending start.
func (c *Controller) PlayIndex(i int) (Start, error) {
	if !c.LoadTrack(i) {
		return nil, fmt.Errorf("%w: %d", ErrIndexOutOfRange, i)
	}
	return c.Play(), nil
}

// Pause pauses the primitive. It always succeeds.
func (c *Controller) Pause() {
	c.player.Pause()
	c.state.Playing = false
	c.surface.SetPlaying(false)
}

// TogglePlayPause pauses when playing, otherwise returns a pending start.
func (c *Controller) TogglePlayPause() Start {
	if c.state.Playing {
		c.Pause()
		return nil
	}
	return c.Play()
}

// Next loads the following track (or a random one when shuffling) and
// returns a pending start. Shuffle may pick the current track again.
func (c *Controller) Next() Start {
	n := c.tracks.Len()
	i := (c.state.CurrentIndex + 1) % n
	if c.state.Shuffle {
		i = c.intn(n)
	}
	c.LoadTrack(i)
	return c.Play()
}

// Prev loads the previous track cyclically and returns a pending start.
func (c *Controller) Prev() Start {
	n := c.tracks.Len()
	c.LoadTrack((c.state.CurrentIndex - 1 + n) % n)
	return c.Play()
}

// ToggleRepeat flips repeat and forwards it to the primitive's loop.
func (c *Controller) ToggleRepeat() bool {
	c.SetRepeat(!c.state.Repeat)
	return c.state.Repeat
}

// SetRepeat sets repeat and the primitive's native loop.
func (c *Controller) SetRepeat(on bool) {
	c.state.Repeat = on
	c.player.SetLoop(on)
	c.surface.SetRepeat(on)
}

// ToggleShuffle flips shuffle.
func (c *Controller) ToggleShuffle() bool {
	c.SetShuffle(!c.state.Shuffle)
	return c.state.Shuffle
}

// SetShuffle sets shuffle.
func (c *Controller) SetShuffle(on bool) {
	c.state.Shuffle = on
	c.surface.SetShuffle(on)
}

// ToggleAutoplay flips autoplay-on-end and persists it.
func (c *Controller) ToggleAutoplay() (bool, error) {
	c.prefs.AutoplayOnEnd = !c.prefs.AutoplayOnEnd
	c.surface.SetAutoplay(c.prefs.AutoplayOnEnd)
	if err := prefs.SaveAutoplay(c.store, c.prefs.AutoplayOnEnd); err != nil {
		c.logger.Warn("saving autoplay", "err", err)
		return c.prefs.AutoplayOnEnd, err
	}
	return c.prefs.AutoplayOnEnd, nil
}

// SetVolume clamps v to [0,1], applies it and persists it immediately.
// NaN leaves the volume unchanged.
func (c *Controller) SetVolume(v float64) error {
	if math.IsNaN(v) {
		c.logger.Warn("ignoring volume", "volume", v)
		return nil
	}
	v = prefs.ClampVolume(v)
	c.prefs.Volume = v
	c.player.SetVolume(v)
	c.surface.SetVolume(v)
	if err := prefs.SaveVolume(c.store, v); err != nil {
		c.logger.Warn("saving volume", "err", err)
		return err
	}
	return nil
}

// NudgeVolume changes the volume by delta, rounded to two decimals.
func (c *Controller) NudgeVolume(delta float64) error {
	return c.SetVolume(math.Round((c.prefs.Volume+delta)*100) / 100)
}

// ToggleMute flips the primitive's mute.
func (c *Controller) ToggleMute() bool {
	muted := !c.player.Muted()
	c.player.SetMuted(muted)
	c.surface.SetMuted(muted)
	return muted
}

// OnSeekStart marks the beginning of a seek drag.
func (c *Controller) OnSeekStart() {
	c.state.Seeking = true
}

// OnSeekDrag moves the seek thumb without seeking the primitive.
func (c *Controller) OnSeekDrag(pos time.Duration) {
	if !c.state.Seeking {
		return
	}
	c.surface.SetSeekPosition(c.clampPosition(pos))
}

// OnSeekCommit ends a seek drag and seeks to pos clamped to [0, duration].
func (c *Controller) OnSeekCommit(pos time.Duration) {
	c.state.Seeking = false
	c.SeekTo(pos)
}

// SeekBy seeks relative to the current position.
func (c *Controller) SeekBy(delta time.Duration) {
	c.SeekTo(c.player.Position() + delta)
}

// SeekTo seeks to pos clamped to [0, duration].
func (c *Controller) SeekTo(pos time.Duration) {
	pos = c.clampPosition(pos)
	if err := c.player.Seek(pos); err != nil {
		c.logger.Warn("seeking", "position", pos, "err", err)
	}
	c.surface.SetElapsed(pos)
	if !c.state.Seeking {
		c.surface.SetSeekPosition(pos)
	}
}

func (c *Controller) clampPosition(pos time.Duration) time.Duration {
	return lo.Clamp(pos, 0, max(c.duration, 0))
}

// OnTimeUpdate reports the primitive's progress. Elapsed text always
// follows; the seek thumb is left alone while seeking.
func (c *Controller) OnTimeUpdate(pos time.Duration) {
	c.syncPlaying()
	c.surface.SetElapsed(pos)
	if !c.state.Seeking {
		c.surface.SetSeekPosition(pos)
	}
}

// OnMetadataLoaded sets the total duration and seek range.
func (c *Controller) OnMetadataLoaded(d time.Duration) {
	c.syncPlaying()
	c.duration = max(d, 0)
	c.surface.SetDuration(c.duration)
}

// OnEnded handles the end of the track. While looping it does nothing;
// otherwise it advances with autoplay or pauses.
func (c *Controller) OnEnded() Start {
	if c.player.Loop() {
		return nil
	}
	c.syncPlaying()
	if c.prefs.AutoplayOnEnd {
		return c.Next()
	}
	c.Pause()
	return nil
}

// HandleEvent dispatches a primitive event. Events for a source other than
// the loaded one are ignored.
func (c *Controller) HandleEvent(e player.Event) Start {
	if e.Source != c.player.Source() {
		c.logger.Debug("stale player event", "kind", e.Kind, "source", e.Source)
		return nil
	}
	switch e.Kind {
	case player.EventMetadataLoaded:
		c.OnMetadataLoaded(e.Duration)
	case player.EventEnded:
		return c.OnEnded()
	}
	return nil
}

func (c *Controller) syncPlaying() {
	c.state.Playing = c.player.State() == player.Playing
	c.surface.SetPlaying(c.state.Playing)
}
