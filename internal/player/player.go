package player

import (
	"os"
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
	"github.com/gopxl/beep/v2/speaker"
)

// resampleQuality is the beep resampler quality used when a track's sample
// rate differs from the speaker's.
const resampleQuality = 4

var (
	speakerMu          sync.Mutex
	speakerInitialized bool
	speakerSampleRate  beep.SampleRate
)

// initSpeaker initializes the speaker at the first sample rate it sees.
// Tracks at other rates are resampled.
func initSpeaker(sr beep.SampleRate) (beep.SampleRate, error) {
	speakerMu.Lock()
	defer speakerMu.Unlock()

	if speakerInitialized {
		return speakerSampleRate, nil
	}
	if err := speaker.Init(sr, sr.N(time.Second/10)); err != nil {
		return 0, err
	}
	speakerInitialized = true
	speakerSampleRate = sr
	return sr, nil
}

// Player plays local audio files through the system speaker.
// All methods are safe for concurrent use.
type Player struct {
	mu sync.Mutex

	state    State
	source   string
	file     *os.File
	streamer beep.StreamSeekCloser
	format   beep.Format
	duration time.Duration
	loadErr  error

	// Playback chain, built on the first Play after a load or an end.
	loop    *loopStreamer
	ctrl    *beep.Ctrl
	volume  *effects.Volume
	started bool

	volumeLevel float64
	muted       bool
	looping     bool

	// generation invalidates end callbacks of replaced chains.
	generation uint64
	events     chan Event
	closed     bool
}

// New creates a stopped player at full volume.
func New() *Player {
	return &Player{
		state:       Stopped,
		volumeLevel: 1.0,
		events:      make(chan Event, eventBufferSize),
	}
}

// SetSource stops the current track and loads locator. Decoding errors are
// returned and also kept so that the following Play is rejected.
func (p *Player) SetSource(locator string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.unloadLocked()
	p.source = locator

	f, streamer, format, err := openStream(locator)
	if err != nil {
		p.loadErr = err
		return err
	}

	p.file = f
	p.streamer = streamer
	p.format = format
	p.duration = format.SampleRate.D(streamer.Len())

	if !p.closed {
		send(p.events, Event{Kind: EventMetadataLoaded, Source: locator, Duration: p.duration})
	}
	return nil
}

// Source returns the current locator.
func (p *Player) Source() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.source
}

// Play starts or resumes the loaded track.
func (p *Player) Play() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.source == "" {
		return ErrNoSource
	}
	if p.loadErr != nil {
		return p.loadErr
	}
	if p.state == Playing {
		return nil
	}

	if p.started {
		speaker.Lock()
		p.ctrl.Paused = false
		speaker.Unlock()
		p.state = Playing
		return nil
	}

	sr, err := initSpeaker(p.format.SampleRate)
	if err != nil {
		return err
	}

	p.loop = &loopStreamer{src: p.streamer, loop: p.looping}
	var s beep.Streamer = p.loop
	if p.format.SampleRate != sr {
		s = beep.Resample(resampleQuality, p.format.SampleRate, sr, p.loop)
	}
	p.ctrl = &beep.Ctrl{Streamer: s}
	p.volume = p.newVolume(p.ctrl)

	gen := p.generation
	// The callback runs with the speaker locked.
	speaker.Play(beep.Seq(p.volume, beep.Callback(func() {
		go p.handleEnd(gen)
	})))

	p.started = true
	p.state = Playing
	return nil
}

// handleEnd rewinds a finished track and reports it.
func (p *Player) handleEnd(gen uint64) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if gen != p.generation || p.streamer == nil {
		return
	}

	p.generation++
	p.started = false
	p.state = Stopped
	p.ctrl = nil
	p.volume = nil
	p.loop = nil

	speaker.Lock()
	_ = p.streamer.Seek(0)
	speaker.Unlock()

	if !p.closed {
		send(p.events, Event{Kind: EventEnded, Source: p.source})
	}
}

// Pause pauses playback. It never fails.
func (p *Player) Pause() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.state != Playing || p.ctrl == nil {
		return
	}
	speaker.Lock()
	p.ctrl.Paused = true
	speaker.Unlock()
	p.state = Paused
}

// State returns the current playback state.
func (p *Player) State() State {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

// Position returns the current playback position.
func (p *Player) Position() time.Duration {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.streamer == nil {
		return 0
	}
	speaker.Lock()
	pos := p.format.SampleRate.D(p.streamer.Position())
	speaker.Unlock()
	return pos
}

// Duration returns the loaded track's duration, or 0 if none is loaded.
func (p *Player) Duration() time.Duration {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.duration
}

// Seek moves to the given position, clamped to the track bounds.
func (p *Player) Seek(to time.Duration) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.streamer == nil {
		return ErrNoSource
	}

	n := p.format.SampleRate.N(to)
	n = max(0, min(n, p.streamer.Len()-1))

	speaker.Lock()
	err := p.streamer.Seek(n)
	speaker.Unlock()
	return err
}

// SetLoop enables or disables native looping.
func (p *Player) SetLoop(loop bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.looping = loop
	if p.loop != nil {
		speaker.Lock()
		p.loop.loop = loop
		speaker.Unlock()
	}
}

// Loop reports whether native looping is enabled.
func (p *Player) Loop() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.looping
}

// Events returns the channel on which metadata and end events are delivered.
func (p *Player) Events() <-chan Event {
	return p.events
}

// Close stops playback and releases the loaded track.
func (p *Player) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return nil
	}
	p.unloadLocked()
	p.closed = true
	close(p.events)
	return nil
}

// unloadLocked stops the current chain and closes the loaded stream.
func (p *Player) unloadLocked() {
	if p.started {
		speaker.Clear()
	}
	p.generation++

	if p.streamer != nil {
		p.streamer.Close()
		p.streamer = nil
	}
	if p.file != nil {
		p.file.Close()
		p.file = nil
	}

	p.ctrl = nil
	p.volume = nil
	p.loop = nil
	p.started = false
	p.state = Stopped
	p.duration = 0
	p.loadErr = nil
	p.source = ""
}
