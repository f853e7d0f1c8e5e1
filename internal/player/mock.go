package player

import (
	"sync"
	"time"
)

// Mock is a test double for Player.
type Mock struct {
	mu sync.Mutex

	state    State
	source   string
	position time.Duration
	duration time.Duration
	volume   float64
	muted    bool
	loop     bool

	sourceErr error
	playErr   error

	sourceCalls []string
	playCalls   int
	seekCalls   []time.Duration

	events chan Event
}

// NewMock creates a new mock player for testing.
func NewMock() *Mock {
	return &Mock{
		state:  Stopped,
		volume: 1.0,
		events: make(chan Event, eventBufferSize),
	}
}

func (m *Mock) SetSource(locator string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.sourceCalls = append(m.sourceCalls, locator)
	m.source = locator
	m.state = Stopped
	m.position = 0
	return m.sourceErr
}

func (m *Mock) Source() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.source
}

func (m *Mock) Play() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.playCalls++
	if m.playErr != nil {
		return m.playErr
	}
	if m.source == "" {
		return ErrNoSource
	}
	m.state = Playing
	return nil
}

func (m *Mock) Pause() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.state == Playing {
		m.state = Paused
	}
}

func (m *Mock) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

func (m *Mock) Position() time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.position
}

func (m *Mock) Duration() time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.duration
}

func (m *Mock) Seek(to time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.seekCalls = append(m.seekCalls, to)
	m.position = to
	return nil
}

func (m *Mock) SetVolume(level float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.volume = max(0, min(level, 1))
}

func (m *Mock) Volume() float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.volume
}

func (m *Mock) SetMuted(muted bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.muted = muted
}

func (m *Mock) Muted() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.muted
}

func (m *Mock) SetLoop(loop bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.loop = loop
}

func (m *Mock) Loop() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.loop
}

func (m *Mock) Events() <-chan Event { return m.events }

func (m *Mock) Close() error { return nil }

// Test helpers

// SetPlayError makes subsequent Play calls fail with err.
func (m *Mock) SetPlayError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.playErr = err
}

func (m *Mock) SetState(s State) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.state = s
}

// SetSourceError makes subsequent SetSource calls fail with err.
func (m *Mock) SetSourceError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sourceErr = err
}

func (m *Mock) SetDuration(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.duration = d
}

func (m *Mock) SetPosition(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.position = d
}

// SimulateEnded stops the mock like a finished track and emits EventEnded.
func (m *Mock) SimulateEnded() {
	m.mu.Lock()
	m.state = Stopped
	src := m.source
	m.mu.Unlock()
	send(m.events, Event{Kind: EventEnded, Source: src})
}

// Emit delivers an arbitrary event.
func (m *Mock) Emit(e Event) {
	send(m.events, e)
}

// SourceCalls returns the locators passed to SetSource, in order.
func (m *Mock) SourceCalls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.sourceCalls...)
}

// PlayCalls returns the number of Play calls.
func (m *Mock) PlayCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.playCalls
}

// SeekCalls returns the positions passed to Seek, in order.
func (m *Mock) SeekCalls() []time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]time.Duration(nil), m.seekCalls...)
}

// Verify Mock implements Interface at compile time.
var _ Interface = (*Mock)(nil)
