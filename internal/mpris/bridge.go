// Package mpris exposes the player to desktop media keys and applets over
// MPRIS. Reads are served from a published snapshot; writes are queued as
// commands for the UI loop to apply.
package mpris

import (
	"errors"
	"sync"
	"time"
)

// ErrClosed is returned when a command arrives after the bridge was closed.
var ErrClosed = errors.New("mpris: bridge closed")

// Snapshot is the read-only view of the session served to D-Bus clients.
type Snapshot struct {
	Loaded   bool
	Playing  bool
	Index    int
	Count    int
	Title    string
	Artist   string
	Source   string
	Cover    string
	Length   time.Duration
	Position time.Duration
	Volume   float64
	Muted    bool
	Repeat   bool
	Shuffle  bool
}

// CommandKind identifies a remote control request.
type CommandKind int

const (
	CommandPlay CommandKind = iota
	CommandPause
	CommandToggle
	CommandNext
	CommandPrevious
	CommandSeek        // relative, uses Offset
	CommandSetPosition // absolute, uses Position
	CommandSetRepeat   // uses Enabled
	CommandSetShuffle  // uses Enabled
	CommandSetVolume   // uses Volume
)

// Command is a remote control request to be applied on the UI loop.
type Command struct {
	Kind     CommandKind
	Offset   time.Duration
	Position time.Duration
	Enabled  bool
	Volume   float64
}

const commandBuffer = 16

// Bridge hands snapshots to D-Bus handlers and commands back to the UI.
// Publish and Commands are called from the UI side; Snapshot and Dispatch
// from D-Bus handler goroutines.
type Bridge struct {
	mu   sync.RWMutex
	snap Snapshot

	commands chan Command
	done     chan struct{}
	once     sync.Once
}

// NewBridge creates an open bridge with an empty snapshot.
func NewBridge() *Bridge {
	return &Bridge{
		commands: make(chan Command, commandBuffer),
		done:     make(chan struct{}),
	}
}

// Publish replaces the snapshot.
func (b *Bridge) Publish(s Snapshot) {
	b.mu.Lock()
	b.snap = s
	b.mu.Unlock()
}

// Snapshot returns the last published snapshot.
func (b *Bridge) Snapshot() Snapshot {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.snap
}

// Dispatch queues cmd for the UI loop. It blocks while the queue is full
// and fails once the bridge is closed.
func (b *Bridge) Dispatch(cmd Command) error {
	select {
	case <-b.done:
		return ErrClosed
	default:
	}
	select {
	case b.commands <- cmd:
		return nil
	case <-b.done:
		return ErrClosed
	}
}

// Next blocks until a command is queued. ok is false once the bridge is
// closed.
func (b *Bridge) Next() (cmd Command, ok bool) {
	select {
	case cmd = <-b.commands:
		return cmd, true
	case <-b.done:
		return Command{}, false
	}
}

// Close releases any goroutine blocked in Dispatch or Next.
func (b *Bridge) Close() {
	b.once.Do(func() { close(b.done) })
}
