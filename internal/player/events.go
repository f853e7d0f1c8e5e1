package player

import "time"

const eventBufferSize = 16

// EventKind identifies a primitive event.
type EventKind int

const (
	EventMetadataLoaded EventKind = iota
	EventEnded
)

// String returns the event name.
func (k EventKind) String() string {
	switch k {
	case EventMetadataLoaded:
		return "MetadataLoaded"
	case EventEnded:
		return "Ended"
	default:
		return "Unknown"
	}
}

// Event is emitted by the primitive on its event channel.
type Event struct {
	Kind     EventKind
	Source   string        // locator the event refers to
	Duration time.Duration // set for EventMetadataLoaded
}

// send delivers an event without blocking, dropping it if the buffer is full.
func send(ch chan Event, e Event) {
	select {
	case ch <- e:
	default:
	}
}
