// Package notify shows desktop notifications for track changes.
package notify

// Urgency is the freedesktop notification urgency hint.
type Urgency byte

const (
	UrgencyLow Urgency = iota
	UrgencyNormal
	UrgencyCritical
)

// Notification is one desktop notification.
type Notification struct {
	Title string
	Body  string
	// Icon is an image path or a themed icon name.
	Icon string
	// Timeout in ms; -1 lets the server decide, 0 never expires.
	Timeout int32
	// ReplacesID updates an existing notification in place when non-zero.
	ReplacesID uint32
	Urgency    Urgency
}

// Notifier sends desktop notifications.
type Notifier interface {
	// Notify shows n and returns its server ID, or 0 when nothing is shown.
	Notify(n Notification) (uint32, error)
	Close(id uint32) error
}

// nopNotifier is used where no notification server is reachable.
type nopNotifier struct{}

func (nopNotifier) Notify(Notification) (uint32, error) { return 0, nil }
func (nopNotifier) Close(uint32) error                  { return nil }
