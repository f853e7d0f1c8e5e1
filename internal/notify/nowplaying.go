package notify

import (
	"strings"

	"github.com/llehouerou/cassette/internal/catalog"
)

// DefaultTimeout is how long a "Now playing" bubble stays up, in ms.
const DefaultTimeout int32 = 5000

// NowPlaying sends one notification per track change and replaces the
// previous one instead of stacking them.
type NowPlaying struct {
	notifier Notifier
	timeout  int32
	lastID   uint32
}

// NewNowPlaying wraps n. A nil notifier makes Send a no-op.
func NewNowPlaying(n Notifier, timeout int32) *NowPlaying {
	return &NowPlaying{notifier: n, timeout: timeout}
}

// Send announces t. The cover locator is used as icon, falling back to an
// image next to the audio file.
func (p *NowPlaying) Send(t catalog.Track) error {
	if p == nil || p.notifier == nil {
		return nil
	}

	icon := t.Cover
	if icon == "" {
		icon = catalog.FindCover(t.Source)
	}

	id, err := p.notifier.Notify(Notification{
		Title:      nowPlayingTitle(t),
		Body:       strings.TrimSpace(t.Artist),
		Icon:       icon,
		Timeout:    p.timeout,
		ReplacesID: p.lastID,
		Urgency:    UrgencyLow,
	})
	if err != nil {
		return err
	}
	p.lastID = id
	return nil
}

// Dismiss closes the last notification, if any.
func (p *NowPlaying) Dismiss() error {
	if p == nil || p.notifier == nil || p.lastID == 0 {
		return nil
	}
	id := p.lastID
	p.lastID = 0
	return p.notifier.Close(id)
}

func nowPlayingTitle(t catalog.Track) string {
	if title := strings.TrimSpace(t.Title); title != "" {
		return title
	}
	return "Now playing"
}
