package render

import (
	"fmt"
	"time"
)

// DurationPlaceholder is shown where a duration is not known yet.
const DurationPlaceholder = "--:--"

// FormatClock formats a duration as m:ss. Zero and negative durations
// render as 0:00.
func FormatClock(d time.Duration) string {
	if d <= 0 {
		return "0:00"
	}
	m := int(d.Minutes())
	s := int(d.Seconds()) % 60
	return fmt.Sprintf("%d:%02d", m, s)
}
