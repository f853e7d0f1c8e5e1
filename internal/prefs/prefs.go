package prefs

import (
	"math"
	"strconv"

	"github.com/samber/lo"
)

// Keys used in the store.
const (
	KeyVolume   = "vol"
	KeyAutoplay = "autoplay"
)

// DefaultVolume replaces a volume that is not a number.
const DefaultVolume = 0.9

// Preferences are the persisted playback preferences.
type Preferences struct {
	Volume        float64 // 0.0 to 1.0
	AutoplayOnEnd bool
}

// Load reads preferences from the store. A missing, unparsable or NaN volume
// falls back to defaultVolume; the stored value is clamped to [0,1].
// Autoplay is on only when stored as exactly "true".
func Load(s Store, defaultVolume float64) (Preferences, error) {
	p := Preferences{Volume: ClampVolume(defaultVolume)}

	raw, ok, err := s.Get(KeyVolume)
	if err != nil {
		return p, err
	}
	if ok {
		if v, perr := strconv.ParseFloat(raw, 64); perr == nil && !math.IsNaN(v) {
			p.Volume = ClampVolume(v)
		}
	}

	raw, ok, err = s.Get(KeyAutoplay)
	if err != nil {
		return p, err
	}
	p.AutoplayOnEnd = ok && raw == "true"

	return p, nil
}

// SaveVolume persists the volume level.
func SaveVolume(s Store, v float64) error {
	return s.Set(KeyVolume, FormatVolume(v))
}

// SaveAutoplay persists the autoplay-on-end flag.
func SaveAutoplay(s Store, on bool) error {
	return s.Set(KeyAutoplay, strconv.FormatBool(on))
}

// FormatVolume renders a volume with the shortest exact representation,
// so 0.3 becomes "0.3".
func FormatVolume(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// ClampVolume limits v to [0,1]. NaN maps to DefaultVolume.
func ClampVolume(v float64) float64 {
	if math.IsNaN(v) {
		return DefaultVolume
	}
	return lo.Clamp(v, 0, 1)
}
