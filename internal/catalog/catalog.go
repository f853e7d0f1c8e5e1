// Package catalog holds the static, ordered list of tracks the player works on.
package catalog

import (
	"errors"

	"github.com/samber/lo"

	"github.com/llehouerou/cassette/internal/config"
)

// ErrNoTracks is returned when neither the config nor the music directory
// yields a single playable track.
var ErrNoTracks = errors.New("no tracks found")

// Track is an immutable track record. Its identity is its position in the
// catalog.
type Track struct {
	Title  string
	Artist string
	Source string // locator of the audio data
	Cover  string // locator of the cover image, may be empty
}

// Catalog is an immutable ordered list of tracks.
type Catalog struct {
	tracks []Track
}

// New creates a catalog from the given tracks. The slice is copied.
func New(tracks []Track) *Catalog {
	return &Catalog{tracks: append([]Track(nil), tracks...)}
}

// FromConfig builds a catalog from [[tracks]] entries, in file order.
// Entries without a source are skipped.
func FromConfig(entries []config.TrackConfig) *Catalog {
	tracks := lo.FilterMap(entries, func(e config.TrackConfig, _ int) (Track, bool) {
		if e.Source == "" {
			return Track{}, false
		}
		return Track{
			Title:  titleOrFilename(e.Title, e.Source),
			Artist: e.Artist,
			Source: e.Source,
			Cover:  e.Cover,
		}, true
	})
	return &Catalog{tracks: tracks}
}

// Merge returns a catalog with c's tracks followed by other's tracks whose
// source is not already present.
func (c *Catalog) Merge(other *Catalog) *Catalog {
	seen := make(map[string]bool, len(c.tracks))
	for _, t := range c.tracks {
		seen[t.Source] = true
	}
	merged := append([]Track(nil), c.tracks...)
	for _, t := range other.tracks {
		if !seen[t.Source] {
			seen[t.Source] = true
			merged = append(merged, t)
		}
	}
	return &Catalog{tracks: merged}
}

// Len returns the number of tracks.
func (c *Catalog) Len() int {
	return len(c.tracks)
}

// At returns the track at index i.
func (c *Catalog) At(i int) (Track, bool) {
	if i < 0 || i >= len(c.tracks) {
		return Track{}, false
	}
	return c.tracks[i], true
}

// All returns a copy of all tracks.
func (c *Catalog) All() []Track {
	return append([]Track(nil), c.tracks...)
}

// IsEmpty returns true if the catalog has no tracks.
func (c *Catalog) IsEmpty() bool {
	return len(c.tracks) == 0
}
