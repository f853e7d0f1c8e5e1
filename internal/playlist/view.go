// Package playlist implements the playlist view: rendered rows, filtering
// and duration probing keyed by original track index.
package playlist

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/samber/lo"

	"github.com/llehouerou/cassette/internal/catalog"
	"github.com/llehouerou/cassette/internal/ui/render"
)

// ErrMetadataProbeFailed wraps a failed duration lookup.
var ErrMetadataProbeFailed = errors.New("metadata probe failed")

// NoCurrent is the highlight value when no track is current.
const NoCurrent = -1

// Entry pairs a track with its original catalog index.
type Entry struct {
	Index int
	Track catalog.Track
}

// Row is one rendered playlist line.
type Row struct {
	Index    int
	Title    string
	Artist   string
	Cover    string
	Duration string
	Active   bool
}

// ProbeRequest asks for the duration of one track.
type ProbeRequest struct {
	Index  int
	Source string
}

// View is the playlist state. Rows always refer to original catalog indices,
// so filtering never changes selection or highlighting.
type View struct {
	all       []Entry
	rows      []Row
	durations map[int]time.Duration
	current   int
	query     string
}

// New creates a view listing the whole catalog.
func New(c *catalog.Catalog) *View {
	tracks := c.All()
	all := make([]Entry, len(tracks))
	for i, t := range tracks {
		all[i] = Entry{Index: i, Track: t}
	}
	v := &View{
		all:       all,
		durations: make(map[int]time.Duration),
		current:   NoCurrent,
	}
	v.Render(all)
	return v
}

// Render replaces the rows with entries, in the given order. Known durations
// are filled in, others show a placeholder.
func (v *View) Render(entries []Entry) {
	rows := make([]Row, len(entries))
	for i, e := range entries {
		rows[i] = Row{
			Index:    e.Index,
			Title:    e.Track.Title,
			Artist:   e.Track.Artist,
			Cover:    e.Track.Cover,
			Duration: v.durationText(e.Index),
			Active:   e.Index == v.current,
		}
	}
	v.rows = rows
}

// HighlightCurrent marks the row for original index i as active. Nothing is
// highlighted if i is not rendered.
func (v *View) HighlightCurrent(i int) {
	v.current = i
	for r := range v.rows {
		v.rows[r].Active = v.rows[r].Index == i
	}
}

// Filter renders the tracks whose title or artist contains q, ignoring case.
// An empty query renders everything in original order.
func (v *View) Filter(q string) {
	v.query = q
	v.Render(v.matching(q))
}

func (v *View) matching(q string) []Entry {
	if q == "" {
		return v.all
	}
	q = strings.ToLower(q)
	return lo.Filter(v.all, func(e Entry, _ int) bool {
		return strings.Contains(strings.ToLower(e.Track.Title), q) ||
			strings.Contains(strings.ToLower(e.Track.Artist), q)
	})
}

// ProbeRequests returns one request per catalog track.
func (v *View) ProbeRequests() []ProbeRequest {
	return lo.Map(v.all, func(e Entry, _ int) ProbeRequest {
		return ProbeRequest{Index: e.Index, Source: e.Track.Source}
	})
}

// SetDuration records the probed duration of original index i.
// Results may arrive in any order.
func (v *View) SetDuration(i int, d time.Duration) {
	if i < 0 || i >= len(v.all) {
		return
	}
	v.durations[i] = d
	for r := range v.rows {
		if v.rows[r].Index == i {
			v.rows[r].Duration = render.FormatClock(d)
		}
	}
}

// ProbeFailed leaves the placeholder for original index i and returns the
// wrapped failure.
func (v *View) ProbeFailed(i int, err error) error {
	return fmt.Errorf("%w: track %d: %w", ErrMetadataProbeFailed, i, err)
}

// Duration returns the probed duration of original index i.
func (v *View) Duration(i int) (time.Duration, bool) {
	d, ok := v.durations[i]
	return d, ok
}

// Select maps a rendered row to its original index.
func (v *View) Select(row int) (int, bool) {
	if row < 0 || row >= len(v.rows) {
		return 0, false
	}
	return v.rows[row].Index, true
}

// RowOf returns the rendered row showing original index i.
func (v *View) RowOf(i int) (int, bool) {
	_, row, ok := lo.FindIndexOf(v.rows, func(r Row) bool { return r.Index == i })
	return row, ok
}

// Rows returns a copy of the rendered rows.
func (v *View) Rows() []Row {
	return append([]Row(nil), v.rows...)
}

// Len returns the number of rendered rows.
func (v *View) Len() int { return len(v.rows) }

// Query returns the active filter.
func (v *View) Query() string { return v.query }

// Current returns the highlighted original index, or NoCurrent.
func (v *View) Current() int { return v.current }

func (v *View) durationText(i int) string {
	if d, ok := v.durations[i]; ok {
		return render.FormatClock(d)
	}
	return render.DurationPlaceholder
}
