// Package playerbar renders the transport bar: track info, mode flags,
// volume gauge and the seek bar.
package playerbar

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/cassette/internal/icons"
	"github.com/llehouerou/cassette/internal/ui/render"
	"github.com/llehouerou/cassette/internal/ui/styles"
)

const (
	borderWidth = 1
	padX        = 2
	clockGap    = 2

	// Height is the total height of the bar: two content rows plus borders.
	Height = 4
	// SeekRow is the seek bar's row offset from the top of the bar.
	SeekRow = 2
)

// State holds everything needed to render the player bar.
type State struct {
	Title        string
	Artist       string
	Playing      bool
	NowPlaying   bool
	Elapsed      time.Duration
	SeekPosition time.Duration
	Duration     time.Duration
	Volume       float64
	Muted        bool
	Repeat       bool
	Shuffle      bool
	Autoplay     bool
}

// Render returns the player bar for the given width.
func Render(s State, width int) string {
	inner := innerWidth(width)
	content := renderInfoLine(s, inner) + "\n" + renderSeekLine(s, inner)

	return barStyle().
		Padding(0, padX).
		Width(max(width-2*borderWidth, 0)).
		Render(content)
}

func renderInfoLine(s State, inner int) string {
	right := renderFlags(s) + "  " + renderVolume(s.Volume, s.Muted)

	glyph := icons.Transport(s.Playing)
	if s.NowPlaying {
		glyph = icons.NowPlaying() + glyph
	}
	glyph = styles.T().S().Playing.Render(glyph)

	avail := max(inner-lipgloss.Width(right)-lipgloss.Width(glyph)-3, 0)

	title := s.Title
	if title == "" {
		title = "Unknown Track"
	}
	title = render.TruncateEllipsis(render.Sanitize(title), avail)
	left := glyph + "  " + styles.T().S().Title.Render(title)

	if s.Artist != "" {
		if rest := avail - lipgloss.Width(title) - 3; rest > 3 {
			artist := render.TruncateEllipsis(render.Sanitize(s.Artist), rest)
			left += styles.T().S().Muted.Render(" · " + artist)
		}
	}

	return render.Row(left, right, inner)
}

func renderFlags(s State) string {
	flag := func(on bool, icon string) string {
		if on {
			return styles.T().S().FlagOn.Render(icon)
		}
		return styles.T().S().FlagOff.Render(icon)
	}
	return strings.Join([]string{
		flag(s.Repeat, icons.Repeat()),
		flag(s.Shuffle, icons.Shuffle()),
		flag(s.Autoplay, icons.Autoplay()),
	}, " ")
}

// renderVolume renders the volume gauge, e.g. "vol  90%".
func renderVolume(volume float64, muted bool) string {
	pct := int(volume*100 + 0.5)
	return styles.T().S().Muted.Render(fmt.Sprintf("%s %3d%%", icons.Volume(muted), pct))
}

func renderSeekLine(s State, inner int) string {
	total := render.FormatClock(s.Duration)
	clock := lipgloss.Width(total)
	elapsed := fmt.Sprintf("%*s", clock, render.FormatClock(s.Elapsed))

	barWidth := inner - 2*(clock+clockGap)
	if barWidth < 3 {
		return elapsed + " / " + total
	}

	gap := strings.Repeat(" ", clockGap)
	return elapsed + gap + renderSeekBar(s.SeekPosition, s.Duration, barWidth) + gap + total
}

// renderSeekBar renders the bar with a thumb at pos.
func renderSeekBar(pos, duration time.Duration, width int) string {
	thumb := thumbColumn(pos, duration, width)
	st := styles.T().S()
	return st.SeekFilled.Render(strings.Repeat("━", thumb)) +
		st.SeekThumb.Render("●") +
		st.SeekEmpty.Render(strings.Repeat("─", width-thumb-1))
}

func thumbColumn(pos, duration time.Duration, width int) int {
	if duration <= 0 || width < 2 {
		return 0
	}
	ratio := float64(max(pos, 0)) / float64(duration)
	return min(int(ratio*float64(width-1)+0.5), width-1)
}

func innerWidth(width int) int {
	return max(width-2*borderWidth-2*padX, 0)
}

// seekBounds returns the first column of the seek bar and its width,
// relative to the bar's left edge.
func seekBounds(s State, width int) (start, barWidth int) {
	clock := lipgloss.Width(render.FormatClock(s.Duration))
	start = borderWidth + padX + clock + clockGap
	barWidth = innerWidth(width) - 2*(clock+clockGap)
	return start, barWidth
}

// SeekPositionAt maps column x of a bar rendered at width to a position in
// the track. It reports false outside the seek bar or when the duration is
// unknown.
func SeekPositionAt(s State, width, x int) (time.Duration, bool) {
	start, barWidth := seekBounds(s, width)
	if s.Duration <= 0 || barWidth < 3 || x < start || x >= start+barWidth {
		return 0, false
	}
	ratio := float64(x-start) / float64(barWidth-1)
	return time.Duration(ratio * float64(s.Duration)), true
}

// ClampedSeekPositionAt is like SeekPositionAt but clamps columns outside
// the bar to its ends, for drags that leave the bar.
func ClampedSeekPositionAt(s State, width, x int) time.Duration {
	start, barWidth := seekBounds(s, width)
	if s.Duration <= 0 || barWidth < 3 {
		return 0
	}
	x = min(max(x, start), start+barWidth-1)
	pos, _ := SeekPositionAt(s, width, x)
	return pos
}

func barStyle() lipgloss.Style {
	return styles.PanelStyle(false)
}
