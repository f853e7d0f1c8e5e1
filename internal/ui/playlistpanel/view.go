package playlistpanel

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/cassette/internal/icons"
	"github.com/llehouerou/cassette/internal/playlist"
	"github.com/llehouerou/cassette/internal/ui"
	"github.com/llehouerou/cassette/internal/ui/render"
	"github.com/llehouerou/cassette/internal/ui/styles"
)

const (
	// listTop is the first list row: top border, header and separator.
	listTop = 1 + ui.HeaderHeight

	markerWidth   = 3
	durationWidth = 6
)

// View renders the panel.
func (m Model) View() string {
	if m.Width() == 0 || m.Height() == 0 {
		return ""
	}

	innerWidth := m.Width() - ui.BorderHeight
	listHeight := m.listHeight()

	header := m.renderHeader(innerWidth)
	separator := styles.T().S().Subtle.Render(render.Separator(innerWidth))
	list := m.renderRows(innerWidth, listHeight)

	return styles.PanelStyle(m.IsFocused()).
		Width(innerWidth).
		Render(header + "\n" + separator + "\n" + list)
}

func (m Model) renderHeader(innerWidth int) string {
	left := fmt.Sprintf("Playlist (%d)", m.view.Len())
	if q := m.view.Query(); q != "" {
		left = fmt.Sprintf("Playlist (%d) /%s", m.view.Len(), q)
	}
	return styles.T().S().Title.Render(render.TruncateAndPad(left, innerWidth))
}

func (m Model) renderRows(innerWidth, listHeight int) string {
	rows := m.view.Rows()
	start, end := m.scroll.visible(len(rows), listHeight)

	lines := make([]string, 0, listHeight)
	for i := start; i < end; i++ {
		lines = append(lines, m.renderRow(rows[i], i, innerWidth))
	}
	for len(lines) < listHeight {
		lines = append(lines, render.EmptyLine(innerWidth))
	}
	return strings.Join(lines, "\n")
}

// renderRow renders: marker, title, artist and duration right-aligned.
func (m Model) renderRow(r playlist.Row, row, width int) string {
	marker := "   "
	if r.Active {
		marker = render.Pad(icons.NowPlaying(), markerWidth)
	}

	contentWidth := max(width-markerWidth-durationWidth, 0)
	titleWidth := contentWidth * 3 / 5
	artistWidth := contentWidth - titleWidth

	title := render.TruncateAndPad(icons.FormatAudio(r.Title), titleWidth)
	artist := render.TruncateAndPad(r.Artist, artistWidth)
	duration := fmt.Sprintf("%*s", durationWidth, r.Duration)

	line := marker + title + artist + duration
	return m.rowStyle(r, row).Render(line)
}

func (m Model) rowStyle(r playlist.Row, row int) lipgloss.Style {
	st := styles.T().S()
	switch {
	case m.IsFocused() && row == m.scroll.pos && r.Active:
		return st.Cursor.Foreground(styles.T().Primary).Bold(true)
	case m.IsFocused() && row == m.scroll.pos:
		return st.Cursor
	case r.Active:
		return st.Playing
	case r.Duration == render.DurationPlaceholder:
		return st.Muted
	default:
		return st.Base
	}
}
