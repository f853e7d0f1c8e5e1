package app

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/cassette/internal/ui"
	"github.com/llehouerou/cassette/internal/ui/playerbar"
)

const (
	headerHeight = 1
	footerHeight = 1

	// minCoverLayoutWidth is the terminal width below which the cover pane
	// is hidden.
	minCoverLayoutWidth = 80
	minCoverArtWidth    = 8
)

// layout is the screen geometry for the current terminal size.
type layout struct {
	coverWidth  int // total width of the cover pane, 0 when hidden
	coverArtW   int
	coverArtH   int
	bodyTop     int
	bodyHeight  int
	panelLeft   int
	panelWidth  int
	barTop      int
	footerTop   int
	screenWidth int
}

func (m Model) layout() layout {
	l := layout{
		bodyTop:     headerHeight,
		bodyHeight:  max(m.height-headerHeight-playerbar.Height-footerHeight, 0),
		screenWidth: m.width,
	}
	l.barTop = l.bodyTop + l.bodyHeight
	l.footerTop = l.barTop + playerbar.Height

	if m.covers != nil && m.width >= minCoverLayoutWidth {
		innerH := l.bodyHeight - ui.BorderHeight
		innerW := min(innerH*2, m.width/3-ui.BorderHeight)
		if innerW >= minCoverArtWidth && innerH > 0 {
			l.coverArtW = innerW
			l.coverArtH = min(innerH, (innerW+1)/2)
			l.coverWidth = innerW + ui.BorderHeight
		}
	}

	l.panelLeft = l.coverWidth
	l.panelWidth = max(m.width-l.coverWidth, 0)
	return l
}

// inPanel reports whether a screen cell lies inside the playlist panel.
func (l layout) inPanel(x, y int) bool {
	return x >= l.panelLeft && y >= l.bodyTop && y < l.bodyTop+l.bodyHeight
}

// onSeekRow reports whether screen row y is the player bar's seek row.
func (l layout) onSeekRow(y int) bool {
	return y == l.barTop+playerbar.SeekRow
}

// inPlayerBar reports whether screen row y lies inside the player bar.
func (l layout) inPlayerBar(y int) bool {
	return y >= l.barTop && y < l.barTop+playerbar.Height
}

func (m *Model) resize() {
	l := m.layout()
	m.panel.SetSize(l.panelWidth, l.bodyHeight)
	m.filter.Width = max(m.width-4, 0)
}

// coverCmd requests the cover for the loaded track at the current size,
// unless it is already shown.
func (m *Model) coverCmd() tea.Cmd {
	l := m.layout()
	if l.coverWidth == 0 {
		m.coverKey = ""
		m.coverArt = ""
		return nil
	}
	t := m.display.Track
	key := fmt.Sprintf("%s|%s|%dx%d", t.Source, t.Cover, l.coverArtW, l.coverArtH)
	if key == m.coverKey {
		return nil
	}
	m.coverKey = key
	return RenderCoverCmd(m.covers, key, t.Cover, t.Source, l.coverArtW, l.coverArtH)
}
