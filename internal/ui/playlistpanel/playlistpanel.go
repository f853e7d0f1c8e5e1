// Package playlistpanel renders the playlist view as a scrollable panel.
package playlistpanel

import (
	"github.com/llehouerou/cassette/internal/playlist"
	"github.com/llehouerou/cassette/internal/ui"
)

// Model is the playlist panel. It borrows the playlist view; the view owns
// rows and highlighting, the panel owns the cursor and scrolling.
type Model struct {
	ui.Base
	view   *playlist.View
	scroll scroll
}

// New creates a panel over v.
func New(v *playlist.View) Model {
	return Model{
		view:   v,
		scroll: scroll{margin: ui.ScrollMargin},
	}
}

// SetSize sets the panel dimensions and keeps the cursor visible.
func (m *Model) SetSize(width, height int) {
	m.Base.SetSize(width, height)
	m.scroll.reveal(m.view.Len(), m.listHeight())
}

// Move moves the cursor by delta rows.
func (m *Model) Move(delta int) {
	m.scroll.move(delta, m.view.Len(), m.listHeight())
}

// JumpStart moves the cursor to the first row.
func (m *Model) JumpStart() {
	m.scroll.top()
}

// JumpEnd moves the cursor to the last row.
func (m *Model) JumpEnd() {
	m.scroll.jump(m.view.Len()-1, m.view.Len(), m.listHeight())
}

// Follow moves the cursor to the row showing original index i, if rendered.
func (m *Model) Follow(i int) {
	if row, ok := m.view.RowOf(i); ok {
		m.scroll.jump(row, m.view.Len(), m.listHeight())
	}
}

// Refresh clamps the cursor after the rendered rows changed, e.g. after
// filtering, and keeps the current track in view when it is rendered.
func (m *Model) Refresh() {
	m.scroll.clamp(m.view.Len())
	if row, ok := m.view.RowOf(m.view.Current()); ok {
		m.scroll.jump(row, m.view.Len(), m.listHeight())
		m.scroll.center(m.view.Len(), m.listHeight())
		return
	}
	m.scroll.reveal(m.view.Len(), m.listHeight())
}

// Cursor returns the cursor row.
func (m Model) Cursor() int {
	return m.scroll.pos
}

// Selected returns the original index under the cursor.
func (m Model) Selected() (int, bool) {
	return m.view.Select(m.scroll.pos)
}

// RowAt maps a y offset from the panel top to a rendered row.
func (m Model) RowAt(y int) (int, bool) {
	return m.scroll.rowAt(y-listTop, m.view.Len(), m.listHeight())
}

// Click moves the cursor to the row at y and returns its original index.
func (m *Model) Click(y int) (int, bool) {
	row, ok := m.RowAt(y)
	if !ok {
		return 0, false
	}
	m.scroll.jump(row, m.view.Len(), m.listHeight())
	return m.view.Select(row)
}

func (m Model) listHeight() int {
	return max(m.ListHeight(ui.PanelOverhead), 0)
}
