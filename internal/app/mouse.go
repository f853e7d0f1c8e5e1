package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/cassette/internal/ui/playerbar"
)

// handleMouseMsg routes mouse input. A left press on the seek bar starts a
// drag that only moves the thumb; the release commits the seek.
func (m Model) handleMouseMsg(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	l := m.layout()

	if m.dragging {
		return m.handleSeekDrag(msg, l)
	}

	switch msg.Button {
	case tea.MouseButtonWheelUp, tea.MouseButtonWheelDown:
		return m.handleWheel(msg, l)
	case tea.MouseButtonLeft:
		if msg.Action != tea.MouseActionPress {
			return m, nil
		}
	default:
		return m, nil
	}

	if l.onSeekRow(msg.Y) {
		bar := m.display.PlayerBar()
		pos, ok := playerbar.SeekPositionAt(bar, l.screenWidth, msg.X)
		if !ok {
			return m, nil
		}
		m.dragging = true
		m.session.OnSeekStart()
		m.session.OnSeekDrag(pos)
		return m, nil
	}

	if l.inPanel(msg.X, msg.Y) {
		i, ok := m.panel.Click(msg.Y - l.bodyTop)
		if !ok {
			return m, nil
		}
		cmd := tea.Batch(m.playIndex(i), m.afterTransition())
		return m, cmd
	}

	return m, nil
}

func (m Model) handleSeekDrag(msg tea.MouseMsg, l layout) (tea.Model, tea.Cmd) {
	pos := playerbar.ClampedSeekPositionAt(m.display.PlayerBar(), l.screenWidth, msg.X)

	switch msg.Action {
	case tea.MouseActionMotion:
		m.session.OnSeekDrag(pos)
		return m, nil
	case tea.MouseActionRelease:
		m.dragging = false
		m.session.OnSeekCommit(pos)
		cmd := m.afterTransition()
		return m, cmd
	}
	return m, nil
}

// handleWheel scrolls the playlist, or changes the volume over the player bar.
func (m Model) handleWheel(msg tea.MouseMsg, l layout) (tea.Model, tea.Cmd) {
	delta := 1
	if msg.Button == tea.MouseButtonWheelUp {
		delta = -1
	}

	switch {
	case l.inPlayerBar(msg.Y):
		cmd := m.nudgeVolume(-float64(delta) * m.cfg.VolumeStep)
		cmd = tea.Batch(cmd, m.afterTransition())
		return m, cmd
	case l.inPanel(msg.X, msg.Y):
		m.panel.Move(delta)
	}
	return m, nil
}
