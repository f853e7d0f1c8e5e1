package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/cassette/internal/errmsg"
	"github.com/llehouerou/cassette/internal/keymap"
)

// handleKeyMsg routes a key press. While the filter input has focus every
// key except ctrl+c goes to it; esc and enter leave it.
func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m, m.quit()
	}
	if m.filter.Focused() {
		return m.handleFilterKey(msg)
	}

	var cmd tea.Cmd
	switch m.keys.Resolve(msg.String()) {
	case keymap.ActionQuit:
		return m, m.quit()

	case keymap.ActionHelp:
		m.showHelp = !m.showHelp
		return m, nil

	case keymap.ActionFilter:
		m.filter.SetValue(m.view.Query())
		m.filter.CursorEnd()
		cmd = m.filter.Focus()
		return m, cmd

	case keymap.ActionClearFilter:
		m.applyFilter("")
		return m, nil

	case keymap.ActionMoveDown:
		m.panel.Move(1)
		return m, nil
	case keymap.ActionMoveUp:
		m.panel.Move(-1)
		return m, nil
	case keymap.ActionJumpStart:
		m.panel.JumpStart()
		return m, nil
	case keymap.ActionJumpEnd:
		m.panel.JumpEnd()
		return m, nil

	case keymap.ActionSelect:
		cmd = m.playSelected()

	case keymap.ActionPlayPause:
		cmd = StartCmd(m.session.TogglePlayPause())
	case keymap.ActionNextTrack:
		cmd = StartCmd(m.session.Next())
	case keymap.ActionPrevTrack:
		cmd = StartCmd(m.session.Prev())

	case keymap.ActionSeekForward:
		m.session.SeekBy(m.seekStep())
	case keymap.ActionSeekBack:
		m.session.SeekBy(-m.seekStep())

	case keymap.ActionVolumeUp:
		cmd = m.nudgeVolume(m.cfg.VolumeStep)
	case keymap.ActionVolumeDown:
		cmd = m.nudgeVolume(-m.cfg.VolumeStep)
	case keymap.ActionToggleMute:
		m.session.ToggleMute()

	case keymap.ActionToggleRepeat:
		m.session.ToggleRepeat()
	case keymap.ActionToggleShuffle:
		m.session.ToggleShuffle()
	case keymap.ActionToggleAutoplay:
		if _, err := m.session.ToggleAutoplay(); err != nil {
			cmd = m.setError(errmsg.Format(errmsg.OpAutoplaySave, err))
		}

	default:
		return m, nil
	}

	cmd = tea.Batch(cmd, m.afterTransition())
	return m, cmd
}

func (m Model) handleFilterKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.filter.Blur()
		m.filter.SetValue("")
		m.applyFilter("")
		return m, nil
	case tea.KeyEnter:
		m.filter.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.filter, cmd = m.filter.Update(msg)
	m.applyFilter(m.filter.Value())
	return m, cmd
}

func (m *Model) applyFilter(q string) {
	m.view.Filter(q)
	m.panel.Refresh()
}

// playSelected loads and starts the track under the cursor.
func (m *Model) playSelected() tea.Cmd {
	i, ok := m.panel.Selected()
	if !ok {
		return nil
	}
	return m.playIndex(i)
}

func (m *Model) playIndex(i int) tea.Cmd {
	start, err := m.session.PlayIndex(i)
	if err != nil {
		m.logger.Debug("ignoring selection", "index", i, "err", err)
		return nil
	}
	return StartCmd(start)
}

func (m *Model) nudgeVolume(delta float64) tea.Cmd {
	if err := m.session.NudgeVolume(delta); err != nil {
		return m.setError(errmsg.Format(errmsg.OpVolumeSave, err))
	}
	return nil
}

// quit closes the now playing notification and ends the program.
func (m Model) quit() tea.Cmd {
	if err := m.nowPlaying.Dismiss(); err != nil {
		m.logger.Debug("dismissing notification", "err", err)
	}
	return tea.Quit
}
