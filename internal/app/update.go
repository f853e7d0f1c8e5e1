package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/cassette/internal/errmsg"
	"github.com/llehouerou/cassette/internal/mpris"
	"github.com/llehouerou/cassette/internal/session"
)

// Update handles messages and returns the updated model and commands.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleWindowSize(msg)

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.MouseMsg:
		return m.handleMouseMsg(msg)

	case TickMsg:
		return m.handleTick()

	case PlayResultMsg:
		return m.handlePlayResult(msg)

	case PlayerEventMsg:
		return m.handlePlayerEvent(msg)

	case DurationProbedMsg:
		return m.handleDurationProbed(msg)

	case ExternalCommandMsg:
		return m.handleExternalCommand(msg)

	case CoverRenderedMsg:
		if msg.Key == m.coverKey {
			m.coverArt = msg.Art
		}
		return m, nil

	case StatusClearMsg:
		if msg.ID == m.statusID {
			m.status = ""
			m.statusErr = false
		}
		return m, nil
	}

	return m, nil
}

func (m Model) handleWindowSize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.resize()
	cmd := m.coverCmd()
	return m, cmd
}

func (m Model) handleTick() (tea.Model, tea.Cmd) {
	m.session.OnTimeUpdate(m.session.Position())
	m.publish()
	if m.session.State().Playing {
		return m, TickCmd()
	}
	m.ticking = false
	return m, nil
}

func (m Model) handlePlayResult(msg PlayResultMsg) (tea.Model, tea.Cmd) {
	r := session.PlayResult(msg)
	var cmds []tea.Cmd
	if err := m.session.HandlePlayResult(r); err != nil {
		cmds = append(cmds, m.setError(errmsg.Format(errmsg.OpPlaybackStart, err)))
	} else if cmd := m.announce(r.Index); cmd != nil {
		cmds = append(cmds, cmd)
	}
	cmds = append(cmds, m.afterTransition())
	cmd := tea.Batch(cmds...)
	return m, cmd
}

func (m Model) handlePlayerEvent(msg PlayerEventMsg) (tea.Model, tea.Cmd) {
	if msg.Closed {
		return m, nil
	}
	start := m.session.HandleEvent(msg.Event)
	cmd := tea.Batch(
		WatchPlayerEvents(m.player.Events()),
		StartCmd(start),
		m.afterTransition(),
	)
	return m, cmd
}

func (m Model) handleDurationProbed(msg DurationProbedMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		err := m.view.ProbeFailed(msg.Index, msg.Err)
		m.logger.Debug(errmsg.Format(errmsg.OpDurationProbe, err), "index", msg.Index)
		return m, nil
	}
	m.view.SetDuration(msg.Index, msg.Duration)
	return m, nil
}

// handleExternalCommand applies an MPRIS request, then waits for the next.
func (m Model) handleExternalCommand(msg ExternalCommandMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg.Kind {
	case mpris.CommandPlay:
		if !m.session.State().Playing {
			cmd = StartCmd(m.session.Play())
		}
	case mpris.CommandPause:
		m.session.Pause()
	case mpris.CommandToggle:
		cmd = StartCmd(m.session.TogglePlayPause())
	case mpris.CommandNext:
		cmd = StartCmd(m.session.Next())
	case mpris.CommandPrevious:
		cmd = StartCmd(m.session.Prev())
	case mpris.CommandSeek:
		m.session.SeekBy(msg.Offset)
	case mpris.CommandSetPosition:
		m.session.SeekTo(msg.Position)
	case mpris.CommandSetRepeat:
		m.session.SetRepeat(msg.Enabled)
	case mpris.CommandSetShuffle:
		m.session.SetShuffle(msg.Enabled)
	case mpris.CommandSetVolume:
		if err := m.session.SetVolume(msg.Volume); err != nil {
			cmd = m.setError(errmsg.Format(errmsg.OpVolumeSave, err))
		}
	}
	cmd = tea.Batch(cmd, m.afterTransition(), WatchExternalCommands(m.bridge))
	return m, cmd
}

// afterTransition re-highlights the playlist, follows a track change,
// publishes the MPRIS snapshot and keeps the tick running while playing.
func (m *Model) afterTransition() tea.Cmd {
	var cmds []tea.Cmd

	state := m.session.State()
	m.view.HighlightCurrent(state.CurrentIndex)
	if state.CurrentIndex != m.shownIndex {
		m.shownIndex = state.CurrentIndex
		m.dragging = false
		m.panel.Follow(state.CurrentIndex)
		cmds = append(cmds, m.coverCmd())
	}

	if state.Playing && !m.ticking {
		m.ticking = true
		cmds = append(cmds, TickCmd())
	}

	m.publish()
	return tea.Batch(cmds...)
}

// announce sends a desktop notification the first time track i starts.
func (m *Model) announce(i int) tea.Cmd {
	if m.nowPlaying == nil || i == m.announced {
		return nil
	}
	t, ok := m.session.Current()
	if !ok {
		return nil
	}
	m.announced = i
	if err := m.nowPlaying.Send(t); err != nil {
		m.logger.Warn("sending notification", "err", err)
		return m.setError(errmsg.Format(errmsg.OpNotify, err))
	}
	return nil
}

// publish refreshes the snapshot served to MPRIS clients.
func (m *Model) publish() {
	if m.bridge == nil {
		return
	}
	state := m.session.State()
	d := m.display
	m.bridge.Publish(mpris.Snapshot{
		Loaded:   state.Loaded,
		Playing:  state.Playing,
		Index:    state.CurrentIndex,
		Count:    m.session.Len(),
		Title:    d.Track.Title,
		Artist:   d.Track.Artist,
		Source:   d.Track.Source,
		Cover:    d.Track.Cover,
		Length:   d.Duration,
		Position: d.Elapsed,
		Volume:   d.Volume,
		Muted:    d.Muted,
		Repeat:   state.Repeat,
		Shuffle:  state.Shuffle,
	})
}

func (m *Model) setStatus(text string) tea.Cmd {
	m.statusID++
	m.status = text
	m.statusErr = false
	return StatusClearCmd(m.statusID)
}

func (m *Model) setError(text string) tea.Cmd {
	cmd := m.setStatus(text)
	m.statusErr = true
	return cmd
}
