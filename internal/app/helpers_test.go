package app

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/cassette/internal/catalog"
	"github.com/llehouerou/cassette/internal/config"
	"github.com/llehouerou/cassette/internal/player"
	"github.com/llehouerou/cassette/internal/prefs"
)

var testTracks = []catalog.Track{
	{Title: "Skinny Love", Artist: "Bon Iver", Source: "/music/a.mp3"},
	{Title: "Dog Days Are Over", Artist: "Florence", Source: "/music/b.mp3"},
	{Title: "Holocene", Artist: "Bon Iver", Source: "/music/c.mp3"},
}

type fixture struct {
	player *player.Mock
	store  *prefs.Memory
	opts   Options
}

func newFixture() *fixture {
	f := &fixture{
		player: player.NewMock(),
		store:  prefs.NewMemory(),
	}
	f.opts = Options{
		Config:  config.Default(),
		Catalog: catalog.New(testTracks),
		Player:  f.player,
		Store:   f.store,
		Probe: func(string) (time.Duration, error) {
			return 3 * time.Minute, nil
		},
	}
	return f
}

// model builds the model and sizes it like a 100x30 terminal.
func (f *fixture) model(t *testing.T) Model {
	t.Helper()
	m, err := New(f.opts)
	require.NoError(t, err)
	return settle(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})
}

// collect runs cmd and returns the messages it produces promptly. Commands
// that block (ticks, watchers, status timers) are abandoned.
func collect(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	ch := make(chan tea.Msg, 1)
	go func() { ch <- cmd() }()

	select {
	case msg := <-ch:
		if batch, ok := msg.(tea.BatchMsg); ok {
			var out []tea.Msg
			for _, c := range batch {
				out = append(out, collect(c)...)
			}
			return out
		}
		if msg == nil {
			return nil
		}
		return []tea.Msg{msg}
	case <-time.After(50 * time.Millisecond):
		return nil
	}
}

// settle applies msg and then every asynchronous result it triggers.
func settle(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	queue := []tea.Msg{msg}
	for n := 0; len(queue) > 0; n++ {
		require.Less(t, n, 100, "message loop did not settle")
		next := queue[0]
		queue = queue[1:]

		updated, cmd := m.Update(next)
		m = updated.(Model)
		for _, out := range collect(cmd) {
			switch out.(type) {
			case PlayResultMsg, DurationProbedMsg, CoverRenderedMsg:
				queue = append(queue, out)
			}
		}
	}
	return m
}

// initModel runs Init and applies its prompt results.
func initModel(t *testing.T, m Model) Model {
	t.Helper()
	for _, msg := range collect(m.Init()) {
		m = settle(t, m, msg)
	}
	return m
}

func key(s string) tea.KeyMsg {
	switch s {
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(t *testing.T, m Model, keys ...string) Model {
	t.Helper()
	for _, k := range keys {
		m = settle(t, m, key(k))
	}
	return m
}

func activeRows(m Model) []int {
	var active []int
	for _, r := range m.Playlist().Rows() {
		if r.Active {
			active = append(active, r.Index)
		}
	}
	return active
}
