package app

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/cassette/internal/config"
)

func TestView_FillsTerminal(t *testing.T) {
	f := newFixture()
	m := f.model(t)

	out := m.View()
	assert.Equal(t, 30, lipgloss.Height(out))
	assert.Contains(t, out, "Skinny Love")
	assert.Contains(t, out, "Holocene")
	assert.Contains(t, out, "3 tracks")
}

func TestView_EmptyBeforeWindowSize(t *testing.T) {
	f := newFixture()
	m, err := New(f.opts)
	require.NoError(t, err)
	assert.Empty(t, m.View())
}

func TestView_FooterPriority(t *testing.T) {
	f := newFixture()
	m := f.model(t)

	assert.Contains(t, lastLine(m.View()), "? help")

	m = press(t, m, "?")
	assert.Contains(t, lastLine(m.View()), "space play/pause")

	m = press(t, m, "/")
	assert.Contains(t, lastLine(m.View()), "/")
	assert.NotContains(t, lastLine(m.View()), "play/pause")
}

func TestLayout_CoverPaneNeedsRendererAndWidth(t *testing.T) {
	m := Model{width: 120, height: 30, cfg: config.Default()}
	assert.Zero(t, m.layout().coverWidth, "no renderer")

	l := m.layout()
	assert.Equal(t, 0, l.panelLeft)
	assert.Equal(t, 120, l.panelWidth)
	assert.Equal(t, 1, l.bodyTop)
	assert.Equal(t, 30-1-4-1, l.bodyHeight)
	assert.Equal(t, l.bodyTop+l.bodyHeight, l.barTop)
}

func lastLine(s string) string {
	lines := strings.Split(s, "\n")
	return lines[len(lines)-1]
}

func TestView_HeaderAndFilterFitNarrowTerminal(t *testing.T) {
	f := newFixture()
	m := f.model(t)
	m = settle(t, m, tea.WindowSizeMsg{Width: 12, Height: 30})
	m = press(t, m, "/")

	lines := strings.Split(m.View(), "\n")
	assert.LessOrEqual(t, lipgloss.Width(lines[0]), 12)
	assert.LessOrEqual(t, lipgloss.Width(lines[len(lines)-1]), 12)
}
