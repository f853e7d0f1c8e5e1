package app

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/llehouerou/cassette/internal/keymap"
	"github.com/llehouerou/cassette/internal/ui/coverart"
	"github.com/llehouerou/cassette/internal/ui/playerbar"
	"github.com/llehouerou/cassette/internal/ui/render"
	"github.com/llehouerou/cassette/internal/ui/styles"
)

const appName = "cassette"

// helpContexts orders the help line.
var helpContexts = []string{"playback", "playlist", "global"}

// View renders the application UI.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	l := m.layout()

	body := m.panel.View()
	if l.coverWidth > 0 {
		body = lipgloss.JoinHorizontal(lipgloss.Top, m.renderCover(l), body)
	}

	return strings.Join([]string{
		m.renderHeader(),
		body,
		playerbar.Render(m.display.PlayerBar(), m.width),
		m.renderFooter(),
	}, "\n")
}

func (m Model) renderHeader() string {
	count := styles.T().S().Muted.Render(fmt.Sprintf("%d tracks ", m.session.Len()))
	return ansi.Truncate(render.Row(" "+styles.Logo(appName), count, m.width), m.width, "")
}

func (m Model) renderCover(l layout) string {
	art := m.coverArt
	if art == "" {
		art = coverart.Placeholder(l.coverArtW, l.coverArtH)
	}
	return styles.PanelStyle(false).
		Width(l.coverArtW).
		Height(l.bodyHeight - 2).
		Render(art)
}

// renderFooter shows, in priority order: the filter input, the status
// message, the help line, or a short hint.
func (m Model) renderFooter() string {
	s := styles.T().S()
	switch {
	case m.filter.Focused():
		return ansi.Truncate(m.filter.View(), m.width, "")
	case m.status != "" && m.statusErr:
		return s.Error.Render(render.Truncate(m.status, m.width))
	case m.status != "":
		return s.Muted.Render(render.Truncate(m.status, m.width))
	case m.showHelp:
		return s.Muted.Render(render.Truncate(helpLine(), m.width))
	default:
		return s.Subtle.Render(render.Truncate(m.hint(), m.width))
	}
}

// hint names the keys for help, filter and quit as currently bound.
func (m Model) hint() string {
	var parts []string
	for _, a := range []struct {
		action keymap.Action
		label  string
	}{
		{keymap.ActionHelp, "help"},
		{keymap.ActionFilter, "filter"},
		{keymap.ActionQuit, "quit"},
	} {
		if keys := m.keys.KeysFor(a.action); len(keys) > 0 {
			parts = append(parts, keymap.DisplayKey(keys[0])+" "+a.label)
		}
	}
	return strings.Join(parts, "  ")
}

func helpLine() string {
	var parts []string
	for _, ctx := range helpContexts {
		for _, b := range keymap.ByContext(ctx) {
			parts = append(parts, keymap.DisplayKey(b.Keys[0])+" "+strings.ToLower(b.Description))
		}
	}
	return strings.Join(parts, "  ")
}
