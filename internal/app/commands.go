package app

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/cassette/internal/mpris"
	"github.com/llehouerou/cassette/internal/player"
	"github.com/llehouerou/cassette/internal/playlist"
	"github.com/llehouerou/cassette/internal/session"
	"github.com/llehouerou/cassette/internal/ui/coverart"
)

// tickInterval is the time update period while playing.
const tickInterval = 250 * time.Millisecond

// maxConcurrentProbes bounds open files during duration probing.
const maxConcurrentProbes = 4

// TickCmd returns a command that sends TickMsg after tickInterval.
func TickCmd() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// StartCmd runs a pending playback start off the UI loop.
func StartCmd(start session.Start) tea.Cmd {
	if start == nil {
		return nil
	}
	return func() tea.Msg {
		return PlayResultMsg(start())
	}
}

// WatchPlayerEvents waits for the next primitive event.
func WatchPlayerEvents(events <-chan player.Event) tea.Cmd {
	return waitForChannel(events, func(e player.Event, ok bool) tea.Msg {
		return PlayerEventMsg{Event: e, Closed: !ok}
	})
}

// WatchExternalCommands waits for the next MPRIS command. It returns nil
// once the bridge is closed.
func WatchExternalCommands(b *mpris.Bridge) tea.Cmd {
	if b == nil {
		return nil
	}
	return func() tea.Msg {
		cmd, ok := b.Next()
		if !ok {
			return nil
		}
		return ExternalCommandMsg(cmd)
	}
}

// ProbeFunc returns the duration of an audio source.
type ProbeFunc func(source string) (time.Duration, error)

// ProbeDurationsCmd probes every request concurrently, at most
// maxConcurrentProbes at a time. Results arrive in any order.
func ProbeDurationsCmd(probe ProbeFunc, reqs []playlist.ProbeRequest) tea.Cmd {
	if probe == nil || len(reqs) == 0 {
		return nil
	}
	sem := make(chan struct{}, maxConcurrentProbes)
	cmds := make([]tea.Cmd, 0, len(reqs))
	for _, req := range reqs {
		cmds = append(cmds, func() tea.Msg {
			sem <- struct{}{}
			defer func() { <-sem }()
			d, err := probe(req.Source)
			return DurationProbedMsg{Index: req.Index, Duration: d, Err: err}
		})
	}
	return tea.Batch(cmds...)
}

// RenderCoverCmd renders cover art off the UI loop.
func RenderCoverCmd(r *coverart.Renderer, key, cover, source string, width, height int) tea.Cmd {
	if r == nil {
		return nil
	}
	return func() tea.Msg {
		return CoverRenderedMsg{Key: key, Art: r.Render(cover, source, width, height)}
	}
}

// StatusClearCmd clears status message id after StatusDuration.
func StatusClearCmd(id int64) tea.Cmd {
	return tea.Tick(StatusDuration, func(time.Time) tea.Msg {
		return StatusClearMsg{ID: id}
	})
}

// waitForChannel creates a command that waits for a value from a channel and converts it to a message.
// onResult receives the value and a boolean indicating if the channel is still open (false means channel closed).
func waitForChannel[T any](ch <-chan T, onResult func(T, bool) tea.Msg) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		result, ok := <-ch
		return onResult(result, ok)
	}
}
