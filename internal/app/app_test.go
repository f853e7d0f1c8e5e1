package app

import (
	"errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/cassette/internal/catalog"
	"github.com/llehouerou/cassette/internal/mpris"
	"github.com/llehouerou/cassette/internal/notify"
	"github.com/llehouerou/cassette/internal/player"
	"github.com/llehouerou/cassette/internal/prefs"
	"github.com/llehouerou/cassette/internal/ui/render"
)

func TestNew_LoadsFirstTrackWithoutPlaying(t *testing.T) {
	f := newFixture()
	m := f.model(t)

	assert.Equal(t, testTracks[0], m.Display().Track)
	assert.False(t, m.Display().Playing)
	assert.Zero(t, f.player.PlayCalls())
	assert.Equal(t, []int{0}, activeRows(m))
	assert.InDelta(t, 0.9, m.Display().Volume, 1e-9)
}

func TestNew_EmptyCatalog(t *testing.T) {
	f := newFixture()
	f.opts.Catalog = catalog.New(nil)

	_, err := New(f.opts)
	assert.ErrorIs(t, err, catalog.ErrNoTracks)
}

func TestPlayPause(t *testing.T) {
	f := newFixture()
	m := press(t, f.model(t), " ")

	assert.True(t, m.Session().State().Playing)
	assert.True(t, m.Display().Playing)
	assert.True(t, m.Display().NowPlaying)
	assert.Equal(t, 1, f.player.PlayCalls())

	m = press(t, m, " ")
	assert.False(t, m.Session().State().Playing)
	assert.Equal(t, player.Paused, f.player.State())
}

func TestSelectRow_HighlightsExactlyThatRow(t *testing.T) {
	for i := range testTracks {
		f := newFixture()
		m := press(t, f.model(t), "g")
		for range i {
			m = press(t, m, "j")
		}
		m = press(t, m, "enter")

		assert.Equal(t, i, m.Session().State().CurrentIndex)
		assert.Equal(t, []int{i}, activeRows(m))
		assert.Equal(t, testTracks[i], m.Display().Track)
	}
}

func TestNextPrev(t *testing.T) {
	f := newFixture()
	m := press(t, f.model(t), "n", "n")
	assert.Equal(t, 2, m.Session().State().CurrentIndex)

	m = press(t, m, "n")
	assert.Equal(t, 0, m.Session().State().CurrentIndex, "wraps around")

	m = press(t, m, "p")
	assert.Equal(t, 2, m.Session().State().CurrentIndex)
	assert.Equal(t, []int{2}, activeRows(m))
	assert.Equal(t, 4, f.player.PlayCalls())
}

func TestPlayRejected_ShowsStatusAndKeepsIndex(t *testing.T) {
	f := newFixture()
	f.player.SetPlayError(errors.New("no audio device"))
	m := press(t, f.model(t), " ")

	assert.False(t, m.Session().State().Playing)
	assert.Equal(t, 0, m.Session().State().CurrentIndex)
	assert.Contains(t, m.Status(), "Failed to start playback")
	assert.Contains(t, m.Status(), "no audio device")
}

func TestStatusClear(t *testing.T) {
	f := newFixture()
	f.player.SetPlayError(errors.New("boom"))
	m := press(t, f.model(t), " ")
	require.NotEmpty(t, m.Status())

	m = settle(t, m, StatusClearMsg{ID: m.statusID - 1})
	assert.NotEmpty(t, m.Status(), "stale clear is ignored")

	m = settle(t, m, StatusClearMsg{ID: m.statusID})
	assert.Empty(t, m.Status())
}

func TestFilterFocused_SuppressesShortcuts(t *testing.T) {
	f := newFixture()
	m := press(t, f.model(t), "/")
	require.True(t, m.Filtering())

	m = press(t, m, "n", "p", " ", "q")

	assert.Equal(t, 0, m.Session().State().CurrentIndex)
	assert.Zero(t, f.player.PlayCalls())
	assert.Equal(t, "np q", m.Playlist().Query())
	assert.True(t, m.Filtering())
}

func TestFilter_EnterKeepsQueryEscClears(t *testing.T) {
	f := newFixture()
	m := press(t, f.model(t), "/", "b", "o", "n", "enter")

	assert.False(t, m.Filtering())
	assert.Equal(t, "bon", m.Playlist().Query())
	require.Equal(t, 2, m.Playlist().Len())

	// Shortcuts work again and rows keep original indices.
	m = press(t, m, "j", "enter")
	assert.Equal(t, 2, m.Session().State().CurrentIndex)

	m = press(t, m, "/", "esc")
	assert.False(t, m.Filtering())
	assert.Empty(t, m.Playlist().Query())
	assert.Equal(t, 3, m.Playlist().Len())
	assert.Equal(t, []int{2}, activeRows(m))
}

func TestClearFilterKey(t *testing.T) {
	f := newFixture()
	m := press(t, f.model(t), "/", "d", "o", "g", "enter")
	require.Equal(t, 1, m.Playlist().Len())

	m = press(t, m, "esc")
	assert.Equal(t, 3, m.Playlist().Len())
}

func TestCtrlCQuitsWhileFiltering(t *testing.T) {
	f := newFixture()
	m := press(t, f.model(t), "/")

	_, cmd := m.Update(key("ctrl+c"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
}

func TestQuit(t *testing.T) {
	f := newFixture()
	_, cmd := f.model(t).Update(key("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
}

func TestVolumeKeys_Persist(t *testing.T) {
	f := newFixture()
	m := press(t, f.model(t), "down", "down")

	assert.InDelta(t, 0.8, m.Display().Volume, 1e-9)
	v, ok, _ := f.store.Get(prefs.KeyVolume)
	require.True(t, ok)
	assert.Equal(t, "0.8", v)
}

func TestVolumeSaveFailure_ShowsStatus(t *testing.T) {
	f := newFixture()
	f.store.SetError(errors.New("read-only"))
	m := press(t, f.model(t), "up")

	assert.Contains(t, m.Status(), "Failed to save volume")
}

func TestModeKeys(t *testing.T) {
	f := newFixture()
	m := press(t, f.model(t), "r", "s", "m", "a")

	d := m.Display()
	assert.True(t, d.Repeat)
	assert.True(t, d.Shuffle)
	assert.True(t, d.Muted)
	assert.True(t, d.Autoplay)
	assert.True(t, f.player.Loop())

	v, _, _ := f.store.Get(prefs.KeyAutoplay)
	assert.Equal(t, "true", v)
}

func TestSeekKeys(t *testing.T) {
	f := newFixture()
	f.player.SetDuration(time.Minute)
	m := press(t, f.model(t), "right", "right", "left")

	assert.Equal(t, []time.Duration{5 * time.Second, 10 * time.Second, 5 * time.Second}, f.player.SeekCalls())
	assert.Equal(t, 5*time.Second, m.Display().Elapsed)
}

func TestEnded_AutoplayAdvances(t *testing.T) {
	f := newFixture()
	require.NoError(t, prefs.SaveAutoplay(f.store, true))
	m := press(t, f.model(t), " ")

	f.player.SetState(player.Stopped)
	m = settle(t, m, PlayerEventMsg{Event: player.Event{Kind: player.EventEnded, Source: testTracks[0].Source}})

	assert.Equal(t, 1, m.Session().State().CurrentIndex)
	assert.True(t, m.Session().State().Playing)
	assert.Equal(t, 2, f.player.PlayCalls())
	assert.Equal(t, []int{1}, activeRows(m))
}

func TestEnded_WithoutAutoplayPauses(t *testing.T) {
	f := newFixture()
	m := press(t, f.model(t), " ")

	f.player.SetState(player.Stopped)
	m = settle(t, m, PlayerEventMsg{Event: player.Event{Kind: player.EventEnded, Source: testTracks[0].Source}})

	assert.Equal(t, 0, m.Session().State().CurrentIndex)
	assert.False(t, m.Display().Playing)
}

func TestPlayerEvent_MetadataSetsDuration(t *testing.T) {
	f := newFixture()
	m := f.model(t)

	m = settle(t, m, PlayerEventMsg{Event: player.Event{
		Kind:     player.EventMetadataLoaded,
		Source:   testTracks[0].Source,
		Duration: 3*time.Minute + 58*time.Second,
	}})
	assert.Equal(t, 3*time.Minute+58*time.Second, m.Display().Duration)

	m = settle(t, m, PlayerEventMsg{Event: player.Event{
		Kind:     player.EventMetadataLoaded,
		Source:   "/music/stale.mp3",
		Duration: time.Second,
	}})
	assert.Equal(t, 3*time.Minute+58*time.Second, m.Display().Duration, "stale source ignored")
}

func TestTick_UpdatesElapsed(t *testing.T) {
	f := newFixture()
	m := press(t, f.model(t), " ")

	f.player.SetPosition(42 * time.Second)
	m = settle(t, m, TickMsg(time.Now()))

	assert.Equal(t, 42*time.Second, m.Display().Elapsed)
	assert.Equal(t, 42*time.Second, m.Display().SeekPosition)
	assert.True(t, m.ticking)

	m = press(t, m, " ")
	m = settle(t, m, TickMsg(time.Now()))
	assert.False(t, m.ticking)
}

func TestDurationProbes(t *testing.T) {
	f := newFixture()
	f.opts.Probe = func(src string) (time.Duration, error) {
		if src == testTracks[1].Source {
			return 0, errors.New("corrupt header")
		}
		return 4*time.Minute + 5*time.Second, nil
	}
	m := initModel(t, f.model(t))

	rows := m.Playlist().Rows()
	require.Len(t, rows, 3)
	assert.Equal(t, "4:05", rows[0].Duration)
	assert.Equal(t, render.DurationPlaceholder, rows[1].Duration)
	assert.Equal(t, "4:05", rows[2].Duration)
}

func TestDurationProbed_OutOfOrderWhileFiltered(t *testing.T) {
	f := newFixture()
	m := press(t, f.model(t), "/", "b", "o", "n", "enter")

	m = settle(t, m, DurationProbedMsg{Index: 2, Duration: 5 * time.Minute})
	m = settle(t, m, DurationProbedMsg{Index: 0, Duration: time.Minute})

	rows := m.Playlist().Rows()
	require.Len(t, rows, 2)
	assert.Equal(t, "1:00", rows[0].Duration)
	assert.Equal(t, "5:00", rows[1].Duration)
}

// recordingNotifier records notifications.
type recordingNotifier struct {
	sent   []notify.Notification
	closed []uint32
}

func (r *recordingNotifier) Notify(n notify.Notification) (uint32, error) {
	r.sent = append(r.sent, n)
	return uint32(len(r.sent)), nil
}

func (r *recordingNotifier) Close(id uint32) error {
	r.closed = append(r.closed, id)
	return nil
}

func TestNotification_OncePerTrack(t *testing.T) {
	f := newFixture()
	rec := &recordingNotifier{}
	f.opts.Notifier = rec
	f.opts.Config.Notifications = true

	m := press(t, f.model(t), " ", " ", " ")
	require.Len(t, rec.sent, 1)
	assert.Equal(t, "Skinny Love", rec.sent[0].Title)
	assert.Equal(t, "Bon Iver", rec.sent[0].Body)

	press(t, m, "n")
	require.Len(t, rec.sent, 2)
	assert.Equal(t, "Dog Days Are Over", rec.sent[1].Title)
	assert.Equal(t, uint32(1), rec.sent[1].ReplacesID)
}

func TestNotification_DisabledInConfig(t *testing.T) {
	f := newFixture()
	rec := &recordingNotifier{}
	f.opts.Notifier = rec
	f.opts.Config.Notifications = false

	press(t, f.model(t), " ")
	assert.Empty(t, rec.sent)
}

func TestQuit_DismissesNotification(t *testing.T) {
	f := newFixture()
	rec := &recordingNotifier{}
	f.opts.Notifier = rec
	f.opts.Config.Notifications = true

	m := press(t, f.model(t), " ")
	require.Len(t, rec.sent, 1)

	_, cmd := m.Update(key("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
	assert.Equal(t, []uint32{1}, rec.closed)
}

func TestExternalCommands(t *testing.T) {
	f := newFixture()
	bridge := mpris.NewBridge()
	t.Cleanup(bridge.Close)
	f.opts.Bridge = bridge
	m := f.model(t)

	m = settle(t, m, ExternalCommandMsg{Kind: mpris.CommandNext})
	assert.Equal(t, 1, m.Session().State().CurrentIndex)
	assert.True(t, m.Session().State().Playing)

	snap := bridge.Snapshot()
	assert.Equal(t, 1, snap.Index)
	assert.Equal(t, 3, snap.Count)
	assert.True(t, snap.Playing)
	assert.Equal(t, "Dog Days Are Over", snap.Title)

	m = settle(t, m, ExternalCommandMsg{Kind: mpris.CommandPlay})
	assert.Equal(t, 1, f.player.PlayCalls(), "play while playing is a no-op")

	m = settle(t, m, ExternalCommandMsg{Kind: mpris.CommandPause})
	assert.False(t, bridge.Snapshot().Playing)

	m = settle(t, m, ExternalCommandMsg{Kind: mpris.CommandSetRepeat, Enabled: true})
	m = settle(t, m, ExternalCommandMsg{Kind: mpris.CommandSetShuffle, Enabled: true})
	m = settle(t, m, ExternalCommandMsg{Kind: mpris.CommandSetVolume, Volume: 0.25})
	assert.True(t, bridge.Snapshot().Repeat)
	assert.True(t, bridge.Snapshot().Shuffle)
	assert.InDelta(t, 0.25, m.Display().Volume, 1e-9)
}
