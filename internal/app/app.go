// Package app is the bubbletea program: it routes keys, mouse and
// asynchronous results into the session controller and renders the display.
package app

import (
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/llehouerou/cassette/internal/catalog"
	"github.com/llehouerou/cassette/internal/config"
	"github.com/llehouerou/cassette/internal/keymap"
	"github.com/llehouerou/cassette/internal/logging"
	"github.com/llehouerou/cassette/internal/mpris"
	"github.com/llehouerou/cassette/internal/notify"
	"github.com/llehouerou/cassette/internal/player"
	"github.com/llehouerou/cassette/internal/playlist"
	"github.com/llehouerou/cassette/internal/prefs"
	"github.com/llehouerou/cassette/internal/session"
	"github.com/llehouerou/cassette/internal/ui/coverart"
	"github.com/llehouerou/cassette/internal/ui/playlistpanel"
)

// Options are the program's dependencies. Notifier, Bridge and Covers are
// optional; a nil value disables the feature.
type Options struct {
	Config   *config.Config
	Catalog  *catalog.Catalog
	Player   player.Interface
	Store    prefs.Store
	Logger   *log.Logger
	Notifier notify.Notifier
	Bridge   *mpris.Bridge
	Covers   *coverart.Renderer
	// Probe reads a track duration for the playlist. Defaults to
	// player.ProbeDuration.
	Probe ProbeFunc
	// Intn is forwarded to the session for shuffle.
	Intn func(n int) int
}

// Model is the root application model.
type Model struct {
	cfg     *config.Config
	session *session.Controller
	player  player.Interface
	display *Display
	view    *playlist.View
	panel   playlistpanel.Model
	filter  textinput.Model
	keys    *keymap.Resolver
	logger  *log.Logger

	covers     *coverart.Renderer
	coverKey   string
	coverArt   string
	nowPlaying *notify.NowPlaying
	bridge     *mpris.Bridge
	probe      ProbeFunc

	// announced is the index of the last track a notification was sent for.
	announced int
	// shownIndex is the current index the panel last followed.
	shownIndex int
	ticking    bool
	dragging   bool
	showHelp   bool

	status    string
	statusErr bool
	statusID  int64

	width  int
	height int
}

// New builds the program model, loading the first track without playing it.
func New(opts Options) (Model, error) {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}
	logger := opts.Logger
	if logger == nil {
		logger = logging.Discard()
	}
	probe := opts.Probe
	if probe == nil {
		probe = player.ProbeDuration
	}

	display := &Display{}
	ctrl, err := session.New(session.Options{
		Catalog:       opts.Catalog,
		Player:        opts.Player,
		Surface:       display,
		Store:         opts.Store,
		Logger:        logger.WithPrefix("session"),
		Intn:          opts.Intn,
		DefaultVolume: cfg.DefaultVolume,
	})
	if err != nil {
		return Model{}, err
	}

	view := playlist.New(opts.Catalog)
	view.HighlightCurrent(ctrl.State().CurrentIndex)

	ti := textinput.New()
	ti.Prompt = "/"
	ti.Placeholder = "filter by title or artist"
	ti.CharLimit = 128

	m := Model{
		cfg:        cfg,
		session:    ctrl,
		player:     opts.Player,
		display:    display,
		view:       view,
		panel:      playlistpanel.New(view),
		filter:     ti,
		keys:       keymap.Default(),
		logger:     logger,
		bridge:     opts.Bridge,
		probe:      probe,
		announced:  playlist.NoCurrent,
		shownIndex: ctrl.State().CurrentIndex,
	}
	if cfg.CoverArt {
		m.covers = opts.Covers
	}
	if cfg.Notifications && opts.Notifier != nil {
		m.nowPlaying = notify.NewNowPlaying(opts.Notifier, notify.DefaultTimeout)
	}
	m.panel.SetFocused(true)
	m.publish()
	return m, nil
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		WatchPlayerEvents(m.player.Events()),
		WatchExternalCommands(m.bridge),
		ProbeDurationsCmd(m.probe, m.view.ProbeRequests()),
	)
}

// Session exposes the controller, for tests and the CLI.
func (m Model) Session() *session.Controller {
	return m.session
}

// Display exposes the rendering surface.
func (m Model) Display() *Display {
	return m.display
}

// Playlist exposes the playlist view.
func (m Model) Playlist() *playlist.View {
	return m.view
}

// Status returns the status line text.
func (m Model) Status() string {
	return m.status
}

// Filtering reports whether the filter input has focus.
func (m Model) Filtering() bool {
	return m.filter.Focused()
}

func (m Model) seekStep() time.Duration {
	return time.Duration(m.cfg.SeekStep * float64(time.Second))
}
