package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/llehouerou/cassette/internal/app"
	"github.com/llehouerou/cassette/internal/errmsg"
	"github.com/llehouerou/cassette/internal/icons"
	"github.com/llehouerou/cassette/internal/logging"
	"github.com/llehouerou/cassette/internal/mpris"
	"github.com/llehouerou/cassette/internal/notify"
	"github.com/llehouerou/cassette/internal/player"
	"github.com/llehouerou/cassette/internal/prefs"
	"github.com/llehouerou/cassette/internal/stderr"
	"github.com/llehouerou/cassette/internal/ui/coverart"
)

func runPlayer(opts *rootOptions, args []string) error {
	cfg, err := loadConfig(opts, args)
	if err != nil {
		return err
	}
	tracks, err := loadCatalog(cfg)
	if err != nil {
		return err
	}

	logPath, err := cfg.LogFile()
	if err != nil {
		return fmt.Errorf("resolve log file: %w", err)
	}
	logger, logCloser, err := logging.OpenFile(logPath, cfg.Log.Level)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer logCloser.Close()

	// Audio backends write to fd 2, which would corrupt the TUI.
	if err := stderr.Start(logger.WithPrefix("stderr")); err != nil {
		logger.Warn("stderr capture disabled", "err", err)
	}
	defer stderr.Stop()

	icons.Init(cfg.Icons)

	store, err := openStore(opts.noPersist)
	if err != nil {
		return fmt.Errorf("open preferences: %w", err)
	}
	defer store.Close()

	p := player.New()
	defer p.Close()

	appOpts := app.Options{
		Config:  cfg,
		Catalog: tracks,
		Player:  p,
		Store:   store,
		Logger:  logger,
	}
	if cfg.Notifications {
		appOpts.Notifier = openNotifier(logger)
	}
	if cfg.MPRIS {
		bridge, closeMPRIS := openMPRIS(logger)
		defer closeMPRIS()
		appOpts.Bridge = bridge
	}
	if cfg.CoverArt {
		appOpts.Covers = openCovers(logger)
	}

	logger.Info("starting", "tracks", tracks.Len(), "music_dir", cfg.MusicDir)

	m, err := app.New(appOpts)
	if err != nil {
		return err
	}

	prog := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := prog.Run(); err != nil {
		logger.Error("program exited", "err", err)
		return err
	}
	return nil
}

func openStore(noPersist bool) (prefs.Store, error) {
	if noPersist {
		return prefs.NewMemory(), nil
	}
	return prefs.Open()
}

func openNotifier(logger *log.Logger) notify.Notifier {
	n, err := notify.New()
	if err != nil {
		logger.Warn(errmsg.Format(errmsg.OpNotify, err))
		return nil
	}
	return n
}

// openMPRIS registers the media controls. The bridge is returned even when
// registration fails so the program runs unchanged.
func openMPRIS(logger *log.Logger) (*mpris.Bridge, func()) {
	bridge := mpris.NewBridge()
	adapter, err := mpris.New(bridge)
	if err != nil {
		logger.Warn(errmsg.Format(errmsg.OpMPRIS, err))
		return bridge, bridge.Close
	}
	return bridge, func() {
		bridge.Close()
		if err := adapter.Close(); err != nil {
			logger.Debug("mpris close", "err", err)
		}
	}
}

func openCovers(logger *log.Logger) *coverart.Renderer {
	cache, err := coverart.NewCache("")
	if err != nil {
		logger.Warn("cover cache disabled", "err", err)
	}
	return coverart.NewRenderer(cache, logger.WithPrefix("coverart"))
}
