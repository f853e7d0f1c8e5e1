// Package cli defines the cassette command line.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/llehouerou/cassette/internal/catalog"
	"github.com/llehouerou/cassette/internal/config"
)

type rootOptions struct {
	configPath string
	logLevel   string
	noPersist  bool
}

// NewRootCmd builds the command tree.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:   "cassette [music-dir]",
		Short: "A terminal music player for a fixed playlist",
		Long: `cassette plays the tracks listed in its config file, followed by the
audio files found in the music directory, as a single ordered playlist.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlayer(opts, args)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVarP(&opts.configPath, "config", "c", "", "config file (default: $XDG_CONFIG_HOME/cassette/config.toml)")
	flags.StringVar(&opts.logLevel, "log-level", "", "log level: debug, info, warn, error")
	root.Flags().BoolVar(&opts.noPersist, "no-persist", false, "keep preferences in memory only")

	root.AddCommand(newListCmd(opts), newPrefsCmd())
	return root
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "cassette:", err)
		os.Exit(1)
	}
}

// loadConfig reads the config file and applies command line overrides.
func loadConfig(opts *rootOptions, args []string) (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if opts.configPath != "" {
		cfg, err = config.LoadFile(opts.configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	if len(args) > 0 {
		cfg.MusicDir = args[0]
	}
	if opts.logLevel != "" {
		cfg.Log.Level = opts.logLevel
	}
	return cfg, nil
}

// loadCatalog builds the playlist: configured tracks first, then the scanned
// music directory, without duplicates.
func loadCatalog(cfg *config.Config) (*catalog.Catalog, error) {
	if !cfg.HasTracks() {
		return nil, fmt.Errorf("%w: pass a music directory or add [[tracks]] to the config", catalog.ErrNoTracks)
	}
	c := catalog.FromConfig(cfg.Tracks)
	if cfg.MusicDir != "" {
		scanned, err := catalog.Scan(cfg.MusicDir)
		if err != nil {
			return nil, fmt.Errorf("scan %s: %w", cfg.MusicDir, err)
		}
		c = c.Merge(scanned)
	}
	if c.IsEmpty() {
		return nil, catalog.ErrNoTracks
	}
	return c, nil
}
