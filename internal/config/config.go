package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const appName = "cassette"

// Defaults applied before any config file is read.
const (
	DefaultVolume     = 0.9
	DefaultSeekStep   = 5.0  // seconds
	DefaultVolumeStep = 0.05 // fraction of full scale
)

type Config struct {
	MusicDir      string  `koanf:"music_dir"`
	Icons         string  `koanf:"icons"`          // "nerd", "unicode", or "none"
	DefaultVolume float64 `koanf:"default_volume"` // used until a volume is persisted
	SeekStep      float64 `koanf:"seek_step"`      // seconds per left/right
	VolumeStep    float64 `koanf:"volume_step"`    // volume change per up/down
	Notifications bool    `koanf:"notifications"`
	MPRIS         bool    `koanf:"mpris"`
	CoverArt      bool    `koanf:"cover_art"`

	Log LogConfig `koanf:"log"`

	// Static track list, in playlist order.
	Tracks []TrackConfig `koanf:"tracks"`

	// Directory of the loaded config file, used to resolve relative track paths.
	baseDir string
}

// LogConfig controls the log file.
type LogConfig struct {
	Level string `koanf:"level"` // debug, info, warn, error
	File  string `koanf:"file"`  // empty means $XDG_STATE_HOME/cassette/cassette.log
}

// TrackConfig is one [[tracks]] entry.
type TrackConfig struct {
	Title  string `koanf:"title"`
	Artist string `koanf:"artist"`
	Source string `koanf:"source"`
	Cover  string `koanf:"cover"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Icons:         "unicode",
		DefaultVolume: DefaultVolume,
		SeekStep:      DefaultSeekStep,
		VolumeStep:    DefaultVolumeStep,
		MPRIS:         true,
		CoverArt:      true,
		Log:           LogConfig{Level: "info"},
	}
}

// Load reads the config files in priority order (last wins).
func Load() (*Config, error) {
	return load(getConfigPaths())
}

// LoadFile reads a single, explicitly chosen config file.
func LoadFile(path string) (*Config, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, err
	}
	return load([]string{path})
}

func load(paths []string) (*Config, error) {
	k := koanf.New(".")

	var baseDir string
	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, err
			}
			baseDir = filepath.Dir(path)
		}
	}

	cfg := Default()
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}
	cfg.baseDir = baseDir
	cfg.normalize()

	return cfg, nil
}

func (c *Config) normalize() {
	if c.MusicDir != "" {
		c.MusicDir = expandPath(c.MusicDir)
	}
	if c.Log.File != "" {
		c.Log.File = expandPath(c.Log.File)
	}
	for i := range c.Tracks {
		c.Tracks[i].Source = c.resolve(c.Tracks[i].Source)
		c.Tracks[i].Cover = c.resolve(c.Tracks[i].Cover)
	}

	if c.DefaultVolume < 0 || c.DefaultVolume > 1 {
		c.DefaultVolume = DefaultVolume
	}
	if c.SeekStep <= 0 {
		c.SeekStep = DefaultSeekStep
	}
	if c.VolumeStep <= 0 || c.VolumeStep > 1 {
		c.VolumeStep = DefaultVolumeStep
	}
	c.Icons = strings.ToLower(c.Icons)
}

// resolve expands ~ and makes relative paths relative to the config file.
func (c *Config) resolve(path string) string {
	if path == "" {
		return ""
	}
	path = expandPath(path)
	if !filepath.IsAbs(path) && c.baseDir != "" {
		return filepath.Join(c.baseDir, path)
	}
	return path
}

func getConfigPaths() []string {
	paths := []string{}

	// 1. $XDG_CONFIG_HOME/cassette/config.toml
	paths = append(paths, filepath.Join(xdg.ConfigHome, appName, "config.toml"))

	// 2. ./config.toml (pwd, highest priority)
	paths = append(paths, "config.toml")

	return paths
}

func expandPath(path string) string {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}

// LogFile returns the log file path, defaulting to the XDG state directory.
func (c *Config) LogFile() (string, error) {
	if c.Log.File != "" {
		return c.Log.File, nil
	}
	return xdg.StateFile(filepath.Join(appName, appName+".log"))
}

// HasTracks returns true if the config lists tracks or a music directory.
func (c *Config) HasTracks() bool {
	return len(c.Tracks) > 0 || c.MusicDir != ""
}
