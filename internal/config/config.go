package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/llehouerou/flicks/internal/embed"
	"github.com/llehouerou/flicks/internal/mediactl"
)

const appName = "flicks"

type Config struct {
	Catalog  string `koanf:"catalog"`   // path to the catalog TOML file
	MediaDir string `koanf:"media_dir"` // base for relative media paths in the catalog
	Icons    string `koanf:"icons"`     // "nerd", "unicode", or "none"
	LogFile  string `koanf:"log_file"`  // default: $XDG_STATE_HOME/flicks/flicks.log
	Debug    bool   `koanf:"debug"`     // log at debug level

	// Watch view controls
	Player PlayerConfig `koanf:"player"`

	// Trailer widget parameters
	Embed embed.PlayerVars `koanf:"embed"`

	// Desktop notifications and media keys
	Notifications NotificationsConfig `koanf:"notifications"`
	MPRIS         *bool               `koanf:"mpris"` // default: true
}

// PlayerConfig holds the watch view tuning knobs.
type PlayerConfig struct {
	CoarseSeek      int     `koanf:"coarse_seek"`       // seconds for arrows and buttons (default: 10)
	FineSeek        int     `koanf:"fine_seek"`         // seconds for shift+arrows (default: 5)
	VolumeStep      float64 `koanf:"volume_step"`       // per up/down press (default: 0.1)
	IdleHideMS      int     `koanf:"idle_hide_ms"`      // controls auto-hide delay (default: 3000)
	Countdown       int     `koanf:"countdown"`         // next-episode countdown start (default: 5)
	Volume          float64 `koanf:"volume"`            // initial volume (default: 1.0)
	ZeroVolumeMutes *bool   `koanf:"zero_volume_mutes"` // zero volume implies muted (default: true)
	Autoplay        *bool   `koanf:"autoplay"`          // start playing when an episode opens (default: true)
}

// NotificationsConfig controls desktop notification mirroring.
type NotificationsConfig struct {
	Desktop bool `koanf:"desktop"` // mirror "up next" toasts as desktop notifications
}

// Load reads the user config, then ./config.toml (last wins).
func Load() (*Config, error) {
	return LoadFiles(getConfigPaths()...)
}

// LoadFiles reads the given TOML files in order, skipping missing ones.
func LoadFiles(paths ...string) (*Config, error) {
	k := koanf.New(".")

	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, err
			}
		}
	}

	cfg := &Config{
		Embed: embed.DefaultPlayerVars(),
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}

	cfg.Catalog = expandPath(cfg.Catalog)
	cfg.MediaDir = expandPath(cfg.MediaDir)
	cfg.LogFile = expandPath(cfg.LogFile)

	return cfg, nil
}

func getConfigPaths() []string {
	return []string{
		// 1. $XDG_CONFIG_HOME/flicks/config.toml
		filepath.Join(xdg.ConfigHome, appName, "config.toml"),
		// 2. ./config.toml (pwd, highest priority)
		"config.toml",
	}
}

func expandPath(path string) string {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}

// CatalogPath returns the catalog file, defaulting to catalog.toml next to
// the user config.
func (c *Config) CatalogPath() string {
	if c.Catalog != "" {
		return c.Catalog
	}
	return filepath.Join(xdg.ConfigHome, appName, "catalog.toml")
}

// LogPath returns the log file path, creating its directory if needed.
func (c *Config) LogPath() (string, error) {
	if c.LogFile != "" {
		return c.LogFile, os.MkdirAll(filepath.Dir(c.LogFile), 0o755)
	}
	return xdg.StateFile(filepath.Join(appName, appName+".log"))
}

// MPRISEnabled reports whether media keys are exposed over D-Bus.
func (c *Config) MPRISEnabled() bool {
	return c.MPRIS == nil || *c.MPRIS
}

// GetPlayerConfig returns the player configuration with defaults applied.
func (c *Config) GetPlayerConfig() PlayerConfig {
	cfg := c.Player

	if cfg.CoarseSeek <= 0 {
		cfg.CoarseSeek = 10
	}
	if cfg.FineSeek <= 0 {
		cfg.FineSeek = 5
	}
	if cfg.VolumeStep <= 0 || cfg.VolumeStep > 1 {
		cfg.VolumeStep = 0.1
	}
	if cfg.IdleHideMS <= 0 {
		cfg.IdleHideMS = 3000
	}
	if cfg.Countdown <= 0 || cfg.Countdown > 60 {
		cfg.Countdown = 5
	}
	if cfg.Volume <= 0 || cfg.Volume > 1 {
		cfg.Volume = 1
	}
	if cfg.ZeroVolumeMutes == nil {
		cfg.ZeroVolumeMutes = boolPtr(true)
	}
	if cfg.Autoplay == nil {
		cfg.Autoplay = boolPtr(true)
	}

	return cfg
}

// ControllerOptions converts the player configuration for the media
// controller.
func (c *Config) ControllerOptions() mediactl.Options {
	p := c.GetPlayerConfig()
	opts := mediactl.DefaultOptions()
	opts.CoarseSeek = time.Duration(p.CoarseSeek) * time.Second
	opts.FineSeek = time.Duration(p.FineSeek) * time.Second
	opts.VolumeStep = p.VolumeStep
	opts.IdleHide = time.Duration(p.IdleHideMS) * time.Millisecond
	opts.CountdownFrom = p.Countdown
	opts.ZeroVolumeImpliesMuted = *p.ZeroVolumeMutes
	return opts
}

func boolPtr(b bool) *bool { return &b }
