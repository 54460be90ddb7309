package config

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config is the top-level configuration read from config.toml.
type Config struct {
	SoundsDir        string   `toml:"sounds_dir"`
	AssetsDir        string   `toml:"assets_dir"`
	Extensions       []string `toml:"extensions"`
	SortTracks       bool     `toml:"sort_tracks"`
	HighlightPressed bool     `toml:"highlight_pressed"`
	DefaultVolume    int      `toml:"default_volume"`
	BufferMs         int      `toml:"buffer_ms"`
	Language         string   `toml:"language"`
	WindowTitle      string   `toml:"window_title"`
}

// Default returns a Config populated with all default values.
func Default() *Config {
	return &Config{
		SoundsDir:        DefaultSoundsDir,
		AssetsDir:        DefaultAssetsDir,
		Extensions:       append([]string(nil), DefaultExtensions...),
		SortTracks:       DefaultSortTracks,
		HighlightPressed: DefaultHighlightPressed,
		DefaultVolume:    DefaultVolume,
		BufferMs:         DefaultBufferMs,
		Language:         DefaultLanguage,
	}
}

// DefaultPath returns the default config file path
// (<user config dir>/ambient-player/config.toml).
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, AppDirName, FileName)
}

// Save writes the config as TOML to the given path, creating parent
// directories if needed. Data is written to a temporary file and renamed
// into place.
func Save(path string, cfg *Config) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(dir, ".ambient-player-config-*.tmp")
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()

	if err := toml.NewEncoder(tmp).Encode(cfg); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return err
	}
	return os.Rename(tmpPath, path)
}

// Load reads the TOML config from path. If the file does not exist,
// it returns the default config without error.
func Load(path string) (*Config, error) {
	cfg := Default()

	_, err := os.Stat(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, err
	}

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadOrCreate loads the config at path and writes a starter file with
// defaults when none exists yet. A failed write is returned alongside the
// usable defaults.
func LoadOrCreate(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		cfg := Default()
		return cfg, Save(path, cfg)
	}
	return Load(path)
}
