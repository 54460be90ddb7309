package config

import (
	"strings"
	"time"
)

// File locations
const (
	AppDirName = "ambient-player"
	FileName   = "config.toml"
)

// Default values
const (
	DefaultSoundsDir        = "background_sounds"
	DefaultAssetsDir        = "assets"
	DefaultSortTracks       = true
	DefaultHighlightPressed = false
	DefaultVolume           = 100
	DefaultBufferMs         = 100
	DefaultLanguage         = "system"
)

// Buffer bounds
const (
	MinBufferMs = 10
	MaxBufferMs = 1000
)

// DefaultExtensions lists the audio file extensions picked up by the scan
var DefaultExtensions = []string{".mp3", ".wav", ".flac", ".ogg"}

// Settings exposes configuration values with defaults applied
type Settings struct {
	cfg *Config
}

// NewSettings creates a new settings accessor; a nil config means defaults
func NewSettings(cfg *Config) *Settings {
	if cfg == nil {
		cfg = Default()
	}
	return &Settings{cfg: cfg}
}

// GetSoundsDirectory returns the directory scanned for tracks
func (s *Settings) GetSoundsDirectory() string {
	if strings.TrimSpace(s.cfg.SoundsDir) == "" {
		return DefaultSoundsDir
	}
	return s.cfg.SoundsDir
}

// GetAssetsDirectory returns the directory holding the button icons
func (s *Settings) GetAssetsDirectory() string {
	if strings.TrimSpace(s.cfg.AssetsDir) == "" {
		return DefaultAssetsDir
	}
	return s.cfg.AssetsDir
}

// GetExtensions returns normalized lower-case extensions with a leading dot
func (s *Settings) GetExtensions() []string {
	var exts []string
	for _, ext := range s.cfg.Extensions {
		ext = strings.ToLower(strings.TrimSpace(ext))
		if ext == "" {
			continue
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		exts = append(exts, ext)
	}
	if len(exts) == 0 {
		return append([]string(nil), DefaultExtensions...)
	}
	return exts
}

// GetSortTracks returns whether discovered tracks are sorted by name
func (s *Settings) GetSortTracks() bool {
	return s.cfg.SortTracks
}

// GetHighlightPressed returns whether the last pressed button is emphasized
func (s *Settings) GetHighlightPressed() bool {
	return s.cfg.HighlightPressed
}

// GetDefaultVolume returns the initial slider volume clamped to 0-100
func (s *Settings) GetDefaultVolume() int {
	v := s.cfg.DefaultVolume
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

// GetBufferDuration returns the speaker buffer length
func (s *Settings) GetBufferDuration() time.Duration {
	ms := s.cfg.BufferMs
	if ms <= 0 {
		ms = DefaultBufferMs
	}
	if ms < MinBufferMs {
		ms = MinBufferMs
	}
	if ms > MaxBufferMs {
		ms = MaxBufferMs
	}
	return time.Duration(ms) * time.Millisecond
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	if s.cfg.Language == "" {
		return DefaultLanguage
	}
	return s.cfg.Language
}

// GetWindowTitle returns the configured window title, empty when the
// localized application title should be used
func (s *Settings) GetWindowTitle() string {
	return strings.TrimSpace(s.cfg.WindowTitle)
}
