package audio

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/flac"
	"github.com/gopxl/beep/mp3"
	"github.com/gopxl/beep/vorbis"
	"github.com/gopxl/beep/wav"
)

// ErrUnsupportedFormat is returned for files no decoder handles
var ErrUnsupportedFormat = errors.New("unsupported audio format")

// Supported file extensions
const (
	ExtMP3  = ".mp3"
	ExtWAV  = ".wav"
	ExtFLAC = ".flac"
	ExtOGG  = ".ogg"
)

// SupportedExtensions lists the extensions Decode understands
var SupportedExtensions = []string{ExtMP3, ExtWAV, ExtFLAC, ExtOGG}

// IsSupported reports whether path has an extension Decode understands
func IsSupported(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, supported := range SupportedExtensions {
		if ext == supported {
			return true
		}
	}
	return false
}

// Decode opens path and decodes it based on its extension. Closing the
// returned streamer closes the file.
func Decode(path string) (beep.StreamSeekCloser, beep.Format, error) {
	if !IsSupported(path) {
		return nil, beep.Format{}, fmt.Errorf("decode %s: %w", path, ErrUnsupportedFormat)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, beep.Format{}, fmt.Errorf("open %s: %w", path, err)
	}

	var (
		streamer beep.StreamSeekCloser
		format   beep.Format
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ExtMP3:
		streamer, format, err = mp3.Decode(f)
	case ExtWAV:
		streamer, format, err = wav.Decode(f)
	case ExtFLAC:
		streamer, format, err = flac.Decode(f)
	case ExtOGG:
		streamer, format, err = vorbis.Decode(f)
	}
	if err != nil {
		_ = f.Close()
		return nil, beep.Format{}, fmt.Errorf("decode %s: %w", path, err)
	}

	return streamer, format, nil
}
