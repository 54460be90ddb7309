package audio

import (
	"math"

	"github.com/ytget/ambient-player/internal/model"
)

// Volume bounds accepted by SetVolume
const (
	MinVolume = 0
	MaxVolume = 100
)

// VolumeBase is the exponent base used for effects.Volume
const VolumeBase = 2

// Player controls playback of a single sound
type Player interface {
	// Play starts playback, or resumes it; after end of media it starts over.
	Play()
	// Stop stops playback and rewinds to the beginning.
	Stop()
	// SetVolume sets the volume on a 0-100 scale.
	SetVolume(volume int)
	Status() model.PlaybackStatus
	SetStatusCallback(func(model.PlaybackStatus))
	Close() error
}

// Dispatcher runs fn on the thread that owns status callbacks
type Dispatcher func(fn func())

// Immediate runs fn on the calling goroutine
func Immediate(fn func()) { fn() }

// ClampVolume limits volume to MinVolume..MaxVolume
func ClampVolume(volume int) int {
	if volume < MinVolume {
		return MinVolume
	}
	if volume > MaxVolume {
		return MaxVolume
	}
	return volume
}

// VolumeLevel maps a 0-100 volume to an effects.Volume exponent with base
// VolumeBase, so the resulting amplitude is volume/100. Zero is silent.
func VolumeLevel(volume int) (level float64, silent bool) {
	volume = ClampVolume(volume)
	if volume == MinVolume {
		return 0, true
	}
	return math.Log2(float64(volume) / MaxVolume), false
}
