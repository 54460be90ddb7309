package audio

import (
	"github.com/ytget/ambient-player/internal/model"
)

// NopPlayer stands in for a sound that failed to load. It accepts every call
// and never makes a sound.
type NopPlayer struct {
	volume int
}

// NewNopPlayer creates a silent player
func NewNopPlayer() *NopPlayer {
	return &NopPlayer{volume: MaxVolume}
}

func (p *NopPlayer) Play() {}
func (p *NopPlayer) Stop() {}
func (p *NopPlayer) SetVolume(volume int) { p.volume = ClampVolume(volume) }
func (p *NopPlayer) Status() model.PlaybackStatus { return model.StatusInvalid }
func (p *NopPlayer) SetStatusCallback(func(model.PlaybackStatus)) {}
func (p *NopPlayer) Close() error { return nil }

// Volume returns the last volume set
func (p *NopPlayer) Volume() int {
	return p.volume
}
