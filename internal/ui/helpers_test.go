package ui

import (
	"errors"
	"path/filepath"

	"github.com/ytget/ambient-player/internal/audio"
	"github.com/ytget/ambient-player/internal/model"
)

// fakePlayer records every call made by a row
type fakePlayer struct {
	path     string
	plays    int
	stops    int
	volumes  []int
	closed   bool
	status   model.PlaybackStatus
	callback func(model.PlaybackStatus)
}

func (p *fakePlayer) SetVolume(volume int) { p.volumes = append(p.volumes, volume) }

func (p *fakePlayer) Play() {
	p.plays++
	p.status = model.StatusPlaying
}

func (p *fakePlayer) Stop() {
	p.stops++
	p.status = model.StatusStopped
}

func (p *fakePlayer) Status() model.PlaybackStatus {
	if p.status == "" {
		return model.StatusLoaded
	}
	return p.status
}

func (p *fakePlayer) Close() error {
	p.closed = true
	return nil
}

func (p *fakePlayer) SetStatusCallback(callback func(model.PlaybackStatus)) {
	p.callback = callback
}

// emit moves the player to status and reports it right away
func (p *fakePlayer) emit(status model.PlaybackStatus) {
	p.status = status
	p.deliver(status)
}

// deliver reports status without changing the player, like a notification
// that was queued for a later UI tick
func (p *fakePlayer) deliver(status model.PlaybackStatus) {
	if p.callback != nil {
		p.callback(status)
	}
}

func (p *fakePlayer) calls() int {
	return p.plays + p.stops
}

// fakeFactory hands out fakePlayers and remembers them by file name
type fakeFactory struct {
	players []*fakePlayer
	failOn  map[string]error
}

func newFakeFactory() *fakeFactory {
	return &fakeFactory{failOn: make(map[string]error)}
}

func (f *fakeFactory) open(path string) (audio.Player, error) {
	if err, ok := f.failOn[filepath.Base(path)]; ok {
		return nil, err
	}
	p := &fakePlayer{path: path}
	f.players = append(f.players, p)
	return p, nil
}

var errBrokenFile = errors.New("broken file")
