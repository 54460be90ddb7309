package audio

import (
	"fmt"
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/ytget/ambient-player/internal/model"
)

// FilePlayer plays one decoded file on the backend's output.
//
// The chain is source -> (resampler) -> ctrl -> volume -> Seq(..., Callback).
// The sequence leaves the mixer at end of stream; Play queues it again.
type FilePlayer struct {
	backend *Backend
	path    string

	source beep.StreamSeekCloser
	rate   beep.SampleRate
	ctrl   *beep.Ctrl
	volume *effects.Volume

	mu       sync.Mutex
	status   model.PlaybackStatus
	queued   bool
	gen      int // bumps on every queue so stale end callbacks are ignored
	closed   bool
	onStatus func(model.PlaybackStatus)
}

func newFilePlayer(b *Backend, path string) (*FilePlayer, error) {
	source, format, err := Decode(path)
	if err != nil {
		return nil, err
	}

	p := &FilePlayer{
		backend: b,
		path:    path,
		source:  source,
		rate:    format.SampleRate,
		status:  model.StatusLoaded,
	}
	p.ctrl = &beep.Ctrl{Streamer: p.stream(), Paused: true}
	p.volume = &effects.Volume{
		Streamer: p.ctrl,
		Base:     VolumeBase,
	}

	b.logf("loaded %s: rate=%d channels=%d samples=%d", path, format.SampleRate, format.NumChannels, source.Len())
	return p, nil
}

// SetStatusCallback sets the callback for status changes
func (p *FilePlayer) SetStatusCallback(callback func(model.PlaybackStatus)) {
	p.mu.Lock()
	p.onStatus = callback
	p.mu.Unlock()
}

// Status returns the current playback status
func (p *FilePlayer) Status() model.PlaybackStatus {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.status
}

// Play starts or resumes playback
func (p *FilePlayer) Play() {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return
	}

	out := p.backend.out
	out.Lock()
	if p.status.IsRestartable() {
		p.rewindLocked()
	}
	p.ctrl.Paused = false
	out.Unlock()

	var seq beep.Streamer
	if !p.queued {
		p.queued = true
		p.gen++
		gen := p.gen
		seq = beep.Seq(p.volume, beep.Callback(func() {
			// Runs with the speaker locked; hand off before touching p.mu
			go p.ended(gen)
		}))
	}
	changed := p.setStatusLocked(model.StatusPlaying)
	p.mu.Unlock()

	if seq != nil {
		out.Play(seq)
	}
	if changed {
		p.notify(model.StatusPlaying)
	}
}

// Stop pauses playback and rewinds to the beginning
func (p *FilePlayer) Stop() {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return
	}

	out := p.backend.out
	out.Lock()
	p.ctrl.Paused = true
	p.rewindLocked()
	out.Unlock()

	changed := p.setStatusLocked(model.StatusStopped)
	p.mu.Unlock()

	if changed {
		p.notify(model.StatusStopped)
	}
}

// SetVolume sets the volume on a 0-100 scale
func (p *FilePlayer) SetVolume(volume int) {
	level, silent := VolumeLevel(volume)

	out := p.backend.out
	out.Lock()
	p.volume.Volume = level
	p.volume.Silent = silent
	out.Unlock()
}

// Close stops playback and releases the file
func (p *FilePlayer) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return nil
	}
	p.closed = true

	out := p.backend.out
	out.Lock()
	p.ctrl.Paused = true
	// Drop the sequence from the mixer on its next pull
	p.ctrl.Streamer = nil
	out.Unlock()

	if err := p.source.Close(); err != nil {
		return fmt.Errorf("close %s: %w", p.path, err)
	}
	return nil
}

// ended is called once the queued sequence has drained
func (p *FilePlayer) ended(gen int) {
	p.mu.Lock()
	if gen != p.gen || p.closed {
		p.mu.Unlock()
		return
	}
	p.queued = false
	changed := p.setStatusLocked(model.StatusEndOfMedia)
	p.mu.Unlock()

	if changed {
		p.notify(model.StatusEndOfMedia)
	}
}

// stream returns the source as the speaker should see it
func (p *FilePlayer) stream() beep.Streamer {
	if p.rate == SampleRate {
		return p.source
	}
	return beep.Resample(ResampleQuality, p.rate, SampleRate, p.source)
}

// rewindLocked seeks to the start; a resampler keeps its own end-of-stream
// state and buffered samples, so it is replaced. Caller holds the output lock.
func (p *FilePlayer) rewindLocked() {
	if err := p.source.Seek(0); err != nil {
		p.backend.logf("rewind %s: %v", p.path, err)
	}
	if p.rate != SampleRate {
		p.ctrl.Streamer = p.stream()
	}
}

func (p *FilePlayer) setStatusLocked(status model.PlaybackStatus) bool {
	if p.status == status {
		return false
	}
	p.status = status
	return true
}

func (p *FilePlayer) notify(status model.PlaybackStatus) {
	p.mu.Lock()
	callback := p.onStatus
	p.mu.Unlock()
	if callback == nil {
		return
	}
	p.backend.dispatch(func() {
		// Superseded while queued, e.g. a Stop after the sound drained
		if p.Status() != status {
			return
		}
		callback(status)
	})
}
