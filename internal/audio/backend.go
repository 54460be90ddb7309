package audio

import (
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

// SampleRate is the rate the speaker runs at; sounds are resampled to it
const SampleRate beep.SampleRate = 44100

// ResampleQuality is passed to beep.Resample
const ResampleQuality = 4

// ErrNoOutput is returned when the audio device could not be opened
var ErrNoOutput = errors.New("audio output unavailable")

// Output is the mixer sounds are queued on
type Output interface {
	Init(sampleRate beep.SampleRate, bufferSize int) error
	Play(s ...beep.Streamer)
	Lock()
	Unlock()
}

// speakerOutput routes to the beep speaker package
type speakerOutput struct{}

func (speakerOutput) Init(sampleRate beep.SampleRate, bufferSize int) error {
	return speaker.Init(sampleRate, bufferSize)
}

func (speakerOutput) Play(s ...beep.Streamer) { speaker.Play(s...) }
func (speakerOutput) Lock() { speaker.Lock() }
func (speakerOutput) Unlock() { speaker.Unlock() }

// Backend owns the shared speaker and creates players bound to it
type Backend struct {
	out      Output
	buffer   time.Duration
	dispatch Dispatcher
	logger   *log.Logger

	initOnce sync.Once
	initErr  error
}

// NewBackend creates a backend on the system speaker. dispatch delivers
// status callbacks; nil runs them immediately. logger may be nil.
func NewBackend(buffer time.Duration, dispatch Dispatcher, logger *log.Logger) *Backend {
	return newBackend(speakerOutput{}, buffer, dispatch, logger)
}

func newBackend(out Output, buffer time.Duration, dispatch Dispatcher, logger *log.Logger) *Backend {
	if dispatch == nil {
		dispatch = Immediate
	}
	return &Backend{
		out:      out,
		buffer:   buffer,
		dispatch: dispatch,
		logger:   logger,
	}
}

// Init opens the audio device once; later calls return the first result
func (b *Backend) Init() error {
	b.initOnce.Do(func() {
		if err := b.out.Init(SampleRate, SampleRate.N(b.buffer)); err != nil {
			b.initErr = fmt.Errorf("%w: %v", ErrNoOutput, err)
			return
		}
		b.logf("speaker initialized: rate=%d buffer=%v", SampleRate, b.buffer)
	})
	return b.initErr
}

// Open decodes the sound at path and returns a player for it
func (b *Backend) Open(path string) (Player, error) {
	if err := b.Init(); err != nil {
		return nil, err
	}
	return newFilePlayer(b, path)
}

func (b *Backend) logf(format string, args ...any) {
	if b.logger != nil {
		b.logger.Printf(format, args...)
	}
}
