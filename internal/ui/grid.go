package ui

import (
	"errors"
	"image/color"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"

	"github.com/ytget/ambient-player/internal/audio"
	"github.com/ytget/ambient-player/internal/model"
)

// PlayerFactory opens a player for the sound file at path
type PlayerFactory func(path string) (audio.Player, error)

// GridOptions configures BuildGrid
type GridOptions struct {
	Icons      IconSet
	Highlight  bool
	Volume     int
	OpenPlayer PlayerFactory
}

// Grid is the stack of track rows shown in the window
type Grid struct {
	parent   *fyne.Container
	content  fyne.CanvasObject
	rows     []*TrackRow
	failed   int
	noOutput bool
	size     fyne.Size
}

// BuildGrid creates one row per sound path, in order. Rows get identities
// 0..N-1 and the grid is sized to fit exactly N rows. Sounds that fail to
// open still get a row, backed by a silent player.
func BuildGrid(paths []string, opts GridOptions) *Grid {
	g := &Grid{
		parent: container.NewWithoutLayout(),
		rows:   make([]*TrackRow, 0, len(paths)),
	}

	var seq model.Sequence
	for _, path := range paths {
		track := model.NewTrack(seq.Next(), path)
		log.Printf("Track %d: %s", track.ID, track.Name)

		player, err := openPlayer(opts.OpenPlayer, path)
		if err != nil {
			log.Printf("Warning: sound %s unavailable: %v", path, err)
			player = audio.NewNopPlayer()
			g.failed++
			g.noOutput = g.noOutput || errors.Is(err, audio.ErrNoOutput)
		}

		row := NewTrackRow(g.parent, track, player, RowOptions{
			Icons:     opts.Icons,
			Highlight: opts.Highlight,
			Volume:    opts.Volume,
		})
		if err != nil {
			row.MarkUnavailable()
		}
		g.rows = append(g.rows, row)
	}

	g.size = GridSize(seq.Count())
	g.parent.Resize(g.size)

	// The parent has no layout, so a transparent spacer carries the min size
	spacer := canvas.NewRectangle(color.Transparent)
	spacer.SetMinSize(g.size)
	g.content = container.NewStack(spacer, g.parent)

	log.Printf("Grid built: %d tracks, %d unavailable, size %.0fx%.0f",
		len(g.rows), g.failed, g.size.Width, g.size.Height)
	return g
}

func openPlayer(factory PlayerFactory, path string) (audio.Player, error) {
	if factory == nil {
		return nil, errors.New("no player factory")
	}
	return factory(path)
}

// Content returns the object to install as window content
func (g *Grid) Content() fyne.CanvasObject {
	return g.content
}

// Rows returns the rows in identity order
func (g *Grid) Rows() []*TrackRow {
	return g.rows
}

// Size returns the grid (and window) size
func (g *Grid) Size() fyne.Size {
	return g.size
}

// Unavailable returns how many rows have a silent stand-in player
func (g *Grid) Unavailable() int {
	return g.failed
}

// NoOutput reports whether rows failed because no audio device was available
func (g *Grid) NoOutput() bool {
	return g.noOutput
}

// StopAll stops every row's player
func (g *Grid) StopAll() {
	for _, row := range g.rows {
		row.Stop()
	}
}

// Close releases every row's player
func (g *Grid) Close() error {
	var errs []error
	for _, row := range g.rows {
		if err := row.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
