package ui

import (
	"log"
	"math"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/ambient-player/internal/audio"
	"github.com/ytget/ambient-player/internal/model"
)

// RowOptions configures how a track row is built
type RowOptions struct {
	Icons     IconSet
	Highlight bool // emphasize the last pressed button
	Volume    int  // initial slider value
}

// TrackRow binds one track's player to a label, play and stop buttons and a
// volume slider placed on a shared parent container
type TrackRow struct {
	track     *model.Track
	player    audio.Player
	highlight bool

	label        *widget.Label
	playBtn      *PlayerButton
	stopBtn      *PlayerButton
	volumeSlider *VolumeSlider
}

// NewTrackRow creates the row's controls on parent at the row for track.ID
// and wires them to player. The row owns player from here on.
func NewTrackRow(parent *fyne.Container, track *model.Track, player audio.Player, opts RowOptions) *TrackRow {
	r := &TrackRow{
		track:     track,
		player:    player,
		highlight: opts.Highlight,
	}

	layout := LayoutForRow(track.ID)

	r.label = widget.NewLabel(track.Label)
	r.label.Truncation = fyne.TextTruncateEllipsis
	place(r.label, layout.Label)

	r.playBtn = NewPlayerButton(model.RolePlay, opts.Icons.Icon(model.RolePlay),
		track.ControlName(model.SuffixPlayButton), r.onPlay)
	place(r.playBtn, layout.Play)

	r.stopBtn = NewPlayerButton(model.RoleStop, opts.Icons.Icon(model.RoleStop),
		track.ControlName(model.SuffixStopButton), r.onStop)
	place(r.stopBtn, layout.Stop)

	volume := audio.ClampVolume(opts.Volume)
	r.volumeSlider = NewVolumeSlider(track.ControlName(model.SuffixVolumeSlider), volume, r.onVolumeChanged)
	place(r.volumeSlider, layout.Volume)

	r.player.SetVolume(volume)
	r.player.SetStatusCallback(r.onStatusChanged)

	parent.Add(r.label)
	parent.Add(r.playBtn)
	parent.Add(r.stopBtn)
	parent.Add(r.volumeSlider)

	return r
}

// Track returns the row's track
func (r *TrackRow) Track() *model.Track {
	return r.track
}

// Layout returns the rectangles of the row's controls
func (r *TrackRow) Layout() RowLayout {
	return LayoutForRow(r.track.ID)
}

// MarkUnavailable flags the row whose sound failed to load
func (r *TrackRow) MarkUnavailable() {
	r.label.Importance = widget.DangerImportance
	r.label.Refresh()
}

// Stop stops the row's player as if its stop button was pressed
func (r *TrackRow) Stop() {
	r.player.Stop()
	r.markPressed(model.RoleStop)
}

// Close releases the row's player
func (r *TrackRow) Close() error {
	return r.player.Close()
}

func (r *TrackRow) onPlay() {
	log.Printf("Play clicked for track %d (%s)", r.track.ID, r.track.Name)
	r.player.Play()
	r.markPressed(model.RolePlay)
}

func (r *TrackRow) onStop() {
	log.Printf("Stop clicked for track %d (%s)", r.track.ID, r.track.Name)
	r.player.Stop()
	r.markPressed(model.RoleStop)
}

func (r *TrackRow) onVolumeChanged(value float64) {
	r.player.SetVolume(int(math.Round(value)))
}

// markPressed emphasizes the button for role when highlighting is enabled
func (r *TrackRow) markPressed(role model.ControlRole) {
	if !r.highlight {
		return
	}
	r.playBtn.SetEmphasis(role == model.RolePlay)
	r.stopBtn.SetEmphasis(role == model.RoleStop)
}

// onStatusChanged restarts the sound at end of media. The notification is
// delivered on a later UI tick, so a Stop pressed in between wins.
func (r *TrackRow) onStatusChanged(status model.PlaybackStatus) {
	if status != model.StatusEndOfMedia {
		return
	}
	if current := r.player.Status(); current != model.StatusEndOfMedia {
		log.Printf("Track %d (%s) ignoring stale end of media, now %s", r.track.ID, r.track.Name, current)
		return
	}
	log.Printf("Track %d (%s) reached end of media, restarting", r.track.ID, r.track.Name)
	r.player.Play()
}
