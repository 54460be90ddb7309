package model

import (
	"path/filepath"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Control name suffixes appended to a track name
const (
	SuffixPlayButton   = "_play_button"
	SuffixStopButton   = "_stop_button"
	SuffixVolumeSlider = "_volume_slider"
)

// Rect is a control's position and size within its parent container
type Rect struct {
	X      int
	Y      int
	Width  int
	Height int
}

// Bottom returns the y coordinate just below the rectangle
func (r Rect) Bottom() int {
	return r.Y + r.Height
}

// Overlaps reports whether two rectangles share any area
func (r Rect) Overlaps(o Rect) bool {
	return r.X < o.X+o.Width && o.X < r.X+r.Width &&
		r.Y < o.Bottom() && o.Y < r.Bottom()
}

// ControlRole selects which function, and therefore which icon, a button has
type ControlRole int

const (
	RolePlay ControlRole = iota
	RoleStop
)

// String returns the role name
func (cr ControlRole) String() string {
	switch cr {
	case RolePlay:
		return "play"
	case RoleStop:
		return "stop"
	default:
		return "unknown"
	}
}

// IconFile returns the icon asset file name for the role
func (cr ControlRole) IconFile() string {
	return cr.String() + "_black_big.png"
}

// Track represents one audio asset shown as a row of controls
type Track struct {
	ID    int    // sequential identity, also the row index
	Name  string // file stem, e.g. "bird"
	Label string // human readable label, e.g. "Bird"
	Path  string // path to the audio file
}

// NewTrack creates a track for the audio file at path
func NewTrack(id int, path string) *Track {
	name := TrackName(path)
	return &Track{
		ID:    id,
		Name:  name,
		Label: DisplayLabel(name),
		Path:  path,
	}
}

// ControlName returns the object name of one of the track's controls
func (t *Track) ControlName(suffix string) string {
	return t.Name + suffix
}

// TrackName returns the file name without directory and extension
func TrackName(path string) string {
	base := filepath.Base(path)
	if idx := strings.LastIndex(base, "."); idx > 0 {
		base = base[:idx]
	}
	return base
}

// DisplayLabel turns a track name into a label: separators become spaces and
// the first letter is upper-cased
func DisplayLabel(name string) string {
	label := strings.Map(func(r rune) rune {
		if r == '_' || r == '-' {
			return ' '
		}
		return r
	}, name)
	label = strings.Join(strings.Fields(label), " ")
	if label == "" {
		return name
	}

	first, size := utf8.DecodeRuneInString(label)
	return string(unicode.ToUpper(first)) + label[size:]
}

// Sequence hands out track identities in creation order, starting at 0
type Sequence struct {
	next int
}

// Next returns the next identity and advances the sequence
func (s *Sequence) Next() int {
	id := s.next
	s.next++
	return id
}

// Count returns how many identities have been handed out
func (s *Sequence) Count() int {
	return s.next
}
