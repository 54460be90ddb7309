package model

// PlaybackStatus represents the lifecycle state reported by a track's player
type PlaybackStatus string

const (
	// StatusLoaded means the media is open and positioned at the start
	StatusLoaded PlaybackStatus = "Loaded"

	// StatusPlaying means the media is being played
	StatusPlaying PlaybackStatus = "Playing"

	// StatusStopped means playback was stopped by the user and rewound
	StatusStopped PlaybackStatus = "Stopped"

	// StatusEndOfMedia means playback reached the end of the stream
	StatusEndOfMedia PlaybackStatus = "EndOfMedia"

	// StatusInvalid means the media could not be loaded
	StatusInvalid PlaybackStatus = "Invalid"
)

// String returns the string representation of PlaybackStatus
func (ps PlaybackStatus) String() string {
	return string(ps)
}

// IsRestartable returns true if Play must start again from the beginning
func (ps PlaybackStatus) IsRestartable() bool {
	return ps == StatusEndOfMedia || ps == StatusStopped || ps == StatusLoaded
}
