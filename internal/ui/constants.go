package ui

// Row geometry in pixels. Every control in a row shares WidgetHeight, which
// is also the vertical stride between rows.
const (
	LabelX            = 10
	LabelWidth        = 100
	PlayButtonX       = 120
	StopButtonX       = 150
	VolumeSliderX     = 180
	VolumeSliderWidth = 80
	WidgetHeight      = 30
	ButtonWidth       = WidgetHeight
	FirstRowY         = 10
)

// Window sizing
const (
	WindowWidth = 280
)

// Volume slider range
const (
	SliderMin  = 0
	SliderMax  = 100
	SliderStep = 1
)
