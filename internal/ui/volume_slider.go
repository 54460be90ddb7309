package ui

import (
	"fyne.io/fyne/v2/widget"
)

// VolumeSlider is a 0-100 slider bound to one track's volume
type VolumeSlider struct {
	widget.Slider

	Name string
}

// NewVolumeSlider creates a slider starting at volume that reports changes
// to changed
func NewVolumeSlider(name string, volume int, changed func(float64)) *VolumeSlider {
	s := &VolumeSlider{Name: name}
	s.Min = SliderMin
	s.Max = SliderMax
	s.Step = SliderStep
	s.Value = float64(volume)
	s.OnChanged = changed
	s.ExtendBaseWidget(s)
	return s
}
