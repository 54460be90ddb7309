package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/ambient-player/internal/model"
)

// PlayerButton is an icon-only button with a fixed control role
type PlayerButton struct {
	widget.Button

	Role model.ControlRole
	Name string
}

// NewPlayerButton creates a button for role showing icon
func NewPlayerButton(role model.ControlRole, icon fyne.Resource, name string, tapped func()) *PlayerButton {
	b := &PlayerButton{Role: role, Name: name}
	b.Icon = icon
	b.OnTapped = tapped
	b.Importance = widget.LowImportance
	b.ExtendBaseWidget(b)
	return b
}

// SetEmphasis marks the button as the last pressed one
func (b *PlayerButton) SetEmphasis(on bool) {
	if on {
		b.Importance = widget.HighImportance
	} else {
		b.Importance = widget.LowImportance
	}
	b.Refresh()
}

// Emphasized reports whether the button is currently emphasized
func (b *PlayerButton) Emphasized() bool {
	return b.Importance == widget.HighImportance
}
