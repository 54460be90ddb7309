package ui

import (
	"fyne.io/fyne/v2"

	"github.com/ytget/ambient-player/internal/model"
)

// RowLayout holds the rectangles of one row's controls
type RowLayout struct {
	Label  model.Rect
	Play   model.Rect
	Stop   model.Rect
	Volume model.Rect
}

// RowY returns the vertical offset of the row for track id
func RowY(id int) int {
	return FirstRowY + WidgetHeight*id
}

// GridHeight returns the container and window height for count rows
func GridHeight(count int) int {
	return FirstRowY*2 + WidgetHeight*count
}

// GridSize returns the window size for count rows
func GridSize(count int) fyne.Size {
	return fyne.NewSize(WindowWidth, float32(GridHeight(count)))
}

// LayoutForRow computes the control rectangles for track id
func LayoutForRow(id int) RowLayout {
	y := RowY(id)
	return RowLayout{
		Label:  model.Rect{X: LabelX, Y: y, Width: LabelWidth, Height: WidgetHeight},
		Play:   model.Rect{X: PlayButtonX, Y: y, Width: ButtonWidth, Height: WidgetHeight},
		Stop:   model.Rect{X: StopButtonX, Y: y, Width: ButtonWidth, Height: WidgetHeight},
		Volume: model.Rect{X: VolumeSliderX, Y: y, Width: VolumeSliderWidth, Height: WidgetHeight},
	}
}

// place moves and resizes obj to r
func place(obj fyne.CanvasObject, r model.Rect) {
	obj.Move(fyne.NewPos(float32(r.X), float32(r.Y)))
	obj.Resize(fyne.NewSize(float32(r.Width), float32(r.Height)))
}
