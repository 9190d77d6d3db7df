package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
)

// labelShare is the fraction of a form row given to the label.
const labelShare float32 = 1.0 / 3

// formRowLayout puts a label and its field side by side, the label taking a
// fixed share of the row width.
type formRowLayout struct {
	label fyne.CanvasObject
	field fyne.CanvasObject
	share float32
}

// MinSize calculates the minimum size.
func (r *formRowLayout) MinSize(objects []fyne.CanvasObject) fyne.Size {
	labelSize := r.label.MinSize()
	fieldSize := r.field.MinSize()
	return fyne.NewSize(labelSize.Width+fieldSize.Width, fyne.Max(labelSize.Height, fieldSize.Height))
}

// Layout arranges the widgets.
func (r *formRowLayout) Layout(objects []fyne.CanvasObject, containerSize fyne.Size) {
	labelWidth := fyne.Max(containerSize.Width*r.share, r.label.MinSize().Width)
	fieldWidth := containerSize.Width - labelWidth
	height := r.MinSize(objects).Height

	r.label.Resize(fyne.NewSize(labelWidth, height))
	r.field.Resize(fyne.NewSize(fieldWidth, height))
	r.label.Move(fyne.NewPos(0, 0))
	r.field.Move(fyne.NewPos(labelWidth, 0))
}

// newFormRow creates a label/field row.
func newFormRow(label, field fyne.CanvasObject) *fyne.Container {
	return container.New(&formRowLayout{label: label, field: field, share: labelShare}, label, field)
}
