package collage

import (
	"fmt"
	"image"
	"math"
)

// Spec is the requested size of the finished collage.
type Spec struct {
	Width  int
	Height int
}

// Validate returns ErrInvalidDimensions unless both sides are positive.
func (s Spec) Validate() error {
	if s.Width < 1 || s.Height < 1 {
		return fmt.Errorf("%w: canvas %dx%d", ErrInvalidDimensions, s.Width, s.Height)
	}
	return nil
}

// GridLayout is the grid chosen for one collage.
//
// CellWidth and CellHeight come from integer division, so the cells may not
// tile the canvas exactly. The leftover strip on the right and bottom keeps
// the background colour.
type GridLayout struct {
	Columns    int
	Rows       int
	CellWidth  int
	CellHeight int
}

// Capacity is the number of slots in the grid.
func (g GridLayout) Capacity() int {
	return g.Columns * g.Rows
}

// CellRect returns the canvas rectangle of slot i, filled left to right, top to bottom.
func (g GridLayout) CellRect(i int) image.Rectangle {
	x := (i % g.Columns) * g.CellWidth
	y := (i / g.Columns) * g.CellHeight
	return image.Rect(x, y, x+g.CellWidth, y+g.CellHeight)
}

func (g GridLayout) String() string {
	return fmt.Sprintf("%dx%d grid of %dx%d cells", g.Columns, g.Rows, g.CellWidth, g.CellHeight)
}

// Plan picks the grid for count images on a width x height canvas.
//
// columns = ceil(sqrt(count * width / height)) biases the grid toward the
// canvas aspect ratio, and rows = ceil(count / columns) is just enough to hold
// every image. Empty slots and a sparse last row are left as is, even when a
// wide canvas gives more columns than images. A single image always gets the
// whole canvas.
func Plan(count, width, height int) (GridLayout, error) {
	if count < 1 {
		return GridLayout{}, ErrEmptyImageSet
	}
	if err := (Spec{Width: width, Height: height}).Validate(); err != nil {
		return GridLayout{}, err
	}

	columns := int(math.Ceil(math.Sqrt(float64(count) * float64(width) / float64(height))))
	if count == 1 || columns < 1 {
		columns = 1
	}
	rows := (count + columns - 1) / columns

	layout := GridLayout{
		Columns:    columns,
		Rows:       rows,
		CellWidth:  width / columns,
		CellHeight: height / rows,
	}
	if layout.CellWidth < 1 || layout.CellHeight < 1 {
		return GridLayout{}, fmt.Errorf("%w: %d images do not fit on a %dx%d canvas", ErrInvalidDimensions, count, width, height)
	}
	return layout, nil
}
