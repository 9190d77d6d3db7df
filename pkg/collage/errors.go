package collage

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidDimensions is returned when a canvas or cell size is not a positive integer.
	ErrInvalidDimensions = errors.New("invalid dimensions")

	// ErrEmptyImageSet is returned when there are no images to place.
	ErrEmptyImageSet = errors.New("no images found")

	// ErrNoSourceSelected is returned when the user backs out of choosing a source folder.
	ErrNoSourceSelected = errors.New("no source folder selected")

	// ErrSaveCancelled is returned when the user backs out of choosing a destination.
	ErrSaveCancelled = errors.New("save cancelled")

	// ErrInvalidImage is returned for a nil or zero-sized source image.
	ErrInvalidImage = errors.New("invalid image")
)

// IOError reports a decode or encode failure on a single file.
type IOError struct {
	Op   string // "decode" or "encode"
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}
