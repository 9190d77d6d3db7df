package collage

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"time"

	"github.com/disintegration/imaging"
	"github.com/dixieflatline76/Collager/util/log"
	"golang.org/x/time/rate"
)

// Background is the colour of slots and margins no image covers.
var Background color.Color = color.White

// Assembler places fitted images on a canvas, one grid cell each.
type Assembler struct {
	fitter   *Fitter
	logEvery rate.Sometimes
}

// NewAssembler creates an Assembler that fits cells with f.
func NewAssembler(f *Fitter) *Assembler {
	return &Assembler{
		fitter:   f,
		logEvery: rate.Sometimes{First: 1, Interval: time.Second},
	}
}

// Assemble builds a width x height collage from images in the given order.
//
// Slot i is column i%Columns of row i/Columns. After every placement sink
// receives (i+1)/len(images)*100, so the last report is exactly 100. Slots
// past the last image stay Background. The loop stops between placements if
// ctx is cancelled.
func (a *Assembler) Assemble(ctx context.Context, images []image.Image, width, height int, sink ProgressSink) (*image.NRGBA, error) {
	if len(images) == 0 {
		return nil, ErrEmptyImageSet
	}
	return a.assemble(ctx, len(images), width, height, sink, func(i int) (image.Image, error) {
		return images[i], nil
	})
}

// AssembleFiles is Assemble for image files. Files are decoded a few ahead
// of placement and dropped once their cell is drawn, so at most
// opts.Workers source images are held alongside the canvas.
func (a *Assembler) AssembleFiles(ctx context.Context, paths []string, width, height int, opts LoadOptions, sink ProgressSink) (*image.NRGBA, error) {
	if len(paths) == 0 {
		return nil, ErrEmptyImageSet
	}
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	return a.assemble(ctx, len(paths), width, height, sink, prefetch(ctx, paths, opts))
}

func (a *Assembler) assemble(ctx context.Context, count, width, height int, sink ProgressSink, next func(i int) (image.Image, error)) (*image.NRGBA, error) {
	if sink == nil {
		sink = NopProgress
	}

	layout, err := Plan(count, width, height)
	if err != nil {
		return nil, err
	}
	log.Debugf("Assembling %d images on %dx%d canvas: %s", count, width, height, layout)

	canvas := imaging.New(width, height, Background)
	total := float64(count)

	for i := 0; i < count; i++ {
		if err := checkContext(ctx); err != nil {
			return nil, err
		}

		img, err := next(i)
		if err != nil {
			return nil, err
		}
		cell, err := a.fitter.Fit(img, layout.CellWidth, layout.CellHeight)
		if err != nil {
			return nil, fmt.Errorf("fitting image %d: %w", i, err)
		}
		draw.Draw(canvas, layout.CellRect(i), cell, cell.Bounds().Min, draw.Src)

		percent := float64(i+1) / total * 100
		a.logEvery.Do(func() {
			log.Debugf("Placed %d/%d (%.0f%%)", i+1, count, percent)
		})
		sink.Report(percent)
	}

	return canvas, nil
}

func checkContext(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
		return nil
	}
}
