package collage

import (
	"fmt"
	"image"
	"math"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/dixieflatline76/Collager/util/log"
	"github.com/muesli/smartcrop"
)

// FitMode selects how the crop window is placed inside the scaled image.
type FitMode string

const (
	// FitCenter keeps the geometric centre of the image.
	FitCenter FitMode = "center"
	// FitSmart lets smartcrop pick the most interesting window.
	FitSmart FitMode = "smart"
)

// FitModes lists the supported modes in display order.
var FitModes = []FitMode{FitCenter, FitSmart}

// ParseFitMode maps a stored or typed name to a FitMode, defaulting to FitCenter.
func ParseFitMode(name string) FitMode {
	if FitMode(strings.ToLower(strings.TrimSpace(name))) == FitSmart {
		return FitSmart
	}
	return FitCenter
}

var resampleFilters = map[string]imaging.ResampleFilter{
	"lanczos":           imaging.Lanczos,
	"catmullrom":        imaging.CatmullRom,
	"mitchellnetravali": imaging.MitchellNetravali,
	"linear":            imaging.Linear,
	"box":               imaging.Box,
	"nearest":           imaging.NearestNeighbor,
}

// FilterNames lists the resample filter names accepted by ParseFilter.
var FilterNames = []string{"lanczos", "catmullrom", "mitchellnetravali", "linear", "box", "nearest"}

// ParseFilter returns the named resample filter, or Lanczos for unknown names.
func ParseFilter(name string) imaging.ResampleFilter {
	if f, ok := resampleFilters[strings.ToLower(strings.TrimSpace(name))]; ok {
		return f
	}
	return imaging.Lanczos
}

// Fitter scales and crops source images so they fill a cell exactly.
type Fitter struct {
	mode      FitMode
	resampler imaging.ResampleFilter
}

// NewFitter creates a Fitter. Use ParseFilter to resolve a filter by name.
func NewFitter(mode FitMode, filter imaging.ResampleFilter) *Fitter {
	if mode != FitSmart {
		mode = FitCenter
	}
	return &Fitter{mode: mode, resampler: filter}
}

// Mode returns the crop mode of the fitter.
func (f *Fitter) Mode() FitMode {
	return f.mode
}

// Fit returns a cellWidth x cellHeight image cut from img without distortion.
// img is never modified. An image that already has the cell size is returned as is.
func (f *Fitter) Fit(img image.Image, cellWidth, cellHeight int) (image.Image, error) {
	if cellWidth < 1 || cellHeight < 1 {
		return nil, fmt.Errorf("%w: cell %dx%d", ErrInvalidDimensions, cellWidth, cellHeight)
	}
	if img == nil || img.Bounds().Empty() {
		return nil, ErrInvalidImage
	}

	bounds := img.Bounds()
	if bounds.Dx() == cellWidth && bounds.Dy() == cellHeight {
		return img, nil
	}

	if f.mode == FitSmart {
		cell, err := f.smartFit(img, cellWidth, cellHeight)
		if err == nil {
			return cell, nil
		}
		log.Debugf("smart fit failed, using centre crop: %v", err)
	}
	return f.centerFit(img, cellWidth, cellHeight), nil
}

// centerFit scales by the larger of the two ratios, so both sides cover the
// cell, then cuts the middle.
func (f *Fitter) centerFit(img image.Image, cellWidth, cellHeight int) image.Image {
	w, h := img.Bounds().Dx(), img.Bounds().Dy()
	scale := math.Max(float64(cellWidth)/float64(w), float64(cellHeight)/float64(h))

	// Rounding can land one pixel short of the cell; never scale below it.
	scaledWidth := max(int(math.Round(float64(w)*scale)), cellWidth)
	scaledHeight := max(int(math.Round(float64(h)*scale)), cellHeight)

	resized := imaging.Resize(img, scaledWidth, scaledHeight, f.resampler)

	x0 := max((scaledWidth-cellWidth)/2, 0)
	y0 := max((scaledHeight-cellHeight)/2, 0)
	window := image.Rect(x0, y0, x0+cellWidth, y0+cellHeight).Intersect(resized.Bounds())

	cropped := imaging.Crop(resized, window)
	if cropped.Bounds().Dx() != cellWidth || cropped.Bounds().Dy() != cellHeight {
		return imaging.Resize(cropped, cellWidth, cellHeight, f.resampler)
	}
	return cropped
}

// smartFit asks smartcrop for the best cellWidth:cellHeight window and scales it to the cell.
func (f *Fitter) smartFit(img image.Image, cellWidth, cellHeight int) (image.Image, error) {
	analyzer := smartcrop.NewAnalyzer(&resizer{resampler: f.resampler})
	crop, err := analyzer.FindBestCrop(img, cellWidth, cellHeight)
	if err != nil {
		return nil, fmt.Errorf("finding best crop: %w", err)
	}
	crop = crop.Intersect(img.Bounds())
	if crop.Empty() {
		return nil, fmt.Errorf("empty crop for %dx%d cell", cellWidth, cellHeight)
	}
	return imaging.Resize(imaging.Crop(img, crop), cellWidth, cellHeight, f.resampler), nil
}

// resizer implements the smartcrop resizer with the fitter's filter.
type resizer struct {
	resampler imaging.ResampleFilter
}

func (r *resizer) Resize(img image.Image, width, height uint) image.Image {
	return imaging.Resize(img, int(width), int(height), r.resampler)
}
