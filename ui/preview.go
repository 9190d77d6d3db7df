package ui

import (
	"fmt"
	"image"
	"image/color"
	"path/filepath"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"github.com/disintegration/imaging"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

const (
	previewMaxWidth  = 1024
	previewMaxHeight = 768
)

// captionImage returns a copy of img with text drawn in the bottom right corner.
func captionImage(img image.Image, text string) *image.NRGBA {
	b := img.Bounds()
	overlay := imaging.New(b.Dx(), b.Dy(), color.Transparent)

	bounds, _ := font.BoundString(basicfont.Face7x13, text)
	textWidth := bounds.Max.X.Ceil()

	d := &font.Drawer{
		Dst:  overlay,
		Src:  image.NewUniform(color.NRGBA{R: 40, G: 40, B: 40, A: 220}),
		Face: basicfont.Face7x13,
		Dot: fixed.Point26_6{
			X: fixed.I(b.Dx() - textWidth - 10),
			Y: fixed.I(b.Dy() - 10),
		},
	}
	d.DrawString(text)

	return imaging.Overlay(img, overlay, image.Pt(0, 0), 1)
}

// previewImage shrinks a collage to fit the preview window and captions it
// with its real size.
func previewImage(img image.Image) *image.NRGBA {
	b := img.Bounds()
	caption := fmt.Sprintf("%dx%d", b.Dx(), b.Dy())
	if b.Dx() > previewMaxWidth || b.Dy() > previewMaxHeight {
		img = imaging.Fit(img, previewMaxWidth, previewMaxHeight, imaging.Box)
	}
	return captionImage(img, caption)
}

// ShowResult opens a window with the saved collage.
func (ca *CollagerApp) ShowResult(path string, img image.Image) {
	preview := previewImage(img)

	view := canvas.NewImageFromImage(preview)
	view.FillMode = canvas.ImageFillContain
	view.SetMinSize(fyne.NewSize(float32(preview.Bounds().Dx())/2, float32(preview.Bounds().Dy())/2))

	w := ca.app.NewWindow(filepath.Base(path))
	w.SetContent(view)
	w.Resize(fyne.NewSize(float32(preview.Bounds().Dx()), float32(preview.Bounds().Dy())))
	w.CenterOnScreen()
	w.Show()
}
