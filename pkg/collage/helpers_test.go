package collage

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

var (
	red   = color.NRGBA{255, 0, 0, 255}
	green = color.NRGBA{0, 255, 0, 255}
	blue  = color.NRGBA{0, 0, 255, 255}
	black = color.NRGBA{0, 0, 0, 255}
	white = color.NRGBA{255, 255, 255, 255}
)

func solidImage(width, height int, c color.Color) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), &image.Uniform{c}, image.Point{}, draw.Src)
	return img
}

// splitImage is red on the left half and blue on the right half.
func splitImage(width, height int) *image.NRGBA {
	img := solidImage(width, height, blue)
	draw.Draw(img, image.Rect(0, 0, width/2, height), &image.Uniform{red}, image.Point{}, draw.Src)
	return img
}

func writePNG(t *testing.T, path string, img image.Image) {
	t.Helper()
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, img))
}

func listDir(t *testing.T, dir string) []string {
	t.Helper()
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	return names
}

func assertColorNear(t *testing.T, want color.NRGBA, got color.Color, msgAndArgs ...interface{}) {
	t.Helper()
	g := color.NRGBAModel.Convert(got).(color.NRGBA)
	near := func(a, b uint8) bool {
		d := int(a) - int(b)
		return d >= -2 && d <= 2
	}
	if !near(want.R, g.R) || !near(want.G, g.G) || !near(want.B, g.B) || !near(want.A, g.A) {
		t.Errorf("color %v not near %v %v", g, want, msgAndArgs)
	}
}
