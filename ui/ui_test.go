package ui

import (
	"image"
	"image/color"
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/widget"
	"github.com/disintegration/imaging"
	"github.com/dixieflatline76/Collager/config"
	"github.com/dixieflatline76/Collager/pkg/collage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp(t *testing.T) (fyne.App, *CollagerApp) {
	t.Helper()
	a := test.NewApp()
	t.Cleanup(a.Quit)
	return a, NewCollagerApp(a)
}

func TestCollagerApp_Defaults(t *testing.T) {
	_, ca := newTestApp(t)

	width, height := ca.SizeText()
	assert.Equal(t, "800", width)
	assert.Equal(t, "600", height)
	assert.Equal(t, 0, ca.fitSelect.SelectedIndex())
	assert.True(t, ca.cancelButton.Disabled())
	assert.False(t, ca.startButton.Disabled())
	assert.Equal(t, float64(100), ca.progress.Max)
}

func TestCollagerApp_RestoresPreferences(t *testing.T) {
	a := test.NewApp()
	t.Cleanup(a.Quit)
	cfg := config.NewAppConfig(a.Preferences())
	cfg.SetCanvasWidth(1920)
	cfg.SetCanvasHeight(1080)
	cfg.SetFitMode(string(collage.FitSmart))

	ca := NewCollagerApp(a)

	width, height := ca.SizeText()
	assert.Equal(t, "1920", width)
	assert.Equal(t, "1080", height)
	assert.Equal(t, 1, ca.fitSelect.SelectedIndex())
}

func TestCollagerApp_FitSelectionIsSaved(t *testing.T) {
	_, ca := newTestApp(t)

	ca.fitSelect.SetSelectedIndex(1)
	assert.Equal(t, string(collage.FitSmart), ca.cfg.GetFitMode())

	ca.fitSelect.SetSelectedIndex(0)
	assert.Equal(t, string(collage.FitCenter), ca.cfg.GetFitMode())
}

func TestCollagerApp_SizeValidation(t *testing.T) {
	_, ca := newTestApp(t)

	ca.widthEntry.SetText("80x")
	assert.Error(t, ca.widthEntry.Validate())

	ca.widthEntry.SetText("1024")
	assert.NoError(t, ca.widthEntry.Validate())
}

func TestCollagerApp_BusyState(t *testing.T) {
	_, ca := newTestApp(t)
	ca.SetProgress(50)

	ca.SetBusy(true)
	assert.True(t, ca.startButton.Disabled())
	assert.True(t, ca.widthEntry.Disabled())
	assert.True(t, ca.heightEntry.Disabled())
	assert.True(t, ca.fitSelect.Disabled())
	assert.False(t, ca.cancelButton.Disabled())
	assert.Equal(t, float64(0), ca.progress.Value)

	ca.SetProgress(75)
	ca.SetStatus("working")
	assert.Equal(t, float64(75), ca.progress.Value)
	assert.Equal(t, "working", ca.status.Text)

	ca.SetBusy(false)
	assert.False(t, ca.startButton.Disabled())
	assert.False(t, ca.widthEntry.Disabled())
	assert.True(t, ca.cancelButton.Disabled())
}

func TestPreviewImage(t *testing.T) {
	small := imaging.New(200, 100, color.White)
	preview := previewImage(small)
	assert.Equal(t, image.Rect(0, 0, 200, 100), preview.Bounds())

	// The caption darkens some pixels near the bottom right corner.
	dark := false
	for y := 80; y < 100 && !dark; y++ {
		for x := 100; x < 200; x++ {
			if preview.NRGBAAt(x, y).R < 200 {
				dark = true
				break
			}
		}
	}
	assert.True(t, dark)

	large := imaging.New(4000, 1000, color.White)
	assert.Equal(t, image.Rect(0, 0, previewMaxWidth, 256), previewImage(large).Bounds())
}

func TestShowResult(t *testing.T) {
	a, ca := newTestApp(t)
	before := len(a.Driver().AllWindows())

	ca.ShowResult("/tmp/out.png", imaging.New(64, 48, color.Black))

	windows := a.Driver().AllWindows()
	require.Len(t, windows, before+1)
	assert.Equal(t, "out.png", windows[len(windows)-1].Title())
}

func TestFormRowLayout(t *testing.T) {
	label := widget.NewLabel("Width:")
	field := widget.NewEntry()
	row := newFormRow(label, field)

	row.Resize(fyne.NewSize(600, row.MinSize().Height))

	assert.Equal(t, float32(0), label.Position().X)
	assert.Equal(t, float32(200), field.Position().X)
	assert.Equal(t, float32(400), field.Size().Width)
}
