package config

import (
	"testing"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
)

func TestAppConfig(t *testing.T) {
	prefs := test.NewApp().Preferences()
	cfg := NewAppConfig(prefs)

	t.Run("CanvasSize", func(t *testing.T) {
		assert.Equal(t, 800, cfg.GetCanvasWidth())
		assert.Equal(t, 600, cfg.GetCanvasHeight())

		cfg.SetCanvasWidth(1920)
		cfg.SetCanvasHeight(1080)
		assert.Equal(t, 1920, cfg.GetCanvasWidth())
		assert.Equal(t, 1080, cfg.GetCanvasHeight())

		// Garbage in prefs falls back to the defaults
		prefs.SetInt(CanvasWidthKey, 0)
		prefs.SetInt(CanvasHeightKey, -3)
		assert.Equal(t, DefaultCanvasWidth, cfg.GetCanvasWidth())
		assert.Equal(t, DefaultCanvasHeight, cfg.GetCanvasHeight())
	})

	t.Run("LastFolder", func(t *testing.T) {
		assert.Equal(t, "", cfg.GetLastFolder())
		cfg.SetLastFolder("/tmp/photos")
		assert.Equal(t, "/tmp/photos", cfg.GetLastFolder())
	})

	t.Run("FitMode", func(t *testing.T) {
		assert.Equal(t, "center", cfg.GetFitMode())
		cfg.SetFitMode("smart")
		assert.Equal(t, "smart", cfg.GetFitMode())
	})

	t.Run("ResampleFilter", func(t *testing.T) {
		assert.Equal(t, "lanczos", cfg.GetResampleFilter())
		cfg.SetResampleFilter("box")
		assert.Equal(t, "box", cfg.GetResampleFilter())
	})

	t.Run("JPEGQuality", func(t *testing.T) {
		assert.Equal(t, 95, cfg.GetJPEGQuality())
		cfg.SetJPEGQuality(80)
		assert.Equal(t, 80, cfg.GetJPEGQuality())
		cfg.SetJPEGQuality(250)
		assert.Equal(t, DefaultJPEGQuality, cfg.GetJPEGQuality())
	})

	t.Run("AutoOrient", func(t *testing.T) {
		assert.True(t, cfg.GetAutoOrient())
		cfg.SetAutoOrient(false)
		assert.False(t, cfg.GetAutoOrient())
	})
}
