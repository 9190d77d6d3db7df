package config

import "fyne.io/fyne/v2"

// Default values used when a preference has never been saved.
const (
	DefaultCanvasWidth    = 800
	DefaultCanvasHeight   = 600
	DefaultFitMode        = "center"
	DefaultResampleFilter = "lanczos"
	DefaultJPEGQuality    = 95
)

// AppConfig holds the application-wide configuration
type AppConfig struct {
	prefs fyne.Preferences
}

// NewAppConfig creates a new AppConfig instance
func NewAppConfig(p fyne.Preferences) *AppConfig {
	return &AppConfig{prefs: p}
}

// CanvasWidthKey is the key for the last used collage width
const CanvasWidthKey = "canvas_width"

// GetCanvasWidth returns the collage width to prefill
func (c *AppConfig) GetCanvasWidth() int {
	return c.positiveInt(CanvasWidthKey, DefaultCanvasWidth)
}

// SetCanvasWidth remembers the collage width
func (c *AppConfig) SetCanvasWidth(width int) {
	c.prefs.SetInt(CanvasWidthKey, width)
}

// CanvasHeightKey is the key for the last used collage height
const CanvasHeightKey = "canvas_height"

// GetCanvasHeight returns the collage height to prefill
func (c *AppConfig) GetCanvasHeight() int {
	return c.positiveInt(CanvasHeightKey, DefaultCanvasHeight)
}

// SetCanvasHeight remembers the collage height
func (c *AppConfig) SetCanvasHeight(height int) {
	c.prefs.SetInt(CanvasHeightKey, height)
}

// LastFolderKey is the key for the most recently used source folder
const LastFolderKey = "last_folder"

// GetLastFolder returns the most recently used source folder, or "".
func (c *AppConfig) GetLastFolder() string {
	return c.prefs.StringWithFallback(LastFolderKey, "")
}

// SetLastFolder remembers the source folder
func (c *AppConfig) SetLastFolder(dir string) {
	c.prefs.SetString(LastFolderKey, dir)
}

// FitModeKey is the key for the crop mode ("center" or "smart")
const FitModeKey = "fit_mode"

// GetFitMode returns the crop mode name
func (c *AppConfig) GetFitMode() string {
	return c.prefs.StringWithFallback(FitModeKey, DefaultFitMode)
}

// SetFitMode sets the crop mode name
func (c *AppConfig) SetFitMode(mode string) {
	c.prefs.SetString(FitModeKey, mode)
}

// ResampleFilterKey is the key for the resample filter name
const ResampleFilterKey = "resample_filter"

// GetResampleFilter returns the resample filter name
func (c *AppConfig) GetResampleFilter() string {
	return c.prefs.StringWithFallback(ResampleFilterKey, DefaultResampleFilter)
}

// SetResampleFilter sets the resample filter name
func (c *AppConfig) SetResampleFilter(name string) {
	c.prefs.SetString(ResampleFilterKey, name)
}

// JPEGQualityKey is the key for the JPEG encoder quality
const JPEGQualityKey = "jpeg_quality"

// GetJPEGQuality returns the JPEG quality, clamped to 1..100
func (c *AppConfig) GetJPEGQuality() int {
	q := c.prefs.IntWithFallback(JPEGQualityKey, DefaultJPEGQuality)
	if q < 1 || q > 100 {
		return DefaultJPEGQuality
	}
	return q
}

// SetJPEGQuality sets the JPEG quality
func (c *AppConfig) SetJPEGQuality(q int) {
	c.prefs.SetInt(JPEGQualityKey, q)
}

// AutoOrientKey is the key for applying EXIF orientation on load
const AutoOrientKey = "auto_orient"

// GetAutoOrient returns whether EXIF orientation is applied on load
func (c *AppConfig) GetAutoOrient() bool {
	return c.prefs.BoolWithFallback(AutoOrientKey, true)
}

// SetAutoOrient sets whether EXIF orientation is applied on load
func (c *AppConfig) SetAutoOrient(enabled bool) {
	c.prefs.SetBool(AutoOrientKey, enabled)
}

func (c *AppConfig) positiveInt(key string, fallback int) int {
	v := c.prefs.IntWithFallback(key, fallback)
	if v < 1 {
		return fallback
	}
	return v
}
