package ui

import (
	"errors"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/lang"
	"fyne.io/fyne/v2/widget"
	"github.com/dixieflatline76/Collager/config"
	"github.com/dixieflatline76/Collager/pkg/collage"
	"github.com/dixieflatline76/Collager/util/log"
)

// SettingsManager collects edits to the less common build settings and
// applies them together.
type SettingsManager struct {
	cfg         *config.AppConfig
	pending     map[string]func()
	applyButton *widget.Button

	filterSelect *widget.Select
	qualityEntry *widget.Entry
	orientCheck  *widget.Check
}

// NewSettingsManager creates a SettingsManager for cfg.
func NewSettingsManager(cfg *config.AppConfig) *SettingsManager {
	sm := &SettingsManager{
		cfg:     cfg,
		pending: make(map[string]func()),
	}
	sm.applyButton = widget.NewButton(lang.L("button.apply"), sm.Apply)
	sm.applyButton.Disable()
	return sm
}

// SetSettingChangedCallback records a change to apply later.
func (sm *SettingsManager) SetSettingChangedCallback(name string, apply func()) {
	sm.pending[name] = apply
	sm.checkAndEnableApply()
}

// RemoveSettingChangedCallback drops a pending change, e.g. when it is reverted.
func (sm *SettingsManager) RemoveSettingChangedCallback(name string) {
	delete(sm.pending, name)
	sm.checkAndEnableApply()
}

// Apply writes all pending changes to the config.
func (sm *SettingsManager) Apply() {
	for name, apply := range sm.pending {
		log.Debugf("Applying setting %s", name)
		apply()
	}
	sm.pending = make(map[string]func())
	sm.checkAndEnableApply()
}

func (sm *SettingsManager) checkAndEnableApply() {
	if len(sm.pending) > 0 {
		sm.applyButton.Enable()
	} else {
		sm.applyButton.Disable()
	}
}

// CreateContent builds the settings form.
func (sm *SettingsManager) CreateContent() fyne.CanvasObject {
	initialFilter := sm.cfg.GetResampleFilter()
	sm.filterSelect = widget.NewSelect(collage.FilterNames, nil)
	sm.filterSelect.SetSelected(initialFilter)
	sm.filterSelect.OnChanged = func(selected string) {
		if selected == initialFilter {
			sm.RemoveSettingChangedCallback(config.ResampleFilterKey)
			return
		}
		sm.SetSettingChangedCallback(config.ResampleFilterKey, func() {
			sm.cfg.SetResampleFilter(selected)
			initialFilter = selected
		})
	}

	initialQuality := sm.cfg.GetJPEGQuality()
	sm.qualityEntry = widget.NewEntry()
	sm.qualityEntry.SetText(strconv.Itoa(initialQuality))
	sm.qualityEntry.Validator = validateQuality
	sm.qualityEntry.OnChanged = func(text string) {
		q, err := strconv.Atoi(text)
		if err != nil || validateQuality(text) != nil || q == initialQuality {
			sm.RemoveSettingChangedCallback(config.JPEGQualityKey)
			return
		}
		sm.SetSettingChangedCallback(config.JPEGQualityKey, func() {
			sm.cfg.SetJPEGQuality(q)
			initialQuality = q
		})
	}

	initialOrient := sm.cfg.GetAutoOrient()
	sm.orientCheck = widget.NewCheck("", nil)
	sm.orientCheck.SetChecked(initialOrient)
	sm.orientCheck.OnChanged = func(checked bool) {
		if checked == initialOrient {
			sm.RemoveSettingChangedCallback(config.AutoOrientKey)
			return
		}
		sm.SetSettingChangedCallback(config.AutoOrientKey, func() {
			sm.cfg.SetAutoOrient(checked)
			initialOrient = checked
		})
	}

	return container.NewVBox(
		newFormRow(widget.NewLabel(lang.L("label.filter")), sm.filterSelect),
		newFormRow(widget.NewLabel(lang.L("label.quality")), sm.qualityEntry),
		newFormRow(widget.NewLabel(lang.L("label.auto_orient")), sm.orientCheck),
		sm.applyButton,
	)
}

func validateQuality(text string) error {
	q, err := strconv.Atoi(text)
	if err != nil || q < 1 || q > 100 {
		return errors.New(lang.L("notice.invalid_quality"))
	}
	return nil
}

// showSettings opens the settings dialog over the main window.
func (ca *CollagerApp) showSettings() {
	sm := NewSettingsManager(ca.cfg)
	d := dialog.NewCustom(lang.L("button.settings"), "OK", sm.CreateContent(), ca.window)
	d.Resize(fyne.NewSize(420, 0))
	d.Show()
}
