package asset

import (
	"embed"
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/lang"

	"github.com/dixieflatline76/Collager/util/log"
)

//go:embed icons/* text/*
var assets embed.FS

// translationsDir holds one <locale>.json file per supported language.
const translationsDir = "text/lang"

// Manager manages the loading of UI assets.
type Manager struct{}

// NewManager creates a new asset manager.
func NewManager() *Manager {
	return &Manager{}
}

// GetIcon loads and returns embedded icon asset by name.
func (am *Manager) GetIcon(name string) (fyne.Resource, error) {
	if name == "" {
		return nil, fmt.Errorf("icon name is empty")
	}

	iconData, err := assets.ReadFile("icons/" + name)
	if err != nil {
		log.Println("Error loading icon:", err)
		return nil, err
	}

	return fyne.NewStaticResource(name, iconData), nil
}

// GetText loads and returns embedded text asset by name.
func (am *Manager) GetText(name string) (string, error) {
	textBytes, err := assets.ReadFile("text/" + name)
	if err != nil {
		log.Println("Error loading text:", err)
		return "", err
	}
	return string(textBytes), nil
}

// LoadTranslations registers the embedded UI translations with fyne.
func (am *Manager) LoadTranslations() error {
	if err := lang.AddTranslationsFS(assets, translationsDir); err != nil {
		return fmt.Errorf("loading translations: %w", err)
	}
	return nil
}
