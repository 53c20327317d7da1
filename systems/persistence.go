package systems

import (
	"encoding/json"
	"fmt"
	"log"

	cfg "github.com/automoto/starlancer/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/quasilyte/gdata"
)

// SavedSettings represents the settings data stored on disk
type SavedSettings struct {
	ShowFPS         bool `json:"showFps"`
	Fullscreen      bool `json:"fullscreen"`
	ResolutionIndex int  `json:"resolutionIndex"`
}

// DefaultSettings returns the settings used before anything is saved.
func DefaultSettings() *SavedSettings {
	return &SavedSettings{ResolutionIndex: cfg.SettingsMenu.DefaultResolutionIndex}
}

// itemStore is the part of gdata.Manager the settings store needs.
type itemStore interface {
	LoadItem(key string) ([]byte, error)
	SaveItem(key string, data []byte) error
}

// SettingsStore reads and writes settings through gdata. A store without a
// backend (persistence unavailable) loads defaults and drops saves.
type SettingsStore struct {
	items itemStore
	key   string
}

// OpenSettingsStore initializes gdata for appName. On failure it returns a
// store without a backend together with the error.
func OpenSettingsStore(appName, key string) (*SettingsStore, error) {
	m, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		log.Printf("[persistence] could not initialize persistence: %v", err)
		return &SettingsStore{key: key}, fmt.Errorf("open settings storage: %w", err)
	}
	return &SettingsStore{items: m, key: key}, nil
}

// Load returns the saved settings, or defaults if nothing usable is stored.
func (s *SettingsStore) Load() (*SavedSettings, error) {
	settings := DefaultSettings()
	if s == nil || s.items == nil {
		return settings, nil
	}

	data, err := s.items.LoadItem(s.key)
	if err != nil {
		log.Printf("[persistence] could not load settings: %v", err)
		return settings, nil
	}
	if len(data) == 0 {
		// No saved settings yet, use defaults
		return settings, nil
	}

	if err := json.Unmarshal(data, settings); err != nil {
		log.Printf("[persistence] could not parse saved settings: %v", err)
		return DefaultSettings(), fmt.Errorf("parse settings: %w", err)
	}
	if settings.ResolutionIndex < 0 || settings.ResolutionIndex >= len(cfg.SettingsMenu.Resolutions) {
		settings.ResolutionIndex = cfg.SettingsMenu.DefaultResolutionIndex
	}
	return settings, nil
}

// Save writes settings to disk
func (s *SettingsStore) Save(settings *SavedSettings) error {
	if s == nil || s.items == nil {
		return nil
	}

	data, err := json.Marshal(settings)
	if err != nil {
		return fmt.Errorf("serialize settings: %w", err)
	}

	if err := s.items.SaveItem(s.key, data); err != nil {
		log.Printf("[persistence] could not save settings: %v", err)
		return fmt.Errorf("save settings: %w", err)
	}
	return nil
}

// ApplySettings pushes window settings to ebiten.
func ApplySettings(saved *SavedSettings) {
	if saved == nil {
		return
	}

	ebiten.SetFullscreen(saved.Fullscreen)

	// Apply resolution (only if not fullscreen)
	if !saved.Fullscreen && saved.ResolutionIndex < len(cfg.SettingsMenu.Resolutions) {
		res := cfg.SettingsMenu.Resolutions[saved.ResolutionIndex]
		ebiten.SetWindowSize(res.Width, res.Height)
	}
}
