package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"

	"gopkg.in/yaml.v3"
)

// File is the on-disk shape of a config override file. Every section is
// optional; only the keys present replace the defaults.
type File struct {
	Game   *Config       `yaml:"game"`
	Assets *AssetsConfig `yaml:"assets"`
	Fonts  []FontSpec    `yaml:"fonts"`
	Menu   *MenuConfig   `yaml:"menu"`
	HUD    *HUDConfig    `yaml:"hud"`
	Debug  *DebugConfig  `yaml:"debug"`
}

// Load overlays the YAML file at path onto the current configuration.
// A missing file leaves the defaults in place and is not an error.
func Load(path string) error {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		log.Printf("[config] %s not found, using defaults", path)
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read config %s: %w", path, err)
	}
	return Apply(data)
}

// Apply overlays YAML data onto the current configuration. Sections decode
// into the live structs, so omitted keys keep their current values.
func Apply(data []byte) error {
	f := File{
		Game:   C,
		Assets: &Assets,
		Menu:   &Menu,
		HUD:    &HUD,
		Debug:  &Debug,
	}
	if err := yaml.Unmarshal(data, &f); err != nil {
		return fmt.Errorf("failed to parse config: %w", err)
	}
	if f.Fonts != nil {
		Fonts = f.Fonts
	}
	return nil
}
