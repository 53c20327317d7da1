package ui

import (
	"testing"

	cfg "github.com/automoto/starlancer/config"
	"github.com/automoto/starlancer/systems"
)

func TestOptionsCycle(t *testing.T) {
	settings := systems.DefaultSettings()
	changes := 0
	ui := NewOptionsUI(settings, func(*systems.SavedSettings) { changes++ }, nil)

	rows := ui.Rows()
	if rows[0] != "Show FPS: Off" || rows[1] != "Fullscreen: Off" {
		t.Fatalf("rows = %v", rows)
	}

	ui.Cycle(0)
	if !settings.ShowFPS || ui.Rows()[0] != "Show FPS: On" {
		t.Errorf("Show FPS not toggled: %v", ui.Rows()[0])
	}
	if ui.valueLabels[0].Label != "Show FPS: On" {
		t.Errorf("label = %q", ui.valueLabels[0].Label)
	}

	n := len(cfg.SettingsMenu.Resolutions)
	for i := 0; i < n; i++ {
		ui.Cycle(2)
	}
	if settings.ResolutionIndex != cfg.SettingsMenu.DefaultResolutionIndex {
		t.Errorf("resolution did not wrap: %d", settings.ResolutionIndex)
	}
	if changes != n+1 {
		t.Errorf("OnChange called %d times, want %d", changes, n+1)
	}
}
