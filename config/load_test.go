package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestApplyOverridesOnlyPresentKeys(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	data := []byte(`
game:
  initialMode: Play
  width: 800
assets:
  basePath: /opt/starlancer/
fonts:
  - path: fonts/mono.ttf
    name: mono
    pitch: 14
    appendPath: true
hud:
  fpsUpdateDelay: 1.5
`)
	if err := Apply(data); err != nil {
		t.Fatalf("Apply: %v", err)
	}

	if C.InitialMode != "Play" {
		t.Errorf("InitialMode = %q, want Play", C.InitialMode)
	}
	if C.Width != 800 {
		t.Errorf("Width = %d, want 800", C.Width)
	}
	if C.Height != 720 {
		t.Errorf("Height = %d, want default 720", C.Height)
	}
	if Assets.BasePath != "/opt/starlancer/" {
		t.Errorf("BasePath = %q", Assets.BasePath)
	}
	if Assets.TitleLayout != "layouts/title.tmx" {
		t.Errorf("TitleLayout changed to %q", Assets.TitleLayout)
	}
	if len(Fonts) != 1 || Fonts[0].Name != "mono" || Fonts[0].Pitch != 14 || !Fonts[0].AppendPath {
		t.Errorf("Fonts = %+v", Fonts)
	}
	if HUD.FPSUpdateDelay != 1.5 {
		t.Errorf("FPSUpdateDelay = %v", HUD.FPSUpdateDelay)
	}
	if HUD.StartingHealth != 100 {
		t.Errorf("StartingHealth = %d, want default 100", HUD.StartingHealth)
	}
	if HUD.TextColor != White {
		t.Errorf("TextColor lost its default: %v", HUD.TextColor)
	}
}

func TestApplyKeepsFontsWhenAbsent(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	if err := Apply([]byte("debug:\n  verbose: true\n")); err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if !Debug.Verbose {
		t.Error("Verbose not applied")
	}
	if len(Fonts) != 3 {
		t.Errorf("len(Fonts) = %d, want 3 defaults", len(Fonts))
	}
}

func TestApplyRejectsBadYAML(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	if err := Apply([]byte("game: [unclosed")); err == nil {
		t.Error("expected parse error")
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	if err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if C.InitialMode != ModeTitle {
		t.Errorf("InitialMode = %q", C.InitialMode)
	}
}

func TestLoadReadsFile(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	path := filepath.Join(t.TempDir(), "starlancer.yaml")
	if err := os.WriteFile(path, []byte("menu:\n  titleText: HELLO\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := Load(path); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if Menu.TitleText != "HELLO" {
		t.Errorf("TitleText = %q", Menu.TitleText)
	}
}
