package config

import (
	"image/color"

	"github.com/yohamta/donburi/ecs"
)

// Default is the render layer every ECS entity is created on.
const Default ecs.LayerID = 0

// Config holds general game configuration
type Config struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
	// InitialMode is the mode selected before the first Update tick.
	InitialMode string `yaml:"initialMode"`
	// TPS is the fixed update rate; dt passed to the managers is 1/TPS.
	TPS int `yaml:"tps"`
}

// AssetsConfig describes where read-only asset files live.
type AssetsConfig struct {
	// BasePath is prepended to font and texture paths that ask for it.
	BasePath string `yaml:"basePath"`
	// TitleLayout is the embedded Tiled layout used for the title menu.
	TitleLayout string `yaml:"titleLayout"`
}

// FontSpec is one font loaded at startup.
type FontSpec struct {
	Path  string `yaml:"path"`
	Name  string `yaml:"name"`
	Pitch int    `yaml:"pitch"`
	// AppendPath prefixes Assets.BasePath to Path.
	AppendPath bool `yaml:"appendPath"`
}

// MenuConfig contains title menu configuration values
type MenuConfig struct {
	// Design resolution of the title menu page
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`

	BackgroundColor   color.RGBA `yaml:"-"`
	TitleColor        color.RGBA `yaml:"-"`
	TextColorNormal   color.RGBA `yaml:"-"`
	TextColorSelected color.RGBA `yaml:"-"`
	ButtonIdle        color.RGBA `yaml:"-"`
	ButtonHover       color.RGBA `yaml:"-"`
	ButtonPressed     color.RGBA `yaml:"-"`

	TitleText   string  `yaml:"titleText"`
	TitleFont   string  `yaml:"titleFont"`
	TitlePitch  int     `yaml:"titlePitch"`
	ButtonFont  string  `yaml:"buttonFont"`
	ButtonPitch int     `yaml:"buttonPitch"`
	TitleY      float64 `yaml:"titleY"`
	MenuStartY  float64 `yaml:"menuStartY"`
	ItemWidth   float64 `yaml:"itemWidth"`
	ItemHeight  float64 `yaml:"itemHeight"`
	ItemGap     float64 `yaml:"itemGap"`

	// Seconds for a hovered button to pulse up to HoverScale
	HoverDuration float32 `yaml:"hoverDuration"`
	HoverScale    float32 `yaml:"hoverScale"`
}

// HUDConfig contains in-game HUD configuration values
type HUDConfig struct {
	// Design resolution of the HUD page
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`

	HealthBarX      float64 `yaml:"healthBarX"`
	HealthBarY      float64 `yaml:"healthBarY"`
	HealthBarWidth  float64 `yaml:"healthBarWidth"`
	HealthBarHeight float64 `yaml:"healthBarHeight"`

	HealthBarBgColor color.RGBA `yaml:"-"`
	HealthBarFgColor color.RGBA `yaml:"-"`
	TextColor        color.RGBA `yaml:"-"`

	Font  string `yaml:"font"`
	Pitch int    `yaml:"pitch"`

	// Seconds between FPS display refreshes
	FPSUpdateDelay float64 `yaml:"fpsUpdateDelay"`
	// Seconds the HUD takes to fade out when leaving play
	ExitFadeDuration float32 `yaml:"exitFadeDuration"`

	StartingHealth int `yaml:"startingHealth"`
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	Verbose bool `yaml:"verbose"`
}

// Global configuration instances
var C *Config
var Assets AssetsConfig
var Fonts []FontSpec
var Menu MenuConfig
var HUD HUDConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Orange       = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	BrightOrange = color.RGBA{R: 255, G: 180, B: 50, A: 255}
	BrightGreen  = color.RGBA{R: 0, G: 255, B: 60, A: 255}
	DarkGray     = color.RGBA{R: 40, G: 40, B: 40, A: 255}
	LightBlue    = color.RGBA{R: 100, G: 180, B: 255, A: 255} // Selected menu items
	DarkBlue     = color.RGBA{R: 60, G: 100, B: 160, A: 255}  // Unselected menu items
	Navy         = color.RGBA{R: 15, G: 25, B: 50, A: 255}
)

// Names of the built-in modes.
const (
	ModeTitle   = "Title"
	ModePlay    = "Play"
	ModeOptions = "Options"
)

// DefaultFont is registered from embedded bytes so text always has a face.
const DefaultFont = "default"

func init() {
	Reset()
}

// Reset restores every configuration value to its default.
func Reset() {
	C = &Config{
		Width:       1280,
		Height:      720,
		Title:       "Starlancer",
		InitialMode: ModeTitle,
		TPS:         60,
	}

	Assets = AssetsConfig{
		BasePath:    "assets/",
		TitleLayout: "layouts/title.tmx",
	}

	Fonts = []FontSpec{
		{Path: "fonts/comicSansMS.ttf", Name: "comicsans", Pitch: 12, AppendPath: true},
		{Path: "fonts/bauhaus93Regular.ttf", Name: "bauhaus", Pitch: 12, AppendPath: true},
		{Path: "fonts/algerian.ttf", Name: "algerian", Pitch: 12, AppendPath: true},
	}

	// Menu Config
	Menu = MenuConfig{
		Width:             1920,
		Height:            1080,
		BackgroundColor:   Navy,
		TitleColor:        Orange,
		TextColorNormal:   White,
		TextColorSelected: BrightOrange,
		ButtonIdle:        DarkBlue,
		ButtonHover:       LightBlue,
		ButtonPressed:     BrightOrange,
		TitleText:         "STARLANCER",
		TitleFont:         DefaultFont,
		TitlePitch:        48,
		ButtonFont:        DefaultFont,
		ButtonPitch:       24,
		TitleY:            200,
		MenuStartY:        420,
		ItemWidth:         480,
		ItemHeight:        80,
		ItemGap:           30,
		HoverDuration:     0.15,
		HoverScale:        1.08,
	}

	// HUD Config
	HUD = HUDConfig{
		Width:            1920,
		Height:           1080,
		HealthBarX:       40,
		HealthBarY:       40,
		HealthBarWidth:   400,
		HealthBarHeight:  36,
		HealthBarBgColor: DarkGray,
		HealthBarFgColor: BrightGreen,
		TextColor:        White,
		Font:             DefaultFont,
		Pitch:            20,
		FPSUpdateDelay:   0.5,
		ExitFadeDuration: 0.4,
		StartingHealth:   100,
	}

	// Debug Config (defaults, can be overridden by CLI flags)
	Debug = DebugConfig{
		Verbose: false,
	}
}
