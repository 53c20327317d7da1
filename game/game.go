// Package game ties input, the mode manager and the menu manager into an
// ebiten.Game.
package game

import (
	"image/color"
	"log"

	"github.com/automoto/starlancer/assets"
	cfg "github.com/automoto/starlancer/config"
	"github.com/automoto/starlancer/fonts"
	"github.com/automoto/starlancer/input"
	"github.com/automoto/starlancer/menu"
	"github.com/automoto/starlancer/modes"
	"github.com/automoto/starlancer/render"
	"github.com/automoto/starlancer/scenes"
	"github.com/automoto/starlancer/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// Poller is an input provider that samples devices once per update.
type Poller interface {
	input.Provider
	Poll()
}

// Game is the composition root. It owns both managers and drives them once
// per frame: Update polls input then updates the current mode, Draw renders
// the mode and then the active menu.
type Game struct {
	menus    *menu.Manager
	modes    *modes.Manager
	input    Poller
	batch    *render.Batch
	textures *assets.TextureCache
	ctx      *scenes.Context
	play     *scenes.PlayMode

	dt   float64
	quit bool
}

// Options configures New.
type Options struct {
	Input    Poller
	Textures *assets.TextureCache
	Store    *systems.SettingsStore
	Settings *systems.SavedSettings
}

// New builds the managers, loads the startup fonts, registers every mode and
// requests cfg.C.InitialMode. The mode becomes current on the first Update.
func New(opts Options) *Game {
	if opts.Input == nil {
		opts.Input = input.NewPoller()
	}
	if opts.Textures == nil {
		opts.Textures = assets.NewTextureCache(cfg.Assets.BasePath)
	}
	if opts.Settings == nil {
		opts.Settings = systems.DefaultSettings()
	}

	g := &Game{
		menus:    menu.NewManager(fonts.NewCache(cfg.Assets.BasePath)),
		modes:    modes.NewManager(),
		input:    opts.Input,
		batch:    render.NewBatch(),
		textures: opts.Textures,
		dt:       1 / float64(cfg.C.TPS),
	}

	g.menus.SetTextureProvider(g.textures)
	g.loadFonts()

	g.ctx = &scenes.Context{
		Menus:    g.menus,
		Modes:    g.modes,
		Input:    g.input.State(),
		Settings: opts.Settings,
		Store:    opts.Store,
		FPS:      ebiten.ActualFPS,
		Quit:     func() { g.quit = true },
	}

	g.modes.AddMode(scenes.NewTitleMode(g.ctx))
	g.play = scenes.NewPlayMode(g.ctx)
	g.modes.AddMode(g.play)
	g.modes.AddMode(scenes.NewOptionsMode(g.ctx))
	g.modes.ChangeMode(cfg.C.InitialMode)

	return g
}

// loadFonts loads the configured font files, then the embedded default face
// at every pitch the built-in pages use.
func (g *Game) loadFonts() {
	for _, f := range cfg.Fonts {
		g.menus.LoadFont(f.Path, f.Name, f.Pitch, f.AppendPath)
	}

	for _, pitch := range []int{cfg.Menu.TitlePitch, cfg.Menu.ButtonPitch, cfg.HUD.Pitch} {
		if g.menus.Fonts().Has(cfg.DefaultFont, pitch) {
			continue
		}
		if !g.menus.Fonts().LoadBytes(cfg.DefaultFont, pitch, goregular.TTF) {
			log.Fatalf("failed to load embedded font at pitch %d", pitch)
		}
	}
}

func (g *Game) Update() error {
	g.input.Poll()
	g.modes.Update(g.dt)
	if g.quit {
		log.Printf("[Game] quit requested")
		return ebiten.Termination
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	g.batch.Begin(screen)
	g.modes.Render(g.dt, g.batch)
	g.menus.Render(g.dt, g.batch, g.textures, g.input.State())
	g.batch.End()

	g.input.PostProcess()
}

// Layout uses the window size as-is; pages scale from their own design
// resolution.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth <= 0 || outsideHeight <= 0 {
		return cfg.C.Width, cfg.C.Height
	}
	return outsideWidth, outsideHeight
}

// Menus returns the menu manager.
func (g *Game) Menus() *menu.Manager {
	return g.menus
}

// Modes returns the mode manager.
func (g *Game) Modes() *modes.Manager {
	return g.modes
}

// Release tears both managers down.
func (g *Game) Release() {
	g.modes.Release()
	g.menus.Reset()
	g.textures.Release()
}
