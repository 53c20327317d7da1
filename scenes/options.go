package scenes

import (
	"log"

	cfg "github.com/automoto/starlancer/config"
	"github.com/automoto/starlancer/render"
	"github.com/automoto/starlancer/systems"
	"github.com/automoto/starlancer/ui"
	"github.com/hajimehoshi/ebiten/v2"
)

// OptionsMode shows the settings screen.
type OptionsMode struct {
	ctx *Context
	ui  *ui.OptionsUI
}

func NewOptionsMode(ctx *Context) *OptionsMode {
	return &OptionsMode{ctx: ctx}
}

func (om *OptionsMode) Name() string {
	return cfg.ModeOptions
}

func (om *OptionsMode) Enter() {
	if om.ctx.Settings == nil {
		om.ctx.Settings = systems.DefaultSettings()
	}
	om.ui = ui.NewOptionsUI(om.ctx.Settings, om.apply, om.back)
	om.ctx.Menus.HideMenu()
}

func (om *OptionsMode) Update(dt float64) {
	if in := om.ctx.Input; in != nil && in.Action(cfg.ActionMenuBack).JustPressed {
		om.back()
		return
	}
	om.ui.Update()
}

func (om *OptionsMode) Render(dt float64, s render.Surface) {
	target, ok := s.(interface{ Target() *ebiten.Image })
	if !ok || target.Target() == nil {
		return
	}
	om.ui.Draw(target.Target())
}

func (om *OptionsMode) Exit() bool {
	om.ui = nil
	return true
}

func (om *OptionsMode) apply(s *systems.SavedSettings) {
	systems.ApplySettings(s)
	if err := om.ctx.Store.Save(s); err != nil {
		log.Printf("[OptionsMode] %v", err)
	}
}

func (om *OptionsMode) back() {
	om.ctx.Modes.ChangeMode(cfg.ModeTitle)
}
