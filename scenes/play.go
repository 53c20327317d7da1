package scenes

import (
	"image/color"
	"log"

	"github.com/automoto/starlancer/components"
	cfg "github.com/automoto/starlancer/config"
	"github.com/automoto/starlancer/menu"
	"github.com/automoto/starlancer/render"
	"github.com/automoto/starlancer/systems"
	"github.com/automoto/starlancer/systems/factory"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// PauseMenu is the name of the pause page shown over play.
const PauseMenu = "pause"

// PlayMode runs the in-game HUD world. Leaving it fades the screen out
// first, so Exit reports false until the fade has finished.
type PlayMode struct {
	ctx      *Context
	ecs      *ecs.ECS
	hud      *donburi.Entry
	bindings []binding

	fade     *gween.Tween
	fadeDone bool
	shade    float32
}

func NewPlayMode(ctx *Context) *PlayMode {
	return &PlayMode{ctx: ctx}
}

func (pm *PlayMode) Name() string {
	return cfg.ModePlay
}

func (pm *PlayMode) Enter() {
	menus := pm.ctx.Menus
	pm.ecs = ecs.NewECS(donburi.NewWorld())

	factory.CreateSession(pm.ecs, 1/float64(cfg.C.TPS))
	factory.CreatePlayer(pm.ecs, "player")
	pm.hud = factory.CreateHUD(pm.ecs, menus, pm.ctx.Settings != nil && pm.ctx.Settings.ShowFPS)

	pm.ecs.AddSystem(systems.UpdateClock)
	pm.ecs.AddSystem(systems.NewUpdateFPS(pm.sampleFPS))
	pm.ecs.AddSystem(systems.NewUpdateHUD(menus))

	if !menus.HasMenu(PauseMenu) {
		buildPausePage(menus)
	}
	bind(menus, &pm.bindings, PauseMenu, "resume", menu.EventClick, func(*menu.Node, menu.EventKind) {
		pm.setPaused(false)
	})
	bind(menus, &pm.bindings, PauseMenu, "leave", menu.EventClick, func(*menu.Node, menu.EventKind) {
		pm.ctx.Modes.ChangeMode(cfg.ModeTitle)
	})

	pm.fade = nil
	pm.fadeDone = false
	pm.shade = 0
	menus.ShowMenu(factory.HUDMenu)
}

func (pm *PlayMode) Update(dt float64) {
	if pm.fade != nil && !pm.ctx.Modes.Pending() {
		pm.cancelFade()
	}
	if pm.fade != nil {
		v, done := pm.fade.Update(float32(dt))
		pm.shade = v
		pm.fadeDone = done
		return
	}

	if session, ok := components.Frame.First(pm.ecs.World); ok {
		components.Frame.Get(session).DT = dt
	}

	if in := pm.ctx.Input; in != nil {
		if in.Action(cfg.ActionPause).JustPressed {
			pm.setPaused(!pm.Paused())
		}
		if in.Action(cfg.ActionToggleFPS).JustPressed {
			pm.toggleFPS()
		}
	}

	pm.ecs.Update()
}

func (pm *PlayMode) Render(dt float64, s render.Surface) {
	w, h := s.Size()
	s.DrawQuad(nil, 0, 0, float64(w), float64(h), cfg.Navy)
	if pm.shade > 0 {
		s.DrawQuad(nil, 0, 0, float64(w), float64(h), color.RGBA{A: uint8(255 * pm.shade)})
	}
}

// Exit starts the fade-out on the first call and returns true once it ends.
func (pm *PlayMode) Exit() bool {
	if pm.fade == nil {
		log.Printf("[PlayMode] fading out")
		pm.fade = gween.New(0, 1, cfg.HUD.ExitFadeDuration, ease.Linear)
		pm.ctx.Menus.HideMenu()
		return false
	}
	if !pm.fadeDone {
		return false
	}

	unbind(pm.ctx.Menus, &pm.bindings, PauseMenu)
	pm.ecs = nil
	pm.hud = nil
	pm.fade = nil
	return true
}

// cancelFade restores play after the change away from it was withdrawn.
func (pm *PlayMode) cancelFade() {
	log.Printf("[PlayMode] fade cancelled")
	pm.fade = nil
	pm.fadeDone = false
	pm.shade = 0
	if pm.Paused() {
		pm.ctx.Menus.ShowMenu(PauseMenu)
	} else {
		pm.ctx.Menus.ShowMenu(factory.HUDMenu)
	}
}

// World exposes the ECS, mainly for tests.
func (pm *PlayMode) World() *ecs.ECS {
	return pm.ecs
}

// Paused reports whether play is suspended.
func (pm *PlayMode) Paused() bool {
	if pm.ecs == nil {
		return false
	}
	if e, ok := components.Pause.First(pm.ecs.World); ok {
		return components.Pause.Get(e).IsPaused
	}
	return false
}

func (pm *PlayMode) setPaused(paused bool) {
	systems.SetPaused(pm.ecs, paused)
	if paused {
		pm.ctx.Menus.ShowMenu(PauseMenu)
	} else {
		pm.ctx.Menus.ShowMenu(factory.HUDMenu)
	}
}

func (pm *PlayMode) toggleFPS() {
	fps := components.FPS.Get(pm.hud)
	fps.Visible = !fps.Visible
	if pm.ctx.Settings == nil {
		return
	}
	pm.ctx.Settings.ShowFPS = fps.Visible
	if err := pm.ctx.Store.Save(pm.ctx.Settings); err != nil {
		log.Printf("[PlayMode] %v", err)
	}
}

func (pm *PlayMode) sampleFPS() float64 {
	if pm.ctx.FPS == nil {
		return 0
	}
	return pm.ctx.FPS()
}

func buildPausePage(menus *menu.Manager) {
	m := cfg.Menu
	page := menus.AddMenu(PauseMenu, m.Width, m.Height)

	shade := menus.AddNode(page, menu.KindImage, "shade").SetBounds(0, 0, m.Width, m.Height)
	shade.Tint = color.RGBA{A: 160}

	menus.AddNode(page, menu.KindText, "heading").
		SetBounds(m.Width/2-150, m.TitleY, 300, 80).
		SetText("PAUSED", m.TitleFont, m.TitlePitch, m.TitleColor)

	labels := map[string]string{"resume": "Resume", "leave": "Title Screen"}
	for i, name := range []string{"resume", "leave"} {
		btn := menus.AddNode(page, menu.KindButton, name).
			SetBounds((m.Width-m.ItemWidth)/2, m.MenuStartY+float64(i)*(m.ItemHeight+m.ItemGap), m.ItemWidth, m.ItemHeight).
			SetText("", m.ButtonFont, m.ButtonPitch, m.TextColorNormal)
		btn.Label = labels[name]
		btn.IdleColor = m.ButtonIdle
		btn.HoverColor = m.ButtonHover
		btn.PressedColor = m.ButtonPressed
	}
}
