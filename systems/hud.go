package systems

import (
	"fmt"

	"github.com/automoto/starlancer/components"
	cfg "github.com/automoto/starlancer/config"
	"github.com/automoto/starlancer/menu"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateClock advances the HUD clock unless play is paused.
func UpdateClock(ecs *ecs.ECS) {
	if isPaused(ecs) {
		return
	}
	dt := frameDT(ecs)
	components.Clock.Each(ecs.World, func(e *donburi.Entry) {
		components.Clock.Get(e).Elapsed += dt
	})
}

// NewUpdateFPS returns a system that samples the frame rate every
// cfg.HUD.FPSUpdateDelay seconds.
func NewUpdateFPS(sample func() float64) func(*ecs.ECS) {
	return func(ecs *ecs.ECS) {
		dt := frameDT(ecs)
		components.FPS.Each(ecs.World, func(e *donburi.Entry) {
			fps := components.FPS.Get(e)
			fps.Timer -= dt
			if fps.Timer <= 0 {
				fps.Value = sample()
				fps.Timer = cfg.HUD.FPSUpdateDelay
			}
		})
	}
}

// NewUpdateHUD returns a system that writes player health, the clock and the
// frame rate into the HUD's menu nodes.
func NewUpdateHUD(menus *menu.Manager) func(*ecs.ECS) {
	return func(ecs *ecs.ECS) {
		health := &components.HealthData{}
		if player, ok := components.Player.First(ecs.World); ok {
			health = components.Health.Get(player)
		}

		components.HUD.Each(ecs.World, func(e *donburi.Entry) {
			hud := components.HUD.Get(e)

			if fill, ok := menus.Node(hud.HealthFill); ok {
				fill.Width = cfg.HUD.HealthBarWidth * health.Ratio()
			}
			if txt, ok := menus.Node(hud.HealthText); ok {
				txt.Text = fmt.Sprintf("%d / %d", health.Current, health.Max)
			}
			if clock, ok := menus.Node(hud.Clock); ok {
				clock.Text = FormatClock(components.Clock.Get(e).Elapsed)
			}
			if fpsNode, ok := menus.Node(hud.FPS); ok {
				fps := components.FPS.Get(e)
				fpsNode.Hidden = !fps.Visible
				fpsNode.Text = fmt.Sprintf("FPS %.0f", fps.Value)
			}
		})
	}
}

// FormatClock renders seconds as mm:ss.
func FormatClock(seconds float64) string {
	total := int(seconds)
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}

// ApplyDamage reduces the player's health, never below zero.
func ApplyDamage(ecs *ecs.ECS, amount int) {
	player, ok := components.Player.First(ecs.World)
	if !ok {
		return
	}
	h := components.Health.Get(player)
	h.Current -= amount
	if h.Current < 0 {
		h.Current = 0
	}
	if h.Current > h.Max {
		h.Current = h.Max
	}
}

func frameDT(ecs *ecs.ECS) float64 {
	if e, ok := components.Frame.First(ecs.World); ok {
		return components.Frame.Get(e).DT
	}
	return 0
}

func isPaused(ecs *ecs.ECS) bool {
	if e, ok := components.Pause.First(ecs.World); ok {
		return components.Pause.Get(e).IsPaused
	}
	return false
}

// SetPaused flips the session pause flag.
func SetPaused(ecs *ecs.ECS, paused bool) {
	if e, ok := components.Pause.First(ecs.World); ok {
		components.Pause.Get(e).IsPaused = paused
	}
}
