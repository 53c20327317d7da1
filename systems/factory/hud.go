package factory

import (
	"github.com/automoto/starlancer/archetypes"
	"github.com/automoto/starlancer/components"
	cfg "github.com/automoto/starlancer/config"
	"github.com/automoto/starlancer/menu"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// HUDMenu is the name of the in-game HUD page.
const HUDMenu = "hud"

// CreateHUD builds the HUD page in the menu manager and spawns the entity
// that keeps it up to date. The page is reused if it already exists.
func CreateHUD(ecs *ecs.ECS, menus *menu.Manager, showFPS bool) *donburi.Entry {
	if !menus.HasMenu(HUDMenu) {
		buildHUDPage(menus)
	}

	hud := archetypes.HUD.Spawn(ecs)
	components.HUD.SetValue(hud, components.HUDData{
		Menu:       HUDMenu,
		HealthFill: menus.FindNode(HUDMenu, "healthFill").ID(),
		HealthText: menus.FindNode(HUDMenu, "healthText").ID(),
		Clock:      menus.FindNode(HUDMenu, "clock").ID(),
		FPS:        menus.FindNode(HUDMenu, "fps").ID(),
	})
	components.FPS.SetValue(hud, components.FPSData{Visible: showFPS})
	return hud
}

func buildHUDPage(menus *menu.Manager) {
	h := cfg.HUD
	page := menus.AddMenu(HUDMenu, h.Width, h.Height)

	bar := menus.AddNode(page, menu.KindImage, "healthBar").
		SetBounds(h.HealthBarX, h.HealthBarY, h.HealthBarWidth, h.HealthBarHeight)
	bar.Tint = h.HealthBarBgColor

	fill := menus.AddNode(bar, menu.KindImage, "healthFill").
		SetBounds(0, 0, h.HealthBarWidth, h.HealthBarHeight)
	fill.Tint = h.HealthBarFgColor

	menus.AddNode(bar, menu.KindText, "healthText").
		SetBounds(8, 6, h.HealthBarWidth-16, h.HealthBarHeight-12).
		SetText("", h.Font, h.Pitch, h.TextColor)

	menus.AddNode(page, menu.KindText, "clock").
		SetBounds(h.Width/2-60, h.HealthBarY, 120, h.HealthBarHeight).
		SetText("00:00", h.Font, h.Pitch, h.TextColor)

	menus.AddNode(page, menu.KindText, "fps").
		SetBounds(h.Width-160, h.HealthBarY, 120, h.HealthBarHeight).
		SetText("", h.Font, h.Pitch, h.TextColor)
}
