package scenes

import (
	"log"

	"github.com/automoto/starlancer/assets"
	cfg "github.com/automoto/starlancer/config"
	"github.com/automoto/starlancer/menu"
	"github.com/automoto/starlancer/render"
)

// TitleMenu is the name of the title page.
const TitleMenu = "title"

var titleButtons = []string{"play", "options", "quit"}

// TitleMode shows the main menu.
type TitleMode struct {
	ctx      *Context
	bindings []binding
	focus    int
}

func NewTitleMode(ctx *Context) *TitleMode {
	return &TitleMode{ctx: ctx}
}

func (tm *TitleMode) Name() string {
	return cfg.ModeTitle
}

func (tm *TitleMode) Enter() {
	menus := tm.ctx.Menus
	if !menus.HasMenu(TitleMenu) {
		if _, err := menus.LoadLayout(assets.LayoutFS(), cfg.Assets.TitleLayout, TitleMenu); err != nil {
			log.Printf("[TitleMode] %v; using built-in layout", err)
			buildTitlePage(menus)
		}
	}

	bind(menus, &tm.bindings, TitleMenu, "play", menu.EventClick, func(*menu.Node, menu.EventKind) {
		tm.ctx.Modes.ChangeMode(cfg.ModePlay)
	})
	bind(menus, &tm.bindings, TitleMenu, "options", menu.EventClick, func(*menu.Node, menu.EventKind) {
		tm.ctx.Modes.ChangeMode(cfg.ModeOptions)
	})
	bind(menus, &tm.bindings, TitleMenu, "quit", menu.EventClick, func(*menu.Node, menu.EventKind) {
		if tm.ctx.Quit != nil {
			tm.ctx.Quit()
		}
	})
	for i, name := range titleButtons {
		i := i
		bind(menus, &tm.bindings, TitleMenu, name, menu.EventHoverStart, func(*menu.Node, menu.EventKind) {
			tm.setFocus(i)
		})
	}

	tm.setFocus(0)
	menus.ShowMenu(TitleMenu)
}

func (tm *TitleMode) Update(dt float64) {
	in := tm.ctx.Input
	if in == nil {
		return
	}

	switch {
	case in.Action(cfg.ActionMenuUp).JustPressed:
		tm.setFocus((tm.focus + len(titleButtons) - 1) % len(titleButtons))
	case in.Action(cfg.ActionMenuDown).JustPressed:
		tm.setFocus((tm.focus + 1) % len(titleButtons))
	case in.Action(cfg.ActionMenuSelect).JustPressed:
		btn := tm.ctx.Menus.FindNode(TitleMenu, titleButtons[tm.focus])
		tm.ctx.Menus.TriggerEvent(btn, menu.EventClick)
	}
}

// Render has nothing to add; the title page draws its own background.
func (tm *TitleMode) Render(dt float64, s render.Surface) {}

func (tm *TitleMode) Exit() bool {
	unbind(tm.ctx.Menus, &tm.bindings, TitleMenu)
	tm.ctx.Menus.HideMenu()
	return true
}

// Focus returns the name of the focused button.
func (tm *TitleMode) Focus() string {
	return titleButtons[tm.focus]
}

func (tm *TitleMode) setFocus(i int) {
	tm.focus = i
	for j, name := range titleButtons {
		tm.ctx.Menus.FindNode(TitleMenu, name).Focused = j == i
	}
}

// buildTitlePage lays out the title page in code, matching the embedded
// layout, for when the layout file cannot be read.
func buildTitlePage(menus *menu.Manager) {
	m := cfg.Menu
	page := menus.AddMenu(TitleMenu, m.Width, m.Height)

	bg := menus.AddNode(page, menu.KindImage, "background").SetBounds(0, 0, m.Width, m.Height)
	bg.Tint = m.BackgroundColor

	menus.AddNode(page, menu.KindText, "heading").
		SetBounds(m.Width/2-300, m.TitleY, 600, 80).
		SetText(m.TitleText, m.TitleFont, m.TitlePitch, m.TitleColor)

	group := menus.AddNode(page, menu.KindGroup, "buttons").
		SetBounds((m.Width-m.ItemWidth)/2, m.MenuStartY, m.ItemWidth, 3*m.ItemHeight+2*m.ItemGap)

	labels := []string{"Play", "Options", "Quit"}
	for i, name := range titleButtons {
		btn := menus.AddNode(group, menu.KindButton, name).
			SetBounds(0, float64(i)*(m.ItemHeight+m.ItemGap), m.ItemWidth, m.ItemHeight).
			SetText("", m.ButtonFont, m.ButtonPitch, m.TextColorNormal)
		btn.Label = labels[i]
		btn.IdleColor = m.ButtonIdle
		btn.HoverColor = m.ButtonHover
		btn.PressedColor = m.ButtonPressed
	}
}
