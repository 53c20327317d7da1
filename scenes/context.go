// Package scenes holds the game's modes: the title menu, play and options.
package scenes

import (
	"github.com/automoto/starlancer/input"
	"github.com/automoto/starlancer/menu"
	"github.com/automoto/starlancer/modes"
	"github.com/automoto/starlancer/systems"
)

// Context is the shared state every mode is built with.
type Context struct {
	Menus *menu.Manager
	Modes *modes.Manager
	// Input is the snapshot for the current frame.
	Input *input.State

	Settings *systems.SavedSettings
	Store    *systems.SettingsStore

	// FPS samples the current frame rate.
	FPS func() float64
	// Quit asks the game to stop after the current update.
	Quit func()
}

// binding is a handler registered on a named node, kept so it can be removed.
type binding struct {
	node    string
	kind    menu.EventKind
	handler menu.Handler
}

// bind registers fn on page/node and records the registration in *list.
func bind(menus *menu.Manager, list *[]binding, page, node string, kind menu.EventKind, fn menu.HandlerFunc) {
	h := menus.NewHandler(fn)
	menus.AddEventHandler(page, node, kind, h)
	*list = append(*list, binding{node: node, kind: kind, handler: h})
}

// unbind removes every registration in *list from page.
func unbind(menus *menu.Manager, list *[]binding, page string) {
	for _, b := range *list {
		menus.RemoveEventHandler(page, b.node, b.kind, b.handler)
	}
	*list = nil
}
