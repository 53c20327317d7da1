package components

import (
	"github.com/automoto/starlancer/menu"
	"github.com/yohamta/donburi"
)

// HUDData links the HUD entity to the menu nodes it writes into. Nodes are
// held by identity and resolved through the menu manager each frame.
type HUDData struct {
	Menu       string
	HealthFill menu.NodeID
	HealthText menu.NodeID
	Clock      menu.NodeID
	FPS        menu.NodeID
}

// ClockData is the in-game time shown on the HUD
type ClockData struct {
	Elapsed float64
}

// FPSData holds the displayed frame rate, refreshed every FPSUpdateDelay
// seconds so the number stays readable.
type FPSData struct {
	Value   float64
	Timer   float64
	Visible bool
}

// FrameData carries the tick length into systems, which take no arguments
// besides the ECS.
type FrameData struct {
	DT float64
}

var HUD = donburi.NewComponentType[HUDData]()
var Clock = donburi.NewComponentType[ClockData]()
var FPS = donburi.NewComponentType[FPSData]()
var Frame = donburi.NewComponentType[FrameData]()
