package tags

import "github.com/yohamta/donburi"

var (
	Player = donburi.NewTag().SetName("Player")
	HUD    = donburi.NewTag().SetName("HUD")
)
