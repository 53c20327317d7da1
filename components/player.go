package components

import "github.com/yohamta/donburi"

// PlayerData identifies the ship the HUD reports on
type PlayerData struct {
	Name string
}

var Player = donburi.NewComponentType[PlayerData]()
