package components

import "github.com/yohamta/donburi"

// PauseData stores whether play is suspended behind the pause menu
type PauseData struct {
	IsPaused bool
}

var Pause = donburi.NewComponentType[PauseData]()
