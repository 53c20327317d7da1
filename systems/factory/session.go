package factory

import (
	"github.com/automoto/starlancer/archetypes"
	"github.com/automoto/starlancer/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateSession spawns the singleton holding the tick length and pause state.
func CreateSession(ecs *ecs.ECS, dt float64) *donburi.Entry {
	session := archetypes.Session.Spawn(ecs)
	components.Frame.SetValue(session, components.FrameData{DT: dt})
	components.Pause.SetValue(session, components.PauseData{})
	return session
}
