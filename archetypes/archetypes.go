package archetypes

import (
	"github.com/automoto/starlancer/components"
	cfg "github.com/automoto/starlancer/config"
	"github.com/automoto/starlancer/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.Health,
	)
	HUD = newArchetype(
		tags.HUD,
		components.HUD,
		components.Clock,
		components.FPS,
	)
	Session = newArchetype(
		components.Frame,
		components.Pause,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
