package factory

import (
	"github.com/automoto/starlancer/archetypes"
	"github.com/automoto/starlancer/components"
	cfg "github.com/automoto/starlancer/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreatePlayer(ecs *ecs.ECS, name string) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	components.Player.SetValue(player, components.PlayerData{Name: name})
	components.Health.SetValue(player, components.HealthData{
		Current: cfg.HUD.StartingHealth,
		Max:     cfg.HUD.StartingHealth,
	})

	return player
}
