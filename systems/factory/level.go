package factory

import (
	"github.com/automoto/campfire/archetypes"
	"github.com/automoto/campfire/components"
	"github.com/automoto/campfire/shared/tilemap"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateLevel wraps a loaded map. Atlas images are created on first draw.
func CreateLevel(ecs *ecs.ECS, m *tilemap.Map) *donburi.Entry {
	level := archetypes.Level.Spawn(ecs)
	components.Level.Set(level, &components.LevelData{
		Map:    m,
		Spawns: tilemap.NewSpawns(m),
	})
	return level
}
