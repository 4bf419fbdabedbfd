package factory

import (
	"github.com/automoto/campfire/archetypes"
	"github.com/automoto/campfire/components"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateSpace(ecs *ecs.ECS, width, height, cellWidth, cellHeight int) *donburi.Entry {
	space := archetypes.Space.Spawn(ecs)
	spaceData := resolv.NewSpace(width, height, cellWidth, cellHeight)
	components.Space.Set(space, spaceData)
	return space
}

// newBody creates a square broad-phase body around a circle and registers it
// with the world's space, if there is one.
func newBody(ecs *ecs.ECS, entry *donburi.Entry, x, y, radius float64, tags ...string) *resolv.Object {
	obj := resolv.NewObject(x-radius, y-radius, radius*2, radius*2, tags...)
	obj.Data = entry
	components.Object.SetValue(entry, components.ObjectData{Object: obj})
	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}
	return obj
}
