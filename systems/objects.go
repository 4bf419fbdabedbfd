package systems

import (
	"github.com/automoto/campfire/components"
	cfg "github.com/automoto/campfire/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateObjects refreshes every body's cells in the broad-phase space.
func UpdateObjects(ecs *ecs.ECS) {
	components.Object.Each(ecs.World, func(e *donburi.Entry) {
		obj := components.Object.Get(e)
		if obj.Space != nil {
			obj.Update()
		}
	})
}

// deltaTime is the fixed simulation step.
func deltaTime() float64 {
	return 1 / float64(cfg.C.TPS)
}

// removeEntry takes the entry's body out of the space and deletes it.
func removeEntry(w donburi.World, entry *donburi.Entry) {
	if !entry.Valid() {
		return
	}
	if entry.HasComponent(components.Object) {
		obj := components.Object.Get(entry)
		if obj.Object != nil && obj.Space != nil {
			obj.Space.Remove(obj.Object)
		}
	}
	w.Remove(entry.Entity())
}
