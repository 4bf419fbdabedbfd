package systems

import (
	"github.com/automoto/campfire/components"
	"github.com/automoto/campfire/tags"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCampfire drives the fire's flicker. A burnt-out fire stops glowing.
func UpdateCampfire(ecs *ecs.ECS) {
	entry, ok := tags.Campfire.First(ecs.World)
	if !ok {
		return
	}
	fire := components.Campfire.Get(entry)
	if !components.Health.Get(entry).IsAlive() {
		fire.Glow = 0
		return
	}
	seq := components.Tween.Get(entry)
	glow, _, done := seq.Update(float32(deltaTime()))
	fire.Glow = float64(glow)
	if done {
		seq.Reset()
	}
}
