package factory

import (
	"github.com/automoto/campfire/archetypes"
	"github.com/automoto/campfire/components"
	cfg "github.com/automoto/campfire/config"
	"github.com/automoto/campfire/tags"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateCampfire(ecs *ecs.ECS, x, y float64) *donburi.Entry {
	campfire := archetypes.Campfire.Spawn(ecs)
	newBody(ecs, campfire, x, y, cfg.Campfire.Radius, tags.ResolvCampfire)

	components.Campfire.SetValue(campfire, components.CampfireData{
		X:      x,
		Y:      y,
		Radius: cfg.Campfire.Radius,
		Glow:   1,
	})
	components.Health.SetValue(campfire, components.HealthData{
		Current: cfg.Campfire.Health,
		Max:     cfg.Campfire.Health,
	})

	// The glow breathes between 0.85 and 1.15 of the fire's radius.
	half := float32(cfg.Campfire.FlickerPeriod / 2)
	tw := gween.NewSequence()
	tw.Add(
		gween.New(0.85, 1.15, half, ease.InOutSine),
		gween.New(1.15, 0.85, half, ease.InOutSine),
	)
	components.Tween.Set(campfire, tw)

	return campfire
}
