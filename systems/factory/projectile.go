package factory

import (
	"image/color"

	"github.com/automoto/campfire/archetypes"
	"github.com/automoto/campfire/components"
	cfg "github.com/automoto/campfire/config"
	"github.com/automoto/campfire/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// ProjectileSpec describes a shot leaving its shooter.
type ProjectileSpec struct {
	X, Y       float64
	DirX, DirY float64
	Speed      float64
	Damage     float64
	Faction    components.Faction
	Owner      int
	Color      color.RGBA
}

func CreateProjectile(ecs *ecs.ECS, spec ProjectileSpec) *donburi.Entry {
	projectile := archetypes.Projectile.Spawn(ecs)
	newBody(ecs, projectile, spec.X, spec.Y, cfg.Projectile.Radius, tags.ResolvProjectile)
	components.Projectile.SetValue(projectile, components.ProjectileData{
		DirX:       spec.DirX,
		DirY:       spec.DirY,
		Speed:      spec.Speed,
		Damage:     spec.Damage,
		Radius:     cfg.Projectile.Radius,
		TimeToLive: cfg.Projectile.TimeToLive,
		Faction:    spec.Faction,
		Owner:      spec.Owner,
		Color:      spec.Color,
		Active:     true,
	})
	return projectile
}
