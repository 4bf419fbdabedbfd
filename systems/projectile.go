package systems

import (
	"github.com/automoto/campfire/components"
	"github.com/automoto/campfire/shared/gamemath"
	"github.com/automoto/campfire/shared/tilemap"
	"github.com/automoto/campfire/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func UpdateProjectiles(ecs *ecs.ECS) {
	var m *tilemap.Map
	if level := currentLevel(ecs.World); level != nil {
		m = level.Map
	}
	dt := deltaTime()

	tags.Projectile.Each(ecs.World, func(entry *donburi.Entry) {
		p := components.Projectile.Get(entry)
		if !p.Active {
			return
		}
		obj := components.Object.Get(entry)

		dx, dy := p.DirX*p.Speed*dt, p.DirY*p.Speed*dt
		if victim := projectileHit(obj.Object, p, dx, dy); victim != nil {
			components.Health.Get(victim).TakeDamage(p.Damage)
			p.Active = false
			return
		}

		x, y := obj.Center()
		x, y = x+dx, y+dy
		obj.SetCenter(x, y)
		advanceProjectile(p, m, x, y, dt)
	})
}

// advanceProjectile ages a projectile at its new position and deactivates
// it when it expires, hits an obstacle or leaves the map.
func advanceProjectile(p *components.ProjectileData, m *tilemap.Map, x, y, dt float64) {
	p.TimeToLive -= dt
	if p.TimeToLive <= 0 {
		p.Active = false
		return
	}
	if m == nil {
		return
	}
	if m.Blocked(x, y) {
		p.Active = false
		return
	}
	if x < 0 || y < 0 || x > float64(m.WidthInPixels()) || y > float64(m.HeightInPixels()) {
		p.Active = false
	}
}

// projectileHit finds a living actor of the opposing faction that the
// projectile touches after moving by (dx, dy).
func projectileHit(obj *resolv.Object, p *components.ProjectileData, dx, dy float64) *donburi.Entry {
	if obj == nil || obj.Space == nil {
		return nil
	}
	victimTag := tags.ResolvEnemy
	if p.Faction == components.FactionEnemy {
		victimTag = tags.ResolvPlayer
	}
	check := obj.Check(dx, dy, victimTag)
	if check == nil {
		return nil
	}

	px, py := obj.X+obj.W/2+dx, obj.Y+obj.H/2+dy
	for _, other := range check.ObjectsByTags(victimTag) {
		entry, ok := other.Data.(*donburi.Entry)
		if !ok || !entry.Valid() || !entry.HasComponent(components.Health) {
			continue
		}
		if !components.Health.Get(entry).IsAlive() {
			continue
		}
		// Bodies are squares around the actor's circle.
		ox, oy := other.X+other.W/2, other.Y+other.H/2
		if gamemath.CirclesOverlap(px, py, p.Radius, ox, oy, other.W/2) {
			return entry
		}
	}
	return nil
}
