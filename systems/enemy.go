package systems

import (
	"math"

	"github.com/automoto/campfire/components"
	cfg "github.com/automoto/campfire/config"
	"github.com/automoto/campfire/shared/gamemath"
	"github.com/automoto/campfire/shared/tilemap"
	"github.com/automoto/campfire/systems/factory"
	"github.com/automoto/campfire/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// target is something an enemy can walk to and hurt.
type target struct {
	X, Y   float64
	Radius float64
	Health *components.HealthData
}

func UpdateEnemies(ecs *ecs.ECS) {
	var m *tilemap.Map
	if level := currentLevel(ecs.World); level != nil {
		m = level.Map
	}
	dt := deltaTime()

	players := livingPlayers(ecs)
	fire, hasFire := campfireTarget(ecs)

	var shots []factory.ProjectileSpec
	tags.Enemy.Each(ecs.World, func(enemyEntry *donburi.Entry) {
		if !components.Health.Get(enemyEntry).IsAlive() {
			return
		}
		enemy := components.Enemy.Get(enemyEntry)
		obj := components.Object.Get(enemyEntry)
		x, y := obj.Center()

		tgt, ok := chooseTarget(x, y, players, fire, hasFire)
		if !ok {
			enemy.HasTarget = false
			return
		}
		enemy.TargetX, enemy.TargetY, enemy.HasTarget = tgt.X, tgt.Y, true

		nx, ny := stepEnemy(enemy, x, y, dt)
		nx, ny = slideMove(m, x, y, nx, ny, enemy.Radius)
		obj.SetCenter(nx, ny)

		if shot, ok := enemyShot(enemy, nx, ny, dt); ok {
			shots = append(shots, shot)
		}
		contactDamage(enemy, nx, ny, tgt, dt)
	})

	// Spawned after the query so the loop never sees them.
	for _, shot := range shots {
		factory.CreateProjectile(ecs, shot)
	}
}

func livingPlayers(ecs *ecs.ECS) []target {
	var out []target
	tags.Player.Each(ecs.World, func(entry *donburi.Entry) {
		h := components.Health.Get(entry)
		if !h.IsAlive() {
			return
		}
		x, y := components.Object.Get(entry).Center()
		out = append(out, target{X: x, Y: y, Radius: components.Player.Get(entry).Radius, Health: h})
	})
	return out
}

func campfireTarget(ecs *ecs.ECS) (target, bool) {
	entry, ok := tags.Campfire.First(ecs.World)
	if !ok {
		return target{}, false
	}
	h := components.Health.Get(entry)
	if !h.IsAlive() {
		return target{}, false
	}
	c := components.Campfire.Get(entry)
	return target{X: c.X, Y: c.Y, Radius: c.Radius, Health: h}, true
}

// chooseTarget picks the nearest player inside the aggro range, or the
// campfire when no player is that close.
func chooseTarget(x, y float64, players []target, fire target, hasFire bool) (target, bool) {
	best := -1
	bestDist := cfg.Enemy.AggroRange
	for i, p := range players {
		if d := gamemath.Distance(x, y, p.X, p.Y); d <= bestDist {
			best, bestDist = i, d
		}
	}
	if best >= 0 {
		return players[best], true
	}
	if hasFire {
		return fire, true
	}
	// No campfire: chase the nearest player anywhere on the map.
	best, bestDist = -1, math.Inf(1)
	for i, p := range players {
		if d := gamemath.Distance(x, y, p.X, p.Y); d < bestDist {
			best, bestDist = i, d
		}
	}
	if best < 0 {
		return target{}, false
	}
	return players[best], true
}

// stepEnemy turns the enemy towards its target and walks while it is
// farther than the stop distance. It never overshoots the target.
func stepEnemy(e *components.EnemyData, x, y, dt float64) (float64, float64) {
	dx, dy := e.TargetX-x, e.TargetY-y
	dist := gamemath.Length(dx, dy)
	if dist > 0 {
		e.Rotation = math.Atan2(dy, dx)
	}
	if dist <= cfg.Enemy.StopDistance {
		return x, y
	}
	step := math.Min(e.Speed*dt, dist)
	return x + dx/dist*step, y + dy/dist*step
}

// CanAttack ticks the attack cooldown and reports whether an attack is
// ready. A ready attack restarts the cooldown.
func CanAttack(e *components.EnemyData, dt float64) bool {
	if e.AttackCooldown <= 0 {
		return false
	}
	e.AttackTimer -= dt
	if e.AttackTimer > 0 {
		return false
	}
	e.AttackTimer = e.AttackCooldown
	return true
}

// enemyShot fires a ranged enemy at its target when in range.
func enemyShot(e *components.EnemyData, x, y, dt float64) (factory.ProjectileSpec, bool) {
	typeCfg := cfg.Enemy.Types[e.Type]
	if e.AttackCooldown <= 0 || !e.HasTarget {
		return factory.ProjectileSpec{}, false
	}
	if gamemath.Distance(x, y, e.TargetX, e.TargetY) > typeCfg.ShotRange {
		// Hold the shot until the target is in range.
		if e.AttackTimer > 0 {
			e.AttackTimer -= dt
		}
		return factory.ProjectileSpec{}, false
	}
	if !CanAttack(e, dt) {
		return factory.ProjectileSpec{}, false
	}
	dx, dy := gamemath.Direction(e.Rotation)
	offset := e.Radius + cfg.Projectile.Radius
	return factory.ProjectileSpec{
		X:       x + dx*offset,
		Y:       y + dy*offset,
		DirX:    dx,
		DirY:    dy,
		Speed:   typeCfg.ShotSpeed,
		Damage:  e.Damage,
		Faction: components.FactionEnemy,
		Owner:   -1,
		Color:   cfg.Projectile.EnemyColor,
	}, true
}

// contactDamage hurts the target while the enemy touches it, at most once
// per contact cooldown.
func contactDamage(e *components.EnemyData, x, y float64, tgt target, dt float64) {
	if e.ContactTimer > 0 {
		e.ContactTimer -= dt
	}
	if tgt.Health == nil || !tgt.Health.IsAlive() {
		return
	}
	// Touching means within the stop distance of the target's edge.
	if !gamemath.CirclesOverlap(x, y, e.Radius+cfg.Enemy.StopDistance, tgt.X, tgt.Y, tgt.Radius) {
		return
	}
	if e.ContactTimer > 0 {
		return
	}
	tgt.Health.TakeDamage(e.Damage)
	e.ContactTimer = cfg.Enemy.ContactCooldown
}
