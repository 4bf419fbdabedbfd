package systems

import (
	"github.com/automoto/campfire/components"
	"github.com/automoto/campfire/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Points per point of an enemy's maximum health.
const scorePerHealth = 10

// UpdateCombat removes spent projectiles and dead enemies and scores the
// kills. It runs after every system that deals damage.
func UpdateCombat(ecs *ecs.ECS) {
	var dead []*donburi.Entry

	// --------------------------------------------------------------------
	// 1. Projectiles that hit something or expired
	// --------------------------------------------------------------------
	tags.Projectile.Each(ecs.World, func(e *donburi.Entry) {
		if !components.Projectile.Get(e).Active {
			dead = append(dead, e)
		}
	})

	// --------------------------------------------------------------------
	// 2. Enemies with no health left
	// --------------------------------------------------------------------
	kills, score := 0, 0
	tags.Enemy.Each(ecs.World, func(e *donburi.Entry) {
		hp := components.Health.Get(e)
		if hp.IsAlive() {
			return
		}
		kills++
		score += KillScore(hp.Max)
		dead = append(dead, e)
	})

	for _, e := range dead {
		removeEntry(ecs.World, e)
	}

	if kills == 0 {
		return
	}
	if sessionEntry, ok := components.Session.First(ecs.World); ok {
		session := components.Session.Get(sessionEntry)
		session.Kills += kills
		session.Score += score
	}
}

// KillScore is the score for defeating an enemy with the given max health.
func KillScore(maxHealth float64) int {
	s := int(maxHealth * scorePerHealth)
	if s < scorePerHealth {
		return scorePerHealth
	}
	return s
}

// CountEnemies returns how many enemies are still alive.
func CountEnemies(ecs *ecs.ECS) int {
	n := 0
	tags.Enemy.Each(ecs.World, func(e *donburi.Entry) {
		if components.Health.Get(e).IsAlive() {
			n++
		}
	})
	return n
}
