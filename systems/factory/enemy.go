package factory

import (
	"math/rand"

	"github.com/automoto/campfire/archetypes"
	"github.com/automoto/campfire/components"
	cfg "github.com/automoto/campfire/config"
	"github.com/automoto/campfire/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateEnemy(ecs *ecs.ECS, enemyType cfg.EnemyType, x, y float64, rng *rand.Rand) *donburi.Entry {
	// Use the requested enemy type, default to Basic if not found
	typeCfg, exists := cfg.Enemy.Types[enemyType]
	if !exists {
		enemyType = cfg.EnemyBasic
		typeCfg = cfg.Enemy.Types[enemyType]
	}

	enemy := archetypes.Enemy.Spawn(ecs)
	radius := cfg.Enemy.BaseRadius * typeCfg.Scale
	newBody(ecs, enemy, x, y, radius, tags.ResolvEnemy)

	data := components.EnemyData{
		Type:           enemyType,
		Speed:          typeCfg.Speed,
		Damage:         typeCfg.Damage,
		Radius:         radius,
		Color:          typeCfg.Color,
		AttackCooldown: typeCfg.AttackCooldown,
	}
	// The first shot comes at a random point of the cooldown.
	if data.AttackCooldown > 0 && rng != nil {
		data.AttackTimer = rng.Float64() * data.AttackCooldown
	}
	components.Enemy.SetValue(enemy, data)
	components.Health.SetValue(enemy, components.HealthData{
		Current: typeCfg.Health,
		Max:     typeCfg.Health,
	})
	return enemy
}
