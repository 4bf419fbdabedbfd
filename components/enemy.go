package components

import (
	"image/color"

	cfg "github.com/automoto/campfire/config"
	"github.com/yohamta/donburi"
)

type EnemyData struct {
	Type           cfg.EnemyType
	Speed          float64
	Damage         float64
	Radius         float64
	Color          color.RGBA
	Rotation       float64
	AttackCooldown float64 // 0 for melee-only enemies
	AttackTimer    float64
	ContactTimer   float64

	// Current target in map pixels.
	TargetX, TargetY float64
	HasTarget        bool
}

var Enemy = donburi.NewComponentType[EnemyData]()
