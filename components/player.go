package components

import (
	"image/color"

	cfg "github.com/automoto/campfire/config"
	"github.com/yohamta/donburi"
)

// PlayerData holds a survivor's facing, weapon and upgrade modifiers.
type PlayerData struct {
	Index    int
	Color    color.RGBA
	Radius   float64
	Rotation float64 // radians, 0 faces east

	// Unit vectors.
	DirX, DirY float64
	AimX, AimY float64

	Gun             cfg.GunType
	FireRate        float64
	Damage          float64
	ProjectileSpeed float64
	Pellets         int
	Spread          float64
	FireTimer       float64

	DamageModifier   float64
	SpeedModifier    float64
	FireRateModifier float64
	HealthModifier   float64
}

var Player = donburi.NewComponentType[PlayerData]()
