package components

import (
	"image/color"

	"github.com/yohamta/donburi"
)

// Faction decides what a projectile can hit.
type Faction int

const (
	FactionPlayer Faction = iota
	FactionEnemy
)

type ProjectileData struct {
	DirX, DirY float64
	Speed      float64
	Damage     float64
	Radius     float64
	TimeToLive float64 // seconds left
	Faction    Faction
	Owner      int // player index for FactionPlayer
	Color      color.RGBA
	Active     bool
}

var Projectile = donburi.NewComponentType[ProjectileData]()
