package tags

import "github.com/yohamta/donburi"

var (
	Player     = donburi.NewTag().SetName("Player")
	Enemy      = donburi.NewTag().SetName("Enemy")
	Projectile = donburi.NewTag().SetName("Projectile")
	Campfire   = donburi.NewTag().SetName("Campfire")
	Circle     = donburi.NewTag().SetName("Circle")
)

// Resolv tags for broad-phase queries
const (
	ResolvPlayer     = "Player"
	ResolvEnemy      = "Enemy"
	ResolvProjectile = "Projectile"
	ResolvCampfire   = "Campfire"
)
