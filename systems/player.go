package systems

import (
	"log"
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

func UpdatePlayers(ecs *ecs.ECS) {
	var m *tilemap.Map
	if level := currentLevel(ecs.World); level != nil {
		m = level.Map
	}
	dt := deltaTime()

	var shots []factory.ProjectileSpec
	tags.Player.Each(ecs.World, func(playerEntry *donburi.Entry) {
		shots = append(shots, updateSinglePlayer(playerEntry, m, dt)...)
	})
	for _, shot := range shots {
		factory.CreateProjectile(ecs, shot)
	}
}

func updateSinglePlayer(playerEntry *donburi.Entry, m *tilemap.Map, dt float64) []factory.ProjectileSpec {
	if !components.Health.Get(playerEntry).IsAlive() {
		return nil
	}

	input := components.PlayerInput.Get(playerEntry)
	player := components.Player.Get(playerEntry)
	obj := components.Object.Get(playerEntry)

	x, y := obj.Center()
	nx, ny := steerPlayer(player, input.MoveX, -input.MoveY, x, y, dt)
	nx, ny = slideMove(m, x, y, nx, ny, player.Radius)
	nx, ny = clampToMap(m, nx, ny, cfg.Player.EdgeMargin)
	obj.SetCenter(nx, ny)

	aimPlayer(player, input.AimX, input.AimY)

	if player.FireTimer > 0 {
		player.FireTimer -= dt
	}
	if GetPlayerAction(input, cfg.ActionButtonA).Pressed {
		return TryFire(player, nx, ny)
	}
	return nil
}

// steerPlayer applies tank-style controls: turn rotates the player and
// forward moves along the facing direction. It returns the new centre.
func steerPlayer(p *components.PlayerData, turn, forward, x, y, dt float64) (float64, float64) {
	p.Rotation += turn * cfg.Player.TurnSpeed * dt
	p.Rotation = math.Mod(p.Rotation, 2*math.Pi)
	if p.Rotation < 0 {
		p.Rotation += 2 * math.Pi
	}
	p.DirX, p.DirY = gamemath.Direction(p.Rotation)

	if math.Abs(forward) <= cfg.Player.MoveDeadzone {
		return x, y
	}
	step := forward * cfg.Player.Speed * p.SpeedModifier * dt
	return x + p.DirX*step, y + p.DirY*step
}

// aimPlayer points the gun along an explicit aim input, or along the
// facing direction when the input is too short.
func aimPlayer(p *components.PlayerData, aimX, aimY float64) {
	if gamemath.Length(aimX, aimY) > cfg.Player.AimDeadzone {
		p.AimX, p.AimY = gamemath.Normalize(aimX, aimY)
		return
	}
	p.AimX, p.AimY = p.DirX, p.DirY
}

// TryFire returns the projectiles of one trigger pull, or nil while the gun
// is cooling down. A successful shot restarts the cooldown.
func TryFire(p *components.PlayerData, x, y float64) []factory.ProjectileSpec {
	if p.FireTimer > 0 {
		return nil
	}
	p.FireTimer = fireInterval(p)

	aim := math.Atan2(p.AimY, p.AimX)
	offset := p.Radius + cfg.Player.MuzzleOffset
	angles := gamemath.SpreadAngles(aim, p.Spread, p.Pellets)
	shots := make([]factory.ProjectileSpec, 0, len(angles))
	for _, a := range angles {
		dx, dy := gamemath.Direction(a)
		shots = append(shots, factory.ProjectileSpec{
			X:       x + dx*offset,
			Y:       y + dy*offset,
			DirX:    dx,
			DirY:    dy,
			Speed:   p.ProjectileSpeed,
			Damage:  p.Damage * p.DamageModifier,
			Faction: components.FactionPlayer,
			Owner:   p.Index,
			Color:   cfg.Projectile.PlayerColor,
		})
	}
	return shots
}

func fireInterval(p *components.PlayerData) float64 {
	if p.FireRateModifier <= 0 {
		return p.FireRate
	}
	return p.FireRate / p.FireRateModifier
}

// UpgradeGun swaps the player's weapon. Stat modifiers are kept.
func UpgradeGun(p *components.PlayerData, gun cfg.GunType) {
	factory.ApplyGun(p, gun)
}

// UpgradeStat raises one modifier by amount. A health upgrade also grows
// the maximum health and heals the player a little.
func UpgradeStat(p *components.PlayerData, h *components.HealthData, stat string, amount float64) {
	switch stat {
	case "damage":
		p.DamageModifier += amount
	case "speed":
		p.SpeedModifier += amount
	case "fireRate":
		p.FireRateModifier += amount
	case "health":
		p.HealthModifier += amount
		h.Max = cfg.Player.Health * p.HealthModifier
		h.Heal(cfg.Player.HealOnHealth)
	default:
		log.Printf("Warning: unknown upgrade stat %q", stat)
	}
}

// ApplyUpgrade grants one schedule step and returns its label.
func ApplyUpgrade(p *components.PlayerData, h *components.HealthData, step cfg.UpgradeStep) string {
	if step.Gun != nil {
		UpgradeGun(p, *step.Gun)
		return step.Gun.String()
	}
	UpgradeStat(p, h, step.Stat, step.Amount)
	return upgradeLabel(step)
}

func upgradeLabel(step cfg.UpgradeStep) string {
	switch step.Stat {
	case "damage":
		return "Damage Up"
	case "speed":
		return "Speed Up"
	case "fireRate":
		return "Fire Rate Up"
	case "health":
		return "Health Up"
	}
	return step.Stat
}
