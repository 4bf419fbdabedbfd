package factory

import (
	"github.com/automoto/campfire/archetypes"
	"github.com/automoto/campfire/components"
	cfg "github.com/automoto/campfire/config"
	"github.com/automoto/campfire/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// PlayerInputConfig binds a player to a device.
type PlayerInputConfig struct {
	PlayerIndex   int
	GamepadID     *ebiten.GamepadID
	ControlScheme cfg.ControlSchemeID
}

// DefaultInputConfig gives player i the i-th keyboard layout and no gamepad.
func DefaultInputConfig(i int) PlayerInputConfig {
	return PlayerInputConfig{
		PlayerIndex:   i,
		ControlScheme: cfg.ControlSchemeID(i % len(cfg.ControlSchemeBindings)),
	}
}

func CreatePlayer(ecs *ecs.ECS, x, y float64, input PlayerInputConfig) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	newBody(ecs, player, x, y, cfg.Player.Radius, tags.ResolvPlayer)

	data := components.PlayerData{
		Index:            input.PlayerIndex,
		Color:            cfg.Player.Colors[input.PlayerIndex%len(cfg.Player.Colors)],
		Radius:           cfg.Player.Radius,
		DirX:             1,
		AimX:             1,
		DamageModifier:   1,
		SpeedModifier:    1,
		FireRateModifier: 1,
		HealthModifier:   1,
	}
	ApplyGun(&data, cfg.GunPistol)
	components.Player.SetValue(player, data)

	components.Health.SetValue(player, components.HealthData{
		Current: cfg.Player.Health,
		Max:     cfg.Player.Health,
	})
	components.PlayerInput.SetValue(player, components.PlayerInputData{
		PlayerIndex:    input.PlayerIndex,
		BoundGamepadID: input.GamepadID,
		ControlScheme:  input.ControlScheme,
	})

	return player
}

// ApplyGun switches the player's weapon and loads its base stats.
func ApplyGun(p *components.PlayerData, gun cfg.GunType) {
	g, ok := cfg.Guns[gun]
	if !ok {
		gun, g = cfg.GunPistol, cfg.Guns[cfg.GunPistol]
	}
	p.Gun = gun
	p.FireRate = g.FireRate
	p.Damage = g.Damage
	p.ProjectileSpeed = g.ProjectileSpeed
	p.Pellets = g.Pellets
	p.Spread = g.Spread
	if p.Pellets < 1 {
		p.Pellets = 1
	}
}
