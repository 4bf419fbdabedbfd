package systems

import (
	"math"
	"testing"

	"github.com/automoto/campfire/components"
	cfg "github.com/automoto/campfire/config"
	"github.com/automoto/campfire/systems/factory"
)

func newTestPlayer() (*components.PlayerData, *components.HealthData) {
	p := &components.PlayerData{
		Radius:           cfg.Player.Radius,
		DirX:             1,
		AimX:             1,
		DamageModifier:   1,
		SpeedModifier:    1,
		FireRateModifier: 1,
		HealthModifier:   1,
	}
	factory.ApplyGun(p, cfg.GunPistol)
	return p, &components.HealthData{Current: cfg.Player.Health, Max: cfg.Player.Health}
}

func TestSteerPlayerMovesAlongFacing(t *testing.T) {
	p, _ := newTestPlayer()

	x, y := steerPlayer(p, 0, 1, 100, 100, step)
	want := 100 + cfg.Player.Speed*step
	if !near(x, want) || !near(y, 100) {
		t.Errorf("forward from east facing = (%v, %v), want (%v, 100)", x, y, want)
	}

	x, _ = steerPlayer(p, 0, -1, 100, 100, step)
	if x >= 100 {
		t.Errorf("backward moved to x=%v, want < 100", x)
	}
}

func TestSteerPlayerDeadzone(t *testing.T) {
	p, _ := newTestPlayer()
	x, y := steerPlayer(p, 0, cfg.Player.MoveDeadzone/2, 50, 60, step)
	if x != 50 || y != 60 {
		t.Errorf("input inside the deadzone moved the player to (%v, %v)", x, y)
	}
}

func TestSteerPlayerWrapsRotation(t *testing.T) {
	p, _ := newTestPlayer()
	for i := 0; i < 600; i++ {
		steerPlayer(p, -1, 0, 0, 0, step)
		if p.Rotation < 0 || p.Rotation >= 2*math.Pi {
			t.Fatalf("rotation %v left [0, 2pi)", p.Rotation)
		}
	}
	dx, dy := math.Cos(p.Rotation), math.Sin(p.Rotation)
	if !near(p.DirX, dx) || !near(p.DirY, dy) {
		t.Errorf("facing (%v, %v) does not match rotation %v", p.DirX, p.DirY, p.Rotation)
	}
}

func TestSteerPlayerSpeedModifier(t *testing.T) {
	p, _ := newTestPlayer()
	p.SpeedModifier = 2
	x, _ := steerPlayer(p, 0, 1, 0, 0, step)
	if want := 2 * cfg.Player.Speed * step; !near(x, want) {
		t.Errorf("x = %v, want %v", x, want)
	}
}

func TestAimPlayer(t *testing.T) {
	p, _ := newTestPlayer()
	p.DirX, p.DirY = 0, 1

	aimPlayer(p, 0, -3)
	if !near(p.AimX, 0) || !near(p.AimY, -1) {
		t.Errorf("aim = (%v, %v), want (0, -1)", p.AimX, p.AimY)
	}

	aimPlayer(p, 0.05, 0.05)
	if p.AimX != 0 || p.AimY != 1 {
		t.Errorf("short aim input = (%v, %v), want facing (0, 1)", p.AimX, p.AimY)
	}
}

func TestTryFireCooldown(t *testing.T) {
	p, _ := newTestPlayer()

	shots := TryFire(p, 100, 100)
	if len(shots) != 1 {
		t.Fatalf("pistol fired %d projectiles, want 1", len(shots))
	}
	if !near(p.FireTimer, cfg.Guns[cfg.GunPistol].FireRate) {
		t.Errorf("FireTimer = %v, want %v", p.FireTimer, cfg.Guns[cfg.GunPistol].FireRate)
	}
	if again := TryFire(p, 100, 100); again != nil {
		t.Errorf("fired %d projectiles while cooling down", len(again))
	}

	s := shots[0]
	wantX := 100 + cfg.Player.Radius + cfg.Player.MuzzleOffset
	if !near(s.X, wantX) || !near(s.Y, 100) {
		t.Errorf("muzzle = (%v, %v), want (%v, 100)", s.X, s.Y, wantX)
	}
	if s.Faction != components.FactionPlayer {
		t.Errorf("faction = %v, want player", s.Faction)
	}
}

func TestTryFireShotgunSpread(t *testing.T) {
	p, _ := newTestPlayer()
	UpgradeGun(p, cfg.GunShotgun)

	shots := TryFire(p, 0, 0)
	g := cfg.Guns[cfg.GunShotgun]
	if len(shots) != g.Pellets {
		t.Fatalf("shotgun fired %d pellets, want %d", len(shots), g.Pellets)
	}
	first := math.Atan2(shots[0].DirY, shots[0].DirX)
	last := math.Atan2(shots[len(shots)-1].DirY, shots[len(shots)-1].DirX)
	if !near(first, -g.Spread) || !near(last, g.Spread) {
		t.Errorf("spread = [%v, %v], want [%v, %v]", first, last, -g.Spread, g.Spread)
	}
	for _, s := range shots {
		if !near(s.Damage, g.Damage) {
			t.Errorf("pellet damage = %v, want %v", s.Damage, g.Damage)
		}
	}
}

func TestShotgunSpreadFollowsAim(t *testing.T) {
	p, _ := newTestPlayer()
	UpgradeGun(p, cfg.GunShotgun)
	// Facing east, aiming south: the fan is centred on the aim.
	p.AimX, p.AimY = 0, 1

	shots := TryFire(p, 0, 0)
	first := math.Atan2(shots[0].DirY, shots[0].DirX)
	last := math.Atan2(shots[len(shots)-1].DirY, shots[len(shots)-1].DirX)
	if mid := (first + last) / 2; !near(mid, math.Pi/2) {
		t.Errorf("spread centre = %v, want %v", mid, math.Pi/2)
	}
	g := cfg.Guns[cfg.GunShotgun]
	if !near(last-first, 2*g.Spread) {
		t.Errorf("spread width = %v, want %v", last-first, 2*g.Spread)
	}
}

func TestFireRateModifierShortensCooldown(t *testing.T) {
	p, _ := newTestPlayer()
	p.FireRateModifier = 2
	TryFire(p, 0, 0)
	if want := cfg.Guns[cfg.GunPistol].FireRate / 2; !near(p.FireTimer, want) {
		t.Errorf("FireTimer = %v, want %v", p.FireTimer, want)
	}
}

func TestUpgradeStat(t *testing.T) {
	p, h := newTestPlayer()
	h.Current = 5

	UpgradeStat(p, h, "damage", 0.25)
	if !near(p.DamageModifier, 1.25) {
		t.Errorf("DamageModifier = %v, want 1.25", p.DamageModifier)
	}
	if shots := TryFire(p, 0, 0); !near(shots[0].Damage, cfg.Guns[cfg.GunPistol].Damage*1.25) {
		t.Errorf("damage = %v, want modified", shots[0].Damage)
	}

	UpgradeStat(p, h, "health", 0.2)
	if want := cfg.Player.Health * 1.2; !near(h.Max, want) {
		t.Errorf("Max = %v, want %v", h.Max, want)
	}
	if want := 5 + cfg.Player.HealOnHealth; !near(h.Current, want) {
		t.Errorf("Current = %v, want %v", h.Current, want)
	}

	before := *p
	UpgradeStat(p, h, "luck", 1)
	if *p != before {
		t.Error("unknown stat changed the player")
	}
}

func TestApplyUpgradeKeepsModifiersAcrossGuns(t *testing.T) {
	p, h := newTestPlayer()
	ApplyUpgrade(p, h, cfg.UpgradeStep{Stat: "speed", Amount: 0.1})

	rifle := cfg.GunRifle
	label := ApplyUpgrade(p, h, cfg.UpgradeStep{Gun: &rifle})
	if label != "Rifle" {
		t.Errorf("label = %q, want Rifle", label)
	}
	if p.Gun != cfg.GunRifle || !near(p.FireRate, cfg.Guns[cfg.GunRifle].FireRate) {
		t.Errorf("gun = %v with rate %v, want rifle stats", p.Gun, p.FireRate)
	}
	if !near(p.SpeedModifier, 1.1) {
		t.Errorf("SpeedModifier = %v after gun swap, want 1.1", p.SpeedModifier)
	}
	if got := ApplyUpgrade(p, h, cfg.UpgradeStep{Stat: "fireRate", Amount: 0.2}); got != "Fire Rate Up" {
		t.Errorf("label = %q, want Fire Rate Up", got)
	}
}

func TestSlideMove(t *testing.T) {
	m := testMap()
	r := 10.0

	tests := []struct {
		name         string
		x, y, nx, ny float64
		wantX, wantY float64
	}{
		{"free", 100, 100, 110, 105, 110, 105},
		{"into wall keeps y", 310, 100, 330, 110, 310, 110},
		{"blocked both ways", 310, 100, 330, 100, 310, 100},
		{"nil map", 0, 0, 5, 5, 5, 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mm := m
			if tt.name == "nil map" {
				mm = nil
			}
			x, y := slideMove(mm, tt.x, tt.y, tt.nx, tt.ny, r)
			if !near(x, tt.wantX) || !near(y, tt.wantY) {
				t.Errorf("slideMove = (%v, %v), want (%v, %v)", x, y, tt.wantX, tt.wantY)
			}
		})
	}
}

func TestClampToMap(t *testing.T) {
	m := testMap()
	x, y := clampToMap(m, -50, 1000, 20)
	if x != 20 || y != float64(m.HeightInPixels())-20 {
		t.Errorf("clampToMap = (%v, %v)", x, y)
	}
	if x, y := clampToMap(nil, -5, -5, 20); x != -5 || y != -5 {
		t.Errorf("nil map clamp = (%v, %v)", x, y)
	}
}
