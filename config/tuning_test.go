package config

import (
	"strings"
	"testing"
	"testing/fstest"
)

const sampleTuning = `
player:
  speed: 250
guns:
  shotgun:
    pellets: 7
enemies:
  tank:
    health: 12
wave:
  countdown: 3
upgrades:
  - gun: rifle
  - stat: fireRate
    amount: 0.5
`

func TestLoadTuningAndApply(t *testing.T) {
	savedPlayer, savedWave := Player, Wave
	savedShotgun, savedTank := Guns[GunShotgun], Enemy.Types[EnemyTank]
	t.Cleanup(func() {
		Player, Wave = savedPlayer, savedWave
		Guns[GunShotgun] = savedShotgun
		Enemy.Types[EnemyTank] = savedTank
	})

	fsys := fstest.MapFS{"tuning.yaml": {Data: []byte(sampleTuning)}}
	tuning, err := LoadTuning(fsys, "tuning.yaml")
	if err != nil {
		t.Fatalf("LoadTuning error = %v", err)
	}
	tuning.Apply()

	if Player.Speed != 250 {
		t.Errorf("Player.Speed = %v, want 250", Player.Speed)
	}
	if Player.Health != savedPlayer.Health {
		t.Errorf("Player.Health = %v, want unchanged %v", Player.Health, savedPlayer.Health)
	}
	if got := Guns[GunShotgun].Pellets; got != 7 {
		t.Errorf("shotgun pellets = %d, want 7", got)
	}
	if got := Guns[GunShotgun].FireRate; got != savedShotgun.FireRate {
		t.Errorf("shotgun fire rate = %v, want unchanged %v", got, savedShotgun.FireRate)
	}
	if got := Enemy.Types[EnemyTank].Health; got != 12 {
		t.Errorf("tank health = %v, want 12", got)
	}
	if Wave.Countdown != 3 {
		t.Errorf("Wave.Countdown = %v, want 3", Wave.Countdown)
	}
	if len(Wave.Upgrades) != 2 {
		t.Fatalf("len(Wave.Upgrades) = %d, want 2", len(Wave.Upgrades))
	}
	if g := Wave.Upgrades[0].Gun; g == nil || *g != GunRifle {
		t.Errorf("Upgrades[0].Gun = %v, want Rifle", g)
	}
	if u := Wave.Upgrades[1]; u.Stat != "fireRate" || u.Amount != 0.5 {
		t.Errorf("Upgrades[1] = %+v, want fireRate 0.5", u)
	}
}

func TestParseTuningRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want string
	}{
		{"unknown gun", "guns:\n  laser:\n    damage: 1\n", "unknown gun"},
		{"unknown enemy", "enemies:\n  dragon:\n    speed: 1\n", "unknown enemy"},
		{"negative speed", "player:\n  speed: -1\n", "negative"},
		{"bad stat", "upgrades:\n  - stat: luck\n    amount: 1\n", "stat must be one of"},
		{"gun and stat", "upgrades:\n  - gun: rifle\n    stat: damage\n    amount: 1\n", "not both"},
		{"empty upgrade", "upgrades:\n  - amount: 1\n", "required"},
		{"malformed", "player: [", "parse"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseTuning([]byte(tt.yaml))
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error = %q, want it to contain %q", err, tt.want)
			}
		})
	}
}

func TestLoadTuningMissingFile(t *testing.T) {
	if _, err := LoadTuning(fstest.MapFS{}, "nope.yaml"); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestParseNames(t *testing.T) {
	if g, ok := ParseGunType("CANNON"); !ok || g != GunCannon {
		t.Errorf("ParseGunType(CANNON) = %v, %v", g, ok)
	}
	if _, ok := ParseGunType("bow"); ok {
		t.Error("ParseGunType(bow) should fail")
	}
	if e, ok := ParseEnemyType("shooter"); !ok || e != EnemyShooter {
		t.Errorf("ParseEnemyType(shooter) = %v, %v", e, ok)
	}
	if GunShotgun.String() != "Shotgun" || EnemyTank.String() != "Tank" {
		t.Error("unexpected String() names")
	}
}
