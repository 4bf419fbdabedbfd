package systems

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/automoto/campfire/components"
	cfg "github.com/automoto/campfire/config"
	"github.com/automoto/campfire/shared/gamemath"
	"github.com/automoto/campfire/shared/tilemap"
	"github.com/automoto/campfire/systems/factory"
)

func TestSpawnIntervalFloor(t *testing.T) {
	if got := SpawnInterval(1); !near(got, cfg.Wave.BaseSpawnRate-cfg.Wave.SpawnRateStep) {
		t.Errorf("SpawnInterval(1) = %v", got)
	}
	if got := SpawnInterval(1000); got != cfg.Wave.MinSpawnRate {
		t.Errorf("SpawnInterval(1000) = %v, want the minimum %v", got, cfg.Wave.MinSpawnRate)
	}
}

func TestEnemiesForWave(t *testing.T) {
	if got, want := EnemiesForWave(3), cfg.Wave.BaseEnemies+3*cfg.Wave.EnemiesPerWave; got != want {
		t.Errorf("EnemiesForWave(3) = %d, want %d", got, want)
	}
}

func TestAdvanceWaveLifecycle(t *testing.T) {
	w := &components.WaveData{}
	StartNextWave(w)
	if w.Number != 1 || w.State != components.WavePreparing {
		t.Fatalf("after start: wave %d state %v", w.Number, w.State)
	}

	for w.State == components.WavePreparing {
		if AdvanceWave(w, 0.5, 0) {
			t.Fatal("spawned during the countdown")
		}
	}
	if w.State != components.WaveActive {
		t.Fatalf("state = %v after the countdown", w.State)
	}

	// The first enemy comes out straight away.
	if !AdvanceWave(w, step, 0) {
		t.Fatal("no spawn on the first active step")
	}
	if AdvanceWave(w, step, 1) {
		t.Error("spawned again before the interval")
	}

	spawned := 1
	for w.Remaining > 0 {
		if AdvanceWave(w, w.SpawnRate, spawned) {
			spawned++
		}
	}
	if spawned != EnemiesForWave(1) {
		t.Errorf("spawned %d enemies, want %d", spawned, EnemiesForWave(1))
	}

	AdvanceWave(w, step, 2)
	if w.State != components.WaveActive {
		t.Error("completed with enemies still alive")
	}
	AdvanceWave(w, step, 0)
	if w.State != components.WaveCompleted {
		t.Errorf("state = %v once every enemy is dead, want completed", w.State)
	}
}

func TestPickEnemyType(t *testing.T) {
	tests := []struct {
		wave int
		roll float64
		want cfg.EnemyType
	}{
		{1, 0.99, cfg.EnemyBasic},
		{3, 0.5, cfg.EnemyBasic},
		{3, 0.8, cfg.EnemyFast},
		{6, 0.7, cfg.EnemyFast},
		{6, 0.9, cfg.EnemyTank},
		{9, 0.8, cfg.EnemyTank},
		{9, 0.95, cfg.EnemyShooter},
	}
	for _, tt := range tests {
		if got := PickEnemyType(tt.wave, tt.roll); got != tt.want {
			t.Errorf("PickEnemyType(%d, %v) = %v, want %v", tt.wave, tt.roll, got, tt.want)
		}
	}
}

func TestPickSpawnPointAvoidsCampfire(t *testing.T) {
	fire := tilemap.Point{X: 100, Y: 100}
	spawns := &tilemap.Spawns{Enemies: []tilemap.Point{
		{X: 110, Y: 100},
		{X: 100 + cfg.Wave.SafeDistance + 10, Y: 100},
	}}
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 50; i++ {
		p := PickSpawnPoint(spawns, rng, fire)
		if gamemath.Distance(p.X, p.Y, fire.X, fire.Y) < cfg.Wave.SafeDistance {
			t.Fatalf("picked %+v next to the campfire", p)
		}
	}
}

func TestUpdateWaveSpawnsEnemies(t *testing.T) {
	e := newTestWorld(t)
	factory.CreateCampfire(e, 320, 240)

	UpdateWave(e)
	w := testWave(e)
	if w.Number != 1 || !w.BannerActive || w.Banner != "Wave 1" {
		t.Fatalf("first update: wave %d banner %q active %v", w.Number, w.Banner, w.BannerActive)
	}

	w.Countdown = 0
	UpdateWave(e)
	UpdateWave(e)
	if n := CountEnemies(e); n != 1 {
		t.Errorf("%d enemies after the wave went active, want 1", n)
	}
}

func TestUpdateWaveGrantsUpgrade(t *testing.T) {
	e := newTestWorld(t)
	player := factory.CreatePlayer(e, 100, 100, factory.DefaultInputConfig(0))

	UpdateWave(e)
	w := testWave(e)
	w.State = components.WaveCompleted
	UpdateWave(e)

	if w.Number != 2 || w.UpgradeIndex != 1 {
		t.Errorf("wave %d upgrade index %d, want 2 and 1", w.Number, w.UpgradeIndex)
	}
	if !strings.HasPrefix(w.Banner, "Damage Up") {
		t.Errorf("banner = %q, want the upgrade label", w.Banner)
	}
	if p := components.Player.Get(player); !near(p.DamageModifier, 1+cfg.Wave.Upgrades[0].Amount) {
		t.Errorf("DamageModifier = %v", p.DamageModifier)
	}
}

func TestUpdateWaveStopsAfterGameOver(t *testing.T) {
	e := newTestWorld(t)
	testSession(e).GameOver = true
	UpdateWave(e)
	if w := testWave(e); w.Number != 0 {
		t.Errorf("wave started after game over: %d", w.Number)
	}
	if n := CountEnemies(e); n != 0 {
		t.Fatalf("%d enemies spawned after game over", n)
	}
}

func TestBannerFadesOut(t *testing.T) {
	e := newTestWorld(t)
	UpdateWave(e)
	w := testWave(e)

	peak := 0.0
	total := 2*cfg.Wave.BannerFadeTime + cfg.Wave.BannerHoldTime
	for i := 0; i < int(total/step)+10; i++ {
		UpdateWave(e)
		if w.BannerAlpha > peak {
			peak = w.BannerAlpha
		}
	}
	if peak < 0.99 {
		t.Errorf("banner peaked at %v, want full alpha", peak)
	}
	if w.BannerActive {
		t.Error("banner still showing after its sequence ended")
	}
}
