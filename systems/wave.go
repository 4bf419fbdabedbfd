package systems

import (
	"fmt"
	"log"
	"math"
	"math/rand"

	"github.com/automoto/campfire/components"
	cfg "github.com/automoto/campfire/config"
	"github.com/automoto/campfire/shared/gamemath"
	"github.com/automoto/campfire/shared/tilemap"
	"github.com/automoto/campfire/systems/factory"
	"github.com/automoto/campfire/tags"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func UpdateWave(ecs *ecs.ECS) {
	waveEntry, ok := components.Wave.First(ecs.World)
	if !ok {
		return
	}
	wave := components.Wave.Get(waveEntry)
	dt := deltaTime()
	updateBanner(waveEntry, wave, dt)

	if sessionEntry, ok := components.Session.First(ecs.World); ok && components.Session.Get(sessionEntry).GameOver {
		return
	}

	switch wave.State {
	case components.WaveIdle:
		StartNextWave(wave)
		showBanner(waveEntry, wave, fmt.Sprintf("Wave %d", wave.Number))

	case components.WaveCompleted:
		label := grantUpgrades(ecs, wave)
		StartNextWave(wave)
		banner := fmt.Sprintf("Wave %d", wave.Number)
		if label != "" {
			banner = fmt.Sprintf("%s - Wave %d", label, wave.Number)
		}
		showBanner(waveEntry, wave, banner)

	default:
		if AdvanceWave(wave, dt, CountEnemies(ecs)) {
			spawnWaveEnemy(ecs, wave)
		}
	}
}

// StartNextWave begins the countdown of the following wave.
func StartNextWave(w *components.WaveData) {
	w.Number++
	w.State = components.WavePreparing
	w.Countdown = cfg.Wave.Countdown
	w.SpawnRate = SpawnInterval(w.Number)
	w.SpawnTimer = 0
	w.Remaining = EnemiesForWave(w.Number)
}

// SpawnInterval is the number of seconds between spawns in a wave.
func SpawnInterval(wave int) float64 {
	return math.Max(cfg.Wave.MinSpawnRate, cfg.Wave.BaseSpawnRate-cfg.Wave.SpawnRateStep*float64(wave))
}

// EnemiesForWave is how many enemies a wave spawns in total.
func EnemiesForWave(wave int) int {
	return cfg.Wave.BaseEnemies + cfg.Wave.EnemiesPerWave*wave
}

// AdvanceWave runs the wave's timers and reports whether an enemy should
// spawn this step. alive is the number of enemies still on the map.
func AdvanceWave(w *components.WaveData, dt float64, alive int) bool {
	switch w.State {
	case components.WavePreparing:
		w.Countdown -= dt
		if w.Countdown <= 0 {
			w.Countdown = 0
			w.State = components.WaveActive
			w.SpawnTimer = 0
		}
		return false

	case components.WaveActive:
		if w.Remaining <= 0 {
			if alive == 0 {
				w.State = components.WaveCompleted
			}
			return false
		}
		w.SpawnTimer -= dt
		if w.SpawnTimer > 0 {
			return false
		}
		w.SpawnTimer = w.SpawnRate
		w.Remaining--
		return true
	}
	return false
}

// PickEnemyType chooses an enemy type for a wave from a roll in [0, 1).
func PickEnemyType(wave int, roll float64) cfg.EnemyType {
	switch {
	case wave <= 2:
		return cfg.EnemyBasic
	case wave <= 4:
		if roll < 0.7 {
			return cfg.EnemyBasic
		}
		return cfg.EnemyFast
	case wave <= 7:
		switch {
		case roll < 0.6:
			return cfg.EnemyBasic
		case roll < 0.85:
			return cfg.EnemyFast
		default:
			return cfg.EnemyTank
		}
	default:
		switch {
		case roll < 0.5:
			return cfg.EnemyBasic
		case roll < 0.75:
			return cfg.EnemyFast
		case roll < 0.9:
			return cfg.EnemyTank
		default:
			return cfg.EnemyShooter
		}
	}
}

// PickSpawnPoint draws an enemy spawn point, re-rolling a limited number of
// times while it lies too close to the campfire.
func PickSpawnPoint(spawns *tilemap.Spawns, rng *rand.Rand, fire tilemap.Point) tilemap.Point {
	p := spawns.RandomEnemySpawn(rng)
	for i := 0; i < cfg.Wave.SpawnAttempts; i++ {
		if gamemath.Distance(p.X, p.Y, fire.X, fire.Y) >= cfg.Wave.SafeDistance {
			break
		}
		p = spawns.RandomEnemySpawn(rng)
	}
	return p
}

func spawnWaveEnemy(ecs *ecs.ECS, w *components.WaveData) {
	level := currentLevel(ecs.World)
	if level == nil || level.Spawns == nil {
		return
	}
	if w.Rand == nil {
		w.Rand = rand.New(rand.NewSource(cfg.Debug.Seed))
	}
	fire := level.Spawns.Campfire
	if entry, ok := tags.Campfire.First(ecs.World); ok {
		c := components.Campfire.Get(entry)
		fire = tilemap.Point{X: c.X, Y: c.Y}
	}
	p := PickSpawnPoint(level.Spawns, w.Rand, fire)
	factory.CreateEnemy(ecs, PickEnemyType(w.Number, w.Rand.Float64()), p.X, p.Y, w.Rand)
}

// grantUpgrades gives every living player the next step of the reward
// schedule. It returns the step's label, or "" once the schedule is used up.
func grantUpgrades(ecs *ecs.ECS, w *components.WaveData) string {
	if w.UpgradeIndex >= len(cfg.Wave.Upgrades) {
		return ""
	}
	step := cfg.Wave.Upgrades[w.UpgradeIndex]
	w.UpgradeIndex++

	label := ""
	tags.Player.Each(ecs.World, func(entry *donburi.Entry) {
		h := components.Health.Get(entry)
		if !h.IsAlive() {
			return
		}
		label = ApplyUpgrade(components.Player.Get(entry), h, step)
	})
	if label != "" {
		w.LastUpgrade = label
		log.Printf("[wave] wave %d cleared, upgrade: %s", w.Number, label)
	}
	return label
}

// showBanner fades text in, holds it and fades it out.
func showBanner(entry *donburi.Entry, w *components.WaveData, text string) {
	fade := float32(cfg.Wave.BannerFadeTime)
	seq := gween.NewSequence(
		gween.New(0, 1, fade, ease.Linear),
		gween.New(1, 1, float32(cfg.Wave.BannerHoldTime), ease.Linear),
		gween.New(1, 0, fade, ease.Linear),
	)
	components.Tween.Set(entry, seq)
	w.Banner = text
	w.BannerAlpha = 0
	w.BannerActive = true
}

func updateBanner(entry *donburi.Entry, w *components.WaveData, dt float64) {
	if !w.BannerActive {
		return
	}
	alpha, _, done := components.Tween.Get(entry).Update(float32(dt))
	w.BannerAlpha = float64(alpha)
	if done {
		w.BannerActive = false
		w.BannerAlpha = 0
	}
}
