package config

import (
	"fmt"
	"io/fs"
	"strings"

	"gopkg.in/yaml.v3"
)

// Tuning is the YAML override file for gameplay numbers. Zero values keep the
// built-in defaults.
type Tuning struct {
	Player   PlayerTuning           `yaml:"player"`
	Guns     map[string]GunTuning   `yaml:"guns"`
	Enemies  map[string]EnemyTuning `yaml:"enemies"`
	Wave     WaveTuning             `yaml:"wave"`
	Campfire CampfireTuning         `yaml:"campfire"`
	Upgrades []UpgradeTuning        `yaml:"upgrades"`
}

type PlayerTuning struct {
	Speed     float64 `yaml:"speed"`
	TurnSpeed float64 `yaml:"turnSpeed"`
	Health    float64 `yaml:"health"`
	Radius    float64 `yaml:"radius"`
}

type GunTuning struct {
	FireRate        float64 `yaml:"fireRate"`
	Damage          float64 `yaml:"damage"`
	ProjectileSpeed float64 `yaml:"projectileSpeed"`
	Pellets         int     `yaml:"pellets"`
	Spread          float64 `yaml:"spread"`
}

type EnemyTuning struct {
	Speed          float64 `yaml:"speed"`
	Health         float64 `yaml:"health"`
	Damage         float64 `yaml:"damage"`
	Scale          float64 `yaml:"scale"`
	AttackCooldown float64 `yaml:"attackCooldown"`
}

type WaveTuning struct {
	Countdown      float64 `yaml:"countdown"`
	BaseSpawnRate  float64 `yaml:"baseSpawnRate"`
	SpawnRateStep  float64 `yaml:"spawnRateStep"`
	MinSpawnRate   float64 `yaml:"minSpawnRate"`
	BaseEnemies    int     `yaml:"baseEnemies"`
	EnemiesPerWave int     `yaml:"enemiesPerWave"`
	SafeDistance   float64 `yaml:"safeDistance"`
}

type CampfireTuning struct {
	Health float64 `yaml:"health"`
	Radius float64 `yaml:"radius"`
}

// UpgradeTuning is one entry of the post-wave reward schedule. Set either
// gun or stat.
type UpgradeTuning struct {
	Gun    string  `yaml:"gun"`
	Stat   string  `yaml:"stat"`
	Amount float64 `yaml:"amount"`
}

var validStats = map[string]bool{
	"damage":   true,
	"speed":    true,
	"fireRate": true,
	"health":   true,
}

// ParseGunType maps a gun name (case-insensitive) to its GunType.
func ParseGunType(name string) (GunType, bool) {
	for i, n := range gunNames {
		if strings.EqualFold(n, name) {
			return GunType(i), true
		}
	}
	return 0, false
}

// ParseEnemyType maps an enemy name (case-insensitive) to its EnemyType.
func ParseEnemyType(name string) (EnemyType, bool) {
	for i, n := range enemyNames {
		if strings.EqualFold(n, name) {
			return EnemyType(i), true
		}
	}
	return 0, false
}

// LoadTuning reads and validates a tuning file from fsys.
func LoadTuning(fsys fs.FS, path string) (*Tuning, error) {
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read tuning file %s: %w", path, err)
	}
	t, err := ParseTuning(data)
	if err != nil {
		return nil, fmt.Errorf("invalid tuning file %s: %w", path, err)
	}
	return t, nil
}

// ParseTuning decodes and validates tuning YAML.
func ParseTuning(data []byte) (*Tuning, error) {
	var t Tuning
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("failed to parse tuning YAML: %w", err)
	}
	if err := validateTuning(&t); err != nil {
		return nil, err
	}
	return &t, nil
}

func validateTuning(t *Tuning) error {
	if t.Player.Speed < 0 || t.Player.Health < 0 || t.Player.Radius < 0 {
		return fmt.Errorf("player values cannot be negative")
	}
	for name, g := range t.Guns {
		if _, ok := ParseGunType(name); !ok {
			return fmt.Errorf("guns: unknown gun %q", name)
		}
		if g.FireRate < 0 || g.Damage < 0 || g.ProjectileSpeed < 0 || g.Pellets < 0 {
			return fmt.Errorf("guns.%s: values cannot be negative", name)
		}
	}
	for name, e := range t.Enemies {
		if _, ok := ParseEnemyType(name); !ok {
			return fmt.Errorf("enemies: unknown enemy %q", name)
		}
		if e.Speed < 0 || e.Health < 0 || e.Damage < 0 || e.Scale < 0 || e.AttackCooldown < 0 {
			return fmt.Errorf("enemies.%s: values cannot be negative", name)
		}
	}
	if t.Wave.MinSpawnRate < 0 || t.Wave.BaseSpawnRate < 0 || t.Wave.Countdown < 0 {
		return fmt.Errorf("wave timings cannot be negative")
	}
	for i, u := range t.Upgrades {
		switch {
		case u.Gun != "" && u.Stat != "":
			return fmt.Errorf("upgrades[%d]: set either gun or stat, not both", i)
		case u.Gun != "":
			if _, ok := ParseGunType(u.Gun); !ok {
				return fmt.Errorf("upgrades[%d]: unknown gun %q", i, u.Gun)
			}
		case u.Stat != "":
			if !validStats[u.Stat] {
				return fmt.Errorf("upgrades[%d]: stat must be one of damage, speed, fireRate, health, got %q", i, u.Stat)
			}
			if u.Amount <= 0 {
				return fmt.Errorf("upgrades[%d]: amount must be positive", i)
			}
		default:
			return fmt.Errorf("upgrades[%d]: gun or stat is required", i)
		}
	}
	return nil
}

// Apply overwrites the global configuration with every non-zero value.
func (t *Tuning) Apply() {
	setF(&Player.Speed, t.Player.Speed)
	setF(&Player.TurnSpeed, t.Player.TurnSpeed)
	setF(&Player.Health, t.Player.Health)
	setF(&Player.Radius, t.Player.Radius)

	for name, g := range t.Guns {
		gt, _ := ParseGunType(name)
		c := Guns[gt]
		setF(&c.FireRate, g.FireRate)
		setF(&c.Damage, g.Damage)
		setF(&c.ProjectileSpeed, g.ProjectileSpeed)
		setF(&c.Spread, g.Spread)
		if g.Pellets > 0 {
			c.Pellets = g.Pellets
		}
		Guns[gt] = c
	}

	for name, e := range t.Enemies {
		et, _ := ParseEnemyType(name)
		c := Enemy.Types[et]
		setF(&c.Speed, e.Speed)
		setF(&c.Health, e.Health)
		setF(&c.Damage, e.Damage)
		setF(&c.Scale, e.Scale)
		setF(&c.AttackCooldown, e.AttackCooldown)
		Enemy.Types[et] = c
	}

	setF(&Wave.Countdown, t.Wave.Countdown)
	setF(&Wave.BaseSpawnRate, t.Wave.BaseSpawnRate)
	setF(&Wave.SpawnRateStep, t.Wave.SpawnRateStep)
	setF(&Wave.MinSpawnRate, t.Wave.MinSpawnRate)
	setF(&Wave.SafeDistance, t.Wave.SafeDistance)
	if t.Wave.BaseEnemies > 0 {
		Wave.BaseEnemies = t.Wave.BaseEnemies
	}
	if t.Wave.EnemiesPerWave > 0 {
		Wave.EnemiesPerWave = t.Wave.EnemiesPerWave
	}

	setF(&Campfire.Health, t.Campfire.Health)
	setF(&Campfire.Radius, t.Campfire.Radius)

	if len(t.Upgrades) > 0 {
		steps := make([]UpgradeStep, 0, len(t.Upgrades))
		for _, u := range t.Upgrades {
			if u.Gun != "" {
				g, _ := ParseGunType(u.Gun)
				steps = append(steps, UpgradeStep{Gun: gun(g)})
				continue
			}
			steps = append(steps, UpgradeStep{Stat: u.Stat, Amount: u.Amount})
		}
		Wave.Upgrades = steps
	}
}

func setF(dst *float64, v float64) {
	if v > 0 {
		*dst = v
	}
}
