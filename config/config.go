package config

import "image/color"

// GunType identifies a player weapon.
type GunType int

const (
	GunPistol GunType = iota
	GunShotgun
	GunRifle
	GunCannon
)

var gunNames = [...]string{"Pistol", "Shotgun", "Rifle", "Cannon"}

func (g GunType) String() string {
	if int(g) < len(gunNames) {
		return gunNames[g]
	}
	return "Unknown"
}

// EnemyType identifies an enemy archetype.
type EnemyType int

const (
	EnemyBasic EnemyType = iota
	EnemyFast
	EnemyTank
	EnemyShooter
)

var enemyNames = [...]string{"Basic", "Fast", "Tank", "Shooter"}

func (e EnemyType) String() string {
	if int(e) < len(enemyNames) {
		return enemyNames[e]
	}
	return "Unknown"
}

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	Speed        float64 // pixels per second
	TurnSpeed    float64 // radians per second at full deflection
	Health       float64
	Radius       float64
	EdgeMargin   float64 // players are kept this far inside the map
	MoveDeadzone float64 // forward input below this is ignored
	AimDeadzone  float64 // aim input shorter than this falls back to facing
	MuzzleOffset float64 // projectiles spawn at Radius+MuzzleOffset
	HealOnHealth float64 // healed when the health stat is upgraded
	MaxPlayers   int
	Colors       []color.RGBA
}

// GunConfig contains the stats of one weapon
type GunConfig struct {
	FireRate        float64 // seconds between shots
	Damage          float64
	ProjectileSpeed float64
	Pellets         int
	Spread          float64 // radians either side of the aim direction
}

// EnemyTypeConfig contains configuration for specific enemy types
type EnemyTypeConfig struct {
	Name           string
	Speed          float64
	Health         float64
	Damage         float64
	Scale          float64
	Color          color.RGBA
	AttackCooldown float64 // seconds; 0 means the enemy never shoots
	ShotSpeed      float64
	ShotRange      float64
}

// EnemyConfig contains enemy system configuration
type EnemyConfig struct {
	Types map[EnemyType]EnemyTypeConfig

	BaseRadius      float64 // scaled by the type's Scale
	StopDistance    float64 // enemies stop closing in below this distance
	AggroRange      float64 // players closer than this are chased instead of the campfire
	ContactCooldown float64 // seconds between contact hits from one enemy
}

// ProjectileConfig contains projectile configuration
type ProjectileConfig struct {
	TimeToLive  float64 // seconds
	Radius      float64
	PlayerColor color.RGBA
	EnemyColor  color.RGBA
}

// UpgradeStep is one reward granted after a cleared wave.
type UpgradeStep struct {
	Gun    *GunType // switch weapon when set
	Stat   string   // damage, speed, fireRate or health
	Amount float64
}

// WaveConfig contains wave spawner configuration
type WaveConfig struct {
	Countdown      float64 // seconds of preparation before a wave
	BaseSpawnRate  float64 // seconds between spawns at wave 0
	SpawnRateStep  float64 // subtracted per wave
	MinSpawnRate   float64
	BaseEnemies    int
	EnemiesPerWave int
	SafeDistance   float64 // spawns closer than this to the campfire are re-rolled
	SpawnAttempts  int
	Upgrades       []UpgradeStep
	BannerFadeTime float64
	BannerHoldTime float64
}

// CampfireConfig contains campfire configuration
type CampfireConfig struct {
	Health        float64
	Radius        float64
	FlickerPeriod float64
	Color         color.RGBA
	GlowColor     color.RGBA
}

// CameraConfig contains camera behavior configuration
type CameraConfig struct {
	FollowSmoothing float64 // How fast camera follows the players (0.0-1.0)
}

// UIConfig contains UI-related configuration values
type UIConfig struct {
	HealthBarWidth  float64
	HealthBarHeight float64
	HealthBarMargin float64

	HealthBarBgColor color.RGBA
	HealthBarFgColor color.RGBA
	TextColor        color.RGBA
	BannerColor      color.RGBA
	ShadowColor      color.RGBA

	HUDFontSize    float64
	BannerFontSize float64
	SmallFontSize  float64
}

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
	TPS    int
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	ShowCollision bool // draw obstacle samples and actor radii
	Seed          int64
}

// Global configuration instances
var C *Config
var Player PlayerConfig
var Guns map[GunType]GunConfig
var Enemy EnemyConfig
var Projectile ProjectileConfig
var Wave WaveConfig
var Campfire CampfireConfig
var Camera CameraConfig
var UI UIConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Black        = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Orange       = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	BrightOrange = color.RGBA{R: 255, G: 180, B: 50, A: 255}
	Red          = color.RGBA{R: 255, G: 50, B: 50, A: 255}
	Green        = color.RGBA{R: 0, G: 250, B: 0, A: 255}
	Blue         = color.RGBA{R: 20, G: 20, B: 255, A: 255}
	DarkRed      = color.RGBA{R: 139, G: 0, B: 0, A: 255}
	Pink         = color.RGBA{R: 255, G: 192, B: 203, A: 255}
	DarkGray     = color.RGBA{R: 169, G: 169, B: 169, A: 255}
	Purple       = color.RGBA{R: 128, G: 0, B: 128, A: 255}
	Magenta      = color.RGBA{R: 255, G: 0, B: 255, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
)

func gun(g GunType) *GunType { return &g }

func init() {
	C = &Config{
		Width:  1366,
		Height: 768,
		TPS:    60,
	}

	Player = PlayerConfig{
		Speed:        200,
		TurnSpeed:    4,
		Health:       10,
		Radius:       16,
		EdgeMargin:   20,
		MoveDeadzone: 0.1,
		AimDeadzone:  0.2,
		MuzzleOffset: 10,
		HealOnHealth: 2,
		MaxPlayers:   4,
		Colors:       []color.RGBA{Red, Green, Blue, Yellow},
	}

	Guns = map[GunType]GunConfig{
		GunPistol:  {FireRate: 0.5, Damage: 1, ProjectileSpeed: 400, Pellets: 1},
		GunShotgun: {FireRate: 0.8, Damage: 0.6, ProjectileSpeed: 350, Pellets: 5, Spread: 0.1},
		GunRifle:   {FireRate: 0.2, Damage: 0.8, ProjectileSpeed: 600, Pellets: 1},
		GunCannon:  {FireRate: 1.0, Damage: 3, ProjectileSpeed: 300, Pellets: 1},
	}

	Enemy = EnemyConfig{
		Types: map[EnemyType]EnemyTypeConfig{
			EnemyBasic:   {Name: "Basic", Speed: 75, Health: 3, Damage: 1, Scale: 0.7, Color: DarkRed},
			EnemyFast:    {Name: "Fast", Speed: 150, Health: 2, Damage: 1, Scale: 0.6, Color: Pink},
			EnemyTank:    {Name: "Tank", Speed: 50, Health: 8, Damage: 2, Scale: 1.0, Color: DarkGray},
			EnemyShooter: {Name: "Shooter", Speed: 60, Health: 4, Damage: 1, Scale: 0.8, Color: Purple, AttackCooldown: 2, ShotSpeed: 250, ShotRange: 350},
		},
		BaseRadius:      20,
		StopDistance:    5,
		AggroRange:      250,
		ContactCooldown: 1,
	}

	Projectile = ProjectileConfig{
		TimeToLive:  2,
		Radius:      4,
		PlayerColor: BrightOrange,
		EnemyColor:  Magenta,
	}

	Wave = WaveConfig{
		Countdown:      5,
		BaseSpawnRate:  2,
		SpawnRateStep:  0.1,
		MinSpawnRate:   0.5,
		BaseEnemies:    5,
		EnemiesPerWave: 3,
		SafeDistance:   300,
		SpawnAttempts:  10,
		Upgrades: []UpgradeStep{
			{Stat: "damage", Amount: 0.25},
			{Gun: gun(GunShotgun)},
			{Stat: "fireRate", Amount: 0.2},
			{Stat: "health", Amount: 0.2},
			{Gun: gun(GunRifle)},
			{Stat: "speed", Amount: 0.1},
			{Stat: "damage", Amount: 0.25},
			{Gun: gun(GunCannon)},
		},
		BannerFadeTime: 0.5,
		BannerHoldTime: 1.5,
	}

	Campfire = CampfireConfig{
		Health:        30,
		Radius:        24,
		FlickerPeriod: 0.6,
		Color:         Orange,
		GlowColor:     color.RGBA{R: 255, G: 120, B: 0, A: 60},
	}

	Camera = CameraConfig{
		FollowSmoothing: 0.1,
	}

	UI = UIConfig{
		HealthBarWidth:   130,
		HealthBarHeight:  13,
		HealthBarMargin:  10,
		HealthBarBgColor: color.RGBA{R: 40, G: 40, B: 40, A: 255},
		HealthBarFgColor: color.RGBA{R: 40, G: 220, B: 40, A: 255},
		TextColor:        White,
		BannerColor:      Yellow,
		ShadowColor:      BlackOverlay,
		HUDFontSize:      16,
		BannerFontSize:   36,
		SmallFontSize:    12,
	}

	// Debug Config (defaults, can be overridden by CLI flags)
	Debug = DebugConfig{}
}
