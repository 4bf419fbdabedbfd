package components

import (
	"math/rand"

	"github.com/yohamta/donburi"
)

// WaveState is the phase of the wave spawner.
type WaveState int

const (
	WaveIdle WaveState = iota
	WavePreparing
	WaveActive
	WaveCompleted
)

func (s WaveState) String() string {
	switch s {
	case WavePreparing:
		return "Preparing"
	case WaveActive:
		return "Active"
	case WaveCompleted:
		return "Completed"
	default:
		return "Idle"
	}
}

type WaveData struct {
	Number       int
	State        WaveState
	Countdown    float64 // seconds until the wave goes active
	SpawnRate    float64 // seconds between spawns
	SpawnTimer   float64
	Remaining    int // enemies still to spawn this wave
	UpgradeIndex int // next entry of the reward schedule
	LastUpgrade  string

	// Banner text and its alpha, faded by the wave's Tween.
	Banner       string
	BannerAlpha  float64
	BannerActive bool

	Rand *rand.Rand
}

var Wave = donburi.NewComponentType[WaveData]()
