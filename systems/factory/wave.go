package factory

import (
	"math/rand"

	"github.com/automoto/campfire/archetypes"
	"github.com/automoto/campfire/components"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateWave creates the wave spawner. The first wave starts on the first update.
func CreateWave(ecs *ecs.ECS, rng *rand.Rand) *donburi.Entry {
	wave := archetypes.Wave.Spawn(ecs)
	components.Wave.SetValue(wave, components.WaveData{
		State: components.WaveIdle,
		Rand:  rng,
	})
	components.Tween.Set(wave, gween.NewSequence())
	return wave
}

func CreateSession(ecs *ecs.ECS, bestWave, bestScore int) *donburi.Entry {
	session := archetypes.Session.Spawn(ecs)
	components.Session.SetValue(session, components.SessionData{
		BestWave:  bestWave,
		BestScore: bestScore,
	})
	return session
}
