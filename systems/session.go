package systems

import (
	"log"

	"github.com/automoto/campfire/components"
	"github.com/automoto/campfire/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Seconds the game-over screen stays up before the run restarts.
const restartDelay = 4.0

// UpdateSession ends the run when every player is down or the campfire has
// burnt out, and counts down to the restart.
func UpdateSession(ecs *ecs.ECS) {
	sessionEntry, ok := components.Session.First(ecs.World)
	if !ok {
		return
	}
	session := components.Session.Get(sessionEntry)

	if session.GameOver {
		if session.RestartTimer > 0 {
			session.RestartTimer -= deltaTime()
		}
		return
	}

	if !runLost(ecs) {
		return
	}

	wave := 0
	if waveEntry, ok := components.Wave.First(ecs.World); ok {
		wave = components.Wave.Get(waveEntry).Number
	}
	session.GameOver = true
	session.RestartTimer = restartDelay
	log.Printf("[session] game over on wave %d, score %d, kills %d", wave, session.Score, session.Kills)
	recordRun(session, wave)
}

func runLost(ecs *ecs.ECS) bool {
	if entry, ok := tags.Campfire.First(ecs.World); ok {
		if !components.Health.Get(entry).IsAlive() {
			return true
		}
	}
	players, alive := 0, 0
	tags.Player.Each(ecs.World, func(entry *donburi.Entry) {
		players++
		if components.Health.Get(entry).IsAlive() {
			alive++
		}
	})
	return players > 0 && alive == 0
}

// RestartDue reports whether the game-over countdown has finished.
func RestartDue(ecs *ecs.ECS) bool {
	sessionEntry, ok := components.Session.First(ecs.World)
	if !ok {
		return false
	}
	session := components.Session.Get(sessionEntry)
	return session.GameOver && session.RestartTimer <= 0
}

// WithGameplayChecks wraps a system to skip execution once the run is over.
func WithGameplayChecks(system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		if sessionEntry, ok := components.Session.First(e.World); ok {
			if components.Session.Get(sessionEntry).GameOver {
				return
			}
		}
		system(e)
	}
}
