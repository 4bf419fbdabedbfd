package components

import "github.com/yohamta/donburi"

// SessionData tracks one run of the survival game.
type SessionData struct {
	Score     int
	Kills     int
	BestWave  int
	BestScore int
	GameOver  bool
	// Seconds left before the scene restarts after a game over.
	RestartTimer float64
}

var Session = donburi.NewComponentType[SessionData]()
