package systems

import (
	"math"

	"github.com/automoto/campfire/components"
	"github.com/automoto/campfire/config"
	"github.com/automoto/campfire/shared/tilemap"
	"github.com/automoto/campfire/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func UpdateCamera(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	level := currentLevel(e.World)
	if level == nil {
		return
	}

	var alive []tilemap.Point
	tags.Player.Each(e.World, func(entry *donburi.Entry) {
		if !components.Health.Get(entry).IsAlive() {
			return
		}
		x, y := components.Object.Get(entry).Center()
		alive = append(alive, tilemap.Point{X: x, Y: y})
	})
	if len(alive) == 0 {
		return // everyone is down, hold the last view
	}

	targetX, targetY := cameraTarget(alive,
		float64(level.Map.WidthInPixels()), float64(level.Map.HeightInPixels()),
		float64(config.C.Width), float64(config.C.Height))

	// Center the camera on the constrained target position, with some smoothing.
	camera.Position.X += (targetX - camera.Position.X) * config.Camera.FollowSmoothing
	camera.Position.Y += (targetY - camera.Position.Y) * config.Camera.FollowSmoothing
}

// cameraTarget is the centroid of the players, constrained so the level
// always fills the screen. A level smaller than the screen is centred.
func cameraTarget(players []tilemap.Point, levelW, levelH, screenW, screenH float64) (float64, float64) {
	var x, y float64
	for _, p := range players {
		x += p.X
		y += p.Y
	}
	n := float64(len(players))
	if n > 0 {
		x /= n
		y /= n
	}
	return clampAxis(x, levelW, screenW), clampAxis(y, levelH, screenH)
}

func clampAxis(v, level, screen float64) float64 {
	if level <= screen {
		return level / 2
	}
	return math.Max(screen/2, math.Min(level-screen/2, v))
}
