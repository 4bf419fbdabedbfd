package systems

import (
	"image/color"

	"github.com/automoto/campfire/components"
	cfg "github.com/automoto/campfire/config"
	"github.com/automoto/campfire/shared/tilemap"
	"github.com/automoto/campfire/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	sampleFree    = color.RGBA{0, 255, 0, 255}
	sampleBlocked = color.RGBA{255, 0, 0, 255}
	obstacleTint = color.RGBA{255, 0, 0, 60}
)

// UpdateDebug toggles the collision overlay with F1.
func UpdateDebug(ecs *ecs.ECS) {
	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		cfg.Debug.ShowCollision = !cfg.Debug.ShowCollision
	}
}

// DrawDebug shades obstacle cells, outlines broad-phase bodies and shows the
// eight collision samples around every actor.
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	if !cfg.Debug.ShowCollision {
		return
	}
	v, ok := newView(ecs, screen)
	if !ok {
		return
	}
	level := currentLevel(ecs.World)
	if level == nil {
		return
	}
	m := level.Map

	if obstacles := m.ObstacleLayer(); obstacles != nil {
		x0, y0, x1, y1 := visibleTiles(m, v.minX, v.minY, v.maxX-v.minX, v.maxY-v.minY)
		for ty := y0; ty <= y1; ty++ {
			for tx := x0; tx <= x1; tx++ {
				if obstacles.Tile(tx, ty) == 0 {
					continue
				}
				sx, sy := v.screen(float64(tx*m.TileWidth), float64(ty*m.TileHeight))
				vector.FillRect(screen, sx, sy, float32(m.TileWidth), float32(m.TileHeight), obstacleTint, false)
			}
		}
	}

	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		for _, obj := range components.Space.Get(spaceEntry).Objects() {
			sx, sy := v.screen(obj.X, obj.Y)
			vector.StrokeRect(screen, sx, sy, float32(obj.W), float32(obj.H), 1, tagColor(obj.Tags()), false)
		}
	}

	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		x, y := components.Object.Get(e).Center()
		drawSamples(screen, v, m, x, y, components.Player.Get(e).Radius)
	})
	tags.Enemy.Each(ecs.World, func(e *donburi.Entry) {
		x, y := components.Object.Get(e).Center()
		drawSamples(screen, v, m, x, y, components.Enemy.Get(e).Radius)
	})
}

// drawSamples marks the points CheckCollision samples for a circle.
func drawSamples(screen *ebiten.Image, v view, m *tilemap.Map, x, y, radius float64) {
	for _, p := range m.Samples(x, y, radius) {
		clr := sampleFree
		if p.Hit {
			clr = sampleBlocked
		}
		sx, sy := v.screen(p.X, p.Y)
		vector.FillRect(screen, sx-1, sy-1, 3, 3, clr, false)
	}
}

func tagColor(tagList []string) color.RGBA {
	for _, t := range tagList {
		switch t {
		case tags.ResolvPlayer:
			return color.RGBA{0, 0, 255, 255}
		case tags.ResolvEnemy:
			return color.RGBA{255, 0, 0, 255}
		case tags.ResolvProjectile:
			return color.RGBA{0, 255, 0, 255}
		case tags.ResolvCampfire:
			return cfg.Orange
		}
	}
	return color.RGBA{0, 255, 255, 255} // Cyan default
}
