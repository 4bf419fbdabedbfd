package systems

import (
	"math"
	"math/rand"
	"testing"

	"github.com/automoto/campfire/components"
	"github.com/automoto/campfire/shared/tilemap"
	"github.com/automoto/campfire/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const step = 1.0 / 60

func near(a, b float64) bool {
	return math.Abs(a-b) < 1e-6
}

// testMap is 20x15 tiles of 32 px with a wall at column 10, rows 0-4.
func testMap() *tilemap.Map {
	ground := tilemap.NewLayer("ground", 20, 15)
	obstacles := tilemap.NewLayer("Obstacles", 20, 15)
	for y := 0; y < 5; y++ {
		obstacles.SetTile(10, y, 1)
	}
	return &tilemap.Map{
		Name:       "test",
		Width:      20,
		Height:     15,
		TileWidth:  32,
		TileHeight: 32,
		Layers:     []*tilemap.Layer{ground, obstacles},
		Tilesets: []*tilemap.Tileset{
			{Name: "t", FirstGID: 1, TileWidth: 32, TileHeight: 32, Columns: 4, TileCount: 8},
		},
	}
}

// newTestWorld builds a survival world with a level, space, session and
// wave but no actors.
func newTestWorld(t *testing.T) *ecs.ECS {
	t.Helper()
	e := ecs.NewECS(donburi.NewWorld())
	m := testMap()
	factory.CreateLevel(e, m)
	factory.CreateSpace(e, m.WidthInPixels(), m.HeightInPixels(), 32, 32)
	factory.CreateSession(e, 0, 0)
	factory.CreateWave(e, rand.New(rand.NewSource(1)))
	return e
}

func testSession(e *ecs.ECS) *components.SessionData {
	entry, _ := components.Session.First(e.World)
	return components.Session.Get(entry)
}

func testWave(e *ecs.ECS) *components.WaveData {
	entry, _ := components.Wave.First(e.World)
	return components.Wave.Get(entry)
}
