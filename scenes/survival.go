package scenes

import (
	"image/color"
	"log"
	"math/rand"
	"sync"

	"github.com/automoto/campfire/assets"
	"github.com/automoto/campfire/components"
	cfg "github.com/automoto/campfire/config"
	"github.com/automoto/campfire/shared/tilemap"
	"github.com/automoto/campfire/systems"
	"github.com/automoto/campfire/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Broad-phase cell size in pixels.
const spaceCellSize = 32

// SurvivalScene is one run of the campfire defence.
type SurvivalScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	opts         SurvivalOptions
	once         sync.Once
}

func NewSurvivalScene(sc SceneChanger, opts SurvivalOptions) *SurvivalScene {
	return &SurvivalScene{sceneChanger: sc, opts: opts}
}

func (ss *SurvivalScene) Update() {
	ss.once.Do(ss.configure)
	ss.ecs.Update()

	if systems.RestartDue(ss.ecs) {
		log.Printf("[scene] restarting survival on %s", ss.opts.Map)
		next := ss.opts
		next.Seed++
		ss.sceneChanger.ChangeScene(NewSurvivalScene(ss.sceneChanger, next))
	}
}

func (ss *SurvivalScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ss.ecs == nil {
		return
	}
	ss.ecs.Draw(screen)
}

func (ss *SurvivalScene) configure() {
	ecs := ecs.NewECS(donburi.NewWorld())

	// Systems that always run
	ecs.AddSystem(systems.UpdateMultiPlayerInput)
	ecs.AddSystem(systems.UpdateDebug)
	ecs.AddSystem(systems.UpdateLevel)
	ecs.AddSystem(systems.UpdateCampfire)

	// Game systems stop once the run is over
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdatePlayers))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateEnemies))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateObjects))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateProjectiles))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateCombat))
	ecs.AddSystem(systems.UpdateWave)
	ecs.AddSystem(systems.UpdateSession)
	ecs.AddSystem(systems.UpdateCamera)

	// Add renderers
	ecs.AddRenderer(cfg.Default, systems.DrawLevel)
	ecs.AddRenderer(cfg.Default, systems.DrawActors)
	ecs.AddRenderer(cfg.Default, systems.DrawDebug)
	ecs.AddRenderer(cfg.Default, systems.DrawHUD)

	ss.ecs = ecs

	// Create the level entity and load level data FIRST.
	m := assets.MustLoadMap(ss.opts.Map)
	level := factory.CreateLevel(ss.ecs, m)
	spawns := components.Level.Get(level).Spawns

	// Now create the space for collision detection using the level's dimensions.
	factory.CreateSpace(ss.ecs, m.WidthInPixels(), m.HeightInPixels(), spaceCellSize, spaceCellSize)

	fire := spawns.SpawnPoint(tilemap.SpawnCampfire, 0)
	factory.CreateCampfire(ss.ecs, fire.X, fire.Y)

	players := clampPlayers(ss.opts.Players)
	for i := 0; i < players; i++ {
		p := spawns.SpawnPoint(tilemap.SpawnPlayer, i)
		factory.CreatePlayer(ss.ecs, p.X, p.Y, factory.DefaultInputConfig(i))
	}

	factory.CreateCamera(ss.ecs, fire.X, fire.Y)

	records := systems.LoadRecords()
	factory.CreateSession(ss.ecs, records.BestWave, records.BestScore)
	factory.CreateWave(ss.ecs, rand.New(rand.NewSource(ss.opts.Seed)))
}

func clampPlayers(n int) int {
	if n < 1 {
		return 1
	}
	if n > cfg.Player.MaxPlayers {
		return cfg.Player.MaxPlayers
	}
	return n
}
