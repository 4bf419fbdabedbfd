package scenes

import (
	"sync"

	cfg "github.com/automoto/campfire/config"
	"github.com/automoto/campfire/systems"
	"github.com/automoto/campfire/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// ArcadeScene is the four-player button demo.
type ArcadeScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	once         sync.Once
}

func NewArcadeScene(sc SceneChanger) *ArcadeScene {
	return &ArcadeScene{sceneChanger: sc}
}

func (as *ArcadeScene) Update() {
	as.once.Do(as.configure)
	as.ecs.Update()
}

func (as *ArcadeScene) Draw(screen *ebiten.Image) {
	if as.ecs == nil {
		return
	}
	as.ecs.Draw(screen)
}

func (as *ArcadeScene) configure() {
	ecs := ecs.NewECS(donburi.NewWorld())

	ecs.AddSystem(systems.UpdateMultiPlayerInput)
	ecs.AddSystem(systems.UpdateCircles)
	ecs.AddRenderer(cfg.Default, systems.DrawArcade)

	as.ecs = ecs

	for i := range cfg.Arcade.Panels {
		factory.CreateCircle(as.ecs, i, factory.DefaultInputConfig(i))
	}
}
