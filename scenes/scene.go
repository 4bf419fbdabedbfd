package scenes

import "github.com/hajimehoshi/ebiten/v2"

// SceneChanger swaps the running scene.
type SceneChanger interface {
	ChangeScene(scene Scene)
}

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

// SurvivalOptions configures a survival run.
type SurvivalOptions struct {
	Map     string
	Players int
	Seed    int64
}
