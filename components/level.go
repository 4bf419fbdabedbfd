package components

import (
	"github.com/automoto/campfire/shared/tilemap"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
)

type LevelData struct {
	Map    *tilemap.Map
	Spawns *tilemap.Spawns
	// Atlas images by tileset, placeholders included.
	Atlases map[*tilemap.Tileset]*ebiten.Image
}

var Level = donburi.NewComponentType[LevelData]()
