package systems

import (
	"image"

	"github.com/automoto/campfire/assets"
	"github.com/automoto/campfire/components"
	"github.com/automoto/campfire/shared/tilemap"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var tileDrawOp = &ebiten.DrawImageOptions{}

// currentLevel returns the loaded level, or nil before one exists.
func currentLevel(w donburi.World) *components.LevelData {
	levelEntry, ok := components.Level.First(w)
	if !ok {
		return nil
	}
	level := components.Level.Get(levelEntry)
	if level.Map == nil {
		return nil
	}
	return level
}

// UpdateLevel advances the tile animations.
func UpdateLevel(ecs *ecs.ECS) {
	level := currentLevel(ecs.World)
	if level == nil {
		return
	}
	level.Map.Update(deltaTime())
}

func DrawLevel(ecs *ecs.ECS, screen *ebiten.Image) {
	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok {
		return // No camera yet
	}
	camera := components.Camera.Get(cameraEntry)

	level := currentLevel(ecs.World)
	if level == nil {
		return
	}
	m := level.Map

	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	offX := float64(width)/2 - camera.Position.X
	offY := float64(height)/2 - camera.Position.Y

	// Only the tiles under the screen are drawn.
	x0, y0, x1, y1 := visibleTiles(m, -offX, -offY, float64(width), float64(height))

	for _, layer := range m.Layers {
		if !layer.Visible || layer.Opacity <= 0 {
			continue
		}
		for ty := y0; ty <= y1; ty++ {
			for tx := x0; tx <= x1; tx++ {
				gid := layer.Tile(tx, ty)
				if gid == 0 {
					continue
				}
				drawTile(screen, level, gid, tx, ty, offX, offY, layer.Opacity)
			}
		}
	}
}

func drawTile(screen *ebiten.Image, level *components.LevelData, gid uint32, tx, ty int, offX, offY, opacity float64) {
	m := level.Map
	gid = m.DisplayGID(gid)
	ts := m.TilesetFor(gid)
	if ts == nil {
		return
	}
	atlas := levelAtlas(level, ts)
	src := tileSource(ts, gid, atlas.Bounds())

	tileDrawOp.GeoM.Reset()
	tileDrawOp.ColorScale.Reset()
	if src.Dx() != ts.TileWidth || src.Dy() != ts.TileHeight {
		// Placeholder atlases are stretched over the whole tile.
		tileDrawOp.GeoM.Scale(float64(ts.TileWidth)/float64(src.Dx()), float64(ts.TileHeight)/float64(src.Dy()))
	}
	// Tiles taller than the grid grow upwards from the cell's bottom edge.
	tileDrawOp.GeoM.Translate(
		float64(tx*m.TileWidth)+offX,
		float64((ty+1)*m.TileHeight-ts.TileHeight)+offY,
	)
	if opacity < 1 {
		tileDrawOp.ColorScale.ScaleAlpha(float32(opacity))
	}
	screen.DrawImage(atlas.SubImage(src).(*ebiten.Image), tileDrawOp)
}

// levelAtlas loads a tileset image the first time it is needed.
func levelAtlas(level *components.LevelData, ts *tilemap.Tileset) *ebiten.Image {
	if level.Atlases == nil {
		level.Atlases = make(map[*tilemap.Tileset]*ebiten.Image)
	}
	if img, ok := level.Atlases[ts]; ok {
		return img
	}
	img := assets.LoadAtlas(level.Map, ts)
	level.Atlases[ts] = img
	return img
}

// tileSource is gid's rectangle in the atlas, or the whole atlas when the
// tile does not fit in it.
func tileSource(ts *tilemap.Tileset, gid uint32, bounds image.Rectangle) image.Rectangle {
	r := ts.SourceRect(gid, bounds.Dx())
	if r.Empty() || !r.In(bounds) {
		return bounds
	}
	return r
}

// visibleTiles returns the inclusive tile range covering a world rectangle,
// clamped to the map.
func visibleTiles(m *tilemap.Map, x, y, w, h float64) (x0, y0, x1, y1 int) {
	if m.TileWidth <= 0 || m.TileHeight <= 0 {
		return 0, 0, -1, -1
	}
	x0 = clampInt(int(x)/m.TileWidth-1, 0, m.Width-1)
	y0 = clampInt(int(y)/m.TileHeight-1, 0, m.Height-1)
	x1 = clampInt(int(x+w)/m.TileWidth+1, 0, m.Width-1)
	// One extra row for tiles taller than the grid.
	y1 = clampInt(int(y+h)/m.TileHeight+2, 0, m.Height-1)
	return x0, y0, x1, y1
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
