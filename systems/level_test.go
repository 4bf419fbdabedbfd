package systems

import (
	"image"
	"testing"

	"github.com/automoto/campfire/shared/tilemap"
)

func TestVisibleTiles(t *testing.T) {
	m := testMap()

	x0, y0, x1, y1 := visibleTiles(m, 0, 0, 1366, 768)
	if x0 != 0 || y0 != 0 || x1 != m.Width-1 || y1 != m.Height-1 {
		t.Errorf("whole map = %d,%d..%d,%d", x0, y0, x1, y1)
	}

	x0, y0, x1, y1 = visibleTiles(m, 128, 96, 64, 64)
	if x0 != 3 || y0 != 2 || x1 != 7 || y1 != 7 {
		t.Errorf("window = %d,%d..%d,%d, want 3,2..7,7", x0, y0, x1, y1)
	}

	if _, _, x1, _ := visibleTiles(&tilemap.Map{}, 0, 0, 10, 10); x1 != -1 {
		t.Error("a map without a tile size should draw nothing")
	}
}

func TestTileSource(t *testing.T) {
	ts := &tilemap.Tileset{FirstGID: 1, TileWidth: 32, TileHeight: 32, Columns: 8, TileCount: 16}

	atlas := image.Rect(0, 0, 256, 64)
	if got := tileSource(ts, 10, atlas); got != image.Rect(32, 32, 64, 64) {
		t.Errorf("tileSource(10) = %v", got)
	}

	placeholder := image.Rect(0, 0, 32, 32)
	if got := tileSource(ts, 10, placeholder); got != placeholder {
		t.Errorf("tile outside a placeholder = %v, want the whole image", got)
	}
}
