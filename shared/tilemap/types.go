package tilemap

import (
	"errors"
	"image"
)

// ErrNoTileset is returned when a map declares no tileset at all.
var ErrNoTileset = errors.New("tilemap: map has no tileset")

// Point is a position in map pixels.
type Point struct {
	X, Y float64
}

// Map is a decoded TMX map. GIDs are global tile ids; 0 means an empty cell.
type Map struct {
	Name       string
	Width      int // in tiles
	Height     int // in tiles
	TileWidth  int
	TileHeight int

	Layers   []*Layer
	Tilesets []*Tileset
	Objects  []Object

	animations map[uint32]*Animation
	clock      float64
}

// Layer is one tile layer, stored row-major.
type Layer struct {
	Name    string
	Visible bool
	Opacity float64

	width, height int
	gids          []uint32
}

// NewLayer returns an empty layer of the given size in tiles.
func NewLayer(name string, width, height int) *Layer {
	return &Layer{
		Name:    name,
		Visible: true,
		Opacity: 1,
		width:   width,
		height:  height,
		gids:    make([]uint32, width*height),
	}
}

// Tile returns the GID at (x, y), or 0 outside the layer.
func (l *Layer) Tile(x, y int) uint32 {
	if x < 0 || y < 0 || x >= l.width || y >= l.height {
		return 0
	}
	return l.gids[y*l.width+x]
}

// SetTile writes a GID, ignoring out-of-range coordinates.
func (l *Layer) SetTile(x, y int, gid uint32) {
	if x < 0 || y < 0 || x >= l.width || y >= l.height {
		return
	}
	l.gids[y*l.width+x] = gid
}

// Size returns the layer dimensions in tiles.
func (l *Layer) Size() (int, int) {
	return l.width, l.height
}

// Tileset describes one atlas. Image is the image path inside the map's file
// system, empty when the tileset has no image.
type Tileset struct {
	Name       string
	FirstGID   uint32
	TileWidth  int
	TileHeight int
	Spacing    int
	Margin     int
	Columns    int
	TileCount  int
	Source     string // external .tsx path, empty when embedded

	Image       string
	ImageWidth  int
	ImageHeight int
}

// Contains reports whether gid belongs to this tileset.
func (ts *Tileset) Contains(gid uint32) bool {
	if gid < ts.FirstGID {
		return false
	}
	if ts.TileCount <= 0 {
		return true
	}
	return gid < ts.FirstGID+uint32(ts.TileCount)
}

// LocalID converts a global id into the tileset's local tile id.
func (ts *Tileset) LocalID(gid uint32) int {
	return int(gid - ts.FirstGID)
}

// SourceRect returns the atlas rectangle for gid. atlasWidth is the width of
// the image actually loaded, used when the tileset does not declare columns.
func (ts *Tileset) SourceRect(gid uint32, atlasWidth int) image.Rectangle {
	cols := ts.Columns
	if cols <= 0 {
		stride := ts.TileWidth + ts.Spacing
		if stride > 0 {
			cols = (atlasWidth - 2*ts.Margin + ts.Spacing) / stride
		}
	}
	if cols <= 0 {
		cols = 1
	}
	id := ts.LocalID(gid)
	x := ts.Margin + (id%cols)*(ts.TileWidth+ts.Spacing)
	y := ts.Margin + (id/cols)*(ts.TileHeight+ts.Spacing)
	return image.Rect(x, y, x+ts.TileWidth, y+ts.TileHeight)
}

// Object is an entry of a TMX object group.
type Object struct {
	Group string
	Name  string
	Class string
	X, Y  float64
	W, H  float64
}

// Center returns the middle of the object's bounds.
func (o Object) Center() Point {
	return Point{X: o.X + o.W/2, Y: o.Y + o.H/2}
}

// WidthInPixels returns the map width in pixels.
func (m *Map) WidthInPixels() int {
	return m.Width * m.TileWidth
}

// HeightInPixels returns the map height in pixels.
func (m *Map) HeightInPixels() int {
	return m.Height * m.TileHeight
}

// Center returns the middle of the map in pixels.
func (m *Map) Center() Point {
	return Point{X: float64(m.WidthInPixels()) / 2, Y: float64(m.HeightInPixels()) / 2}
}

// TilesetFor returns the tileset owning gid, or nil when gid is past the
// end of the tileset it would fall into.
func (m *Map) TilesetFor(gid uint32) *Tileset {
	if gid == 0 {
		return nil
	}
	var found *Tileset
	for _, ts := range m.Tilesets {
		if ts.FirstGID <= gid && (found == nil || ts.FirstGID > found.FirstGID) {
			found = ts
		}
	}
	if found == nil || !found.Contains(gid) {
		return nil
	}
	return found
}

// Layer returns the first layer with the given name, or nil.
func (m *Map) Layer(name string) *Layer {
	for _, l := range m.Layers {
		if l.Name == name {
			return l
		}
	}
	return nil
}

// ObjectsIn returns the objects of one object group.
func (m *Map) ObjectsIn(group string) []Object {
	var out []Object
	for _, o := range m.Objects {
		if o.Group == group {
			out = append(out, o)
		}
	}
	return out
}
