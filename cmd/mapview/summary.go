package main

import (
	"fmt"
	"io"
	"io/fs"
	"sort"

	"github.com/automoto/campfire/shared/tilemap"
	"github.com/lafriks/go-tiled"
	"github.com/lafriks/go-tiled/render"
)

// writeSummary prints the map's size, layers, tilesets, animations and
// object groups.
func writeSummary(w io.Writer, m *tilemap.Map) {
	fmt.Fprintf(w, "map %s: %dx%d tiles of %dx%d px (%dx%d px)\n",
		m.Name, m.Width, m.Height, m.TileWidth, m.TileHeight, m.WidthInPixels(), m.HeightInPixels())

	obstacles := m.ObstacleLayer()
	for _, l := range m.Layers {
		flags := ""
		if !l.Visible {
			flags += " hidden"
		}
		if l == obstacles {
			flags += " obstacles"
		}
		fmt.Fprintf(w, "  layer %-16s %5d tiles  opacity %.2f%s\n", l.Name, countTiles(l), l.Opacity, flags)
	}

	for _, ts := range m.Tilesets {
		image := ts.Image
		if image == "" {
			image = "(no image)"
		}
		fmt.Fprintf(w, "  tileset %-14s firstgid %-4d %d tiles  %s\n", ts.Name, ts.FirstGID, ts.TileCount, image)
	}

	anims := m.Animations()
	gids := make([]int, 0, len(anims))
	for gid := range anims {
		gids = append(gids, int(gid))
	}
	sort.Ints(gids)
	for _, gid := range gids {
		a := anims[uint32(gid)]
		fmt.Fprintf(w, "  animation gid %-4d %d frames  %.2fs\n", gid, len(a.Frames), a.Length())
	}

	groups := map[string]int{}
	var order []string
	for _, o := range m.Objects {
		if groups[o.Group] == 0 {
			order = append(order, o.Group)
		}
		groups[o.Group]++
	}
	for _, g := range order {
		fmt.Fprintf(w, "  objects %-14s %d\n", g, groups[g])
	}
}

func countTiles(l *tilemap.Layer) int {
	w, h := l.Size()
	n := 0
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if l.Tile(x, y) != 0 {
				n++
			}
		}
	}
	return n
}

// exportPNG renders every visible tile layer with go-tiled's renderer.
func exportPNG(fsys fs.FS, tmxPath string, out io.Writer) error {
	tm, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}
	renderer, err := render.NewRendererWithFileSystem(tm, fsys)
	if err != nil {
		return fmt.Errorf("failed to create renderer: %w", err)
	}
	if err := renderer.RenderVisibleLayers(); err != nil {
		return fmt.Errorf("failed to render layers: %w", err)
	}
	return renderer.SaveAsPng(out)
}
