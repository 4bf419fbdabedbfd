package tilemap

import (
	"fmt"
	"io/fs"
	"log"
	"path"
	"path/filepath"
	"strings"

	"github.com/lafriks/go-tiled"
)

// Load parses a TMX file and everything it references. It takes an fs.FS so
// callers can pass embed.FS (game) or os.DirFS (tools and tests).
//
// Tile data may be CSV, base64 (raw, gzip or zlib) or plain <tile> elements.
// External tilesets are resolved relative to the map. A missing tileset image
// is not an error here; the renderer substitutes a placeholder. Maps with
// object groups only are valid and simply have no layers.
func Load(fsys fs.FS, tmxPath string) (*Map, error) {
	tm, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}
	if len(tm.Tilesets) == 0 {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, ErrNoTileset)
	}

	m := &Map{
		Name:       strings.TrimSuffix(path.Base(tmxPath), path.Ext(tmxPath)),
		Width:      tm.Width,
		Height:     tm.Height,
		TileWidth:  tm.TileWidth,
		TileHeight: tm.TileHeight,
	}

	for _, ts := range tm.Tilesets {
		m.Tilesets = append(m.Tilesets, convertTileset(ts, tmxPath))
		for _, t := range ts.Tiles {
			if len(t.Animation) == 0 {
				continue
			}
			frames := make([]Frame, 0, len(t.Animation))
			for _, f := range t.Animation {
				frames = append(frames, Frame{
					GID:      ts.FirstGID + f.TileID,
					Duration: float64(f.Duration) / 1000,
				})
			}
			m.SetAnimation(ts.FirstGID+t.ID, NewAnimation(frames))
		}
	}

	for _, tl := range tm.Layers {
		m.Layers = append(m.Layers, convertLayer(tl, tm.Width, tm.Height))
	}

	for _, og := range tm.ObjectGroups {
		for _, o := range og.Objects {
			class := o.Class
			if class == "" {
				class = o.Type //nolint:staticcheck // older TMX files use type=
			}
			m.Objects = append(m.Objects, Object{
				Group: og.Name,
				Name:  o.Name,
				Class: class,
				X:     o.X,
				Y:     o.Y,
				W:     o.Width,
				H:     o.Height,
			})
		}
	}

	log.Printf("[tilemap] loaded %q (%dx%d tiles, %d layers, %d animations)",
		m.Name, m.Width, m.Height, len(m.Layers), len(m.animations))
	return m, nil
}

func convertTileset(ts *tiled.Tileset, tmxPath string) *Tileset {
	out := &Tileset{
		Name:       ts.Name,
		FirstGID:   ts.FirstGID,
		TileWidth:  ts.TileWidth,
		TileHeight: ts.TileHeight,
		Spacing:    ts.Spacing,
		Margin:     ts.Margin,
		Columns:    ts.Columns,
		TileCount:  ts.TileCount,
		Source:     ts.Source,
	}
	if out.FirstGID == 0 {
		out.FirstGID = 1
	}
	if ts.Image != nil && ts.Image.Source != "" {
		out.Image = resolveImagePath(tmxPath, ts.Source, ts.Image.Source)
		out.ImageWidth = ts.Image.Width
		out.ImageHeight = ts.Image.Height
	}
	return out
}

// resolveImagePath turns an image reference into a path inside the map's
// file system. Images of external tilesets are relative to the .tsx file.
func resolveImagePath(tmxPath, tsxSource, image string) string {
	image = filepath.ToSlash(image)
	if path.IsAbs(image) {
		return strings.TrimPrefix(image, "/")
	}
	base := path.Dir(filepath.ToSlash(tmxPath))
	if tsxSource != "" {
		base = path.Dir(path.Join(base, filepath.ToSlash(tsxSource)))
	}
	return path.Join(base, image)
}

func convertLayer(tl *tiled.Layer, width, height int) *Layer {
	l := NewLayer(tl.Name, width, height)
	l.Visible = tl.Visible
	l.Opacity = float64(tl.Opacity)
	for i, tile := range tl.Tiles {
		if i >= width*height {
			break
		}
		if tile == nil || tile.IsNil() || tile.Tileset == nil {
			continue
		}
		firstGID := tile.Tileset.FirstGID
		if firstGID == 0 {
			firstGID = 1
		}
		// Flip flags are already split off by the decoder.
		l.gids[i] = firstGID + tile.ID
	}
	return l
}
