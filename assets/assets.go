package assets

import (
	"bytes"
	"embed"
	"fmt"
	"image"
	"image/color"
	_ "image/png"
	"io/fs"
	"log"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/automoto/campfire/config"
	"github.com/automoto/campfire/shared/tilemap"
	"github.com/hajimehoshi/ebiten/v2"
)

var (
	//go:embed all:levels
	assetFS embed.FS

	//go:embed data/tuning.yaml
	tuningYAML []byte
)

// Placeholder atlas size in pixels.
const placeholderSize = 32

var (
	checkerLight = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	checkerDark  = color.RGBA{R: 128, G: 128, B: 128, A: 255}
)

// AtlasLoader decodes tileset images once and hands out the cached result.
type AtlasLoader struct {
	cache map[atlasKey]*ebiten.Image
	// File system each map name was last loaded from. Keyed by name so
	// reloading a level on restart replaces the entry.
	sources map[string]fs.FS
}

func NewAtlasLoader() *AtlasLoader {
	return &AtlasLoader{
		cache:   make(map[atlasKey]*ebiten.Image),
		sources: make(map[string]fs.FS),
	}
}

type atlasKey struct {
	fsys    fs.FS
	image   string
	tileset string
}

var atlasLoader = NewAtlasLoader()

// LevelNames lists the embedded maps by name, sorted.
func LevelNames() []string {
	entries, err := assetFS.ReadDir("levels")
	if err != nil {
		panic(fmt.Sprintf("Failed to read levels directory: %v", err))
	}
	var names []string
	for _, entry := range entries {
		if !entry.IsDir() && filepath.Ext(entry.Name()) == ".tmx" {
			names = append(names, strings.TrimSuffix(entry.Name(), ".tmx"))
		}
	}
	sort.Strings(names)
	return names
}

// LoadMap loads an embedded map by name, or a TMX file on disk when name
// ends in ".tmx".
func LoadMap(name string) (*tilemap.Map, error) {
	fsys, tmxPath := mapSource(name)
	m, err := tilemap.Load(fsys, tmxPath)
	if err != nil {
		return nil, err
	}
	atlasLoader.sources[m.Name] = fsys
	return m, nil
}

// MustLoadMap is LoadMap for maps the game cannot run without.
func MustLoadMap(name string) *tilemap.Map {
	m, err := LoadMap(name)
	if err != nil {
		panic(fmt.Sprintf("Failed to load map %s: %v", name, err))
	}
	return m
}

func mapSource(name string) (fs.FS, string) {
	if strings.HasSuffix(name, ".tmx") {
		dir, file := filepath.Split(name)
		if dir == "" {
			dir = "."
		}
		return os.DirFS(dir), file
	}
	return assetFS, path.Join("levels", name+".tmx")
}

// LoadTuning parses the embedded tuning defaults.
func LoadTuning() (*config.Tuning, error) {
	return config.ParseTuning(tuningYAML)
}

// LoadAtlas returns the image of a map's tileset. Tilesets without an image
// get a checkerboard and unreadable images a magenta square.
func LoadAtlas(m *tilemap.Map, ts *tilemap.Tileset) *ebiten.Image {
	return atlasLoader.LoadAtlas(m, ts)
}

func (l *AtlasLoader) LoadAtlas(m *tilemap.Map, ts *tilemap.Tileset) *ebiten.Image {
	fsys, ok := l.sources[m.Name]
	if !ok {
		fsys = assetFS
	}
	key := atlasKey{fsys: fsys, image: ts.Image, tileset: ts.Name}
	if img, ok := l.cache[key]; ok {
		return img
	}
	img := ebiten.NewImageFromImage(DecodeAtlas(fsys, ts))
	l.cache[key] = img
	return img
}

// DecodeAtlas reads a tileset image, falling back to a placeholder.
func DecodeAtlas(fsys fs.FS, ts *tilemap.Tileset) image.Image {
	if ts.Image == "" {
		log.Printf("Warning: tileset %q has no image, using a checkerboard", ts.Name)
		return Checkerboard()
	}
	data, err := fs.ReadFile(fsys, ts.Image)
	if err != nil {
		log.Printf("Warning: Failed to read tileset image %s: %v", ts.Image, err)
		return MissingTexture()
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		log.Printf("Warning: Failed to decode tileset image %s: %v", ts.Image, err)
		return MissingTexture()
	}
	return img
}

// Checkerboard is the placeholder for tilesets without an image: 1 px
// white and grey rows, starting with white.
func Checkerboard() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, placeholderSize, placeholderSize))
	for y := 0; y < placeholderSize; y++ {
		c := checkerLight
		if y%2 == 1 {
			c = checkerDark
		}
		for x := 0; x < placeholderSize; x++ {
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

// MissingTexture is the placeholder for images that failed to load.
func MissingTexture() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, placeholderSize, placeholderSize))
	for y := 0; y < placeholderSize; y++ {
		for x := 0; x < placeholderSize; x++ {
			img.SetRGBA(x, y, config.Magenta)
		}
	}
	return img
}
