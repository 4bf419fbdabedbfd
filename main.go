package main

import (
	"flag"
	"fmt"
	"image"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/automoto/campfire/assets"
	"github.com/automoto/campfire/config"
	"github.com/automoto/campfire/fonts"
	"github.com/automoto/campfire/scenes"
	"github.com/automoto/campfire/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

type Game struct {
	bounds image.Rectangle
	scene  scenes.Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene scenes.Scene) {
	g.scene = scene
}

func NewGame(mode string, opts scenes.SurvivalOptions) *Game {
	g := &Game{
		bounds: image.Rectangle{},
	}

	if mode == "arcade" {
		g.scene = scenes.NewArcadeScene(g)
	} else {
		g.scene = scenes.NewSurvivalScene(g, opts)
	}

	return g
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	mode := flag.String("game", "survival", "game to run: survival or arcade")
	mapName := flag.String("map", "campfire", "embedded map name ("+strings.Join(assets.LevelNames(), ", ")+") or a .tmx file")
	players := flag.Int("players", 1, "number of local players (1-4)")
	tuningPath := flag.String("tuning", "", "YAML file overriding gameplay numbers")
	debug := flag.Bool("debug", false, "show collision samples (toggle with F1)")
	seed := flag.Int64("seed", 0, "random seed for enemy spawns (0 uses the clock)")
	flag.Parse()

	if *mode != "survival" && *mode != "arcade" {
		fmt.Fprintf(os.Stderr, "unknown -game %q, want survival or arcade\n", *mode)
		os.Exit(2)
	}

	// Embedded defaults first, then the user's file on top.
	tuning, err := assets.LoadTuning()
	if err != nil {
		log.Fatalf("Failed to load built-in tuning: %v", err)
	}
	tuning.Apply()
	if *tuningPath != "" {
		t, err := config.LoadTuning(os.DirFS(filepath.Dir(*tuningPath)), filepath.Base(*tuningPath))
		if err != nil {
			log.Fatalf("Failed to load tuning: %v", err)
		}
		t.Apply()
	}

	config.Debug.ShowCollision = *debug
	config.Debug.Seed = *seed
	if config.Debug.Seed == 0 {
		config.Debug.Seed = time.Now().UnixNano()
	}

	if err := fonts.LoadDefaults(config.UI.HUDFontSize, config.UI.BannerFontSize, config.UI.SmallFontSize); err != nil {
		log.Fatalf("Failed to load fonts: %v", err)
	}

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle("Campfire")
	ebiten.SetTPS(config.C.TPS)

	// Initialize persistence for the survival records
	if err := systems.InitPersistence(); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}

	opts := scenes.SurvivalOptions{
		Map:     *mapName,
		Players: *players,
		Seed:    config.Debug.Seed,
	}
	if err := ebiten.RunGame(NewGame(*mode, opts)); err != nil {
		log.Fatal(err)
	}
}
