package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/automoto/campfire/shared/tilemap"
	"github.com/gdamore/tcell/v2"
)

func main() {
	pngOut := flag.String("png", "", "render the visible layers to this PNG file and exit")
	radius := flag.Float64("radius", 16, "collision test radius in pixels")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: mapview [-png out.png] [-radius r] file.tmx\n")
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	dir, file := filepath.Split(flag.Arg(0))
	if dir == "" {
		dir = "."
	}
	fsys := os.DirFS(dir)

	m, err := tilemap.Load(fsys, file)
	if err != nil {
		log.Fatalf("Failed to load map: %v", err)
	}
	writeSummary(os.Stdout, m)

	if *pngOut != "" {
		out, err := os.Create(*pngOut)
		if err != nil {
			log.Fatalf("Failed to create %s: %v", *pngOut, err)
		}
		if err := exportPNG(fsys, file, out); err != nil {
			out.Close()
			log.Fatalf("Failed to render map: %v", err)
		}
		if err := out.Close(); err != nil {
			log.Fatalf("Failed to write %s: %v", *pngOut, err)
		}
		log.Printf("wrote %s", *pngOut)
		return
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("Terminal setup failed: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("Screen init failed: %v", err)
	}
	defer screen.Fini()

	newViewer(screen, m, *radius).run()
}
