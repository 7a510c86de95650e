package main

import (
	"flag"
	"log"
	"os"
	"time"

	"github.com/automoto/mapstitch/assets"
	"github.com/automoto/mapstitch/config"
	"github.com/automoto/mapstitch/render"
	"github.com/automoto/mapstitch/tilemap"
)

func main() {
	mapPath := flag.String("map", "", "map JSON path (required)")
	outPath := flag.String("out", "map.png", "output PNG path")
	spriteDir := flag.String("sprites", "img", "sprite directory")
	fullMap := flag.Bool("full", false, "render the whole map instead of a window")
	x := flag.Int("x", 0, "window centre x in tiles")
	y := flag.Int("y", 0, "window centre y in tiles")
	visibility := flag.Int("visibility", config.Render.DefaultVisibility, "window diameter in tiles, forced odd")
	waterEdges := flag.Bool("water-edges", true, "draw coastline edges on water tiles")
	download := flag.Bool("download", false, "fetch missing sprites from the tile CDN")
	cdn := flag.String("cdn", config.Fetch.BaseURL, "tile CDN base URL")
	scale := flag.Float64("scale", 1, "scale factor for the finished image")
	grid := flag.Bool("grid", false, "draw tile boundaries and coordinates")
	flag.Parse()

	if *mapPath == "" {
		flag.Usage()
		os.Exit(2)
	}

	start := time.Now()

	m, err := tilemap.Load(*mapPath)
	if err != nil {
		log.Fatalf("[mapstitch] %v", err)
	}
	log.Printf("[mapstitch] loaded %s (%dx%d, %d layers)", *mapPath, m.Cols(), m.Rows(), m.Depth())

	var fetcher *assets.Fetcher
	if *download {
		fetcher = assets.NewFetcher(*cdn)
	}
	catalog := assets.NewCatalog(*spriteDir, fetcher)

	img, err := render.New(m, catalog).Render(render.Options{
		FullMap:    *fullMap,
		X:          *x,
		Y:          *y,
		Visibility: *visibility,
		WaterEdges: *waterEdges,
		Grid:       *grid,
		Scale:      *scale,
	})
	if err != nil {
		log.Fatalf("[mapstitch] render: %v", err)
	}

	f, err := os.Create(*outPath)
	if err != nil {
		log.Fatalf("[mapstitch] create %s: %v", *outPath, err)
	}
	if err := render.WritePNG(f, img); err != nil {
		log.Fatalf("[mapstitch] write %s: %v", *outPath, err)
	}
	if err := f.Close(); err != nil {
		log.Fatalf("[mapstitch] close %s: %v", *outPath, err)
	}

	log.Printf("[mapstitch] rendered %s in %s", *outPath, time.Since(start).Round(time.Millisecond))
}
