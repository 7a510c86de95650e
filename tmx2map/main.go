package main

import (
	"encoding/json"
	"flag"
	"log"
	"os"
)

func main() {
	tmxPath := flag.String("tmx", "", "input TMX map (required)")
	outPath := flag.String("out", "map.json", "output map JSON path")
	defaultKey := flag.String("default", "", "tile code of the in-bounds background tile (required)")
	borderKey := flag.String("border", "", "tile code drawn outside the map bounds (required)")
	flag.Parse()

	if *tmxPath == "" || *defaultKey == "" || *borderKey == "" {
		flag.Usage()
		os.Exit(2)
	}

	doc, err := Convert(*tmxPath, *defaultKey, *borderKey)
	if err != nil {
		log.Fatalf("[tmx2map] %v", err)
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		log.Fatalf("[tmx2map] encode: %v", err)
	}
	data = append(data, '\n')

	if err := os.WriteFile(*outPath, data, 0o644); err != nil {
		log.Fatalf("[tmx2map] write %s: %v", *outPath, err)
	}
	log.Printf("[tmx2map] wrote %s (%d tiles, %d layers)", *outPath, len(doc.Tiles), len(doc.Layers))
}
