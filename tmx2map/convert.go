package main

import (
	"fmt"
	"strings"

	"github.com/lafriks/go-tiled"

	"github.com/automoto/mapstitch/tilemap"
)

// Convert reads a Tiled TMX map and builds the renderer's map document.
// Tileset tiles carry the grid key in a "code" custom property (one
// character) and the sprite base name in a "sprite" property. Every tile
// layer becomes one grid layer; empty cells become blanks. defaultKey and
// borderKey are codes that must exist in the tileset.
func Convert(tmxPath, defaultKey, borderKey string) (*tilemap.Document, error) {
	tmx, err := tiled.LoadFile(tmxPath)
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	tiles := map[string]string{}
	for _, ts := range tmx.Tilesets {
		for _, tt := range ts.Tiles {
			code := tt.Properties.GetString("code")
			sprite := tt.Properties.GetString("sprite")
			if code == "" && sprite == "" {
				continue
			}
			if code == "" || sprite == "" {
				return nil, fmt.Errorf("tileset %s tile %d needs both code and sprite properties", ts.Name, tt.ID)
			}
			if prev, ok := tiles[code]; ok && prev != sprite {
				return nil, fmt.Errorf("tile code %q maps to both %q and %q", code, prev, sprite)
			}
			tiles[code] = sprite
		}
	}

	layers := make([][]string, 0, len(tmx.Layers))
	for _, layer := range tmx.Layers {
		rows := make([]string, 0, tmx.Height)
		for y := 0; y < tmx.Height; y++ {
			var row strings.Builder
			for x := 0; x < tmx.Width; x++ {
				lt := layer.Tiles[y*tmx.Width+x]
				if lt.IsNil() {
					row.WriteRune(tilemap.Blank)
					continue
				}
				code, err := cellCode(lt)
				if err != nil {
					return nil, fmt.Errorf("layer %s cell (%d,%d): %w", layer.Name, x, y, err)
				}
				row.WriteString(code)
			}
			rows = append(rows, row.String())
		}
		layers = append(layers, rows)
	}

	doc := &tilemap.Document{
		Default: defaultKey,
		Border:  borderKey,
		Tiles:   tiles,
		Layers:  layers,
	}
	// Validate now so bad codes fail here, not at render time.
	if _, err := doc.Map(); err != nil {
		return nil, err
	}
	return doc, nil
}

// cellCode reads the grid code off a layer tile's tileset entry.
func cellCode(lt *tiled.LayerTile) (string, error) {
	tt, err := lt.Tileset.GetTilesetTile(lt.ID)
	if err != nil {
		return "", fmt.Errorf("tileset tile %d: %w", lt.ID, err)
	}
	code := tt.Properties.GetString("code")
	if code == "" {
		return "", fmt.Errorf("tileset tile %d has no code property", lt.ID)
	}
	return code, nil
}
