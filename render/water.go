package render

import (
	"strings"

	"github.com/automoto/mapstitch/config"
	"github.com/automoto/mapstitch/tilemap"
)

// edgeLetters maps the orthogonal neighbor order (N, S, E, W) to edge key
// letters. Edge keys always come out in this order, so a tile with land to
// the north and east is "wtr_ne", never "wtr_en".
var edgeLetters = [4]string{"n", "s", "e", "w"}

// capLetters maps the diagonal neighbor order (NW, SW, SE, NE) to corner
// cap sprite letters.
var capLetters = [4]string{"a", "c", "d", "b"}

// isCanceler reports whether a sprite suppresses the coastline when
// adjacent to water.
func isCanceler(sprite string) bool {
	for _, c := range config.Water.Cancelers {
		if sprite == c {
			return true
		}
	}
	return false
}

// neighborSprite resolves the sprite a neighbor presents to the edge rule:
// out-of-bounds cells count as open water, blank cells as the default tile.
func neighborSprite(m *tilemap.Map, cell tilemap.Cell) string {
	if cell.OutOfBounds {
		return config.Water.Sprite
	}
	if name, ok := m.Sprite(cell.Key); ok {
		return name
	}
	return m.DefaultSprite()
}

// waterEdges computes the sprite for a water cell and the corner caps it
// needs. The sprite is the edge prefix plus the letters of the orthogonal
// directions holding a non-canceler neighbor; an empty key keeps plain
// water. Each in-bounds diagonal neighbor that is not a canceler adds one
// cap overlay, drawn above the cell's layer.
func waterEdges(m *tilemap.Map, x, y, z int) (sprite string, caps []string) {
	neighbors := m.Neighbors(x, y, z)

	var key strings.Builder
	for i, cell := range neighbors[:4] {
		if !isCanceler(neighborSprite(m, cell)) {
			key.WriteString(edgeLetters[i])
		}
	}

	sprite = config.Water.Sprite
	if key.Len() > 0 {
		sprite = config.Water.EdgePrefix + key.String()
	}

	for i, cell := range neighbors[4:] {
		if cell.OutOfBounds {
			continue
		}
		if !isCanceler(neighborSprite(m, cell)) {
			caps = append(caps, config.Water.CapPrefix+capLetters[i])
		}
	}
	return sprite, caps
}
