// Package tilemap loads and validates the JSON tile map format: a table of
// single-character grid keys mapped to sprite names, plus z-ordered layers of
// row strings.
package tilemap

import (
	"encoding/json"
	"fmt"
	"os"
)

// Blank is the grid key of an empty cell. Blank cells draw nothing; the
// map's default tile shows through on the base layer.
const Blank = ' '

// Cell is one grid position resolved against the map bounds.
type Cell struct {
	X, Y, Z     int
	Key         rune
	OutOfBounds bool
}

// Map is a parsed, validated tile map. It is read-only after parsing.
type Map struct {
	defaultKey rune
	borderKey  rune
	sprites    map[rune]string
	layers     [][][]rune
	rows       int
	cols       int
}

// Document is the JSON form of a map: the tiles table plus z-ordered layers
// of row strings. tmx2map emits it and Parse decodes into it.
type Document struct {
	Default string            `json:"default"`
	Border  string            `json:"border"`
	Tiles   map[string]string `json:"tiles"`
	Layers  [][]string        `json:"layers"`
}

// Load reads and parses a map JSON file.
func Load(path string) (*Map, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read map: %w", err)
	}
	m, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse map %s: %w", path, err)
	}
	return m, nil
}

// Parse decodes and validates a map JSON document.
func Parse(data []byte) (*Map, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode map JSON: %w", err)
	}
	return doc.Map()
}

// Map validates the document and builds a Map. Tiles must map
// single-character grid keys to sprite base names and the default and
// border keys must both appear in it. Every row must have the same
// character count across all layers and every non-blank character must be
// a known key.
func (d Document) Map() (*Map, error) {
	sprites := make(map[rune]string, len(d.Tiles))
	for key, sprite := range d.Tiles {
		r, err := singleRune(key)
		if err != nil {
			return nil, err
		}
		if sprite == "" {
			return nil, fmt.Errorf("tile key %q has an empty sprite name", key)
		}
		sprites[r] = sprite
	}

	def, err := singleRune(d.Default)
	if err != nil {
		return nil, fmt.Errorf("default tile: %w", err)
	}
	if _, ok := sprites[def]; !ok {
		return nil, fmt.Errorf("default tile %q: %w", d.Default, ErrUnknownKey)
	}

	border, err := singleRune(d.Border)
	if err != nil {
		return nil, fmt.Errorf("border tile: %w", err)
	}
	if _, ok := sprites[border]; !ok {
		return nil, fmt.Errorf("border tile %q: %w", d.Border, ErrUnknownKey)
	}

	if len(d.Layers) == 0 {
		return nil, ErrNoLayers
	}
	rows := len(d.Layers[0])
	if rows == 0 {
		return nil, fmt.Errorf("layer 0: %w", ErrEmptyLayer)
	}
	cols := len([]rune(d.Layers[0][0]))
	if cols == 0 {
		return nil, fmt.Errorf("layer 0: %w", ErrEmptyLayer)
	}

	grid := make([][][]rune, len(d.Layers))
	for z, layer := range d.Layers {
		if len(layer) != rows {
			return nil, fmt.Errorf("layer %d has %d rows, want %d: %w", z, len(layer), rows, ErrRaggedGrid)
		}
		grid[z] = make([][]rune, rows)
		for y, row := range layer {
			cells := []rune(row)
			if len(cells) != cols {
				return nil, fmt.Errorf("layer %d row %d has %d cells, want %d: %w", z, y, len(cells), cols, ErrRaggedGrid)
			}
			for x, key := range cells {
				if key == Blank {
					continue
				}
				if _, ok := sprites[key]; !ok {
					return nil, &KeyError{Key: key, X: x, Y: y, Z: z}
				}
			}
			grid[z][y] = cells
		}
	}

	return &Map{
		defaultKey: def,
		borderKey:  border,
		sprites:    sprites,
		layers:     grid,
		rows:       rows,
		cols:       cols,
	}, nil
}

func singleRune(s string) (rune, error) {
	r := []rune(s)
	if len(r) != 1 {
		return 0, fmt.Errorf("%q: %w", s, ErrBadKey)
	}
	return r[0], nil
}

// Rows returns the grid height in tiles.
func (m *Map) Rows() int { return m.rows }

// Cols returns the grid width in tiles.
func (m *Map) Cols() int { return m.cols }

// Depth returns the number of layers.
func (m *Map) Depth() int { return len(m.layers) }

// DefaultKey returns the grid key of the in-bounds background tile.
func (m *Map) DefaultKey() rune { return m.defaultKey }

// BorderKey returns the grid key drawn outside the map bounds.
func (m *Map) BorderKey() rune { return m.borderKey }

// Sprite returns the sprite base name for a grid key.
func (m *Map) Sprite(key rune) (string, bool) {
	name, ok := m.sprites[key]
	return name, ok
}

// DefaultSprite returns the sprite name of the default tile.
func (m *Map) DefaultSprite() string { return m.sprites[m.defaultKey] }

// BorderSprite returns the sprite name of the border tile.
func (m *Map) BorderSprite() string { return m.sprites[m.borderKey] }

// At returns the cell at (x, y) on layer z. Coordinates outside the grid
// resolve to the border tile with OutOfBounds set. z must be a valid layer
// index.
func (m *Map) At(x, y, z int) Cell {
	if x < 0 || y < 0 || x >= m.cols || y >= m.rows {
		return Cell{X: x, Y: y, Z: z, Key: m.borderKey, OutOfBounds: true}
	}
	return Cell{X: x, Y: y, Z: z, Key: m.layers[z][y][x]}
}

// Neighbors returns the eight cells around (x, y) on layer z in Directions
// order: north, south, east, west, northwest, southwest, southeast,
// northeast.
func (m *Map) Neighbors(x, y, z int) [8]Cell {
	var cells [8]Cell
	for i, d := range Directions {
		dx, dy := d.Offset()
		cells[i] = m.At(x+dx, y+dy, z)
	}
	return cells
}
