package config

import (
	"image/color"
	"time"
)

// RenderConfig contains tile geometry and viewport configuration values
type RenderConfig struct {
	// Dimensions
	TileSize int // square tile edge in pixels

	// Viewport
	DefaultVisibility int // diameter of the visible window in tiles, forced odd
}

// WaterConfig contains coastline edge detection configuration values
type WaterConfig struct {
	// Sprite naming
	Sprite     string // base name of the plain water sprite
	EdgePrefix string // prefix for edge variants, e.g. "wtr_" + "ne"
	CapPrefix  string // prefix for corner cap overlays, e.g. "wtrc_" + "a"

	// Fallback when a generated edge variant has no sprite on disk
	EdgeFallback string

	// Sprites that suppress an edge when adjacent to water
	Cancelers []string
}

// FetchConfig contains sprite download configuration values
type FetchConfig struct {
	BaseURL string // tile CDN base, sprite name + ".gif" is appended
	Timeout time.Duration
}

// GridConfig contains debug grid overlay configuration values
type GridConfig struct {
	LineColor  color.RGBA
	LabelColor color.RGBA
}

// Global configuration instances
var Render RenderConfig
var Water WaterConfig
var Fetch FetchConfig
var Grid GridConfig

// Shared RGBA color constants
var (
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
)

func init() {
	// Render Config
	Render = RenderConfig{
		TileSize:          40,
		DefaultVisibility: 9, // the in-game default
	}

	// Water Config
	Water = WaterConfig{
		Sprite:       "wtr",
		EdgePrefix:   "wtr_",
		CapPrefix:    "wtrc_",
		EdgeFallback: "wtr_nsew",

		// Water next to any of these draws no coastline. The fc/cld
		// entries are the Faerieland cloud tiles.
		Cancelers: []string{
			"wtr",
			"cld",
			"scld",
			"fc_1",
			"fc_2",
			"fc_3",
			"fc_4",
			"fc_6",
			"fc_7",
			"fc_8",
			"fc_9",
		},
	}

	// Fetch Config (defaults, base URL can be overridden by CLI flags)
	Fetch = FetchConfig{
		BaseURL: "https://images.neopets.com/nq2/t/",
		Timeout: 15 * time.Second,
	}

	// Grid Config
	Grid = GridConfig{
		LineColor:  BlackOverlay,
		LabelColor: Yellow,
	}
}
