// Package render composes a tile map into a single image: a default-tile
// base, the border outside the map bounds, each grid layer in z order, and
// coastline edges on water tiles.
package render

import (
	"errors"
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"io"
	"log"
	"strings"

	"github.com/disintegration/imaging"

	"github.com/automoto/mapstitch/assets"
	"github.com/automoto/mapstitch/config"
	"github.com/automoto/mapstitch/tilemap"
)

// Options control what part of the map is rendered and how.
type Options struct {
	// FullMap renders the whole grid. Otherwise a square window of
	// Visibility tiles centred on (X, Y) is rendered, with border tiles
	// filling anything outside the map bounds.
	FullMap bool
	X, Y    int

	// Visibility is the window diameter in tiles. Zero means the
	// configured default; even values round up to the next odd so the
	// window has a centre tile.
	Visibility int

	// WaterEdges swaps water tiles adjacent to land for coastline edge
	// variants and adds corner caps.
	WaterEdges bool

	// Grid draws tile boundaries and map coordinates on top.
	Grid bool

	// Scale resizes the finished image by this factor. Zero or one keeps
	// the native size.
	Scale float64
}

// Renderer composes a map into an image using sprites from a catalog.
type Renderer struct {
	m       *tilemap.Map
	catalog *assets.Catalog
}

// New returns a Renderer for the map and sprite catalog.
func New(m *tilemap.Map, catalog *assets.Catalog) *Renderer {
	return &Renderer{m: m, catalog: catalog}
}

// Render composes the selected region into an RGBA image. The unscaled
// output is exactly the region size times the tile size. Rendering is
// single threaded and deterministic: the same map, sprites, and options
// produce identical pixels.
func (r *Renderer) Render(opts Options) (image.Image, error) {
	tile := config.Render.TileSize
	x0, y0, x1, y1 := r.region(opts)

	out := image.NewRGBA(image.Rect(0, 0, (x1-x0)*tile, (y1-y0)*tile))

	// Base fill with the default tile so blank cells and transparent
	// sprite pixels show it.
	def, err := r.catalog.Load(r.m.DefaultSprite())
	if err != nil {
		return nil, err
	}
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			paste(out, x-x0, y-y0, def, draw.Src)
		}
	}

	for z := 0; z < r.m.Depth(); z++ {
		if err := r.renderLayer(out, z, x0, y0, x1, y1, opts); err != nil {
			return nil, err
		}
	}

	if opts.Grid {
		drawGrid(out, x0, y0)
	}

	if opts.Scale > 0 && opts.Scale != 1 {
		w := int(float64(out.Bounds().Dx()) * opts.Scale)
		h := int(float64(out.Bounds().Dy()) * opts.Scale)
		return imaging.Resize(out, w, h, imaging.NearestNeighbor), nil
	}
	return out, nil
}

// region returns the half-open grid rectangle to render.
func (r *Renderer) region(opts Options) (x0, y0, x1, y1 int) {
	if opts.FullMap {
		return 0, 0, r.m.Cols(), r.m.Rows()
	}
	vis := opts.Visibility
	if vis <= 0 {
		vis = config.Render.DefaultVisibility
	}
	vis |= 1 // the window diameter must be odd
	radius := vis / 2
	return opts.X - radius, opts.Y - radius, opts.X + radius + 1, opts.Y + radius + 1
}

// renderLayer paints one grid layer onto dst: border tiles first (layer 0
// only), then the layer's tiles, then its corner caps. Tiles within a layer
// replace pixels; the finished layer composites over what is below it.
func (r *Renderer) renderLayer(dst *image.RGBA, z, x0, y0, x1, y1 int, opts Options) error {
	layer := image.NewRGBA(dst.Bounds())
	caps := image.NewRGBA(dst.Bounds())
	hasCaps := false

	var border *image.RGBA
	if z == 0 {
		border = image.NewRGBA(dst.Bounds())
	}

	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			cell := r.m.At(x, y, z)
			if cell.OutOfBounds {
				if z == 0 {
					img, err := r.catalog.Load(r.m.BorderSprite())
					if err != nil {
						return err
					}
					paste(border, x-x0, y-y0, img, draw.Src)
				}
				continue
			}
			if cell.Key == tilemap.Blank {
				continue
			}

			name, _ := r.m.Sprite(cell.Key)
			if opts.WaterEdges && name == config.Water.Sprite {
				edge, cellCaps := waterEdges(r.m, x, y, z)
				name = edge
				for _, capName := range cellCaps {
					img, err := r.catalog.Load(capName)
					if err != nil {
						return err
					}
					paste(caps, x-x0, y-y0, img, draw.Over)
					hasCaps = true
				}
			}

			img, err := r.loadTile(name)
			if err != nil {
				return err
			}
			paste(layer, x-x0, y-y0, img, draw.Src)
		}
	}

	if border != nil {
		draw.Draw(dst, dst.Bounds(), border, image.Point{}, draw.Over)
	}
	draw.Draw(dst, dst.Bounds(), layer, image.Point{}, draw.Over)
	if hasCaps {
		draw.Draw(dst, dst.Bounds(), caps, image.Point{}, draw.Over)
	}
	return nil
}

// loadTile loads a sprite, substituting the configured fallback when a
// generated edge variant has no sprite of its own.
func (r *Renderer) loadTile(name string) (image.Image, error) {
	img, err := r.catalog.Load(name)
	if err != nil && errors.Is(err, assets.ErrMissingSprite) &&
		strings.HasPrefix(name, config.Water.EdgePrefix) && name != config.Water.EdgeFallback {
		log.Printf("[render] no sprite for edge %q, using %q", name, config.Water.EdgeFallback)
		return r.catalog.Load(config.Water.EdgeFallback)
	}
	return img, err
}

// paste draws a tile-sized sprite at grid offset (cx, cy) of dst.
func paste(dst *image.RGBA, cx, cy int, sprite image.Image, op draw.Op) {
	tile := config.Render.TileSize
	rect := image.Rect(cx*tile, cy*tile, (cx+1)*tile, (cy+1)*tile)
	draw.Draw(dst, rect, sprite, sprite.Bounds().Min, op)
}

// WritePNG encodes a rendered image as PNG.
func WritePNG(w io.Writer, img image.Image) error {
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("encode PNG: %w", err)
	}
	return nil
}
