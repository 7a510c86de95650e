package render

import (
	"fmt"
	"image"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"github.com/automoto/mapstitch/config"
	"github.com/automoto/mapstitch/fonts"
)

// drawGrid paints tile boundary lines and per-cell map coordinates on top
// of a rendered image. x0, y0 are the grid coordinates of the top-left
// rendered cell, so labels show map positions rather than window offsets.
func drawGrid(dst *image.RGBA, x0, y0 int) {
	tile := config.Render.TileSize
	b := dst.Bounds()

	lines := image.NewUniform(config.Grid.LineColor)
	for x := b.Min.X; x < b.Max.X; x += tile {
		draw.Draw(dst, image.Rect(x, b.Min.Y, x+1, b.Max.Y), lines, image.Point{}, draw.Over)
	}
	for y := b.Min.Y; y < b.Max.Y; y += tile {
		draw.Draw(dst, image.Rect(b.Min.X, y, b.Max.X, y+1), lines, image.Point{}, draw.Over)
	}

	face := fonts.Label.Get()
	src := image.NewUniform(config.Grid.LabelColor)
	for cy := 0; cy*tile < b.Max.Y; cy++ {
		for cx := 0; cx*tile < b.Max.X; cx++ {
			d := font.Drawer{
				Dst:  dst,
				Src:  src,
				Face: face,
				Dot:  fixed.P(cx*tile+2, cy*tile+11),
			}
			d.DrawString(fmt.Sprintf("%d,%d", x0+cx, y0+cy))
		}
	}
}
