// Package assets resolves sprite base names to tile-sized images. Sprites
// live as GIF files in a directory; each is decoded once and cached. A
// Catalog with a Fetcher downloads missing sprites from the tile CDN into
// the same directory, so the directory doubles as the download cache.
package assets

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/png"
	"os"
	"path/filepath"

	xdraw "golang.org/x/image/draw"

	"github.com/automoto/mapstitch/config"
)

// ErrMissingSprite indicates a sprite that is neither on disk nor, when a
// fetcher is set, on the CDN. The renderer falls back to the default edge
// sprite when a generated edge variant reports it.
var ErrMissingSprite = errors.New("sprite not found")

// Catalog loads tile sprites by base name, caching decoded images.
type Catalog struct {
	dir      string
	tileSize int
	fetcher  *Fetcher
	cache    map[string]image.Image
}

// NewCatalog returns a Catalog reading <dir>/<name>.gif files. A non-nil
// fetcher downloads missing sprites into dir before loading them.
func NewCatalog(dir string, fetcher *Fetcher) *Catalog {
	return &Catalog{
		dir:      dir,
		tileSize: config.Render.TileSize,
		fetcher:  fetcher,
		cache:    make(map[string]image.Image),
	}
}

// Load returns the sprite image for a base name, reading and decoding its
// file on first use. Sprites that are not tile sized are scaled to the tile
// size without smoothing.
func (c *Catalog) Load(name string) (image.Image, error) {
	if img, ok := c.cache[name]; ok {
		return img, nil
	}

	path := filepath.Join(c.dir, name+".gif")
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) && c.fetcher != nil {
		if ferr := c.fetcher.Fetch(name, path); ferr != nil {
			return nil, fmt.Errorf("fetch sprite %q: %w", name, ferr)
		}
		data, err = os.ReadFile(path)
	}
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("sprite %q (%s): %w", name, path, ErrMissingSprite)
		}
		return nil, fmt.Errorf("read sprite %s: %w", path, err)
	}

	src, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode sprite %s: %w", path, err)
	}

	img := c.normalize(src)
	c.cache[name] = img
	return img, nil
}

func (c *Catalog) normalize(src image.Image) image.Image {
	b := src.Bounds()
	if b.Dx() == c.tileSize && b.Dy() == c.tileSize {
		return src
	}
	dst := image.NewRGBA(image.Rect(0, 0, c.tileSize, c.tileSize))
	xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), src, b, xdraw.Src, nil)
	return dst
}
