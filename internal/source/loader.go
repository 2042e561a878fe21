// Package source decodes external image files into the raw RGBA form the
// image pool stores, keeping the pool itself free of format knowledge. A
// path-keyed cache avoids re-decoding files that are placed repeatedly.
package source

import (
	"fmt"
	"image"
	"image/draw"
	_ "image/gif"  // Register GIF format decoder
	_ "image/jpeg" // Register JPEG format decoder
	_ "image/png"  // Register PNG format decoder
	"io"
	"os"
	"sync"

	"github.com/termpix/termpix/internal/imagepool"
)

// Raster is a decoded image in pool form: non-premultiplied RGBA bytes plus
// pixel dimensions, ready for Pool.Create.
type Raster struct {
	Data []byte
	Size imagepool.Size
}

// Cache caches decoded rasters by file path. Unlike the pool it sits above,
// the cache is safe for concurrent use: decoding may be driven from any
// goroutine, only the pool hand-off has to happen on the owner.
//
// Entries stay until evicted; callers managing memory for long-running
// processes should Evict or Clear after the pool has taken its copy.
type Cache struct {
	mu      sync.RWMutex
	entries map[string]Raster
}

// NewCache creates an empty decode cache.
func NewCache() *Cache {
	return &Cache{
		entries: make(map[string]Raster),
	}
}

// Load decodes the image file at path, or returns the cached raster from an
// earlier load of the same path string.
func (c *Cache) Load(path string) (Raster, error) {
	c.mu.RLock()
	if r, ok := c.entries[path]; ok {
		c.mu.RUnlock()
		return r, nil
	}
	c.mu.RUnlock()

	f, err := os.Open(path)
	if err != nil {
		return Raster{}, fmt.Errorf("failed to open image: %w", err)
	}
	defer f.Close()

	r, err := Decode(f)
	if err != nil {
		return Raster{}, err
	}

	c.mu.Lock()
	c.entries[path] = r
	c.mu.Unlock()

	return r, nil
}

// Evict removes one path from the cache. Unknown paths are a no-op.
func (c *Cache) Evict(path string) {
	c.mu.Lock()
	delete(c.entries, path)
	c.mu.Unlock()
}

// Clear drops every cached raster.
func (c *Cache) Clear() {
	c.mu.Lock()
	c.entries = make(map[string]Raster)
	c.mu.Unlock()
}

// Decode reads one image in any registered format and converts it to pool
// form.
func Decode(r io.Reader) (Raster, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return Raster{}, fmt.Errorf("failed to decode image: %w", err)
	}
	return FromImage(img), nil
}

// FromImage converts any image.Image to pool form: non-premultiplied RGBA,
// 4 bytes per pixel, row-major, with the origin moved to (0,0).
func FromImage(img image.Image) Raster {
	bounds := img.Bounds()
	size := imagepool.Size{Width: bounds.Dx(), Height: bounds.Dy()}

	nrgba := image.NewNRGBA(image.Rect(0, 0, size.Width, size.Height))
	draw.Draw(nrgba, nrgba.Bounds(), img, bounds.Min, draw.Src)

	return Raster{Data: nrgba.Pix, Size: size}
}
