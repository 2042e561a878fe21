package source

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/termpix/termpix/internal/imagepool"
)

// writeTestPNG encodes a solid-color PNG to path.
func writeTestPNG(t *testing.T, path string, width, height int, c color.Color) {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, c)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("failed to create file: %v", err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		t.Fatalf("failed to encode png: %v", err)
	}
}

func TestDecode(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 1))
	img.SetNRGBA(0, 0, color.NRGBA{R: 255, A: 255})
	img.SetNRGBA(1, 0, color.NRGBA{B: 255, A: 255})

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("failed to encode png: %v", err)
	}

	r, err := Decode(&buf)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}

	if r.Size != (imagepool.Size{Width: 2, Height: 1}) {
		t.Errorf("size: got %v, want 2x1", r.Size)
	}
	want := []byte{255, 0, 0, 255, 0, 0, 255, 255}
	if !bytes.Equal(r.Data, want) {
		t.Errorf("data: got %v, want %v", r.Data, want)
	}
}

func TestFromImageShiftsOrigin(t *testing.T) {
	// A sub-image with a non-zero origin must still convert from its own
	// top-left corner.
	base := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	base.SetNRGBA(2, 2, color.NRGBA{G: 255, A: 255})
	sub := base.SubImage(image.Rect(2, 2, 4, 4))

	r := FromImage(sub)
	if r.Size != (imagepool.Size{Width: 2, Height: 2}) {
		t.Fatalf("size: got %v, want 2x2", r.Size)
	}
	if r.Data[1] != 255 {
		t.Errorf("pixel (0,0): got green=%d, want 255", r.Data[1])
	}
}

func TestLoadFeedsPool(t *testing.T) {
	path := filepath.Join(t.TempDir(), "red.png")
	writeTestPNG(t, path, 3, 2, color.NRGBA{R: 255, A: 255})

	cache := NewCache()
	r, err := cache.Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	pool := imagepool.NewPool()
	h, err := pool.Create(r.Data, r.Size)
	if err != nil {
		t.Fatalf("pool rejected decoded raster: %v", err)
	}
	defer h.Release()

	if h.Image().Size() != (imagepool.Size{Width: 3, Height: 2}) {
		t.Errorf("pooled size: got %v, want 3x2", h.Image().Size())
	}
}

func TestLoadCachesByPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "image.png")
	writeTestPNG(t, path, 1, 1, color.NRGBA{R: 255, A: 255})

	cache := NewCache()
	first, err := cache.Load(path)
	if err != nil {
		t.Fatalf("first Load failed: %v", err)
	}

	// Overwrite the file; a second Load must still serve the cached bytes.
	writeTestPNG(t, path, 1, 1, color.NRGBA{B: 255, A: 255})

	second, err := cache.Load(path)
	if err != nil {
		t.Fatalf("second Load failed: %v", err)
	}
	if !bytes.Equal(first.Data, second.Data) {
		t.Error("second Load should hit the cache, not re-decode")
	}

	cache.Evict(path)
	third, err := cache.Load(path)
	if err != nil {
		t.Fatalf("Load after Evict failed: %v", err)
	}
	if bytes.Equal(first.Data, third.Data) {
		t.Error("Load after Evict should re-decode the changed file")
	}
}

func TestLoadMissingFile(t *testing.T) {
	cache := NewCache()
	if _, err := cache.Load(filepath.Join(t.TempDir(), "missing.png")); err == nil {
		t.Error("Load of a missing file should fail")
	}
}
