package compose

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"github.com/anthonynsimon/bild/blend"
	"github.com/disintegration/imaging"

	"github.com/termpix/termpix/internal/imagepool"
)

// ImageNRGBA wraps a pooled image's pixels as an image.NRGBA without
// copying. The result shares the pool's buffer; treat it as read-only.
func ImageNRGBA(img *imagepool.Image) *image.NRGBA {
	return &image.NRGBA{
		Pix:    img.Data(),
		Stride: img.Width() * 4,
		Rect:   image.Rect(0, 0, img.Width(), img.Height()),
	}
}

// FragmentImage materializes a fragment's pixel slice as an image.NRGBA.
func FragmentImage(f *imagepool.Fragment) *image.NRGBA {
	size := f.Size()
	return &image.NRGBA{
		Pix:    f.Data(),
		Stride: size.Width * 4,
		Rect:   image.Rect(0, 0, size.Width, size.Height),
	}
}

// Materialize applies a rasterization's resize and alignment policies,
// producing the cell span's pixels as they should appear on screen: the
// source scaled per the resize policy, positioned per the alignment policy,
// and flattened over the given background color. cellPx is the pixel size of
// one terminal cell. Parts of the image falling outside the span are
// clipped.
func Materialize(r *imagepool.Rasterized, cellPx imagepool.Size, bg color.Color) (*image.RGBA, error) {
	if cellPx.Width <= 0 || cellPx.Height <= 0 {
		return nil, fmt.Errorf("%w: cell size %v", imagepool.ErrZeroSpan, cellPx)
	}

	span := r.Span()
	box := imagepool.Size{
		Width:  span.Columns * cellPx.Width,
		Height: span.Rows * cellPx.Height,
	}

	src := ImageNRGBA(r.Image())
	target := Layout(r.Image().Size(), box, r.Resize())
	scaled := image.Image(src)
	if target != r.Image().Size() {
		scaled = imaging.Resize(src, target.Width, target.Height, imaging.Lanczos)
	}

	origin := Origin(target, box, r.Alignment())
	overlay := image.NewNRGBA(image.Rect(0, 0, box.Width, box.Height))
	draw.Draw(overlay,
		image.Rect(origin.X, origin.Y, origin.X+target.Width, origin.Y+target.Height),
		scaled, image.Point{}, draw.Src)

	// bild's compositor reads channel bytes as straight alpha and applies
	// the alpha itself, so both canvases go in under RGBA headers; passing
	// the NRGBA values directly would premultiply them first and apply
	// alpha twice.
	background := imaging.New(box.Width, box.Height, bg)
	return blend.Normal(straightRGBA(background), straightRGBA(overlay)), nil
}

// straightRGBA reuses an NRGBA buffer under an RGBA header, byte for byte.
func straightRGBA(img *image.NRGBA) *image.RGBA {
	return &image.RGBA{Pix: img.Pix, Stride: img.Stride, Rect: img.Rect}
}
