package compose

import (
	"image"

	"github.com/termpix/termpix/internal/imagepool"
)

// Assemble paints every fragment of a rasterization into one image at its
// cell position, reconstructing exactly what a renderer would upload cell by
// cell. For an image that divides evenly into the span this reproduces the
// source byte for byte; otherwise the truncated edge pixels are missing.
//
// Rows are copied directly rather than drawn, so non-premultiplied pixel
// bytes survive untouched.
func Assemble(r *imagepool.Rasterized) (*image.NRGBA, error) {
	cell := r.CellSize()
	span := r.Span()
	out := image.NewNRGBA(image.Rect(0, 0, span.Columns*cell.Width, span.Rows*cell.Height))

	for row := 0; row < span.Rows; row++ {
		for col := 0; col < span.Columns; col++ {
			frag, err := r.Fragment(imagepool.CellCoord{Row: row, Column: col})
			if err != nil {
				return nil, err
			}
			data := frag.Data()
			frag.Release()

			for y := 0; y < cell.Height; y++ {
				dst := out.PixOffset(col*cell.Width, row*cell.Height+y)
				copy(out.Pix[dst:dst+cell.Width*4], data[y*cell.Width*4:])
			}
		}
	}

	return out, nil
}
