package compose

import (
	"math"

	"github.com/termpix/termpix/internal/imagepool"
)

// Layout returns the pixel size an image of size src scales to under the
// given resize policy, targeting a box of the given size. NoResize keeps the
// source size even when it overflows the box.
func Layout(src, box imagepool.Size, mode imagepool.ResizeMode) imagepool.Size {
	switch mode {
	case imagepool.StretchToFill:
		return box
	case imagepool.ResizeToFit, imagepool.ResizeToFill:
		if src.Width <= 0 || src.Height <= 0 {
			return src
		}
		sx := float64(box.Width) / float64(src.Width)
		sy := float64(box.Height) / float64(src.Height)
		scale := math.Min(sx, sy)
		if mode == imagepool.ResizeToFill {
			scale = math.Max(sx, sy)
		}
		return imagepool.Size{
			Width:  int(math.Round(scale * float64(src.Width))),
			Height: int(math.Round(scale * float64(src.Height))),
		}
	default:
		return src
	}
}

// Origin returns the top-left offset that places an inner rectangle of the
// given size inside box per the alignment policy. Offsets go negative when
// the inner rectangle is larger than the box, which centers or end-aligns
// the overflow the same way.
func Origin(inner, box imagepool.Size, a imagepool.Alignment) imagepool.Point {
	var p imagepool.Point

	switch a % 3 {
	case 0: // start
		p.X = 0
	case 1: // center
		p.X = (box.Width - inner.Width) / 2
	case 2: // end
		p.X = box.Width - inner.Width
	}

	switch a / 3 {
	case 0: // top
		p.Y = 0
	case 1: // middle
		p.Y = (box.Height - inner.Height) / 2
	case 2: // bottom
		p.Y = box.Height - inner.Height
	}

	return p
}
