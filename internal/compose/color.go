package compose

import (
	"github.com/lucasb-eyer/go-colorful"

	"github.com/termpix/termpix/internal/imagepool"
)

// AverageColor returns the mean color of a fragment, averaged in linear RGB
// so the result tracks perceived brightness instead of skewing dark the way
// averaging gamma-encoded bytes does. Alpha is ignored. Used by cell-color
// fallback rendering when no graphics protocol is available.
func AverageColor(f *imagepool.Fragment) colorful.Color {
	data := f.Data()
	n := len(data) / 4
	if n == 0 {
		return colorful.Color{}
	}

	var r, g, b float64
	for i := 0; i < len(data); i += 4 {
		c := colorful.Color{
			R: float64(data[i]) / 255,
			G: float64(data[i+1]) / 255,
			B: float64(data[i+2]) / 255,
		}
		lr, lg, lb := c.LinearRgb()
		r += lr
		g += lg
		b += lb
	}

	fn := float64(n)
	return colorful.LinearRgb(r/fn, g/fn, b/fn)
}
