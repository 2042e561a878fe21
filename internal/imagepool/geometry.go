package imagepool

import "fmt"

// Size is a width/height pair in pixels.
type Size struct {
	Width  int
	Height int
}

// Area returns Width * Height.
func (s Size) Area() int {
	return s.Width * s.Height
}

func (s Size) String() string {
	return fmt.Sprintf("%dx%d", s.Width, s.Height)
}

// Point is a 0-based pixel offset into an image.
type Point struct {
	X int
	Y int
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// GridSize is a span of terminal grid cells.
type GridSize struct {
	Columns int
	Rows    int
}

func (g GridSize) String() string {
	return fmt.Sprintf("%dx%d cells", g.Columns, g.Rows)
}

// CellCoord addresses one cell within a grid span, 0-based.
type CellCoord struct {
	Row    int
	Column int
}

// RGB is an 8-bit color triple without alpha, as delivered by upstream
// protocol decoders.
type RGB struct {
	R uint8
	G uint8
	B uint8
}
