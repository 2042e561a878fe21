package imagepool

import "fmt"

// ResizeMode hints how the renderer should fit the image into its cell span.
// The pool only carries the policy; applying it is the renderer's job (see
// the compose package for a CPU reference).
type ResizeMode int

const (
	// NoResize renders the image at its native pixel size.
	NoResize ResizeMode = iota
	// ResizeToFit scales the image, preserving aspect ratio, so it fits
	// entirely within the span.
	ResizeToFit
	// ResizeToFill scales the image, preserving aspect ratio, so it covers
	// the entire span.
	ResizeToFill
	// StretchToFill scales each axis independently to the span's extent.
	StretchToFill
)

func (m ResizeMode) String() string {
	switch m {
	case NoResize:
		return "none"
	case ResizeToFit:
		return "fit"
	case ResizeToFill:
		return "fill"
	case StretchToFill:
		return "stretch"
	default:
		return fmt.Sprintf("ResizeMode(%d)", int(m))
	}
}

// Alignment positions the image inside the cell span when it does not fill
// it. The first word is the vertical anchor, the second the horizontal one.
type Alignment int

const (
	TopStart Alignment = iota
	TopCenter
	TopEnd
	MiddleStart
	MiddleCenter
	MiddleEnd
	BottomStart
	BottomCenter
	BottomEnd
)

func (a Alignment) String() string {
	switch a {
	case TopStart:
		return "top-start"
	case TopCenter:
		return "top-center"
	case TopEnd:
		return "top-end"
	case MiddleStart:
		return "middle-start"
	case MiddleCenter:
		return "middle-center"
	case MiddleEnd:
		return "middle-end"
	case BottomStart:
		return "bottom-start"
	case BottomCenter:
		return "bottom-center"
	case BottomEnd:
		return "bottom-end"
	default:
		return fmt.Sprintf("Alignment(%d)", int(a))
	}
}

// Rasterized describes how one pooled image spreads across a rectangular
// span of grid cells. It computes the per-cell slicing; alignment and resize
// policies are carried as declarative metadata for the renderer.
type Rasterized struct {
	handle    *Handle
	span      GridSize
	alignment Alignment
	resize    ResizeMode
}

// Rasterize binds the image behind h to a cell span. Both span axes must be
// positive. The rasterization takes its own reference; h stays owned by the
// caller.
func Rasterize(h *Handle, span GridSize, alignment Alignment, resize ResizeMode) (*Rasterized, error) {
	if span.Columns <= 0 || span.Rows <= 0 {
		return nil, fmt.Errorf("%w: %v", ErrZeroSpan, span)
	}
	return &Rasterized{
		handle:    h.Clone(),
		span:      span,
		alignment: alignment,
		resize:    resize,
	}, nil
}

// Image returns the source image.
func (r *Rasterized) Image() *Image {
	return r.handle.Image()
}

// Span returns the cell span the image is spread across.
func (r *Rasterized) Span() GridSize {
	return r.span
}

// Alignment returns the alignment policy for the renderer.
func (r *Rasterized) Alignment() Alignment {
	return r.alignment
}

// Resize returns the resize policy for the renderer.
func (r *Rasterized) Resize() ResizeMode {
	return r.resize
}

// CellSize returns the pixel extent one grid cell covers, floor-divided per
// axis. When the image does not divide evenly, the remainder pixels on the
// right and bottom edges are truncated from the fragments.
func (r *Rasterized) CellSize() Size {
	img := r.handle.Image()
	return Size{
		Width:  img.Width() / r.span.Columns,
		Height: img.Height() / r.span.Rows,
	}
}

// Fragment returns the pixel slice assigned to one cell of the span: offset
// (column*cellWidth, row*cellHeight), extent CellSize.
func (r *Rasterized) Fragment(cell CellCoord) (*Fragment, error) {
	if cell.Row < 0 || cell.Row >= r.span.Rows || cell.Column < 0 || cell.Column >= r.span.Columns {
		return nil, fmt.Errorf("%w: cell (row %d, column %d) outside span %v",
			ErrOutOfBounds, cell.Row, cell.Column, r.span)
	}
	cellSize := r.CellSize()
	offset := Point{
		X: cell.Column * cellSize.Width,
		Y: cell.Row * cellSize.Height,
	}
	return NewFragment(r.handle, offset, cellSize)
}

// Release drops the rasterization's reference on its source image.
func (r *Rasterized) Release() {
	r.handle.Release()
}
