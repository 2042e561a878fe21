package imagepool

import "fmt"

// Fragment is a rectangular view into a pooled image, sized for one grid
// cell. It holds its own handle, so the source stays alive while the
// fragment is in flight to a renderer.
type Fragment struct {
	handle *Handle
	offset Point
	size   Size
}

// NewFragment cuts a fragment out of the image behind h. The rectangle must
// lie fully within the image. The fragment takes its own reference; h stays
// owned by the caller.
func NewFragment(h *Handle, offset Point, size Size) (*Fragment, error) {
	img := h.Image()
	if offset.X < 0 || offset.Y < 0 || size.Width < 0 || size.Height < 0 ||
		offset.X+size.Width > img.Width() || offset.Y+size.Height > img.Height() {
		return nil, fmt.Errorf("%w: fragment %v at %v exceeds image %v",
			ErrOutOfBounds, size, offset, img.Size())
	}
	return &Fragment{handle: h.Clone(), offset: offset, size: size}, nil
}

// Image returns the source image.
func (f *Fragment) Image() *Image {
	return f.handle.Image()
}

// Offset returns the fragment's pixel offset into the source image.
func (f *Fragment) Offset() Point {
	return f.offset
}

// Size returns the fragment's extent in pixels.
func (f *Fragment) Size() Size {
	return f.size
}

// Data materializes the fragment's pixels into a new buffer, copied row by
// row. Source rows advance by the image width, destination rows by the
// fragment width; the two differ whenever the fragment spans less than a
// full source row.
func (f *Fragment) Data() []byte {
	img := f.handle.Image()
	src := img.Data()
	out := make([]byte, 0, f.size.Area()*4)
	for y := 0; y < f.size.Height; y++ {
		start := ((f.offset.Y+y)*img.Width() + f.offset.X) * 4
		out = append(out, src[start:start+f.size.Width*4]...)
	}
	return out
}

// Release drops the fragment's reference on its source image.
func (f *Fragment) Release() {
	f.handle.Release()
}

func (f *Fragment) String() string {
	return fmt.Sprintf("Fragment<%v, offset=%v, size=%v>", f.handle.Image(), f.offset, f.size)
}
