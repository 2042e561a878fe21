package imagepool

// Handle is a counted reference to a pooled image. Handles are the sole gate
// through which an image's lifetime is extended: acquiring one (via pool
// creation or Clone) adds a reference, Release drops it. A released handle
// holds nothing; any further use panics.
type Handle struct {
	img *Image
}

func newHandle(img *Image) *Handle {
	img.ref()
	return &Handle{img: img}
}

// Image returns the referenced image.
func (h *Handle) Image() *Image {
	if h.img == nil {
		panic("imagepool: use of released handle")
	}
	return h.img
}

// Clone returns a new handle to the same image, adding one reference.
func (h *Handle) Clone() *Handle {
	return newHandle(h.Image())
}

// Release drops this handle's reference. Exactly one Release per handle;
// releasing twice panics. Dropping the last reference removes the image
// from its pool.
func (h *Handle) Release() {
	if h.img == nil {
		panic("imagepool: double release of handle")
	}
	img := h.img
	h.img = nil
	img.unref()
}

// Same reports whether two handles refer to the same pooled image. This is
// identity, not pixel equality: two images with identical content are still
// distinct.
func (h *Handle) Same(other *Handle) bool {
	return h.Image() == other.Image()
}
