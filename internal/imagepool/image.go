package imagepool

import "fmt"

// DropNotifier is informed exactly once when the last handle referencing an
// image is released. The pool installs itself here, so an image can trigger
// its own removal without knowing the pool's concrete type.
type DropNotifier interface {
	ImageDropped(*Image)
}

// Image is one raster image held in host memory: raw RGBA pixels plus
// dimensions. Its lifetime is governed entirely by handles; see Handle.
type Image struct {
	id     ID
	data   []byte
	size   Size
	notify DropNotifier
	refs   int
}

// ID reports the image's pool slot identity.
func (img *Image) ID() ID {
	return img.id
}

// Data returns the backing buffer: RGBA, 4 bytes per pixel, row-major.
// The buffer is not copied; treat it as read-only.
func (img *Image) Data() []byte {
	return img.data
}

// Size returns the image dimensions in pixels.
func (img *Image) Size() Size {
	return img.size
}

// Width returns the image width in pixels.
func (img *Image) Width() int {
	return img.size.Width
}

// Height returns the image height in pixels.
func (img *Image) Height() int {
	return img.size.Height
}

// RefCount reports the number of live handles. Diagnostics only.
func (img *Image) RefCount() int {
	return img.refs
}

func (img *Image) String() string {
	return fmt.Sprintf("Image<%v, size=%v, refs=%d>", img.id, img.size, img.refs)
}

func (img *Image) ref() {
	img.refs++
}

// unref drops one reference. At the transition to zero the drop notifier
// fires exactly once; after that the image is logically destroyed and must
// not be touched again.
func (img *Image) unref() {
	if img.refs == 0 {
		panic("imagepool: unref of image with zero references")
	}
	img.refs--
	if img.refs == 0 && img.notify != nil {
		img.notify.ImageDropped(img)
	}
}
