package imagepool

import "sort"

// NamedImage associates a protocol-visible name and a creation timestamp
// with a pooled image, keeping the image alive for as long as the name
// exists. Groundwork for name-based upload/render protocols; ordering is the
// only behavior so far.
type NamedImage struct {
	name      string
	createdAt uint64
	handle    *Handle
}

// NewNamedImage binds name to the image behind h, taking its own reference.
// Timestamps come from Pool.NextTimestamp.
func NewNamedImage(name string, createdAt uint64, h *Handle) *NamedImage {
	return &NamedImage{name: name, createdAt: createdAt, handle: h.Clone()}
}

// Name returns the image's protocol name.
func (n *NamedImage) Name() string {
	return n.name
}

// CreatedAt returns the logical creation timestamp.
func (n *NamedImage) CreatedAt() uint64 {
	return n.createdAt
}

// Image returns the underlying pooled image.
func (n *NamedImage) Image() *Image {
	return n.handle.Image()
}

// Release drops the name's reference on its image.
func (n *NamedImage) Release() {
	n.handle.Release()
}

// Less orders named images by creation time, ties broken by name.
func (n *NamedImage) Less(other *NamedImage) bool {
	if n.createdAt != other.createdAt {
		return n.createdAt < other.createdAt
	}
	return n.name < other.name
}

// SortNamedImages sorts images in place by (createdAt, name) ascending.
func SortNamedImages(images []*NamedImage) {
	sort.Slice(images, func(i, j int) bool {
		return images[i].Less(images[j])
	})
}
