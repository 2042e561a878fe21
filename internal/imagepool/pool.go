package imagepool

import "fmt"

// ID identifies a pool slot. The generation guards against slot reuse: an ID
// taken from a removed image never matches the slot's next occupant.
type ID struct {
	index      uint32
	generation uint32
}

func (id ID) String() string {
	return fmt.Sprintf("img-%d.%d", id.index, id.generation)
}

type slot struct {
	img        *Image
	generation uint32
}

// Pool owns the canonical storage of all live images, keyed by identity.
// Entries enter through Create/CreateRGB and leave exactly once, through the
// drop-notification path, when their last handle is released. The pool keeps
// no reference of its own and never removes an image that is still
// referenced.
//
// Not synchronized; see the package documentation.
type Pool struct {
	slots []slot
	free  []uint32
	count int
	clock uint64
}

// NewPool creates an empty pool.
func NewPool() *Pool {
	return &Pool{}
}

// Create stores an image given as raw RGBA bytes (4 per pixel, row-major)
// and returns the first handle to it. The pool takes ownership of data; the
// caller must not mutate it afterwards.
func (p *Pool) Create(data []byte, size Size) (*Handle, error) {
	if size.Width < 0 || size.Height < 0 || len(data) != size.Area()*4 {
		return nil, fmt.Errorf("%w: %d bytes for %v RGBA (want %d)",
			ErrSizeMismatch, len(data), size, size.Area()*4)
	}
	img := &Image{data: data, size: size, notify: p}
	img.id = p.place(img)
	p.count++
	return newHandle(img), nil
}

// CreateRGB stores an image given as RGB triples, expanding each color to a
// fully opaque RGBA pixel.
func (p *Pool) CreateRGB(colors []RGB, size Size) (*Handle, error) {
	if size.Width < 0 || size.Height < 0 || len(colors) != size.Area() {
		return nil, fmt.Errorf("%w: %d colors for %v (want %d)",
			ErrSizeMismatch, len(colors), size, size.Area())
	}
	data := make([]byte, 0, len(colors)*4)
	for _, c := range colors {
		data = append(data, c.R, c.G, c.B, 0xFF)
	}
	return p.Create(data, size)
}

// Lookup returns a new handle for the image behind id, or false when the id
// is stale or unknown. Layers that key per-image render state (e.g. a
// texture atlas) use this to detect removed images without holding handles.
func (p *Pool) Lookup(id ID) (*Handle, bool) {
	if int(id.index) >= len(p.slots) {
		return nil, false
	}
	s := p.slots[id.index]
	if s.img == nil || s.generation != id.generation {
		return nil, false
	}
	return newHandle(s.img), true
}

// Count reports the number of live images.
func (p *Pool) Count() int {
	return p.count
}

// NextTimestamp returns a strictly increasing logical timestamp, used to
// order named images by creation.
func (p *Pool) NextTimestamp() uint64 {
	p.clock++
	return p.clock
}

// ImageDropped removes the image from storage. It is the installed drop
// notifier and runs exactly once per image, from the last handle release.
// A notification for an image this pool does not currently own is a
// lifecycle bug and panics.
func (p *Pool) ImageDropped(img *Image) {
	id := img.id
	if int(id.index) >= len(p.slots) || p.slots[id.index].img != img {
		panic("imagepool: drop notification for image not owned by this pool")
	}
	p.slots[id.index].img = nil
	p.slots[id.index].generation++
	p.free = append(p.free, id.index)
	p.count--
}

func (p *Pool) place(img *Image) ID {
	if n := len(p.free); n > 0 {
		idx := p.free[n-1]
		p.free = p.free[:n-1]
		p.slots[idx].img = img
		return ID{index: idx, generation: p.slots[idx].generation}
	}
	p.slots = append(p.slots, slot{img: img})
	return ID{index: uint32(len(p.slots) - 1)}
}
