// Package imagepool stores raster images in host memory and hands out
// reference-counted handles to them, so that an image's backing buffer stays
// alive exactly as long as anything still refers to it.
//
// Images enter through Pool.Create or Pool.CreateRGB, which return the first
// Handle. Handles are the only way to extend an image's lifetime: each Clone
// adds a reference and each Release drops one. When the last handle is
// released, the pool removes the image from storage, exactly once, and the
// image must not be touched again. The pool never removes an image on its
// own; there is no capacity bound or eviction policy here. Callers wanting
// one must build it as a layer above.
//
// Rasterization maps an image onto a rectangular span of terminal grid
// cells: Rasterize describes the span together with the alignment and resize
// policies the renderer should apply, and Rasterized.Fragment cuts out the
// pixel slice belonging to one cell. Fragments hold their own handle, so a
// fragment in flight to a renderer keeps its source alive even after every
// other handle is gone.
//
// # Coordinate System
//
// All pixel coordinates are 0-based with (0,0) at the top-left corner, X
// increasing rightward and Y increasing downward. Cell coordinates are
// likewise 0-based, addressed as (row, column) within the rasterized span.
//
// # Ownership Rules
//
//   - Every Handle returned by the pool or by Clone must be released exactly
//     once. Releasing twice, or using a handle after releasing it, panics.
//   - Fragment, Rasterized and NamedImage own one reference each; their
//     Release drops it.
//   - Image.Data returns the backing buffer without copying; treat it as
//     read-only.
//
// # Thread Safety
//
// The pool and its handles are not synchronized. Reference counts are plain
// integers, and all operations (create, clone, release, fragment extraction)
// must happen on the single goroutine that owns the pool (typically the
// terminal's render/update loop). Every operation is immediate and
// in-memory; nothing blocks.
//
// # Error Handling
//
// Invalid input (mismatched buffer length, zero cell span, out-of-bounds
// fragment) is reported as an error wrapping ErrSizeMismatch, ErrZeroSpan or
// ErrOutOfBounds, and leaves the pool unchanged. Lifecycle violations
// (releasing below zero, using a released handle, a drop notification for an
// image the pool does not own) indicate a bug in the calling code and panic
// instead of silently corrupting state.
package imagepool
