// Package compose is the reference consumer of the pool's declarative
// rendering metadata. Where imagepool only computes slicing and carries the
// alignment and resize policies along, compose actually applies them on the
// CPU: it scales an image into its cell span, positions it per its
// alignment, flattens it over a background color, and can reassemble the
// per-cell fragments into one picture.
//
// A GPU renderer would do this work in its texture pipeline; compose exists
// for terminal fallback paths, for tooling, and for testing the slicing
// arithmetic end to end.
//
// # Pixel Format
//
// Pooled images hold non-premultiplied RGBA bytes, so conversions in this
// package go through image.NRGBA. Flattened output is fully opaque.
package compose
