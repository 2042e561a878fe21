package imagepool

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCloneAddsReference(t *testing.T) {
	pool := NewPool()
	h, err := pool.Create(patternData(Size{Width: 1, Height: 1}), Size{Width: 1, Height: 1})
	require.NoError(t, err)

	require.Equal(t, 1, h.Image().RefCount())
	c := h.Clone()
	require.Equal(t, 2, h.Image().RefCount())
	require.True(t, c.Same(h))

	c.Release()
	require.Equal(t, 1, h.Image().RefCount())
	h.Release()
}

func TestRefCountTracksLiveHandles(t *testing.T) {
	pool := NewPool()
	h, err := pool.Create(patternData(Size{Width: 2, Height: 1}), Size{Width: 2, Height: 1})
	require.NoError(t, err)

	handles := []*Handle{h}
	for i := 0; i < 4; i++ {
		handles = append(handles, handles[i].Clone())
	}
	require.Equal(t, len(handles), h.Image().RefCount())

	// Release in an arbitrary interleaving; the image survives until the
	// final drop.
	for _, i := range []int{2, 0, 4, 1} {
		handles[i].Release()
		require.Equal(t, 1, pool.Count())
	}
	handles[3].Release()
	require.Equal(t, 0, pool.Count())
}

func TestDoubleReleasePanics(t *testing.T) {
	pool := NewPool()
	h, err := pool.Create(patternData(Size{Width: 1, Height: 1}), Size{Width: 1, Height: 1})
	require.NoError(t, err)

	h.Release()
	require.Panics(t, func() { h.Release() })
}

func TestUseAfterReleasePanics(t *testing.T) {
	pool := NewPool()
	h, err := pool.Create(patternData(Size{Width: 1, Height: 1}), Size{Width: 1, Height: 1})
	require.NoError(t, err)

	h.Release()
	require.Panics(t, func() { _ = h.Image() })
	require.Panics(t, func() { h.Clone() })
}

func TestUnrefBelowZeroPanics(t *testing.T) {
	img := &Image{data: []byte{0, 0, 0, 0}, size: Size{Width: 1, Height: 1}}
	require.Panics(t, func() { img.unref() })
}
