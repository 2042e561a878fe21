package imagepool

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNamedImageOrdering(t *testing.T) {
	pool := NewPool()
	size := Size{Width: 1, Height: 1}
	h, err := pool.Create(patternData(size), size)
	require.NoError(t, err)
	defer h.Release()

	b5 := NewNamedImage("b", 5, h)
	a10 := NewNamedImage("a", 10, h)
	a5 := NewNamedImage("a", 5, h)
	defer b5.Release()
	defer a10.Release()
	defer a5.Release()

	// Timestamp is the primary key, name only breaks ties.
	require.True(t, b5.Less(a10))
	require.False(t, a10.Less(b5))
	require.True(t, a5.Less(b5))
	require.False(t, b5.Less(a5))
	require.False(t, a5.Less(a5))
}

func TestSortNamedImages(t *testing.T) {
	pool := NewPool()
	size := Size{Width: 1, Height: 1}
	h, err := pool.Create(patternData(size), size)
	require.NoError(t, err)
	defer h.Release()

	images := []*NamedImage{
		NewNamedImage("c", 7, h),
		NewNamedImage("b", 5, h),
		NewNamedImage("a", 10, h),
		NewNamedImage("a", 5, h),
	}
	defer func() {
		for _, n := range images {
			n.Release()
		}
	}()

	SortNamedImages(images)

	var got []string
	for _, n := range images {
		got = append(got, n.Name())
	}
	require.Equal(t, []string{"a", "b", "c", "a"}, got)
}

func TestNamedImageKeepsImageAlive(t *testing.T) {
	pool := NewPool()
	size := Size{Width: 1, Height: 1}
	h, err := pool.Create(patternData(size), size)
	require.NoError(t, err)

	named := NewNamedImage("logo", pool.NextTimestamp(), h)
	h.Release()
	require.Equal(t, 1, pool.Count())
	require.Equal(t, size, named.Image().Size())

	named.Release()
	require.Equal(t, 0, pool.Count())
}
