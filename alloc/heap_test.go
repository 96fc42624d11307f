package alloc

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHeapAllocate(t *testing.T) {
	h := NewHeap()
	buf, err := h.Allocate(100)
	require.NoError(t, err)
	require.Len(t, buf, 100)
	for _, b := range buf {
		require.Zero(t, b)
	}
	h.Deallocate(buf)
}

func TestHeapAllocateBadSize(t *testing.T) {
	h := NewHeap()
	_, err := h.Allocate(0)
	require.ErrorIs(t, err, ErrBadSize)
	_, err = h.AllocateAtLeast(-1)
	require.ErrorIs(t, err, ErrBadSize)
}

func TestHeapAllocateAtLeastExposesSizeClass(t *testing.T) {
	h := NewHeap()
	// 100 bytes lands between runtime size classes, so the grant should be
	// at least the request and is expected to round up past it.
	buf, err := h.AllocateAtLeast(100)
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(buf), 100)
}

func TestHeapCapabilities(t *testing.T) {
	ad := NewAdapter(NewHeap())
	require.True(t, ad.ReportsGrant())
	require.False(t, ad.Resizable(), "the Go heap never resizes in place")
}
