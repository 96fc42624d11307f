//go:build linux

package alloc

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPageTryResizeShrinkInPlace(t *testing.T) {
	p := NewPage()
	buf, err := p.Allocate(4 * p.PageSize())
	require.NoError(t, err)
	base := &buf[0]

	target := 2 * p.PageSize()
	shrunk, ok := p.TryResize(buf, target, target)
	require.True(t, ok, "releasing trailing pages never needs to move the mapping")
	require.Equal(t, target, len(shrunk))
	require.Same(t, base, &shrunk[0])
	p.Deallocate(shrunk)
}

func TestPageTryResizeGrowNeverMoves(t *testing.T) {
	p := NewPage()
	buf, err := p.Allocate(p.PageSize())
	require.NoError(t, err)
	base := &buf[0]

	// Whether the kernel can extend the mapping depends on the address
	// space around it; both outcomes are valid, moving is not.
	grown, ok := p.TryResize(buf, 2*p.PageSize(), p.PageSize()+1)
	if ok {
		require.Equal(t, 2*p.PageSize(), len(grown))
		require.Same(t, base, &grown[0])
		grown[len(grown)-1] = 0xff
		p.Deallocate(grown)
	} else {
		require.Same(t, base, &buf[0])
		p.Deallocate(buf)
	}
}

func TestPageTryResizeSubPageIsRefused(t *testing.T) {
	p := NewPage()
	buf, err := p.Allocate(2 * p.PageSize())
	require.NoError(t, err)
	defer p.Deallocate(buf)

	// Shrinking by less than a page rounds back to the current mapping.
	target := 2*p.PageSize() - 100
	_, ok := p.TryResize(buf, target, target)
	require.False(t, ok)
}

func TestPageResolvedAsResizer(t *testing.T) {
	ad := NewAdapter(NewPage())
	require.True(t, ad.Resizable())
	require.True(t, ad.ReportsGrant())
}
