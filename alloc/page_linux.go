//go:build linux

package alloc

import "golang.org/x/sys/unix"

// TryResize grows or shrinks the mapping in place via mremap. The call omits
// MREMAP_MAYMOVE, so the kernel either extends the mapping at its current
// address or fails; the block never moves. When the preferred size cannot be
// reached the least size is tried before giving up, mirroring how jemalloc's
// xallocx degrades from its extra parameter.
func (p *Page) TryResize(buf []byte, preferred, least int) ([]byte, bool) {
	if len(buf) == 0 || preferred <= 0 {
		return buf, false
	}
	prefSize := p.pageCeil(preferred)
	leastSize := p.pageCeil(least)
	if prefSize == len(buf) {
		// Sub-page shrink or grow that rounds back to the current mapping:
		// nothing the kernel could change, report a refusal.
		return buf, false
	}
	grown, err := unix.Mremap(buf, prefSize, 0)
	if err != nil && leastSize != prefSize && leastSize != len(buf) {
		grown, err = unix.Mremap(buf, leastSize, 0)
	}
	if err != nil {
		return buf, false
	}
	return grown, true
}

var _ Resizer = (*Page)(nil)
