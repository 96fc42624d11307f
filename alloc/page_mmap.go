//go:build unix

package alloc

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// Allocate maps a zeroed anonymous region of at least size bytes, rounded up
// to whole pages. The full mapping is returned so Deallocate can unmap it.
func (p *Page) Allocate(size int) ([]byte, error) {
	if size <= 0 {
		return nil, ErrBadSize
	}
	buf, err := unix.Mmap(-1, 0, p.pageCeil(size),
		unix.PROT_READ|unix.PROT_WRITE, unix.MAP_PRIVATE|unix.MAP_ANON)
	if err != nil {
		return nil, fmt.Errorf("%w: mmap %d bytes: %v", ErrOutOfMemory, size, err)
	}
	return buf, nil
}

// AllocateAtLeast is identical to Allocate; every grant is already a whole
// number of pages.
func (p *Page) AllocateAtLeast(size int) ([]byte, error) {
	return p.Allocate(size)
}

// Deallocate unmaps the block. buf must be the most recent slice returned by
// Allocate or TryResize for this block.
func (p *Page) Deallocate(buf []byte) {
	if len(buf) == 0 {
		return
	}
	// Munmap failing here would mean the slice is not a live mapping, which
	// is a caller contract violation; there is no way to report it from a
	// no-fail operation, so the address space is left as is.
	_ = unix.Munmap(buf)
}

var _ AtLeastAllocator = (*Page)(nil)
