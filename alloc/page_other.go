//go:build !unix

package alloc

// Fallback for platforms without anonymous mmap: Page degrades to Go-heap
// blocks rounded up to whole pages. The at-least grant semantics survive,
// the resize capability does not, and NewAdapter discovers that on its own.

// Allocate obtains a zeroed block of size bytes rounded up to whole pages.
func (p *Page) Allocate(size int) ([]byte, error) {
	if size <= 0 {
		return nil, ErrBadSize
	}
	return make([]byte, p.pageCeil(size)), nil
}

// AllocateAtLeast is identical to Allocate; every grant is already a whole
// number of pages.
func (p *Page) AllocateAtLeast(size int) ([]byte, error) {
	return p.Allocate(size)
}

// Deallocate is a no-op; the garbage collector reclaims the block.
func (p *Page) Deallocate(buf []byte) {}

var _ AtLeastAllocator = (*Page)(nil)
