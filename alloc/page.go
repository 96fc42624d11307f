package alloc

import "os"

// Page allocates anonymous memory in whole pages, outside the Go heap.
// Grants are always rounded up to the page size, so AllocateAtLeast
// routinely returns more than asked. On Linux, Page additionally implements
// Resizer by remapping in place; a successful resize never moves the block.
//
// Page storage is not scanned by the garbage collector. Callers must not
// store Go pointers in it.
type Page struct {
	pageSize int
}

// NewPage returns a page-granular allocator.
func NewPage() *Page {
	return &Page{pageSize: os.Getpagesize()}
}

// PageSize returns the grant granularity in bytes.
func (p *Page) PageSize() int { return p.pageSize }

// pageCeil rounds size up to a whole number of pages.
func (p *Page) pageCeil(size int) int {
	return (size + p.pageSize - 1) / p.pageSize * p.pageSize
}
