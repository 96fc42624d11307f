package alloc

import "slices"

// Heap allocates from the Go heap. It reports real grants through
// AllocateAtLeast by exposing the runtime's size-class rounding, but has no
// resize capability: the Go heap never grows or shrinks a block in place, so
// clients of a Heap-backed buffer always relocate when they outgrow it.
type Heap struct{}

// NewHeap returns a Go-heap backed allocator.
func NewHeap() Heap { return Heap{} }

// Allocate obtains a zeroed block of exactly size bytes.
//
// Heap exhaustion is not observable here: the Go runtime aborts the process
// rather than failing an allocation, so ErrOutOfMemory is only ever returned
// for invalid sizes by this implementation.
func (Heap) Allocate(size int) ([]byte, error) {
	if size <= 0 {
		return nil, ErrBadSize
	}
	return make([]byte, size), nil
}

// AllocateAtLeast obtains a zeroed block of at least size bytes. The grow
// path of append rounds allocations up to the runtime's size classes and the
// rounding is observable through cap, so the whole class is handed out.
func (Heap) AllocateAtLeast(size int) ([]byte, error) {
	if size <= 0 {
		return nil, ErrBadSize
	}
	buf := slices.Grow([]byte(nil), size)
	return buf[:cap(buf)], nil
}

// Deallocate is a no-op; the garbage collector reclaims the block once the
// caller drops it.
func (Heap) Deallocate(buf []byte) {}

var _ AtLeastAllocator = Heap{}
