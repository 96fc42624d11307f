package alloc

// Allocator is the mandatory surface every allocator provides.
//
// Implementations:
//   - Heap: Go-heap backed, never resizes in place
//   - Page: anonymous-mmap backed, resizes in place on Linux
//
// Optional capabilities are modeled as the wider AtLeastAllocator and
// Resizer interfaces and discovered once by NewAdapter.
type Allocator interface {
	// Allocate obtains a block of at least size bytes. The returned slice's
	// length is the granted size and may exceed size (Page rounds up to whole
	// pages). Fails with ErrOutOfMemory when the block cannot be provided.
	Allocate(size int) ([]byte, error)

	// Deallocate returns a block previously obtained from this allocator,
	// possibly resized by TryResize since. Never fails. The slice must be the
	// most recent one returned for the block, not a sub-slice of it.
	Deallocate(buf []byte)
}

// AtLeastAllocator is implemented by allocators that can report having
// granted a larger block than requested.
type AtLeastAllocator interface {
	Allocator

	// AllocateAtLeast obtains a block of at least size bytes and returns the
	// whole grant, so len(result) >= size. Fails with ErrOutOfMemory.
	AllocateAtLeast(size int) ([]byte, error)
}

// Resizer is implemented by allocators that can grow or shrink an existing
// block without moving it.
type Resizer interface {
	Allocator

	// TryResize attempts to resize buf in place to preferred bytes, accepting
	// any outcome of at least least bytes when growing (least <= preferred)
	// or exactly the requested direction when shrinking (least == preferred
	// < len(buf)). On success the returned slice shares buf's base address
	// and its length is the new granted size. ok == false means the resize is
	// unsupported or was refused; buf is untouched and remains valid. A
	// refusal is a normal outcome, never an error, and an allocator may
	// refuse even when an in-place result would be technically possible.
	TryResize(buf []byte, preferred, least int) ([]byte, bool)
}
