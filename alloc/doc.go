// Package alloc defines the allocator contract consumed by the buffer and
// array packages, including the optional in-place resize capabilities.
//
// # Overview
//
// Most allocators can only hand out and take back fixed blocks. Some can do
// more: report that they actually granted a larger block than requested, or
// grow/shrink an existing block without moving it. This package models those
// extras as optional capabilities that a client discovers once per allocator
// and then uses without further checks.
//
// # Allocator Interface
//
// The mandatory surface is minimal:
//
//   - Allocate(size): Obtain a block of at least size bytes
//   - Deallocate(buf): Return a block; never fails
//
// Optional capabilities are expressed as wider interfaces:
//
//   - AtLeastAllocator: AllocateAtLeast reports the real granted size
//   - Resizer: TryResize grows or shrinks a block in place
//
// # Capability Adapter
//
// NewAdapter probes an allocator for the optional interfaces exactly once and
// returns an Adapter presenting a uniform surface. Absent capabilities cost
// nothing per call: AllocateAtLeast degrades to Allocate, and TryExpand and
// TryShrink report "unsupported" without touching the allocator.
//
//	ad := alloc.NewAdapter(alloc.NewPage())
//	buf, err := ad.AllocateAtLeast(4096)
//	if err != nil {
//	    return err
//	}
//	if grown, ok := ad.TryExpand(buf, 4096, 512); ok {
//	    buf = grown // same base address, more bytes
//	}
//
// "Unsupported" or "refused" is a normal outcome, not an error. Only the
// mandatory Allocate path fails, and then with ErrOutOfMemory.
//
// # Implementations
//
// Heap: Go-heap backed
//
//   - AllocateAtLeast exposes the runtime's size-class rounding through cap
//   - No resize capability (the Go heap never resizes blocks in place)
//
// Page: anonymous-mmap backed, page granularity
//
//   - Every grant is rounded up to whole pages, so AllocateAtLeast routinely
//     returns more than asked
//   - On Linux, TryResize remaps in place via mremap without MREMAP_MAYMOVE,
//     so a successful resize never moves the block
//   - On other platforms Page still works but drops the capabilities the
//     platform cannot provide
//
// # Storage Caveat
//
// Blocks are plain byte slices. Storage obtained from Page lives outside the
// Go heap and storage from Heap lives in pointer-free spans; neither is
// scanned by the garbage collector. Callers must not store Go pointers in
// these blocks. The buffer package enforces this for its element types.
//
// # Thread Safety
//
// Allocators and Adapters are not synchronized. Callers must serialize access
// externally.
package alloc
