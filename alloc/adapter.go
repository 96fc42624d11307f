package alloc

// Adapter presents a uniform allocation surface over an Allocator whose
// optional capabilities were resolved exactly once at construction. The zero
// value is not usable; build one with NewAdapter.
//
// All sizes are byte counts. Direction rules are enforced here so that
// concrete allocators only have to honor the TryResize contract: a grow
// succeeds only when the result gained at least the requested minimum, a
// shrink only when the result is strictly smaller than before.
type Adapter struct {
	base    Allocator
	atLeast AtLeastAllocator // nil when the allocator lacks AllocateAtLeast
	resizer Resizer          // nil when the allocator lacks TryResize
}

// NewAdapter probes a for the optional capability interfaces and returns an
// adapter bound to the resolved set.
func NewAdapter(a Allocator) Adapter {
	ad := Adapter{base: a}
	if al, ok := a.(AtLeastAllocator); ok {
		ad.atLeast = al
	}
	if r, ok := a.(Resizer); ok {
		ad.resizer = r
	}
	return ad
}

// Resizable reports whether the underlying allocator can attempt in-place
// resizes at all. Callers may use it for reporting; TryExpand and TryShrink
// already degrade to a refusal when it is false.
func (ad Adapter) Resizable() bool { return ad.resizer != nil }

// ReportsGrant reports whether AllocateAtLeast can return more than asked.
func (ad Adapter) ReportsGrant() bool { return ad.atLeast != nil }

// Allocate obtains a block of at least size bytes.
func (ad Adapter) Allocate(size int) ([]byte, error) {
	return ad.base.Allocate(size)
}

// AllocateAtLeast obtains a block and returns the whole grant. When the
// allocator cannot report grants the result is exactly the Allocate result,
// so len(result) == size for well-behaved exact allocators.
func (ad Adapter) AllocateAtLeast(size int) ([]byte, error) {
	if ad.atLeast != nil {
		return ad.atLeast.AllocateAtLeast(size)
	}
	return ad.base.Allocate(size)
}

// TryExpand attempts to grow buf in place by preferredN additional bytes,
// accepting as few as leastN. On success the returned slice shares buf's
// base address and gained at least leastN bytes. ok == false is the normal
// "fall back to relocation" signal and leaves buf untouched.
func (ad Adapter) TryExpand(buf []byte, preferredN, leastN int) ([]byte, bool) {
	if ad.resizer == nil || leastN < 1 || preferredN < leastN {
		return buf, false
	}
	cur := len(buf)
	grown, ok := ad.resizer.TryResize(buf, cur+preferredN, cur+leastN)
	if !ok || len(grown) < cur+leastN {
		return buf, false
	}
	return grown, true
}

// TryShrink attempts to release n trailing bytes of buf in place. Success
// requires the result to be strictly smaller than before; an allocator is
// free to refuse when the achievable reduction is farther from the request
// than relocation would get, and the adapter never second-guesses that.
func (ad Adapter) TryShrink(buf []byte, n int) ([]byte, bool) {
	if ad.resizer == nil || n < 1 || n >= len(buf) {
		return buf, false
	}
	target := len(buf) - n
	shrunk, ok := ad.resizer.TryResize(buf, target, target)
	if !ok || len(shrunk) >= len(buf) {
		return buf, false
	}
	return shrunk, true
}

// Deallocate returns a block to the underlying allocator.
func (ad Adapter) Deallocate(buf []byte) {
	ad.base.Deallocate(buf)
}
