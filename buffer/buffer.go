// Package buffer provides Raw, a typed view over one contiguous allocation
// that can attempt to grow or shrink in place through an allocator's
// capability adapter.
//
// Raw owns its storage exclusively: exactly one owner holds a given block at
// a time, ownership transfers by Swap or Release and never by copying the
// struct. Element liveness is the caller's problem at this layer; Set and
// Clear touch single slots and do not validate state.
//
// Element types must be pointer-free (no pointers, maps, slices, strings,
// channels, funcs or interfaces anywhere inside). Storage may live outside
// the Go heap or in pointerless spans, so the garbage collector never sees
// what is stored there. New rejects offending types with ErrElemPointers.
package buffer

import (
	"math"
	"reflect"
	"unsafe"

	"github.com/viccpp/regrow/alloc"
	"github.com/viccpp/regrow/telemetry"
)

// Raw is a fixed-capacity typed buffer over a single allocation. The zero
// value is an empty buffer without an adapter and is not usable; build one
// with New or NewEmpty.
type Raw[T any] struct {
	ad       alloc.Adapter
	rec      telemetry.Recorder // nil disables collection
	mem      []byte             // granted storage, nil when capacity is 0
	capacity int                // element count, len(mem)/elemSize rounded down
}

// elemSize returns the storage footprint of T. Zero-size types occupy one
// byte each so slots stay addressable.
func elemSize[T any]() int {
	var z T
	if s := int(unsafe.Sizeof(z)); s > 0 {
		return s
	}
	return 1
}

// MaxCapacity returns the largest element count whose byte size still fits
// in an int.
func MaxCapacity[T any]() int {
	return math.MaxInt / elemSize[T]()
}

// New allocates storage for at least capacity elements of T through ad. The
// granted capacity may exceed the request when the allocator reports grants.
// Fails with ErrTooLarge before touching the allocator when capacity exceeds
// MaxCapacity, with ErrElemPointers for pointerful element types, and with
// the allocator's error otherwise.
func New[T any](ad alloc.Adapter, rec telemetry.Recorder, capacity int) (*Raw[T], error) {
	if typeHasPointers(reflect.TypeOf((*T)(nil)).Elem()) {
		return nil, ErrElemPointers
	}
	if capacity < 0 {
		return nil, ErrBadCapacity
	}
	if capacity > MaxCapacity[T]() {
		return nil, ErrTooLarge
	}
	b := &Raw[T]{ad: ad, rec: rec}
	if capacity == 0 {
		return b, nil
	}
	esize := elemSize[T]()
	mem, err := ad.AllocateAtLeast(capacity * esize)
	if err != nil {
		return nil, err
	}
	b.mem = mem
	b.capacity = len(mem) / esize
	return b, nil
}

// NewEmpty returns a capacity-zero buffer bound to ad without allocating.
func NewEmpty[T any](ad alloc.Adapter, rec telemetry.Recorder) *Raw[T] {
	b, _ := New[T](ad, rec, 0)
	if b == nil {
		// Pointerful T; surface the misuse at the first allocation instead.
		b = &Raw[T]{ad: ad, rec: rec}
	}
	return b
}

// Capacity returns the element count the buffer can hold.
func (b *Raw[T]) Capacity() int { return b.capacity }

// Max returns MaxCapacity for the buffer's element type.
func (b *Raw[T]) Max() int { return MaxCapacity[T]() }

// Adapter returns the capability adapter the buffer allocates through.
func (b *Raw[T]) Adapter() alloc.Adapter { return b.ad }

// Recorder returns the telemetry recorder, possibly nil.
func (b *Raw[T]) Recorder() telemetry.Recorder { return b.rec }

// slots returns the typed view over the owned storage.
func (b *Raw[T]) slots() []T {
	return unsafe.Slice((*T)(unsafe.Pointer(unsafe.SliceData(b.mem))), b.capacity)
}

// At returns the address of slot i. The slot may be uninitialized; i must be
// below Capacity.
func (b *Raw[T]) At(i int) *T { return &b.slots()[i] }

// Set constructs slot i with v. The caller guarantees the slot was not live.
func (b *Raw[T]) Set(i int, v T) { b.slots()[i] = v }

// Clear destroys slot i by zeroing it. The caller guarantees the slot was
// live.
func (b *Raw[T]) Clear(i int) {
	var z T
	b.slots()[i] = z
}

// Expand attempts to grow the buffer in place by preferredN more elements,
// accepting as few as leastN (1 <= leastN <= preferredN). On success the
// capacity grows by at least leastN and no element moves; on refusal the
// buffer is untouched and the caller relocates. An empty buffer always
// refuses: there is no block to resize.
func (b *Raw[T]) Expand(preferredN, leastN int) bool {
	if leastN < 1 || preferredN < leastN {
		return false
	}
	if remain := b.Max() - b.capacity; preferredN > remain {
		if leastN > remain {
			return false
		}
		preferredN = remain
	}
	ok := false
	if b.mem != nil {
		esize := elemSize[T]()
		mem, resized := b.ad.TryExpand(b.mem, preferredN*esize, leastN*esize)
		if resized {
			b.mem = mem
			b.capacity = len(mem) / esize
			ok = true
		}
	}
	b.record(ok)
	return ok
}

// Shrink attempts to release n trailing elements in place. Success means the
// capacity got strictly smaller, though possibly by less than n. Shrinking
// to capacity zero is always refused; relocation handles that case.
func (b *Raw[T]) Shrink(n int) bool {
	if n < 1 {
		return false
	}
	ok := false
	if b.mem != nil && n < b.capacity {
		esize := elemSize[T]()
		mem, resized := b.ad.TryShrink(b.mem, n*esize)
		if resized {
			b.mem = mem
			b.capacity = len(mem) / esize
			ok = true
		}
	}
	b.record(ok)
	return ok
}

func (b *Raw[T]) record(success bool) {
	if b.rec != nil {
		b.rec.ResizeAttempt(success)
	}
}

// Swap exchanges the owned storage of two buffers in O(1). Both buffers must
// allocate through the same adapter; nothing else is exchanged.
func (b *Raw[T]) Swap(o *Raw[T]) {
	b.mem, o.mem = o.mem, b.mem
	b.capacity, o.capacity = o.capacity, b.capacity
}

// Release returns the storage to the allocator and leaves the buffer in the
// empty state. Releasing an empty buffer is a no-op.
func (b *Raw[T]) Release() {
	if b.mem == nil {
		return
	}
	b.ad.Deallocate(b.mem)
	b.mem = nil
	b.capacity = 0
}

// typeHasPointers reports whether values of t contain anything the garbage
// collector would need to scan.
func typeHasPointers(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Uintptr, reflect.Float32, reflect.Float64,
		reflect.Complex64, reflect.Complex128:
		return false
	case reflect.Array:
		return typeHasPointers(t.Elem())
	case reflect.Struct:
		for i := 0; i < t.NumField(); i++ {
			if typeHasPointers(t.Field(i).Type) {
				return true
			}
		}
		return false
	default:
		return true
	}
}
