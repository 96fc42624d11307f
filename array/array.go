// Package array provides Array, a growable contiguous container that avoids
// moving its elements whenever the underlying allocator can resize its block
// in place.
//
// Every growth or shrink runs in two phases: first an in-place resize
// attempt through the buffer, then, only when the allocator refuses, a
// relocation into a freshly allocated buffer. Refusals are recovered locally
// and never surface to the caller; Append and ShrinkToFit either succeed
// transparently or fail with an allocation or length error.
//
// An Array owns its storage exclusively and is single-owner: callers wrap it
// in their own synchronization if they share it.
package array

import (
	"errors"

	"github.com/viccpp/regrow/alloc"
	"github.com/viccpp/regrow/buffer"
	"github.com/viccpp/regrow/telemetry"
)

// ErrEmpty indicates PopBack on a zero-length array.
var ErrEmpty = errors.New("array: empty")

// Array is a growable contiguous container over a raw buffer. Elements below
// Len are live; the remaining capacity is reserved uninitialized storage.
type Array[T any] struct {
	buf    *buffer.Raw[T]
	length int
}

// New returns an empty array allocating through a, with no storage reserved
// and no telemetry.
func New[T any](a alloc.Allocator) *Array[T] {
	return NewRecorded[T](a, nil)
}

// NewRecorded returns an empty array whose resize attempts are reported to
// rec. A nil rec disables collection.
func NewRecorded[T any](a alloc.Allocator, rec telemetry.Recorder) *Array[T] {
	return &Array[T]{buf: buffer.NewEmpty[T](alloc.NewAdapter(a), rec)}
}

// NewWithLen returns an array of n zero-value elements. The granted capacity
// may exceed n when the allocator reports grants.
func NewWithLen[T any](a alloc.Allocator, rec telemetry.Recorder, n int) (*Array[T], error) {
	buf, err := buffer.New[T](alloc.NewAdapter(a), rec, n)
	if err != nil {
		return nil, err
	}
	arr := &Array[T]{buf: buf, length: n}
	for i := 0; i < n; i++ {
		buf.Clear(i)
	}
	return arr, nil
}

// Len returns the number of live elements.
func (a *Array[T]) Len() int { return a.length }

// Cap returns the current element capacity.
func (a *Array[T]) Cap() int { return a.buf.Capacity() }

// MaxLen returns the largest length the element type permits.
func (a *Array[T]) MaxLen() int { return a.buf.Max() }

// Empty reports whether the array has no live elements.
func (a *Array[T]) Empty() bool { return a.length == 0 }

// At returns the address of live element i; i must be below Len. The address
// stays valid until the next Append or ShrinkToFit, either of which may
// relocate the elements.
func (a *Array[T]) At(i int) *T {
	if i < 0 || i >= a.length {
		panic("array: index out of range")
	}
	return a.buf.At(i)
}

// Append adds v at the end. With spare capacity this is a plain O(1) store.
// At full capacity the growth policy picks the preferred extra capacity and
// the buffer first attempts an in-place expand, which leaves every element
// at its address; only a refusal triggers relocation. Fails with
// buffer.ErrTooLarge when growth would pass MaxLen and with the allocator's
// error when the relocation target cannot be allocated.
func (a *Array[T]) Append(v T) error {
	if a.length == a.buf.Capacity() {
		add, err := a.additionalCapacity(1)
		if err != nil {
			return err
		}
		if !a.buf.Expand(add, 1) {
			nb, err := buffer.New[T](a.buf.Adapter(), a.buf.Recorder(), a.length+add)
			if err != nil {
				return err
			}
			a.relocate(nb)
		}
	}
	a.buf.Set(a.length, v)
	a.length++
	return nil
}

// PopBack destroys the last element. Capacity is untouched; only an explicit
// ShrinkToFit gives storage back.
func (a *Array[T]) PopBack() error {
	if a.length == 0 {
		return ErrEmpty
	}
	a.length--
	a.buf.Clear(a.length)
	return nil
}

// Clear destroys all live elements, keeping the capacity.
func (a *Array[T]) Clear() {
	for a.length > 0 {
		a.length--
		a.buf.Clear(a.length)
	}
}

// ShrinkToFit reduces capacity toward Len. An in-place shrink keeps every
// element at its address and may legitimately stop short of the request;
// when the allocator refuses entirely, the elements relocate into a buffer
// of exactly Len elements. A full array is a no-op.
func (a *Array[T]) ShrinkToFit() error {
	spare := a.buf.Capacity() - a.length
	if spare == 0 {
		return nil
	}
	if a.buf.Shrink(spare) {
		return nil
	}
	nb, err := buffer.New[T](a.buf.Adapter(), a.buf.Recorder(), a.length)
	if err != nil {
		return err
	}
	a.relocate(nb)
	return nil
}

// Release destroys all live elements and returns the storage.
func (a *Array[T]) Release() {
	a.Clear()
	a.buf.Release()
}

// additionalCapacity computes how much extra capacity to request when n more
// slots are needed: double the current capacity (or n from zero), capped at
// what MaxLen still allows.
func (a *Array[T]) additionalCapacity(n int) (int, error) {
	cap := a.buf.Capacity()
	remain := a.buf.Max() - cap
	if n > remain {
		return 0, buffer.ErrTooLarge
	}
	if cap == 0 {
		cap = n
	}
	return min(cap, remain), nil
}

// relocate moves the live elements into nb in index order, swaps it into
// place and releases the old storage. Element assignment in Go cannot fail
// mid-move, so unlike containers of throwing-move types there is no partially
// moved state to account for.
func (a *Array[T]) relocate(nb *buffer.Raw[T]) {
	for i := 0; i < a.length; i++ {
		nb.Set(i, *a.buf.At(i))
		a.buf.Clear(i)
	}
	a.buf.Swap(nb)
	nb.Release()
}
