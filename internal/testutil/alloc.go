// Package testutil provides stub allocators with scripted capabilities for
// exercising the capability adapter, buffer and array packages.
package testutil

import "github.com/viccpp/regrow/alloc"

// Fixed is the baseline general-purpose allocator: exact heap blocks and no
// optional capabilities, so every growth of a client buffer relocates.
type Fixed struct {
	Allocs   int // blocks handed out
	Deallocs int // blocks returned
}

func (f *Fixed) Allocate(size int) ([]byte, error) {
	if size <= 0 {
		return nil, alloc.ErrBadSize
	}
	f.Allocs++
	return make([]byte, size), nil
}

func (f *Fixed) Deallocate(buf []byte) { f.Deallocs++ }

// Rounding adds grant reporting to Fixed: AllocateAtLeast rounds the block
// up to a multiple of RoundTo bytes.
type Rounding struct {
	Fixed
	RoundTo int
}

func (r *Rounding) AllocateAtLeast(size int) ([]byte, error) {
	if size <= 0 {
		return nil, alloc.ErrBadSize
	}
	rounded := (size + r.RoundTo - 1) / r.RoundTo * r.RoundTo
	return r.Allocate(rounded)
}

// Slack reserves Reserve spare bytes behind every block and satisfies any
// in-place resize that fits the reservation by reslicing, so the base
// address never changes. Resizes beyond the reservation are refused.
type Slack struct {
	Fixed
	Reserve int
}

func (s *Slack) Allocate(size int) ([]byte, error) {
	if size <= 0 {
		return nil, alloc.ErrBadSize
	}
	s.Allocs++
	return make([]byte, size, size+s.Reserve), nil
}

func (s *Slack) TryResize(buf []byte, preferred, least int) ([]byte, bool) {
	if preferred < len(buf) {
		return buf[:preferred], true
	}
	if preferred <= cap(buf) {
		return buf[:preferred], true
	}
	if least <= cap(buf) {
		return buf[:least], true
	}
	return buf, false
}

// Grudging grants in-place grows of at most GrowGrant bytes regardless of
// what was preferred, clamped to the preferred size, and refuses shrinks
// unless AllowShrink is set. A zero GrowGrant refuses all grows. Blocks
// carry GrowGrant bytes of reservation; once it is spent, further grows are
// refused.
type Grudging struct {
	Fixed
	GrowGrant   int
	AllowShrink bool
}

func (g *Grudging) Allocate(size int) ([]byte, error) {
	if size <= 0 {
		return nil, alloc.ErrBadSize
	}
	g.Allocs++
	return make([]byte, size, size+g.GrowGrant), nil
}

func (g *Grudging) TryResize(buf []byte, preferred, least int) ([]byte, bool) {
	if preferred < len(buf) {
		if !g.AllowShrink {
			return buf, false
		}
		return buf[:preferred], true
	}
	grant := len(buf) + g.GrowGrant
	if grant > cap(buf) {
		grant = cap(buf)
	}
	if grant < least {
		return buf, false
	}
	if grant > preferred {
		grant = preferred
	}
	return buf[:grant], true
}

// OOM fails every allocation with alloc.ErrOutOfMemory.
type OOM struct{}

func (OOM) Allocate(size int) ([]byte, error) { return nil, alloc.ErrOutOfMemory }
func (OOM) Deallocate(buf []byte)             {}

var (
	_ alloc.Allocator        = (*Fixed)(nil)
	_ alloc.AtLeastAllocator = (*Rounding)(nil)
	_ alloc.Resizer          = (*Slack)(nil)
	_ alloc.Resizer          = (*Grudging)(nil)
	_ alloc.Allocator        = OOM{}
)
