package alloc

import "errors"

var (
	// ErrOutOfMemory indicates that a mandatory allocation could not be
	// satisfied. In-place resize refusals are not errors and never carry it.
	ErrOutOfMemory = errors.New("alloc: out of memory")

	// ErrBadSize indicates a non-positive allocation size.
	ErrBadSize = errors.New("alloc: size must be positive")
)
