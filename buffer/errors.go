package buffer

import "errors"

var (
	// ErrTooLarge indicates a requested capacity above MaxCapacity for the
	// element type. Detected before any allocation attempt.
	ErrTooLarge = errors.New("buffer: capacity exceeds max for element type")

	// ErrBadCapacity indicates a negative requested capacity.
	ErrBadCapacity = errors.New("buffer: negative capacity")

	// ErrElemPointers indicates an element type containing Go pointers, which
	// cannot live in unscanned storage.
	ErrElemPointers = errors.New("buffer: element type contains pointers")
)
