// Package telemetry provides injectable counters for in-place resize
// observability. Nothing here affects correctness; a nil Recorder simply
// disables collection.
package telemetry

import "sync/atomic"

// Recorder receives the outcome of every in-place resize attempt a buffer
// makes. Implementations must tolerate being shared by several buffers.
type Recorder interface {
	// ResizeAttempt records one expand or shrink attempt and whether the
	// allocator satisfied it in place.
	ResizeAttempt(success bool)
}

// Counters is the standard Recorder: two monotonic counters. Reads are safe
// from a concurrent telemetry sink even though the buffers feeding it are
// single-owner.
type Counters struct {
	attempts  atomic.Uint64
	successes atomic.Uint64
}

// NewCounters returns a zeroed counter set.
func NewCounters() *Counters { return &Counters{} }

// ResizeAttempt implements Recorder.
func (c *Counters) ResizeAttempt(success bool) {
	c.attempts.Add(1)
	if success {
		c.successes.Add(1)
	}
}

// Snapshot returns the number of resize attempts made so far and how many of
// them succeeded in place.
func (c *Counters) Snapshot() (attempts, successes uint64) {
	return c.attempts.Load(), c.successes.Load()
}

var _ Recorder = (*Counters)(nil)
