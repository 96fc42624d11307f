package telemetry

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCountersSnapshot(t *testing.T) {
	c := NewCounters()
	attempts, successes := c.Snapshot()
	require.Zero(t, attempts)
	require.Zero(t, successes)

	c.ResizeAttempt(true)
	c.ResizeAttempt(false)
	c.ResizeAttempt(true)

	attempts, successes = c.Snapshot()
	require.Equal(t, uint64(3), attempts)
	require.Equal(t, uint64(2), successes)
}
