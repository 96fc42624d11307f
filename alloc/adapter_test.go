package alloc_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/viccpp/regrow/alloc"
	"github.com/viccpp/regrow/internal/testutil"
)

func TestNewAdapterResolvesCapabilities(t *testing.T) {
	fixed := alloc.NewAdapter(&testutil.Fixed{})
	require.False(t, fixed.Resizable())
	require.False(t, fixed.ReportsGrant())

	rounding := alloc.NewAdapter(&testutil.Rounding{RoundTo: 64})
	require.False(t, rounding.Resizable())
	require.True(t, rounding.ReportsGrant())

	slack := alloc.NewAdapter(&testutil.Slack{Reserve: 256})
	require.True(t, slack.Resizable())
	require.False(t, slack.ReportsGrant())
}

func TestAllocateAtLeastFallsBackToAllocate(t *testing.T) {
	ad := alloc.NewAdapter(&testutil.Fixed{})
	buf, err := ad.AllocateAtLeast(100)
	require.NoError(t, err)
	require.Len(t, buf, 100)
	ad.Deallocate(buf)
}

func TestAllocateAtLeastReportsGrant(t *testing.T) {
	ad := alloc.NewAdapter(&testutil.Rounding{RoundTo: 64})
	buf, err := ad.AllocateAtLeast(100)
	require.NoError(t, err)
	require.Equal(t, 128, len(buf))
	ad.Deallocate(buf)
}

func TestTryExpandUnsupportedIsRefusalNotError(t *testing.T) {
	ad := alloc.NewAdapter(&testutil.Fixed{})
	buf, err := ad.Allocate(64)
	require.NoError(t, err)

	got, ok := ad.TryExpand(buf, 64, 8)
	require.False(t, ok)
	require.Equal(t, 64, len(got), "refusal must leave the block unchanged")
}

func TestTryExpandInPlaceKeepsBaseAddress(t *testing.T) {
	ad := alloc.NewAdapter(&testutil.Slack{Reserve: 256})
	buf, err := ad.Allocate(64)
	require.NoError(t, err)
	base := &buf[0]

	grown, ok := ad.TryExpand(buf, 128, 8)
	require.True(t, ok)
	require.Equal(t, 192, len(grown))
	require.Same(t, base, &grown[0])
}

func TestTryExpandDegradesToLeast(t *testing.T) {
	ad := alloc.NewAdapter(&testutil.Slack{Reserve: 16})
	buf, err := ad.Allocate(64)
	require.NoError(t, err)
	base := &buf[0]

	// Preferred 128 extra bytes exceed the reservation, least 8 does not.
	grown, ok := ad.TryExpand(buf, 128, 8)
	require.True(t, ok)
	require.Equal(t, 72, len(grown))
	require.Same(t, base, &grown[0])

	// Now even the least request exceeds what is left.
	_, ok = ad.TryExpand(grown, 128, 64)
	require.False(t, ok)
}

func TestTryExpandPartialGrantAccepted(t *testing.T) {
	// The allocator grants less than preferred but at least least; the
	// adapter must report success with the granted size, no retry.
	ad := alloc.NewAdapter(&testutil.Grudging{GrowGrant: 40})
	buf, err := ad.Allocate(64)
	require.NoError(t, err)

	grown, ok := ad.TryExpand(buf, 512, 8)
	require.True(t, ok)
	require.Equal(t, 104, len(grown))
}

func TestTryExpandRejectsBadArguments(t *testing.T) {
	ad := alloc.NewAdapter(&testutil.Slack{Reserve: 256})
	buf, err := ad.Allocate(64)
	require.NoError(t, err)

	_, ok := ad.TryExpand(buf, 16, 0)
	require.False(t, ok)
	_, ok = ad.TryExpand(buf, 4, 8)
	require.False(t, ok)
}

func TestTryShrinkInPlace(t *testing.T) {
	ad := alloc.NewAdapter(&testutil.Slack{Reserve: 0})
	buf, err := ad.Allocate(128)
	require.NoError(t, err)
	base := &buf[0]

	shrunk, ok := ad.TryShrink(buf, 48)
	require.True(t, ok)
	require.Equal(t, 80, len(shrunk))
	require.Same(t, base, &shrunk[0])
}

func TestTryShrinkRefusals(t *testing.T) {
	fixed := alloc.NewAdapter(&testutil.Fixed{})
	buf, err := fixed.Allocate(128)
	require.NoError(t, err)
	_, ok := fixed.TryShrink(buf, 48)
	require.False(t, ok, "no resize capability")

	grudging := alloc.NewAdapter(&testutil.Grudging{GrowGrant: 64})
	buf, err = grudging.Allocate(128)
	require.NoError(t, err)
	_, ok = grudging.TryShrink(buf, 48)
	require.False(t, ok, "allocator is free to refuse a shrink")

	slack := alloc.NewAdapter(&testutil.Slack{})
	buf, err = slack.Allocate(128)
	require.NoError(t, err)
	_, ok = slack.TryShrink(buf, 128)
	require.False(t, ok, "shrinking away the whole block is a relocation, not a resize")
	_, ok = slack.TryShrink(buf, 0)
	require.False(t, ok)
}
