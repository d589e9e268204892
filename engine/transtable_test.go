package engine

import (
	"testing"

	"github.com/stretchr/testify/require"

	c "github.com/eclypse-prime/pijersi-rs/common"
)

func TestTransTableStoreProbeRoundTrip(t *testing.T) {
	tt := NewTransTable(1)
	move := c.NewMove(3, c.ViaNone, 10)

	tt.Store(0x1234, move, -77, 5, BoundExact)

	got, score, depth, bound, ok := tt.Probe(0x1234)
	require.True(t, ok)
	require.Equal(t, move, got)
	require.Equal(t, -77, score)
	require.Equal(t, 5, depth)
	require.Equal(t, BoundExact, bound)
}

func TestTransTableMissOnUnknownHash(t *testing.T) {
	tt := NewTransTable(1)
	_, _, _, _, ok := tt.Probe(0xDEADBEEF)
	require.False(t, ok)
}

func TestTransTableClear(t *testing.T) {
	tt := NewTransTable(1)
	tt.Store(7, c.NewMove(1, c.ViaNone, 2), 10, 1, BoundLower)
	tt.Clear()
	_, _, _, _, ok := tt.Probe(7)
	require.False(t, ok)
}
