package dedup

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTracker_LookupAndTrack(t *testing.T) {
	tr := NewTracker()
	a := []byte{1, 1, 0, 0, 0, 1, 2, 3}
	b := []byte{1, 2, 0, 0, 0, 0, 0, 0, 0}

	_, ok := tr.Lookup(a)
	require.False(t, ok)
	tr.Track(a, 32)
	tr.Track(b, 64)

	off, ok := tr.Lookup(append([]byte(nil), a...))
	require.True(t, ok)
	require.Equal(t, uint32(32), off)

	off, ok = tr.Lookup(b)
	require.True(t, ok)
	require.Equal(t, uint32(64), off)

	require.Equal(t, 2, tr.Hits())
	require.Equal(t, 0, tr.Collisions())
}

func TestTracker_FirstOffsetWins(t *testing.T) {
	tr := NewTracker()
	rec := []byte{0xAA, 0xBB}

	tr.Track(rec, 0)
	tr.Track(rec, 100)

	off, ok := tr.Lookup(rec)
	require.True(t, ok)
	require.Equal(t, uint32(0), off)
	require.Equal(t, 1, tr.Collisions(), "same key tracked twice counts as a shared hash")
}

func TestTracker_Reset(t *testing.T) {
	tr := NewTracker()
	rec := []byte{1, 2, 3}
	tr.Track(rec, 8)
	_, _ = tr.Lookup(rec)

	tr.Reset()

	_, ok := tr.Lookup(rec)
	require.False(t, ok)
	require.Equal(t, 0, tr.Hits())
	require.Equal(t, 0, tr.Collisions())
}
