package setcache

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlotLifecycle(t *testing.T) {
	var s slot[string, int]
	assert.False(t, s.IsSet())

	s.assign("a", 1, 42)
	assert.True(t, s.IsSet())
	assert.Equal(t, "a", s.Key())
	assert.Equal(t, 1, s.Value())
	assert.Equal(t, uint64(42), s.Hash())
	assert.True(t, s.matches(42, "a"))
	assert.False(t, s.matches(43, "a"))
	assert.False(t, s.matches(42, "b"))

	s.setValue(2)
	assert.Equal(t, 2, s.Value())
	assert.Equal(t, "a", s.Key(), "setValue must not touch the key")
	assert.Equal(t, uint64(42), s.Hash(), "setValue must not touch the hash")

	s.Unset()
	assert.False(t, s.IsSet())
	assert.Equal(t, "", s.Key())
	assert.Equal(t, 0, s.Value())
	assert.False(t, s.matches(42, "a"))
}

func TestSnapshotIsImmutableCopy(t *testing.T) {
	var s slot[string, int]
	s.assign("k", 7, 99)
	snap := snapshotOf(&s)

	s.setValue(8)
	assert.Equal(t, 7, snap.Value(), "snapshot must not change when the source slot mutates")
	assert.True(t, snap.IsSet())
	assert.Equal(t, "k", snap.Key())
	assert.Equal(t, uint64(99), snap.Hash())
}

func TestUnwrap(t *testing.T) {
	var s slot[string, int]
	s.assign("k", 1, 1)

	var e Entry[string, int] = &s
	m, err := Unwrap[string, int](e)
	require.NoError(t, err)
	m.Unset()
	assert.False(t, s.IsSet(), "Unset through the unwrapped handle must affect the original slot")

	snap := Snapshot[string, int]{}
	_, err = Unwrap[string, int](snap)
	assert.ErrorIs(t, err, ErrUnwrapType, "Snapshot is deliberately not mutable")
}
