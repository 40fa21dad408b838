package setcache

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBucketTouchRemoveInvalidate(t *testing.T) {
	b := newBucket[string, int](2, func() Invalidator[string, int] { return NewLRU[string, int]() })
	assert.Equal(t, 0, b.size())

	b.slots[0].assign("a", 1, 0)
	b.touch(&b.slots[0])
	b.sz++
	assert.Equal(t, 1, b.size())

	b.slots[1].assign("b", 2, 1)
	b.touch(&b.slots[1])
	b.sz++
	assert.Equal(t, 2, b.size())

	b.remove(&b.slots[0])
	assert.Equal(t, 1, b.size())
	assert.False(t, b.slots[0].IsSet())
	assert.True(t, b.slots[1].IsSet())

	require.True(t, b.invalidate())
	assert.Equal(t, 0, b.size())
	assert.False(t, b.slots[1].IsSet())

	assert.False(t, b.invalidate(), "invalidate on an empty bucket must report false")
}

func TestBucketClearResetsInvalidatorToo(t *testing.T) {
	b := newBucket[string, int](2, func() Invalidator[string, int] { return NewLRU[string, int]() })
	b.slots[0].assign("a", 1, 0)
	b.touch(&b.slots[0])
	b.sz++

	b.clear()
	assert.Equal(t, 0, b.size())
	assert.False(t, b.slots[0].IsSet())
	assert.False(t, b.invalidate(), "clear must also reset the invalidator's own membership")
}
