package setcache

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestGenerativeSizeAndIterationAgree runs over a reduced but
// representative range of (S, N) to keep the test fast: for insertion
// count k = S*N*m, iterating the cache yields exactly S*N entries, and Get
// agrees with the iteration's view of the cache.
func TestGenerativeSizeAndIterationAgree(t *testing.T) {
	for _, s := range []int{1, 2, 3, 5} {
		for _, n := range []int{1, 2, 4} {
			for _, m := range []int{1, 3, 10} {
				c, err := New[int, int](s, n)
				require.NoError(t, err)

				k := s * n * m
				for i := 1; i <= k; i++ {
					_, err := c.Put(i, i)
					require.NoError(t, err)
				}

				assert.Equal(t, s*n, c.Size(), "S=%d N=%d m=%d", s, n, m)

				fromIter := map[int]int{}
				for it := c.Iterator(); it.HasNext(); {
					e := it.Next()
					fromIter[e.Key()] = e.Value()
				}
				assert.Len(t, fromIter, s*n)

				for key, val := range fromIter {
					got, ok := c.Get(key)
					require.True(t, ok)
					assert.Equal(t, val, got)
					assert.Equal(t, key, val, "every value was inserted equal to its key")
				}
			}
		}
	}
}

// TestInvariantsHoldAfterMixedOperations checks I1-I3 directly against
// internal bucket/slot state after an interleaving of put/get/remove.
func TestInvariantsHoldAfterMixedOperations(t *testing.T) {
	c, err := New[int, int](4, 3)
	require.NoError(t, err)

	ops := []struct {
		remove bool
		key    int
	}{
		{false, 1}, {false, 2}, {false, 3}, {false, 4}, {false, 5},
		{true, 2}, {false, 6}, {false, 7}, {true, 100}, {false, 8},
	}
	for _, op := range ops {
		if op.remove {
			c.Remove(op.key)
		} else {
			_, err := c.Put(op.key, op.key*10)
			require.NoError(t, err)
		}
		assertInvariants(t, c)
	}
}

func assertInvariants[K comparable, V any](t *testing.T, c *Cache[K, V]) {
	t.Helper()
	total := 0
	for bi := range c.buckets {
		b := &c.buckets[bi]
		assert.GreaterOrEqual(t, b.size(), 0)
		assert.LessOrEqual(t, b.size(), len(b.slots))

		counted := 0
		for si := range b.slots {
			s := &b.slots[si]
			if s.IsSet() {
				counted++
				h := c.hasher(s.key)
				assert.Equal(t, bi, c.selector.Select(h, len(c.buckets)), "slot's key must map to its own bucket")
			}
		}
		assert.Equal(t, b.size(), counted, "bucket.size must equal its set slot count")
		total += b.size()
	}
	assert.Equal(t, c.Size(), total, "cache.size must equal the sum of bucket sizes")
}
