package setcache

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashableHasherIsDeterministic(t *testing.T) {
	h := HashableHasher[string]()
	assert.Equal(t, h("abc"), h("abc"))
	assert.NotEqual(t, h("abc"), h("abd"))

	hi := HashableHasher[int]()
	assert.Equal(t, uint64(42), hi(42))
}

func TestModuloSelectorWrapsIntoRange(t *testing.T) {
	var sel moduloSelector
	for _, h := range []uint64{0, 1, 7, 1 << 40} {
		idx := sel.Select(h, 4)
		assert.GreaterOrEqual(t, idx, 0)
		assert.Less(t, idx, 4)
	}
}

func TestRendezvousBucketSelectorStaysInRange(t *testing.T) {
	sel := NewRendezvousBucketSelector(8)
	h := HashableHasher[string]()
	for _, k := range []string{"a", "b", "c", "some-longer-key", "42"} {
		idx := sel.Select(h(k), 8)
		assert.GreaterOrEqual(t, idx, 0)
		assert.Less(t, idx, 8)
	}
}

func TestRendezvousBucketSelectorIsStableForSameKey(t *testing.T) {
	sel := NewRendezvousBucketSelector(16)
	hash := HashableHasher[string]()("stable-key")
	first := sel.Select(hash, 16)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, sel.Select(hash, 16))
	}
}
