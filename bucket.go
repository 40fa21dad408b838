package setcache

// bucket is a fixed array of N entry slots plus one embedded invalidator
// and a live-entry counter. Its slot array is allocated
// once, at cache construction, and never resized.
type bucket[K comparable, V any] struct {
	slots []slot[K, V]
	inv   Invalidator[K, V]
	sz    int
}

func newBucket[K comparable, V any](n int, factory func() Invalidator[K, V]) bucket[K, V] {
	return bucket[K, V]{slots: make([]slot[K, V], n), inv: factory()}
}

func (b *bucket[K, V]) size() int { return b.sz }

// touch informs the invalidator of recent use or first use.
func (b *bucket[K, V]) touch(s *slot[K, V]) { b.inv.Touch(s) }

// remove drops s from the invalidator, unsets it, and decrements size.
func (b *bucket[K, V]) remove(s *slot[K, V]) {
	b.inv.Remove(s)
	s.Unset()
	b.sz--
}

// invalidate asks the invalidator to pick and unset one set slot. If it
// does, size is decremented and invalidate reports true; otherwise false.
func (b *bucket[K, V]) invalidate() bool {
	if b.inv.Invalidate() {
		b.sz--
		return true
	}
	return false
}

// clear unsets every slot and resets both the size counter and the
// invalidator's own membership, so a subsequent touch never observes stale
// bookkeeping from before the clear.
func (b *bucket[K, V]) clear() {
	for i := range b.slots {
		b.slots[i].Unset()
	}
	b.sz = 0
	b.inv.Clear()
}
