package setcache

// Iterator walks every live entry of a Cache, bucket by bucket and, within
// each bucket, slot by slot. It is not safe under concurrent mutation of
// the cache it walks — the core is single-mutator.
type Iterator[K comparable, V any] struct {
	c         *Cache[K, V]
	bucketIdx int
	slotIdx   int
}

// Iterator returns a new cursor positioned before the first entry.
func (c *Cache[K, V]) Iterator() *Iterator[K, V] {
	return &Iterator[K, V]{c: c}
}

// HasNext advances past unset slots and exhausted buckets and reports
// whether a set slot remains at or after the cursor.
func (it *Iterator[K, V]) HasNext() bool {
	buckets := it.c.buckets
	for it.bucketIdx < len(buckets) {
		slots := buckets[it.bucketIdx].slots
		for it.slotIdx < len(slots) {
			if slots[it.slotIdx].IsSet() {
				return true
			}
			it.slotIdx++
		}
		it.bucketIdx++
		it.slotIdx = 0
	}
	return false
}

// Next returns a snapshot copy of the current entry and advances past it.
// Calling Next without a preceding true-returning HasNext on an exhausted
// iterator returns a zero Snapshot.
func (it *Iterator[K, V]) Next() Snapshot[K, V] {
	if !it.HasNext() {
		return Snapshot[K, V]{}
	}
	s := &it.c.buckets[it.bucketIdx].slots[it.slotIdx]
	snap := snapshotOf(s)
	it.slotIdx++
	return snap
}
