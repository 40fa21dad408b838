package setcache

import "reflect"

// Cache is a fixed-capacity, N-way set-associative key/value cache: S
// buckets of N slots each, distributing keys by hash and delegating
// eviction to each bucket's own invalidator. A Cache is not safe for
// concurrent use; callers that share one across goroutines must serialize
// access themselves.
type Cache[K comparable, V any] struct {
	buckets    []bucket[K, V]
	size       int
	hasher     func(K) uint64
	selector   BucketSelector
	valueEqual func(a, b V) bool
	observer   Observer[K, V]
}

func newCache[K comparable, V any](s, n int, hasher func(K) uint64, opts ...Option[K, V]) (*Cache[K, V], error) {
	if s < 1 || n < 1 {
		return nil, ErrInvalidConfig
	}
	cfg := cacheConfig[K, V]{
		selector:   moduloSelector{},
		invFactory: func() Invalidator[K, V] { return NewLRU[K, V]() },
		valueEqual: func(a, b V) bool { return reflect.DeepEqual(a, b) },
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	c := &Cache[K, V]{
		buckets:    make([]bucket[K, V], s),
		hasher:     hasher,
		selector:   cfg.selector,
		valueEqual: cfg.valueEqual,
	}
	for i := range c.buckets {
		c.buckets[i] = newBucket[K, V](n, cfg.invFactory)
	}
	return c, nil
}

// New builds a cache of S buckets by N slots for a Hashable key type,
// using the package's built-in hasher. Construction fails with
// ErrInvalidConfig unless S >= 1 and N >= 1.
func New[K Hashable, V any](s, n int, opts ...Option[K, V]) (*Cache[K, V], error) {
	return newCache[K, V](s, n, HashableHasher[K](), opts...)
}

// NewWithHasher builds a cache for an arbitrary comparable key type, using
// the supplied hash function. Construction fails with ErrInvalidConfig
// unless S >= 1 and N >= 1.
func NewWithHasher[K comparable, V any](s, n int, hasher func(K) uint64, opts ...Option[K, V]) (*Cache[K, V], error) {
	return newCache[K, V](s, n, hasher, opts...)
}

func (c *Cache[K, V]) bucketFor(h uint64) *bucket[K, V] {
	return &c.buckets[c.selector.Select(h, len(c.buckets))]
}

// probeStart returns the slot index a probe of bucket b starts at for hash
// h: h mod N. Hashes are already unsigned throughout this package, so
// there is no sign/overflow case to normalize.
func probeStart[K comparable, V any](b *bucket[K, V], h uint64) int {
	return int(h % uint64(len(b.slots)))
}

// Get returns the value for key and reports whether it was present. On a
// hit it touches the owning bucket's invalidator.
func (c *Cache[K, V]) Get(key K) (V, bool) {
	var zero V
	h := c.hasher(key)
	b := c.bucketFor(h)
	n := len(b.slots)
	start := probeStart(b, h)
	for i := 0; i < n; i++ {
		s := &b.slots[(start+i)%n]
		if s.matches(h, key) {
			b.touch(s)
			c.fire(ActionGet, key, true)
			return s.value, true
		}
	}
	c.fire(ActionGet, key, false)
	return zero, false
}

// ContainsKey reports whether key is present, without touching the
// invalidator: membership tests are side-effect-free and never affect
// eviction order.
func (c *Cache[K, V]) ContainsKey(key K) bool {
	h := c.hasher(key)
	b := c.bucketFor(h)
	n := len(b.slots)
	start := probeStart(b, h)
	for i := 0; i < n; i++ {
		if b.slots[(start+i)%n].matches(h, key) {
			return true
		}
	}
	return false
}

// ContainsValue scans every set slot in every bucket for a value matching
// value, using the cache's value-equality function (WithValueEqual;
// reflect.DeepEqual by default). It never touches the invalidator.
func (c *Cache[K, V]) ContainsValue(value V) bool {
	for bi := range c.buckets {
		slots := c.buckets[bi].slots
		for si := range slots {
			s := &slots[si]
			if s.IsSet() && c.valueEqual(s.value, value) {
				return true
			}
		}
	}
	return false
}

// Put inserts or updates key with value, returning the previous value on
// an update or value itself on an insert. It returns ErrEvictionFailed
// only if the bucket was full and its invalidator failed to free a slot
// even though the bucket reports set slots — a user-supplied invalidator
// violating its own contract; the cache is left unmodified in that case.
func (c *Cache[K, V]) Put(key K, value V) (V, error) {
	h := c.hasher(key)
	b := c.bucketFor(h)
	n := len(b.slots)

	if b.size() == n {
		if !b.invalidate() {
			var zero V
			return zero, ErrEvictionFailed
		}
		c.size--
		var zeroKey K
		c.fire(ActionEvict, zeroKey, true)
	}

	start := probeStart(b, h)
	lastUnset := -1
	for i := 0; i < n; i++ {
		idx := (start + i) % n
		s := &b.slots[idx]
		if s.matches(h, key) {
			b.touch(s)
			old := s.value
			s.setValue(value)
			b.touch(s)
			c.fire(ActionPut, key, true)
			return old, nil
		}
		if !s.IsSet() {
			lastUnset = idx
		}
	}

	// No match: the probe above is guaranteed to have seen at least one
	// unset slot, because either the bucket wasn't full, or it was and the
	// eviction above freed exactly one.
	s := &b.slots[lastUnset]
	s.assign(key, value, h)
	b.touch(s)
	b.sz++
	c.size++
	c.fire(ActionPut, key, false)
	return value, nil
}

// Remove deletes key, returning its value and true, or the zero value and
// false if key was absent. Removing an absent key leaves Size unchanged.
func (c *Cache[K, V]) Remove(key K) (V, bool) {
	var zero V
	h := c.hasher(key)
	b := c.bucketFor(h)
	n := len(b.slots)
	start := probeStart(b, h)
	for i := 0; i < n; i++ {
		s := &b.slots[(start+i)%n]
		if s.matches(h, key) {
			old := s.value
			b.remove(s)
			c.size--
			c.fire(ActionRemove, key, true)
			return old, true
		}
	}
	c.fire(ActionRemove, key, false)
	return zero, false
}

// Clear empties the cache: every slot is unset, every bucket's invalidator
// is reset, and Size becomes 0.
func (c *Cache[K, V]) Clear() {
	for i := range c.buckets {
		c.buckets[i].clear()
	}
	c.size = 0
}

// Size reports the number of live entries across the whole cache.
func (c *Cache[K, V]) Size() int { return c.size }

// IsEmpty reports whether Size() == 0.
func (c *Cache[K, V]) IsEmpty() bool { return c.size == 0 }

// Keys materializes every live key via the iterator.
func (c *Cache[K, V]) Keys() []K {
	out := make([]K, 0, c.size)
	for it := c.Iterator(); it.HasNext(); {
		out = append(out, it.Next().Key())
	}
	return out
}

// Values materializes every live value via the iterator.
func (c *Cache[K, V]) Values() []V {
	out := make([]V, 0, c.size)
	for it := c.Iterator(); it.HasNext(); {
		out = append(out, it.Next().Value())
	}
	return out
}

// Entries materializes a Snapshot of every live entry via the iterator.
func (c *Cache[K, V]) Entries() []Snapshot[K, V] {
	out := make([]Snapshot[K, V], 0, c.size)
	for it := c.Iterator(); it.HasNext(); {
		out = append(out, it.Next())
	}
	return out
}
