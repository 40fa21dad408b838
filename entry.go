package setcache

// Entry is the read-only view of a cache slot. Invalidators observe slots
// through this interface; built-in and custom policies alike receive Entry
// values from Touch and Remove.
type Entry[K comparable, V any] interface {
	IsSet() bool
	Key() K
	Value() V
	Hash() uint64
}

// MutableEntry is an Entry that also exposes Unset, the escape hatch an
// invalidator needs to actually free the slot it is tracking. Obtain one
// from Unwrap.
type MutableEntry[K comparable, V any] interface {
	Entry[K, V]
	Unset()
}

// Unwrap recovers the MutableEntry view of e. It fails with ErrUnwrapType
// if e does not implement MutableEntry (for example, a Snapshot returned
// by an iterator, which is intentionally immutable).
func Unwrap[K comparable, V any](e Entry[K, V]) (MutableEntry[K, V], error) {
	if m, ok := e.(MutableEntry[K, V]); ok {
		return m, nil
	}
	return nil, ErrUnwrapType
}

// slot is a pre-allocated cell in a bucket's slot array. Its storage
// identity is stable for the cache's lifetime; only its contents turn
// over. slot implements MutableEntry.
type slot[K comparable, V any] struct {
	set   bool
	key   K
	value V
	hash  uint64
}

func (s *slot[K, V]) IsSet() bool  { return s.set }
func (s *slot[K, V]) Key() K       { return s.key }
func (s *slot[K, V]) Value() V     { return s.value }
func (s *slot[K, V]) Hash() uint64 { return s.hash }

// Unset clears the slot and drops references to its key/value so their
// storage can be reclaimed.
func (s *slot[K, V]) Unset() {
	var zeroK K
	var zeroV V
	s.set, s.key, s.value, s.hash = false, zeroK, zeroV, 0
}

// assign sets all four slot fields atomically with set := true.
func (s *slot[K, V]) assign(key K, value V, hash uint64) {
	s.key, s.value, s.hash, s.set = key, value, hash, true
}

// setValue updates the value only, leaving key/hash/set untouched.
func (s *slot[K, V]) setValue(v V) { s.value = v }

// matches implements the probe equality rule: a slot matches only if it is
// set, its hash matches, and its key compares equal. Go's comparable
// constraint makes key equality a plain ==, which already subsumes the
// physical-identity case for reference-typed keys (a pointer compares ==
// to itself without a method call), so there is no separate identity fast
// path to write.
func (s *slot[K, V]) matches(hash uint64, key K) bool {
	return s.set && s.hash == hash && s.key == key
}

// Snapshot is an immutable copy of a slot's observable state, returned by
// Iterator.Next and by Keys/Values/Entries. A copy is required because the
// bucket may reuse the underlying slot for a new key before the consumer
// is done with this one.
type Snapshot[K comparable, V any] struct {
	set   bool
	key   K
	value V
	hash  uint64
}

func (s Snapshot[K, V]) IsSet() bool  { return s.set }
func (s Snapshot[K, V]) Key() K       { return s.key }
func (s Snapshot[K, V]) Value() V     { return s.value }
func (s Snapshot[K, V]) Hash() uint64 { return s.hash }

func snapshotOf[K comparable, V any](s *slot[K, V]) Snapshot[K, V] {
	return Snapshot[K, V]{set: s.set, key: s.key, value: s.value, hash: s.hash}
}
