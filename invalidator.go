package setcache

// Invalidator is the per-bucket eviction policy contract. Each bucket owns
// exactly one Invalidator, created once at construction by the cache's
// invalidator factory; invalidators never share state across buckets.
//
// touch records that e is newly the most-relevant candidate under the
// policy; repeated touches of the same slot update its ordering rather than
// duplicating membership. remove drops e from the index if present and is a
// no-op otherwise. Invalidate, if the index is non-empty, picks one slot per
// the policy, calls Unset on it (via Unwrap), drops it from the index, and
// reports true; otherwise it reports false.
//
// Clear resets the invalidator to empty in one call, without a Remove per
// member. It exists so Cache.Clear can reset each bucket's invalidator
// together with its slots: the slot table and the invalidator's own
// membership must be reset in the same step, or a later touch of a
// previously-held key could observe stale bookkeeping. Built-in policies
// implement it by emptying their index.
type Invalidator[K comparable, V any] interface {
	Touch(e Entry[K, V])
	Remove(e Entry[K, V])
	Invalidate() bool
	Clear()
}

// unsetViaUnwrap is the common "evict this entry" step shared by all three
// built-in invalidators: recover mutation rights through Unwrap and clear
// the slot. It always succeeds for entries that originated from this
// package's own bucket, which is the only kind built-in invalidators ever
// see.
func unsetViaUnwrap[K comparable, V any](e Entry[K, V]) {
	if m, err := Unwrap[K, V](e); err == nil {
		m.Unset()
	}
}
