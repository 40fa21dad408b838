package setcache

// Action identifies which cache operation produced an Event.
type Action int

const (
	ActionGet Action = iota + 1
	ActionPut
	ActionRemove
	// ActionEvict fires when a Put had to evict a slot to make room. It
	// carries the zero value of K rather than the evicted key: the cache
	// only knows a bucket's invalidator reported an eviction, not which
	// slot it chose — that is deliberately private to the invalidator, so
	// policies can manage membership however they like internally.
	ActionEvict
)

// Observer receives a notification after a cache operation completes. For
// ActionGet/ActionRemove, hit reports whether the key was present.  For
// ActionPut, hit reports whether the key already existed (update) versus
// was newly inserted. For ActionEvict, hit is always true and key is the
// zero value of K.
//
// This exists purely as an extension point for cross-cutting observation
// (see the setcachestats package) — it has no influence on cache
// semantics; it is the hook an external exporter subscribes to.
type Observer[K comparable, V any] func(action Action, key K, hit bool)

// Inspect registers obs to run after every Get, Put, Remove and eviction,
// in addition to any previously registered observer (old first, new
// second). ContainsKey, ContainsValue and Clear fire no event.
func (c *Cache[K, V]) Inspect(obs Observer[K, V]) {
	prev := c.observer
	c.observer = func(a Action, k K, hit bool) {
		if prev != nil {
			prev(a, k, hit)
		}
		obs(a, k, hit)
	}
}

func (c *Cache[K, V]) fire(a Action, k K, hit bool) {
	if c.observer != nil {
		c.observer(a, k, hit)
	}
}
