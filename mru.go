package setcache

// mruInvalidator evicts the most recently touched slot.
// It shares the LRU's doubly-linked-list substrate; only the eviction end
// differs.
type mruInvalidator[K comparable, V any] struct {
	list *dlist[K, V]
}

// NewMRU builds a most-recently-used invalidator.
func NewMRU[K comparable, V any]() Invalidator[K, V] {
	return &mruInvalidator[K, V]{list: newDlist[K, V]()}
}

func (p *mruInvalidator[K, V]) Touch(e Entry[K, V])  { p.list.touch(e) }
func (p *mruInvalidator[K, V]) Remove(e Entry[K, V]) { p.list.remove(e) }

// Invalidate drops the tail of the list: the most recently touched slot.
func (p *mruInvalidator[K, V]) Invalidate() bool { return p.list.evict(p.list.tail) }

func (p *mruInvalidator[K, V]) Clear() { p.list.clear() }
