package setcache

import (
	"container/heap"

	"golang.org/x/exp/constraints"
)

// smallestValueInvalidator evicts the slot holding the minimum current
// value. V must be totally ordered.
type smallestValueInvalidator[K comparable, V constraints.Ordered] struct {
	h     smallestHeap[K, V]
	index map[K]*smallestItem[K, V]
}

type smallestItem[K comparable, V constraints.Ordered] struct {
	entry Entry[K, V]
	idx   int
}

type smallestHeap[K comparable, V constraints.Ordered] []*smallestItem[K, V]

func (h smallestHeap[K, V]) Len() int { return len(h) }
func (h smallestHeap[K, V]) Less(i, j int) bool {
	return h[i].entry.Value() < h[j].entry.Value()
}
func (h smallestHeap[K, V]) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].idx, h[j].idx = i, j
}

func (h *smallestHeap[K, V]) Push(x any) {
	it := x.(*smallestItem[K, V])
	it.idx = len(*h)
	*h = append(*h, it)
}

func (h *smallestHeap[K, V]) Pop() any {
	old := *h
	n := len(old)
	it := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]
	return it
}

// NewSmallestValue builds a smallest-value invalidator: Invalidate evicts
// whichever tracked slot currently holds the minimum value.
func NewSmallestValue[K comparable, V constraints.Ordered]() Invalidator[K, V] {
	return &smallestValueInvalidator[K, V]{index: make(map[K]*smallestItem[K, V])}
}

// Touch re-anchors the slot's heap position on every call: remove then
// reinsert. This strengthens the policy so that an update lowering a value
// is reflected in eviction order immediately, rather than only after an
// explicit remove and re-add.
func (p *smallestValueInvalidator[K, V]) Touch(e Entry[K, V]) {
	key := e.Key()
	if it, ok := p.index[key]; ok {
		heap.Remove(&p.h, it.idx)
		delete(p.index, key)
	}
	it := &smallestItem[K, V]{entry: e}
	heap.Push(&p.h, it)
	p.index[key] = it
}

func (p *smallestValueInvalidator[K, V]) Remove(e Entry[K, V]) {
	key := e.Key()
	it, ok := p.index[key]
	if !ok {
		return
	}
	heap.Remove(&p.h, it.idx)
	delete(p.index, key)
}

func (p *smallestValueInvalidator[K, V]) Invalidate() bool {
	if p.h.Len() == 0 {
		return false
	}
	it, _ := heap.Pop(&p.h).(*smallestItem[K, V])
	delete(p.index, it.entry.Key())
	unsetViaUnwrap[K, V](it.entry)
	return true
}

func (p *smallestValueInvalidator[K, V]) Clear() {
	p.h = nil
	for k := range p.index {
		delete(p.index, k)
	}
}
