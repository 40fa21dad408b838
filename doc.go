// Package setcache implements an in-memory, fixed-capacity, N-way
// set-associative key/value cache with a pluggable per-bucket eviction
// policy.
//
// A cache is configured with S sets (buckets) and N entries per set and
// stores at most S*N live entries. Keys are distributed across buckets by
// hash; on bucket overflow the bucket's invalidator decides which entry to
// discard. Three invalidators ship with the package: LRU, MRU, and
// Smallest-Value.
//
// The cache is single-mutator: it performs no internal locking. Callers
// that share a *Cache across goroutines must serialize access themselves.
//
// Basic usage:
//
//	c, err := setcache.New[string, int](16, 4)
//	if err != nil {
//		// S < 1 or N < 1
//	}
//	c.Put("a", 1)
//	v, ok := c.Get("a")
package setcache
