package setcache

import (
	"strconv"

	"github.com/cespare/xxhash/v2"
	rendezvous "github.com/dgryski/go-rendezvous"
)

// Hashable is the set of key types the package's built-in hasher supports
// directly.
type Hashable interface {
	string | int | int32 | int64 | uint | uint32 | uint64
}

// HashableHasher returns a hash function for any Hashable key type: strings
// hash through xxhash; integer types pass their own bit pattern straight
// through, since bucket/probe selection already folds the result modulo the
// bucket and slot counts.
func HashableHasher[K Hashable]() func(K) uint64 {
	return func(k K) uint64 {
		switch v := any(k).(type) {
		case string:
			return xxhash.Sum64String(v)
		case int:
			return uint64(v)
		case int32:
			return uint64(v)
		case int64:
			return uint64(v)
		case uint:
			return uint64(v)
		case uint32:
			return uint64(v)
		case uint64:
			return v
		default:
			return 0
		}
	}
}

// BucketSelector maps a key's hash to a bucket index in [0, numBuckets).
// The cache's default selector is plain modulo.
type BucketSelector interface {
	Select(hash uint64, numBuckets int) int
}

type moduloSelector struct{}

func (moduloSelector) Select(hash uint64, numBuckets int) int {
	return int(hash % uint64(numBuckets))
}

// RendezvousBucketSelector selects buckets with highest-random-weight
// (rendezvous) hashing over synthetic per-bucket node names. Unlike plain
// modulo, rendezvous hashing keeps most keys mapped to the same bucket when
// the bucket count changes across cache generations, at the cost of an
// O(numBuckets) selection. It is opt-in via WithBucketSelector; it is
// built once for a fixed bucket
// count and ignores the numBuckets argument to Select.
type RendezvousBucketSelector struct {
	r *rendezvous.Rendezvous
}

// NewRendezvousBucketSelector builds a selector for exactly numBuckets
// buckets, named "0".."numBuckets-1".
func NewRendezvousBucketSelector(numBuckets int) *RendezvousBucketSelector {
	nodes := make([]string, numBuckets)
	for i := range nodes {
		nodes[i] = strconv.Itoa(i)
	}
	return &RendezvousBucketSelector{r: rendezvous.New(nodes, xxhash.Sum64String)}
}

// Select implements BucketSelector.
func (s *RendezvousBucketSelector) Select(hash uint64, _ int) int {
	node := s.r.Get(strconv.FormatUint(hash, 10))
	idx, err := strconv.Atoi(node)
	if err != nil {
		return 0
	}
	return idx
}
