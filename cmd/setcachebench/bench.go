package main

import (
	"fmt"
	"math/rand"
	"time"

	"go.uber.org/zap"

	"github.com/kvassoc/setcache"
)

type result struct {
	ops      int
	hits     int
	misses   int
	puts     int
	duration time.Duration
}

// run drives a synthetic get/put workload against c: each operation picks a
// uniformly random key in [0, keySpace); a Get on a miss is followed by a
// Put, the way a read-through cache would behave under load.
func run(c *setcache.Cache[int, int], ops, keySpace int, log *zap.Logger) result {
	r := rand.New(rand.NewSource(1))
	start := time.Now()
	var res result
	for i := 0; i < ops; i++ {
		key := r.Intn(keySpace)
		if _, ok := c.Get(key); ok {
			res.hits++
		} else {
			res.misses++
			if _, err := c.Put(key, key); err != nil {
				log.Warn("put failed", zap.Int("key", key), zap.Error(err))
				continue
			}
			res.puts++
		}
		res.ops++
	}
	res.duration = time.Since(start)
	return res
}

func (r result) String() string {
	hitRate := 0.0
	if r.ops > 0 {
		hitRate = float64(r.hits) / float64(r.ops) * 100
	}
	return fmt.Sprintf("ops=%d hits=%d misses=%d puts=%d hit_rate=%.1f%% elapsed=%s",
		r.ops, r.hits, r.misses, r.puts, hitRate, r.duration)
}

// invalidatorFactory resolves the --policy flag to a concrete Invalidator
// constructor for an int-keyed, int-valued cache, the shape the bench
// command always builds.
func invalidatorFactory(policy string) (func() setcache.Invalidator[int, int], error) {
	switch policy {
	case "lru":
		return func() setcache.Invalidator[int, int] { return setcache.NewLRU[int, int]() }, nil
	case "mru":
		return func() setcache.Invalidator[int, int] { return setcache.NewMRU[int, int]() }, nil
	case "smallest":
		return func() setcache.Invalidator[int, int] { return setcache.NewSmallestValue[int, int]() }, nil
	default:
		return nil, fmt.Errorf("unknown policy %q (want lru, mru, or smallest)", policy)
	}
}
