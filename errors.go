package setcache

import "github.com/pkg/errors"

// ErrInvalidConfig is returned by New when S < 1 or N < 1.
var ErrInvalidConfig = errors.New("setcache: S and N must both be >= 1")

// ErrEvictionFailed is returned by Put when a bucket is full and its
// invalidator reports it could not free a slot, even though the bucket's
// size counter says set slots exist. This means the invalidator violates
// its own contract; the cache is left unmodified when this happens.
var ErrEvictionFailed = errors.New("setcache: invalidator failed to evict from a full bucket")

// ErrUnwrapType is returned by Unwrap when the entry does not implement
// MutableEntry, such as a Snapshot.
var ErrUnwrapType = errors.New("setcache: entry value does not match requested type")
