// Package redisloader is a read-through adapter around a *setcache.Cache
// backed by Redis: go-redis/v8 as the primary client, go-redis/v7 as a
// compat client for deployments still migrating off the v7 API, and
// gomodule/redigo as a third, pool-based legacy option.
//
// None of this lives in the setcache core: a durable backing store is an
// external collaborator, not a core responsibility. redisloader only talks
// to the core through its public Get/Put/Remove surface.
package redisloader

import (
	"context"

	"github.com/gomodule/redigo/redis"
	goredisv7 "github.com/go-redis/redis/v7"
	goredisv8 "github.com/go-redis/redis/v8"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/kvassoc/setcache"
)

// ErrMiss is returned by Loader.Load when the backing store has no value
// for the requested key.
var ErrMiss = errors.New("redisloader: key not found in backing store")

// Loader fetches a value for key from a backing store on a local cache
// miss.
type Loader interface {
	Load(ctx context.Context, key string) ([]byte, error)
	Close() error
}

// v8Loader is the primary Loader, backed by github.com/go-redis/redis/v8.
type v8Loader struct {
	client *goredisv8.Client
	log    *zap.Logger
}

// NewV8Loader dials addr with go-redis/v8.
func NewV8Loader(addr string, log *zap.Logger) *v8Loader {
	if log == nil {
		log = zap.NewNop()
	}
	client := goredisv8.NewClient(&goredisv8.Options{Addr: addr})
	log.Info("redisloader: v8 client configured", zap.String("addr", addr))
	return &v8Loader{client: client, log: log}
}

func (l *v8Loader) Load(ctx context.Context, key string) ([]byte, error) {
	b, err := l.client.Get(ctx, key).Bytes()
	if errors.Is(err, goredisv8.Nil) {
		return nil, ErrMiss
	}
	if err != nil {
		return nil, errors.Wrap(err, "redisloader: v8 GET")
	}
	return b, nil
}

func (l *v8Loader) Close() error { return l.client.Close() }

// v7Loader is a compatibility Loader for deployments still running
// go-redis/v7.
type v7Loader struct {
	client *goredisv7.Client
	log    *zap.Logger
}

// NewV7Loader dials addr with go-redis/v7.
func NewV7Loader(addr string, log *zap.Logger) *v7Loader {
	if log == nil {
		log = zap.NewNop()
	}
	client := goredisv7.NewClient(&goredisv7.Options{Addr: addr})
	log.Info("redisloader: v7 compat client configured", zap.String("addr", addr))
	return &v7Loader{client: client, log: log}
}

func (l *v7Loader) Load(_ context.Context, key string) ([]byte, error) {
	b, err := l.client.Get(key).Bytes()
	if errors.Is(err, goredisv7.Nil) {
		return nil, ErrMiss
	}
	if err != nil {
		return nil, errors.Wrap(err, "redisloader: v7 GET")
	}
	return b, nil
}

func (l *v7Loader) Close() error { return l.client.Close() }

// legacyLoader is a pool-based Loader backed by github.com/gomodule/redigo,
// for deployments that never moved off the classic redigo client.
type legacyLoader struct {
	pool *redis.Pool
	log  *zap.Logger
}

// NewLegacyLoader builds a redigo connection pool dialing addr.
func NewLegacyLoader(addr string, log *zap.Logger) *legacyLoader {
	if log == nil {
		log = zap.NewNop()
	}
	pool := &redis.Pool{
		MaxIdle:   8,
		MaxActive: 64,
		Dial: func() (redis.Conn, error) {
			return redis.Dial("tcp", addr)
		},
	}
	log.Info("redisloader: redigo pool configured", zap.String("addr", addr))
	return &legacyLoader{pool: pool, log: log}
}

func (l *legacyLoader) Load(_ context.Context, key string) ([]byte, error) {
	conn := l.pool.Get()
	defer conn.Close()
	b, err := redis.Bytes(conn.Do("GET", key))
	if errors.Is(err, redis.ErrNil) {
		return nil, ErrMiss
	}
	if err != nil {
		return nil, errors.Wrap(err, "redisloader: redigo GET")
	}
	return b, nil
}

func (l *legacyLoader) Close() error { return l.pool.Close() }

// CachingLoader is a read-through layer: Get checks the local cache first
// and only calls the Loader on a miss, populating the cache with whatever
// it finds so the next Get is local.
type CachingLoader struct {
	cache  *setcache.Cache[string, []byte]
	loader Loader
	log    *zap.Logger
}

// New wires cache and loader together. cache is typically constructed with
// setcache.New[string, []byte](s, n, ...).
func New(cache *setcache.Cache[string, []byte], loader Loader, log *zap.Logger) *CachingLoader {
	if log == nil {
		log = zap.NewNop()
	}
	return &CachingLoader{cache: cache, loader: loader, log: log}
}

// Get returns the value for key, reading through to the backing store on a
// local miss and populating the cache with the result. It reports
// (nil, false) if the backing store also has no value.
func (c *CachingLoader) Get(ctx context.Context, key string) ([]byte, bool) {
	if v, ok := c.cache.Get(key); ok {
		return v, true
	}
	v, err := c.loader.Load(ctx, key)
	if err != nil {
		if !errors.Is(err, ErrMiss) {
			c.log.Warn("redisloader: load failed", zap.String("key", key), zap.Error(err))
		}
		return nil, false
	}
	if _, err := c.cache.Put(key, v); err != nil {
		c.log.Warn("redisloader: populate after load failed", zap.String("key", key), zap.Error(err))
	}
	return v, true
}

// Invalidate drops key from the local cache only; it does not delete from
// the backing store.
func (c *CachingLoader) Invalidate(key string) {
	c.cache.Remove(key)
}

// Close releases the underlying Loader's resources.
func (c *CachingLoader) Close() error {
	return c.loader.Close()
}
