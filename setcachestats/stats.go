// Package setcachestats exports Prometheus counters and gauges for a
// setcache.Cache by subscribing to its Inspect hook. It never touches cache
// internals directly; everything here is driven off the Action/Observer
// events the core already fires on every Get/Put/Remove.
package setcachestats

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/kvassoc/setcache"
)

// Metrics holds the counters and gauge a Collector registers and updates.
// Construct it once per registry via NewMetrics; every series carries a
// "cache" label, so several caches can share one Metrics set, each attached
// through its own named Collector.
type Metrics struct {
	Hits    *prometheus.CounterVec
	Misses  *prometheus.CounterVec
	Puts    *prometheus.CounterVec
	Evicts  *prometheus.CounterVec
	Removes *prometheus.CounterVec
	Size    *prometheus.GaugeVec
}

// NewMetrics registers a fresh Metrics set against reg. Pass
// prometheus.DefaultRegisterer to use the global registry.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	labels := []string{"cache"}
	return &Metrics{
		Hits: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: "setcache",
			Name:      "hits_total",
			Help:      "Number of Get calls that found the key.",
		}, labels),
		Misses: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: "setcache",
			Name:      "misses_total",
			Help:      "Number of Get calls that did not find the key.",
		}, labels),
		Puts: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: "setcache",
			Name:      "puts_total",
			Help:      "Number of Put calls, labeled by insert vs update.",
		}, append(append([]string{}, labels...), "kind")),
		Evicts: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: "setcache",
			Name:      "evictions_total",
			Help:      "Number of slots freed by a bucket invalidator to make room for a Put.",
		}, labels),
		Removes: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: "setcache",
			Name:      "removes_total",
			Help:      "Number of Remove calls, labeled by hit vs miss.",
		}, append(append([]string{}, labels...), "kind")),
		Size: f.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "setcache",
			Name:      "size",
			Help:      "Current number of live entries.",
		}, labels),
	}
}

// Collector wires a Metrics set to one named cache instance.
type Collector[K comparable, V any] struct {
	name string
	m    *Metrics
	c    *setcache.Cache[K, V]
}

// NewCollector pairs metrics with a cache under the given name, used as the
// "cache" label on every series so multiple caches can share one registry.
func NewCollector[K comparable, V any](name string, m *Metrics, c *setcache.Cache[K, V]) *Collector[K, V] {
	return &Collector[K, V]{name: name, m: m, c: c}
}

// Attach subscribes the collector to the cache's Inspect hook. It should be
// called once per cache; subsequent Get/Put/Remove calls update the
// registered series automatically.
func (col *Collector[K, V]) Attach() {
	col.m.Size.WithLabelValues(col.name).Set(float64(col.c.Size()))
	col.c.Inspect(func(action setcache.Action, _ K, hit bool) {
		switch action {
		case setcache.ActionGet:
			if hit {
				col.m.Hits.WithLabelValues(col.name).Inc()
			} else {
				col.m.Misses.WithLabelValues(col.name).Inc()
			}
		case setcache.ActionPut:
			kind := "insert"
			if hit {
				kind = "update"
			}
			col.m.Puts.WithLabelValues(col.name, kind).Inc()
		case setcache.ActionEvict:
			col.m.Evicts.WithLabelValues(col.name).Inc()
		case setcache.ActionRemove:
			kind := "miss"
			if hit {
				kind = "hit"
			}
			col.m.Removes.WithLabelValues(col.name, kind).Inc()
		}
		col.m.Size.WithLabelValues(col.name).Set(float64(col.c.Size()))
	})
}
