// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

// Package prom adapts coredd's Metrics interface to Prometheus counters
// and gauges, following the same shape as shardcache's metrics/prom
// adapter: one constructor that registers everything up front, and a
// handful of one-line methods forwarding events to the right metric.
package prom

import (
	"github.com/dalzilio/coredd"
	"github.com/prometheus/client_golang/prometheus"
)

// Adapter implements coredd.Metrics and exports Prometheus counters and
// gauges. Prometheus metric types are goroutine-safe, but coredd itself is
// not (§5's single-threaded contract), so this only matters if the same
// Adapter is shared across multiple coredd instances living in different
// goroutines.
type Adapter struct {
	hits       prometheus.Counter
	misses     prometheus.Counter
	filtered   prometheus.Counter
	discarded  prometheus.Counter
	rehashes   prometheus.Counter
	uniqueSize prometheus.Gauge
	cacheSize  prometheus.Gauge
}

// New constructs a Prometheus metrics adapter and registers its metrics
// with reg (prometheus.DefaultRegisterer if nil).
func New(reg prometheus.Registerer, ns, sub string, constLabels prometheus.Labels) *Adapter {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	a := &Adapter{
		hits: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: ns, Subsystem: sub, Name: "hits_total",
			Help: "Unicity/cache hits", ConstLabels: constLabels,
		}),
		misses: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: ns, Subsystem: sub, Name: "misses_total",
			Help: "Unicity/cache misses", ConstLabels: constLabels,
		}),
		filtered: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: ns, Subsystem: sub, Name: "filtered_total",
			Help: "Operations bypassed by the cache filter chain", ConstLabels: constLabels,
		}),
		discarded: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: ns, Subsystem: sub, Name: "discarded_total",
			Help: "Cache entries evicted for being least recently used", ConstLabels: constLabels,
		}),
		rehashes: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: ns, Subsystem: sub, Name: "rehashes_total",
			Help: "Unicity table bucket-array doublings", ConstLabels: constLabels,
		}),
		uniqueSize: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: ns, Subsystem: sub, Name: "unique_size",
			Help: "Live cells in the unicity table", ConstLabels: constLabels,
		}),
		cacheSize: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: ns, Subsystem: sub, Name: "cache_size",
			Help: "Live entries in the operation cache", ConstLabels: constLabels,
		}),
	}
	reg.MustRegister(a.hits, a.misses, a.filtered, a.discarded, a.rehashes, a.uniqueSize, a.cacheSize)
	return a
}

func (a *Adapter) Hit()       { a.hits.Inc() }
func (a *Adapter) Miss()      { a.misses.Inc() }
func (a *Adapter) Filtered()  { a.filtered.Inc() }
func (a *Adapter) Discarded() { a.discarded.Inc() }
func (a *Adapter) Rehash()    { a.rehashes.Inc() }

func (a *Adapter) UniqueSize(n int) { a.uniqueSize.Set(float64(n)) }
func (a *Adapter) CacheSize(n int)  { a.cacheSize.Set(float64(n)) }

// Compile-time check: ensure Adapter implements coredd.Metrics.
var _ coredd.Metrics = (*Adapter)(nil)
