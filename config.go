// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package coredd

// Options are plain functions of the form func(*config), the same pattern
// rudd/config.go uses for Nodesize/Cachesize/Cacheratio: exported
// constructors return a closure that mutates an otherwise-private config
// struct, so new options can be added without breaking callers.

type unicityConfig struct {
	initialBuckets int
	maxLoadFactor  float64
	metrics        Metrics
}

func defaultUnicityConfig() unicityConfig {
	return unicityConfig{
		initialBuckets: 1024,
		maxLoadFactor:  0.75,
		metrics:        NoopMetrics{},
	}
}

// UnicityOption configures a Unicity at construction time.
type UnicityOption func(*unicityConfig)

// WithInitialBuckets sets the unicity table's starting bucket count
// (rounded up to a power of two). Default 1024.
func WithInitialBuckets(n int) UnicityOption {
	return func(c *unicityConfig) { c.initialBuckets = n }
}

// WithMaxLoadFactor sets the load factor at which the unicity table
// doubles its bucket array. Default 0.75, matching §4.1.
func WithMaxLoadFactor(f float64) UnicityOption {
	return func(c *unicityConfig) { c.maxLoadFactor = f }
}

// WithUnicityMetrics wires m into every Unicity/UniqueTable event that
// also bumps an internal counter. Default NoopMetrics.
func WithUnicityMetrics(m Metrics) UnicityOption {
	return func(c *unicityConfig) { c.metrics = m }
}

type cacheConfig struct {
	metrics Metrics
}

func defaultCacheConfig() cacheConfig {
	return cacheConfig{metrics: NoopMetrics{}}
}

// CacheOption configures a Cache at construction time.
type CacheOption func(*cacheConfig)

// WithCacheMetrics wires m into every Cache event that also bumps an
// internal counter. Default NoopMetrics.
func WithCacheMetrics(m Metrics) CacheOption {
	return func(c *cacheConfig) { c.metrics = m }
}
