// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package coredd

import "fmt"

// cacheLoadFactor is the fixed load factor used to size a Cache's bucket
// array: the bucket count is chosen so that the cache's maximum number of
// live entries (the size passed to NewCache) keeps the load factor at or
// below 0.85.
const cacheLoadFactor = 0.85

// Operation is the contract a type must satisfy to be memoized by a
// Cache[Ctx, Result, O]: hashable and equality-comparable (consistently
// with each other), and evaluable against a Context to produce a Result.
type Operation[Ctx, Result any] interface {
	Hash() uint64
	Equal(other Operation[Ctx, Result]) bool
	Apply(ctx Ctx) Result
}

// Filter is a pure predicate over an operation; an operation is cached iff
// every filter in the chain accepts it, per §4.7.
type Filter[Ctx, Result any, O Operation[Ctx, Result]] func(O) bool

// Retainable is the optional interface a Cache's Result type implements to
// share reference-counted ownership of a unified value with the cache
// entry that stores it. §3 describes cache entries as referring to Handles
// "by value, so they share ownership of unified cells" — in the original
// C++, that sharing comes for free because a result is moved into the
// entry and then copy-constructed on every return by value, bumping the
// refcount a second time. Go has no copy constructor, so Cache
// type-asserts Result against Retainable at every point that would have
// triggered one: a fresh insert, a hit returned to the caller, and an
// entry discarded by eviction or Clear. Result types that don't hold any
// unicity handles (a plain int, say) simply don't implement it, and Cache
// skips the bookkeeping.
type Retainable interface {
	// Retain returns a new, independent ownership share of the same
	// underlying value, as an opaque any so Cache can hold it without
	// knowing the concrete Result type.
	Retain() any
	// Drop releases this share.
	Drop()
}

// retainShare gives res its own independent ownership share, if Result
// implements Retainable, mirroring the copy-construction a C++ Cache gets
// for free when returning a stored result by value. Result types that
// don't implement Retainable pass through unchanged.
func retainShare[Result any](res Result) Result {
	r, ok := any(&res).(Retainable)
	if !ok {
		return res
	}
	acquired, ok := r.Retain().(Result)
	if !ok {
		return res
	}
	return acquired
}

// dropShare releases the ownership share an evicted or cleared entry
// holds, if Result implements Retainable.
func dropShare[Result any](res Result) {
	if r, ok := any(&res).(Retainable); ok {
		r.Drop()
	}
}

// cacheEntry is constructed once in a Pool slot and never mutated
// afterwards; its lru field is the stable iterator persisted inside the
// entry that §4.3 calls out as the sole case of an iterator living inside
// another entity.
type cacheEntry[Ctx, Result any, O Operation[Ctx, Result]] struct {
	hook      Hook[cacheEntry[Ctx, Result, O]]
	operation O
	result    Result
	lru       LRUListIterator[*cacheEntry[Ctx, Result, O]]
}

// CacheStatistics is a snapshot of a Cache's counters, computed lazily on
// query per §4.7.
type CacheStatistics struct {
	Size       int
	Hits       uint64
	Misses     uint64
	Filtered   uint64
	Discarded  uint64
	Buckets    int
	LoadFactor float64
	Collisions int
	Alone      int
	Empty      int
}

// String renders the statistics densely, in rudd's cacheStat.String()
// style.
func (s CacheStatistics) String() string {
	return fmt.Sprintf(
		"size=%d hits=%d misses=%d filtered=%d discarded=%d buckets=%d loadfactor=%.3f collisions=%d alone=%d empty=%d",
		s.Size, s.Hits, s.Misses, s.Filtered, s.Discarded, s.Buckets, s.LoadFactor, s.Collisions, s.Alone, s.Empty)
}

// Cache is a fixed-capacity LRU memoizer for Op(Context) -> Result, per
// §4.7. Capacity, once chosen at construction, never grows: total memory
// is bounded by the pool and bucket array sizes picked at NewCache time.
type Cache[Ctx, Result any, O Operation[Ctx, Result]] struct {
	ctx     Ctx
	table   *FixedTable[cacheEntry[Ctx, Result, O]]
	lru     *LRUList[*cacheEntry[Ctx, Result, O]]
	pool    *Pool[cacheEntry[Ctx, Result, O]]
	filters []Filter[Ctx, Result, O]
	maxSize int
	metrics Metrics

	hits, misses, filtered, discarded uint64
}

// NewCache builds a Cache bound to ctx with room for exactly size live
// entries; its bucket array is sized so that load factor at full capacity
// never exceeds 0.85, per §4.7. filters is the compile-time filter chain,
// applied in order.
func NewCache[Ctx, Result any, O Operation[Ctx, Result]](ctx Ctx, size int, filters []Filter[Ctx, Result, O], opts ...CacheOption) *Cache[Ctx, Result, O] {
	cfg := defaultCacheConfig()
	for _, o := range opts {
		o(&cfg)
	}
	maxSize := maxInt(1, size)
	buckets := NextPow2(maxInt(1, ceilDiv(maxSize, cacheLoadFactor)))

	hookOf := func(e *cacheEntry[Ctx, Result, O]) *Hook[cacheEntry[Ctx, Result, O]] { return &e.hook }
	hashOf := func(e *cacheEntry[Ctx, Result, O]) uint64 { return e.operation.Hash() }

	return &Cache[Ctx, Result, O]{
		ctx:     ctx,
		table:   NewFixedTable(buckets, hookOf, hashOf),
		lru:     NewLRUList[*cacheEntry[Ctx, Result, O]](),
		pool:    NewPool[cacheEntry[Ctx, Result, O]](maxSize),
		filters: filters,
		maxSize: maxSize,
		metrics: cfg.metrics,
	}
}

func ceilDiv(n int, f float64) int {
	return int(float64(n)/f) + 1
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// Call evaluates op, memoizing the result: a later call with an equal op
// returns the cached result and bumps the LRU entry to the tail instead of
// re-running op.Apply. If the filter chain rejects op, the result is
// computed and returned directly, uncached. Mirrors Cache::operator() in
// §4.7, including the re-entrancy guarantee described in §5: the commit
// token only records a bucket index and InsertCommit walks that chain again,
// so re-entrant calls made by op.Apply and an LRU eviction between
// InsertCheck and InsertCommit leave the token valid.
func (c *Cache[Ctx, Result, O]) Call(op O) Result {
	for _, f := range c.filters {
		if !f(op) {
			c.filtered++
			c.metrics.Filtered()
			return op.Apply(c.ctx)
		}
	}

	found, shouldInsert, token := c.table.InsertCheck(op.Hash(), func(e *cacheEntry[Ctx, Result, O]) bool {
		return op.Equal(e.operation)
	})
	if !shouldInsert {
		c.hits++
		c.metrics.Hit()
		c.lru.MoveToBack(found.lru)
		return retainShare(found.result)
	}

	res := op.Apply(c.ctx)
	c.misses++
	c.metrics.Miss()

	if c.table.Size() == c.maxSize {
		c.evictFront()
	}

	entry := c.pool.Allocate()
	entry.operation = op
	entry.result = res
	entry.lru = c.lru.PushBack(entry)
	c.table.InsertCommit(entry, token)
	c.metrics.CacheSize(c.table.Size())
	return retainShare(res)
}

func (c *Cache[Ctx, Result, O]) evictFront() {
	front := c.lru.Front()
	c.table.Erase(front.operation.Hash(), func(e *cacheEntry[Ctx, Result, O]) bool { return e == front })
	c.lru.PopFront()
	dropShare(front.result)
	c.pool.Deallocate(front)
	c.discarded++
	c.metrics.Discarded()
	debugf("evicted LRU front entry, discarded=%d", c.discarded)
}

// Clear destructs and returns every entry to the pool. Statistics are
// preserved across clears, per §4.7.
func (c *Cache[Ctx, Result, O]) Clear() {
	c.table.ClearAndDispose(func(e *cacheEntry[Ctx, Result, O]) {
		dropShare(e.result)
		c.pool.Deallocate(e)
	})
	c.lru = NewLRUList[*cacheEntry[Ctx, Result, O]]()
}

// Size returns the number of live entries.
func (c *Cache[Ctx, Result, O]) Size() int { return c.table.Size() }

// Statistics returns a snapshot of the cache's counters.
func (c *Cache[Ctx, Result, O]) Statistics() CacheStatistics {
	collisions, alone, empty := c.table.Collisions()
	return CacheStatistics{
		Size:       c.table.Size(),
		Hits:       c.hits,
		Misses:     c.misses,
		Filtered:   c.filtered,
		Discarded:  c.discarded,
		Buckets:    c.table.BucketCount(),
		LoadFactor: c.table.LoadFactor(),
		Collisions: collisions,
		Alone:      alone,
		Empty:      empty,
	}
}
