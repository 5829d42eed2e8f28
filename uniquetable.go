// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package coredd

import "fmt"

// UniqueTableStatistics is a snapshot of a UniqueTable's running counters
// blended with bucket-distribution statistics computed lazily from the
// underlying HashTable, per §4.5.
type UniqueTableStatistics struct {
	Size        int
	Access      uint64
	Hits        uint64
	Misses      uint64
	Peak        int
	Rehashes    int
	Buckets     int
	LoadFactor  float64
	Collisions  int
	Alone       int
	Empty       int
}

// String renders the statistics in the same dense, single-line style as
// rudd's cacheStat.String().
func (s UniqueTableStatistics) String() string {
	return fmt.Sprintf(
		"size=%d access=%d hits=%d misses=%d peak=%d rehashes=%d buckets=%d loadfactor=%.3f collisions=%d alone=%d empty=%d",
		s.Size, s.Access, s.Hits, s.Misses, s.Peak, s.Rehashes, s.Buckets, s.LoadFactor, s.Collisions, s.Alone, s.Empty)
}

// UniqueTable unifies UniqueCell[V] values via a rehashing HashTable: at
// most one live cell exists per value-equal V, per §4.5. It owns every
// cell it contains; Handle only borrows a reference to one.
type UniqueTable[V any] struct {
	table     *RehashingTable[UniqueCell[V]]
	equalsFn  func(a, b V) bool
	hashFn    func(V) uint64
	destroyFn func(V)
	metrics   Metrics

	access uint64
	hits   uint64
	misses uint64
	peak   int

	// recycled is the single-slot recycle cache from §4.5 (m_cache):
	// when a freshly built cell turns out to be a duplicate, its wrapper
	// is kept here instead of handed to the garbage collector immediately,
	// so the very next Make call can reuse it without allocating.
	recycled *UniqueCell[V]
}

// NewUniqueTable builds a UniqueTable with initialBuckets rounded up to a
// power of two and the given maxLoadFactor (0.75 if it is not positive).
// destroyFn, if non-nil, is invoked on a V value whenever its cell stops
// being live: once when a freshly built candidate turns out to duplicate
// an existing cell and is discarded, and once when a resident cell is
// erased. Values that themselves hold Handles (a Node holding its lo/hi
// children, say) use it to release those references, which is what makes
// dropping a handle at the root of a diagram cascade down and reclaim
// everything beneath it — the Go stand-in for a value destructor in §6's
// client contract.
func NewUniqueTable[V any](initialBuckets int, maxLoadFactor float64, equalsFn func(a, b V) bool, hashFn func(V) uint64, destroyFn func(V), metrics Metrics) *UniqueTable[V] {
	hookOf := func(c *UniqueCell[V]) *Hook[UniqueCell[V]] { return &c.hook }
	hashOf := func(c *UniqueCell[V]) uint64 { return hashFn(c.value) }
	if metrics == nil {
		metrics = NoopMetrics{}
	}
	return &UniqueTable[V]{
		table:     NewRehashingTable(initialBuckets, maxLoadFactor, hookOf, hashOf),
		equalsFn:  equalsFn,
		hashFn:    hashFn,
		destroyFn: destroyFn,
		metrics:   metrics,
	}
}

func (u *UniqueTable[V]) allocate() *UniqueCell[V] {
	if u.recycled != nil {
		c := u.recycled
		u.recycled = nil
		return c
	}
	return &UniqueCell[V]{}
}

// Unify offers value to the table. If an equal cell already exists, it is
// returned (with its refcount untouched by this call) and the candidate
// value is discarded into the recycle slot. Otherwise a fresh cell is
// inserted and returned. Mirrors UniqueTable::operator() in §4.5.
func (u *UniqueTable[V]) Unify(value V) *UniqueCell[V] {
	u.access++
	cell := u.allocate()
	cell.value = value

	nbRehashBefore := u.table.NbRehash()
	resident, inserted := u.table.Insert(cell, func(a, b *UniqueCell[V]) bool {
		return u.equalsFn(a.value, b.value)
	})
	if u.table.NbRehash() > nbRehashBefore {
		u.metrics.Rehash()
	}
	if inserted {
		u.misses++
		u.metrics.Miss()
		if u.table.Size() > u.peak {
			u.peak = u.table.Size()
		}
		u.metrics.UniqueSize(u.table.Size())
		return resident
	}
	u.hits++
	u.metrics.Hit()
	if u.destroyFn != nil {
		u.destroyFn(cell.value)
	}
	var zero V
	cell.value = zero
	u.recycled = cell
	return resident
}

// Erase removes cell from the table. Precondition: cell.RefCount() == 0.
func (u *UniqueTable[V]) Erase(cell *UniqueCell[V]) {
	if cell.refcount != 0 {
		panic("coredd: UniqueTable.Erase of a cell with nonzero refcount")
	}
	h := u.hashFn(cell.value)
	value := cell.value
	u.table.Erase(h, func(c *UniqueCell[V]) bool { return c == cell })
	u.metrics.UniqueSize(u.table.Size())
	if u.destroyFn != nil {
		u.destroyFn(value)
	}
}

// Statistics returns a snapshot of the table's counters blended with
// bucket-distribution statistics computed on demand.
func (u *UniqueTable[V]) Statistics() UniqueTableStatistics {
	collisions, alone, empty := u.table.Collisions()
	return UniqueTableStatistics{
		Size:       u.table.Size(),
		Access:     u.access,
		Hits:       u.hits,
		Misses:     u.misses,
		Peak:       u.peak,
		Rehashes:   u.table.NbRehash(),
		Buckets:    u.table.BucketCount(),
		LoadFactor: u.table.LoadFactor(),
		Collisions: collisions,
		Alone:      alone,
		Empty:      empty,
	}
}

// Size returns the number of live cells.
func (u *UniqueTable[V]) Size() int { return u.table.Size() }
