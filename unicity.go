// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package coredd

// Unicity binds a Variant-shaped value type V to its own UniqueTable and
// installs the process-wide deletion handler that routes Handle releases
// back into that table, per §4.8. Only one Unicity per V may exist in a
// process at a time (see the Open Question note in handle.go).
type Unicity[V any] struct {
	table *UniqueTable[V]
}

// NewUnicity constructs a Unicity over V, given the equality and hash
// functions client code must supply for the values it unifies, and a
// destroyFn releasing whatever resources a value holds (see the doc
// comment on NewUniqueTable's destroyFn parameter) — Go's lack of
// destructors means this is the one piece of §6's client contract
// (hash, equality, destructor) that must be passed explicitly rather than
// picked up from the language. Pass nil if V holds no Handles of its own.
func NewUnicity[V any](equalsFn func(a, b V) bool, hashFn func(V) uint64, destroyFn func(V), opts ...UnicityOption) *Unicity[V] {
	cfg := defaultUnicityConfig()
	for _, o := range opts {
		o(&cfg)
	}
	u := &Unicity[V]{
		table: NewUniqueTable[V](cfg.initialBuckets, cfg.maxLoadFactor, equalsFn, hashFn, destroyFn, cfg.metrics),
	}
	RegisterDeletionHandler(func(cell *UniqueCell[V]) {
		u.table.Erase(cell)
	})
	return u
}

// Close releases the process-wide deletion handler installed for V,
// letting a later Unicity[V] be constructed.
func (u *Unicity[V]) Close() {
	UnregisterDeletionHandler[V]()
}

// Make unifies value and returns a Handle to the canonical representative
// of its equivalence class. Equivalent to make<T> in §4.8 (Go has no
// placement-new, so there is no separate make_sized: the "extra bytes" a
// trailing array would have occupied are instead whatever slice fields
// value's own type declares).
func (u *Unicity[V]) Make(value V) Handle[V] {
	cell := u.table.Unify(value)
	return newHandle(cell)
}

// UniqueTableStats reports the bound table's statistics.
func (u *Unicity[V]) UniqueTableStats() UniqueTableStatistics {
	return u.table.Statistics()
}
