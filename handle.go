// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package coredd

import (
	"reflect"
	"unsafe"
)

func ptrOf[V any](cell *UniqueCell[V]) unsafe.Pointer { return unsafe.Pointer(cell) }

// UniqueCell wraps a unified value with a reference counter and the chain
// hook a UniqueTable needs to store it. The value is the last field, in
// the spirit of §4.5's trailing-bytes layout; in Go the "trailing bytes"
// become whatever slice fields the client's Alternative types carry
// themselves, since Go offers no placement-new over a raw byte block.
type UniqueCell[V any] struct {
	hook     Hook[UniqueCell[V]]
	refcount uint32
	value    V
}

// Value returns the cell's contained value.
func (c *UniqueCell[V]) Value() V { return c.value }

// RefCount returns the cell's current reference count.
func (c *UniqueCell[V]) RefCount() uint32 { return c.refcount }

// deletionHandlers is the process-wide, per-unified-type slot §4.6 and §9
// describe: Handle.Release looks a cell's type up here to find the
// UniqueTable.erase call to make. Installing a second handler for the
// same type is the Open Question from §9 ("a rewrite should make this
// statically impossible or raise at second-construction") — this
// implementation chooses to raise, via RegisterDeletionHandler's panic
// below, rather than silently stomping the first handler.
var deletionHandlers = map[reflect.Type]any{}

func cellType[V any]() reflect.Type {
	return reflect.TypeOf((*UniqueCell[V])(nil)).Elem()
}

// RegisterDeletionHandler installs the process-wide deletion handler for
// UniqueCell[V]. Called once by Unicity's constructor. Panics if a handler
// for V is already installed.
func RegisterDeletionHandler[V any](handler func(*UniqueCell[V])) {
	t := cellType[V]()
	if _, exists := deletionHandlers[t]; exists {
		panic(ErrDuplicateHandler)
	}
	deletionHandlers[t] = handler
}

// UnregisterDeletionHandler removes the handler for V, if any. Exposed so
// a Unicity whose lifetime ends can free its type slot and let a later
// instance re-register it, since the map entry would otherwise outlive the
// table it points to.
func UnregisterDeletionHandler[V any]() {
	delete(deletionHandlers, cellType[V]())
}

func deletionHandlerFor[V any]() func(*UniqueCell[V]) {
	h, ok := deletionHandlers[cellType[V]()]
	if !ok {
		panic("coredd: no deletion handler installed for this unified type")
	}
	return h.(func(*UniqueCell[V]))
}

// Handle is a strong, reference-counted reference to a UniqueCell[V].
// Handles are created by Unicity.Make; the zero value is not a usable
// Handle (default construction is forbidden).
type Handle[V any] struct {
	cell *UniqueCell[V]
}

func newHandle[V any](cell *UniqueCell[V]) Handle[V] {
	cell.refcount++
	return Handle[V]{cell: cell}
}

// Acquire returns a new Handle sharing h's cell, incrementing the
// refcount. Equivalent to copy-construction in §4.6.
func (h Handle[V]) Acquire() Handle[V] {
	if h.cell == nil {
		panic("coredd: Acquire of a moved-from or zero Handle")
	}
	h.cell.refcount++
	return Handle[V]{cell: h.cell}
}

// Release decrements the refcount and, if it reaches zero, invokes the
// deletion handler registered for V. Calling Release twice on handles that
// both trace back to the same Acquire is a double-release and a contract
// violation.
func (h *Handle[V]) Release() {
	if h.cell == nil {
		panic("coredd: double release of Handle")
	}
	cell := h.cell
	h.cell = nil
	cell.refcount--
	if cell.refcount == 0 {
		deletionHandlerFor[V]()(cell)
	}
}

// Retain implements Retainable: it returns a new, independent ownership
// share of h's cell, wrapped as an opaque any so a Cache generic over an
// unknown Result type can store and later release it without importing V.
// Equivalent to Acquire.
func (h *Handle[V]) Retain() any {
	return h.Acquire()
}

// Drop implements Retainable: it releases the share h holds, per
// Release's contract. It exists so Handle satisfies Retainable for
// Cache's benefit; direct callers should use Release instead.
func (h *Handle[V]) Drop() {
	h.Release()
}

// IsValid reports whether h still refers to a cell (false only after
// Release or for the zero Handle).
func (h Handle[V]) IsValid() bool { return h.cell != nil }

// Value returns the handle's contained value.
func (h Handle[V]) Value() V {
	if h.cell == nil {
		panic("coredd: Value of a moved-from or zero Handle")
	}
	return h.cell.value
}

// Equal compares two handles by raw cell-pointer identity, which unicity
// guarantees is equivalent to comparing by value.
func (h Handle[V]) Equal(other Handle[V]) bool { return h.cell == other.cell }

// Less orders two handles by cell address, for use in ordered containers.
func (h Handle[V]) Less(other Handle[V]) bool {
	return uintptr(ptrOf(h.cell)) < uintptr(ptrOf(other.cell))
}

// Hash returns the handle's cell address as a hash, consistent with Equal.
func (h Handle[V]) Hash() uint64 { return uint64(uintptr(ptrOf(h.cell))) }
