// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package coredd

import "unsafe"

// poolNode overlays either a live T or a free-list link, the same union
// trick detail/pool.hh uses in the original: val must stay the first field
// so that a *T obtained from Allocate can be cast back to *poolNode[T] by
// Deallocate without carrying any extra bookkeeping per slot.
type poolNode[T any] struct {
	val  T
	next *poolNode[T]
}

// Pool is a fixed-count slab allocator: construction links every slot into
// one free list, and Allocate/Deallocate unlink/prepend the head in O(1).
// There is no bounds or double-free detection beyond the free-list
// invariant, matching §4.2.
type Pool[T any] struct {
	arena []poolNode[T]
	free  *poolNode[T]
}

// NewPool builds a pool of exactly size slots.
func NewPool[T any](size int) *Pool[T] {
	p := &Pool[T]{arena: make([]poolNode[T], size)}
	for i := 0; i < size; i++ {
		if i+1 < size {
			p.arena[i].next = &p.arena[i+1]
		}
	}
	if size > 0 {
		p.free = &p.arena[0]
	}
	return p
}

// Capacity returns the total number of slots, live or free.
func (p *Pool[T]) Capacity() int { return len(p.arena) }

// Len returns the number of currently free slots.
func (p *Pool[T]) Len() int {
	n := 0
	for cur := p.free; cur != nil; cur = cur.next {
		n++
	}
	return n
}

// Allocate unlinks and returns a free slot. Panics if the pool is
// exhausted.
func (p *Pool[T]) Allocate() *T {
	if p.free == nil {
		panic("coredd: pool exhausted")
	}
	n := p.free
	p.free = n.next
	n.next = nil
	return &n.val
}

// Deallocate returns ptr, which must have been obtained from Allocate on
// this pool and not already deallocated, to the free list.
func (p *Pool[T]) Deallocate(ptr *T) {
	n := (*poolNode[T])(unsafe.Pointer(ptr))
	n.next = p.free
	p.free = n
}
