// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package coredd

// Seed starts a chainable hash computation, mirroring the seed(x)(val(y))
// pattern used throughout original_source/coredd (hash.hh) and in the
// SimpleDD.cc client (seed(n.variable)(val(n.lo))(val(n.hi))). Go has no
// operator(), so chaining is done with ordinary method calls instead of
// call syntax.
type Seed uint64

const goldenRatio64 = 0x9e3779b97f4a7c15

// NewSeed starts a hash chain from an initial scalar.
func NewSeed(x uint64) Seed {
	return Seed(0).Val(x)
}

// Val folds another scalar into the chain. The combination is a variant of
// the widely used boost::hash_combine shift-and-xor mix, with the incoming
// scalar first multiplied by the 64-bit golden-ratio constant, which
// spreads low-entropy inputs (small ints, pointers) well enough for bucket
// indexing.
func (s Seed) Val(x uint64) Seed {
	x *= goldenRatio64
	h := uint64(s)
	h ^= x + (h << 6) + (h >> 2)
	return Seed(h)
}

// Hash returns the accumulated hash value.
func (s Seed) Hash() uint64 {
	return uint64(s)
}
