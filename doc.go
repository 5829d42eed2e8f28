// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

/*
Package coredd provides the memory and computation infrastructure shared by
decision-diagram-style data structures: a unicity (hash-consing) table that
guarantees at most one live instance per value-equal term, and a fixed-size
LRU cache that memoizes pure operations keyed by the handles unicity hands
out.

Basics

Client code defines a closed set of node "alternatives" (for instance Zero,
One and Node for a toy decision diagram)
that implement the Alternative interface. A Unicity binds those
alternatives together; calling Make constructs a Handle that is guaranteed
to be the unique live representative of its value across the whole table.
Two handles built from equal values are pointer-equal, so comparing
handles, hashing them, or using them as map keys never needs to look at the
underlying value.

A Cache memoizes the result of a pure operation keyed by the identity of
the handles it closes over. Because unicity makes handle identity a
reliable stand-in for value identity, the cache can use a plain hash and
equality over the operand handles without ever doing a deep structural
comparison.

Use of build tags

Compiling with the `debug` build tag turns on logging of internal events —
bucket-array rehashes, LRU evictions — through the standard log package,
the same way the tag works in the rudd package this library grew out of.
Without the tag these calls compile away to nothing.

Automatic memory management

coredd is written in pure Go. Reclamation of unified cells is driven by
explicit reference counting on Handle (Acquire/Release), not by the Go
garbage collector; the GC only reclaims the wrapper structs once the
unicity table itself has dropped its last pointer to them.
*/
package coredd
