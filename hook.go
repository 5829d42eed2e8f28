// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package coredd

// Hook is the intrusive chain-link field embedded in data elements stored
// by a HashTable. Elements carry their own link instead of the table
// allocating separate list nodes, the same trade-off rudd's hudd.go and
// hkernel.go make by threading "next" fields through node storage rather
// than through a side list.
//
// An element may belong to at most one chain at a time. Client code never
// mutates a Hook directly; it is read and written only by the owning
// HashTable.
type Hook[D any] struct {
	next *D
}
