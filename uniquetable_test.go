// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package coredd

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func intEquals(a, b int) bool { return a == b }
func intHash(a int) uint64    { return uint64(a) }

//********************************************************************************************

func TestUniqueTableUnifyDeduplicates(t *testing.T) {
	u := NewUniqueTable[int](8, 0.75, intEquals, intHash, nil, nil)

	c1 := u.Unify(42)
	c2 := u.Unify(42)
	require.Same(t, c1, c2, "two Unify calls with an equal value must return the same cell")
	require.Equal(t, 1, u.Size())

	c3 := u.Unify(43)
	require.NotSame(t, c1, c3)
	require.Equal(t, 2, u.Size())

	stats := u.Statistics()
	require.EqualValues(t, 3, stats.Access)
	require.EqualValues(t, 1, stats.Hits)
	require.EqualValues(t, 2, stats.Misses)
	require.Equal(t, 2, stats.Size)
	require.GreaterOrEqual(t, stats.Peak, 2)
}

//********************************************************************************************

func TestUniqueTableEraseRemovesCell(t *testing.T) {
	u := NewUniqueTable[int](8, 0.75, intEquals, intHash, nil, nil)
	cell := u.Unify(7)
	cell.refcount = 0
	u.Erase(cell)
	require.Equal(t, 0, u.Size())

	cell2 := u.Unify(7)
	require.NotSame(t, cell, cell2, "erased cells must not be handed back out")
}

//********************************************************************************************

func TestUniqueTableEraseNonzeroRefcountPanics(t *testing.T) {
	u := NewUniqueTable[int](8, 0.75, intEquals, intHash, nil, nil)
	cell := u.Unify(7)
	cell.refcount = 1
	require.Panics(t, func() { u.Erase(cell) })
}

//********************************************************************************************

func TestUniqueTableGrowsPastInitialBuckets(t *testing.T) {
	u := NewUniqueTable[int](4, 0.75, intEquals, intHash, nil, nil)
	for i := 0; i < 50; i++ {
		u.Unify(i)
	}
	stats := u.Statistics()
	require.Equal(t, 50, stats.Size)
	require.LessOrEqual(t, stats.LoadFactor, 0.75)
	require.Greater(t, stats.Rehashes, 0)
}
